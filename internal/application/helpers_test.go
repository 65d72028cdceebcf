package application_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/verakore/mojifix/internal/adapters/outbound/config"
	"github.com/verakore/mojifix/internal/adapters/outbound/filestore"
	"github.com/verakore/mojifix/internal/adapters/outbound/lister"
	"github.com/verakore/mojifix/internal/application"
	"github.com/verakore/mojifix/internal/domain"
	"github.com/verakore/mojifix/internal/domain/mojibake"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.Local)

func clock() time.Time { return fixedNow }

func baseTable(t *testing.T) *mojibake.Table {
	t.Helper()
	table, err := mojibake.DefaultTable()
	require.NoError(t, err)
	return table
}

func newScanService(t *testing.T) *application.ScanService {
	return application.NewScanService(lister.New(), filestore.New(), config.New(), baseTable(t))
}

func newRepairService(t *testing.T, files domain.FileStore, git domain.WorktreeStatus) *application.RepairService {
	if files == nil {
		files = filestore.New()
	}
	if git == nil {
		git = fakeGit{}
	}
	return application.NewRepairService(lister.New(), files, config.New(), git, baseTable(t)).WithClock(clock)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// fakeGit reports a fixed set of dirty files.
type fakeGit struct {
	dirty map[string]bool
	err   error
}

func (g fakeGit) DirtyFiles(string) (map[string]bool, error) {
	return g.dirty, g.err
}

// failingStore wraps the real store and fails writes for selected files.
type failingStore struct {
	*filestore.Store
	failBackup  map[string]bool
	failReplace map[string]bool
}

func (s failingStore) Backup(path string, at time.Time) (string, error) {
	if s.failBackup[filepath.Base(path)] {
		return "", errors.New("disk full")
	}
	return s.Store.Backup(path, at)
}

func (s failingStore) Replace(path string, data []byte) error {
	if s.failReplace[filepath.Base(path)] {
		return errors.New("permission denied")
	}
	return s.Store.Replace(path, data)
}
