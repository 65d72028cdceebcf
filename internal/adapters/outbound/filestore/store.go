package filestore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/verakore/mojifix/internal/domain"
)

const (
	tempPattern = ".mojifix-*.tmp"

	// maxBackupAttempts bounds the same-second suffixes tried by Backup.
	maxBackupAttempts = 100
)

// Store is the filesystem implementation of domain.FileStore.
type Store struct{}

// New creates a filesystem store.
func New() *Store {
	return &Store{}
}

// Read returns the full content of path.
func (s *Store) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Backup copies path byte for byte to a sibling named by domain.BackupPath.
// The copy is created exclusively, so an existing backup is never
// overwritten; on a same-second collision the next suffix is tried.
func (s *Store) Backup(path string, at time.Time) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	for attempt := 1; attempt <= maxBackupAttempts; attempt++ {
		dst := domain.BackupPath(path, at, attempt)
		out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("creating backup: %w", err)
		}

		if err := copyAndClose(out, src); err != nil {
			os.Remove(dst)
			return "", fmt.Errorf("writing backup %s: %w", dst, err)
		}
		return dst, nil
	}

	return "", fmt.Errorf("no free backup name for %s after %d attempts", path, maxBackupAttempts)
}

func copyAndClose(dst *os.File, src io.Reader) error {
	_, err := io.Copy(dst, src)
	if err == nil {
		err = dst.Sync()
	}
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	return err
}

// Replace writes data to a temporary file in the same directory and renames
// it over path, so path holds either the old or the new content and never a
// partial write. The original permission bits are kept.
func (s *Store) Replace(path string, data []byte) (err error) {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), tempPattern)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = os.Chmod(tmpName, info.Mode().Perm()); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// ListBackups returns the backups directly inside dir, oldest first.
func (s *Store) ListBackups(dir string) ([]domain.Backup, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var backups []domain.Backup
	for _, d := range entries {
		if d.IsDir() {
			continue
		}
		if b, ok := domain.ParseBackupPath(filepath.Join(dir, d.Name())); ok {
			backups = append(backups, b)
		}
	}

	sort.SliceStable(backups, func(i, j int) bool {
		if !backups[i].CreatedAt.Equal(backups[j].CreatedAt) {
			return backups[i].CreatedAt.Before(backups[j].CreatedAt)
		}
		return backups[i].Path < backups[j].Path
	})
	return backups, nil
}

// Remove deletes path. A missing file is not an error.
func (s *Store) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
