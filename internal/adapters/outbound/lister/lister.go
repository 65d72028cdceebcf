package lister

import (
	"os"
	"path/filepath"

	"github.com/verakore/mojifix/internal/domain"
)

// FileLister implements domain.FileLister over a single directory level.
type FileLister struct{}

func New() *FileLister {
	return &FileLister{}
}

// List returns the regular files directly inside dir whose base name
// matches one of include and none of exclude, sorted by name. Backups made
// by a previous repair are never listed.
func (l *FileLister) List(dir string, include, exclude []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, d := range entries {
		if d.IsDir() {
			continue
		}

		name := d.Name()
		if !matchAny(include, name) || matchAny(exclude, name) {
			continue
		}
		if _, ok := domain.ParseBackupPath(name); ok {
			continue
		}

		path := filepath.Join(dir, name)
		if !isRegular(d, path) {
			continue
		}
		files = append(files, path)
	}

	return files, nil
}

// isRegular follows symlinks so a link to a regular file is listed.
func isRegular(d os.DirEntry, path string) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func matchAny(globs []string, name string) bool {
	for _, g := range globs {
		if ok, _ := filepath.Match(g, name); ok {
			return true
		}
	}
	return false
}
