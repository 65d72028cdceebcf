package domain

import "time"

// FileLister enumerates candidate files directly inside a directory.
type FileLister interface {
	List(dir string, include, exclude []string) ([]string, error)
}

// ConfigLoader loads the configuration that applies to a directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}

// FileStore reads files and performs the write side of a repair.
type FileStore interface {
	Read(path string) ([]byte, error)
	// Backup copies path to a timestamped sibling and returns its name.
	Backup(path string, at time.Time) (string, error)
	// Replace atomically swaps the content of path for data.
	Replace(path string, data []byte) error
	ListBackups(dir string) ([]Backup, error)
	Remove(path string) error
}

// WorktreeStatus reports files with uncommitted changes. A directory
// outside any git repository yields an empty set and no error.
type WorktreeStatus interface {
	DirtyFiles(dir string) (map[string]bool, error)
}
