package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BackupStampLayout is the time layout embedded in backup file names.
const BackupStampLayout = "20060102_150405"

const backupMarker = ".backup_"

// Backup is a copy of a file taken before it was repaired.
type Backup struct {
	Original  string    `json:"original"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
}

// BackupPath returns the backup name for original taken at the given time.
// attempt > 1 appends a disambiguating suffix for same-second collisions.
func BackupPath(original string, at time.Time, attempt int) string {
	p := original + backupMarker + at.Format(BackupStampLayout)
	if attempt > 1 {
		p += fmt.Sprintf("_%d", attempt)
	}
	return p
}

// ParseBackupPath recognises a path produced by BackupPath.
func ParseBackupPath(path string) (Backup, bool) {
	idx := strings.LastIndex(path, backupMarker)
	if idx <= 0 {
		return Backup{}, false
	}
	stamp := path[idx+len(backupMarker):]
	if len(stamp) < len(BackupStampLayout) {
		return Backup{}, false
	}

	created, err := time.ParseInLocation(BackupStampLayout, stamp[:len(BackupStampLayout)], time.Local)
	if err != nil {
		return Backup{}, false
	}

	if rest := stamp[len(BackupStampLayout):]; rest != "" {
		if rest[0] != '_' {
			return Backup{}, false
		}
		if n, err := strconv.Atoi(rest[1:]); err != nil || n < 2 {
			return Backup{}, false
		}
	}

	return Backup{Original: path[:idx], Path: path, CreatedAt: created}, true
}

// PruneReport lists the backups removed and kept by a prune.
type PruneReport struct {
	Dir     string    `json:"dir"`
	Cutoff  time.Time `json:"cutoff"`
	DryRun  bool      `json:"dry_run"`
	Removed []Backup  `json:"removed"`
	Kept    []Backup  `json:"kept"`
	Errors  []string  `json:"errors,omitempty"`
}
