package application

import (
	"fmt"
	"time"

	"github.com/verakore/mojifix/internal/domain"
)

// BackupService lists and prunes the backups left behind by repairs.
type BackupService struct {
	files  domain.FileStore
	config domain.ConfigLoader
	now    func() time.Time
}

func NewBackupService(files domain.FileStore, config domain.ConfigLoader) *BackupService {
	return &BackupService{files: files, config: config, now: time.Now}
}

// WithClock replaces the clock used to compute the prune cutoff.
func (s *BackupService) WithClock(now func() time.Time) *BackupService {
	s.now = now
	return s
}

// List returns the backups in dir, oldest first.
func (s *BackupService) List(dir string) ([]domain.Backup, error) {
	backups, err := s.files.ListBackups(dir)
	if err != nil {
		return nil, fmt.Errorf("listing backups: %w", err)
	}
	return backups, nil
}

// Prune removes backups created more than olderThan ago. A zero olderThan
// uses the configured retention; a zero retention keeps everything.
func (s *BackupService) Prune(dir string, olderThan time.Duration, dryRun bool) (*domain.PruneReport, error) {
	if olderThan == 0 {
		cfg, err := s.config.Load(dir)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		olderThan = cfg.Retention()
	}
	if olderThan < 0 {
		return nil, fmt.Errorf("retention must not be negative (got %s)", olderThan)
	}

	backups, err := s.List(dir)
	if err != nil {
		return nil, err
	}

	report := &domain.PruneReport{
		Dir:     dir,
		DryRun:  dryRun,
		Removed: []domain.Backup{},
		Kept:    []domain.Backup{},
	}
	if olderThan == 0 {
		report.Kept = append(report.Kept, backups...)
		return report, nil
	}

	report.Cutoff = s.now().Add(-olderThan)
	for _, b := range backups {
		if !b.CreatedAt.Before(report.Cutoff) {
			report.Kept = append(report.Kept, b)
			continue
		}
		if !dryRun {
			if err := s.files.Remove(b.Path); err != nil {
				report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", b.Path, err))
				report.Kept = append(report.Kept, b)
				continue
			}
		}
		report.Removed = append(report.Removed, b)
	}
	return report, nil
}
