package application

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/verakore/mojifix/internal/domain"
	"github.com/verakore/mojifix/internal/domain/mojibake"
)

// RepairService orchestrates the write pipeline:
// load config -> build table -> list files -> per file: read -> repair ->
// backup -> atomic replace.
type RepairService struct {
	lister domain.FileLister
	files  domain.FileStore
	config domain.ConfigLoader
	git    domain.WorktreeStatus
	base   *mojibake.Table
	now    func() time.Time
}

func NewRepairService(
	lister domain.FileLister,
	files domain.FileStore,
	config domain.ConfigLoader,
	git domain.WorktreeStatus,
	base *mojibake.Table,
) *RepairService {
	return &RepairService{
		lister: lister,
		files:  files,
		config: config,
		git:    git,
		base:   base,
		now:    time.Now,
	}
}

// WithClock replaces the clock used to stamp backups.
func (s *RepairService) WithClock(now func() time.Time) *RepairService {
	s.now = now
	return s
}

// RepairDir repairs every matching file directly inside dir. Each file gets
// its own result; a failure on one file never stops the others.
func (s *RepairService) RepairDir(dir string, opts domain.RepairOptions) (*domain.RepairReport, error) {
	cfg, table, err := loadTable(s.config, s.base, dir)
	if err != nil {
		return nil, err
	}

	include := includeFor(cfg, opts.Include)
	files, err := s.lister.List(dir, include, cfg.Exclude)
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}

	report := &domain.RepairReport{
		Dir:     dir,
		Include: include,
		DryRun:  opts.DryRun,
		Results: []domain.FixResult{},
	}
	if len(files) == 0 {
		return report, nil
	}

	dirty, err := s.git.DirtyFiles(dir)
	if err != nil {
		if opts.SkipDirty {
			return nil, fmt.Errorf("checking git status: %w", err)
		}
		dirty = nil
	}

	for _, f := range files {
		report.Add(s.repairFile(f, table, opts, dirty[absPath(f)]))
	}
	return report, nil
}

func (s *RepairService) repairFile(path string, table *mojibake.Table, opts domain.RepairOptions, dirty bool) domain.FixResult {
	res := domain.FixResult{File: path, Dirty: dirty}

	if dirty && opts.SkipDirty {
		res.Status = domain.FixStatusSkipped
		res.Error = "file has uncommitted changes"
		return res
	}

	data, err := s.files.Read(path)
	if err != nil {
		res.Status = domain.FixStatusFailed
		res.Error = fmt.Sprintf("reading: %v", err)
		return res
	}

	text, err := mojibake.DecodeText(data)
	if err != nil {
		res.Status = domain.FixStatusSkipped
		res.Error = domain.ErrUnreadable.Error()
		return res
	}

	out := mojibake.Repair(text, table)
	res.FixesApplied = out.Total
	for _, r := range out.Replacements {
		res.Replacements = append(res.Replacements, domain.ReplacementCount{
			Pattern:   r.Entry.Name,
			Broken:    r.Entry.Broken,
			Canonical: r.Entry.Canonical,
			Count:     r.Count,
		})
	}

	switch {
	case !out.Changed():
		res.Status = domain.FixStatusClean
		return res
	case opts.DryRun:
		res.Status = domain.FixStatusWouldFix
		return res
	}

	backup, err := s.files.Backup(path, s.now())
	if err != nil {
		res.Status = domain.FixStatusFailed
		res.Error = fmt.Sprintf("backup: %v", err)
		return res
	}
	res.BackupPath = backup

	if err := s.files.Replace(path, []byte(out.Text)); err != nil {
		res.Status = domain.FixStatusFailed
		res.Error = fmt.Sprintf("writing: %v", err)
		return res
	}

	res.Status = domain.FixStatusFixed
	return res
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
