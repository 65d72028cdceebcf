package application

import (
	"fmt"
	"path/filepath"

	"github.com/verakore/mojifix/internal/domain"
	"github.com/verakore/mojifix/internal/domain/mojibake"
)

// ScanService orchestrates the read-only pipeline:
// load config -> build table -> list files -> scan each file.
type ScanService struct {
	lister domain.FileLister
	files  domain.FileStore
	config domain.ConfigLoader
	base   *mojibake.Table
}

func NewScanService(
	lister domain.FileLister,
	files domain.FileStore,
	config domain.ConfigLoader,
	base *mojibake.Table,
) *ScanService {
	return &ScanService{
		lister: lister,
		files:  files,
		config: config,
		base:   base,
	}
}

// ScanDir scans every matching file directly inside dir. Problems with a
// single file are reported as findings; only configuration and listing
// failures are returned as errors.
func (s *ScanService) ScanDir(dir string, opts domain.ScanOptions) (*domain.ScanReport, error) {
	cfg, table, err := loadTable(s.config, s.base, dir)
	if err != nil {
		return nil, err
	}

	include := includeFor(cfg, opts.Include)
	files, err := s.lister.List(dir, include, cfg.Exclude)
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}

	report := &domain.ScanReport{Dir: dir, Include: include, Files: []domain.FileScan{}}
	for _, f := range files {
		report.Add(s.scanFile(f, table))
	}
	return report, nil
}

// ScanFile scans one file using the configuration of its directory.
func (s *ScanService) ScanFile(path string) (domain.FileScan, error) {
	_, table, err := loadTable(s.config, s.base, filepath.Dir(path))
	if err != nil {
		return domain.FileScan{}, err
	}
	return s.scanFile(path, table), nil
}

// Patterns returns the effective table for dir.
func (s *ScanService) Patterns(dir string) (*mojibake.Table, error) {
	_, table, err := loadTable(s.config, s.base, dir)
	return table, err
}

func (s *ScanService) scanFile(path string, table *mojibake.Table) domain.FileScan {
	result := domain.FileScan{File: path, Findings: []domain.Finding{}}

	data, err := s.files.Read(path)
	if err != nil {
		result.Findings = append(result.Findings, unreadableFinding(path, fmt.Sprintf("Cannot read file: %v", err)))
		return result
	}

	text, err := mojibake.DecodeText(data)
	if err != nil {
		result.Findings = append(result.Findings, unreadableFinding(path, fmt.Sprintf("File encoding issue: %v: %v", domain.ErrUnreadable, err)))
		return result
	}

	for _, m := range mojibake.Scan(text, table) {
		result.Findings = append(result.Findings, domain.Finding{
			File:    path,
			Line:    m.Line,
			Kind:    domain.KindEncodingIssue,
			Pattern: m.Entry.Name,
			Message: m.Entry.Description(),
		})
	}
	return result
}

func unreadableFinding(path, msg string) domain.Finding {
	return domain.Finding{
		File:    path,
		Kind:    domain.KindUnreadable,
		Message: msg,
	}
}
