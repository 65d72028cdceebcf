package domain

// FixStatus is the outcome of repairing one file.
type FixStatus string

const (
	FixStatusFixed    FixStatus = "fixed"
	FixStatusClean    FixStatus = "clean"
	FixStatusWouldFix FixStatus = "would_fix"
	FixStatusSkipped  FixStatus = "skipped"
	FixStatusFailed   FixStatus = "failed"
)

// ReplacementCount records how many times one pattern was substituted.
type ReplacementCount struct {
	Pattern   string `json:"pattern"`
	Broken    string `json:"broken"`
	Canonical string `json:"canonical"`
	Count     int    `json:"count"`
}

// FixResult is the outcome of repairing one file.
type FixResult struct {
	File         string             `json:"file"`
	Status       FixStatus          `json:"status"`
	FixesApplied int                `json:"fixes_applied"`
	BackupPath   string             `json:"backup_path,omitempty"`
	Replacements []ReplacementCount `json:"replacements,omitempty"`
	Dirty        bool               `json:"dirty,omitempty"`
	Error        string             `json:"error,omitempty"`
}

// RepairOptions tunes a directory repair.
type RepairOptions struct {
	DryRun    bool     `json:"dry_run"`
	SkipDirty bool     `json:"skip_dirty"`
	Include   []string `json:"include,omitempty"`
}

// RepairReport aggregates the repair of every file in a directory.
type RepairReport struct {
	Dir            string      `json:"dir"`
	Include        []string    `json:"include"`
	DryRun         bool        `json:"dry_run"`
	Results        []FixResult `json:"results"`
	FilesProcessed int         `json:"files_processed"`
	FilesFixed     int         `json:"files_fixed"`
	FilesFailed    int         `json:"files_failed"`
	TotalFixes     int         `json:"total_fixes"`
}

// Add appends a result and updates the counters.
func (r *RepairReport) Add(res FixResult) {
	r.Results = append(r.Results, res)
	r.FilesProcessed++
	switch res.Status {
	case FixStatusFixed, FixStatusWouldFix:
		r.FilesFixed++
		r.TotalFixes += res.FixesApplied
	case FixStatusFailed:
		r.FilesFailed++
	}
}

// Changed reports whether any file was (or in a dry run, would be) modified.
func (r *RepairReport) Changed() bool { return r.FilesFixed > 0 }
