package domain

// FindingKind classifies a finding.
type FindingKind string

const (
	KindEncodingIssue FindingKind = "encoding_issue"
	KindUnreadable    FindingKind = "unreadable"
)

// Finding is one reported encoding problem, localized to a file and line.
// Line is 0 for an unreadable file.
type Finding struct {
	File    string      `json:"file"`
	Line    int         `json:"line,omitempty"`
	Kind    FindingKind `json:"kind"`
	Pattern string      `json:"pattern,omitempty"`
	Message string      `json:"message"`
}

// FileScan holds the findings for a single file.
type FileScan struct {
	File     string    `json:"file"`
	Findings []Finding `json:"findings"`
}

// Unreadable reports whether the file could not be decoded as text.
func (f FileScan) Unreadable() bool {
	return len(f.Findings) == 1 && f.Findings[0].Kind == KindUnreadable
}

// ScanOptions tunes a directory scan.
type ScanOptions struct {
	Include []string `json:"include,omitempty"`
}

// ScanReport aggregates the scans of every file in a directory.
type ScanReport struct {
	Dir           string     `json:"dir"`
	Include       []string   `json:"include"`
	Files         []FileScan `json:"files"`
	TotalFindings int        `json:"total_findings"`
}

// Add appends a file scan and updates the total.
func (r *ScanReport) Add(fs FileScan) {
	r.Files = append(r.Files, fs)
	r.TotalFindings += len(fs.Findings)
}

// HasFindings reports whether any file had at least one finding.
func (r *ScanReport) HasFindings() bool { return r.TotalFindings > 0 }
