package domain

import "errors"

var (
	// ErrUnreadable marks a file whose content is not valid UTF-8.
	ErrUnreadable = errors.New("file is not valid UTF-8 text")

	// ErrFindings is returned by a scan that reported at least one issue.
	ErrFindings = errors.New("encoding issues found")

	// ErrRepairFailed is returned when at least one file could not be written.
	ErrRepairFailed = errors.New("one or more files could not be repaired")
)
