package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/verakore/mojifix/internal/domain/mojibake"
)

// DefaultRetentionDays is how long backups are kept by default.
const DefaultRetentionDays = 30

// Config holds directory-level configuration loaded from .mojifix.yaml.
type Config struct {
	Include             []string        `yaml:"include"               json:"include"`
	Exclude             []string        `yaml:"exclude"               json:"exclude,omitempty"`
	Disable             []string        `yaml:"disable"               json:"disable,omitempty"`
	Patterns            []PatternConfig `yaml:"patterns"              json:"patterns,omitempty"`
	BackupRetentionDays int             `yaml:"backup_retention_days" json:"backup_retention_days"`
}

// PatternConfig declares a custom pattern. Either Char is set, and the
// other fields are derived from it, or both Broken and Canonical are.
type PatternConfig struct {
	Name      string `yaml:"name"                json:"name"`
	Char      string `yaml:"char,omitempty"      json:"char,omitempty"`
	Broken    string `yaml:"broken,omitempty"    json:"broken,omitempty"`
	Canonical string `yaml:"canonical,omitempty" json:"canonical,omitempty"`
	Label     string `yaml:"label,omitempty"     json:"label,omitempty"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Include:             []string{"*.html"},
		BackupRetentionDays: DefaultRetentionDays,
	}
}

// Retention returns the backup retention as a duration.
func (c Config) Retention() time.Duration {
	return time.Duration(c.BackupRetentionDays) * 24 * time.Hour
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	if len(c.Include) == 0 {
		return fmt.Errorf("include must list at least one glob")
	}
	if err := validateGlobs("include", c.Include); err != nil {
		return err
	}
	if err := validateGlobs("exclude", c.Exclude); err != nil {
		return err
	}

	for i, name := range c.Disable {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("disable[%d] must not be empty", i)
		}
	}

	for i, p := range c.Patterns {
		if _, err := p.Entry(); err != nil {
			return fmt.Errorf("patterns[%d]: %w", i, err)
		}
	}

	if c.BackupRetentionDays < 0 {
		return fmt.Errorf("backup_retention_days must be >= 0 (got %d)", c.BackupRetentionDays)
	}

	return nil
}

// Table applies Disable and Patterns to base. Custom patterns are placed
// ahead of the built-in ones.
func (c Config) Table(base *mojibake.Table) (*mojibake.Table, error) {
	table, err := base.Without(c.Disable...)
	if err != nil {
		return nil, fmt.Errorf("disable: %w", err)
	}
	if len(c.Patterns) == 0 {
		return table, nil
	}

	custom := make([]mojibake.Entry, 0, len(c.Patterns))
	for i, p := range c.Patterns {
		e, err := p.Entry()
		if err != nil {
			return nil, fmt.Errorf("patterns[%d]: %w", i, err)
		}
		custom = append(custom, e)
	}

	table, err = table.Prepend(custom...)
	if err != nil {
		return nil, fmt.Errorf("patterns: %w", err)
	}
	return table, nil
}

// Entry converts the declaration into a table entry.
func (p PatternConfig) Entry() (mojibake.Entry, error) {
	if p.Name == "" {
		return mojibake.Entry{}, fmt.Errorf("name must not be empty")
	}

	if p.Char == "" {
		if p.Broken == "" || p.Canonical == "" {
			return mojibake.Entry{}, fmt.Errorf("pattern %q needs either char or both broken and canonical", p.Name)
		}
		label := p.Label
		if label == "" {
			label = p.Name
		}
		return mojibake.Entry{Name: p.Name, Broken: p.Broken, Canonical: p.Canonical, Label: label}, nil
	}

	r, size := utf8.DecodeRuneInString(p.Char)
	if r == utf8.RuneError || size != len(p.Char) {
		return mojibake.Entry{}, fmt.Errorf("pattern %q: char must be a single character (got %q)", p.Name, p.Char)
	}

	e, err := mojibake.Derive(p.Name, r, p.Label)
	if err != nil {
		return mojibake.Entry{}, err
	}
	if p.Broken != "" {
		e.Broken = p.Broken
	}
	if p.Canonical != "" {
		e.Canonical = p.Canonical
	}
	return e, nil
}

func validateGlobs(field string, globs []string) error {
	for i, g := range globs {
		if g == "" {
			return fmt.Errorf("%s[%d] must not be empty", field, i)
		}
		if strings.ContainsAny(g, `/\`) {
			return fmt.Errorf("%s[%d] = %q: only file name globs are supported", field, i, g)
		}
		if _, err := filepath.Match(g, ""); err != nil {
			return fmt.Errorf("%s[%d] = %q: %w", field, i, g, err)
		}
	}
	return nil
}
