package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/verakore/mojifix/internal/domain"
)

// FileName is the per-directory configuration file.
const FileName = ".mojifix.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .mojifix.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .mojifix.yaml from dir. Keys the file leaves out keep their
// DefaultConfig values; a missing file yields DefaultConfig.
func (l *YAMLLoader) Load(dir string) (domain.Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, err
	}

	cfg := domain.DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return cfg, nil
}

const header = `# mojifix configuration
#
# include/exclude: file name globs matched in the target directory only.
# disable: built-in pattern names to turn off (see "mojifix patterns").
# patterns: custom entries, checked before the built-in ones, e.g.
#   - name: trademark
#     char: "™"
# backup_retention_days: age after which "mojifix backups prune" removes backups.

`

// Encode renders cfg as a commented .mojifix.yaml document.
func Encode(cfg domain.Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", FileName, err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
