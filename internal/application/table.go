package application

import (
	"fmt"

	"github.com/verakore/mojifix/internal/domain"
	"github.com/verakore/mojifix/internal/domain/mojibake"
)

// loadTable loads the configuration for dir and applies it to base.
func loadTable(loader domain.ConfigLoader, base *mojibake.Table, dir string) (domain.Config, *mojibake.Table, error) {
	cfg, err := loader.Load(dir)
	if err != nil {
		return domain.Config{}, nil, fmt.Errorf("loading config: %w", err)
	}

	table, err := cfg.Table(base)
	if err != nil {
		return domain.Config{}, nil, fmt.Errorf("building pattern table: %w", err)
	}
	return cfg, table, nil
}

// includeFor returns the override when set, the configured globs otherwise.
func includeFor(cfg domain.Config, override []string) []string {
	if len(override) > 0 {
		return override
	}
	return cfg.Include
}
