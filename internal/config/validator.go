package config

import (
	"fmt"
	"strings"
)

// Validate checks configuration values and returns an error describing
// every invalid one.
func Validate(cfg Config) error {
	var errs []string

	if cfg.Iterations <= 0 {
		errs = append(errs, fmt.Sprintf("iterations must be positive, got: %d", cfg.Iterations))
	}
	if cfg.ResultsDir == "" {
		errs = append(errs, "results_dir must not be empty")
	}
	if cfg.ResultsFile == "" {
		errs = append(errs, "results_file must not be empty")
	}
	for _, name := range cfg.KEMs {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, "kems contains an empty algorithm name")
			break
		}
	}
	for _, name := range cfg.Signatures {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, "signatures contains an empty algorithm name")
			break
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
