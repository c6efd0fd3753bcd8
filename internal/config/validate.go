package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.ReportPath != "" {
		if strings.TrimSpace(cfg.ReportPath) != cfg.ReportPath {
			errs = append(errs, fmt.Sprintf("report_path: must not have surrounding whitespace, got %q", cfg.ReportPath))
		}
		if strings.HasSuffix(cfg.ReportPath, "/") || strings.HasSuffix(cfg.ReportPath, string(filepath.Separator)) {
			errs = append(errs, fmt.Sprintf("report_path: must name a file, got directory %q", cfg.ReportPath))
		} else if !strings.EqualFold(filepath.Ext(cfg.ReportPath), ".json") {
			errs = append(errs, fmt.Sprintf("report_path: must end in .json, got %q", cfg.ReportPath))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
