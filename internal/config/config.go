// Copyright 2026 The Eventcheck Authors
// SPDX-License-Identifier: MIT

// Package config handles optional .eventcheck.yaml / .eventcheck.toml files.
// Configuration only affects where and how the report is written; the
// validation rules themselves are fixed.
package config

// Config represents the contents of a config file.
type Config struct {
	ReportPath  string `yaml:"report_path,omitempty" toml:"report_path,omitempty"`
	CompactJSON bool   `yaml:"compact_json,omitempty" toml:"compact_json,omitempty"`
	NoColor     bool   `yaml:"no_color,omitempty" toml:"no_color,omitempty"`
}

// Config file names looked up in the working directory, in priority order.
const (
	YAMLFileName = ".eventcheck.yaml"
	TOMLFileName = ".eventcheck.toml"
)

// DefaultReportPath is used when neither the command line nor the config
// names an output file.
const DefaultReportPath = "validation_report.json"

// ReportPathFor resolves the output path: an explicit argument wins, then the
// config value, then DefaultReportPath.
func (c *Config) ReportPathFor(arg string) string {
	if arg != "" {
		return arg
	}
	if c != nil && c.ReportPath != "" {
		return c.ReportPath
	}
	return DefaultReportPath
}
