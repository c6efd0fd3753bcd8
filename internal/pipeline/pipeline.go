// Copyright 2026 The Eventcheck Authors
// SPDX-License-Identifier: MIT

// Package pipeline drives one validation run: read the event file, gate on
// the schema check, validate every row and build the report.
package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/davetashner/eventcheck/internal/report"
	"github.com/davetashner/eventcheck/internal/schema"
	"github.com/davetashner/eventcheck/internal/source"
	"github.com/davetashner/eventcheck/internal/testable"
	"github.com/davetashner/eventcheck/internal/validate"
)

// ErrNoHeader is returned when the input file has no header row.
var ErrNoHeader = source.ErrNoHeader

// State names the terminal state a run reached.
type State string

const (
	StateSchemaFailed  State = "SCHEMA_FAILED"
	StateReportEmitted State = "REPORT_EMITTED"
)

// Options configures a run.
type Options struct {
	// InputPath is the event file to validate.
	InputPath string

	// FS is used for all file access. Defaults to testable.DefaultFS.
	FS testable.FileSystem

	// Logger receives progress and per-row diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// Result is the outcome of a run that did not hit a fatal error.
type Result struct {
	State  State
	Schema schema.Result
	Rows   []validate.RowResult
	Report *report.Report
}

// Run executes a single pass over the input. Only failures to open or read
// the input are returned as errors; schema and row failures are part of the
// Result.
func Run(opts Options) (*Result, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = testable.DefaultFS
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	in, err := readInput(fsys, opts.InputPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("input read", "path", opts.InputPath, "records", len(in.Records))

	sch := schema.Check(in.Header)
	if !sch.Passed() {
		logger.Warn("schema check failed",
			"expected", schema.Expected(),
			"found", sch.Observed,
			"missing", sch.Missing,
			"unexpected", sch.Unexpected,
		)
		for col, hint := range sch.Suggestions {
			logger.Warn("unexpected column", "column", col, "did_you_mean", hint)
		}
		return &Result{
			State:  StateSchemaFailed,
			Schema: sch,
			Report: report.SchemaFailed(),
		}, nil
	}
	logger.Info("schema check passed", "columns", len(in.Header))

	rows := in.RawRows()
	logger.Debug("validating rows", "rows", len(rows), "rules", len(validate.Rules()))
	results := validate.Rows(rows)
	for _, res := range results {
		v := res.Violation
		if v == nil {
			continue
		}
		logger.Debug("row failed",
			"row", res.Row,
			"column", v.Column,
			"rule", v.Kind.String(),
			"check", string(v.Check),
			"value", v.Value,
			"reason", v.Message,
		)
	}
	rep := report.Build(sch, results)

	logger.Info("rows validated",
		"total", rep.Summary.TotalRows,
		"passed", rep.Summary.PassedRows,
		"failed", rep.Summary.FailedRows,
		"valid", rep.Valid(),
	)

	return &Result{
		State:  StateReportEmitted,
		Schema: sch,
		Rows:   results,
		Report: rep,
	}, nil
}

// readInput opens, fully reads and closes the input before any validation.
func readInput(fsys testable.FileSystem, path string) (*source.Input, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only input

	in, err := source.Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return in, nil
}

// WriteReport writes r as JSON to path and returns the absolute path written.
func WriteReport(fsys testable.FileSystem, path string, r *report.Report, opts report.JSONOptions) (string, error) {
	if fsys == nil {
		fsys = testable.DefaultFS
	}

	w, err := fsys.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	if err := report.WriteJSON(w, r, opts); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close report: %w", err)
	}

	abs, err := fsys.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}
