// Copyright 2026 The Eventcheck Authors
// SPDX-License-Identifier: MIT

// Package report aggregates row validation outcomes into a ValidationReport
// and renders it as console text or JSON. The JSON form is canonical; the
// console view presents the same information.
package report

import (
	"github.com/davetashner/eventcheck/internal/schema"
	"github.com/davetashner/eventcheck/internal/validate"
)

// Summary holds the row counts of a run. Failed always equals Total - Passed.
type Summary struct {
	TotalRows  int `json:"total_rows"`
	PassedRows int `json:"passed_rows"`
	FailedRows int `json:"failed_rows"`
}

// FailedDetail identifies the first offending cell of a failed row.
type FailedDetail struct {
	Row          int    `json:"row"`
	Column       string `json:"column"`
	InvalidValue string `json:"invalid_value"`
}

// Report is the outcome of one validation run.
type Report struct {
	SchemaCheck     schema.Status  `json:"schema_check"`
	ChecksPerformed []string       `json:"checks_performed"`
	Summary         Summary        `json:"summary"`
	FailedDetails   []FailedDetail `json:"failed_details"`
}

// Valid reports whether the schema matched and every row passed.
func (r *Report) Valid() bool {
	return r.SchemaCheck == schema.Passed && r.Summary.FailedRows == 0
}

// Builder accumulates row results in input order.
type Builder struct {
	total   int
	passed  int
	details []FailedDetail
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add records one row result. Passing rows only contribute to the counts.
func (b *Builder) Add(res validate.RowResult) {
	b.total++
	if res.Passed {
		b.passed++
		return
	}
	d := FailedDetail{Row: res.Row}
	if v := res.Violation; v != nil {
		d.Column = v.Column
		d.InvalidValue = v.Value
	}
	b.details = append(b.details, d)
}

// Build produces the report for a run whose schema check passed.
func (b *Builder) Build() *Report {
	details := make([]FailedDetail, len(b.details))
	copy(details, b.details)
	return &Report{
		SchemaCheck:     schema.Passed,
		ChecksPerformed: checkNames(validate.ChecksPerformed),
		Summary: Summary{
			TotalRows:  b.total,
			PassedRows: b.passed,
			FailedRows: b.total - b.passed,
		},
		FailedDetails: details,
	}
}

// SchemaFailed returns the report for a run stopped at the schema gate:
// only the schema check was performed and no rows were examined.
func SchemaFailed() *Report {
	return &Report{
		SchemaCheck:     schema.Failed,
		ChecksPerformed: checkNames([]validate.Check{validate.CheckSchema}),
		FailedDetails:   []FailedDetail{},
	}
}

// Build assembles a report from a schema verdict and the row results.
// Row results are ignored when the schema check failed.
func Build(sch schema.Result, results []validate.RowResult) *Report {
	if !sch.Passed() {
		return SchemaFailed()
	}
	b := NewBuilder()
	for _, res := range results {
		b.Add(res)
	}
	return b.Build()
}

func checkNames(checks []validate.Check) []string {
	names := make([]string, len(checks))
	for i, c := range checks {
		names[i] = string(c)
	}
	return names
}
