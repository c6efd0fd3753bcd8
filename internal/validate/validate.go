// Copyright 2026 The Eventcheck Authors
// SPDX-License-Identifier: MIT

// Package validate applies the per-column rule table to event rows.
// Each row is checked column by column in schema order: null check, then
// type/format check, then allowed values check. Evaluation of a row stops at
// the first violation, so a row reports at most one offending column.
// Violations are data; nothing in this package returns an error for a bad row.
package validate

import (
	"fmt"
	"strings"
)

// Check names a validation stage as it appears in reports.
type Check string

const (
	CheckSchema  Check = "Schema check"
	CheckNull    Check = "Null check"
	CheckFormat  Check = "Type/Format check"
	CheckAllowed Check = "Allowed values check"
)

// ChecksPerformed lists every stage of a full run in execution order.
var ChecksPerformed = []Check{CheckSchema, CheckNull, CheckFormat, CheckAllowed}

// NullValue is the evidence recorded for an empty cell.
const NullValue = "<NULL>"

// RawRow is one data record keyed by column name. Number is 1-based and
// counts data rows only (the header is not row 1).
type RawRow struct {
	Number int
	Values map[string]string
}

// Violation describes the first rule a row broke.
type Violation struct {
	Column  string
	Kind    Kind   // format rule of the column
	Value   string // raw offending token, NullValue for empty cells
	Check   Check
	Message string
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s %q", v.Column, v.Message, v.Value)
}

// RowResult is the outcome of validating a single row.
type RowResult struct {
	Row       int
	Passed    bool
	Violation *Violation // nil when Passed
}

// ValidateRow checks a row against every rule in column order and stops at
// the first violation.
func ValidateRow(row RawRow) RowResult {
	for _, rule := range rules {
		if v := checkCell(rule, row.Values[rule.Column]); v != nil {
			return RowResult{Row: row.Number, Violation: v}
		}
	}
	return RowResult{Row: row.Number, Passed: true}
}

// Rows validates rows sequentially. The result has one entry per input row,
// in input order.
func Rows(rows []RawRow) []RowResult {
	results := make([]RowResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, ValidateRow(row))
	}
	return results
}

// checkCell runs the three stages for one cell.
func checkCell(rule Rule, raw string) *Violation {
	value := strings.TrimSpace(raw)

	if IsNull(value) {
		evidence := value
		if evidence == "" {
			evidence = NullValue
		}
		return &Violation{
			Column:  rule.Column,
			Kind:    rule.Kind,
			Value:   evidence,
			Check:   CheckNull,
			Message: "value is null",
		}
	}

	if err := rule.checkFormat(value); err != nil {
		return &Violation{
			Column:  rule.Column,
			Kind:    rule.Kind,
			Value:   value,
			Check:   CheckFormat,
			Message: err.Error(),
		}
	}

	if applies, err := rule.checkAllowed(value); applies && err != nil {
		return &Violation{
			Column:  rule.Column,
			Kind:    rule.Kind,
			Value:   value,
			Check:   CheckAllowed,
			Message: err.Error(),
		}
	}

	return nil
}
