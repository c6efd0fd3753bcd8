// Copyright 2026 The Eventcheck Authors
// SPDX-License-Identifier: MIT

// Package schema checks that an input header matches the fixed event-record
// column layout. A mismatch is reported as data, never as an error: callers
// decide whether to stop processing.
package schema

import (
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Status is the outcome of a schema check as it appears in reports.
type Status string

const (
	Passed Status = "PASSED"
	Failed Status = "FAILED"
)

// expected is the ordered column list every input must carry.
var expected = []string{
	"event_id",
	"timestamp",
	"user_id",
	"ip",
	"country",
	"event_type",
	"amount",
}

// maxSuggestDist bounds how far an unexpected column may be from an expected
// one before no suggestion is offered.
const maxSuggestDist = 3

// utf8BOM is stripped from the first header cell before comparison.
const utf8BOM = "\ufeff"

// Expected returns a copy of the expected column list.
func Expected() []string {
	return slices.Clone(expected)
}

// Result describes how an observed header compares to the expected schema.
// Missing, Unexpected and Suggestions are diagnostics only; Status is decided
// solely by exact equality.
type Result struct {
	Status     Status
	Observed   []string
	Missing    []string
	Unexpected []string

	// Suggestions maps an unexpected column to the closest expected column.
	Suggestions map[string]string
}

// Passed reports whether the header matched exactly.
func (r Result) Passed() bool {
	return r.Status == Passed
}

// Check compares header against the expected schema. The header must have
// the same names in the same order with the same length.
func Check(header []string) Result {
	observed := slices.Clone(header)
	if len(observed) > 0 {
		observed[0] = strings.TrimPrefix(observed[0], utf8BOM)
	}

	if slices.Equal(observed, expected) {
		return Result{Status: Passed, Observed: observed}
	}

	res := Result{
		Status:      Failed,
		Observed:    observed,
		Suggestions: make(map[string]string),
	}
	for _, col := range expected {
		if !slices.Contains(observed, col) {
			res.Missing = append(res.Missing, col)
		}
	}
	for _, col := range observed {
		if slices.Contains(expected, col) {
			continue
		}
		res.Unexpected = append(res.Unexpected, col)
		if hint := closestColumn(col, res.Missing); hint != "" {
			res.Suggestions[col] = hint
		}
	}
	return res
}

// closestColumn finds the candidate nearest to input by edit distance.
// Returns "" if nothing is within maxSuggestDist.
func closestColumn(input string, candidates []string) string {
	best := ""
	bestDist := maxSuggestDist + 1
	in := strings.ToLower(strings.TrimSpace(input))
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(in, c); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}
