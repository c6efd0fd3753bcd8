// Copyright 2026 The Eventcheck Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/davetashner/eventcheck/internal/schema"
)

// RenderConsole writes the human-readable view of r to w.
func RenderConsole(w io.Writer, r *Report) error {
	cw := &consoleWriter{w: w}

	if r.SchemaCheck == schema.Passed {
		cw.printf("Schema check %s (expected columns match)\n", colorStatus(r.SchemaCheck))
	} else {
		cw.printf("Schema check %s (columns do not match expected schema)\n", colorStatus(r.SchemaCheck))
	}

	cw.printf("\n%s\n", sectionTitle("--- Validation Report ---"))
	cw.printf("Checks performed: [%s]\n", strings.Join(r.ChecksPerformed, ", "))

	switch {
	case r.SchemaCheck != schema.Passed:
		cw.printf("Row-level validation skipped (schema check failed)\n")
	case r.Summary.FailedRows > 0:
		cw.printf("Row-level validation %s (%d issues found)\n",
			colorStatus(schema.Failed), r.Summary.FailedRows)
	default:
		cw.printf("All rows %s row-level validation\n", colorStatus(schema.Passed))
	}

	cw.printf("Total rows   : %d\n", r.Summary.TotalRows)
	cw.printf("Passed rows  : %d\n", r.Summary.PassedRows)
	cw.printf("Failed rows  : %s\n", colorFailures(r.Summary.FailedRows))
	if cw.err != nil {
		return cw.err
	}

	if len(r.FailedDetails) == 0 {
		return nil
	}

	cw.printf("\n%s\n", sectionTitle("Failed details:"))
	if cw.err != nil {
		return cw.err
	}
	tbl := NewTable(
		Column{Header: "Row", Align: AlignRight},
		Column{Header: "Column"},
		Column{Header: "Invalid value", Color: colorInvalid},
	)
	for _, d := range r.FailedDetails {
		tbl.AddRow(strconv.Itoa(d.Row), d.Column, d.InvalidValue)
	}
	return tbl.Render(w)
}

// consoleWriter keeps the first write error so a sequence of prints can be
// checked once.
type consoleWriter struct {
	w   io.Writer
	err error
}

func (cw *consoleWriter) printf(format string, args ...any) {
	if cw.err != nil {
		return
	}
	if _, err := fmt.Fprintf(cw.w, format, args...); err != nil {
		cw.err = fmt.Errorf("render console report: %w", err)
	}
}
