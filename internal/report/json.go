// Copyright 2026 The Eventcheck Authors
// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONOptions controls JSON rendering.
type JSONOptions struct {
	// Compact writes a single line instead of 4-space indented output.
	Compact bool
}

// WriteJSON writes r as a JSON document followed by a newline.
func WriteJSON(w io.Writer, r *Report, opts JSONOptions) error {
	out := *r
	if out.ChecksPerformed == nil {
		out.ChecksPerformed = []string{}
	}
	if out.FailedDetails == nil {
		out.FailedDetails = []FailedDetail{}
	}

	var data []byte
	var err error
	if opts.Compact {
		data, err = json.Marshal(out)
	} else {
		data, err = json.MarshalIndent(out, "", "    ")
	}
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write report trailing newline: %w", err)
	}
	return nil
}

// ReadJSON parses a report previously written by WriteJSON.
func ReadJSON(rd io.Reader) (*Report, error) {
	var r Report
	dec := json.NewDecoder(rd)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&r); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &r, nil
}
