// Copyright 2026 The Eventcheck Authors
// SPDX-License-Identifier: MIT

// Package source reads comma-delimited event files into a header and a
// sequence of records.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/davetashner/eventcheck/internal/validate"
)

// ErrNoHeader is returned when the input contains no header record.
var ErrNoHeader = errors.New("input has no header row")

const utf8BOM = "\ufeff"

// Input is a fully read event file.
type Input struct {
	Header  []string
	Records [][]string
}

// Read consumes r to EOF. Blank lines are skipped and records may have any
// number of fields; short or long records are handled during validation.
// A UTF-8 byte-order mark before the first header cell is dropped.
// Any read or parse error is returned wrapped.
func Read(r io.Reader) (*Input, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	in := &Input{Header: header}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record %d: %w", len(in.Records)+1, err)
		}
		in.Records = append(in.Records, rec)
	}
	return in, nil
}

// RawRows keys each record by header column name. Row numbers start at 1
// with the first data record. Cells past the end of the header are dropped;
// columns the record is too short to reach are left out of the map.
func (in *Input) RawRows() []validate.RawRow {
	rows := make([]validate.RawRow, 0, len(in.Records))
	for i, rec := range in.Records {
		vals := make(map[string]string, len(in.Header))
		for j, col := range in.Header {
			if j < len(rec) {
				vals[col] = rec[j]
			}
		}
		rows = append(rows, validate.RawRow{Number: i + 1, Values: vals})
	}
	return rows
}
