// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mstfmt

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// A Reader reads a measurement table one row at a time.
//
// Its API is modeled on bufio.Scanner. Unlike a benchmark log, a
// measurement table has no recoverable errors: the first malformed
// row stops the Reader, and Err reports why.
//
// The zero value of the Reader is a valid Reader, but the user must
// call Reset before using it.
type Reader struct {
	csv      *csv.Reader
	fileName string
	names    [2]string

	header *Header
	row    Row
	index  int
	err    error
}

// A MalformedRowError reports a row of a measurement table that does
// not match the table's schema. Row 0 is the header.
type MalformedRowError struct {
	FileName string
	Line     int
	Row      int
	Column   string
	Msg      string
	Err      error // underlying parse error, if any
}

func (e *MalformedRowError) Error() string {
	what := "header"
	if e.Row > 0 {
		what = fmt.Sprintf("row %d", e.Row)
	}
	if e.Column != "" {
		what += ", column " + e.Column
	}
	return fmt.Sprintf("%s:%d: %s: %s", e.FileName, e.Line, what, e.Msg)
}

func (e *MalformedRowError) Unwrap() error {
	return e.Err
}

// NewReader constructs a reader to parse a measurement table from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.csv = csv.NewReader(ior)
	// Row widths are checked against the header, which gives
	// better errors than csv's own check.
	r.csv.FieldsPerRecord = -1
	r.csv.TrimLeadingSpace = true
	r.csv.ReuseRecord = true
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.header = nil
	r.row = Row{}
	r.index = 0
	r.err = nil
}

// SetComma sets the field delimiter. It must be called before the
// first call to Header or Scan.
func (r *Reader) SetComma(comma rune) {
	r.csv.Comma = comma
}

// SetNames forces the names of algorithms A and B, rather than
// detecting them from the header. It must be called before the first
// call to Header or Scan.
func (r *Reader) SetNames(a, b string) {
	r.names = [2]string{a, b}
}

// Header reads and returns the table header, if it has not already
// been read.
func (r *Reader) Header() (*Header, error) {
	if r.header != nil || r.err != nil {
		return r.header, r.err
	}
	fields, err := r.csv.Read()
	if err != nil {
		if err == io.EOF {
			r.err = &MalformedRowError{FileName: r.fileName, Line: 1, Msg: "missing header"}
		} else {
			r.err = r.csvError(err)
		}
		return nil, r.err
	}
	h, err := ParseHeader(fields, r.names)
	if err != nil {
		var mre *MalformedRowError
		if errors.As(err, &mre) {
			mre.FileName = r.fileName
			mre.Line, _ = r.csv.FieldPos(0)
		}
		r.err = err
		return nil, err
	}
	r.header = h
	return h, nil
}

// Scan advances the reader to the next row and reports whether a row
// was read. The caller should use the Row method to get the row. If
// Scan reaches EOF, an I/O error occurs, or a row is malformed, it
// returns false, in which case the caller should use the Err method
// to check for errors.
func (r *Reader) Scan() bool {
	if _, err := r.Header(); err != nil {
		return false
	}

	for {
		fields, err := r.csv.Read()
		if err == io.EOF {
			return false
		} else if err != nil {
			r.err = r.csvError(err)
			return false
		}
		if len(fields) == 1 && strings.TrimSpace(fields[0]) == "" {
			// Blank line.
			continue
		}

		r.index++
		line, _ := r.csv.FieldPos(0)
		row, err := r.parseRow(fields, line)
		if err != nil {
			r.err = err
			return false
		}
		r.row = row
		return true
	}
}

// Row returns the last row read.
func (r *Reader) Row() Row {
	return r.row
}

// Err returns the first error that stopped the Reader, or nil if it
// stopped at EOF.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) csvError(err error) error {
	mre := &MalformedRowError{FileName: r.fileName, Row: r.index + 1, Msg: err.Error(), Err: err}
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		mre.Line = pe.Line
		mre.Msg = pe.Err.Error()
	}
	if r.header == nil {
		mre.Row = 0
	}
	return mre
}

// parseRow parses fields as a data row.
func (r *Reader) parseRow(fields []string, line int) (Row, error) {
	h := r.header
	row := Row{Index: r.index, Line: line}
	malformed := func(col int, msg string, err error) error {
		return &MalformedRowError{
			FileName: r.fileName, Line: line, Row: r.index,
			Column: r.columnName(col), Msg: msg, Err: err,
		}
	}

	if len(fields) < h.width {
		return row, malformed(len(fields), fmt.Sprintf("have %d fields, want at least %d", len(fields), h.width), nil)
	}

	var err error
	if row.Vertices, err = atoi(fields[h.vertices]); err != nil {
		return row, malformed(h.vertices, numMsg(err), err)
	}
	if row.Vertices < 0 {
		return row, malformed(h.vertices, "negative vertex count", nil)
	}
	row.GraphType = strings.TrimSpace(fields[h.graphType])

	for i, m := range []*Measurement{&row.A, &row.B} {
		t, err := atof(fields[h.time[i]])
		if err != nil {
			return row, malformed(h.time[i], numMsg(err), err)
		}
		if t < 0 || math.IsInf(t, 0) || math.IsNaN(t) {
			return row, malformed(h.time[i], "time must be finite and non-negative", nil)
		}
		m.TimeMs = t * h.factor[i]

		ops, err := strconv.ParseInt(strings.TrimSpace(fields[h.ops[i]]), 10, 64)
		if err != nil {
			return row, malformed(h.ops[i], numMsg(err), err)
		}
		if ops < 0 {
			return row, malformed(h.ops[i], "negative operation count", nil)
		}
		m.Ops = ops

		c, err := atof(fields[h.cost[i]])
		if err != nil {
			return row, malformed(h.cost[i], numMsg(err), err)
		}
		if math.IsInf(c, 0) || math.IsNaN(c) {
			return row, malformed(h.cost[i], "cost must be finite", nil)
		}
		m.Cost = c
	}
	return row, nil
}

// columnName returns the header name of column col, or a positional
// name if the header has no such column.
func (r *Reader) columnName(col int) string {
	h := r.header
	switch col {
	case h.vertices:
		return ColVertices
	case h.graphType:
		return ColGraphType
	}
	for i := range h.Names {
		switch col {
		case h.time[i]:
			return h.Names[i] + "_Time_" + h.TimeUnits[i]
		case h.ops[i]:
			return h.Names[i] + suffixOps
		case h.cost[i]:
			return h.Names[i] + suffixCost
		}
	}
	return fmt.Sprintf("#%d", col+1)
}

// Parsing helpers.

func atoi(x string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(x))
}

func atof(x string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(x), 64)
}

// numMsg returns a short description of a strconv error.
func numMsg(err error) string {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return fmt.Sprintf("parsing %q: %s", ne.Num, ne.Err)
	}
	return err.Error()
}
