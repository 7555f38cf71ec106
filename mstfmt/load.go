// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mstfmt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// A SourceNotFoundError reports a measurement table that could not
// be opened or read.
type SourceNotFoundError struct {
	Path string
	Err  error
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *SourceNotFoundError) Unwrap() error {
	return e.Err
}

// A Loader reads whole measurement tables.
//
// The zero Loader reads comma-separated tables and detects the
// algorithm names from the header.
type Loader struct {
	// Comma is the field delimiter. If 0, it is ','.
	Comma rune

	// Names, if non-zero, forces the names of algorithms A and B.
	Names [2]string
}

// Load reads the measurement table at path using the zero Loader.
func Load(path string) (*Table, error) {
	var l Loader
	return l.Load(path)
}

// Load reads the measurement table at path.
//
// Files ending in ".json" are read as driver results files (see
// ReadJSON); anything else is read as a delimited table.
//
// If path cannot be read, Load returns a *SourceNotFoundError. If any
// row is malformed, it returns a *MalformedRowError and no table.
func (l *Loader) Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceNotFoundError{path, err}
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ReadJSON(f, path)
	}
	return l.Read(f, path)
}

// Read reads a delimited measurement table from r. fileName is used
// in error messages.
func (l *Loader) Read(r io.Reader, fileName string) (*Table, error) {
	reader := NewReader(r, fileName)
	if l.Comma != 0 {
		reader.SetComma(l.Comma)
	}
	if l.Names != [2]string{} {
		reader.SetNames(l.Names[0], l.Names[1])
	}

	h, err := reader.Header()
	if err != nil {
		return nil, l.ioError(err, fileName)
	}
	t := &Table{Names: h.Names, Rows: []Row{}}
	for reader.Scan() {
		t.Rows = append(t.Rows, reader.Row())
	}
	if err := reader.Err(); err != nil {
		return nil, l.ioError(err, fileName)
	}
	return t, nil
}

// ioError converts read failures that are not about the table's
// content into *SourceNotFoundError.
func (l *Loader) ioError(err error, fileName string) error {
	if mre, ok := err.(*MalformedRowError); ok {
		if _, isPath := mre.Err.(*os.PathError); isPath {
			return &SourceNotFoundError{fileName, mre.Err}
		}
	}
	return err
}
