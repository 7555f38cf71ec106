// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mstfmt

import (
	"fmt"
	"strings"

	"github.com/univ-mst/mstperf/mstunit"
)

// Canonical column names and suffixes.
const (
	ColVertices  = "Vertices"
	ColGraphType = "Graph_Type"

	suffixOps  = "_Operations"
	suffixCost = "_Cost"
)

// A Header describes the layout of a measurement table: which column
// holds each field, and the names of the two algorithms.
type Header struct {
	// Names are the names of algorithms A and B.
	Names [2]string
	// TimeUnits are the units of the A and B time columns as
	// written in the header.
	TimeUnits [2]string

	vertices, graphType int
	time, ops, cost     [2]int
	factor              [2]float64

	// width is the minimum number of fields a data row must have.
	width int
}

// algCols accumulates the columns of one candidate algorithm.
type algCols struct {
	name          string
	time          int
	unit          string
	factor        float64
	ops, cost     int
	hasTime       bool
	hasOps, hasCo bool
}

func (a *algCols) complete() bool {
	return a.hasTime && a.hasOps && a.hasCo
}

// missing returns the name of the first column a lacks.
func (a *algCols) missing() string {
	switch {
	case !a.hasTime:
		return a.name + "_Time_" + mstunit.Millis
	case !a.hasOps:
		return a.name + suffixOps
	}
	return a.name + suffixCost
}

// ParseHeader parses the header row of a measurement table.
//
// If names is the zero value, the algorithms are the first two names,
// in column order, for which the header has time, operations, and
// cost columns. Otherwise the header must have columns for exactly
// the given names. Additional columns are ignored.
//
// Errors are *MalformedRowError with Row 0.
func ParseHeader(fields []string, names [2]string) (*Header, error) {
	h := &Header{vertices: -1, graphType: -1}

	seen := make(map[string]bool)
	var order []string
	algs := make(map[string]*algCols)
	alg := func(name string) *algCols {
		a, ok := algs[name]
		if !ok {
			a = &algCols{name: name}
			algs[name] = a
			order = append(order, name)
		}
		return a
	}

	// Only recognized columns must be unique.
	dup := func(f string) error {
		if seen[f] {
			return &MalformedRowError{Column: f, Msg: "duplicate column"}
		}
		seen[f] = true
		return nil
	}

	for i, f := range fields {
		f = strings.TrimSpace(f)
		switch {
		case f == ColVertices:
			if err := dup(f); err != nil {
				return nil, err
			}
			h.vertices = i
		case f == ColGraphType:
			if err := dup(f); err != nil {
				return nil, err
			}
			h.graphType = i
		case strings.HasSuffix(f, suffixOps) && len(f) > len(suffixOps):
			if err := dup(f); err != nil {
				return nil, err
			}
			a := alg(strings.TrimSuffix(f, suffixOps))
			a.ops, a.hasOps = i, true
		case strings.HasSuffix(f, suffixCost) && len(f) > len(suffixCost):
			if err := dup(f); err != nil {
				return nil, err
			}
			a := alg(strings.TrimSuffix(f, suffixCost))
			a.cost, a.hasCo = i, true
		default:
			name, unit, ok := mstunit.SplitTimeColumn(f)
			if !ok {
				// Not a column we know. Ignore it.
				continue
			}
			factor, ok := mstunit.Tidy(unit)
			if !ok {
				continue
			}
			if err := dup(f); err != nil {
				return nil, err
			}
			a := alg(name)
			if a.hasTime {
				return nil, &MalformedRowError{Column: f, Msg: fmt.Sprintf("second time column for %s", name)}
			}
			a.time, a.unit, a.factor, a.hasTime = i, unit, factor, true
		}
	}

	if h.vertices < 0 {
		return nil, &MalformedRowError{Column: ColVertices, Msg: "missing required column"}
	}
	if h.graphType < 0 {
		return nil, &MalformedRowError{Column: ColGraphType, Msg: "missing required column"}
	}

	// Pick the two algorithms.
	var chosen []*algCols
	if names != [2]string{} {
		for _, n := range names {
			a := alg(n)
			if !a.complete() {
				return nil, &MalformedRowError{Column: a.missing(), Msg: "missing required column"}
			}
			chosen = append(chosen, a)
		}
	} else {
		for _, n := range order {
			if a := algs[n]; a.complete() && len(chosen) < 2 {
				chosen = append(chosen, a)
			}
		}
		if len(chosen) < 2 {
			for _, n := range order {
				if a := algs[n]; !a.complete() {
					return nil, &MalformedRowError{Column: a.missing(), Msg: "missing required column"}
				}
			}
			return nil, &MalformedRowError{Msg: fmt.Sprintf("need time, operations, and cost columns for two algorithms; found %d", len(chosen))}
		}
	}

	h.width = max(h.vertices, h.graphType) + 1
	for i, a := range chosen {
		h.Names[i] = a.name
		h.TimeUnits[i] = a.unit
		h.time[i], h.ops[i], h.cost[i] = a.time, a.ops, a.cost
		h.factor[i] = a.factor
		h.width = max(h.width, a.time+1, a.ops+1, a.cost+1)
	}
	return h, nil
}

// Columns returns the canonical column names for algorithms named a
// and b, with times in milliseconds.
func Columns(a, b string) []string {
	return []string{
		ColVertices, ColGraphType,
		a + "_Time_" + mstunit.Millis, b + "_Time_" + mstunit.Millis,
		a + suffixOps, b + suffixOps,
		a + suffixCost, b + suffixCost,
	}
}
