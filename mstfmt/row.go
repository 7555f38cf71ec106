// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mstfmt reads tables of minimum-spanning-tree benchmark
// measurements.
//
// A measurement table is a delimited text file with a header row and
// one data row per benchmarked graph:
//
//	Vertices,Graph_Type,Prim_Time_ms,Kruskal_Time_ms,Prim_Operations,Kruskal_Operations,Prim_Cost,Kruskal_Cost
//	10,Small,1.25,2.5,100,80,50,50
//
// The two algorithm names ("Prim" and "Kruskal" above) are taken from
// the header, so the table may compare any two algorithms. They are
// referred to as A and B, in header order. The time unit suffix may be
// any unit understood by mstunit.Tidy; times are always reported in
// milliseconds.
//
// The Reader is a streaming operation modeled on bufio.Scanner. Load
// and Loader.Load read an entire file into a Table, which is what
// most callers want: tables are small, and a malformed row aborts
// the whole load.
package mstfmt

import "fmt"

// A Measurement is one algorithm's result on one graph.
type Measurement struct {
	// TimeMs is the wall-clock execution time in milliseconds.
	TimeMs float64
	// Ops is the algorithm's operation counter.
	Ops int64
	// Cost is the total weight of the spanning tree produced.
	Cost float64
}

// A Row is a single benchmark observation comparing algorithms A and
// B on one graph.
//
// Rows are values; once loaded they are never modified.
type Row struct {
	// Index is the 1-based index of this row among the data rows
	// of its table. The header is not counted.
	Index int
	// Line is the line of the source file this row started on, or
	// 0 if unknown.
	Line int

	// Vertices is the number of vertices in the graph.
	Vertices int
	// GraphType is the graph's category label, such as "Small".
	// The set of labels is open.
	GraphType string

	A, B Measurement
}

// CostsMatch reports whether both algorithms produced trees of
// exactly the same weight. There is no tolerance.
func (r Row) CostsMatch() bool {
	return r.A.Cost == r.B.Cost
}

// A Table is an ordered sequence of Rows and the names of the two
// algorithms they compare.
type Table struct {
	// Names are the names of algorithms A and B.
	Names [2]string
	// Rows are the data rows in source order.
	Rows []Row
}

// Len returns the number of rows in t.
func (t *Table) Len() int {
	return len(t.Rows)
}

// String returns a one-line description of the row, for diagnostics.
func (r Row) String() string {
	return fmt.Sprintf("#%d %s/%d A{%vms %d ops cost %v} B{%vms %d ops cost %v}",
		r.Index, r.GraphType, r.Vertices,
		r.A.TimeMs, r.A.Ops, r.A.Cost,
		r.B.TimeMs, r.B.Ops, r.B.Cost)
}
