// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msttab

import (
	"bytes"
	"strings"
	"testing"

	"github.com/univ-mst/mstperf/mstfmt"
	"github.com/univ-mst/mstperf/mstproc"
	"github.com/univ-mst/mstperf/mststat"
)

func scenario() *mstfmt.Table {
	return &mstfmt.Table{
		Names: [2]string{"Prim", "Kruskal"},
		Rows: []mstfmt.Row{
			{Index: 1, Line: 2, Vertices: 10, GraphType: "Small",
				A: mstfmt.Measurement{TimeMs: 1.0, Ops: 100, Cost: 50},
				B: mstfmt.Measurement{TimeMs: 2.0, Ops: 80, Cost: 50}},
			{Index: 2, Line: 3, Vertices: 20, GraphType: "Small",
				A: mstfmt.Measurement{TimeMs: 3.0, Ops: 150, Cost: 70},
				B: mstfmt.Measurement{TimeMs: 1.0, Ops: 90, Cost: 71}},
		},
	}
}

const scenarioReport = `=== Performance Analysis Summary ===
Total graphs analyzed: 2
Small graphs (< 30 vertices): 2
Medium graphs (< 300 vertices): 0
Large graphs (< 1000 vertices): 0
Extra graphs (< 2000 vertices): 0

=== Average Performance Metrics ===
Average Prim's execution time: 2.00 ms
Average Kruskal's execution time: 1.50 ms
Average Prim's operations: 125
Average Kruskal's operations: 85

=== Performance Comparison ===
Prim's algorithm faster in: 1 cases
Kruskal's algorithm faster in: 1 cases

=== Cost Verification ===
MST costs match in all 1 cases: ✗
row 2 (20 vertices, Small): Prim cost 70, Kruskal cost 71
`

const scenarioDetail = `
=== Category Breakdown ===
Small: 2 graphs, Prim 2.00 ms / 125 ops, Kruskal 1.50 ms / 85 ops

=== Size Buckets ===
Small graphs (< 30 vertices): 2
Medium graphs (< 300 vertices): 0
Large graphs (< 1000 vertices): 0
Extra graphs (< 2000 vertices): 0
Huge graphs (>= 2000 vertices): 0

=== Relative Performance ===
Kruskal's algorithm is faster on average by 0.50 ms
Kruskal's algorithm performs fewer operations on average by 40
Geomean time ratio (Prim/Kruskal): 1.225
Time ratio range: 0.500 to 3.000
`

func checkText(t *testing.T, s *mststat.Summary, opts Opts, want string) {
	t.Helper()
	var got bytes.Buffer
	if err := ToText(&got, s, opts); err != nil {
		t.Fatal(err)
	}
	if got.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", got.String(), want)
	}
}

func TestScenario(t *testing.T) {
	s := mststat.Summarize(scenario())
	checkText(t, s, Opts{}, scenarioReport)
	checkText(t, s, Opts{Detail: true}, scenarioReport+scenarioDetail)
}

func TestDeterministic(t *testing.T) {
	tab := scenario()
	first := strings.Join(Lines(mststat.Summarize(tab), Opts{Detail: true}), "\n")
	for i := 0; i < 5; i++ {
		if got := strings.Join(Lines(mststat.Summarize(tab), Opts{Detail: true}), "\n"); got != first {
			t.Fatalf("run %d differs:\n%s\nfirst:\n%s", i, got, first)
		}
	}
}

func TestEmpty(t *testing.T) {
	s := mststat.Summarize(&mstfmt.Table{Names: [2]string{"Prim", "Kruskal"}})
	checkText(t, s, Opts{}, `=== Performance Analysis Summary ===
Total graphs analyzed: 0
Small graphs (< 30 vertices): 0
Medium graphs (< 300 vertices): 0
Large graphs (< 1000 vertices): 0
Extra graphs (< 2000 vertices): 0

=== Average Performance Metrics ===
Average Prim's execution time: 0.00 ms
Average Kruskal's execution time: 0.00 ms
Average Prim's operations: 0
Average Kruskal's operations: 0

=== Performance Comparison ===
Prim's algorithm faster in: 0 cases
Kruskal's algorithm faster in: 0 cases

=== Cost Verification ===
MST costs match in all 0 cases: ✓
`)
}

func TestWarnings(t *testing.T) {
	tab := &mstfmt.Table{
		Names: [2]string{"Prim", "Kruskal"},
		Rows: []mstfmt.Row{
			{Index: 1, Vertices: 10, GraphType: "Small",
				A: mstfmt.Measurement{TimeMs: 1, Cost: 5}, B: mstfmt.Measurement{TimeMs: 2, Cost: 5}},
			{Index: 2, Vertices: 50, GraphType: "Small",
				A: mstfmt.Measurement{TimeMs: 1, Cost: 5}, B: mstfmt.Measurement{TimeMs: 0, Cost: 5}},
			{Index: 3, Vertices: 40, GraphType: "Dense",
				A: mstfmt.Measurement{TimeMs: 1, Cost: 5}, B: mstfmt.Measurement{TimeMs: 1, Cost: 5}},
			{Index: 4, Vertices: 400, GraphType: "Dense",
				A: mstfmt.Measurement{TimeMs: 1, Cost: 5}, B: mstfmt.Measurement{TimeMs: 1, Cost: 5}},
		},
	}
	lines := Lines(mststat.Summarize(tab), Opts{Detail: true})
	want := []string{
		"Total graphs analyzed: 4 ¹",
		"Small graphs (< 30 vertices): 2 ²",
		"Geomean time ratio (Prim/Kruskal): 0.794 ³",
		"¹ graphs labeled Dense span size buckets Medium, Large",
		"² graphs labeled Small span size buckets Small, Medium",
		"³ 1 of 4 ratios undefined (zero Kruskal time)",
	}
	have := make(map[string]bool)
	for _, line := range lines {
		have[line] = true
	}
	for _, line := range want {
		if !have[line] {
			t.Errorf("missing line %q in:\n%s", line, strings.Join(lines, "\n"))
		}
	}
}

func TestEqualAverages(t *testing.T) {
	tab := &mstfmt.Table{
		Names: [2]string{"Prim", "Kruskal"},
		Rows: []mstfmt.Row{
			{Index: 1, Vertices: 10, GraphType: "Small",
				A: mstfmt.Measurement{TimeMs: 1, Ops: 10, Cost: 5}, B: mstfmt.Measurement{TimeMs: 2, Ops: 20, Cost: 5}},
			{Index: 2, Vertices: 20, GraphType: "Small",
				A: mstfmt.Measurement{TimeMs: 2, Ops: 20, Cost: 5}, B: mstfmt.Measurement{TimeMs: 1, Ops: 10, Cost: 5}},
		},
	}
	lines := strings.Join(Lines(mststat.Summarize(tab), Opts{Detail: true}), "\n")
	for _, want := range []string{
		"\nPrim's and Kruskal's algorithms are equally fast on average\n",
		"\nPrim's and Kruskal's algorithms perform equally many operations on average\n",
	} {
		if !strings.Contains(lines, want) {
			t.Errorf("missing line %q in:\n%s", strings.Trim(want, "\n"), lines)
		}
	}
	if strings.Contains(lines, "on average by") {
		t.Errorf("equal averages reported as a difference:\n%s", lines)
	}
}

func TestOrder(t *testing.T) {
	tab := scenario()
	tab.Rows = append(tab.Rows, mstfmt.Row{Index: 3, Vertices: 100, GraphType: "Medium",
		A: mstfmt.Measurement{TimeMs: 4, Ops: 10, Cost: 1}, B: mstfmt.Measurement{TimeMs: 5, Ops: 20, Cost: 1}})
	o, err := mstproc.ParseOrder("(Medium)")
	if err != nil {
		t.Fatal(err)
	}
	lines := Lines(mststat.Summarize(tab), Opts{Detail: true, Order: o})
	var breakdown []string
	for i, line := range lines {
		if line == "=== Category Breakdown ===" {
			for _, l := range lines[i+1:] {
				if l == "" {
					break
				}
				breakdown = append(breakdown, l)
			}
		}
	}
	want := []string{"Medium: 1 graphs, Prim 4.00 ms / 10 ops, Kruskal 5.00 ms / 20 ops"}
	if strings.Join(breakdown, "\n") != strings.Join(want, "\n") {
		t.Errorf("breakdown:\n%s\nwant:\n%s", strings.Join(breakdown, "\n"), strings.Join(want, "\n"))
	}
}

func TestSuperscript(t *testing.T) {
	for i, want := range map[int]string{0: "⁰", 1: "¹", 10: "¹⁰", 123: "¹²³"} {
		if got := superscript(i); got != want {
			t.Errorf("superscript(%d) = %s, want %s", i, got, want)
		}
	}
}
