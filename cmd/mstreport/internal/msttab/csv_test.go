// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msttab

import (
	"bytes"
	"testing"

	"github.com/univ-mst/mstperf/mstfmt"
	"github.com/univ-mst/mstperf/mststat"
)

func TestToCSV(t *testing.T) {
	tab := scenario()
	tab.Rows = append(tab.Rows, mstfmt.Row{Index: 3, Vertices: 40, GraphType: "Medium",
		A: mstfmt.Measurement{TimeMs: 0.25, Cost: 9}, B: mstfmt.Measurement{TimeMs: 0, Cost: 9}})
	tab.Rows = append(tab.Rows, mstfmt.Row{Index: 4, Vertices: 50, GraphType: "Medium",
		A: mstfmt.Measurement{TimeMs: 1e10, Cost: 9}, B: mstfmt.Measurement{TimeMs: 1e-310, Cost: 9}})

	var out, warnings bytes.Buffer
	if err := ToCSV(&out, &warnings, tab, mststat.Summarize(tab)); err != nil {
		t.Fatal(err)
	}

	const want = `index,vertices,graph_type,Prim_time_ms,Kruskal_time_ms,ratio,cost_match
1,10,Small,1,2,0.5,true
2,20,Small,3,1,3,false
3,40,Medium,0.25,0,,true
4,50,Medium,1e+10,1e-310,,true
`
	if out.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", out.String(), want)
	}

	const wantWarnings = `G3: Prim cost 70, Kruskal cost 71
F4: ratio undefined (zero Kruskal time)
F5: ratio undefined (Prim/Kruskal time overflows)
`
	if warnings.String() != wantWarnings {
		t.Errorf("warnings:\n%s\nwant:\n%s", warnings.String(), wantWarnings)
	}
}

func TestCellName(t *testing.T) {
	for x, want := range map[int]string{0: "A", 5: "F", 25: "Z", 26: "AA", 27: "AB", 52: "BA"} {
		if got := cellName(x); got != want {
			t.Errorf("cellName(%d) = %s, want %s", x, got, want)
		}
	}
}
