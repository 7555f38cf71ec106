// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mstfmt

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

const header = "Vertices,Graph_Type,Prim_Time_ms,Kruskal_Time_ms,Prim_Operations,Kruskal_Operations,Prim_Cost,Kruskal_Cost\n"

// parseAll reads every row of data, returning the rows read before
// any error and the error.
func parseAll(data string, setup ...func(r *Reader)) ([]Row, error) {
	r := NewReader(strings.NewReader(data), "test")
	for _, f := range setup {
		f(r)
	}
	var out []Row
	for r.Scan() {
		out = append(out, r.Row())
	}
	return out, r.Err()
}

type rowBuilder struct {
	row Row
}

func row(index, line, vertices int, graphType string) *rowBuilder {
	return &rowBuilder{Row{Index: index, Line: line, Vertices: vertices, GraphType: graphType}}
}

func (b *rowBuilder) a(time float64, ops int64, cost float64) *rowBuilder {
	b.row.A = Measurement{time, ops, cost}
	return b
}

func (b *rowBuilder) b(time float64, ops int64, cost float64) *rowBuilder {
	b.row.B = Measurement{time, ops, cost}
	return b
}

func TestReader(t *testing.T) {
	type testCase struct {
		name, input string
		want        []Row
		wantErr     string
	}
	for _, test := range []testCase{
		{
			"basic",
			header + `10,Small,1.0,2.0,100,80,50,50
20,Small,3.0,1.0,150,90,70,71
`,
			[]Row{
				row(1, 2, 10, "Small").a(1, 100, 50).b(2, 80, 50).row,
				row(2, 3, 20, "Small").a(3, 150, 70).b(1, 90, 71).row,
			},
			"",
		},
		{
			"header only",
			header,
			nil,
			"",
		},
		{
			"spaces and extra columns",
			`Extra, Vertices, Graph_Type, Prim_Time_ms, Kruskal_Time_ms, Prim_Operations, Kruskal_Operations, Prim_Cost, Kruskal_Cost
x, 10, Medium , 1.5, 2.5, 100, 80, 50.5, 50.5
`,
			[]Row{
				row(1, 2, 10, "Medium").a(1.5, 100, 50.5).b(2.5, 80, 50.5).row,
			},
			"",
		},
		{
			"repeated unknown columns",
			`Vertices,Graph_Type,Prim_Time_ms,Kruskal_Time_ms,Prim_Operations,Kruskal_Operations,Prim_Cost,Kruskal_Cost,Note,Note,,
10,Small,1.0,2.0,100,80,50,50,a,b,,
20,Small,3.0,1.0,150,90,70,71
`,
			[]Row{
				row(1, 2, 10, "Small").a(1, 100, 50).b(2, 80, 50).row,
				row(2, 3, 20, "Small").a(3, 150, 70).b(1, 90, 71).row,
			},
			"",
		},
		{
			"duplicate column",
			"Vertices,Graph_Type,Prim_Time_ms,Kruskal_Time_ms,Prim_Operations,Kruskal_Operations,Prim_Cost,Kruskal_Cost,Prim_Cost\n",
			nil,
			`test:1: header, column Prim_Cost: duplicate column`,
		},
		{
			"time units",
			`Vertices,Graph_Type,Prim_Time_us,Kruskal_Time_s,Prim_Operations,Kruskal_Operations,Prim_Cost,Kruskal_Cost
10,Small,1500,0.002,100,80,50,50
`,
			[]Row{
				row(1, 2, 10, "Small").a(1.5, 100, 50).b(2, 80, 50).row,
			},
			"",
		},
		{
			"bad number",
			header + `10,Small,1.0,2.0,100,80,50,50
20,Small,fast,1.0,150,90,70,71
30,Small,1.0,1.0,150,90,70,71
`,
			[]Row{
				row(1, 2, 10, "Small").a(1, 100, 50).b(2, 80, 50).row,
			},
			`test:3: row 2, column Prim_Time_ms: parsing "fast": invalid syntax`,
		},
		{
			"bad operations",
			header + `10,Small,1.0,2.0,100,8.5,50,50
`,
			nil,
			`test:2: row 1, column Kruskal_Operations: parsing "8.5": invalid syntax`,
		},
		{
			"negative time",
			header + `10,Small,-1.0,2.0,100,80,50,50
`,
			nil,
			`test:2: row 1, column Prim_Time_ms: time must be finite and non-negative`,
		},
		{
			"short row",
			header + `10,Small,1.0
`,
			nil,
			`test:2: row 1, column Kruskal_Time_ms: have 3 fields, want at least 8`,
		},
		{
			"missing column",
			"Vertices,Graph_Type,Prim_Time_ms,Kruskal_Time_ms,Prim_Operations,Kruskal_Operations,Prim_Cost\n",
			nil,
			`test:1: header, column Kruskal_Cost: missing required column`,
		},
		{
			"missing vertices",
			"Graph_Type,Prim_Time_ms,Kruskal_Time_ms,Prim_Operations,Kruskal_Operations,Prim_Cost,Kruskal_Cost\n",
			nil,
			`test:1: header, column Vertices: missing required column`,
		},
		{
			"empty",
			"",
			nil,
			`test:1: header: missing header`,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := parseAll(test.input)
			if test.wantErr == "" && err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if test.wantErr != "" {
				if err == nil {
					t.Fatalf("want error %q, got nil", test.wantErr)
				}
				if err.Error() != test.wantErr {
					t.Errorf("want error %q, got %q", test.wantErr, err)
				}
				var mre *MalformedRowError
				if !errors.As(err, &mre) {
					t.Errorf("want *MalformedRowError, got %T", err)
				}
			}
			want := test.want
			var diff bytes.Buffer
			for i := 0; i < len(got) || i < len(want); i++ {
				if i >= len(got) {
					fmt.Fprintf(&diff, "[%d] got: none, want:\n%s\n", i, want[i])
				} else if i >= len(want) {
					fmt.Fprintf(&diff, "[%d] want: none, got:\n%s\n", i, got[i])
				} else if !reflect.DeepEqual(got[i], want[i]) {
					fmt.Fprintf(&diff, "[%d] got:\n%s\n", i, got[i])
					fmt.Fprintf(&diff, "[%d] want:\n%s\n", i, want[i])
				}
			}
			if diff.Len() != 0 {
				t.Error(diff.String())
			}
		})
	}
}

func TestReaderNames(t *testing.T) {
	const data = `Vertices,Graph_Type,Boruvka_Time_ms,Prim_Time_ms,Kruskal_Time_ms,Boruvka_Operations,Prim_Operations,Kruskal_Operations,Boruvka_Cost,Prim_Cost,Kruskal_Cost
10,Small,9,1,2,900,100,80,50,50,50
`
	// Detected: the first two complete algorithms in column order.
	r := NewReader(strings.NewReader(data), "test")
	h, err := r.Header()
	if err != nil {
		t.Fatal(err)
	}
	if want := [2]string{"Boruvka", "Prim"}; h.Names != want {
		t.Errorf("detected names %v, want %v", h.Names, want)
	}

	// Forced.
	rows, err := parseAll(data, func(r *Reader) { r.SetNames("Prim", "Kruskal") })
	if err != nil {
		t.Fatal(err)
	}
	want := row(1, 2, 10, "Small").a(1, 100, 50).b(2, 80, 50).row
	if len(rows) != 1 || !reflect.DeepEqual(rows[0], want) {
		t.Errorf("got %v, want [%s]", rows, want)
	}

	// Forced to a name the header lacks.
	_, err = parseAll(data, func(r *Reader) { r.SetNames("Prim", "Dijkstra") })
	if err == nil || !strings.Contains(err.Error(), "Dijkstra_Time_ms") {
		t.Errorf("want missing Dijkstra_Time_ms error, got %v", err)
	}
}

func TestReaderComma(t *testing.T) {
	data := strings.ReplaceAll(header+"10,Small,1.0,2.0,100,80,50,50\n", ",", ";")
	rows, err := parseAll(data, func(r *Reader) { r.SetComma(';') })
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].Vertices != 10 {
		t.Errorf("got %v", rows)
	}
}

func TestCostsMatch(t *testing.T) {
	r := row(1, 2, 10, "Small").a(1, 1, 50).b(1, 1, 50).row
	if !r.CostsMatch() {
		t.Errorf("equal costs reported as mismatched")
	}
	r.B.Cost = 50.000001
	if r.CostsMatch() {
		t.Errorf("costs compared with a tolerance")
	}
}
