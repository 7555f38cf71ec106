// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mstfmt

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/univ-mst/mstperf/mstproc"
)

// Results files written by the benchmark driver, of the form
//
//	{"results": [{"graph_id": 1,
//	              "input_stats": {"vertices": 10, "edges": 20},
//	              "prim": {"total_cost": 50, "operations_count": 100, "execution_time_ms": 1.5},
//	              "kruskal": {...}}]}
type jsonResults struct {
	Results []jsonResult `json:"results"`
}

type jsonResult struct {
	GraphID    int `json:"graph_id"`
	InputStats struct {
		Vertices int `json:"vertices"`
		Edges    int `json:"edges"`
	} `json:"input_stats"`
	Prim    *jsonAlgorithm `json:"prim"`
	Kruskal *jsonAlgorithm `json:"kruskal"`
}

type jsonAlgorithm struct {
	TotalCost       float64 `json:"total_cost"`
	OperationsCount int64   `json:"operations_count"`
	ExecutionTimeMs float64 `json:"execution_time_ms"`
}

// ReadJSON reads a results file written by the benchmark driver.
//
// Results files have no graph_type, so each row is labeled with the
// threshold bucket of its vertex count (see mstproc.Bucket). The
// algorithms are always named "Prim" and "Kruskal".
func ReadJSON(r io.Reader, fileName string) (*Table, error) {
	var res jsonResults
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		mre := &MalformedRowError{FileName: fileName, Msg: err.Error(), Err: err}
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) {
			mre.Column = te.Field
		}
		return nil, mre
	}

	t := &Table{Names: [2]string{"Prim", "Kruskal"}, Rows: make([]Row, 0, len(res.Results))}
	for i, jr := range res.Results {
		row := Row{
			Index:     i + 1,
			Vertices:  jr.InputStats.Vertices,
			GraphType: mstproc.Bucket(jr.InputStats.Vertices),
		}
		malformed := func(col, msg string) error {
			return &MalformedRowError{FileName: fileName, Row: row.Index, Column: col, Msg: msg}
		}
		if row.Vertices < 0 {
			return nil, malformed("input_stats.vertices", "negative vertex count")
		}
		for _, alg := range []struct {
			key string
			in  *jsonAlgorithm
			out *Measurement
		}{
			{"prim", jr.Prim, &row.A},
			{"kruskal", jr.Kruskal, &row.B},
		} {
			if alg.in == nil {
				return nil, malformed(alg.key, "missing result")
			}
			if alg.in.ExecutionTimeMs < 0 {
				return nil, malformed(alg.key+".execution_time_ms", "time must be non-negative")
			}
			if alg.in.OperationsCount < 0 {
				return nil, malformed(alg.key+".operations_count", "negative operation count")
			}
			*alg.out = Measurement{
				TimeMs: alg.in.ExecutionTimeMs,
				Ops:    alg.in.OperationsCount,
				Cost:   alg.in.TotalCost,
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
