// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msttab

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/univ-mst/mstperf/mstfmt"
	"github.com/univ-mst/mstperf/mststat"
)

// Column indexes of the CSV table.
const (
	colRatio = 5
	colMatch = 6
)

// ToCSV writes one row per measurement of t to w, with the derived
// time ratio and cost check from s. An undefined ratio is an empty
// cell. Warnings are written in text format to the "warnings" Writer,
// prefixed with spreadsheet-style cell references.
func ToCSV(w, warnings io.Writer, t *mstfmt.Table, s *mststat.Summary) error {
	a, b := t.Names[0], t.Names[1]
	o := csv.NewWriter(w)
	o.Write([]string{"index", "vertices", "graph_type", a + "_time_ms", b + "_time_ms", "ratio", "cost_match"})

	for i, row := range t.Rows {
		ratio := ""
		if i < len(s.Ratios) && s.Ratios[i].Defined {
			ratio = formatFloat(s.Ratios[i].Value)
		}
		o.Write([]string{
			strconv.Itoa(row.Index),
			strconv.Itoa(row.Vertices),
			row.GraphType,
			formatFloat(row.A.TimeMs),
			formatFloat(row.B.TimeMs),
			ratio,
			strconv.FormatBool(row.CostsMatch()),
		})

		// Spreadsheet rows are 1-based and row 1 is the header.
		sheetRow := i + 2
		switch {
		case ratio == "" && row.B.TimeMs == 0:
			fmt.Fprintf(warnings, "%s%d: ratio undefined (zero %s time)\n", cellName(colRatio), sheetRow, b)
		case ratio == "":
			fmt.Fprintf(warnings, "%s%d: ratio undefined (%s/%s time overflows)\n", cellName(colRatio), sheetRow, a, b)
		}
		if !row.CostsMatch() {
			fmt.Fprintf(warnings, "%s%d: %s cost %v, %s cost %v\n", cellName(colMatch), sheetRow, a, row.A.Cost, b, row.B.Cost)
		}
	}

	o.Flush()
	return o.Error()
}

// cellName returns the spreadsheet-style name of 0-based column x.
func cellName(x int) string {
	colName := make([]byte, 10)
	colNamePos := len(colName)
	for x++; x > 0; {
		x--
		colNamePos--
		colName[colNamePos] = 'A' + byte(x%26)
		x /= 26
	}
	return string(colName[colNamePos:])
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
