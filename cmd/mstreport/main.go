// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Mstreport summarizes benchmark measurements of two minimum spanning
// tree algorithms and draws comparison charts.
//
// Usage:
//
//	mstreport [flags] [input]
//
// The input is a delimited table with one row per benchmarked graph,
// such as the performance_data.csv written by the MST benchmark
// driver:
//
//	Vertices,Graph_Type,Prim_Time_ms,Kruskal_Time_ms,Prim_Operations,Kruskal_Operations,Prim_Cost,Kruskal_Cost
//	10,Small,1.0,2.0,100,80,50,50
//	20,Small,3.0,1.0,150,90,70,71
//
// The two algorithms are named by the header. The first two names
// with a complete set of _Time_<unit>, _Operations, and _Cost columns
// are compared; -names selects others. Time columns may be in ns, us,
// ms, or s and are reported in milliseconds. An input ending in
// ".json" is read as the driver's JSON results file instead.
//
// If no input is given, mstreport reads $MSTREPORT_INPUT, or
// results/performance_data.csv.
//
// For the input above, mstreport prints:
//
//	=== Performance Analysis Summary ===
//	Total graphs analyzed: 2
//	Small graphs (< 30 vertices): 2
//	Medium graphs (< 300 vertices): 0
//	Large graphs (< 1000 vertices): 0
//	Extra graphs (< 2000 vertices): 0
//
//	=== Average Performance Metrics ===
//	Average Prim's execution time: 2.00 ms
//	Average Kruskal's execution time: 1.50 ms
//	Average Prim's operations: 125
//	Average Kruskal's operations: 85
//
//	=== Performance Comparison ===
//	Prim's algorithm faster in: 1 cases
//	Kruskal's algorithm faster in: 1 cases
//
//	=== Cost Verification ===
//	MST costs match in all 1 cases: ✗
//	row 2 (20 vertices, Small): Prim cost 70, Kruskal cost 71
//
// and writes performance_analysis.png and complexity_analysis.png to
// the -dir directory.
//
// The size categories are counted by the Graph_Type label of each
// row. With -detail, mstreport also counts rows by vertex-count
// threshold and warns about labels that span more than one
// threshold. It also prints per-category means, the average
// differences, and the geometric mean of the per-graph time ratios.
//
// Sorting
//
// By default, categories are listed in the order they first appear.
// The -order flag takes "alpha" or "num" for alphabetic or numeric
// order, or a fixed list of labels like "(Large Small)". A fixed list
// also filters: rows whose label is not listed are left out of the
// whole report and the charts.
//
// Configuration
//
// Flag defaults may be set in the environment or in a .env file in
// the current directory: MSTREPORT_INPUT, MSTREPORT_DIR,
// MSTREPORT_BACKEND, MSTREPORT_PALETTE, and MSTREPORT_DPI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/univ-mst/mstperf/cmd/mstreport/internal/chart"
	"github.com/univ-mst/mstperf/cmd/mstreport/internal/config"
	"github.com/univ-mst/mstperf/cmd/mstreport/internal/msttab"
	"github.com/univ-mst/mstperf/mstfmt"
	"github.com/univ-mst/mstperf/mstproc"
	"github.com/univ-mst/mstperf/mststat"
)

func usage(flags *flag.FlagSet) func() {
	return func() {
		fmt.Fprintf(flags.Output(), `Usage: mstreport [flags] [input]

mstreport summarizes benchmark measurements of two minimum spanning
tree algorithms: category counts, average time and operation counts,
head-to-head wins, and a cross-check of the spanning tree costs. It
also draws comparison charts.

Flags:
`)
		flags.PrintDefaults()
	}
}

func main() {
	if err := mstreport(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "mstreport: %s\n", err)
		os.Exit(1)
	}
}

func mstreport(w, wErr io.Writer, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	flags := flag.NewFlagSet("mstreport", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = usage(flags)
	flagDir := flags.String("dir", cfg.Dir, "write charts to `directory`")
	flagCSV := flags.String("csv", "", "also write the per-graph table to CSV `file`")
	flagVerbose := flags.Bool("v", false, "log progress to stderr")
	flagDetail := flags.Bool("detail", false, "add per-category means, size buckets, and ratios to the report")
	flagOrder := flags.String("order", "", "sort categories by `order`: alpha, num, or (label label ...)")
	flagNames := flags.String("names", "", "compare the algorithms `a,b` instead of the first two in the header")
	flagComma := flags.String("comma", ",", "input field `delimiter`")
	flagBackend := flags.String("backend", cfg.Backend, "draw charts with `backend`: gonum or gochart")
	flagPalette := flags.String("palette", cfg.Palette, "chart color `palette`: Set2, Paired, Dark2, or Set1")
	flagDPI := flags.Int("dpi", cfg.DPI, "chart resolution in dots per inch (0 for default)")
	flagNoCharts := flags.Bool("nocharts", false, "print the report only")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 1 {
		flags.Usage()
		return fmt.Errorf("too many inputs")
	}

	order, err := mstproc.ParseOrder(*flagOrder)
	if err != nil {
		return fmt.Errorf("parsing -order: %s", err)
	}
	var loader mstfmt.Loader
	if *flagNames != "" {
		a, b, ok := strings.Cut(*flagNames, ",")
		if !ok || a == "" || b == "" || strings.Contains(b, ",") {
			return fmt.Errorf("-names must be two comma-separated names")
		}
		loader.Names = [2]string{a, b}
	}
	if utf8.RuneCountInString(*flagComma) != 1 {
		return fmt.Errorf("-comma must be a single character")
	}
	loader.Comma, _ = utf8.DecodeRuneInString(*flagComma)
	chartCfg := chart.Config{DPI: *flagDPI, Dir: *flagDir}
	if !*flagNoCharts {
		if chartCfg.Backend, err = chart.ParseBackend(*flagBackend); err != nil {
			return fmt.Errorf("parsing -backend: %s", err)
		}
		if chartCfg.Palette, err = chart.ParsePalette(*flagPalette); err != nil {
			return fmt.Errorf("parsing -palette: %s", err)
		}
	}

	logger := log.New(io.Discard, "", 0)
	if *flagVerbose {
		logger = log.New(wErr, fmt.Sprintf("mstreport: run %s: ", uuid.New()), 0)
	}

	path := cfg.Input
	if flags.NArg() == 1 {
		path = flags.Arg(0)
	}
	logger.Printf("loading %s", path)
	tab, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	logger.Printf("loaded %d rows comparing %s and %s", tab.Len(), tab.Names[0], tab.Names[1])

	tab = filter(tab, order)
	s := mststat.Summarize(tab)
	if err := msttab.ToText(w, s, msttab.Opts{Detail: *flagDetail, Order: order}); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	if *flagCSV != "" {
		if err := writeCSV(*flagCSV, wErr, tab, s); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		logger.Printf("wrote %s", *flagCSV)
	}

	if *flagNoCharts {
		return nil
	}
	r, err := chart.New(chartCfg)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	paths, err := r.Render(chart.Input{
		Names:  tab.Names,
		Rows:   tab.Rows,
		Groups: s.SortedGroups(order),
		Ratios: s.Ratios,
	})
	for _, p := range paths {
		logger.Printf("wrote %s", p)
	}
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// filter returns the rows of t whose category o keeps. Only fixed
// orders drop rows.
func filter(t *mstfmt.Table, o *mstproc.Order) *mstfmt.Table {
	out := &mstfmt.Table{Names: t.Names, Rows: make([]mstfmt.Row, 0, len(t.Rows))}
	for _, row := range t.Rows {
		o.Observe(row.GraphType)
		if o.Keep(row.GraphType) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

func writeCSV(path string, warnings io.Writer, t *mstfmt.Table, s *mststat.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := msttab.ToCSV(f, warnings, t, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
