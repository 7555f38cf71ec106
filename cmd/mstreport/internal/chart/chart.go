// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart draws the comparison figures of an MST benchmark run.
//
// Two PNG figures are written. The performance figure has four
// panels: execution time against graph size, operation count against
// graph size, mean execution time per graph category, and the
// per-graph time ratio with a reference line at 1. The complexity
// figure plots the theoretical V·log₂V curve against the measured
// operation counts of both algorithms.
package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/univ-mst/mstperf/mstfmt"
	"github.com/univ-mst/mstperf/mststat"
)

// Figure names, as reported in RenderError.
const (
	FigurePerformance = "performance_analysis"
	FigureComplexity  = "complexity_analysis"
)

// Input is the data drawn by a Renderer.
type Input struct {
	// Names are the names of algorithms A and B.
	Names [2]string

	// Rows are the measurements, in any order.
	Rows []mstfmt.Row

	// Groups are the per-category means, in display order.
	Groups []mststat.GroupSummary

	// Ratios are the A/B time ratios, aligned with Rows. Undefined
	// ratios are not drawn.
	Ratios []mststat.Ratio
}

// A Renderer writes the figures for an Input.
type Renderer interface {
	// Render writes every figure and returns the paths written. On
	// failure it returns the paths written so far and a
	// *RenderError.
	Render(in Input) ([]string, error)
}

// A RenderError is a failure to draw or write a figure.
type RenderError struct {
	// Figure is the name of the figure, or "" if the output
	// directory could not be created.
	Figure string
	Path   string
	Err    error
}

func (e *RenderError) Error() string {
	if e.Figure == "" {
		return fmt.Sprintf("creating %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("drawing %s to %s: %v", e.Figure, e.Path, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// backend draws figures in PNG format.
type backend interface {
	performance(w io.Writer, d *performanceData) error
	complexity(w io.Writer, d *complexityData) error
}

type renderer struct {
	cfg     Config
	backend backend
}

// New returns a Renderer for cfg.
func New(cfg Config) (Renderer, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	colors, err := cfg.Palette.colors()
	if err != nil {
		return nil, err
	}
	r := &renderer{cfg: cfg}
	switch cfg.Backend {
	case Gonum:
		r.backend = &gonumBackend{cfg: cfg, colors: colors}
	case GoChart:
		r.backend = newGoChartBackend(cfg, colors)
	}
	return r, nil
}

func (r *renderer) Render(in Input) ([]string, error) {
	if err := os.MkdirAll(r.cfg.Dir, 0777); err != nil {
		return nil, &RenderError{Path: r.cfg.Dir, Err: err}
	}

	var paths []string
	path := filepath.Join(r.cfg.Dir, r.cfg.PerformanceFile)
	perf := newPerformanceData(in)
	if err := writeFigure(path, func(w io.Writer) error { return r.backend.performance(w, perf) }); err != nil {
		return paths, &RenderError{Figure: FigurePerformance, Path: path, Err: err}
	}
	paths = append(paths, path)

	path = filepath.Join(r.cfg.Dir, r.cfg.ComplexityFile)
	cplx := newComplexityData(in)
	if err := writeFigure(path, func(w io.Writer) error { return r.backend.complexity(w, cplx) }); err != nil {
		return paths, &RenderError{Figure: FigureComplexity, Path: path, Err: err}
	}
	paths = append(paths, path)

	return paths, nil
}

// writeFigure draws a figure in memory and writes it to path, so a
// failed draw leaves no partial file.
func writeFigure(path string, draw func(w io.Writer) error) error {
	var buf bytes.Buffer
	if err := draw(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0666)
}

// An xy is a series of points.
type xy struct {
	xs, ys []float64
}

func (s *xy) add(x, y float64) {
	s.xs = append(s.xs, x)
	s.ys = append(s.ys, y)
}

func (s xy) len() int { return len(s.xs) }

// performanceData is the content of the performance figure.
type performanceData struct {
	title string
	names [2]string

	// time and ops are indexed by algorithm and sorted by vertices.
	time, ops [2]xy

	categories []string
	meanTime   [2][]float64

	ratio xy
}

func newPerformanceData(in Input) *performanceData {
	d := &performanceData{
		title: fmt.Sprintf("Performance Analysis: %s vs %s MST Algorithms", in.Names[0], in.Names[1]),
		names: in.Names,
	}
	for _, row := range bySize(in.Rows) {
		d.time[0].add(float64(row.Vertices), row.A.TimeMs)
		d.time[1].add(float64(row.Vertices), row.B.TimeMs)
		d.ops[0].add(float64(row.Vertices), float64(row.A.Ops))
		d.ops[1].add(float64(row.Vertices), float64(row.B.Ops))
	}
	for _, g := range in.Groups {
		d.categories = append(d.categories, g.GraphType)
		d.meanTime[0] = append(d.meanTime[0], g.MeanATimeMs)
		d.meanTime[1] = append(d.meanTime[1], g.MeanBTimeMs)
	}
	for i, r := range in.Ratios {
		if i >= len(in.Rows) || !r.Defined {
			continue
		}
		d.ratio.add(float64(in.Rows[i].Vertices), r.Value)
	}
	return d
}

// complexityData is the content of the complexity figure.
type complexityData struct {
	title string
	names [2]string

	// theory is V·log₂V over the sampled vertex counts.
	theory xy

	// ops are the measured operation counts, per algorithm.
	ops [2]xy
}

// theorySamples is the number of points on the theoretical curve.
const theorySamples = 100

func newComplexityData(in Input) *complexityData {
	d := &complexityData{
		title: "Theoretical vs Experimental Complexity",
		names: in.Names,
	}
	maxV := 0
	for _, row := range bySize(in.Rows) {
		d.ops[0].add(float64(row.Vertices), float64(row.A.Ops))
		d.ops[1].add(float64(row.Vertices), float64(row.B.Ops))
		maxV = max(maxV, row.Vertices)
	}
	for _, v := range vec.Linspace(10, float64(max(50, maxV)), theorySamples) {
		d.theory.add(v, v*math.Log2(v))
	}
	return d
}

// theoryLabels returns the legend labels of the theoretical curves.
func (d *complexityData) theoryLabels() [2]string {
	return [2]string{
		d.names[0] + "'s theoretical O(V log V)",
		d.names[1] + "'s theoretical O(E log E)",
	}
}

// bySize returns rows sorted by vertex count, keeping file order
// among equal sizes.
func bySize(rows []mstfmt.Row) []mstfmt.Row {
	out := append([]mstfmt.Row(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Vertices < out[j].Vertices })
	return out
}

// bounds returns a padded, non-empty range covering every value of vs
// and extra.
func bounds(vs [][]float64, extra ...float64) (lo, hi float64) {
	var all []float64
	for _, v := range vs {
		all = append(all, v...)
	}
	all = append(all, extra...)
	if len(all) == 0 {
		return 0, 1
	}
	lo, hi = stats.Bounds(all)
	if lo == hi {
		return lo - 1, hi + 1
	}
	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}

// refColor is the color of the equal-performance reference line.
var refColor = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
