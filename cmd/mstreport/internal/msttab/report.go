// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package msttab formats an MST benchmark summary as a text report or
// as a per-row CSV table.
package msttab

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/univ-mst/mstperf/mstproc"
	"github.com/univ-mst/mstperf/mststat"
)

// Opts controls the content of a report.
type Opts struct {
	// Detail adds per-category means, size bucket counts, average
	// deltas, and the geomean time ratio after the default sections.
	Detail bool

	// Order sorts and filters the per-category breakdown. If nil,
	// categories appear in order of first appearance.
	Order *mstproc.Order
}

// report accumulates report lines and their footnoted warnings.
type report struct {
	lines []string

	warningList []string
	warningSet  map[string]int
}

func (r *report) printf(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *report) section(title string) {
	if len(r.lines) > 0 {
		r.lines = append(r.lines, "")
	}
	r.printf("=== %s ===", title)
}

// warn footnotes msgs on the most recent line.
func (r *report) warn(msgs ...error) {
	if len(msgs) == 0 {
		return
	}
	if r.warningSet == nil {
		r.warningSet = make(map[string]int)
	}
	var footnotes []string
	for _, msg := range msgs {
		s := msg.Error()
		i, ok := r.warningSet[s]
		if !ok {
			i = len(r.warningList)
			r.warningSet[s] = i
			r.warningList = append(r.warningList, s)
		}
		footnotes = append(footnotes, superscript(i+1))
	}
	r.lines[len(r.lines)-1] += " " + strings.Join(footnotes, " ")
}

// Lines returns the report for s, one string per line, without line
// terminators. The result depends only on s and opts.
func Lines(s *mststat.Summary, opts Opts) []string {
	a, b := s.Names[0], s.Names[1]

	// Route mixed-category warnings to the count line of their label.
	// The rest go to the line they qualify, or to the total.
	byLabel := make(map[string][]error)
	var general, ratio []error
	for _, w := range s.Warnings {
		var mw *mststat.MixedWarning
		switch {
		case errors.As(w, &mw) && isThreshold(mw.Label):
			byLabel[mw.Label] = append(byLabel[mw.Label], w)
		case errors.As(w, &mw):
			general = append(general, w)
		default:
			ratio = append(ratio, w)
		}
	}

	var r report
	r.section("Performance Analysis Summary")
	r.printf("Total graphs analyzed: %d", s.Total)
	r.warn(general...)
	for _, t := range mstproc.Thresholds {
		r.printf("%s graphs (< %d vertices): %d", t.Label, t.Below, s.LabelCount(t.Label))
		r.warn(byLabel[t.Label]...)
	}

	r.section("Average Performance Metrics")
	r.printf("Average %s's execution time: %.2f ms", a, s.Averages.ATimeMs)
	r.printf("Average %s's execution time: %.2f ms", b, s.Averages.BTimeMs)
	r.printf("Average %s's operations: %.0f", a, s.Averages.AOps)
	r.printf("Average %s's operations: %.0f", b, s.Averages.BOps)

	r.section("Performance Comparison")
	r.printf("%s's algorithm faster in: %d cases", a, s.AFaster)
	r.printf("%s's algorithm faster in: %d cases", b, s.BFaster)

	r.section("Cost Verification")
	mark := "✓"
	if !s.Correct() {
		mark = "✗"
	}
	r.printf("MST costs match in all %d cases: %s", s.CostMatches, mark)
	for _, m := range s.Mismatches {
		r.printf("row %d (%d vertices, %s): %s cost %v, %s cost %v", m.Row, m.Vertices, m.GraphType, a, m.ACost, b, m.BCost)
	}

	if opts.Detail {
		detail(&r, s, opts, ratio)
	}

	for i, msg := range r.warningList {
		r.printf("%s %s", superscript(i+1), msg)
	}
	return r.lines
}

func detail(r *report, s *mststat.Summary, opts Opts, ratioWarnings []error) {
	a, b := s.Names[0], s.Names[1]

	r.section("Category Breakdown")
	groups := s.Groups
	if opts.Order != nil {
		groups = s.SortedGroups(opts.Order)
	}
	for _, g := range groups {
		r.printf("%s: %d graphs, %s %.2f ms / %.0f ops, %s %.2f ms / %.0f ops",
			g.GraphType, g.Count, a, g.MeanATimeMs, g.MeanAOps, b, g.MeanBTimeMs, g.MeanBOps)
	}

	r.section("Size Buckets")
	for _, t := range mstproc.Thresholds {
		r.printf("%s graphs (< %d vertices): %d", t.Label, t.Below, s.BucketCount(t.Label))
	}
	last := mstproc.Thresholds[len(mstproc.Thresholds)-1]
	r.printf("%s graphs (>= %d vertices): %d", mstproc.Overflow, last.Below, s.BucketCount(mstproc.Overflow))

	r.section("Relative Performance")
	switch d := s.TimeDelta(); {
	case d > 0:
		r.printf("%s's algorithm is faster on average by %.2f ms", a, d)
	case d < 0:
		r.printf("%s's algorithm is faster on average by %.2f ms", b, -d)
	default:
		r.printf("%s's and %s's algorithms are equally fast on average", a, b)
	}
	switch d := s.OpsDelta(); {
	case d > 0:
		r.printf("%s's algorithm performs fewer operations on average by %.0f", a, d)
	case d < 0:
		r.printf("%s's algorithm performs fewer operations on average by %.0f", b, -d)
	default:
		r.printf("%s's and %s's algorithms perform equally many operations on average", a, b)
	}
	if s.HasGeoMean {
		r.printf("Geomean time ratio (%s/%s): %.3f", a, b, s.GeoMeanRatio)
	} else {
		r.printf("Geomean time ratio (%s/%s): undefined", a, b)
	}
	r.warn(ratioWarnings...)
	if lo, hi, ok := s.RatioBounds(); ok {
		r.printf("Time ratio range: %.3f to %.3f", lo, hi)
	}
}

// ToText writes the report for s to w.
func ToText(w io.Writer, s *mststat.Summary, opts Opts) error {
	for _, line := range Lines(s, opts) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func isThreshold(label string) bool {
	for _, t := range mstproc.Thresholds {
		if t.Label == label {
			return true
		}
	}
	return false
}

var superDigits = []rune("⁰¹²³⁴⁵⁶⁷⁸⁹")

func superscript(i int) string {
	if i == 0 {
		return string(superDigits[0])
	}

	var buf [20]rune
	pos := len(buf)
	for i > 0 && pos > 0 {
		pos--
		buf[pos] = superDigits[i%10]
		i /= 10
	}
	return string(buf[pos:])
}
