// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mststat computes summary statistics over a table of
// minimum-spanning-tree benchmark measurements.
//
// A Builder collects rows and Summarize folds them into a Summary:
// category counts under both the graph_type label and the
// vertex-count thresholds, global averages, head-to-head win counts,
// the cost cross-check, per-category means, and per-row performance
// ratios. Every computation is total. An empty table summarizes to
// zero values rather than NaNs or errors.
package mststat

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/univ-mst/mstperf/mstfmt"
	"github.com/univ-mst/mstperf/mstproc"
)

// A Builder collects measurement rows into a Summary.
type Builder struct {
	names [2]string
	rows  []mstfmt.Row
}

// NewBuilder returns a Builder for rows comparing algorithms named
// names[0] (A) and names[1] (B).
func NewBuilder(names [2]string) *Builder {
	return &Builder{names: names}
}

// Add adds row to the Builder. Rows are summarized in the order they
// are added.
func (b *Builder) Add(row mstfmt.Row) {
	b.rows = append(b.rows, row)
}

// Summarize is a convenience for summarizing every row of t.
func Summarize(t *mstfmt.Table) *Summary {
	b := NewBuilder(t.Names)
	for _, row := range t.Rows {
		b.Add(row)
	}
	return b.Summarize()
}

// Summarize computes the Summary of the rows added so far.
func (b *Builder) Summarize() *Summary {
	rows := b.rows
	s := &Summary{
		Names:  b.names,
		Total:  len(rows),
		Ratios: make([]Ratio, len(rows)),
	}

	var aTimes, bTimes, aOps, bOps []float64
	labels := mstproc.FirstOrder()
	groups := make(map[string]*group)
	bucketCounts := make(map[string]int)
	obs := make([]mstproc.Labeled, 0, len(rows))
	for i, row := range rows {
		aTimes = append(aTimes, row.A.TimeMs)
		bTimes = append(bTimes, row.B.TimeMs)
		aOps = append(aOps, float64(row.A.Ops))
		bOps = append(bOps, float64(row.B.Ops))

		// Head-to-head.
		switch {
		case row.A.TimeMs < row.B.TimeMs:
			s.AFaster++
		case row.B.TimeMs < row.A.TimeMs:
			s.BFaster++
		default:
			s.Ties++
		}

		// Cost cross-check.
		if row.CostsMatch() {
			s.CostMatches++
		} else {
			s.Mismatches = append(s.Mismatches, CostMismatch{
				Row:       row.Index,
				Vertices:  row.Vertices,
				GraphType: row.GraphType,
				ACost:     row.A.Cost,
				BCost:     row.B.Cost,
			})
		}

		// Ratio.
		s.Ratios[i] = ratio(row.A.TimeMs, row.B.TimeMs)

		// Categories.
		labels.Observe(row.GraphType)
		g := groups[row.GraphType]
		if g == nil {
			g = new(group)
			groups[row.GraphType] = g
		}
		g.add(row)
		bucket := mstproc.Bucket(row.Vertices)
		bucketCounts[bucket]++
		obs = append(obs, mstproc.Labeled{Label: row.GraphType, Bucket: bucket})
	}

	s.Averages = Averages{
		ATimeMs: mean(aTimes),
		BTimeMs: mean(bTimes),
		AOps:    mean(aOps),
		BOps:    mean(bOps),
	}

	// Groups in order of first appearance.
	var order []string
	for label := range groups {
		order = append(order, label)
	}
	labels.Sort(order)
	for _, label := range order {
		g := groups[label]
		s.Categories = append(s.Categories, CategoryCount{label, len(g.aTimes)})
		s.Groups = append(s.Groups, g.summary(label))
	}

	for _, label := range mstproc.BucketLabels() {
		s.Buckets = append(s.Buckets, CategoryCount{label, bucketCounts[label]})
	}

	summarizeRatios(s, rows)

	s.Mixed = mstproc.MixedCategories(obs)
	for _, m := range s.Mixed {
		s.Warnings = append(s.Warnings, &MixedWarning{Label: m.Label, Buckets: m.Buckets})
	}

	return s
}

// ratio returns the ratio a/b. It is undefined if b is zero or the
// quotient is not finite.
func ratio(a, b float64) Ratio {
	if b == 0 {
		return Ratio{}
	}
	v := a / b
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return Ratio{}
	}
	return Ratio{Value: v, Defined: true}
}

// summarizeRatios computes the geometric mean of the positive defined
// ratios and warns about the rest.
func summarizeRatios(s *Summary, rows []mstfmt.Row) {
	var zeroB, overflow, zero int
	var ratios []float64
	for i, r := range s.Ratios {
		switch {
		case !r.Defined && rows[i].B.TimeMs == 0:
			zeroB++
		case !r.Defined:
			overflow++
		case r.Value == 0:
			zero++
		default:
			ratios = append(ratios, r.Value)
		}
	}
	n := len(s.Ratios)
	if zeroB > 0 {
		s.Warnings = append(s.Warnings, fmt.Errorf("%d of %d ratios undefined (zero %s time)", zeroB, n, s.Names[1]))
	}
	if overflow > 0 {
		s.Warnings = append(s.Warnings, fmt.Errorf("%d of %d ratios undefined (%s/%s time overflows)", overflow, n, s.Names[0], s.Names[1]))
	}
	if zero > 0 {
		s.Warnings = append(s.Warnings, fmt.Errorf("%d of %d ratios are zero (zero %s time) and left out of the geomean", zero, n, s.Names[0]))
	}
	if len(ratios) == 0 {
		return
	}
	gm := stats.GeoMean(ratios)
	if math.IsNaN(gm) || math.IsInf(gm, 0) {
		return
	}
	s.HasGeoMean = true
	s.GeoMeanRatio = gm
}

// group accumulates the rows of one category.
type group struct {
	aTimes, bTimes []float64
	aOps, bOps     []float64
}

func (g *group) add(row mstfmt.Row) {
	g.aTimes = append(g.aTimes, row.A.TimeMs)
	g.bTimes = append(g.bTimes, row.B.TimeMs)
	g.aOps = append(g.aOps, float64(row.A.Ops))
	g.bOps = append(g.bOps, float64(row.B.Ops))
}

func (g *group) summary(label string) GroupSummary {
	return GroupSummary{
		GraphType:   label,
		Count:       len(g.aTimes),
		MeanATimeMs: mean(g.aTimes),
		MeanBTimeMs: mean(g.bTimes),
		MeanAOps:    mean(g.aOps),
		MeanBOps:    mean(g.bOps),
	}
}

// mean returns the arithmetic mean of xs, or 0 if xs is empty.
func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stats.Mean(xs)
}
