// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mststat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"github.com/univ-mst/mstperf/mstproc"
)

// A Summary is the set of statistics derived from a measurement
// table. It is recomputed for every run and never persisted.
type Summary struct {
	// Names are the names of algorithms A and B.
	Names [2]string

	// Total is the number of rows.
	Total int

	// Categories counts rows by graph_type label, in order of first
	// appearance.
	Categories []CategoryCount

	// Buckets counts rows by vertex-count threshold bucket, in
	// threshold order. Every bucket is present, even if empty.
	// This need not agree with Categories.
	Buckets []CategoryCount

	// Averages are the means over all rows.
	Averages Averages

	// AFaster and BFaster count the rows where A (resp. B) was
	// strictly faster. Ties counts the rest, so
	// AFaster+BFaster+Ties == Total.
	AFaster, BFaster, Ties int

	// CostMatches counts the rows where both algorithms produced
	// trees of exactly equal cost. Mismatches lists the others in
	// row order.
	CostMatches int
	Mismatches  []CostMismatch

	// Groups are the per-category means, in the same order as
	// Categories.
	Groups []GroupSummary

	// Ratios is the A/B time ratio of each row, aligned with the
	// input rows.
	Ratios []Ratio

	// HasGeoMean indicates that GeoMeanRatio is valid. GeoMeanRatio
	// is the geometric mean of the defined ratios.
	HasGeoMean   bool
	GeoMeanRatio float64

	// Mixed lists the labels whose rows span more than one
	// threshold bucket.
	Mixed []mstproc.Mixed

	// Warnings is a list of warnings about this summary.
	Warnings []error
}

// A CategoryCount is the number of rows in one category.
type CategoryCount struct {
	Label string
	Count int
}

// Averages are arithmetic means over a set of rows. They are 0 for an
// empty set.
type Averages struct {
	ATimeMs, BTimeMs float64
	AOps, BOps       float64
}

// A CostMismatch is a row whose two spanning trees differ in cost.
type CostMismatch struct {
	// Row is the 1-based index of the row in its table.
	Row          int
	Vertices     int
	GraphType    string
	ACost, BCost float64
}

// A GroupSummary is the mean performance of one graph category.
type GroupSummary struct {
	GraphType string
	Count     int

	MeanATimeMs, MeanBTimeMs float64
	MeanAOps, MeanBOps       float64
}

// A Ratio is the performance ratio A time / B time of a single row.
// It is undefined if B's time is zero or the quotient overflows.
type Ratio struct {
	Value   float64
	Defined bool
}

// String returns the ratio's value, or "undefined".
func (r Ratio) String() string {
	if !r.Defined {
		return "undefined"
	}
	return strconv.FormatFloat(r.Value, 'g', -1, 64)
}

// A MixedWarning reports a graph_type label whose rows fall in more
// than one vertex-count bucket. Counts by label and by bucket disagree
// for such a label.
type MixedWarning struct {
	Label   string
	Buckets []string
}

func (w *MixedWarning) Error() string {
	return fmt.Sprintf("graphs labeled %s span size buckets %s", w.Label, strings.Join(w.Buckets, ", "))
}

// Correct reports whether every row's costs matched.
func (s *Summary) Correct() bool {
	return s.CostMatches == s.Total
}

// LabelCount returns the number of rows labeled label.
func (s *Summary) LabelCount(label string) int {
	return count(s.Categories, label)
}

// BucketCount returns the number of rows in threshold bucket label.
func (s *Summary) BucketCount(label string) int {
	return count(s.Buckets, label)
}

func count(cs []CategoryCount, label string) int {
	for _, c := range cs {
		if c.Label == label {
			return c.Count
		}
	}
	return 0
}

// TimeDelta returns the mean B time minus the mean A time, in
// milliseconds. It is positive when A is faster on average.
func (s *Summary) TimeDelta() float64 {
	return s.Averages.BTimeMs - s.Averages.ATimeMs
}

// OpsDelta returns the mean B operation count minus the mean A
// operation count.
func (s *Summary) OpsDelta() float64 {
	return s.Averages.BOps - s.Averages.AOps
}

// SortedGroups returns a copy of s.Groups sorted by o. Groups whose
// label o does not keep are omitted.
func (s *Summary) SortedGroups(o *mstproc.Order) []GroupSummary {
	var labels []string
	byLabel := make(map[string]GroupSummary)
	for _, g := range s.Groups {
		o.Observe(g.GraphType)
		if o.Keep(g.GraphType) {
			labels = append(labels, g.GraphType)
			byLabel[g.GraphType] = g
		}
	}
	o.Sort(labels)
	out := make([]GroupSummary, len(labels))
	for i, l := range labels {
		out[i] = byLabel[l]
	}
	return out
}

// RatioBounds returns the smallest and largest defined ratio. ok is
// false if no ratio is defined.
func (s *Summary) RatioBounds() (lo, hi float64, ok bool) {
	var xs []float64
	for _, r := range s.Ratios {
		if r.Defined {
			xs = append(xs, r.Value)
		}
	}
	if len(xs) == 0 {
		return 0, 0, false
	}
	lo, hi = stats.Sample{Xs: xs}.Bounds()
	return lo, hi, true
}
