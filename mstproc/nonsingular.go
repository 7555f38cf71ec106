// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mstproc

// A Labeled is the pair of categories of one measurement row: its
// graph_type label and its vertex-count threshold bucket.
type Labeled struct {
	Label  string
	Bucket string
}

// A Mixed is a category label whose rows fall into more than one
// threshold bucket.
type Mixed struct {
	Label string
	// Buckets lists the distinct buckets of Label's rows, in order
	// of first appearance.
	Buckets []string
}

// MixedCategories returns the labels in obs whose rows span at least
// two different threshold buckets, in order of first appearance.
//
// This is useful for warning the user that label-based category
// counts and threshold-based counts will disagree.
func MixedCategories(obs []Labeled) []Mixed {
	if len(obs) <= 1 {
		// There can't be any differences.
		return nil
	}
	var labels []string
	buckets := make(map[string][]string)
	for _, o := range obs {
		bs, ok := buckets[o.Label]
		if !ok {
			labels = append(labels, o.Label)
		}
		if !contains(bs, o.Bucket) {
			buckets[o.Label] = append(bs, o.Bucket)
		}
	}
	var out []Mixed
	for _, l := range labels {
		if bs := buckets[l]; len(bs) > 1 {
			out = append(out, Mixed{l, bs})
		}
	}
	return out
}

func contains(xs []string, x string) bool {
	for _, y := range xs {
		if y == x {
			return true
		}
	}
	return false
}
