// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mstproc

// A Threshold is an exclusive upper bound on vertex count and the
// category label of graphs below it.
type Threshold struct {
	Label string
	Below int
}

// Thresholds are the size buckets used by the benchmark driver,
// in increasing order.
var Thresholds = []Threshold{
	{"Small", 30},
	{"Medium", 300},
	{"Large", 1000},
	{"Extra", 2000},
}

// Overflow is the bucket of graphs at or above the last threshold.
const Overflow = "Huge"

// Bucket returns the threshold bucket of a graph with the given
// number of vertices.
func Bucket(vertices int) string {
	for _, t := range Thresholds {
		if vertices < t.Below {
			return t.Label
		}
	}
	return Overflow
}

// BucketLabels returns the labels of all buckets, in threshold order,
// followed by Overflow.
func BucketLabels() []string {
	out := make([]string, 0, len(Thresholds)+1)
	for _, t := range Thresholds {
		out = append(out, t.Label)
	}
	return append(out, Overflow)
}
