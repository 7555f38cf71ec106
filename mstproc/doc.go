// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mstproc provides tools for grouping, ordering, and
// filtering the graph categories of a measurement table.
//
// Every measurement row carries two notions of "category": the
// graph_type label written by the benchmark driver (for example,
// "Small" or "Large"), and the size bucket implied by the row's
// vertex count under fixed thresholds. The two usually agree, but
// nothing guarantees it, so this package exposes both: Bucket maps a
// vertex count to its threshold bucket, and MixedCategories reports
// labels whose rows span more than one bucket.
//
// Categories are ordered by an Order. The default order is the order
// in which labels are first observed. ParseOrder also understands the
// built-in orders "alpha" and "num", and a fixed, parenthesized list
// of labels, which doubles as a filter:
//
//	first                   - order of first appearance (default)
//	alpha                   - alphabetic
//	num                     - numeric, understanding "2k" and "1Mi"
//	(Small Medium Large)    - fixed order; other labels are dropped
package mstproc
