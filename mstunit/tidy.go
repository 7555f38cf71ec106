// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mstunit normalizes the time units that appear in measurement
// table headers.
//
// Execution time columns carry their unit as a suffix, as in
// "Prim_Time_ms" or "Kruskal_Time_ns". All times are reported in
// milliseconds, so readers use Tidy to find the factor that converts
// a column's values to milliseconds.
package mstunit

import (
	"strings"
	"sync"
)

// Millis is the tidied unit of every time value.
const Millis = "ms"

type tidyEntry struct {
	factor float64
	ok     bool
}

var tidyCache sync.Map // unit string -> *tidyEntry

// Tidy returns the multiplicative factor that converts a value in
// unit to milliseconds, and whether unit is a known time unit. For
// example, to convert value x in unit "us" to milliseconds, multiply
// x by factor.
//
// Units are matched case-insensitively, so "MS" and "Ms" are
// milliseconds as well. There is no mega prefix for time.
func Tidy(unit string) (factor float64, ok bool) {
	// Fast path for the unit produced by the benchmark driver.
	switch unit {
	case "ms":
		return 1, true
	case "":
		return 0, false
	}

	// Check the cache.
	if tc, ok := tidyCache.Load(unit); ok {
		tc := tc.(*tidyEntry)
		return tc.factor, tc.ok
	}

	// Do the hard work and cache it.
	factor, ok = tidy(unit)
	tidyCache.Store(unit, &tidyEntry{factor, ok})
	return
}

func tidy(unit string) (factor float64, ok bool) {
	switch strings.ToLower(unit) {
	case "ns", "nsec":
		return 1e-6, true
	case "us", "µs", "μs", "usec":
		return 1e-3, true
	case "ms", "msec", "millis":
		return 1, true
	case "s", "sec", "secs":
		return 1e3, true
	}
	return 0, false
}

// SplitTimeColumn splits a time column name of the form
// "<name>_Time_<unit>" into its algorithm name and unit. ok is false
// if col does not have that form.
func SplitTimeColumn(col string) (name, unit string, ok bool) {
	const sep = "_Time_"
	i := strings.LastIndex(col, sep)
	if i <= 0 {
		return "", "", false
	}
	name, unit = col[:i], col[i+len(sep):]
	if unit == "" {
		return "", "", false
	}
	return name, unit, true
}
