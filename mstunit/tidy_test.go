// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mstunit

import "testing"

func TestTidy(t *testing.T) {
	for _, test := range []struct {
		unit   string
		factor float64
		ok     bool
	}{
		{"ms", 1, true},
		{"MS", 1, true},
		{"Ms", 1, true},
		{"NS", 1e-6, true},
		{"ns", 1e-6, true},
		{"us", 1e-3, true},
		{"µs", 1e-3, true},
		{"s", 1e3, true},
		{"sec", 1e3, true},
		{"", 0, false},
		{"ops", 0, false},
		{"B", 0, false},
	} {
		// Call twice to exercise the cache.
		for i := 0; i < 2; i++ {
			factor, ok := Tidy(test.unit)
			if factor != test.factor || ok != test.ok {
				t.Errorf("Tidy(%q) = %v, %v; want %v, %v", test.unit, factor, ok, test.factor, test.ok)
			}
		}
	}
}

func TestSplitTimeColumn(t *testing.T) {
	for _, test := range []struct {
		col, name, unit string
		ok              bool
	}{
		{"Prim_Time_ms", "Prim", "ms", true},
		{"Kruskal_Time_ns", "Kruskal", "ns", true},
		{"Reverse_Delete_Time_us", "Reverse_Delete", "us", true},
		{"_Time_ms", "", "", false},
		{"Prim_Time_", "", "", false},
		{"Prim_Operations", "", "", false},
	} {
		name, unit, ok := SplitTimeColumn(test.col)
		if name != test.name || unit != test.unit || ok != test.ok {
			t.Errorf("SplitTimeColumn(%q) = %q, %q, %v; want %q, %q, %v", test.col, name, unit, ok, test.name, test.unit, test.ok)
		}
	}
}
