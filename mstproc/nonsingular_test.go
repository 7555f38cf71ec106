// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mstproc

import (
	"reflect"
	"testing"
)

func TestMixedCategories(t *testing.T) {
	var obs []Labeled
	check := func(want ...Mixed) {
		t.Helper()
		got := MixedCategories(obs)
		if len(want) == 0 {
			want = nil
		}
		if !reflect.DeepEqual(want, got) {
			t.Errorf("want %v, got %v", want, got)
		}
	}

	obs = []Labeled{}
	check()

	obs = []Labeled{{"Small", "Small"}}
	check()

	obs = []Labeled{
		{"Small", "Small"},
		{"Small", "Small"},
		{"Medium", "Medium"},
	}
	check()

	obs = []Labeled{
		{"Small", "Small"},
		{"Small", "Medium"},
		{"Large", "Large"},
	}
	check(Mixed{"Small", []string{"Small", "Medium"}})

	obs = []Labeled{
		{"Large", "Extra"},
		{"Small", "Small"},
		{"Small", "Medium"},
		{"Large", "Large"},
		{"Small", "Small"},
	}
	check(
		Mixed{"Large", []string{"Extra", "Large"}},
		Mixed{"Small", []string{"Small", "Medium"}},
	)
}

func TestBucket(t *testing.T) {
	for _, test := range []struct {
		vertices int
		want     string
	}{
		{0, "Small"},
		{29, "Small"},
		{30, "Medium"},
		{299, "Medium"},
		{300, "Large"},
		{999, "Large"},
		{1000, "Extra"},
		{1999, "Extra"},
		{2000, Overflow},
	} {
		if got := Bucket(test.vertices); got != test.want {
			t.Errorf("Bucket(%d) = %s, want %s", test.vertices, got, test.want)
		}
	}

	want := []string{"Small", "Medium", "Large", "Extra", Overflow}
	if got := BucketLabels(); !reflect.DeepEqual(got, want) {
		t.Errorf("BucketLabels() = %v, want %v", got, want)
	}
}
