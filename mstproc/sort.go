// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mstproc

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// An Order is a sort order over category labels.
//
// The zero Order is not valid; use ParseOrder or FirstOrder.
type Order struct {
	name string

	// observed maps each label to the index of its first
	// observation. It is only used by the "first" order.
	observed map[string]int

	// fixed, if non-nil, is the explicit label order. Labels not
	// in fixed are filtered out.
	fixed map[string]int

	cmp func(a, b string) int
}

// FirstOrder returns an Order that sorts labels by order of first
// observation.
func FirstOrder() *Order {
	o := &Order{name: "first", observed: make(map[string]int)}
	o.cmp = func(a, b string) int {
		return o.observed[a] - o.observed[b]
	}
	return o
}

// ParseOrder parses an order expression. See the package
// documentation for the syntax.
func ParseOrder(expr string) (*Order, error) {
	expr = strings.TrimSpace(expr)
	switch {
	case expr == "" || expr == "first":
		return FirstOrder(), nil

	case strings.HasPrefix(expr, "("):
		if !strings.HasSuffix(expr, ")") {
			return nil, fmt.Errorf("order %q: missing )", expr)
		}
		labels := strings.Fields(expr[1 : len(expr)-1])
		if len(labels) == 0 {
			return nil, fmt.Errorf("order %q: nothing to match", expr)
		}
		fixed := make(map[string]int, len(labels))
		for i, l := range labels {
			if _, ok := fixed[l]; !ok {
				fixed[l] = i
			}
		}
		return &Order{
			name:  "fixed",
			fixed: fixed,
			cmp: func(a, b string) int {
				return fixed[a] - fixed[b]
			},
		}, nil
	}

	cmp, ok := builtinOrders[expr]
	if !ok {
		return nil, fmt.Errorf("unknown order %q", expr)
	}
	return &Order{name: expr, cmp: cmp}, nil
}

// String returns the name of the order: "first", "alpha", "num", or
// "fixed".
func (o *Order) String() string {
	return o.name
}

// Observe records an observation of label. For the "first" order,
// this establishes label's position if it has not been seen before.
// For other orders it has no effect.
func (o *Order) Observe(label string) {
	if o.observed == nil {
		return
	}
	if _, ok := o.observed[label]; !ok {
		o.observed[label] = len(o.observed)
	}
}

// Keep reports whether rows with the given label should be kept. Only
// fixed orders filter.
func (o *Order) Keep(label string) bool {
	if o.fixed == nil {
		return true
	}
	_, ok := o.fixed[label]
	return ok
}

// Less reports whether label a sorts before label b.
func (o *Order) Less(a, b string) bool {
	if a == b {
		return false
	}
	if cmp := o.cmp(a, b); cmp != 0 {
		return cmp < 0
	}
	// The labels are unordered according to the comparison
	// function but differ, so fall back to a comparison that is
	// only equal if the strings are.
	return a < b
}

// Sort sorts labels in place according to o. Labels must have been
// observed before sorting by a "first" order.
func (o *Order) Sort(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		return o.Less(labels[i], labels[j])
	})
}

// builtinOrders is the built-in comparison functions.
var builtinOrders = map[string]func(a, b string) int{
	"alpha": func(a, b string) int {
		return strings.Compare(a, b)
	},
	"num": func(a, b string) int {
		aa, erra := parseNum(a)
		bb, errb := parseNum(b)
		if erra == nil && errb == nil {
			// Sort numerically, and put NaNs after other
			// values.
			if aa < bb || (!math.IsNaN(aa) && math.IsNaN(bb)) {
				return -1
			}
			if aa > bb || (math.IsNaN(aa) && !math.IsNaN(bb)) {
				return 1
			}
			// The values are unordered.
			return 0
		}
		if erra != nil && errb != nil {
			// The values are unordered.
			return 0
		}
		// Put floats before non-floats.
		if erra == nil {
			return -1
		}
		return 1
	},
}

const numPrefixes = `KMGTPEZY`

var numRe = regexp.MustCompile(`([0-9.]+)([k` + numPrefixes + `]i?)?[bB]?`)

// parseNum is a fuzzy number parser. It supports common patterns,
// such as SI prefixes.
func parseNum(x string) (float64, error) {
	// Try parsing as a regular float.
	v, err := strconv.ParseFloat(x, 64)
	if err == nil {
		return v, nil
	}

	// Try a suffixed number.
	subs := numRe.FindStringSubmatch(x)
	if subs != nil {
		v, err := strconv.ParseFloat(subs[1], 64)
		if err == nil {
			exp := 0
			if len(subs[2]) > 0 {
				pre := subs[2][0]
				if pre == 'k' {
					pre = 'K'
				}
				exp = 1 + strings.IndexByte(numPrefixes, pre)
			}
			iec := strings.HasSuffix(subs[2], "i")
			if iec {
				return v * math.Pow(1024, float64(exp)), nil
			}
			return v * math.Pow(1000, float64(exp)), nil
		}
	}

	return 0, strconv.ErrSyntax
}
