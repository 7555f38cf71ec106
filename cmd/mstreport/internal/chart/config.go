// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot/palette/brewer"
)

// A Backend is a chart drawing library.
type Backend int

const (
	// Gonum draws with gonum.org/v1/plot.
	Gonum Backend = iota
	// GoChart draws with github.com/wcharczuk/go-chart.
	GoChart
)

var backendNames = [...]string{Gonum: "gonum", GoChart: "gochart"}

func (b Backend) String() string {
	if b < 0 || int(b) >= len(backendNames) {
		return fmt.Sprintf("Backend(%d)", int(b))
	}
	return backendNames[b]
}

// ParseBackend parses a backend name. Names are case-insensitive and
// "go-chart" is accepted for GoChart.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(s) {
	case "gonum":
		return Gonum, nil
	case "gochart", "go-chart":
		return GoChart, nil
	}
	return 0, fmt.Errorf("unknown chart backend %q (want gonum or gochart)", s)
}

// A Palette is a qualitative ColorBrewer color scheme.
type Palette int

const (
	Set2 Palette = iota
	Paired
	Dark2
	Set1
)

var paletteNames = [...]string{Set2: "Set2", Paired: "Paired", Dark2: "Dark2", Set1: "Set1"}

// String returns the ColorBrewer name of p.
func (p Palette) String() string {
	if p < 0 || int(p) >= len(paletteNames) {
		return fmt.Sprintf("Palette(%d)", int(p))
	}
	return paletteNames[p]
}

// ParsePalette parses a case-insensitive ColorBrewer scheme name.
func ParsePalette(s string) (Palette, error) {
	for p, name := range paletteNames {
		if strings.EqualFold(s, name) {
			return Palette(p), nil
		}
	}
	return 0, fmt.Errorf("unknown palette %q (want one of %s)", s, strings.Join(paletteNames[:], ", "))
}

// colors returns the first three colors of p: one per algorithm and
// one for the ratio scatter.
func (p Palette) colors() ([]color.Color, error) {
	pal, err := brewer.GetPalette(brewer.TypeQualitative, p.String(), 3)
	if err != nil {
		return nil, err
	}
	return pal.Colors(), nil
}

// A Size is a figure size in inches.
type Size struct {
	Width, Height float64
}

// Config configures a Renderer. The zero value of every field selects
// its default.
type Config struct {
	Backend Backend
	Palette Palette

	// Performance and Complexity are the sizes of the two figures.
	Performance Size
	Complexity  Size

	// DPI is the output resolution in dots per inch.
	DPI int

	// Dir is the directory the figures are written to. It is
	// created if necessary.
	Dir string

	// PerformanceFile and ComplexityFile are the figure file names
	// within Dir.
	PerformanceFile string
	ComplexityFile  string
}

// Defaults.
const (
	DefaultDPI             = 100
	DefaultPerformanceFile = "performance_analysis.png"
	DefaultComplexityFile  = "complexity_analysis.png"
)

var (
	DefaultPerformance = Size{15, 12}
	DefaultComplexity  = Size{10, 6}
)

// withDefaults returns c with zero fields replaced by their defaults,
// or an error if a field is invalid.
func (c Config) withDefaults() (Config, error) {
	if c.Backend < 0 || int(c.Backend) >= len(backendNames) {
		return c, fmt.Errorf("invalid backend %s", c.Backend)
	}
	if c.Palette < 0 || int(c.Palette) >= len(paletteNames) {
		return c, fmt.Errorf("invalid palette %s", c.Palette)
	}
	if c.DPI < 0 {
		return c, fmt.Errorf("DPI must be positive, got %d", c.DPI)
	} else if c.DPI == 0 {
		c.DPI = DefaultDPI
	}
	for _, s := range []struct {
		name string
		size *Size
		def  Size
	}{
		{"performance", &c.Performance, DefaultPerformance},
		{"complexity", &c.Complexity, DefaultComplexity},
	} {
		if *s.size == (Size{}) {
			*s.size = s.def
		}
		if !(s.size.Width > 0 && s.size.Height > 0) {
			return c, fmt.Errorf("%s figure size must be positive, got %gx%g", s.name, s.size.Width, s.size.Height)
		}
	}
	if c.Dir == "" {
		c.Dir = "."
	}
	if c.PerformanceFile == "" {
		c.PerformanceFile = DefaultPerformanceFile
	}
	if c.ComplexityFile == "" {
		c.ComplexityFile = DefaultComplexityFile
	}
	return c, nil
}
