// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// goChartBackend draws figures with go-chart. go-chart draws one
// chart per image, so the performance figure is composed from four
// panel images.
type goChartBackend struct {
	cfg    Config
	colors []drawing.Color
}

// titleHeight is the height in pixels of a composed figure's title
// strip.
const titleHeight = 32

func newGoChartBackend(cfg Config, colors []color.Color) *goChartBackend {
	b := &goChartBackend{cfg: cfg}
	for _, c := range colors {
		b.colors = append(b.colors, toDrawing(c))
	}
	return b
}

func toDrawing(c color.Color) drawing.Color {
	r, g, b, a := c.RGBA()
	return drawing.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// pixels converts a size in inches to pixels.
func (b *goChartBackend) pixels(s Size) (w, h int) {
	return int(s.Width * float64(b.cfg.DPI)), int(s.Height * float64(b.cfg.DPI))
}

func (b *goChartBackend) performance(w io.Writer, d *performanceData) error {
	fw, fh := b.pixels(b.cfg.Performance)
	pw, ph := fw/2, (fh-titleHeight)/2

	na, nb := d.names[0], d.names[1]
	var panels [4]image.Image
	var err error
	if panels[0], err = b.linePanel("Execution Time vs Graph Size", "Execution Time (ms)", d.names, d.time, pw, ph); err != nil {
		return err
	}
	if panels[1], err = b.linePanel("Operations Count vs Graph Size", "Number of Operations", d.names, d.ops, pw, ph); err != nil {
		return err
	}
	if panels[2], err = b.barPanel(d, pw, ph); err != nil {
		return err
	}
	if panels[3], err = b.ratioPanel(d, "Performance Ratio: "+na+" vs "+nb, "Performance Ratio ("+na+"/"+nb+")", pw, ph); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, fw, fh))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	for i, p := range panels {
		at := image.Pt((i%2)*pw, titleHeight+(i/2)*ph)
		draw.Draw(img, p.Bounds().Sub(p.Bounds().Min).Add(at), p, p.Bounds().Min, draw.Src)
	}
	drawCaption(img, d.title)
	return png.Encode(w, img)
}

// drawCaption draws text centered in the title strip of img.
func drawCaption(img *image.RGBA, text string) {
	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: img, Src: image.Black, Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := (img.Bounds().Dx() - tw) / 2
	y := (titleHeight + face.Metrics().Ascent.Ceil()) / 2
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
}

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
		DotColor:    col,
		DotWidth:    3,
	}
}

// pointStyle returns a style that renders points only.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

// placeholder is an invisible series spanning the axis ranges. go-chart
// refuses to draw a chart with no series.
func placeholder(xlo, xhi, ylo float64) chart.Series {
	return chart.ContinuousSeries{
		XValues: []float64{xlo, xhi},
		YValues: []float64{ylo, ylo},
		Style:   chart.Style{StrokeColor: drawing.ColorTransparent, StrokeWidth: 1},
	}
}

// render draws series on a chart with the given ranges and decodes the
// result.
func render(title, xName, yName string, series []chart.Series, xr, yr [2]float64, w, h int) (image.Image, error) {
	legend := len(series) > 0
	if !legend {
		series = append(series, placeholder(xr[0], xr[1], yr[0]))
	}
	ch := chart.Chart{
		Title:  title,
		Width:  w,
		Height: h,
		Background: chart.Style{
			Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis:  chart.XAxis{Name: xName, Range: &chart.ContinuousRange{Min: xr[0], Max: xr[1]}},
		YAxis:  chart.YAxis{Name: yName, Range: &chart.ContinuousRange{Min: yr[0], Max: yr[1]}},
		Series: series,
	}
	if legend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

func rangeOf(vs [][]float64, extra ...float64) [2]float64 {
	lo, hi := bounds(vs, extra...)
	return [2]float64{lo, hi}
}

func (b *goChartBackend) linePanel(title, yName string, names [2]string, s [2]xy, w, h int) (image.Image, error) {
	var series []chart.Series
	for i := range s {
		if s[i].len() == 0 {
			continue
		}
		series = append(series, chart.ContinuousSeries{
			Name:    names[i] + "'s algorithm",
			XValues: s[i].xs,
			YValues: s[i].ys,
			Style:   lineStyle(b.colors[i]),
		})
	}
	xr := rangeOf([][]float64{s[0].xs, s[1].xs})
	yr := rangeOf([][]float64{s[0].ys, s[1].ys}, 0)
	return render(title, "Number of Vertices", yName, series, xr, yr, w, h)
}

func (b *goChartBackend) barPanel(d *performanceData, w, h int) (image.Image, error) {
	var bars []chart.Value
	for i, cat := range d.categories {
		for alg := range d.names {
			bars = append(bars, chart.Value{
				Label: cat + " " + d.names[alg],
				Value: d.meanTime[alg][i],
				Style: chart.Style{FillColor: b.colors[alg], StrokeColor: b.colors[alg]},
			})
		}
	}
	if len(bars) == 0 {
		bars = append(bars, chart.Value{Label: "no data"})
	}
	yr := rangeOf(d.meanTime[:], 0)
	barWidth := max(4, w/(2*len(bars)+1))
	ch := chart.BarChart{
		Title:  "Average Execution Time by Graph Type",
		Width:  w,
		Height: h,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		BarWidth: barWidth,
		YAxis:    chart.YAxis{Name: "Average Execution Time (ms)", Range: &chart.ContinuousRange{Min: 0, Max: yr[1]}},
		Bars:     bars,
	}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

func (b *goChartBackend) ratioPanel(d *performanceData, title, yName string, w, h int) (image.Image, error) {
	xr := rangeOf([][]float64{d.ratio.xs})
	yr := rangeOf([][]float64{d.ratio.ys}, 1)
	var series []chart.Series
	if d.ratio.len() > 0 {
		series = append(series, chart.ContinuousSeries{
			Name:    "Ratio",
			XValues: d.ratio.xs,
			YValues: d.ratio.ys,
			Style:   pointStyle(b.colors[2]),
		})
	}
	series = append(series, chart.ContinuousSeries{
		Name:    "Equal performance",
		XValues: []float64{xr[0], xr[1]},
		YValues: []float64{1, 1},
		Style: chart.Style{
			StrokeColor:     toDrawing(refColor),
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{6, 4},
		},
	})
	return render(title, "Number of Vertices", yName, series, xr, yr, w, h)
}

func (b *goChartBackend) complexity(w io.Writer, d *complexityData) error {
	var series []chart.Series
	for i, label := range d.theoryLabels() {
		st := lineStyle(b.colors[i])
		st.DotWidth = 0
		st.StrokeDashArray = []float64{6, 4}
		series = append(series, chart.ContinuousSeries{
			Name:    label,
			XValues: d.theory.xs,
			YValues: d.theory.ys,
			Style:   st,
		})
	}
	for i, s := range d.ops {
		if s.len() == 0 {
			continue
		}
		series = append(series, chart.ContinuousSeries{
			Name:    d.names[i] + "'s experimental",
			XValues: s.xs,
			YValues: s.ys,
			Style:   pointStyle(b.colors[i]),
		})
	}
	xr := rangeOf([][]float64{d.theory.xs, d.ops[0].xs, d.ops[1].xs})
	yr := rangeOf([][]float64{d.theory.ys, d.ops[0].ys, d.ops[1].ys}, 0)
	fw, fh := b.pixels(b.cfg.Complexity)
	img, err := render(d.title, "Number of Vertices", "Operations Count", series, xr, yr, fw, fh)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
