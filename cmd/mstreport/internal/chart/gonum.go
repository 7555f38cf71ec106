// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// gonumBackend draws figures with gonum.org/v1/plot.
type gonumBackend struct {
	cfg    Config
	colors []color.Color
}

// glyphs are the point shapes of algorithms A and B.
var glyphs = [2]draw.GlyphDrawer{draw.CircleGlyph{}, draw.BoxGlyph{}}

var dashes = []vg.Length{vg.Points(6), vg.Points(4)}

func (g *gonumBackend) canvas(size Size) *vgimg.Canvas {
	return vgimg.NewWith(
		vgimg.UseWH(vg.Length(size.Width)*vg.Inch, vg.Length(size.Height)*vg.Inch),
		vgimg.UseDPI(g.cfg.DPI),
	)
}

func (g *gonumBackend) performance(w io.Writer, d *performanceData) error {
	a, b := d.names[0], d.names[1]
	timePanel, err := g.linePanel("Execution Time vs Graph Size", "Execution Time (ms)", d.names, d.time)
	if err != nil {
		return err
	}
	opsPanel, err := g.linePanel("Operations Count vs Graph Size", "Number of Operations", d.names, d.ops)
	if err != nil {
		return err
	}
	barPanel, err := g.barPanel(d)
	if err != nil {
		return err
	}
	ratioPanel, err := g.ratioPanel(d, "Performance Ratio: "+a+" vs "+b, "Performance Ratio ("+a+"/"+b+")")
	if err != nil {
		return err
	}
	plots := [][]*plot.Plot{
		{timePanel, opsPanel},
		{barPanel, ratioPanel},
	}

	c := g.canvas(g.cfg.Performance)
	dc := draw.New(c)
	titleHeight := drawTitle(dc, d.title)

	tiles := draw.Tiles{
		Rows:      2,
		Cols:      2,
		PadX:      vg.Millimeter * 6,
		PadY:      vg.Millimeter * 6,
		PadTop:    titleHeight,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, dc)
	for j := range plots {
		for i := range plots[j] {
			plots[j][i].Draw(canvases[j][i])
		}
	}

	_, err = vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	return err
}

// drawTitle draws a figure title centered at the top of dc and
// returns the height it takes.
func drawTitle(dc draw.Canvas, title string) vg.Length {
	sty := plot.New().Title.TextStyle
	sty.Font.Size = vg.Points(16)
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YTop
	pad := vg.Millimeter * 3
	dc.FillText(sty, vg.Point{X: dc.Center().X, Y: dc.Max.Y - pad}, title)
	return sty.Height(title) + 2*pad
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())
	return p
}

func points(s xy) plotter.XYs {
	pts := make(plotter.XYs, s.len())
	for i := range pts {
		pts[i].X, pts[i].Y = s.xs[i], s.ys[i]
	}
	return pts
}

func (g *gonumBackend) linePanel(title, yLabel string, names [2]string, series [2]xy) (*plot.Plot, error) {
	p := newPlot(title, "Number of Vertices", yLabel)
	for i, s := range series {
		if s.len() == 0 {
			continue
		}
		line, pts, err := plotter.NewLinePoints(points(s))
		if err != nil {
			return nil, err
		}
		line.Color = g.colors[i]
		line.Width = vg.Points(2)
		pts.Color = g.colors[i]
		pts.Shape = glyphs[i]
		pts.Radius = vg.Points(3)
		p.Add(line, pts)
		p.Legend.Add(names[i]+"'s algorithm", line, pts)
	}
	return p, nil
}

func (g *gonumBackend) barPanel(d *performanceData) (*plot.Plot, error) {
	p := newPlot("Average Execution Time by Graph Type", "Graph Type", "Average Execution Time (ms)")
	if len(d.categories) == 0 {
		return p, nil
	}
	width := vg.Points(20)
	for i, means := range d.meanTime {
		bars, err := plotter.NewBarChart(plotter.Values(means), width)
		if err != nil {
			return nil, err
		}
		bars.Color = g.colors[i]
		bars.LineStyle.Width = 0
		bars.Offset = (vg.Length(i) - 0.5) * width
		p.Add(bars)
		p.Legend.Add(d.names[i]+"'s algorithm", bars)
	}
	p.NominalX(d.categories...)
	return p, nil
}

func (g *gonumBackend) ratioPanel(d *performanceData, title, yLabel string) (*plot.Plot, error) {
	p := newPlot(title, "Number of Vertices", yLabel)
	if d.ratio.len() > 0 {
		pts, err := plotter.NewScatter(points(d.ratio))
		if err != nil {
			return nil, err
		}
		pts.Color = g.colors[2]
		pts.Shape = draw.CircleGlyph{}
		pts.Radius = vg.Points(3)
		p.Add(pts)
	}

	// Keep the reference line in view.
	p.Y.Min = math.Min(p.Y.Min, 1)
	p.Y.Max = math.Max(p.Y.Max, 1)
	equal := plotter.NewFunction(func(float64) float64 { return 1 })
	equal.Color = refColor
	equal.Width = vg.Points(1.5)
	equal.Dashes = dashes
	p.Add(equal)
	p.Legend.Add("Equal performance", equal)
	return p, nil
}

func (g *gonumBackend) complexity(w io.Writer, d *complexityData) error {
	p := newPlot(d.title, "Number of Vertices", "Operations Count")
	theory := points(d.theory)
	for i, label := range d.theoryLabels() {
		line, err := plotter.NewLine(theory)
		if err != nil {
			return err
		}
		line.Color = g.colors[i]
		line.Width = vg.Points(2)
		line.Dashes = dashes
		p.Add(line)
		p.Legend.Add(label, line)
	}
	for i, s := range d.ops {
		if s.len() == 0 {
			continue
		}
		pts, err := plotter.NewScatter(points(s))
		if err != nil {
			return err
		}
		pts.Color = g.colors[i]
		pts.Shape = glyphs[i]
		pts.Radius = vg.Points(3)
		p.Add(pts)
		p.Legend.Add(d.names[i]+"'s experimental", pts)
	}

	c := g.canvas(g.cfg.Complexity)
	p.Draw(draw.New(c))
	_, err := vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	return err
}
