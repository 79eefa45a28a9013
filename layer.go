package gpplot

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Layer is one visual stratum of a panel. Layers are drawn in the
// order they were added, so a layer appended later sits on top.
type Layer interface {
	// addTo contributes the layer's plotters to a plot under
	// construction.
	addTo(plt *plot.Plot) error
}

// ----------------------------------------------------------------------------
// 1D layers

// meanLine draws the predictive mean as a line.
type meanLine struct {
	xs, ys []float64
	color  color.Color
}

func (l meanLine) addTo(plt *plot.Plot) error {
	ln, err := plotter.NewLine(toXYs(l.xs, l.ys))
	if err != nil {
		return err
	}
	ln.Color = l.color
	ln.Width = vg.Points(1)
	plt.Add(ln)
	return nil
}

// confidenceBand draws a filled band between Lower and Upper.
type confidenceBand struct {
	xs    []float64
	band  Band
	fill  color.Color
	alpha float64
}

func (l confidenceBand) addTo(plt *plot.Plot) error {
	// One closed ring: upper bound left to right, lower bound back.
	n := len(l.xs)
	ring := make(plotter.XYs, 0, 2*n)
	for i := 0; i < n; i++ {
		ring = append(ring, plotter.XY{X: l.xs[i], Y: l.band.Upper[i]})
	}
	for i := n - 1; i >= 0; i-- {
		ring = append(ring, plotter.XY{X: l.xs[i], Y: l.band.Lower[i]})
	}
	poly, err := plotter.NewPolygon(ring)
	if err != nil {
		return err
	}
	poly.Color = withAlpha(l.fill, l.alpha)
	poly.LineStyle.Color = color.Transparent
	poly.LineStyle.Width = 0
	plt.Add(poly)
	return nil
}

// observedPoints draws the model's training data as a scatter layer.
type observedPoints struct {
	xs, ys []float64
}

func (l observedPoints) addTo(plt *plot.Plot) error {
	sc, err := plotter.NewScatter(toXYs(l.xs, l.ys))
	if err != nil {
		return err
	}
	sc.GlyphStyle = draw.GlyphStyle{
		Color:  color.Black,
		Radius: vg.Points(2),
		Shape:  draw.CircleGlyph{},
	}
	plt.Add(sc)
	return nil
}

// ----------------------------------------------------------------------------
// 2D layers

// surface draws a scalar field as a heatmap with contour lines on top.
type surface struct {
	grid *lattice
	cm   palette.ColorMap
}

func (l surface) addTo(plt *plot.Plot) error {
	plt.Add(plotter.NewHeatMap(l.grid, l.cm.Palette(255)))
	plt.Add(plotter.NewContour(l.grid, nil, monochrome{color.Gray{Y: 0x30}}))
	return nil
}

// valuePoints draws observations in covariate space, each glyph colored
// by its observed value on the panel's color map.
type valuePoints struct {
	xs, ys, vals []float64
	cm           palette.ColorMap
}

func (l valuePoints) addTo(plt *plot.Plot) error {
	sc, err := plotter.NewScatter(toXYs(l.xs, l.ys))
	if err != nil {
		return err
	}
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		v := math.Min(math.Max(l.vals[i], l.cm.Min()), l.cm.Max())
		c, err := l.cm.At(v)
		if err != nil {
			c = color.Black
		}
		return draw.GlyphStyle{
			Color:  c,
			Radius: vg.Points(2.5),
			Shape:  draw.CircleGlyph{},
		}
	}
	plt.Add(sc)
	return nil
}

// ----------------------------------------------------------------------------
// Helpers

func toXYs(xs, ys []float64) plotter.XYs {
	xys := make(plotter.XYs, len(xs))
	for i := range xys {
		xys[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	return xys
}

func withAlpha(c color.Color, alpha float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(alpha * float64(n.A)))
	return n
}
