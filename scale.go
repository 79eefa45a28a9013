package gpplot

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
)

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set yet.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

func (i Interval) Equal(j Interval) bool {
	if math.IsNaN(i.Min) {
		return math.IsNaN(j.Min)
	}
	if math.IsNaN(i.Max) {
		return math.IsNaN(j.Max)
	}
	return i.Min == j.Min && i.Max == j.Max
}

// Mid returns the midpoint of i. A diverging color scale for a field is
// always centered on the Mid of the field's own limits.
func (i Interval) Mid() float64 {
	return (i.Min + i.Max) / 2
}

// fieldLimits returns the interval covered by the values of a scalar
// field.
func fieldLimits(vs []float64) Interval {
	l := unsetInterval()
	l.Update(vs...)
	return l
}

// ----------------------------------------------------------------------------
// Diverging color map

// Diverging is a three anchor diverging color map: Low at the scale
// minimum, High at the maximum and Mid at the converge point. It
// implements palette.DivergingColorMap so it can parameterize heatmaps
// the same way the moreland maps do.
type Diverging struct {
	Low, Mid, High color.Color

	min, max    float64
	converge    float64
	convergeSet bool
	alpha       float64
}

var _ palette.DivergingColorMap = (*Diverging)(nil)

// NewDiverging returns a diverging color map with the given anchor
// colors and full opacity. Min, max and converge point are unset.
func NewDiverging(low, mid, high color.Color) *Diverging {
	return &Diverging{Low: low, Mid: mid, High: high, alpha: 1}
}

// At returns the color at value v.
func (d *Diverging) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < d.min:
		return nil, palette.ErrUnderflow
	case v > d.max:
		return nil, palette.ErrOverflow
	}
	c := d.ConvergePoint()
	if v <= c {
		return d.lerp(d.Low, d.Mid, unit(v, d.min, c)), nil
	}
	return d.lerp(d.Mid, d.High, unit(v, c, d.max)), nil
}

// unit maps v from [a,b] to [0,1]. A degenerate [a,a] maps to 1 so that
// constant fields take the upper anchor of the half they fall into.
func unit(v, a, b float64) float64 {
	if a == b {
		return 1
	}
	return (v - a) / (b - a)
}

func (d *Diverging) lerp(a, b color.Color, t float64) color.Color {
	ca := color.NRGBA64Model.Convert(a).(color.NRGBA64)
	cb := color.NRGBA64Model.Convert(b).(color.NRGBA64)
	mix := func(x, y uint16) uint16 {
		return uint16(math.Round(float64(x) + t*(float64(y)-float64(x))))
	}
	return color.NRGBA64{
		R: mix(ca.R, cb.R),
		G: mix(ca.G, cb.G),
		B: mix(ca.B, cb.B),
		A: uint16(math.Round(d.alpha * float64(mix(ca.A, cb.A)))),
	}
}

func (d *Diverging) Min() float64 { return d.min }
func (d *Diverging) Max() float64 { return d.max }

func (d *Diverging) SetMin(v float64) { d.min = v; d.reconverge() }
func (d *Diverging) SetMax(v float64) { d.max = v; d.reconverge() }

func (d *Diverging) reconverge() {
	if !d.convergeSet {
		d.converge = Interval{d.min, d.max}.Mid()
	}
}

// SetConvergePoint sets the value the Mid color is anchored at. It
// panics if v lies outside the scale range.
func (d *Diverging) SetConvergePoint(v float64) {
	if v < d.min || v > d.max {
		panic("gpplot: converge point outside scale range")
	}
	d.converge = v
	d.convergeSet = true
}

// ConvergePoint returns the converge point, defaulting to the midpoint
// of the scale range.
func (d *Diverging) ConvergePoint() float64 {
	if d.convergeSet {
		return d.converge
	}
	return Interval{d.min, d.max}.Mid()
}

func (d *Diverging) Alpha() float64     { return d.alpha }
func (d *Diverging) SetAlpha(a float64) { d.alpha = a }

// Palette discretizes d into n colors. An unset scale range is treated
// as [0,1].
func (d *Diverging) Palette(n int) palette.Palette {
	if n < 2 {
		panic("gpplot: palette needs at least 2 colors")
	}
	dd := *d
	if dd.min == dd.max {
		dd.min, dd.max = 0, 1
		dd.convergeSet = false
	}
	cs := make(anchorPalette, n)
	for i := range cs {
		v := dd.min + (dd.max-dd.min)*float64(i)/float64(n-1)
		if v > dd.max {
			v = dd.max
		}
		c, err := dd.At(v)
		if err != nil {
			panic(err)
		}
		cs[i] = c
	}
	return cs
}

type anchorPalette []color.Color

func (p anchorPalette) Colors() []color.Color { return p }

// monochrome is a single color palette, used for contour lines.
type monochrome struct {
	c color.Color
}

func (m monochrome) Colors() []color.Color { return []color.Color{m.c} }
