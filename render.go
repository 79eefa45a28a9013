package gpplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Spec

// A Spec bundles everything configurable about a render: labels, which
// optional layers to draw and the color anchors. It is purely
// descriptive; there is no ambient styling state anywhere in the
// package. The zero Spec is not useful, start from DefaultSpec.
type Spec struct {
	Title  string
	XLabel string
	YLabel string

	// Alpha is the transparency of confidence bands.
	Alpha float64

	// MeanColor colors the 1D mean line and its band.
	MeanColor color.Color

	// BandK is the band half width in standard deviations.
	BandK float64

	PlotMean     bool
	PlotVariance bool
	PlotScatter  bool

	// Low, Mid and High anchor the diverging color scale of 2D
	// expectation heatmaps. The scale's midpoint is always derived
	// from the mean's own range, not configurable here.
	Low, Mid, High color.Color
}

// DefaultSpec returns the spec all entry points document their defaults
// against: every optional layer enabled, half transparent bands two
// standard deviations wide, red mean, blue/white/red heatmap anchors.
func DefaultSpec() Spec {
	return Spec{
		Alpha:        0.5,
		MeanColor:    color.RGBA{R: 0xff, A: 0xff},
		BandK:        DefaultBandK,
		PlotMean:     true,
		PlotVariance: true,
		PlotScatter:  true,
		Low:          color.RGBA{B: 0xff, A: 0xff},
		Mid:          color.White,
		High:         color.RGBA{R: 0xff, A: 0xff},
	}
}

// ----------------------------------------------------------------------------
// Dispatch

// An InvalidDimensionError reports a covariate selection that cannot be
// rendered. Only 1 and 2 covariates are supported; anything else is a
// hard error, not an approximation.
type InvalidDimensionError struct {
	N int
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("gpplot: cannot render %d covariates, want 1 or 2", e.N)
}

type viewKind int

const (
	oneD viewKind = iota
	twoD
)

// A view is the covariate selection resolved once at entry, so no code
// downstream re-branches on slice lengths.
type view struct {
	kind   viewKind
	cx, cy int
}

// resolveView validates covariates against a grid with cols columns.
// A nil or empty selection defaults to all columns in order.
func resolveView(cols int, covariates []int) (view, error) {
	if len(covariates) == 0 {
		covariates = make([]int, cols)
		for i := range covariates {
			covariates[i] = i
		}
	}
	for _, c := range covariates {
		if c < 0 || c >= cols {
			return view{}, fmt.Errorf("gpplot: covariate index %d outside grid with %d columns", c, cols)
		}
	}
	switch len(covariates) {
	case 1:
		return view{kind: oneD, cx: covariates[0]}, nil
	case 2:
		return view{kind: twoD, cx: covariates[0], cy: covariates[1]}, nil
	default:
		return view{}, &InvalidDimensionError{N: len(covariates)}
	}
}

// ----------------------------------------------------------------------------
// Render

// Panels is the named result of a render: the expectation panel and,
// for 2D renders with variance enabled and available, a variance panel.
type Panels struct {
	Expectation Panel
	Variance    *Panel
}

// Render summarizes m over the evaluation points and builds the
// panel(s) for the selected covariates. Points has one evaluation point
// per row; covariates selects 1 or 2 of its columns and defaults to all
// of them. The returned panels are plain values the caller owns; Draw
// composes them onto a canvas.
func Render(m Summarizable, points mat.Matrix, covariates []int, spec Spec) (Panels, error) {
	_, cols := points.Dims()
	v, err := resolveView(cols, covariates)
	if err != nil {
		return Panels{}, err
	}
	s, err := summarize(m, points)
	if err != nil {
		return Panels{}, err
	}

	switch v.kind {
	case oneD:
		p, err := render1D(m, points, v.cx, s, spec)
		if err != nil {
			return Panels{}, err
		}
		return Panels{Expectation: p}, nil
	default:
		return render2D(m, points, v, s, spec)
	}
}

// render1D builds the single line panel: scatter below band below mean.
func render1D(m Summarizable, points mat.Matrix, cx int, s Summary, spec Spec) (Panel, error) {
	p := Panel{Title: spec.Title, XLabel: spec.XLabel, YLabel: spec.YLabel}

	xs := column(points, cx)
	idx := ascending(xs)
	sx := pick(xs, idx)
	mean := pick(s.Mean, idx)

	if spec.PlotScatter {
		if ox, oy, ok := observed(m); ok {
			p = p.With(observedPoints{xs: column(ox, cx), ys: column(oy, 0)})
		}
	}
	if spec.PlotVariance && s.Variance != nil {
		band, err := NewBand(mean, pick(s.Variance, idx), spec.BandK)
		if err != nil {
			return Panel{}, err
		}
		p = p.With(confidenceBand{xs: sx, band: band, fill: spec.MeanColor, alpha: spec.Alpha})
	}
	if spec.PlotMean {
		p = p.With(meanLine{xs: sx, ys: mean, color: spec.MeanColor})
	}
	return p, nil
}

// render2D builds the expectation heatmap and, if enabled and the model
// reports variance, the variance heatmap.
func render2D(m Summarizable, points mat.Matrix, v view, s Summary, spec Spec) (Panels, error) {
	meanLat, err := newLattice(points, v.cx, v.cy, s.Mean)
	if err != nil {
		return Panels{}, err
	}

	limits := fieldLimits(s.Mean)
	cm := NewDiverging(spec.Low, spec.Mid, spec.High)
	cm.SetMin(limits.Min)
	cm.SetMax(limits.Max)
	cm.SetConvergePoint(limits.Mid())

	title := spec.Title
	if title == "" {
		title = "Expectation"
	}
	exp := Panel{Title: title, XLabel: spec.XLabel, YLabel: spec.YLabel}
	exp = exp.With(surface{grid: meanLat, cm: cm})
	if spec.PlotScatter {
		if ox, oy, ok := observed(m); ok {
			exp = exp.With(valuePoints{
				xs:   column(ox, v.cx),
				ys:   column(ox, v.cy),
				vals: column(oy, 0),
				cm:   cm,
			})
		}
	}

	ps := Panels{Expectation: exp}
	if spec.PlotVariance && s.Variance != nil {
		varLat, err := newLattice(points, v.cx, v.cy, s.Variance)
		if err != nil {
			return Panels{}, err
		}
		// Variance is non-negative, so a sequential scale, not a
		// diverging one.
		vcm := moreland.Kindlmann()
		vl := fieldLimits(s.Variance)
		vcm.SetMin(vl.Min)
		vcm.SetMax(vl.Max)

		vp := Panel{Title: "Variance", XLabel: spec.XLabel, YLabel: spec.YLabel}
		vp = vp.With(surface{grid: varLat, cm: vcm})
		ps.Variance = &vp
	}
	return ps, nil
}

// ----------------------------------------------------------------------------
// Composition

// Draw composes the panels onto dc: side by side in two columns when a
// variance panel exists, the expectation panel alone otherwise.
func (ps Panels) Draw(dc draw.Canvas) error {
	if ps.Variance == nil {
		return ps.Expectation.Draw(dc)
	}
	ep, err := ps.Expectation.Plot()
	if err != nil {
		return err
	}
	vp, err := ps.Variance.Plot()
	if err != nil {
		return err
	}
	row := []*plot.Plot{ep, vp}
	tiles := draw.Tiles{Rows: 1, Cols: 2, PadX: vg.Millimeter * 2}
	canvases := plot.Align([][]*plot.Plot{row}, tiles, dc)
	for i, plt := range row {
		plt.Draw(canvases[0][i])
	}
	return nil
}
