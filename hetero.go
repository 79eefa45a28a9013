package gpplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/mat"
)

// overlayColor fills heteroscedastic overlay bands. It is fixed and
// distinct from the default mean color.
var overlayColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

// An UnsupportedOverlayDimensionError reports a heteroscedastic overlay
// attempted on a base plot that resolves to the 2D path. The overlay
// band is only defined over a single covariate.
type UnsupportedOverlayDimensionError struct {
	N int
}

func (e *UnsupportedOverlayDimensionError) Error() string {
	return fmt.Sprintf("gpplot: heteroscedastic overlay undefined for %d covariates, want 1", e.N)
}

// DefaultOverlaySpec is DefaultSpec with the lighter band transparency
// heteroscedastic overlays default to.
func DefaultOverlaySpec() Spec {
	spec := DefaultSpec()
	spec.Alpha = 0.3
	return spec
}

// RenderHeteroscedastic renders h's inner base model over points and
// layers a confidence band computed from h's own variance on top. The
// base panel is built through the ordinary dispatch path and is not
// mutated: the overlay is returned as a new panel.
func RenderHeteroscedastic(h Heteroscedastic, points mat.Matrix, spec Spec) (Panel, error) {
	_, cols := points.Dims()
	v, err := resolveView(cols, nil)
	if err != nil {
		return Panel{}, err
	}
	if v.kind != oneD {
		return Panel{}, &UnsupportedOverlayDimensionError{N: cols}
	}

	// The outer model's own summary; its variance is what the overlay
	// shows, distinct from whatever band the base panel may carry.
	s, err := summarize(h, points)
	if err != nil {
		return Panel{}, err
	}

	base, err := Render(h.Base(), points, nil, spec)
	if err != nil {
		return Panel{}, err
	}
	if s.Variance == nil {
		return base.Expectation, nil
	}

	xs := column(points, v.cx)
	idx := ascending(xs)
	band, err := NewBand(pick(s.Mean, idx), pick(s.Variance, idx), spec.BandK)
	if err != nil {
		return Panel{}, err
	}
	return base.Expectation.With(confidenceBand{
		xs:    pick(xs, idx),
		band:  band,
		fill:  overlayColor,
		alpha: spec.Alpha,
	}), nil
}
