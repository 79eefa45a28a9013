package gpplot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestRenderHeteroscedastic(t *testing.T) {
	points := grid1D(0, 1, 2, 3)
	mean := []float64{0, 1, 2, 3}
	inner := []float64{0.1, 0.1, 0.1, 0.1}
	outer := []float64{1, 2, 3, 4} // pointwise larger than inner

	h := heteroModel{
		stubModel: stubModel{mean: mean, variance: outer},
		base:      stubModel{mean: mean, variance: inner},
	}

	t.Run("overlay band uses the outer variance", func(t *testing.T) {
		p, err := RenderHeteroscedastic(h, points, DefaultOverlaySpec())
		require.NoError(t, err)

		// Base band + mean line + overlay band.
		require.Len(t, p.Layers, 3)
		overlay := p.Layers[2].(confidenceBand)
		for i := range mean {
			width := overlay.band.Upper[i] - overlay.band.Lower[i]
			assert.InDelta(t, 2*DefaultBandK*math.Sqrt(outer[i]), width, 1e-12, "width at %d", i)
		}
		assert.Equal(t, overlayColor, overlay.fill)
		assert.Equal(t, 0.3, overlay.alpha)

		// The base band, by contrast, tracks the inner variance.
		baseBand := p.Layers[0].(confidenceBand)
		w0 := baseBand.band.Upper[0] - baseBand.band.Lower[0]
		assert.InDelta(t, 2*DefaultBandK*math.Sqrt(inner[0]), w0, 1e-12)
	})

	t.Run("base panel is composed, not mutated", func(t *testing.T) {
		base, err := Render(h.Base(), points, nil, DefaultOverlaySpec())
		require.NoError(t, err)
		over, err := RenderHeteroscedastic(h, points, DefaultOverlaySpec())
		require.NoError(t, err)

		assert.Equal(t, len(base.Expectation.Layers)+1, len(over.Layers))
	})

	t.Run("outer model without variance falls back to the base plot", func(t *testing.T) {
		hv := heteroModel{
			stubModel: stubModel{mean: mean},
			base:      stubModel{mean: mean, variance: inner},
		}
		p, err := RenderHeteroscedastic(hv, points, DefaultOverlaySpec())
		require.NoError(t, err)
		assert.Len(t, p.Layers, 2) // base band + mean, no overlay
	})

	t.Run("2D base is rejected", func(t *testing.T) {
		pts2 := mat.NewDense(4, 2, []float64{0, 0, 0, 1, 1, 0, 1, 1})
		_, err := RenderHeteroscedastic(h, pts2, DefaultOverlaySpec())
		var uode *UnsupportedOverlayDimensionError
		require.ErrorAs(t, err, &uode)
		assert.Equal(t, 2, uode.N)
	})

	t.Run("outer shape error surfaces", func(t *testing.T) {
		hs := heteroModel{
			stubModel: stubModel{mean: []float64{1}}, // too short
			base:      stubModel{mean: mean},
		}
		_, err := RenderHeteroscedastic(hs, points, DefaultOverlaySpec())
		var sse *SummaryShapeError
		require.ErrorAs(t, err, &sse)
	})
}

func TestDefaultOverlaySpec(t *testing.T) {
	spec := DefaultOverlaySpec()
	assert.Equal(t, 0.3, spec.Alpha)
	assert.Equal(t, 0.5, DefaultSpec().Alpha)
}
