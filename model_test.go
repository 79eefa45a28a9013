package gpplot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// stubModel is a canned Summarizable for tests. It returns its Mean and
// Variance regardless of the points asked about, or Err if set.
type stubModel struct {
	mean     []float64
	variance []float64
	err      error
}

func (s stubModel) Summarize(points mat.Matrix) (Summary, error) {
	if s.err != nil {
		return Summary{}, s.err
	}
	return Summary{Mean: s.mean, Variance: s.variance}, nil
}

// dataModel is a stubModel that also remembers training data.
type dataModel struct {
	stubModel
	xp, yp mat.Matrix
}

func (d dataModel) ObservedData() (x, y mat.Matrix) { return d.xp, d.yp }

// heteroModel wraps a base model and supplies its own summary.
type heteroModel struct {
	stubModel
	base Summarizable
}

func (h heteroModel) Base() Summarizable { return h.base }

func grid1D(xs ...float64) *mat.Dense {
	return mat.NewDense(len(xs), 1, xs)
}

func TestSummarizeShapes(t *testing.T) {
	points := grid1D(1, 2, 3)

	t.Run("ok", func(t *testing.T) {
		s, err := summarize(stubModel{mean: []float64{1, 2, 3}}, points)
		require.NoError(t, err)
		assert.Nil(t, s.Variance)
	})

	t.Run("short mean", func(t *testing.T) {
		_, err := summarize(stubModel{mean: []float64{1, 2}}, points)
		var sse *SummaryShapeError
		require.ErrorAs(t, err, &sse)
		assert.Equal(t, "mean", sse.Field)
		assert.Equal(t, 2, sse.Got)
		assert.Equal(t, 3, sse.Want)
	})

	t.Run("variance mismatch", func(t *testing.T) {
		_, err := summarize(stubModel{
			mean:     []float64{1, 2, 3},
			variance: []float64{1, 1},
		}, points)
		var sse *SummaryShapeError
		require.ErrorAs(t, err, &sse)
		assert.Equal(t, "variance", sse.Field)
	})

	t.Run("model error wrapped", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := summarize(stubModel{err: boom}, points)
		assert.ErrorIs(t, err, boom)
	})
}

func TestObserved(t *testing.T) {
	xp := mat.NewDense(2, 1, []float64{1, 2})
	yp := mat.NewDense(2, 1, []float64{10, 20})

	t.Run("not a holder", func(t *testing.T) {
		_, _, ok := observed(stubModel{})
		assert.False(t, ok)
	})

	t.Run("nil data", func(t *testing.T) {
		_, _, ok := observed(dataModel{})
		assert.False(t, ok)
	})

	t.Run("multi output", func(t *testing.T) {
		y2 := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
		_, _, ok := observed(dataModel{xp: xp, yp: y2})
		assert.False(t, ok)
	})

	t.Run("row mismatch", func(t *testing.T) {
		y3 := mat.NewDense(3, 1, []float64{1, 2, 3})
		_, _, ok := observed(dataModel{xp: xp, yp: y3})
		assert.False(t, ok)
	})

	t.Run("single output", func(t *testing.T) {
		x, y, ok := observed(dataModel{xp: xp, yp: yp})
		require.True(t, ok)
		assert.Equal(t, xp, x)
		assert.Equal(t, yp, y)
	})
}
