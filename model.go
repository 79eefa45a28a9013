package gpplot

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ----------------------------------------------------------------------------
// Model capabilities

// A Summary is the pointwise predictive summary of a model over a set of
// evaluation points. Mean has one entry per point. Variance is either nil,
// meaning the model does not report predictive variance, or has the same
// length as Mean with all entries >= 0.
type Summary struct {
	Mean     []float64
	Variance []float64
}

// Summarizable is the capability every renderable model must provide.
// The points matrix has one evaluation point per row and one covariate
// per column. Summarize must be safe for concurrent read-only use if
// plots are rendered concurrently.
type Summarizable interface {
	Summarize(points mat.Matrix) (Summary, error)
}

// DataHolder is an optional capability: a model that remembers the data
// it was fitted on. X has one observation per row, matching the covariate
// layout of the evaluation points; Y holds the observed outputs, one
// column per output. Scatter layers are drawn only for single output
// models.
type DataHolder interface {
	ObservedData() (x, y mat.Matrix)
}

// Heteroscedastic is a model wrapping an inner base model. The inner
// model provides the mean and structure of the base plot while the
// wrapping model's own Summarize supplies the variance for the overlay
// band.
type Heteroscedastic interface {
	Summarizable
	Base() Summarizable
}

// ----------------------------------------------------------------------------
// Summary adapter

// A SummaryShapeError reports a model whose summary does not match the
// evaluation points it was asked about.
type SummaryShapeError struct {
	Field     string // "mean" or "variance"
	Got, Want int
}

func (e *SummaryShapeError) Error() string {
	return fmt.Sprintf("gpplot: model returned %s of length %d for %d evaluation points",
		e.Field, e.Got, e.Want)
}

// summarize queries m at points and validates the shape of the result.
// It performs no transformation beyond that.
func summarize(m Summarizable, points mat.Matrix) (Summary, error) {
	s, err := m.Summarize(points)
	if err != nil {
		return Summary{}, fmt.Errorf("gpplot: summarize: %w", err)
	}
	n, _ := points.Dims()
	if len(s.Mean) != n {
		return Summary{}, &SummaryShapeError{Field: "mean", Got: len(s.Mean), Want: n}
	}
	if s.Variance != nil && len(s.Variance) != len(s.Mean) {
		return Summary{}, &SummaryShapeError{Field: "variance", Got: len(s.Variance), Want: n}
	}
	return s, nil
}

// observed returns the model's remembered data if m is a DataHolder with
// exactly one output column. Models without data, or with multi-output
// data, report ok == false; that is a capability state, not an error.
func observed(m Summarizable) (x, y mat.Matrix, ok bool) {
	dh, isDH := m.(DataHolder)
	if !isDH {
		return nil, nil, false
	}
	x, y = dh.ObservedData()
	if x == nil || y == nil {
		return nil, nil, false
	}
	if _, yc := y.Dims(); yc != 1 {
		return nil, nil, false
	}
	xr, _ := x.Dims()
	yr, _ := y.Dims()
	if xr != yr {
		return nil, nil, false
	}
	return x, y, true
}
