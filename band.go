package gpplot

import (
	"fmt"
	"math"
)

// DefaultBandK is the half width multiplier of a confidence band in
// standard deviations. Two standard deviations cover roughly 95% under
// a Gaussian assumption.
const DefaultBandK = 2.0

// A Band is a symmetric confidence band around a mean.
type Band struct {
	Lower, Upper []float64
}

// A NegativeVarianceError reports a model handing out a negative
// predictive variance. It indicates a misbehaving model, not bad user
// input.
type NegativeVarianceError struct {
	Index int
	Value float64
}

func (e *NegativeVarianceError) Error() string {
	return fmt.Sprintf("gpplot: negative variance %g at point %d", e.Value, e.Index)
}

// NewBand derives the band mean ± k·sqrt(variance). Mean and variance
// must have the same length. A k <= 0 falls back to DefaultBandK.
func NewBand(mean, variance []float64, k float64) (Band, error) {
	if k <= 0 {
		k = DefaultBandK
	}
	b := Band{
		Lower: make([]float64, len(mean)),
		Upper: make([]float64, len(mean)),
	}
	for i, m := range mean {
		v := variance[i]
		if v < 0 {
			return Band{}, &NegativeVarianceError{Index: i, Value: v}
		}
		d := k * math.Sqrt(v)
		b.Lower[i] = m - d
		b.Upper[i] = m + d
	}
	return b, nil
}
