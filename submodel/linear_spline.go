package submodel

import (
	"math"

	"github.com/BigDataAnalyticsGroup/rmi-go/shared"
)

// LinearSpline fits a line anchored at the first training point with slope
// n/(last key - first key), scaled by compression. It passes through the
// first point and predicts (offset+n)*compression at the last key, one
// compression unit above that key's own y-coordinate. Ported from original_source/include/rmi/models.hpp's LinearSpline, in the
// style of alex_go/linear_model.LinearModel (a bare (slope, intercept)
// value object with a Predict method). K is carried only so LinearSpline[K]
// satisfies Submodel[K]; the fitted coefficients themselves never depend on
// the key width.
type LinearSpline[K shared.Key] struct {
	Slope     float64
	Intercept float64
}

// FitLinearSpline trains on keys[offset : offset+n), mapping point i to
// y-coordinate (offset+i)*compression.
func FitLinearSpline[K shared.Key](keys []K, offset, n int, compression float64) LinearSpline[K] {
	if n == 0 {
		return LinearSpline[K]{}
	}
	if n == 1 {
		return LinearSpline[K]{Intercept: float64(offset) * compression}
	}

	numerator := float64(n)
	denominator := float64(keys[offset+n-1]) - float64(keys[offset])

	self := LinearSpline[K]{}
	if denominator != 0.0 {
		self.Slope = numerator / denominator * compression
	}
	self.Intercept = float64(offset)*compression - self.Slope*float64(keys[offset])
	return self
}

func (self LinearSpline[K]) Predict(key K) float64 {
	return math.FMA(self.Slope, float64(key), self.Intercept)
}

func (self LinearSpline[K]) SizeInBytes() int64 {
	return 2 * 8
}
