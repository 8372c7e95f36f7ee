// Package submodel implements the four interchangeable leaf/root predictors
// an Rmi is built from: LinearSpline, LinearRegression, CubicSpline, and
// Radix. Every variant is a small value object carrying only its fitted
// coefficients; all four satisfy the Submodel capability set described in
// spec.md §9: fit-from-slice-with-compression, predict, size.
package submodel

import "github.com/BigDataAnalyticsGroup/rmi-go/shared"

// Submodel maps a key to a real-valued position estimate. All four variants
// are monotonic non-decreasing over sorted, non-decreasing training data —
// a precondition the Rmi build algorithm relies on for its single
// monotonic bucket-assignment pass.
type Submodel[K shared.Key] interface {
	Predict(key K) float64
	SizeInBytes() int64
}

// Kind selects which Submodel variant a layer of an Rmi is trained with.
type Kind int

const (
	LinearSplineKind Kind = iota
	LinearRegressionKind
	CubicSplineKind
	RadixKind
)

func (k Kind) String() string {
	switch k {
	case LinearSplineKind:
		return "linear_spline"
	case LinearRegressionKind:
		return "linear_regression"
	case CubicSplineKind:
		return "cubic_spline"
	case RadixKind:
		return "radix"
	default:
		return "unknown"
	}
}

// Fit trains the submodel variant named by kind on keys[offset : offset+n),
// mapping point i (0 <= i < n) to y-coordinate (offset+i)*compression. It is
// the single entry point rmi.build uses so that layer1/layer2 kind is a
// runtime configuration value rather than a compile-time parameter.
func Fit[K shared.Key](kind Kind, keys []K, offset, n int, compression float64) (Submodel[K], error) {
	switch kind {
	case LinearSplineKind:
		return FitLinearSpline(keys, offset, n, compression), nil
	case LinearRegressionKind:
		return FitLinearRegression(keys, offset, n, compression), nil
	case CubicSplineKind:
		return FitCubicSpline(keys, offset, n, compression), nil
	case RadixKind:
		return FitRadix(keys, offset, n, compression), nil
	default:
		return nil, shared.ErrUnknownSubmodelKind
	}
}
