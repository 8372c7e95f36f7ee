package submodel

import (
	"math"

	"github.com/BigDataAnalyticsGroup/rmi-go/shared"
)

// LinearRegression fits an ordinary least squares line via a single-pass,
// numerically stable (Welford-style) accumulation of the mean and
// covariance/variance numerators, ported from original_source/include/
// rmi/models.hpp's LinearRegression. alex_go/linear_model.LinearModelBuilder
// accumulates the naive sums (count, xSum, ySum, xxSum, xySum) instead;
// the reference explicitly favors the online moments form for accuracy at
// large n, so that is what this builder keeps.
type LinearRegression[K shared.Key] struct {
	Slope     float64
	Intercept float64
}

// linearRegressionBuilder accumulates the online moments one point at a
// time, mirroring alex_go/linear_model.LinearModelBuilder's Add/Build split
// but with Welford's formula in place of the naive sum-of-squares.
type linearRegressionBuilder struct {
	count int
	meanX float64
	meanY float64
	c     float64 // covariance numerator
	m2    float64 // variance numerator
}

func (self *linearRegressionBuilder) add(x, y float64) {
	self.count++
	n := float64(self.count)
	dx := x - self.meanX
	self.meanX += dx / n
	self.meanY += (y - self.meanY) / n
	self.c += dx * (y - self.meanY)

	dx2 := x - self.meanX
	self.m2 += dx * dx2
}

// FitLinearRegression trains on keys[offset : offset+n), mapping point i to
// y-coordinate (offset+i)*compression.
func FitLinearRegression[K shared.Key](keys []K, offset, n int, compression float64) LinearRegression[K] {
	if n == 0 {
		return LinearRegression[K]{}
	}
	if n == 1 {
		return LinearRegression[K]{Intercept: float64(offset) * compression}
	}

	b := linearRegressionBuilder{}
	for i := 0; i != n; i++ {
		b.add(float64(keys[offset+i]), float64(offset+i))
	}

	cov := b.c / float64(n-1)
	variance := b.m2 / float64(n-1)

	if variance == 0.0 {
		// The reference's degenerate branch sets intercept = mean_y, without
		// the compression factor, inconsistent with the non-degenerate path
		// below (see spec.md's "Open questions"). This port applies
		// compression consistently instead of reproducing that inconsistency.
		return LinearRegression[K]{Intercept: b.meanY * compression}
	}

	slope := cov / variance * compression
	intercept := b.meanY*compression - slope*b.meanX
	return LinearRegression[K]{Slope: slope, Intercept: intercept}
}

func (self LinearRegression[K]) Predict(key K) float64 {
	return math.FMA(self.Slope, float64(key), self.Intercept)
}

func (self LinearRegression[K]) SizeInBytes() int64 {
	return 2 * 8
}
