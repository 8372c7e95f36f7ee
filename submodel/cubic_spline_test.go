package submodel_test

import (
	"testing"

	"github.com/BigDataAnalyticsGroup/rmi-go/submodel"
	"github.com/stretchr/testify/assert"
)

func TestCubicSpline_EndpointsMatch(t *testing.T) {
	keys := make([]uint64, 50)
	for i := range keys {
		keys[i] = uint64(i * i)
	}
	m := submodel.FitCubicSpline[uint64](keys, 0, len(keys), 1.0)

	assert.InDelta(t, 0.0, m.Predict(keys[0]), 1e-6)
	assert.InDelta(t, float64(len(keys)-1), m.Predict(keys[len(keys)-1]), 1e-6)
}

func TestCubicSpline_ConstantKeys(t *testing.T) {
	keys := []uint64{1, 1, 2, 2, 2, 3, 3, 3}
	m := submodel.FitCubicSpline[uint64](keys, 5, 3, 1.0)
	assert.Equal(t, 5.0, m.Predict(3))
}

func TestCubicSpline_ZeroPoints(t *testing.T) {
	m := submodel.FitCubicSpline[uint64](nil, 0, 0, 1.0)
	assert.Equal(t, 0.0, m.Predict(1))
}

func TestCubicSpline_NeverWorseThanLinearSpline(t *testing.T) {
	keys := []uint64{0, 1, 2, 3, 100}
	n := len(keys)

	cs := submodel.FitCubicSpline[uint64](keys, 0, n, 1.0)
	ls := submodel.FitLinearSpline[uint64](keys, 0, n, 1.0)

	var csErr, lsErr float64
	for i, k := range keys {
		y := float64(i)
		csErr += abs(cs.Predict(k) - y)
		lsErr += abs(ls.Predict(k) - y)
	}
	assert.LessOrEqual(t, csErr, lsErr+1e-9)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
