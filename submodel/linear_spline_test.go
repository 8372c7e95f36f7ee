package submodel_test

import (
	"testing"

	"github.com/BigDataAnalyticsGroup/rmi-go/submodel"
	"github.com/stretchr/testify/assert"
)

func TestLinearSpline_Interpolation(t *testing.T) {
	keys := []uint64{0, 10, 20, 30, 40}
	m := submodel.FitLinearSpline[uint64](keys, 0, len(keys), 1.0)

	assert.InDelta(t, 0.0, m.Predict(0), 1e-9)
	assert.InDelta(t, 5.0, m.Predict(40), 1e-9)
}

func TestLinearSpline_ZeroPoints(t *testing.T) {
	m := submodel.FitLinearSpline[uint64](nil, 0, 0, 1.0)
	assert.Equal(t, 0.0, m.Predict(5))
}

func TestLinearSpline_SinglePoint(t *testing.T) {
	keys := []uint64{7}
	m := submodel.FitLinearSpline[uint64](keys, 3, 1, 2.0)
	assert.Equal(t, 6.0, m.Predict(999))
}

func TestLinearSpline_ConstantKeys(t *testing.T) {
	keys := []uint64{5, 5, 5, 5}
	m := submodel.FitLinearSpline[uint64](keys, 0, len(keys), 1.0)
	assert.Equal(t, 0.0, m.Slope)
}
