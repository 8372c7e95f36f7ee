package submodel_test

import (
	"testing"

	"github.com/BigDataAnalyticsGroup/rmi-go/submodel"
	"github.com/stretchr/testify/assert"
)

func TestRadix_PowerOfTwoKeys(t *testing.T) {
	keys := []uint64{0, 16, 32, 48, 63}
	m := submodel.FitRadix[uint64](keys, 0, len(keys), 1.0)

	pred := m.Predict(63)
	assert.GreaterOrEqual(t, pred, 0.0)
}

func TestRadix_ZeroPoints(t *testing.T) {
	m := submodel.FitRadix[uint64](nil, 0, 0, 1.0)
	assert.Equal(t, 0.0, m.Predict(0))
}

func TestRadix_MonotonicOverSortedKeys(t *testing.T) {
	keys := make([]uint64, 256)
	for i := range keys {
		keys[i] = uint64(i) * 1000
	}
	m := submodel.FitRadix[uint64](keys, 0, len(keys), 1.0)

	prev := -1.0
	for _, k := range keys {
		p := m.Predict(k)
		assert.GreaterOrEqual(t, p, prev)
		prev = p
	}
}
