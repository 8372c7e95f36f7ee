package bound_test

import (
	"testing"

	"github.com/BigDataAnalyticsGroup/rmi-go/bound"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalAbsolute_TightestSymmetricError(t *testing.T) {
	b, err := bound.NewBuilder(bound.LABS, 2)
	require.NoError(t, err)

	// bucket 0: predictions 5, 3 against true indices 4, 10 -> |5-4|=1, |3-10|=7
	b.Accumulate(0, 5, 4)
	b.Accumulate(0, 3, 10)
	// bucket 1: single prediction, zero error
	b.Accumulate(1, 20, 20)

	bounds := b.Build()
	lo0, hi0 := bounds.Widen(0, 5, 100)
	assert.Equal(t, 0, lo0)  // err=max(1,7)=7 -> 5-7 saturates to 0
	assert.Equal(t, 13, hi0) // 5+7+1
	lo1, hi1 := bounds.Widen(1, 20, 100)
	assert.Equal(t, 20, lo1)
	assert.Equal(t, 21, hi1)
}

func TestLocalIndependent_SeparatesOverUnderEstimation(t *testing.T) {
	b, err := bound.NewBuilder(bound.LIND, 1)
	require.NoError(t, err)

	b.Accumulate(0, 10, 4) // overestimate by 6
	b.Accumulate(0, 2, 8)  // underestimate by 6

	bounds := b.Build()
	lo, hi := bounds.Widen(0, 10, 100)
	assert.Equal(t, 4, lo)   // 10 - 6
	assert.Equal(t, 17, hi)  // 10 + 6 + 1
}

func TestGlobalAbsolute_SharesOneResidual(t *testing.T) {
	b, err := bound.NewBuilder(bound.GABS, 8)
	require.NoError(t, err)

	b.Accumulate(0, 1, 0)
	b.Accumulate(3, 50, 40)
	b.Accumulate(7, 2, 2)

	bounds := b.Build()
	_, hi := bounds.Widen(5, 100, 1000)
	assert.Equal(t, 111, hi) // err=10 -> 100+10+1
}

func TestNone_AlwaysFullRange(t *testing.T) {
	b, err := bound.NewBuilder(bound.NB, 4)
	require.NoError(t, err)
	b.Accumulate(0, 1000, 0) // ignored

	bounds := b.Build()
	lo, hi := bounds.Widen(2, 50, 500)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 500, hi)
	assert.Equal(t, int64(0), bounds.SizeInBytes())
}

func TestSaturatingSubtraction_ClampsAtZero(t *testing.T) {
	b, err := bound.NewBuilder(bound.GABS, 1)
	require.NoError(t, err)
	b.Accumulate(0, 2, 100) // err = 98

	bounds := b.Build()
	lo, _ := bounds.Widen(0, 2, 1000)
	assert.Equal(t, 0, lo)
}

func TestClampHigh_ClampsAtN(t *testing.T) {
	b, err := bound.NewBuilder(bound.GABS, 1)
	require.NoError(t, err)
	b.Accumulate(0, 90, 0) // err = 90

	bounds := b.Build()
	_, hi := bounds.Widen(0, 90, 100)
	assert.Equal(t, 100, hi)
}

func TestNewBuilder_UnknownModeRejected(t *testing.T) {
	_, err := bound.NewBuilder(bound.Mode(99), 4)
	require.Error(t, err)
}
