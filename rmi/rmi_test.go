package rmi_test

import (
	"math/rand"
	"testing"

	"github.com/BigDataAnalyticsGroup/rmi-go/bound"
	"github.com/BigDataAnalyticsGroup/rmi-go/rmi"
	"github.com/BigDataAnalyticsGroup/rmi-go/submodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestContainment_UniformSorted is seed scenario S1: N=1_000_000 keys
// k_i = i*100, L2=1024, LABS, swept over LinearSpline and LinearRegression.
func TestContainment_UniformSorted(t *testing.T) {
	n := 1_000_000
	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = uint64(i) * 100
	}

	for _, kind := range []submodel.Kind{submodel.LinearSplineKind, submodel.LinearRegressionKind} {
		cfg := rmi.NewConfig(
			rmi.WithLayer1Kind(kind),
			rmi.WithLayer2Kind(kind),
			rmi.WithLayer2Size(1024),
			rmi.WithBoundMode(bound.LABS),
		)
		index, err := rmi.New(keys, cfg)
		require.NoError(t, err)

		_, lo, hi := index.Search(500_000)
		assert.LessOrEqual(t, lo, 5000)
		assert.Greater(t, hi, 5000)
	}
}

// TestContainment_DegenerateLayer2Size is seed scenario S2: N=16 arbitrary
// sorted keys, L2=1; every query must fall in bucket 0 and satisfy
// containment.
func TestContainment_DegenerateLayer2Size(t *testing.T) {
	keys := []uint64{1, 3, 4, 4, 9, 12, 15, 20, 21, 30, 31, 40, 55, 60, 61, 100}
	cfg := rmi.NewConfig(rmi.WithLayer2Size(1))
	index, err := rmi.New(keys, cfg)
	require.NoError(t, err)

	for i, k := range keys {
		_, lo, hi := index.Search(k)
		assert.LessOrEqual(t, lo, i, "key %d at index %d", k, i)
		assert.Greater(t, hi, i, "key %d at index %d", k, i)
	}
}

// TestContainment_SkewedEmptyBuckets is seed scenario S3: keys clustered at
// both ends so layer 1 routes everything into bucket 0 and L2-1, leaving
// middle buckets empty and anchor-filled; containment must still hold.
func TestContainment_SkewedEmptyBuckets(t *testing.T) {
	var keys []uint64
	for i := uint64(0); i < 500; i++ {
		keys = append(keys, i)
	}
	for i := uint64(0); i < 500; i++ {
		keys = append(keys, 1_000_000+i)
	}

	cfg := rmi.NewConfig(rmi.WithLayer2Size(64), rmi.WithBoundMode(bound.LIND))
	index, err := rmi.New(keys, cfg)
	require.NoError(t, err)

	for i, k := range keys {
		_, lo, hi := index.Search(k)
		assert.LessOrEqual(t, lo, i)
		assert.Greater(t, hi, i)
	}

	stats := index.Stats()
	assert.Greater(t, stats.EmptyBuckets, 0, "skewed dataset should leave some buckets anchor-filled")
}

// TestContainment_DuplicateKeys is seed scenario S4.
func TestContainment_DuplicateKeys(t *testing.T) {
	keys := []uint64{0, 0, 0, 1, 1, 2, 2, 2, 2}
	cfg := rmi.NewConfig(rmi.WithLayer2Size(4), rmi.WithBoundMode(bound.GABS))
	index, err := rmi.New(keys, cfg)
	require.NoError(t, err)

	_, lo, hi := index.Search(0)
	assert.LessOrEqual(t, lo, 0)
	assert.Greater(t, hi, 0)

	_, lo, hi = index.Search(2)
	foundTwo := false
	for i := lo; i < hi && i < len(keys); i++ {
		if keys[i] == 2 {
			foundTwo = true
		}
	}
	assert.True(t, foundTwo, "bound [%d, %d) should contain at least one index where keys[i]=2", lo, hi)
}

// TestConstantKeys_RadixDegeneracy is seed scenario S5: all keys identical.
func TestConstantKeys_RadixDegeneracy(t *testing.T) {
	keys := make([]uint64, 100)
	for i := range keys {
		keys[i] = 42
	}

	cfg := rmi.NewConfig(
		rmi.WithLayer1Kind(submodel.RadixKind),
		rmi.WithLayer2Kind(submodel.RadixKind),
		rmi.WithLayer2Size(8),
	)
	index, err := rmi.New(keys, cfg)
	require.NoError(t, err)

	_, lo, hi := index.Search(42)
	assert.Equal(t, 0, lo)
	assert.GreaterOrEqual(t, hi, 1)
}

// TestSizeOrdering_ByBoundMode is seed scenario S6: the five bound modes'
// storage footprints are non-decreasing in the order NB <= GABS <= GIND <=
// LABS <= LIND on the same keys.
func TestSizeOrdering_ByBoundMode(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	keys := make([]uint64, 10_000)
	for i := range keys {
		keys[i] = uint64(i) + uint64(rng.Intn(3))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i] < keys[i-1] {
			keys[i] = keys[i-1]
		}
	}

	sizes := map[bound.Mode]int64{}
	for _, mode := range []bound.Mode{bound.NB, bound.GABS, bound.GIND, bound.LABS, bound.LIND} {
		cfg := rmi.NewConfig(rmi.WithLayer2Size(256), rmi.WithBoundMode(mode))
		index, err := rmi.New(keys, cfg)
		require.NoError(t, err)
		sizes[mode] = index.SizeInBytes()
	}

	assert.LessOrEqual(t, sizes[bound.NB], sizes[bound.GABS])
	assert.LessOrEqual(t, sizes[bound.GABS], sizes[bound.GIND])
	assert.LessOrEqual(t, sizes[bound.GIND], sizes[bound.LABS])
	assert.LessOrEqual(t, sizes[bound.LABS], sizes[bound.LIND])
}

// TestBucketMonotonicity is testable property 2: get_bucket is
// non-decreasing over sorted keys.
func TestBucketMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	keys := make([]uint64, 5000)
	for i := range keys {
		keys[i] = uint64(i) + uint64(rng.Intn(5))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i] < keys[i-1] {
			keys[i] = keys[i-1]
		}
	}

	cfg := rmi.NewConfig(rmi.WithLayer2Size(128))
	index, err := rmi.New(keys, cfg)
	require.NoError(t, err)

	prevBucket := -1
	for _, k := range keys {
		pred, _, _ := index.Search(k)
		_ = pred
		bucket := bucketOf(t, index, k)
		assert.GreaterOrEqual(t, bucket, prevBucket)
		prevBucket = bucket
	}
}

func bucketOf(t *testing.T, index *rmi.Rmi[uint64], k uint64) int {
	t.Helper()
	pred := int(index.L1().Predict(k))
	if pred < 0 {
		return 0
	}
	if pred >= index.Layer2Size() {
		return index.Layer2Size() - 1
	}
	return pred
}

// TestIdempotentBuild is testable property 5: building twice on identical
// inputs yields identical search outputs.
func TestIdempotentBuild(t *testing.T) {
	keys := make([]uint64, 2000)
	for i := range keys {
		keys[i] = uint64(i) * 3
	}

	cfg := rmi.NewConfig(rmi.WithLayer2Size(64), rmi.WithBoundMode(bound.LABS))
	a, err := rmi.New(keys, cfg)
	require.NoError(t, err)
	b, err := rmi.New(keys, cfg)
	require.NoError(t, err)

	for _, k := range []uint64{0, 300, 1500, 5997} {
		predA, loA, hiA := a.Search(k)
		predB, loB, hiB := b.Search(k)
		assert.Equal(t, predA, predB)
		assert.Equal(t, loA, loB)
		assert.Equal(t, hiA, hiB)
	}
}

// TestEmptyKeySequence covers N=0 (spec.md §3: legal, degenerate).
func TestEmptyKeySequence(t *testing.T) {
	index, err := rmi.New([]uint64{}, rmi.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 0, index.NKeys())

	pred, lo, hi := index.Search(42)
	assert.Equal(t, 0, pred)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 0, hi)
}

// TestZeroLayer2SizeRejected covers the one defined construction failure
// (spec.md §4.5).
func TestZeroLayer2SizeRejected(t *testing.T) {
	_, err := rmi.New([]uint64{1, 2, 3}, rmi.NewConfig(rmi.WithLayer2Size(0)))
	require.Error(t, err)
}

// TestUnsortedKeysRejected covers the sortedness precondition (spec.md §3).
func TestUnsortedKeysRejected(t *testing.T) {
	_, err := rmi.New([]uint64{3, 1, 2}, rmi.DefaultConfig())
	require.Error(t, err)
}
