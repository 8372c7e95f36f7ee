// Package rmi implements the Recursive Model Index: a read-only,
// in-memory learned index over a sorted sequence of unsigned integer keys.
// It predicts a key's approximate array position and widens that guess into
// a [lo, hi) interval guaranteed to contain the key if present, so a caller
// can finish the lookup with a bounded binary search. Ported in spirit from
// original_source/include/rmi/rmi.hpp, in the structural idiom of
// alex_go/index/Index.go (a frozen, single Index type built once and
// queried many times) — but immutable: there is no Insert here, only New
// and Search.
package rmi

import (
	"fmt"
	"sort"

	"github.com/BigDataAnalyticsGroup/rmi-go/bound"
	"github.com/BigDataAnalyticsGroup/rmi-go/shared"
	"github.com/BigDataAnalyticsGroup/rmi-go/submodel"
	"github.com/kelindar/bitmap"
)

// Rmi is the two-layer model hierarchy: one layer-1 submodel routes a key
// into one of layer2Size buckets, and the corresponding layer-2 submodel
// predicts the key's absolute position in the array it was built over. The
// original key array is never retained (spec.md §5: borrowed for New only).
type Rmi[K shared.Key] struct {
	layer1       submodel.Submodel[K]
	layer2       []submodel.Submodel[K]
	bounds       bound.Bounds
	emptyBuckets bitmap.Bitmap

	n          int
	layer2Size int
	boundMode  bound.Mode
}

// New builds an Rmi over keys, which must already be sorted non-decreasing
// (spec.md §3). Construction fails if layer2Size < 1 (spec.md §4.5), if
// keys are not sorted (ErrUnsortedKeys), or if cfg names an unknown
// submodel kind or bound mode; duplicate keys and N = 0 are both legal. A requested layer2Size that
// isn't already a power of two is rounded up to one, matching spec.md §3's
// "typical values are powers of two" guidance.
func New[K shared.Key](keys []K, cfg Config) (*Rmi[K], error) {
	if cfg.Layer2Size < 1 {
		return nil, shared.ErrZeroLayer2Size
	}
	cfg.Layer2Size = shared.Pow2RoundUp(cfg.Layer2Size)
	if !sort.SliceIsSorted(keys, func(i, j int) bool { return keys[i] < keys[j] }) {
		return nil, shared.ErrUnsortedKeys
	}
	r, err := build(keys, cfg)
	if err != nil {
		return nil, fmt.Errorf("building rmi: %w", err)
	}
	return r, nil
}

// getBucket is the reference's get_bucket: layer-1's prediction clamped
// into [0, layer2Size).
func (self *Rmi[K]) getBucket(key K) int {
	return clampBucket(self.layer1.Predict(key), self.layer2Size)
}

// Search returns (pred, lo, hi): pred is the raw clamped layer-2 position
// estimate, and [lo, hi) is the interval the active bound mode guarantees
// contains key's position if key is actually present in the keys Search
// was built over (spec.md §4.4).
func (self *Rmi[K]) Search(key K) (pred, lo, hi int) {
	if self.n == 0 {
		return 0, 0, 0
	}
	bucket := self.getBucket(key)
	pred = clampPos(self.layer2[bucket].Predict(key), self.n)
	lo, hi = self.bounds.Widen(bucket, pred, self.n)
	return pred, lo, hi
}

// SizeInBytes is the total storage held by layer 1, the layer-2 array,
// bound storage, and the scalar counters (spec.md §6).
func (self *Rmi[K]) SizeInBytes() int64 {
	var layer2Bytes int64
	for _, m := range self.layer2 {
		layer2Bytes += m.SizeInBytes()
	}
	const scalarCounters = 2 * 8 // n, layer2Size
	return self.layer1.SizeInBytes() + layer2Bytes + self.bounds.SizeInBytes() + scalarCounters
}

func (self *Rmi[K]) NKeys() int { return self.n }

func (self *Rmi[K]) Layer2Size() int { return self.layer2Size }

func (self *Rmi[K]) BoundMode() bound.Mode { return self.boundMode }

func (self *Rmi[K]) L1() submodel.Submodel[K] { return self.layer1 }

func (self *Rmi[K]) L2() []submodel.Submodel[K] { return self.layer2 }

// Stats reports build-time bookkeeping that the reference has no direct
// equivalent for (it does not track which buckets got a real fit versus an
// anchor fill-in); modeled on alex_go/index/Index.go's extensive num*
// statistics fields, scaled down to the one thing a read-only RMI build can
// usefully report.
type Stats struct {
	LayerTwoBuckets int
	EmptyBuckets    int
}

func (self *Rmi[K]) Stats() Stats {
	return Stats{
		LayerTwoBuckets: self.layer2Size,
		EmptyBuckets:    self.emptyBuckets.Count(),
	}
}
