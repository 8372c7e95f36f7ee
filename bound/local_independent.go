package bound

// localIndependentBounds stores one (lo, hi) residual pair per bucket.
// Ported from original_source/include/rmi/rmi.hpp's BOUND == LIND branch.
type localIndependentBounds struct {
	lo, hi []int
}

func (self *localIndependentBounds) Widen(bucket, pred, n int) (int, int) {
	return saturatingSub(pred, self.lo[bucket]), clampHigh(pred, self.hi[bucket], n)
}

func (self *localIndependentBounds) SizeInBytes() int64 {
	return int64(len(self.lo)) * 2 * 8
}

type localIndependentBuilder struct {
	bounds localIndependentBounds
}

func newLocalIndependentBuilder(layer2Size int) *localIndependentBuilder {
	return &localIndependentBuilder{
		bounds: localIndependentBounds{
			lo: make([]int, layer2Size),
			hi: make([]int, layer2Size),
		},
	}
}

func (self *localIndependentBuilder) Accumulate(bucket, pred, i int) {
	if pred > i { // overestimation
		if d := pred - i; d > self.bounds.lo[bucket] {
			self.bounds.lo[bucket] = d
		}
	} else { // underestimation
		if d := i - pred; d > self.bounds.hi[bucket] {
			self.bounds.hi[bucket] = d
		}
	}
}

func (self *localIndependentBuilder) Build() Bounds {
	return &self.bounds
}
