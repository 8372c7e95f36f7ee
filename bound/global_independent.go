package bound

// globalIndependentBounds stores a single (lo, hi) residual pair shared by
// every bucket. Ported from original_source/include/rmi/rmi.hpp's
// BOUND == GIND branch.
type globalIndependentBounds struct {
	lo, hi int
}

func (self *globalIndependentBounds) Widen(_ int, pred, n int) (int, int) {
	return saturatingSub(pred, self.lo), clampHigh(pred, self.hi, n)
}

func (self *globalIndependentBounds) SizeInBytes() int64 {
	return 2 * 8
}

type globalIndependentBuilder struct {
	bounds globalIndependentBounds
}

func newGlobalIndependentBuilder() *globalIndependentBuilder {
	return &globalIndependentBuilder{}
}

func (self *globalIndependentBuilder) Accumulate(_ int, pred, i int) {
	if pred > i {
		if d := pred - i; d > self.bounds.lo {
			self.bounds.lo = d
		}
	} else {
		if d := i - pred; d > self.bounds.hi {
			self.bounds.hi = d
		}
	}
}

func (self *globalIndependentBuilder) Build() Bounds {
	return &self.bounds
}
