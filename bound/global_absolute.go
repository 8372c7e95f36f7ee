package bound

// globalAbsoluteBounds stores a single symmetric residual shared by every
// bucket. Ported from original_source/include/rmi/rmi.hpp's
// BOUND == GABS branch.
type globalAbsoluteBounds struct {
	err int
}

func (self *globalAbsoluteBounds) Widen(_ int, pred, n int) (int, int) {
	return saturatingSub(pred, self.err), clampHigh(pred, self.err, n)
}

func (self *globalAbsoluteBounds) SizeInBytes() int64 {
	return 8
}

type globalAbsoluteBuilder struct {
	bounds globalAbsoluteBounds
}

func newGlobalAbsoluteBuilder() *globalAbsoluteBuilder {
	return &globalAbsoluteBuilder{}
}

func (self *globalAbsoluteBuilder) Accumulate(_ int, pred, i int) {
	var d int
	if pred > i {
		d = pred - i
	} else {
		d = i - pred
	}
	if d > self.bounds.err {
		self.bounds.err = d
	}
}

func (self *globalAbsoluteBuilder) Build() Bounds {
	return &self.bounds
}
