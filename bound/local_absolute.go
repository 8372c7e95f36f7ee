package bound

// localAbsoluteBounds stores one symmetric residual per bucket. Ported from
// original_source/include/rmi/rmi.hpp's BOUND == LABS branch — the
// reference's default.
type localAbsoluteBounds struct {
	err []int
}

func (self *localAbsoluteBounds) Widen(bucket, pred, n int) (int, int) {
	e := self.err[bucket]
	return saturatingSub(pred, e), clampHigh(pred, e, n)
}

func (self *localAbsoluteBounds) SizeInBytes() int64 {
	return int64(len(self.err)) * 8
}

type localAbsoluteBuilder struct {
	bounds localAbsoluteBounds
}

func newLocalAbsoluteBuilder(layer2Size int) *localAbsoluteBuilder {
	return &localAbsoluteBuilder{bounds: localAbsoluteBounds{err: make([]int, layer2Size)}}
}

func (self *localAbsoluteBuilder) Accumulate(bucket, pred, i int) {
	var d int
	if pred > i {
		d = pred - i
	} else {
		d = i - pred
	}
	if d > self.bounds.err[bucket] {
		self.bounds.err[bucket] = d
	}
}

func (self *localAbsoluteBuilder) Build() Bounds {
	return &self.bounds
}
