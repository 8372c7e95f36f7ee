package bound

// noneBounds stores nothing and always widens to the full array, per
// original_source/include/rmi/rmi.hpp's BOUND == NB branch.
type noneBounds struct{}

func (noneBounds) Widen(_ int, _ int, n int) (int, int) {
	return 0, n
}

func (noneBounds) SizeInBytes() int64 {
	return 0
}

type noneBuilder struct{}

func (noneBuilder) Accumulate(_ int, _ int, _ int) {}

func (noneBuilder) Build() Bounds {
	return noneBounds{}
}
