package bound

// Bounds widens a raw, clamped position prediction into a [lo, hi)
// interval guaranteed (for keys actually present) to contain the key's
// true position, per spec.md §4.3's widening rules: saturating
// subtraction on the low side, and an exclusive, N-clamped high side.
type Bounds interface {
	// Widen returns [lo, hi) for a prediction pred already clamped to
	// [0, n) for bucket bucket.
	Widen(bucket, pred, n int) (lo, hi int)
	SizeInBytes() int64
}

// Builder accumulates signed residuals (pred - i) observed during the
// second construction pass (spec.md §4.2 step 3) and finalizes them into
// an immutable Bounds.
type Builder interface {
	// Accumulate records that bucket's model predicted pred for the key
	// that actually sits at index i.
	Accumulate(bucket, pred, i int)
	Build() Bounds
}

func saturatingSub(pred, e int) int {
	if pred > e {
		return pred - e
	}
	return 0
}

func clampHigh(pred, e, n int) int {
	hi := pred + e + 1
	if hi > n {
		return n
	}
	return hi
}
