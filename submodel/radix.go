package submodel

import "github.com/BigDataAnalyticsGroup/rmi-go/shared"

// Radix predicts by shifting off a common bit prefix and keeping a fixed
// number of the remaining high bits. Ported from original_source/include/
// rmi/models.hpp's Radix; unlike the other three variants it has no
// explicit n==1 carve-out in the reference, so none is added here either —
// a single-key training range falls out of the common-prefix/bit-width
// computation below on its own.
type Radix[K shared.Key] struct {
	Prefix uint8
	Radix  uint8
}

// FitRadix trains on keys[offset : offset+n), mapping point i to
// y-coordinate (offset+i)*compression.
func FitRadix[K shared.Key](keys []K, offset, n int, compression float64) Radix[K] {
	if n == 0 {
		return Radix[K]{}
	}

	width := shared.BitWidth[K]()
	prefix := shared.CommonPrefixWidth(uint64(keys[offset]), uint64(keys[offset+n-1]), width)

	max := uint64(float64(offset+n-1) * compression)
	isPowerOfTwoMinusOne := (max & (max + 1)) == 0
	bitWidth := shared.UintBitWidth(max)

	var radix uint8
	if isPowerOfTwoMinusOne {
		radix = bitWidth
	} else {
		radix = bitWidth - 1
	}

	return Radix[K]{Prefix: prefix, Radix: radix}
}

func (self Radix[K]) Predict(key K) float64 {
	width := shared.BitWidth[K]()
	shifted := uint64(key << self.Prefix)
	shiftRight := uint(width) - uint(self.Radix)
	return float64(shifted >> shiftRight)
}

func (self Radix[K]) SizeInBytes() int64 {
	return 2
}
