package shared

import "math/bits"

// UintBitWidth computes the amount of bits needed to represent unsigned
// value n, i.e. floor(log2(n)) + 1 for n > 0, and 0 for n == 0.
// Ported from original_source/include/rmi/util/fn.hpp's bit_width, which
// counts leading zeros of the machine word; Go exposes that directly via
// math/bits instead of the __builtin_clz family.
func UintBitWidth(n uint64) uint8 {
	return uint8(64 - bits.LeadingZeros64(n))
}

// CommonPrefixWidth returns the length, in bits, of the common high-order
// prefix of v1 and v2 within a width-bit word.
// Ported from original_source/include/rmi/util/fn.hpp's common_prefix_width.
func CommonPrefixWidth(v1, v2 uint64, width int) uint8 {
	length := width
	for v1 != v2 {
		v1 >>= 1
		v2 >>= 1
		length--
	}
	return uint8(length)
}
