package shared

import (
	"golang.org/x/exp/constraints"
	"unsafe"
)

// Key is the set of types an Rmi can be built over: any unsigned integer
// width. The reference implementation is specialized to uint64; this
// implementation is generic over the whole family so a caller indexing
// uint32 or uint8 keys pays only for the width they use.
type Key interface {
	constraints.Unsigned
}

// BitWidth returns the number of bits used to represent values of K.
func BitWidth[K Key]() int {
	var zero K
	return int(unsafe.Sizeof(zero)) * 8
}
