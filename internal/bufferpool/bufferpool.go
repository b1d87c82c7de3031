// Package bufferpool keeps size-classed scratch buffers for block-sized work,
// so verifying a stream of blocks doesn't allocate one 64KiB buffer per block.
package bufferpool

import (
	"math/bits"
	"sync"
)

const (
	minClassShift = 8  // 256 bytes
	classCnt      = 10 // up to 2^(8+9) = 128KiB, twice the largest block
)

// pools contains pools for slices of byte of various capacities.
//
//	pools[0] is for capacities from 0 upto 256
//	pools[1] is for capacities from 257 upto 512
//	...
//	pools[n] is for capacities from 2^(n+7)+1 to 2^(n+8)
//
// Anything larger than the last class is allocated and dropped on Put.
var pools [classCnt]sync.Pool

// Get returns a zero-length buffer whose capacity is at least size.
func Get(size int) []byte {
	id, poolCap := classOf(size)
	if poolCap < size {
		return make([]byte, 0, size)
	}
	if b, ok := pools[id].Get().(*[]byte); ok {
		return (*b)[:0]
	}

	return make([]byte, 0, poolCap)
}

// Put returns buf to its size class. Buffers that do not exactly match a class
// capacity were not handed out by Get and are left to the GC.
func Put(buf []byte) {
	id, poolCap := classOf(cap(buf))
	if cap(buf) != poolCap {
		return
	}

	buf = buf[:0]
	pools[id].Put(&buf)
}

// classOf predicts the pool id for the given size and returns the pool capacity.
func classOf(size int) (int, int) {
	size--
	size = max(size, 0)
	size >>= minClassShift
	id := bits.Len(uint(size))
	id = min(id, classCnt-1)
	return id, 1 << (id + minClassShift)
}
