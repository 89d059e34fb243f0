// Package rawmem provides fixed-capacity raw element storage.
//
// A Block owns slots for a number of elements but never constructs, reads, or
// destroys element values. Which slots hold live values is exclusively the
// caller's knowledge; the Block only guarantees that every slot is addressable.
// In Go the backing array is GC-scanned typed memory, so "uninitialized" is an
// API contract rather than a bit pattern: callers must not read a slot they
// have not constructed into, and must destroy their values before Release.
package rawmem

import (
	"errors"
	"math"
	"unsafe"
)

// ErrCapacity reports a slot count that cannot be allocated.
var ErrCapacity = errors.New("rawmem: invalid block capacity")

// Block is a run of element slots with no liveness tracking. The zero value is
// a released block of capacity 0. Blocks are move-only: ownership changes
// hands via Swap, never by duplicating the backing storage.
type Block[T any] struct {
	slots []T
}

// Alloc returns raw storage for n element slots. n == 0 yields an empty block
// with no backing memory. A negative n, or one whose byte size would overflow
// the address space, fails with ErrCapacity and no partial state.
func Alloc[T any](n int) (Block[T], error) {
	if n == 0 {
		return Block[T]{}, nil
	}
	var t T
	if size := unsafe.Sizeof(t); n < 0 || (size > 0 && uintptr(n) > uintptr(math.MaxInt)/size) {
		return Block[T]{}, ErrCapacity
	}
	return Block[T]{slots: make([]T, n)}, nil
}

// Cap returns the slot count. It says nothing about how many slots are live.
func (b *Block[T]) Cap() int {
	return len(b.slots)
}

// At returns the address of slot i, whether or not it holds a value.
// i must be in [0, Cap()).
func (b *Block[T]) At(i int) *T {
	return &b.slots[i]
}

// Slice exposes the slot window [i, j) for bulk transfer loops. Slice(n, n) at
// n == Cap() is valid and empty, so one-past-end positions are expressible.
func (b *Block[T]) Slice(i, j int) []T {
	return b.slots[i:j]
}

// Swap exchanges the storage of two blocks in O(1). There is no element-level
// work because a Block has no notion of elements, only slots.
func (b *Block[T]) Swap(other *Block[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// Release drops the backing storage, returning the block to capacity 0. The
// caller must already have destroyed any live values the block held; Release
// never inspects slot contents. Releasing an empty block is a no-op.
func (b *Block[T]) Release() {
	b.slots = nil
}
