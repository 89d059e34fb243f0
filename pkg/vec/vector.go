// Package vec implements a generic dynamic array over raw slot storage.
//
// A Vector owns one rawmem.Block and a live count: slots [0, Len()) hold
// constructed elements, slots [Len(), Cap()) are uninitialized. Every
// operation pairs allocation with construction and destruction by hand, which
// is what lets the container promise well-defined states when an element
// operation fails: reserve, append, and reallocating inserts either fully
// succeed or leave the vector exactly as it was.
//
// Element types are plain values by default. Types whose construction, copy,
// or transfer can fail (or that hold resources needing teardown) describe
// those operations with lifecycle Options; the container then threads every
// failure path through them.
//
// A Vector is not safe for concurrent use; callers must serialize access.
package vec

import (
	"fmt"
	"iter"

	"github.com/rawvec-go/rawvec/pkg/rawmem"
)

// Vector is a contiguous, resizable container with value semantics and
// amortized constant-time append. The zero value is not ready for use;
// construct with New or NewLen so lifecycle options apply.
type Vector[T any] struct {
	data  rawmem.Block[T]
	size  int
	hooks hooks[T]
}

// New returns an empty vector with capacity 0.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	for _, opt := range opts {
		opt(&v.hooks)
	}
	return v
}

// NewLen returns a vector of length and capacity n whose elements are
// default-constructed. If construction fails partway, the constructed prefix
// is destroyed, the storage is released, and the error is returned.
func NewLen[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	v := New[T](opts...)
	block, err := rawmem.Alloc[T](n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		val, err := v.hooks.makeDefault()
		if err != nil {
			v.hooks.destroyRange(block.Slice(0, i))
			block.Release()
			return nil, fmt.Errorf("vec: constructing element %d: %w", i, err)
		}
		*block.At(i) = val
	}
	v.data = block
	v.size = n
	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// Clone returns an independent vector with capacity equal to the source
// length and a clone of every live element. Mutating either vector never
// affects the other.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{hooks: v.hooks}
	block, err := rawmem.Alloc[T](v.size)
	if err != nil {
		return nil, err
	}
	for i := 0; i < v.size; i++ {
		val, err := v.hooks.cloneFrom(v.data.At(i))
		if err != nil {
			v.hooks.destroyRange(block.Slice(0, i))
			block.Release()
			return nil, fmt.Errorf("vec: cloning element %d: %w", i, err)
		}
		*block.At(i) = val
	}
	out.data = block
	out.size = v.size
	return out, nil
}

// Move returns a vector that takes over the receiver's storage and elements.
// The receiver is left empty (length 0, capacity 0) and remains usable.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{hooks: v.hooks}
	out.data.Swap(&v.data)
	out.size, v.size = v.size, 0
	return out
}

// Swap exchanges contents with other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.hooks, other.hooks = other.hooks, v.hooks
}

// CopyFrom makes the receiver an element-wise copy of rhs. Self-assignment is
// a no-op.
//
// When rhs does not fit in the current capacity, the copy is built aside and
// swapped in, so a failure leaves the receiver untouched. Within capacity the
// copy happens in place: clone-assign over the common prefix, then either
// destroy the excess elements or clone-construct the missing tail. A failure
// on the in-place path leaves the receiver valid and size-consistent but
// possibly with a partially assigned prefix.
func (v *Vector[T]) CopyFrom(rhs *Vector[T]) error {
	if v == rhs {
		return nil
	}
	if rhs.size > v.data.Cap() {
		tmp, err := rhs.Clone()
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.Destroy()
		return nil
	}
	common := min(v.size, rhs.size)
	for i := 0; i < common; i++ {
		if err := v.hooks.cloneAssign(v.data.At(i), rhs.data.At(i)); err != nil {
			return fmt.Errorf("vec: copying element %d: %w", i, err)
		}
	}
	if rhs.size <= v.size {
		v.hooks.destroyRange(v.data.Slice(rhs.size, v.size))
	} else {
		for i := v.size; i < rhs.size; i++ {
			val, err := v.hooks.cloneFrom(rhs.data.At(i))
			if err != nil {
				v.hooks.destroyRange(v.data.Slice(v.size, i))
				return fmt.Errorf("vec: copying element %d: %w", i, err)
			}
			*v.data.At(i) = val
		}
	}
	v.size = rhs.size
	return nil
}

// MoveFrom destroys the receiver's contents and takes over rhs's storage and
// elements. rhs is left empty.
func (v *Vector[T]) MoveFrom(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	v.Destroy()
	v.data.Swap(&rhs.data)
	v.size, rhs.size = rhs.size, 0
}

// Destroy destroys all live elements and releases the storage. The vector is
// empty afterwards and can be reused. Element types without lifecycle hooks
// may skip Destroy entirely and leave the vector to the garbage collector;
// types with a destructor hook must call it to run their teardown.
func (v *Vector[T]) Destroy() {
	v.hooks.destroyRange(v.data.Slice(0, v.size))
	v.size = 0
	v.data.Release()
}

// Reserve grows capacity to at least n. It is a no-op when n does not exceed
// the current capacity: length, capacity, and element addresses all stay put.
//
// Live elements are relocated to the new block by move or by clone. Types
// with a fallible move and a clone relocate by clone, so a failure rolls back
// completely: the new block's constructions are destroyed, the old storage is
// untouched, and the error is returned (strong guarantee). Move-only types
// relocate by their fallible move and waive that guarantee: a mid-relocation
// failure leaves already-moved sources moved-from, though the vector itself
// stays valid.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.data.Cap() {
		return nil
	}
	block, err := rawmem.Alloc[T](n)
	if err != nil {
		return err
	}
	if err := v.relocate(&block, 0, 0, v.size); err != nil {
		block.Release()
		return err
	}
	v.hooks.destroyRange(v.data.Slice(0, v.size))
	v.data.Swap(&block)
	block.Release()
	return nil
}

// Resize sets the length to n, destroying the elements beyond n when
// shrinking or default-constructing the delta when growing. Equal length is a
// no-op. If a constructor fails while growing, the partially constructed
// delta is destroyed and the length stays unchanged; capacity gained by the
// preceding reserve persists.
func (v *Vector[T]) Resize(n int) error {
	switch {
	case n == v.size:
		return nil
	case n < v.size:
		v.hooks.destroyRange(v.data.Slice(n, v.size))
		v.size = n
		return nil
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	for i := v.size; i < n; i++ {
		val, err := v.hooks.makeDefault()
		if err != nil {
			v.hooks.destroyRange(v.data.Slice(v.size, i))
			return fmt.Errorf("vec: constructing element %d: %w", i, err)
		}
		*v.data.At(i) = val
	}
	v.size = n
	return nil
}

// EmplaceBack constructs a new element in place at the end and returns its
// address. The append either fully succeeds or leaves the vector exactly as
// it was, subject to the move-only caveat on Reserve.
//
// On the growth path the new element is constructed into its slot in the new
// block before any existing element is relocated: a failing constructor
// disturbs nothing, and a failing relocation tears down only the new block.
func (v *Vector[T]) EmplaceBack(ctor func() (T, error)) (*T, error) {
	if v.size < v.data.Cap() {
		val, err := ctor()
		if err != nil {
			return nil, err
		}
		slot := v.data.At(v.size)
		*slot = val
		v.size++
		return slot, nil
	}
	block, err := rawmem.Alloc[T](grownCap(v.size))
	if err != nil {
		return nil, err
	}
	val, err := ctor()
	if err != nil {
		block.Release()
		return nil, err
	}
	*block.At(v.size) = val
	if err := v.relocate(&block, 0, 0, v.size); err != nil {
		v.hooks.destroyAt(block.At(v.size))
		block.Release()
		return nil, err
	}
	v.hooks.destroyRange(v.data.Slice(0, v.size))
	v.data.Swap(&block)
	block.Release()
	slot := v.data.At(v.size)
	v.size++
	return slot, nil
}

// Push appends x, taking ownership of it.
func (v *Vector[T]) Push(x T) error {
	_, err := v.EmplaceBack(func() (T, error) { return x, nil })
	return err
}

// PushClone appends a copy of *x made with the clone operation.
func (v *Vector[T]) PushClone(x *T) error {
	_, err := v.EmplaceBack(func() (T, error) { return v.hooks.cloneFrom(x) })
	return err
}

// PopBack destroys the last live element. Calling it on an empty vector
// violates the contract and panics on the slot access.
func (v *Vector[T]) PopBack() {
	v.hooks.destroyAt(v.data.At(v.size - 1))
	v.size--
}

// At returns the address of element i. The address is invalidated by any
// operation that reallocates or shifts elements. i must be in [0, Len()).
func (v *Vector[T]) At(i int) *T {
	if i >= v.size {
		panic(fmt.Sprintf("vec: index %d out of range [0, %d)", i, v.size))
	}
	return v.data.At(i)
}

// Get returns a shallow copy of element i.
func (v *Vector[T]) Get(i int) T {
	return *v.At(i)
}

// Set overwrites element i by assignment. It does not run lifecycle hooks on
// either value.
func (v *Vector[T]) Set(i int, x T) {
	*v.At(i) = x
}

// Values ranges over the live elements in index order, by value.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.data.At(i)) {
				return
			}
		}
	}
}

// All ranges over index and address of each live element. The addresses are
// only good until the next reallocating or shifting operation.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data.At(i)) {
				return
			}
		}
	}
}

// relocate transfers source elements [from, to) into dst starting at slot
// dstAt, per the move-or-clone policy. On failure it destroys exactly the
// elements it constructed into dst and returns the error.
func (v *Vector[T]) relocate(dst *rawmem.Block[T], dstAt, from, to int) error {
	for i := from; i < to; i++ {
		val, err := v.hooks.transfer(v.data.At(i))
		if err != nil {
			v.hooks.destroyRange(dst.Slice(dstAt, dstAt+i-from))
			return fmt.Errorf("vec: relocating element %d: %w", i, err)
		}
		*dst.At(dstAt + i - from) = val
	}
	return nil
}

// grownCap returns the amortized-doubling capacity for an append that no
// longer fits: max(1, 2*size).
func grownCap(size int) int {
	if size == 0 {
		return 1
	}
	return 2 * size
}
