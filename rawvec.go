package rawvec

import (
	"github.com/rawvec-go/rawvec/pkg/rawmem"
	"github.com/rawvec-go/rawvec/pkg/vec"
)

// --- Types ---

// Vector is a public alias for the dynamic array.
type Vector[T any] = vec.Vector[T]

// Block is a public alias for the raw storage block.
type Block[T any] = rawmem.Block[T]

// Option is a public alias for the element lifecycle option.
type Option[T any] = vec.Option[T]

// --- Errors ---

// ErrCapacity reports a slot count that cannot be allocated.
var ErrCapacity = rawmem.ErrCapacity

// --- Configuration ---

// WithConstructor sets the default constructor used by NewLen and Resize.
func WithConstructor[T any](fn func() (T, error)) Option[T] {
	return vec.WithConstructor[T](fn)
}

// WithClone sets the operation that copies one element.
func WithClone[T any](fn func(*T) (T, error)) Option[T] {
	return vec.WithClone[T](fn)
}

// WithMove sets the operation that transfers an element out of a slot.
func WithMove[T any](fn func(*T) (T, error)) Option[T] {
	return vec.WithMove[T](fn)
}

// WithDestructor sets the operation run on an element before its slot dies.
func WithDestructor[T any](fn func(*T)) Option[T] {
	return vec.WithDestructor[T](fn)
}

// --- Factories ---

// New returns an empty vector with capacity 0.
func New[T any](opts ...Option[T]) *Vector[T] {
	return vec.New[T](opts...)
}

// NewLen returns a vector of length and capacity n with default-constructed
// elements.
func NewLen[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	return vec.NewLen[T](n, opts...)
}

// AllocBlock returns raw, uninitialized storage for n element slots. Most
// callers want New instead; AllocBlock is for code building its own container
// on the storage layer.
func AllocBlock[T any](n int) (Block[T], error) {
	return rawmem.Alloc[T](n)
}
