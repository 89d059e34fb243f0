package vec

import (
	"fmt"

	"github.com/rawvec-go/rawvec/pkg/rawmem"
)

// Emplace constructs a new element in place at index i, shifting the suffix
// one slot right, and returns the inserted element's address. i == Len()
// appends; otherwise i must be in [0, Len()).
//
// With spare capacity the shift happens in place: the current last element is
// first moved into the next free slot (extending the live range so the shift
// has constructed destinations), the range [i, len-1) is shifted right
// back-to-front by move-assignment, and the new value is moved into slot i.
// A transfer failure during the shift destroys the speculatively extended
// tail and returns the error; elements already shifted are not rolled back,
// so this path guarantees a valid, size-consistent vector but not an
// unchanged one.
//
// With capacity exhausted the vector reallocates: the new element is
// constructed at its final slot in the new block before anything moves, the
// prefix and suffix are relocated around it, and only then is the old block
// destroyed and swapped out. Any failure destroys exactly the new block's
// constructions and leaves the old storage intact (strong guarantee, subject
// to the move-only caveat on Reserve).
func (v *Vector[T]) Emplace(i int, ctor func() (T, error)) (*T, error) {
	if i == v.size {
		return v.EmplaceBack(ctor)
	}
	if i < 0 || i > v.size {
		panic(fmt.Sprintf("vec: insert position %d out of range [0, %d]", i, v.size))
	}
	if v.size < v.data.Cap() {
		return v.emplaceInPlace(i, ctor)
	}
	return v.emplaceGrow(i, ctor)
}

func (v *Vector[T]) emplaceInPlace(i int, ctor func() (T, error)) (*T, error) {
	tmp, err := ctor()
	if err != nil {
		return nil, err
	}
	last, err := v.hooks.moveFrom(v.data.At(v.size - 1))
	if err != nil {
		v.hooks.destroyAt(&tmp)
		return nil, fmt.Errorf("vec: extending live range: %w", err)
	}
	*v.data.At(v.size) = last
	for j := v.size - 1; j > i; j-- {
		if err := v.hooks.moveAssign(v.data.At(j), v.data.At(j-1)); err != nil {
			v.hooks.destroyAt(v.data.At(v.size))
			v.hooks.destroyAt(&tmp)
			return nil, fmt.Errorf("vec: shifting element %d: %w", j-1, err)
		}
	}
	if err := v.hooks.moveAssign(v.data.At(i), &tmp); err != nil {
		v.hooks.destroyAt(v.data.At(v.size))
		v.hooks.destroyAt(&tmp)
		return nil, fmt.Errorf("vec: placing new element: %w", err)
	}
	v.hooks.destroyAt(&tmp) // the temporary is moved-from; end its life
	v.size++
	return v.data.At(i), nil
}

func (v *Vector[T]) emplaceGrow(i int, ctor func() (T, error)) (*T, error) {
	block, err := rawmem.Alloc[T](grownCap(v.size))
	if err != nil {
		return nil, err
	}
	val, err := ctor()
	if err != nil {
		block.Release()
		return nil, err
	}
	*block.At(i) = val
	if err := v.relocate(&block, 0, 0, i); err != nil {
		v.hooks.destroyAt(block.At(i))
		block.Release()
		return nil, err
	}
	if err := v.relocate(&block, i+1, i, v.size); err != nil {
		v.hooks.destroyRange(block.Slice(0, i+1))
		block.Release()
		return nil, err
	}
	v.hooks.destroyRange(v.data.Slice(0, v.size))
	v.data.Swap(&block)
	block.Release()
	v.size++
	return v.data.At(i), nil
}

// Insert inserts x at index i, taking ownership of it. See Emplace for the
// shift and failure semantics.
func (v *Vector[T]) Insert(i int, x T) error {
	_, err := v.Emplace(i, func() (T, error) { return x, nil })
	return err
}

// InsertClone inserts a copy of *x at index i, made with the clone operation.
func (v *Vector[T]) InsertClone(i int, x *T) error {
	_, err := v.Emplace(i, func() (T, error) { return v.hooks.cloneFrom(x) })
	return err
}

// Erase removes the element at index i, shifting the suffix one slot left by
// move-assignment and destroying the vacated last slot. Erasing the last
// element is equivalent to PopBack. i must be in [0, Len()).
//
// A transfer failure during the shift returns the error with the vector valid
// and its length unchanged, but partially shifted; no rollback is attempted.
// This weaker contract is deliberate: upgrading it would force a copy of the
// whole suffix on every erase.
func (v *Vector[T]) Erase(i int) error {
	if i == v.size-1 {
		v.PopBack()
		return nil
	}
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vec: index %d out of range [0, %d)", i, v.size))
	}
	for j := i; j < v.size-1; j++ {
		if err := v.hooks.moveAssign(v.data.At(j), v.data.At(j+1)); err != nil {
			return fmt.Errorf("vec: shifting element %d: %w", j+1, err)
		}
	}
	v.hooks.destroyAt(v.data.At(v.size - 1))
	v.size--
	return nil
}
