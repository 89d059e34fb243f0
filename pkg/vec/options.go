package vec

// hooks carries the element lifecycle operations of T. Every field is
// optional; the zero hooks describe a plain value type whose construction,
// copy, and transfer are ordinary assignments and cannot fail.
type hooks[T any] struct {
	construct func() (T, error)
	clone     func(*T) (T, error)
	move      func(*T) (T, error)
	destroy   func(*T)
}

// Option defines a functional option configuring the element lifecycle of a
// Vector.
type Option[T any] func(*hooks[T])

// WithConstructor sets the default constructor used by NewLen and by the
// growing half of Resize. Without it, default construction yields the zero
// value and cannot fail.
func WithConstructor[T any](fn func() (T, error)) Option[T] {
	return func(h *hooks[T]) {
		h.construct = fn
	}
}

// WithClone sets the operation that copies one element. Without it, copying
// is a plain assignment. Clones must leave the source untouched on failure.
func WithClone[T any](fn func(*T) (T, error)) Option[T] {
	return func(h *hooks[T]) {
		h.clone = fn
	}
}

// WithMove sets the operation that transfers an element out of a slot. fn must
// leave the source in a destructible moved-from state. Without it, a transfer
// is an assignment followed by zeroing the source, which cannot fail.
//
// Declaring a move hook marks transfers as fallible, which flips the
// relocation policy for types that also have a clone hook: see Reserve.
func WithMove[T any](fn func(*T) (T, error)) Option[T] {
	return func(h *hooks[T]) {
		h.move = fn
	}
}

// WithDestructor sets the operation run on an element before its slot dies.
// The slot is zeroed afterwards either way, so the GC can reclaim whatever the
// value referenced.
//
// The hook also runs on moved-from slots when old storage is torn down after
// a relocation. Under the plain move a moved-from value is the zero value;
// under a custom move hook it is whatever that hook left behind. Destructors
// must tolerate both.
func WithDestructor[T any](fn func(*T)) Option[T] {
	return func(h *hooks[T]) {
		h.destroy = fn
	}
}

// makeDefault default-constructs one element.
func (h *hooks[T]) makeDefault() (T, error) {
	if h.construct != nil {
		return h.construct()
	}
	var zero T
	return zero, nil
}

// cloneFrom copies the element at src.
func (h *hooks[T]) cloneFrom(src *T) (T, error) {
	if h.clone != nil {
		return h.clone(src)
	}
	return *src, nil
}

// moveFrom transfers the element out of src, leaving src moved-from.
func (h *hooks[T]) moveFrom(src *T) (T, error) {
	if h.move != nil {
		return h.move(src)
	}
	v := *src
	var zero T
	*src = zero
	return v, nil
}

// relocateByMove reports whether block-to-block relocation uses the move
// operation: true when the plain assignment move applies (it cannot fail) or
// when the type is effectively move-only (a fallible move is all there is).
// Types with both hooks relocate by clone instead, because a move failing
// halfway through a migration corrupts the source irrecoverably while a
// failed clone leaves it intact.
func (h *hooks[T]) relocateByMove() bool {
	return h.move == nil || h.clone == nil
}

// transfer relocates one element per the move-or-clone policy.
func (h *hooks[T]) transfer(src *T) (T, error) {
	if h.relocateByMove() {
		return h.moveFrom(src)
	}
	return h.cloneFrom(src)
}

// moveAssign replaces the live value at dst with the value moved out of src.
// The incoming value is produced first, so a failing move leaves dst
// untouched; only then is the old dst value destroyed and the new one placed.
// Go has no user-defined assignment, so releasing the overwritten value is
// the container's job.
func (h *hooks[T]) moveAssign(dst, src *T) error {
	val, err := h.moveFrom(src)
	if err != nil {
		return err
	}
	h.destroyAt(dst)
	*dst = val
	return nil
}

// cloneAssign replaces the live value at dst with a clone of src, with the
// same ordering guarantee as moveAssign.
func (h *hooks[T]) cloneAssign(dst, src *T) error {
	val, err := h.cloneFrom(src)
	if err != nil {
		return err
	}
	h.destroyAt(dst)
	*dst = val
	return nil
}

// destroyAt ends the life of the element at p. The slot is zeroed so the GC
// can reclaim referenced memory; afterwards the slot counts as uninitialized.
func (h *hooks[T]) destroyAt(p *T) {
	if h.destroy != nil {
		h.destroy(p)
	}
	var zero T
	*p = zero
}

// destroyRange destroys every element in s, front to back.
func (h *hooks[T]) destroyRange(s []T) {
	for i := range s {
		h.destroyAt(&s[i])
	}
}
