// Package rawvec is the public façade for the rawvec container library.
//
// It re-exports the two layers that make up the library:
//
//   - pkg/rawmem: raw slot storage. A Block owns memory for a fixed number of
//     element slots but never constructs or destroys values in them; object
//     lifetime is entirely the caller's business.
//   - pkg/vec: the dynamic array. A Vector owns one Block plus a live-element
//     count and implements value semantics, amortized-doubling append, and
//     positional insert/erase with explicit failure-safety contracts.
//
// Philosophy:
//
// rawvec exists to make the mechanics under a dynamic array visible and
// testable: allocation separated from construction, capacity growth, the
// move-vs-clone relocation policy, and multi-step mutations that roll back
// cleanly when an element operation fails. Go has no exceptions, so fallible
// element operations are expressed as lifecycle hooks returning error, and
// "strong guarantee" means: a non-nil error implies the vector's length,
// capacity, and element values are exactly as before the call.
//
// Usage:
//
//	v := rawvec.New[int]()
//	for _, x := range []int{10, 20, 30} {
//		if err := v.Push(x); err != nil {
//			log.Fatal(err)
//		}
//	}
//	v.Insert(1, 99) // [10 99 20 30]
//
//	// Types with fallible copies describe them with options:
//	h := rawvec.New[Handle](
//		rawvec.WithClone[Handle](dupHandle),
//		rawvec.WithDestructor[Handle](closeHandle),
//	)
//	defer h.Destroy()
//
// Vectors are not safe for concurrent use; callers must serialize access.
package rawvec
