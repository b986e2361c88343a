package sharedarray

import (
	"iter"

	"github.com/solvekit/sharedarray/errors"
)

// Array is a lightweight handle to reference-counted array storage.
//
// The zero value is an unbound handle: the only legal operations on it
// are Init, Share (which yields another unbound handle), Release (a
// no-op) and Bound. Every other operation requires a bound handle and
// fails fast otherwise.
//
// Handles alias by default: Share attaches a new handle to the same
// storage, and a write through any handle is immediately visible through
// every other handle on that storage. Callers that need an independent
// copy ask for one explicitly with Clone or Privatize; the handle never
// clones on its own.
type Array[T any] struct {
	o *storage[T]
}

// New returns a bound handle over fresh storage for n elements.
func New[T any](n int) Array[T] {
	return NewIn[T](SliceAllocator[T]{}, n)
}

// NewIn is New with an explicit allocator.
func NewIn[T any](alloc Allocator[T], n int) Array[T] {
	return Array[T]{o: newStorage(alloc, n)}
}

// Init binds an unbound handle to fresh storage for n elements. It may
// be called at most once; calling it on a bound handle is a programmer
// error and panics.
func (a *Array[T]) Init(n int) {
	a.InitIn(SliceAllocator[T]{}, n)
}

// InitIn is Init with an explicit allocator.
func (a *Array[T]) InitIn(alloc Allocator[T], n int) {
	if a.o != nil {
		panic(errors.AlreadyInitialized("shared array"))
	}
	a.o = newStorage(alloc, n)
}

// Bound reports whether the handle is attached to storage.
func (a Array[T]) Bound() bool {
	return a.o != nil
}

// Shared reports whether the storage has more than one attached handle.
func (a Array[T]) Shared() bool {
	if debugChecks && a.o == nil {
		panic(errors.NotInitialized("shared array"))
	}
	return a.o.uses > 1
}

// Share returns a new handle attached to the same storage. O(1), no
// element copying; writes through either handle are visible through the
// other. Sharing an unbound handle yields an unbound handle.
func (a Array[T]) Share() Array[T] {
	if a.o == nil {
		return Array[T]{}
	}
	return Array[T]{o: a.o.attach()}
}

// Len returns the element count fixed at binding time.
func (a Array[T]) Len() int {
	if debugChecks && a.o == nil {
		panic(errors.NotInitialized("shared array"))
	}
	return a.o.n
}

// Get returns the element at position i. Precondition: the handle is
// bound and 0 <= i < Len().
func (a Array[T]) Get(i int) T {
	if debugChecks {
		a.check(i)
	}
	return a.o.buf[i]
}

// Set stores v at position i. Same preconditions as Get.
func (a Array[T]) Set(i int, v T) {
	if debugChecks {
		a.check(i)
	}
	a.o.buf[i] = v
}

// Ptr returns a pointer to the slot at position i for in-place
// mutation. The pointer stays valid until the storage is destroyed.
func (a Array[T]) Ptr(i int) *T {
	if debugChecks {
		a.check(i)
	}
	return &a.o.buf[i]
}

// All iterates over index/element pairs of a bound handle.
func (a Array[T]) All() iter.Seq2[int, T] {
	if debugChecks && a.o == nil {
		panic(errors.NotInitialized("shared array"))
	}
	return func(yield func(int, T) bool) {
		for i := 0; i < a.o.n; i++ {
			if !yield(i, a.o.buf[i]) {
				return
			}
		}
	}
}

// Clone returns a bound handle over a deep copy of the storage. The
// copy is value-equal and identity-distinct: subsequent writes through
// either side do not affect the other.
func (a Array[T]) Clone() Array[T] {
	if debugChecks && a.o == nil {
		panic(errors.NotInitialized("shared array"))
	}
	return Array[T]{o: a.o.copyOf()}
}

// Privatize makes this handle the sole owner of its elements: if the
// storage is shared, the handle detaches and rebinds to a deep copy.
// A handle that already owns its storage alone is left untouched. This
// is the explicit host-driven divergence point; it is never triggered
// implicitly by a write.
func (a *Array[T]) Privatize() {
	if debugChecks && a.o == nil {
		panic(errors.NotInitialized("shared array"))
	}
	if a.o.uses == 1 {
		return
	}
	o := a.o.copyOf()
	a.o.detach()
	a.o = o
}

// Release detaches the handle from its storage; the last handle to
// detach destroys the storage (element Drop hooks, then buffer release).
// The handle returns to the unbound state. Releasing an unbound handle
// is a no-op.
func (a *Array[T]) Release() {
	if a.o == nil {
		return
	}
	a.o.detach()
	a.o = nil
}

func (a Array[T]) check(i int) {
	if a.o == nil {
		panic(errors.NotInitialized("shared array"))
	}
	if i < 0 || i >= a.o.n {
		panic(errors.OutOfBounds(errors.PhaseAccess, i, a.o.n))
	}
}
