package sharedarray

import (
	"go.uber.org/zap"

	"github.com/solvekit/sharedarray/errors"
)

// Dropper is optionally implemented by elements that own external
// resources. Drop runs exactly once per element when the last handle
// detaches from the storage holding it.
type Dropper interface {
	Drop()
}

// storage owns the backing buffer for a shared array: exactly n slots of T
// plus the share count that drives destruction. The count is plain and
// non-atomic; handles sharing a storage must live on one goroutine or be
// externally synchronized.
type storage[T any] struct {
	buf   []T
	alloc Allocator[T]
	n     int
	uses  int
}

// newStorage allocates storage for n elements with share count 1.
// For n == 0 no buffer is allocated and the allocator is never called.
// Slots start at the zero value of T; the holder fills them in before
// they are read or cloned.
func newStorage[T any](alloc Allocator[T], n int) *storage[T] {
	if debugChecks && n < 0 {
		panic(errors.InvalidInput(errors.PhaseInit, "negative element count"))
	}
	s := &storage[T]{alloc: alloc, n: n, uses: 1}
	if n > 0 {
		s.buf = alloc.Alloc(n)
	}
	Logger().Debug("storage allocated", zap.Int("len", n))
	return s
}

// attach adds one share.
func (s *storage[T]) attach() *storage[T] {
	s.uses++
	return s
}

// detach removes one share; the last detach destroys the storage.
func (s *storage[T]) detach() {
	s.uses--
	if s.uses == 0 {
		s.destroy()
	}
}

// destroy drops every element that owns external resources and returns
// the buffer to the allocator. For n == 0 there is no buffer and no
// Free call. Element order is unspecified.
func (s *storage[T]) destroy() {
	for i := range s.buf {
		if d, ok := any(s.buf[i]).(Dropper); ok {
			d.Drop()
		}
	}
	if s.n > 0 {
		s.alloc.Free(s.buf)
		s.buf = nil
	}
	Logger().Debug("storage destroyed", zap.Int("len", s.n))
}

// copyOf allocates a storage of the same size and copies every slot
// exactly once. Elements exposing CloneValue are deep-copied through it;
// all others copy by assignment. Iteration order over indices is not
// part of the contract.
func (s *storage[T]) copyOf() *storage[T] {
	o := newStorage(s.alloc, s.n)
	for i := 0; i < s.n; i++ {
		if c, ok := any(s.buf[i]).(interface{ CloneValue() T }); ok {
			o.buf[i] = c.CloneValue()
		} else {
			o.buf[i] = s.buf[i]
		}
	}
	Logger().Debug("storage cloned", zap.Int("len", s.n))
	return o
}
