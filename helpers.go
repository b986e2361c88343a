package sharedarray

import (
	"golang.org/x/exp/constraints"

	"github.com/solvekit/sharedarray/errors"
)

// Equal reports whether two bound arrays hold the same elements in the
// same order. Aliased handles are trivially equal.
func Equal[T comparable](a, b Array[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.o == b.o {
		return true
	}
	for i := 0; i < a.o.n; i++ {
		if a.o.buf[i] != b.o.buf[i] {
			return false
		}
	}
	return true
}

// Fill sets every slot of a bound array to v. The write is visible
// through every handle sharing the storage.
func Fill[T any](a Array[T], v T) {
	if debugChecks && a.o == nil {
		panic(errors.NotInitialized("shared array"))
	}
	for i := range a.o.buf {
		a.o.buf[i] = v
	}
}

// Min returns the smallest element of a non-empty bound array.
func Min[T constraints.Ordered](a Array[T]) T {
	if debugChecks && a.Len() == 0 {
		panic(errors.InvalidInput(errors.PhaseAccess, "min of empty array"))
	}
	m := a.o.buf[0]
	for _, v := range a.o.buf[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest element of a non-empty bound array.
func Max[T constraints.Ordered](a Array[T]) T {
	if debugChecks && a.Len() == 0 {
		panic(errors.InvalidInput(errors.PhaseAccess, "max of empty array"))
	}
	m := a.o.buf[0]
	for _, v := range a.o.buf[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
