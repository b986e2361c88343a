package sharedarray

// Allocator reserves and releases backing buffers for array storage.
//
// Alloc returns a slice of length n with every slot set to the zero value
// of T. Allocation failure is fatal: it surfaces as a runtime panic and is
// never caught or retried at this layer. Free returns a buffer obtained
// from Alloc; implementations may pool or simply drop it.
type Allocator[T any] interface {
	Alloc(n int) []T
	Free(buf []T)
}

// SliceAllocator is the default make-backed allocator.
type SliceAllocator[T any] struct{}

func (SliceAllocator[T]) Alloc(n int) []T { return make([]T, n) }

func (SliceAllocator[T]) Free(buf []T) {}
