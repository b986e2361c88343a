// Package sharedarray provides reference-counted, structurally-shared
// arrays: fixed-size element buffers that many lightweight handles alias
// cheaply, with an explicit deep-copy escape hatch for callers that need
// a private, independently mutable copy.
//
// It is a building block for host systems that manage many shared values
// and want copy-by-reference semantics by default, paying for duplication
// only on request.
//
// # Handles and Storage
//
// An Array is a small handle over exactly one backing storage. Handles
// start unbound (the zero value) and bind exactly once:
//
//	a := sharedarray.New[int](3) // bound, share count 1
//
//	var b sharedarray.Array[int]
//	b.Init(3)                    // same, via two-step construction
//
// Sharing is explicit and O(1). All handles on one storage see each
// other's writes immediately:
//
//	c := a.Share()   // share count 2, same elements
//	a.Set(0, 42)
//	c.Get(0)         // 42
//
// # Privatization
//
// The handle never copies on write. A caller that needs to diverge asks
// for it:
//
//	d := a.Clone()   // independent deep copy, value-equal at first
//	a.Privatize()    // rebind a to a private copy iff currently shared
//
// # Lifetime
//
// Release detaches a handle; the last detach destroys the storage:
// every element implementing Dropper has Drop called exactly once, then
// the buffer goes back to its Allocator.
//
//	a.Release()
//	c.Release()      // storage destroyed here
//
// # Thread Safety
//
// The share count is plain and non-atomic by design. Handles over one
// storage belong to a single goroutine, or access must be externally
// synchronized. The registry package is the concurrency-aware host
// layer for tracking many live arrays.
//
// # Preconditions
//
// Out-of-range indexing, operating on an unbound handle and binding a
// handle twice are programmer errors, not recoverable failures: they
// fail fast with a panic. Builds tagged arraydebug panic with a
// structured *errors.Error naming the violation; untagged builds rely
// on Go's own bounds and nil checks.
package sharedarray
