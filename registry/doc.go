// Package registry tracks the live shared values of a host system.
//
// A host that hands out many sharedarray handles needs one place that
// knows what is still alive, can enumerate it, and can release all of
// it on shutdown. The Registry maps small integer handles to tracked
// resources:
//
//	reg := registry.New()
//
//	a := sharedarray.New[int](8)
//	h, err := reg.Track(kindIntArray, &a)
//
//	// later
//	reg.Drop(h)   // untrack and release
//
//	// shutdown
//	reg.Close()   // release everything still tracked
//
// Handles of dropped resources are recycled through a free list, so a
// long-lived host does not grow its table unboundedly.
//
// # Kinds
//
// Each resource is tracked under a caller-chosen kind, and GetKind
// refuses to hand back a resource under the wrong kind:
//
//	res, ok := reg.GetKind(h, kindIntArray)  // ok
//	res, ok = reg.GetKind(h, kindBoolArray)  // !ok
//
// # Observers
//
// Subscribe to see track/drop events, for accounting or debugging. The
// LoggingObserver forwards them to a zap logger.
//
// Unlike the array core, the registry is safe for concurrent use.
package registry
