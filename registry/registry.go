package registry

import (
	"sync"

	"go.uber.org/zap"

	"github.com/solvekit/sharedarray/errors"
)

// Handle is an opaque reference to a tracked resource.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Resource is anything the registry can release on the host's behalf.
// A *sharedarray.Array satisfies it.
type Resource interface {
	Release()
}

// Event types for lifecycle notifications.
type EventType uint8

const (
	EventTracked EventType = iota
	EventDropped
)

// Event represents a registry lifecycle event.
type Event struct {
	Resource Resource
	Handle   Handle
	Kind     uint32
	Type     EventType
}

// Observer receives notifications about registry lifecycle events.
type Observer interface {
	OnRegistryEvent(Event)
}

// Registry tracks the live shared values of a host: each tracked
// resource gets a dense integer handle, handles of dropped resources
// are recycled through a free list, and Close releases everything that
// is still alive. The registry is the host boundary, so unlike the
// single-goroutine array core it is safe for concurrent use.
type Registry struct {
	entries   []entry
	freeList  []Handle
	observers []Observer
	mu        sync.RWMutex
	obsMu     sync.RWMutex
	closed    bool
}

type entry struct {
	res   Resource
	kind  uint32
	valid bool
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		entries:  make([]entry, 0, 64),
		freeList: make([]Handle, 0, 16),
	}
}

// Track stores a resource under a caller-chosen kind and returns its
// handle. The registry takes over releasing the resource: it is
// released by Drop or, if still tracked, by Close.
func (r *Registry) Track(kind uint32, res Resource) (Handle, error) {
	r.mu.Lock()

	if r.closed {
		r.mu.Unlock()
		return 0, errors.Closed("registry")
	}

	e := entry{res: res, kind: kind, valid: true}

	var handle Handle
	if len(r.freeList) > 0 {
		handle = r.freeList[len(r.freeList)-1]
		r.freeList = r.freeList[:len(r.freeList)-1]
		r.entries[handle-1] = e
	} else {
		r.entries = append(r.entries, e)
		handle = Handle(len(r.entries))
	}
	r.mu.Unlock()

	Logger().Debug("resource tracked",
		zap.Uint32("handle", uint32(handle)),
		zap.Uint32("kind", kind))

	r.notify(Event{
		Type:     EventTracked,
		Handle:   handle,
		Kind:     kind,
		Resource: res,
	})

	return handle, nil
}

// Get retrieves a tracked resource by handle.
func (r *Registry) Get(handle Handle) (Resource, bool) {
	if handle == 0 {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := handle - 1
	if int(idx) >= len(r.entries) {
		return nil, false
	}

	e := r.entries[idx]
	if !e.valid {
		return nil, false
	}
	return e.res, true
}

// GetKind retrieves a resource only if it was tracked under the
// expected kind.
func (r *Registry) GetKind(handle Handle, kind uint32) (Resource, bool) {
	actual, ok := r.Kind(handle)
	if !ok || actual != kind {
		return nil, false
	}
	return r.Get(handle)
}

// Kind returns the kind a handle was tracked under.
func (r *Registry) Kind(handle Handle) (uint32, bool) {
	if handle == 0 {
		return 0, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := handle - 1
	if int(idx) >= len(r.entries) {
		return 0, false
	}

	e := r.entries[idx]
	if !e.valid {
		return 0, false
	}
	return e.kind, true
}

// Drop untracks a resource, releases it and recycles its handle.
// Returns false if the handle is invalid or already dropped.
func (r *Registry) Drop(handle Handle) bool {
	if handle == 0 {
		return false
	}

	r.mu.Lock()

	idx := handle - 1
	if int(idx) >= len(r.entries) {
		r.mu.Unlock()
		return false
	}

	e := &r.entries[idx]
	if !e.valid {
		r.mu.Unlock()
		return false
	}

	res, kind := e.res, e.kind
	e.valid = false
	e.res = nil
	r.freeList = append(r.freeList, handle)
	r.mu.Unlock()

	res.Release()

	Logger().Debug("resource dropped",
		zap.Uint32("handle", uint32(handle)),
		zap.Uint32("kind", kind))

	r.notify(Event{
		Type:     EventDropped,
		Handle:   handle,
		Kind:     kind,
		Resource: res,
	})

	return true
}

// Len returns the number of tracked resources.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, e := range r.entries {
		if e.valid {
			count++
		}
	}
	return count
}

// Each iterates over all tracked resources.
func (r *Registry) Each(fn func(Handle, uint32, Resource) bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i, e := range r.entries {
		if e.valid {
			if !fn(Handle(i+1), e.kind, e.res) {
				break
			}
		}
	}
}

// Subscribe adds an observer for lifecycle events.
func (r *Registry) Subscribe(o Observer) {
	r.obsMu.Lock()
	defer r.obsMu.Unlock()
	r.observers = append(r.observers, o)
}

// Unsubscribe removes an observer.
func (r *Registry) Unsubscribe(o Observer) {
	r.obsMu.Lock()
	defer r.obsMu.Unlock()
	for i, obs := range r.observers {
		if obs == o {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			return
		}
	}
}

// Close releases every resource still tracked and stops accepting new
// ones. Close is idempotent.
func (r *Registry) Close() error {
	r.mu.Lock()

	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true

	var live []Resource
	for i := range r.entries {
		if r.entries[i].valid {
			live = append(live, r.entries[i].res)
			r.entries[i].valid = false
			r.entries[i].res = nil
		}
	}
	r.entries = nil
	r.freeList = nil
	r.mu.Unlock()

	for _, res := range live {
		res.Release()
	}

	Logger().Debug("registry closed", zap.Int("released", len(live)))
	return nil
}

func (r *Registry) notify(e Event) {
	r.obsMu.RLock()
	defer r.obsMu.RUnlock()
	for _, o := range r.observers {
		o.OnRegistryEvent(e)
	}
}

// LoggingObserver forwards lifecycle events to a zap logger at Debug
// level. Useful while developing a host.
type LoggingObserver struct {
	L *zap.Logger
}

func (o LoggingObserver) OnRegistryEvent(e Event) {
	switch e.Type {
	case EventTracked:
		o.L.Debug("tracked", zap.Uint32("handle", uint32(e.Handle)), zap.Uint32("kind", e.Kind))
	case EventDropped:
		o.L.Debug("dropped", zap.Uint32("handle", uint32(e.Handle)), zap.Uint32("kind", e.Kind))
	}
}
