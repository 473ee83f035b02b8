package cl

import "sync"

// The driver may invoke a user callback any time before the object it is
// attached to releases. callbackRegistry keeps the Go closure (and whatever
// it captures) reachable for exactly that window: pinned at registration,
// unpinned either when the owning wrapper releases or, for one-shot
// callbacks, right after the driver delivers it. The registry id doubles as
// the user_data pointer crossing the FFI boundary, so no Go pointer ever
// leaves the Go heap.
type callbackRegistry struct {
	mu   sync.Mutex
	next uintptr
	m    map[uintptr]any
}

var callbacks = callbackRegistry{m: make(map[uintptr]any)}

func (r *callbackRegistry) pin(fn any) uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	r.m[r.next] = fn
	return r.next
}

func (r *callbackRegistry) get(id uintptr) any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.m[id]
}

// take removes and returns a one-shot callback.
func (r *callbackRegistry) take(id uintptr) any {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn := r.m[id]
	delete(r.m, id)
	return fn
}

func (r *callbackRegistry) unpin(id uintptr) {
	if id == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.m, id)
}

// ContextNotify receives asynchronous error reports for a context. Private
// driver data arrives as an opaque byte slice.
type ContextNotify func(errInfo string, privateInfo []byte)

// BuildNotify signals completion of an asynchronous program build, compile or
// link.
type BuildNotify func(program *Program)

// MemDestructorNotify fires when a memory object's resources are about to be
// freed by the driver.
type MemDestructorNotify func()

// EventNotify receives event execution status transitions.
type EventNotify func(status int32)

// The dispatch layer (cgo trampolines and test fakes alike) delivers
// callbacks through these helpers so retention semantics live in one place.

func invokeContextNotify(id uintptr, errInfo string, privateInfo []byte) {
	if fn, ok := callbacks.get(id).(ContextNotify); ok {
		fn(errInfo, privateInfo)
	}
}

func invokeBuildNotify(id uintptr, program ProgramID) {
	if fn, ok := callbacks.take(id).(func(ProgramID)); ok {
		fn(program)
	}
}

func invokeMemDestructor(id uintptr) {
	if fn, ok := callbacks.take(id).(MemDestructorNotify); ok {
		fn()
	}
}

func invokeEventNotify(id uintptr, status int32) {
	if fn, ok := callbacks.take(id).(EventNotify); ok {
		fn(status)
	}
}
