package cl

import "sync/atomic"

// handle carries the release-exactly-once discipline shared by every owned
// wrapper. The zero value is a live, owned handle.
type handle struct {
	released atomic.Bool
}

// guard returns ErrReleased once the owning wrapper has been released. Every
// operation that forwards the native handle calls it first, so a stale
// wrapper can never reach the driver.
func (h *handle) guard() error {
	if h.released.Load() {
		return ErrReleased
	}
	return nil
}

// release runs fn exactly once. The winner of the flag swap performs the
// native call; every later caller gets ErrReleased without touching the
// driver, which turns a double release into an error instead of a crash.
func (h *handle) release(op, class string, fn func() Status) error {
	if fn == nil {
		return ErrDriverNotLoaded
	}
	if h.released.Swap(true) {
		return ErrReleased
	}
	observeRelease(class)
	if status := fn(); status != Success {
		return clError(op, status)
	}
	return nil
}

// Lifecycle observation hooks. The binding keeps no handle state of its own;
// these only feed externally owned counters (see internal/metrics).
var (
	onAcquire atomic.Pointer[func(class string)]
	onRelease atomic.Pointer[func(class string)]
)

// SetLifecycleObservers installs functions invoked on every successful
// acquisition and on every release of an owned wrapper, keyed by object class
// ("context", "queue", "mem", ...). Pass nil to uninstall. Observers must be
// fast and must not call back into the binding.
func SetLifecycleObservers(acquire, release func(class string)) {
	if acquire == nil {
		onAcquire.Store(nil)
	} else {
		onAcquire.Store(&acquire)
	}
	if release == nil {
		onRelease.Store(nil)
	} else {
		onRelease.Store(&release)
	}
}

func observeAcquire(class string) {
	if fn := onAcquire.Load(); fn != nil {
		(*fn)(class)
	}
}

func observeRelease(class string) {
	if fn := onRelease.Load(); fn != nil {
		(*fn)(class)
	}
}
