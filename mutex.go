// Package spinmutex provides a spin lock that owns the value it protects.
//
// A Mutex[T] holds a value of type T behind an atomic flag. Lock busy-waits
// until the flag is won and returns a Guard, the only handle through which
// the value can be read or written. Dropping the Guard (calling Unlock,
// normally via defer) releases the flag. Because the flag serializes every
// access, a single *Mutex may be shared freely among goroutines.
//
// The lock is intended for short critical sections where an OS-level
// block/wake would cost more than a few busy-wait iterations. It is not
// re-entrant: a goroutine that locks a Mutex it already holds spins forever.
package spinmutex

// Mutex owns a value of type T and serializes all access to it through a
// spin lock. At most one live Guard exists per Mutex at any instant; the
// value itself is read and written without further synchronization, which
// is safe only because the flag already serialized the access.
//
// A Mutex must not be copied after first use.
type Mutex[T any] struct {
	lock  SpinLock
	value T
}

// New returns an unlocked Mutex owning value.
func New[T any](value T) *Mutex[T] {
	return &Mutex[T]{value: value}
}

// Lock busy-waits until the calling goroutine holds the mutex and returns
// the Guard granting exclusive access to the value. The caller must release
// it, conventionally with defer:
//
//	g := m.Lock()
//	defer g.Unlock()
//
// Lock cannot fail and cannot be interrupted. Acquisitions are mutually
// exclusive but unordered: the goroutine that called Lock first is not
// guaranteed to win first.
func (m *Mutex[T]) Lock() *Guard[T] {
	m.lock.Lock()
	return &Guard[T]{m: m}
}

// TryLock attempts a single acquisition without spinning. On success it
// returns the Guard and true; otherwise nil and false.
func (m *Mutex[T]) TryLock() (*Guard[T], bool) {
	if !m.lock.TryLock() {
		return nil, false
	}
	return &Guard[T]{m: m}, true
}

// With runs fn with exclusive access to the value. The lock is released
// when fn returns, on every exit path including panic.
func (m *Mutex[T]) With(fn func(value *T)) {
	g := m.Lock()
	defer g.Unlock()
	fn(&m.value)
}
