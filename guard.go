package spinmutex

// Guard is a scoped token of exclusive access to a Mutex's value. A live
// Guard is proof that its Mutex is locked and that no other access to the
// value exists anywhere in the program. Guards are created only by Lock and
// TryLock; the holder may hand one to another goroutine, since exclusivity
// comes from the flag, not from goroutine identity.
type Guard[T any] struct {
	m *Mutex[T]
}

// Get returns a copy of the protected value.
func (g *Guard[T]) Get() T {
	return g.m.value
}

// Set replaces the protected value.
func (g *Guard[T]) Set(value T) {
	g.m.value = value
}

// Ptr returns a pointer to the protected value for in-place mutation.
// The pointer must not be used after Unlock.
func (g *Guard[T]) Ptr() *T {
	return &g.m.value
}

// Unlock releases the mutex. The Guard is disarmed first, so release runs
// at most once per acquisition: a second Unlock on the same Guard panics
// instead of corrupting the flag.
func (g *Guard[T]) Unlock() {
	if g.m == nil {
		panic("spinmutex: Unlock of released Guard")
	}
	m := g.m
	g.m = nil
	m.lock.Unlock()
}
