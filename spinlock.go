package spinmutex

import (
	"runtime"
	"sync"
	"sync/atomic"
)

const maxBackoff = 16

var _ sync.Locker = (*SpinLock)(nil)

// SpinLock is the raw lock flag: 0 means unlocked, 1 means locked.
// The zero value is an unlocked SpinLock.
// A SpinLock must not be copied after first use.
type SpinLock struct {
	noCopy noCopy
	state  uint32
}

// Lock acquires the flag, busy-waiting until the compare-and-swap
// succeeds. Waiters back off exponentially between attempts, yielding
// the processor with runtime.Gosched instead of parking, so the
// goroutine stays runnable the whole time. There is no timeout and no
// fairness: any spinning goroutine may win a given release.
//
// Locking a SpinLock already held by the calling goroutine spins
// forever.
func (sl *SpinLock) Lock() {
	backoff := 1
	for !atomic.CompareAndSwapUint32(&sl.state, 0, 1) {
		for i := 0; i < backoff; i++ {
			runtime.Gosched()
		}
		if backoff < maxBackoff {
			backoff <<= 1
		}
	}
}

// TryLock acquires the flag without spinning, reporting whether it
// succeeded.
func (sl *SpinLock) TryLock() bool {
	return atomic.CompareAndSwapUint32(&sl.state, 0, 1)
}

// Unlock releases the flag. A locked SpinLock is not associated with a
// particular goroutine: one goroutine may lock it and another unlock it.
func (sl *SpinLock) Unlock() {
	atomic.StoreUint32(&sl.state, 0)
}

// noCopy makes `go vet -copylocks` flag copies of types that embed it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
