package booking

import "sync"

// apartmentLocks serializes confirmations per apartment so that
// validate-then-commit cannot interleave for overlapping dates. Different
// apartments confirm fully in parallel.
type apartmentLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newApartmentLocks() *apartmentLocks {
	return &apartmentLocks{locks: make(map[string]*sync.Mutex)}
}

// get returns the lock for an apartment, creating one on first use. Locks are
// never evicted; the set of apartments on a single-owner platform is small.
func (l *apartmentLocks) get(apartmentID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, exists := l.locks[apartmentID]
	if !exists {
		lock = &sync.Mutex{}
		l.locks[apartmentID] = lock
	}
	return lock
}
