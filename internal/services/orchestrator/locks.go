package orchestrator

import "sync"

// userLocks is the in-process per-user guard. The bootstrap path has no
// podcast row yet, so the database status column cannot protect it; this
// does.
type userLocks struct {
	mu   sync.Mutex
	held map[string]bool
}

func newUserLocks() *userLocks {
	return &userLocks{held: make(map[string]bool)}
}

// TryAcquire takes the lock for userID if free. It never blocks; a second
// concurrent request is rejected, not queued.
func (l *userLocks) TryAcquire(userID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[userID] {
		return false
	}
	l.held[userID] = true
	return true
}

func (l *userLocks) Release(userID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, userID)
}
