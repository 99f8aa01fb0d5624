package session

import "sync"

// Locker serializes message handling per user id.
// Turns for different users never block one another.
type Locker struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// NewLocker creates an empty keyed lock table
func NewLocker() *Locker {
	return &Locker{
		locks: make(map[int64]*sync.Mutex),
	}
}

// Lock acquires the user's mutex and returns the unlock func
func (l *Locker) Lock(userID int64) func() {
	l.mu.Lock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
