package session

import (
	"sync"

	"kinobot/internal/domain"
)

// Store holds each user's current conversation state.
// State is volatile: losing it on restart only resets users
// to the default query-awaiting behavior.
type Store interface {
	Get(userID int64) domain.State
	Set(userID int64, state domain.State)
}

type memoryStore struct {
	mu     sync.RWMutex
	states map[int64]domain.State
}

// NewMemoryStore creates an in-memory state store
func NewMemoryStore() Store {
	return &memoryStore{
		states: make(map[int64]domain.State),
	}
}

// Get returns the user's state; a missing entry means AwaitingQuery
func (s *memoryStore) Get(userID int64) domain.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if state, ok := s.states[userID]; ok {
		return state
	}
	return domain.StateAwaitingQuery
}

// Set updates the user's state
func (s *memoryStore) Set(userID int64, state domain.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[userID] = state
}
