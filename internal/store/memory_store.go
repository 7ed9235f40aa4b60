package store

import (
	"sync"

	"boxscore-service/internal/domain"
)

// MemoryStore keeps a thread-safe copy of the game state in memory.
// Useful for tests and for running without a data directory.
type MemoryStore struct {
	mu    sync.RWMutex
	state domain.GameState
	set   bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the stored state, if any.
func (s *MemoryStore) Load() (domain.GameState, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.set {
		return domain.GameState{}, false, nil
	}
	return s.state.Clone(), true, nil
}

// Save replaces the stored state with a copy of the given one.
func (s *MemoryStore) Save(state domain.GameState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state.Clone()
	s.set = true
	return nil
}

// Clear removes the stored state.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = domain.GameState{}
	s.set = false
	return nil
}
