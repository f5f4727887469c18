package typekit

import "sync"

// Store is an in-memory key/value container. Each Store is created
// explicitly and passed to whoever needs it; there is no shared default.
type Store struct {
	mu    sync.RWMutex
	state map[string]any
}

// NewStore returns a Store over a shallow copy of initial.
func NewStore(initial map[string]any) *Store {
	state := make(map[string]any, len(initial))
	for k, v := range initial {
		state[k] = v
	}

	return &Store{state: state}
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.state[key]

	return v, ok
}

// Update stores value under key, replacing any previous value.
func (s *Store) Update(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state[key] = value
}

// Modify replaces the value under key with fn applied to the current value
// while holding the lock.
func (s *Store) Modify(key string, fn func(current any) any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state[key] = fn(s.state[key])
}

// Snapshot returns a shallow copy of the current state.
func (s *Store) Snapshot() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]any, len(s.state))
	for k, v := range s.state {
		out[k] = v
	}

	return out
}
