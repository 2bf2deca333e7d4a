package session

import "sync"

// Store is a process-wide mapping from session id to session. Lookups
// of absent ids return nil, never an error; Create is last-write-wins
// (callers mint fresh UUIDs, collisions are not hardened against).
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers the session under its id and returns it.
func (s *Store) Create(sess *Session) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns the session for id, or nil when absent.
func (s *Store) Get(id string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// Delete removes the session for id; absent ids are a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Clear removes every session.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string]*Session)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Registry owns the per-mode stores and routes id lookups across them,
// jury first, matching the channel dispatch order.
type Registry struct {
	Jury        *Store
	Environment *Store
}

// NewRegistry creates a registry with empty per-mode stores.
func NewRegistry() *Registry {
	return &Registry{
		Jury:        NewStore(),
		Environment: NewStore(),
	}
}

// Lookup finds the session for id in either store.
func (r *Registry) Lookup(id string) (*Session, bool) {
	if sess := r.Jury.Get(id); sess != nil {
		return sess, true
	}
	if sess := r.Environment.Get(id); sess != nil {
		return sess, true
	}
	return nil, false
}

// Reset deletes id from both stores.
func (r *Registry) Reset(id string) {
	r.Jury.Delete(id)
	r.Environment.Delete(id)
}

// ResetAll clears both stores.
func (r *Registry) ResetAll() {
	r.Jury.Clear()
	r.Environment.Clear()
}
