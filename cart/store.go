package cart

import "sync"

// Store holds per-session carts. Sessions are anonymous; the map is keyed by
// the portal session id.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Sessions is the process-wide cart store.
var Sessions = NewStore()

// With runs fn against the session's cart under the store lock, creating the
// cart on first use.
func (s *Store) With(sessionID string, fn func(*Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		c = &Cart{}
		s.carts[sessionID] = c
	}
	fn(c)
}

// Drop discards a session's cart entirely.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
