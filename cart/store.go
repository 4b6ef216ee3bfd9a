package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultSessionTTL is how long an untouched cart survives.
const DefaultSessionTTL = 24 * time.Hour

type session struct {
	cart      *Cart
	expiresAt time.Time
}

// Store keeps one cart per storefront session, keyed by an opaque token.
// The lock covers the session map only: a cart belongs to a single
// client, which issues one request at a time.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*session
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Store{ttl: ttl, sessions: make(map[string]*session)}
}

// NewSession creates an empty cart and returns its token.
func (s *Store) NewSession() string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = &session{cart: New(), expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return token
}

// Get returns the cart for a token, or false if the session is unknown
// or expired. Every hit extends the session.
func (s *Store) Get(token string) (*Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, token)
		return nil, false
	}
	sess.expiresAt = time.Now().Add(s.ttl)
	return sess.cart, true
}

// Delete drops a session outright, e.g. after a successful checkout.
func (s *Store) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// PurgeExpired removes expired sessions and reports how many went.
func (s *Store) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	purged := 0
	for token, sess := range s.sessions {
		if now.After(sess.expiresAt) {
			delete(s.sessions, token)
			purged++
		}
	}
	return purged
}
