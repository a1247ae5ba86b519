package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"
)

const tokenLength = 32 // 256 bits

// Session holds the server-side state for an authenticated admin session.
type Session struct {
	Principal string
	CreatedAt time.Time
}

// Store is an in-memory session store suitable for single-instance
// deployment. Sessions never survive a process restart: a crash or
// redeploy invalidates every outstanding token. A token is valid if and
// only if it exists in the store and has not outlived the TTL; expiry is
// evaluated lazily on Validate, with Sweep reclaiming abandoned entries.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore returns a session store whose tokens expire ttl after creation.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create mints a new high-entropy token for the given principal.
func (s *Store) Create(principal string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.sessions[token] = Session{
		Principal: principal,
		CreatedAt: s.now(),
	}
	s.mu.Unlock()

	return token, nil
}

// Validate reports whether the token identifies a live session. Expired
// and revoked tokens are indistinguishable to the caller: both are simply
// absent. An expired entry found here is removed on the spot.
func (s *Store) Validate(token string) (Session, bool) {
	if token == "" {
		return Session{}, false
	}

	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return Session{}, false
	}

	if s.now().Sub(sess.CreatedAt) >= s.ttl {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return Session{}, false
	}

	return sess, true
}

// Destroy removes the token if present. Destroying an unknown token is
// not an error.
func (s *Store) Destroy(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Sweep removes expired sessions that were never revisited and returns
// how many were reclaimed.
func (s *Store) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, sess := range s.sessions {
		if now.Sub(sess.CreatedAt) >= s.ttl {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored sessions, live or not yet swept.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func generateToken() (string, error) {
	bytes := make([]byte, tokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
