// Package session contains the in-memory session store
package session

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/yourusername/video-downloader-bot/internal/domain/bot/entities"
)

// KeyFor derives the session key for a URL: the first 16 hex characters
// of its SHA-256 digest. The derivation is deterministic so repeated taps
// on one menu resolve to the same session.
func KeyFor(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])[:16]
}

// Store is a process-wide table of in-flight download sessions. Entries
// live until explicitly deleted or until they exceed the TTL; expired
// entries are dropped lazily on Get and in bulk by Sweep.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entities.Session
	ttl      time.Duration
	now      func() time.Time
	logger   zerolog.Logger
}

// NewStore creates a session store. A zero ttl disables expiry.
func NewStore(ttl time.Duration, logger zerolog.Logger) *Store {
	return &Store{
		sessions: make(map[string]*entities.Session),
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

// SetClock overrides the store clock, for tests.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Put stores a session under its key, stamping the creation time.
func (s *Store) Put(key string, sess *entities.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess.CreatedAt = s.now()
	s.sessions[key] = sess

	s.logger.Debug().
		Str("session_key", key).
		Int64("user_id", sess.UserID).
		Int("formats", len(sess.Formats)).
		Msg("Session stored")
}

// Get returns the session for a key. A miss is a normal outcome and means
// the session is unknown or has expired.
func (s *Store) Get(key string) (*entities.Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[key]
	now := s.now()
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if s.expired(sess, now) {
		s.Delete(key)
		return nil, false
	}

	return sess, true
}

// Delete removes a session. Deleting an absent key is not an error.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[key]; ok {
		delete(s.sessions, key)
		s.logger.Debug().Str("session_key", key).Msg("Session deleted")
	}
}

// Len returns the number of stored sessions, including not yet swept
// expired ones.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep removes all expired sessions and returns how many were dropped.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	dropped := 0
	for key, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, key)
			dropped++
		}
	}

	if dropped > 0 {
		s.logger.Info().Int("dropped", dropped).Int("remaining", len(s.sessions)).Msg("Swept expired sessions")
	}

	return dropped
}

func (s *Store) expired(sess *entities.Session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.CreatedAt) > s.ttl
}
