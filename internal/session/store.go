package session

import (
	"sync"

	"leadbot/internal/domain"
	"leadbot/internal/i18n"
)

// Store keeps per-chat sessions in memory.
// Sessions live for the lifetime of the process and are never evicted.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]domain.Session
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{
		sessions: make(map[int64]domain.Session),
	}
}

// Get returns a copy of the user's session, or a fresh default
// (idle, default language) on first contact.
func (s *Store) Get(userID int64) domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return domain.Session{
			Language: i18n.DefaultLang,
			State:    domain.StateIdle,
		}
	}
	return sess
}

// Put stores the session for a user
func (s *Store) Put(userID int64, sess domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = sess
}

// Reset returns the user's session to idle and clears the pending name,
// keeping the selected language.
func (s *Store) Reset(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return
	}
	sess.State = domain.StateIdle
	sess.PendingName = ""
	s.sessions[userID] = sess
}
