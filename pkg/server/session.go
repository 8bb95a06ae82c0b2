package server

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultSessionLimit bounds how many finished generations stay downloadable.
const DefaultSessionLimit = 100

// Session holds the artifacts of one generation run for later download.
type Session struct {
	ID        string
	LaTeX     string
	PDF       []byte
	Warnings  []string
	CreatedAt time.Time
}

// SessionStore is a bounded in-memory session cache. The oldest session is
// evicted first once the limit is reached.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	order    []string
	limit    int
}

// NewSessionStore creates a store holding at most limit sessions.
func NewSessionStore(limit int) (store *SessionStore) {
	if limit <= 0 {
		limit = DefaultSessionLimit
	}

	store = &SessionStore{
		sessions: make(map[string]*Session),
		limit:    limit,
	}

	return store
}

// Put stores a finished generation under a fresh UUID and returns the session.
func (s *SessionStore) Put(latexSource string, pdfData []byte, warnings []string) (session *Session) {
	session = &Session{
		ID:        uuid.NewString(),
		LaTeX:     latexSource,
		PDF:       pdfData,
		Warnings:  warnings,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.order) >= s.limit {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.sessions, oldest)
	}

	s.sessions[session.ID] = session
	s.order = append(s.order, session.ID)

	return session
}

// Get returns the session with the given ID, if still stored.
func (s *SessionStore) Get(id string) (session *Session, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok = s.sessions[id]

	return session, ok
}

// Len reports how many sessions are currently stored.
func (s *SessionStore) Len() (n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n = len(s.sessions)

	return n
}
