package editor

import (
	"sync"

	"marketing-app/internal/domain/editor"
	"marketing-app/internal/ulid"
)

// session is one open editor instance. The engine itself is single-threaded
// by contract; the per-session mutex serializes HTTP requests so commits
// arrive at the history in a strict order even when the client misbehaves.
type session struct {
	mu sync.Mutex

	ed         *editor.Editor
	userID     uint
	templateID *string
}

type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

var store = &sessionStore{sessions: make(map[string]*session)}

func (s *sessionStore) open(userID uint, templateID *string, doc *editor.Document) string {
	id := ulid.GenerateID()
	s.mu.Lock()
	s.sessions[id] = &session{
		ed:         editor.New(doc),
		userID:     userID,
		templateID: templateID,
	}
	s.mu.Unlock()
	return id
}

func (s *sessionStore) get(id string, userID uint) (*session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok || sess.userID != userID {
		return nil, false
	}
	return sess, true
}

func (s *sessionStore) close(id string, userID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok || sess.userID != userID {
		return false
	}
	delete(s.sessions, id)
	return true
}
