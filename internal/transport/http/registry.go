package http

import (
	"sync"

	"github.com/tkoivu/country-edit-service/internal/app/country/session"
)

// sessionRegistry tracks open form sessions by id. The lock guards only
// the map; each session itself is single-user and unguarded.
type sessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*session.FormSession
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{sessions: make(map[string]*session.FormSession)}
}

func (r *sessionRegistry) add(s *session.FormSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID()] = s
}

func (r *sessionRegistry) get(id string) (*session.FormSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

func (r *sessionRegistry) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

func (r *sessionRegistry) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
