package coaching

import (
	"fmt"
	"sync"
)

// Registry tracks the live coaching engine of each active interview so
// the REST answer endpoints can reach the state owned by the WebSocket
// connection.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
	}
}

// Attach registers the engine for an interview session. Only one live
// engine per interview is allowed.
func (r *Registry) Attach(interviewID string, session *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[interviewID]; exists {
		return fmt.Errorf("coaching session already live for interview %s", interviewID)
	}
	r.sessions[interviewID] = session
	return nil
}

// Detach unregisters and closes the engine.
func (r *Registry) Detach(interviewID string) {
	r.mu.Lock()
	session := r.sessions[interviewID]
	delete(r.sessions, interviewID)
	r.mu.Unlock()

	if session != nil {
		session.Close()
	}
}

func (r *Registry) Get(interviewID string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[interviewID]
	return session, ok
}
