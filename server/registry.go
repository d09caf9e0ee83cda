package server

import (
	"sync"
	"time"

	"gambol/conversation"

	"github.com/google/uuid"
)

// entry guards one session. busy is set while a turn is in flight; the turn
// runs on a clone that replaces session when it finishes.
type entry struct {
	mu       sync.Mutex
	busy     bool
	session  *conversation.Session
	lastUsed time.Time
}

// Registry holds the live sessions in memory. Nothing is persisted.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*entry
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*entry)}
}

// Create starts a session and returns its ID with a snapshot of it.
func (r *Registry) Create() (string, *conversation.Session) {
	id := uuid.New().String()
	s := conversation.NewSession()

	r.mu.Lock()
	r.sessions[id] = &entry{session: s, lastUsed: time.Now()}
	r.mu.Unlock()

	return id, s.Clone()
}

// Snapshot returns a copy of the session that is safe to read.
func (r *Registry) Snapshot(id string) (*conversation.Session, bool) {
	e, ok := r.get(id)
	if !ok {
		return nil, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Clone(), true
}

// Delete removes a session. It reports whether the session existed.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	return true
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Prune drops sessions idle for longer than maxIdle and returns how many went.
func (r *Registry) Prune(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	r.mu.Lock()
	defer r.mu.Unlock()

	var n int
	for id, e := range r.sessions {
		e.mu.Lock()
		idle := !e.busy && e.lastUsed.Before(cutoff)
		e.mu.Unlock()
		if idle {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}

func (r *Registry) get(id string) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[id]
	return e, ok
}

// begin marks the session busy and hands out a working copy. ok is false when
// another turn is already running.
func (e *entry) begin() (*conversation.Session, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.busy {
		return nil, false
	}
	e.busy = true
	return e.session.Clone(), true
}

// finish stores the working copy and clears the busy flag.
func (e *entry) finish(s *conversation.Session) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session = s
	e.busy = false
	e.lastUsed = time.Now()
}
