// Package session holds per-conversation state: the vector index and the
// append-only history log, plus a manager for the set of live sessions.
// Sessions are independent units of state; nothing is shared between them
// and nothing is persisted beyond their lifetime.
package session // import "github.com/smallnest/docqa/session"

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smallnest/docqa/rag"
)

// Session is one conversation's state. The history log grows by exactly
// one (user, assistant) pair per completed turn and is never truncated for
// the session's lifetime; long conversations grow it without bound, and
// only the engine's windowing bounds what reaches the generator.
//
// There is no tracked lifecycle state: ingestion and queries may
// interleave freely, and adding documents mid-conversation only grows the
// index without invalidating prior answers or history.
//
// Individual methods are safe for concurrent use, but a whole
// question-answer turn spans several calls; callers exposing one session
// to overlapping requests must serialize turns per session.
type Session struct {
	id        string
	index     rag.VectorIndex
	createdAt time.Time

	mu      sync.RWMutex
	history []rag.HistoryEntry
}

// New creates a session with an empty history owning the given index.
func New(index rag.VectorIndex) *Session {
	return &Session{
		id:        uuid.New().String(),
		index:     index,
		createdAt: time.Now(),
		history:   make([]rag.HistoryEntry, 0),
	}
}

// ID returns the session's unique id.
func (s *Session) ID() string { return s.id }

// Index returns the session's vector index.
func (s *Session) Index() rag.VectorIndex { return s.index }

// CreatedAt returns the session's creation time.
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// History returns a snapshot copy of the history log in turn order.
func (s *Session) History() []rag.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]rag.HistoryEntry, len(s.history))
	copy(entries, s.history)
	return entries
}

// Len reports the current history length.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}

// AppendTurn appends the question and its answer as one atomic pair. It is
// only called after generation succeeded, so a failed turn never leaves a
// partial pair behind.
func (s *Session) AppendTurn(question, answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history,
		rag.HistoryEntry{Role: rag.RoleUser, Content: question},
		rag.HistoryEntry{Role: rag.RoleAssistant, Content: answer},
	)
}

// Manager tracks live sessions by id.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	newIndex func() rag.VectorIndex
}

// NewManager creates a manager that equips each new session with an index
// from newIndex.
func NewManager(newIndex func() rag.VectorIndex) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		newIndex: newIndex,
	}
}

// Create starts a new session with an empty index and history.
func (m *Manager) Create() *Session {
	sess := New(m.newIndex())

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID()] = sess
	return sess
}

// Get returns the session with the given id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session not found: %s", id)
	}
	return sess, nil
}

// Delete tears down the session with the given id. Its index and history
// are dropped with it; nothing outlives the session.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
