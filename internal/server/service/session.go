package service

import (
	"sync"

	"sketchpad/internal/builder"
	"sketchpad/internal/editor"
	"sketchpad/internal/scene"

	"github.com/google/uuid"
)

// ============================================================
// Editing Session
// ============================================================

// Session wraps one editor. The engine is single-threaded, so every access
// goes through Do.
type Session struct {
	mu      sync.Mutex
	sceneID string
	editor  *editor.Editor
}

// Do runs fn with exclusive access to the session's editor.
func (s *Session) Do(fn func(e *editor.Editor) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.editor)
}

// SceneID is the stored scene the session was opened from, if any.
func (s *Session) SceneID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sceneID
}

// Persist snapshots the editor's document and hands it to save together with
// the current scene id, all under the session lock. The id save returns
// becomes the session's scene id; created reports whether the session had
// none before.
func (s *Session) Persist(save func(sceneID string, doc *scene.Document) (string, error)) (id string, created bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.editor.Scene().Document()
	id, err = save(s.sceneID, &doc)
	if err != nil {
		return "", false, err
	}
	created = s.sceneID == ""
	s.sceneID = id
	return id, created, nil
}

// ============================================================
// Session Manager
// ============================================================

type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session // token -> session

	builder *builder.Builder
	opts    editor.Options
}

func NewSessionManager(b *builder.Builder, opts editor.Options) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
		builder:  b,
		opts:     opts,
	}
}

// Issue opens a session over c and returns its token.
func (m *SessionManager) Issue(sceneID string, c *scene.Collection) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	token := uuid.NewString()
	m.sessions[token] = &Session{
		sceneID: sceneID,
		editor:  editor.New(c, m.builder, m.opts),
	}
	return token
}

func (m *SessionManager) Resolve(token string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	return s, ok
}

// Close forgets the session. It reports whether the token was known.
func (m *SessionManager) Close(token string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[token]; !ok {
		return false
	}
	delete(m.sessions, token)
	return true
}

func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
