package session

import (
	"sync"

	"github.com/google/uuid"
)

// Store holds per-session conversation history. Sessions are identified by
// opaque tokens; history is a bounded, ordered list of dialogue lines.
// Implementations must be safe for concurrent use.
type Store interface {
	// ResolveOrCreate returns id unchanged when non-empty, otherwise mints
	// a fresh globally-unique session token.
	ResolveOrCreate(id string) string

	// Append adds a line to the session's history, creating the session if
	// needed, then truncates to the retention limit keeping the most
	// recent lines.
	Append(id, line string)

	// Get returns a copy of the session's history. Unknown sessions yield
	// an empty slice.
	Get(id string) []string

	// ClearAll empties the entire store. Every session is affected, not
	// just the caller's.
	ClearAll()
}

type entry struct {
	mu    sync.Mutex
	lines []string
}

// MemoryStore is an in-memory Store. A store-level mutex guards the session
// map; each session carries its own mutex so appends on the same session
// serialize without blocking unrelated sessions. State is process-lifetime
// only.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	limit    int
}

// NewMemoryStore returns a store that retains at most limit lines per
// session, dropping the oldest first.
func NewMemoryStore(limit int) *MemoryStore {
	if limit <= 0 {
		limit = 15
	}
	return &MemoryStore{
		sessions: make(map[string]*entry),
		limit:    limit,
	}
}

func (s *MemoryStore) ResolveOrCreate(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

func (s *MemoryStore) Append(id, line string) {
	s.mu.Lock()
	e, ok := s.sessions[id]
	if !ok {
		e = &entry{}
		s.sessions[id] = e
	}
	s.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	e.lines = append(e.lines, line)
	if len(e.lines) > s.limit {
		e.lines = e.lines[len(e.lines)-s.limit:]
	}
}

func (s *MemoryStore) Get(id string) []string {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return []string{}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.lines))
	copy(out, e.lines)
	return out
}

func (s *MemoryStore) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string]*entry)
}
