// Package session holds per-user transient state: the uploaded tables and
// the stopword configuration. Nothing is persisted; a session disappears
// when it expires or the process stops.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"storelens/internal/dataset"
	"storelens/internal/textkit"
)

// Session is the state owned by one dashboard user. Stopwords are scoped
// here rather than process-wide so concurrent users never see each other's
// edits.
type Session struct {
	ID        string
	CreatedAt time.Time

	Stopwords *textkit.StopwordSet

	mu       sync.RWMutex
	lastSeen time.Time
	tables   map[dataset.Kind]dataset.Table
}

// SetTable stores an uploaded, canonicalized table, replacing any previous
// upload of the same kind.
func (s *Session) SetTable(kind dataset.Kind, t dataset.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[kind] = t
}

// Table returns the uploaded table of the given kind.
func (s *Session) Table(kind dataset.Kind) (dataset.Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tables[kind]
	return t, ok
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return now.Sub(s.lastSeen) > ttl
}

// Store is an in-memory, TTL-swept session registry.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	logger   *slog.Logger
}

// NewStore creates a session store. Sessions idle longer than ttl are
// removed by the sweeper started with StartSweeper.
func NewStore(ttl time.Duration, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		logger:   logger.With(slog.String("component", "session_store")),
	}
}

// Create registers a new session with default stopwords and returns it.
func (st *Store) Create() *Session {
	now := time.Now()
	s := &Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		lastSeen:  now,
		Stopwords: textkit.NewStopwordSet(),
		tables:    make(map[dataset.Kind]dataset.Table),
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get returns the session with the given ID and refreshes its idle timer.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if ok {
		s.touch(time.Now())
	}
	return s, ok
}

// Delete removes a session.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// StartSweeper removes expired sessions every interval until ctx is done.
func (st *Store) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				st.sweep(time.Now())
			}
		}
	}()
}

func (st *Store) sweep(now time.Time) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for id, s := range st.sessions {
		if s.expired(now, st.ttl) {
			delete(st.sessions, id)
			st.logger.Info("session expired", slog.String("session_id", id))
		}
	}
}
