package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/weather-widget/internal/weather"
)

var (
	// ErrNotFound is returned when no widget exists for a session.
	ErrNotFound = errors.New("no widget for session")
)

// WidgetFactory builds the widget for a new session.
type WidgetFactory func() *weather.Widget

type session struct {
	widget   *weather.Widget
	lastSeen time.Time
}

// MemoryStore is a concurrency-safe in-memory map of session id to widget.
type MemoryStore struct {
	mu sync.RWMutex

	data map[uuid.UUID]*session

	newWidget WidgetFactory
	now       func() time.Time

	// retention configuration
	maxSessions int           // max number of live sessions (0 = unlimited)
	maxAge      time.Duration // idle time after which a session is dropped
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxSessions is <= 0, it is treated as unlimited.
func NewMemoryStore(factory WidgetFactory, maxSessions int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:        make(map[uuid.UUID]*session),
		newWidget:   factory,
		now:         time.Now,
		maxSessions: maxSessions,
		maxAge:      maxAge,
	}
}

// NewSessionID returns a fresh random session identifier.
func NewSessionID() uuid.UUID {
	return uuid.New()
}

// ParseSessionID parses a session id from a cookie value.
func ParseSessionID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GetOrCreate returns the widget for id, creating it when absent. created
// reports whether a new widget was made.
func (s *MemoryStore) GetOrCreate(id uuid.UUID) (w *weather.Widget, created bool) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.data[id]; ok {
		sess.lastSeen = now
		return sess.widget, false
	}

	sess := &session{widget: s.newWidget(), lastSeen: now}
	s.data[id] = sess
	s.enforceCountLocked()

	return sess.widget, true
}

// Get returns the widget for id and marks the session as seen.
func (s *MemoryStore) Get(id uuid.UUID) (*weather.Widget, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.data[id]
	if !ok {
		return nil, ErrNotFound
	}
	sess.lastSeen = now
	return sess.widget, nil
}

// Len returns the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Prune drops sessions idle for longer than maxAge and enforces maxSessions.
// It returns the number of sessions removed.
func (s *MemoryStore) Prune() int {
	cutoff := s.now().Add(-s.maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.data)

	if s.maxAge > 0 {
		for id, sess := range s.data {
			if sess.lastSeen.Before(cutoff) {
				delete(s.data, id)
			}
		}
	}
	s.enforceCountLocked()

	return before - len(s.data)
}

// enforceCountLocked evicts the least recently seen sessions above maxSessions.
func (s *MemoryStore) enforceCountLocked() {
	if s.maxSessions <= 0 || len(s.data) <= s.maxSessions {
		return
	}

	type entry struct {
		id       uuid.UUID
		lastSeen time.Time
	}
	entries := make([]entry, 0, len(s.data))
	for id, sess := range s.data {
		entries = append(entries, entry{id: id, lastSeen: sess.lastSeen})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].lastSeen.Before(entries[j].lastSeen)
	})

	over := len(entries) - s.maxSessions
	for _, e := range entries[:over] {
		delete(s.data, e.id)
	}
}
