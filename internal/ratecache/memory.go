package ratecache

import (
	"context"
	"sync"
	"time"
)

// sessionEntry holds the cached outcomes of one buyer session.
type sessionEntry struct {
	options   map[string]Entry
	expiresAt time.Time
}

// MemoryStore is an in-process Store with per-session expiry. Expired
// sessions are removed by a background janitor.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryStore creates a memory store whose sessions expire ttl after
// their last write. A non-positive ttl defaults to 30 minutes.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	s := &MemoryStore{
		sessions: make(map[string]*sessionEntry),
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
	go s.janitor()
	return s
}

// Session returns the cache view for the given buyer session.
func (s *MemoryStore) Session(sessionID string) Session {
	return &memorySession{store: s, id: sessionID}
}

// Close stops the background janitor. Safe to call more than once.
func (s *MemoryStore) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *MemoryStore) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, sess := range s.sessions {
				if now.After(sess.expiresAt) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}

type memorySession struct {
	store *MemoryStore
	id    string
}

func (m *memorySession) Lookup(_ context.Context, optionID, fingerprint string) (Entry, bool) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()

	sess, ok := m.store.sessions[m.id]
	if !ok || time.Now().After(sess.expiresAt) {
		return Entry{}, false
	}
	e, ok := sess.options[optionID]
	if !ok || e.Fingerprint != fingerprint {
		return Entry{}, false
	}
	return e, true
}

func (m *memorySession) Store(_ context.Context, optionID string, e Entry) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	sess, ok := m.store.sessions[m.id]
	if !ok {
		sess = &sessionEntry{options: make(map[string]Entry)}
		m.store.sessions[m.id] = sess
	}
	sess.options[optionID] = e
	sess.expiresAt = time.Now().Add(m.store.ttl)
	return nil
}
