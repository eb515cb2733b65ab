package session

import (
	"context"
	"sync"
	"time"
)

// memoryStore is an in-process Store used in tests and in deployments
// without Redis. Entries expire lazily on read.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
}

type memoryEntry struct {
	sess      Session
	expiresAt time.Time
}

// NewMemoryStore creates an in-memory session store.
func NewMemoryStore() Store {
	return &memoryStore{sessions: make(map[string]memoryEntry)}
}

func (s *memoryStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, ErrNotFound
	}

	// Copy out so callers never share the stored value.
	sess := entry.sess
	sess.Cart = append([]CartItem(nil), entry.sess.Cart...)
	return &sess, nil
}

func (s *memoryStore) Save(_ context.Context, sess *Session) error {
	stored := *sess
	stored.Cart = append([]CartItem(nil), sess.Cart...)

	s.mu.Lock()
	s.sessions[sess.ID] = memoryEntry{sess: stored, expiresAt: time.Now().Add(TTL)}
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}
