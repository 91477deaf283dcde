package toast

import (
	"sync"
	"time"
)

// Store keeps pending notifications between a mutating request and the
// page load that shows them.
type Store interface {
	Set(id string, message string, ttl time.Duration)

	// Consume returns the message for id if not expired and removes it
	// (single-use). Returns "" if missing or expired.
	Consume(id string) string
}

type entry struct {
	message   string
	expiresAt time.Time
}

type MemoryStore struct {
	mu   sync.Mutex
	data map[string]entry
	now  func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *MemoryStore) Set(id string, message string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()
	s.data[id] = entry{
		message:   message,
		expiresAt: s.now().Add(ttl),
	}
}

func (s *MemoryStore) Consume(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		return ""
	}
	delete(s.data, id)
	if s.now().After(e.expiresAt) {
		return ""
	}
	return e.message
}

// sweep drops expired entries. Callers hold the write lock.
func (s *MemoryStore) sweep() {
	now := s.now()
	for id, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, id)
		}
	}
}
