package antispam

import (
	"context"
	"strings"
	"sync"
	"time"
)

// TokenStore keeps short-lived anti-spam tokens. Consume must be atomic: a
// token can be consumed at most once.
type TokenStore interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
	Consume(ctx context.Context, key string) (string, bool, error)
}

// Key scopes a token to a session, a form and a check.
func Key(session, form, check string) string {
	return strings.Join([]string{"antispam", session, form, check}, ":")
}

type memEntry struct {
	value   string
	expires time.Time
}

// MemoryStore is a process-local TokenStore.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memEntry), now: time.Now}
}

func (m *MemoryStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := memEntry{value: value}
	if ttl > 0 {
		e.expires = m.now().Add(ttl)
	}
	m.entries[key] = e
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.lookup(key)
	return e.value, ok, nil
}

func (m *MemoryStore) Consume(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.lookup(key)
	if ok {
		delete(m.entries, key)
	}
	return e.value, ok, nil
}

// Sweep drops expired entries.
func (m *MemoryStore) Sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.entries {
		m.lookup(k)
	}
}

func (m *MemoryStore) lookup(key string) (memEntry, bool) {
	e, ok := m.entries[key]
	if !ok {
		return memEntry{}, false
	}
	if !e.expires.IsZero() && !m.now().Before(e.expires) {
		delete(m.entries, key)
		return memEntry{}, false
	}
	return e, true
}
