package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory. Default backend for dev and
// tests; state is gone on restart, which the session-order model tolerates by
// design. The mutex only protects the maps, it does not serialize a request's
// read-modify-write cycle.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[string]memoryEntry
	ttl  time.Duration
}

type memoryEntry struct {
	val []byte
	exp time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string]memoryEntry), ttl: ttl}
}

func (m *MemoryStore) Get(ctx context.Context, sid, key string) ([]byte, error) {
	m.mu.RLock()
	entry, ok := m.data[sid][key]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if !entry.exp.IsZero() && time.Now().After(entry.exp) {
		m.mu.Lock()
		delete(m.data[sid], key)
		m.mu.Unlock()
		return nil, nil
	}
	return entry.val, nil
}

func (m *MemoryStore) Set(ctx context.Context, sid, key string, val []byte) error {
	var exp time.Time
	if m.ttl > 0 {
		exp = time.Now().Add(m.ttl)
	}
	m.mu.Lock()
	if m.data[sid] == nil {
		m.data[sid] = make(map[string]memoryEntry)
	}
	m.data[sid][key] = memoryEntry{val: val, exp: exp}
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, sid, key string) error {
	m.mu.Lock()
	delete(m.data[sid], key)
	m.mu.Unlock()
	return nil
}
