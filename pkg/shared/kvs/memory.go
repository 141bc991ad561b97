package kvs

import (
	"context"
	"strings"
	"sync"
)

// MemoryStore is an in-memory implementation of Store.
// Data is volatile and will be lost when the process restarts.
type MemoryStore struct {
	prefix string
	items  map[string][]byte
	mu     sync.RWMutex
	closed bool
}

// NewMemoryStore creates a new in-memory KVS store.
func NewMemoryStore(prefix string) *MemoryStore {
	return &MemoryStore{
		prefix: prefix,
		items:  make(map[string][]byte),
	}
}

// Get retrieves a value by key.
func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrClosed
	}

	value, exists := m.items[m.prefix+key]
	if !exists {
		return nil, ErrNotFound
	}

	// Return a copy to prevent external modifications
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores a value.
func (m *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)
	m.items[m.prefix+key] = valueCopy
	return nil
}

// Delete removes a key.
func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	delete(m.items, m.prefix+key)
	return nil
}

// List returns all keys matching a prefix.
func (m *MemoryStore) List(ctx context.Context, keyPrefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrClosed
	}

	fullPrefix := m.prefix + keyPrefix
	var keys []string
	for key := range m.items {
		if strings.HasPrefix(key, fullPrefix) {
			keys = append(keys, strings.TrimPrefix(key, m.prefix))
		}
	}
	return keys, nil
}

// Close closes the store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	m.closed = true
	m.items = nil
	return nil
}

var _ Store = (*MemoryStore)(nil)
