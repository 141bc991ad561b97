package kvs

import (
	"context"
	"strings"
)

// NamespacedStore wraps a Store and prepends a prefix to all keys, so the
// sync ledger can share a backend with other data.
type NamespacedStore struct {
	store  Store
	prefix string
}

// NewNamespacedStore creates a new namespaced store wrapper.
// If prefix is empty, it returns the underlying store as-is.
func NewNamespacedStore(store Store, prefix string) Store {
	if prefix == "" {
		return store
	}
	return &NamespacedStore{
		store:  store,
		prefix: prefix,
	}
}

// Get retrieves a value by key (with prefix prepended).
func (n *NamespacedStore) Get(ctx context.Context, key string) ([]byte, error) {
	return n.store.Get(ctx, n.prefix+key)
}

// Set stores a value (with prefix prepended).
func (n *NamespacedStore) Set(ctx context.Context, key string, value []byte) error {
	return n.store.Set(ctx, n.prefix+key, value)
}

// Delete removes a key (with prefix prepended).
func (n *NamespacedStore) Delete(ctx context.Context, key string) error {
	return n.store.Delete(ctx, n.prefix+key)
}

// List returns all keys matching a prefix, with the namespace removed.
func (n *NamespacedStore) List(ctx context.Context, keyPrefix string) ([]string, error) {
	keys, err := n.store.List(ctx, n.prefix+keyPrefix)
	if err != nil {
		return nil, err
	}

	result := make([]string, len(keys))
	for i, key := range keys {
		result[i] = strings.TrimPrefix(key, n.prefix)
	}
	return result, nil
}

// Close closes the underlying store.
//
// If multiple NamespacedStore instances share the same underlying store,
// closing one will close the store for all.
func (n *NamespacedStore) Close() error {
	return n.store.Close()
}

var _ Store = (*NamespacedStore)(nil)
