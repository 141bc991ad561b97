// Package ledger records which asset files were synchronized into the local
// cache, at which version, and with which content digest.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ideamans/fontawesome/pkg/shared/kvs"
)

// Namespace is the key prefix ledger entries are stored under.
const Namespace = "fontawesome:sync:"

// ErrNotFound is returned when no entry exists for a path.
var ErrNotFound = errors.New("ledger: entry not found")

// Entry describes one synchronized file.
type Entry struct {
	// Path is the asset path relative to the cache root, e.g. "css/all.min.css".
	Path      string    `json:"path"`
	URL       string    `json:"url"`
	Version   string    `json:"version"`
	Integrity string    `json:"integrity"`
	Size      int64     `json:"size"`
	SyncedAt  time.Time `json:"synced_at"`
}

// Ledger stores entries in a kvs.Store.
type Ledger struct {
	store kvs.Store
}

// New creates a Ledger on top of store. Keys are namespaced so the store can
// be shared.
func New(store kvs.Store) *Ledger {
	return &Ledger{store: kvs.NewNamespacedStore(store, Namespace)}
}

// Record stores e, replacing any previous entry for the same path.
func (l *Ledger) Record(ctx context.Context, e Entry) error {
	if e.Path == "" {
		return errors.New("ledger: entry path is required")
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("ledger: failed to marshal entry: %w", err)
	}
	if err := l.store.Set(ctx, e.Path, data); err != nil {
		return fmt.Errorf("ledger: failed to record %s: %w", e.Path, err)
	}
	return nil
}

// Lookup returns the entry for path.
func (l *Ledger) Lookup(ctx context.Context, path string) (Entry, error) {
	data, err := l.store.Get(ctx, path)
	if err != nil {
		if errors.Is(err, kvs.ErrNotFound) {
			return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Entry{}, fmt.Errorf("ledger: failed to look up %s: %w", path, err)
	}

	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return Entry{}, fmt.Errorf("ledger: failed to unmarshal %s: %w", path, err)
	}
	return e, nil
}

// List returns every entry, sorted by path.
func (l *Ledger) List(ctx context.Context) ([]Entry, error) {
	keys, err := l.store.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to list entries: %w", err)
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		e, err := l.Lookup(ctx, key)
		if errors.Is(err, ErrNotFound) {
			// removed between List and Get
			continue
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Forget removes the entry for path.
func (l *Ledger) Forget(ctx context.Context, path string) error {
	if err := l.store.Delete(ctx, path); err != nil {
		return fmt.Errorf("ledger: failed to forget %s: %w", path, err)
	}
	return nil
}
