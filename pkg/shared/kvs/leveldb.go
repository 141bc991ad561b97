package kvs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	lverrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// LevelDBStore is a LevelDB-based implementation of Store.
// It keeps the sync ledger on disk next to the asset cache so it survives restarts.
type LevelDBStore struct {
	prefix    string
	db        *leveldb.DB
	syncWrite bool
	closed    bool
	mu        sync.RWMutex
}

// NewLevelDBStore creates a new LevelDB KVS store.
func NewLevelDBStore(prefix string, cfg LevelDBConfig) (*LevelDBStore, error) {
	dbPath := cfg.Path
	if dbPath == "" {
		dbPath = defaultLevelDBPath(prefix)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("kvs/leveldb: failed to create directory: %w", err)
	}

	opts := &opt.Options{
		Strict:      opt.DefaultStrict,
		Compression: opt.SnappyCompression,
	}

	db, err := leveldb.OpenFile(dbPath, opts)
	if err != nil {
		// Try to recover if database is corrupted
		if lverrors.IsCorrupted(err) {
			db, err = leveldb.RecoverFile(dbPath, nil)
		}
		if err != nil {
			return nil, fmt.Errorf("kvs/leveldb: failed to open database at %s: %w", dbPath, err)
		}
	}

	return &LevelDBStore{
		prefix:    prefix,
		db:        db,
		syncWrite: cfg.SyncWrites,
	}, nil
}

// defaultLevelDBPath places the database in the OS cache directory.
func defaultLevelDBPath(prefix string) string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}

	dirName := "fontawesome-ledger"
	if prefix != "" {
		// Sanitize prefix for use in directory name
		sanitized := strings.Map(func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
				return r
			}
			return '-'
		}, prefix)
		dirName = fmt.Sprintf("%s-%s", dirName, sanitized)
	}
	return filepath.Join(cacheDir, dirName)
}

func (l *LevelDBStore) checkOpen() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return ErrClosed
	}
	return nil
}

// Get retrieves a value by key.
func (l *LevelDBStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := l.checkOpen(); err != nil {
		return nil, err
	}

	value, err := l.db.Get([]byte(l.prefix+key), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("kvs/leveldb: get failed: %w", err)
	}
	return value, nil
}

// Set stores a value.
func (l *LevelDBStore) Set(ctx context.Context, key string, value []byte) error {
	if err := l.checkOpen(); err != nil {
		return err
	}

	if err := l.db.Put([]byte(l.prefix+key), value, &opt.WriteOptions{Sync: l.syncWrite}); err != nil {
		return fmt.Errorf("kvs/leveldb: set failed: %w", err)
	}
	return nil
}

// Delete removes a key.
func (l *LevelDBStore) Delete(ctx context.Context, key string) error {
	if err := l.checkOpen(); err != nil {
		return err
	}

	err := l.db.Delete([]byte(l.prefix+key), nil)
	if err != nil && !errors.Is(err, leveldb.ErrNotFound) {
		return fmt.Errorf("kvs/leveldb: delete failed: %w", err)
	}
	return nil
}

// List returns all keys matching a prefix.
func (l *LevelDBStore) List(ctx context.Context, keyPrefix string) ([]string, error) {
	if err := l.checkOpen(); err != nil {
		return nil, err
	}

	iter := l.db.NewIterator(util.BytesPrefix([]byte(l.prefix+keyPrefix)), nil)
	defer iter.Release()

	var keys []string
	for iter.Next() {
		keys = append(keys, strings.TrimPrefix(string(iter.Key()), l.prefix))
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("kvs/leveldb: iteration failed: %w", err)
	}
	return keys, nil
}

// Close closes the LevelDB database.
func (l *LevelDBStore) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	l.closed = true
	l.mu.Unlock()

	if err := l.db.Close(); err != nil {
		return fmt.Errorf("kvs/leveldb: close failed: %w", err)
	}
	return nil
}

var _ Store = (*LevelDBStore)(nil)
