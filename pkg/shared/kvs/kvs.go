// Package kvs provides the key-value store that keeps track of synchronized
// assets, with implementations for Memory, LevelDB, and Redis.
package kvs

import (
	"context"
	"errors"
)

// Store is a key-value store. All implementations must be thread-safe.
type Store interface {
	// Get retrieves a value by key.
	// Returns ErrNotFound if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value, replacing any previous one.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key.
	// Does not return an error if the key does not exist.
	Delete(ctx context.Context, key string) error

	// List returns all keys matching a prefix.
	// Empty prefix returns all keys in the store.
	// The order of keys is not guaranteed.
	List(ctx context.Context, prefix string) ([]string, error)

	// Close closes the store and releases resources.
	// After Close is called, all operations should return ErrClosed.
	Close() error
}

// Common errors
var (
	// ErrNotFound is returned when a key is not found.
	ErrNotFound = errors.New("kvs: key not found")

	// ErrClosed is returned when an operation is attempted on a closed store.
	ErrClosed = errors.New("kvs: store is closed")
)

// Config represents the configuration for creating a KVS store.
type Config struct {
	// Type specifies the store type: "memory", "leveldb", or "redis"
	Type string `yaml:"type" json:"type"`

	// Namespace provides logical isolation within the store.
	// - Memory: key prefix
	// - LevelDB: separate directory per namespace when no path is set
	// - Redis: key prefix
	Namespace string `yaml:"namespace" json:"namespace"`

	// LevelDB-specific config
	LevelDB LevelDBConfig `yaml:"leveldb" json:"leveldb"`

	// Redis-specific config
	Redis RedisConfig `yaml:"redis" json:"redis"`
}

// LevelDBConfig configures the LevelDB store.
type LevelDBConfig struct {
	// Path is the directory path for LevelDB storage.
	// If empty, a directory under the user cache directory is used.
	Path string `yaml:"path" json:"path"`

	// SyncWrites enables synchronous writes (slower but safer).
	SyncWrites bool `yaml:"sync_writes" json:"sync_writes"`
}

// RedisConfig configures the Redis store.
type RedisConfig struct {
	// Addr is the Redis server address (host:port)
	Addr string `yaml:"addr" json:"addr"`

	// Password is the Redis password (optional)
	Password string `yaml:"password" json:"password"`

	// DB is the Redis database number (0-15)
	DB int `yaml:"db" json:"db"`

	// PoolSize is the maximum number of socket connections (0 = default 10 * runtime.NumCPU)
	PoolSize int `yaml:"pool_size" json:"pool_size"`
}

// New creates a new KVS store based on the provided config.
func New(cfg Config) (Store, error) {
	switch cfg.Type {
	case "memory", "":
		return NewMemoryStore(cfg.Namespace), nil
	case "leveldb":
		return NewLevelDBStore(cfg.Namespace, cfg.LevelDB)
	case "redis":
		return NewRedisStore(cfg.Namespace, cfg.Redis)
	default:
		return nil, errors.New("kvs: unsupported store type: " + cfg.Type)
	}
}
