package config

import "errors"

var (
	// ErrConfigFileNotFound is returned when config file is not found
	ErrConfigFileNotFound = errors.New("configuration file not found")

	// ErrInvalidFetchTimeout is returned when fetch_timeout is not a positive duration
	ErrInvalidFetchTimeout = errors.New("fetch_timeout must be a positive duration")

	// ErrInvalidURLPrefix is returned when url_prefix is not an absolute path
	ErrInvalidURLPrefix = errors.New("url_prefix must start with /")

	// ErrStaticRootRequired is returned when no cache directory could be determined
	ErrStaticRootRequired = errors.New("static_root is required")

	// ErrInvalidPort is returned when the server port is out of range
	ErrInvalidPort = errors.New("server port must be between 1 and 65535")

	// ErrInvalidKVSType is returned when kvs.type is not memory, leveldb or redis
	ErrInvalidKVSType = errors.New("kvs type must be one of memory, leveldb, redis")

	// ErrRedisAddrRequired is returned when the redis store has no address
	ErrRedisAddrRequired = errors.New("kvs redis addr is required")
)
