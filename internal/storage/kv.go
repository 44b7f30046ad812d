package storage

import (
	"context"
	"errors"
)

// Common errors.
var (
	ErrKeyNotFound = errors.New("key not found")
	ErrClosed      = errors.New("kv engine closed")
)

// KVEngine defines the interface for embedded key-value storage.
//
// Implementation requirements:
//   - Thread-safe: concurrent reads/writes must be safe
//   - Durable (for persistent implementations): data must survive
//     process restarts
type KVEngine interface {
	// Get retrieves a value by key.
	// Returns ErrKeyNotFound if the key doesn't exist.
	Get(ctx context.Context, key []byte) ([]byte, error)

	// Set stores a key-value pair.
	Set(ctx context.Context, key, value []byte) error

	// Delete removes a key.
	Delete(ctx context.Context, key []byte) error

	// Scan iterates over keys with a given prefix.
	// Callback returns false to stop iteration.
	Scan(ctx context.Context, prefix []byte, fn func(key, value []byte) bool) error

	// Stats returns storage statistics.
	Stats(ctx context.Context) (*KVStats, error)

	// Close gracefully shuts down the engine.
	Close() error
}

// KVStats contains storage engine statistics, surfaced on /health.
type KVStats struct {
	// TotalKeys is the approximate number of keys (0 when the engine
	// cannot count cheaply).
	TotalKeys uint64 `json:"total_keys"`

	// TotalSize is the total disk usage in bytes.
	TotalSize uint64 `json:"total_size"`

	// LSMSize is the LSM tree size (Badger only).
	LSMSize uint64 `json:"lsm_size"`

	// ValueLogSize is the value log size (Badger only).
	ValueLogSize uint64 `json:"value_log_size"`
}

// KVConfig configures an embedded KV engine.
type KVConfig struct {
	// Engine specifies the engine type ("badger", "memory").
	// Default: "badger"
	Engine string

	// Dir is the storage directory (badger).
	Dir string

	// Badger holds Badger-specific tuning parameters.
	Badger BadgerConfig
}

// BadgerConfig contains Badger-specific tuning parameters.
type BadgerConfig struct {
	// GCInterval is the interval between automatic value log GC runs.
	// Zero disables the GC loop.
	GCInterval string

	// GCThreshold is the GC discard ratio threshold (0.0-1.0).
	GCThreshold float64

	// SyncWrites forces an fsync on every write. The ledger data set is
	// tiny and written rarely, so this defaults to on.
	SyncWrites bool
}

// DefaultKVConfig returns the default engine configuration.
func DefaultKVConfig() KVConfig {
	return KVConfig{
		Engine: "badger",
		Badger: BadgerConfig{
			GCInterval:  "10m",
			GCThreshold: 0.5,
			SyncWrites:  true,
		},
	}
}
