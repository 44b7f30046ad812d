// Package config defines the server configuration structure.
package config

import "time"

// ServerConfig is the root configuration for phoneledger-server.
type ServerConfig struct {
	Server  ServerSection  `koanf:"server"`
	Storage StorageSection `koanf:"storage"`
	Auth    AuthSection    `koanf:"auth"`
	Seed    SeedSection    `koanf:"seed"`
	Log     LogSection     `koanf:"log"`
}

// ServerSection configures the HTTP endpoint.
type ServerSection struct {
	HTTP      HTTPConfig      `koanf:"http"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
}

// HTTPConfig configures the HTTP server. The ledger is a single-operator
// tool; the default bind address stays on loopback.
type HTTPConfig struct {
	Addr            string        `koanf:"addr"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// RateLimitConfig configures request throttling. Disabled by default:
// a loopback single-operator deployment has no one to throttle.
type RateLimitConfig struct {
	Enabled bool    `koanf:"enabled"`
	RPS     float64 `koanf:"rps"`
	Burst   int     `koanf:"burst"`
}

// StorageSection configures the persistence engine.
type StorageSection struct {
	// Engine selects the KV engine: "badger" or "memory".
	Engine string `koanf:"engine"`

	// DataDir is the on-disk location for the badger engine. Ignored by
	// the memory engine.
	DataDir string `koanf:"data_dir"`

	// GCInterval is how often badger value-log garbage collection runs.
	GCInterval time.Duration `koanf:"gc_interval"`

	// SyncWrites forces an fsync per write batch.
	SyncWrites bool `koanf:"sync_writes"`
}

// AuthSection configures the single operator credential pair. Password
// may be plain text or a bcrypt hash.
type AuthSection struct {
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

// SeedSection configures first-run behavior on an empty store.
type SeedSection struct {
	// SampleData loads the demo dataset when the store is empty.
	SampleData bool `koanf:"sample_data"`

	// ExchangeRate is the initial USD/ARS reference rate.
	ExchangeRate float64 `koanf:"exchange_rate"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
