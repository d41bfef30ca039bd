package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	KV       KVConfig       `yaml:"kv"`
	Log      LogConfig      `yaml:"log"`
	Session  SessionConfig  `yaml:"session"`
	Seed     SeedConfig     `yaml:"seed"`
}

// DatabaseConfig holds settings for the embedded SQLite store.
type DatabaseConfig struct {
	Path        string        `yaml:"path"         env:"DATABASE_PATH"         env-default:"./mytreino.db"`
	BusyTimeout time.Duration `yaml:"busy_timeout" env:"DATABASE_BUSY_TIMEOUT" env-default:"5s"`
}

// KVConfig holds settings for the Badger key-value side store
// (custom catalog entries and lightweight preferences).
type KVConfig struct {
	Dir      string `yaml:"dir"       env:"KV_DIR"       env-default:"./mytreino-kv"`
	InMemory bool   `yaml:"in_memory" env:"KV_IN_MEMORY" env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SessionConfig holds live-session settings.
type SessionConfig struct {
	// RestSeconds is the default rest countdown between completed sets;
	// the preference stored in the key-value store overrides it.
	RestSeconds int `yaml:"rest_seconds" env:"SESSION_REST_SECONDS" env-default:"60"`

	// RestGrace is how long an elapsed rest timer stays visible before
	// auto-clearing.
	RestGrace time.Duration `yaml:"rest_grace" env:"SESSION_REST_GRACE" env-default:"5s"`
}

// SeedConfig controls one-time seeding of the default workouts.
type SeedConfig struct {
	DefaultsEnabled bool `yaml:"defaults_enabled" env:"SEED_DEFAULTS_ENABLED" env-default:"true"`
}
