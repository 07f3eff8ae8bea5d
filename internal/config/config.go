package config

import (
	"time"
)

// Config is the top-level configuration container for the daybook client.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, an optional JSON file,
// and built-in defaults (in that priority order, first non-zero value wins).
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type Config struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds network settings for the sync service transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds scheduling settings for the background sync engine.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values already
	// loaded from environment variables and flags.
	// Populated via the DAYBOOK_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level client settings.
type App struct {
	// LogToFile redirects log output to a file next to the executable so it
	// does not fight the terminal UI.
	// Env: DAYBOOK_APP_LOG_TO_FILE
	LogToFile bool `env:"LOG_TO_FILE"`

	// CopySyncID makes the client copy the configured sync id to the system
	// clipboard and exit, for pairing a second device. Flag-only.
	CopySyncID bool `env:"-"`
}

// Storage holds local database settings for the client.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite data source name (file path or file: URI).
	// Env: DAYBOOK_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds network settings used by the sync transport layer.
type Adapter struct {
	// ServerURL is the base URL of the remote sync service. Optional; the
	// persisted sync configuration takes precedence once a device is
	// connected.
	// Env: DAYBOOK_ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout is the per-request timeout for outbound sync calls
	// (e.g. "15s"). A hung connection can never wedge the scheduler longer
	// than this.
	// Env: DAYBOOK_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds scheduling settings for the background sync engine.
type Sync struct {
	// PushDebounce is how long the scheduler waits after the last local
	// mutation before pushing; rapid successive edits collapse into one push.
	// Env: DAYBOOK_SYNC_PUSH_DEBOUNCE
	PushDebounce time.Duration `env:"PUSH_DEBOUNCE"`

	// PullInterval is the cadence of the periodic pull while foregrounded.
	// Env: DAYBOOK_SYNC_PULL_INTERVAL
	PullInterval time.Duration `env:"PULL_INTERVAL"`

	// PageLimit bounds the number of entries requested per pull page.
	// Env: DAYBOOK_SYNC_PAGE_LIMIT
	PageLimit int `env:"PAGE_LIMIT"`
}

// Get loads, merges, and validates the client configuration from all
// available sources in the following priority order (first non-zero field
// wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func Get() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// defaults returns the built-in base configuration merged beneath all other
// sources.
func defaults() *Config {
	return &Config{
		Storage: Storage{
			DB: DB{DSN: "daybook.db"},
		},
		Adapter: Adapter{
			RequestTimeout: 15 * time.Second,
		},
		Sync: Sync{
			PushDebounce: 3 * time.Second,
			PullInterval: 30 * time.Second,
			PageLimit:    500,
		},
	}
}
