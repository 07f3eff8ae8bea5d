package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d local database path (SQLite DSN)
//	-server sync server base URL
//	-request-timeout per-request timeout (e.g., "15s")
//	-push-debounce push debounce after local edits (e.g., "3s")
//	-pull-interval periodic pull cadence (e.g., "30s")
//	-page-limit max entries per pull page
//	-log-to-file write logs to a file next to the executable
//	-copy-sync-id copy the configured sync id to the clipboard and exit
//	-c/-config json file path with configs
func ParseFlags() *Config {
	var dsn string
	var serverURL string
	var requestTimeout time.Duration
	var pushDebounce time.Duration
	var pullInterval time.Duration
	var pageLimit int
	var logToFile bool
	var copySyncID bool
	var jsonConfigPath string

	flag.StringVar(&dsn, "d", "", "Local database path (SQLite DSN)")
	flag.StringVar(&serverURL, "server", "", "Sync server base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.DurationVar(&pushDebounce, "push-debounce", 0, "Push debounce (e.g., 3s)")
	flag.DurationVar(&pullInterval, "pull-interval", 0, "Pull interval (e.g., 30s)")
	flag.IntVar(&pageLimit, "page-limit", 0, "Max entries per pull page")
	flag.BoolVar(&logToFile, "log-to-file", false, "Write logs to a file next to the executable")
	flag.BoolVar(&copySyncID, "copy-sync-id", false, "Copy the sync id to the clipboard and exit")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &Config{
		App: App{
			LogToFile:  logToFile,
			CopySyncID: copySyncID,
		},
		Storage: Storage{
			DB: DB{
				DSN: dsn,
			},
		},
		Adapter: Adapter{
			ServerURL:      serverURL,
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			PushDebounce: pushDebounce,
			PullInterval: pullInterval,
			PageLimit:    pageLimit,
		},
		JSONFilePath: jsonConfigPath,
	}
}
