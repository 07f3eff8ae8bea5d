package config

// validate checks that the final merged [Config] satisfies all client
// invariants before it is used at startup. Defaults are merged beneath
// every other source, so a failure here means a source explicitly set an
// unusable value.
func (cfg *Config) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.PushDebounce <= 0 || cfg.Sync.PullInterval <= 0 || cfg.Sync.PageLimit <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
