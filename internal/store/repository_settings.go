package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/models"
)

// syncConfigKey is the fixed settings-table key under which the sync
// configuration blob is persisted.
const syncConfigKey = "sync.config"

type settingsRepository struct {
	*DB
	logger *logger.Logger
}

// NewSettingsRepository constructs the settings-table repository.
func NewSettingsRepository(db *DB, log *logger.Logger) *settingsRepository {
	return &settingsRepository{DB: db, logger: log}
}

func (r *settingsRepository) LoadSyncConfig(ctx context.Context) (models.SyncConfig, error) {
	query, args, err := buildSelectSettingQuery(syncConfigKey)
	if err != nil {
		return models.SyncConfig{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SyncConfig{}, ErrSyncConfigNotFound
		}
		return models.SyncConfig{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var cfg models.SyncConfig
	if err = json.Unmarshal([]byte(value), &cfg); err != nil {
		return models.SyncConfig{}, fmt.Errorf("decode sync config: %w", err)
	}

	return cfg, nil
}

func (r *settingsRepository) SaveSyncConfig(ctx context.Context, cfg models.SyncConfig) error {
	value, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode sync config: %w", err)
	}

	query, args, err := buildUpsertSettingQuery(syncConfigKey, string(value))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Msg("failed to persist sync config")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
