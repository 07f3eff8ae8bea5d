// Package store implements the local journal record store on SQLite: the
// entries table with day/tag indexes, the derived search-index projection,
// and the settings table that persists the sync configuration blob. It also
// carries the typed event channel the sync scheduler consumes.
package store

import (
	"context"

	"github.com/daybook-app/daybook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EntryRepository is the record-table contract consumed by the sync engine.
// The engine reacts to records; it never originates mutations itself.
type EntryRepository interface {
	// GetEntry loads a single entry by id. Returns [ErrEntryNotFound] if no
	// such entry exists.
	GetEntry(ctx context.Context, id string) (models.Entry, error)

	// GetAllEntries loads every entry in the store.
	GetAllEntries(ctx context.Context) ([]models.Entry, error)

	// GetEntriesUpdatedSince loads entries whose updatedAt strictly exceeds
	// since (Unix milliseconds). Used for the periodic catch-up push.
	GetEntriesUpdatedSince(ctx context.Context, since int64) ([]models.Entry, error)

	// SaveEntry inserts or replaces the entry by id.
	SaveEntry(ctx context.Context, entry models.Entry) error

	// DeleteEntry removes the entry by id. Deleting an absent entry returns
	// [ErrEntryNotFound].
	DeleteEntry(ctx context.Context, id string) error
}

// SearchIndexRepository maintains the derived search projection of entries.
type SearchIndexRepository interface {
	// UpdateSearchIndex inserts or replaces the search document for an entry.
	UpdateSearchIndex(ctx context.Context, doc models.SearchDoc) error

	// DeleteSearchIndex removes the search document for an entry id.
	// Removing an absent document is a no-op.
	DeleteSearchIndex(ctx context.Context, entryID string) error
}

// SettingsRepository persists small configuration blobs in the generic
// settings table, keyed by a fixed string.
type SettingsRepository interface {
	// LoadSyncConfig reads the persisted sync configuration. Returns
	// [ErrSyncConfigNotFound] when the device has never been configured.
	LoadSyncConfig(ctx context.Context) (models.SyncConfig, error)

	// SaveSyncConfig writes the sync configuration blob.
	SaveSyncConfig(ctx context.Context, cfg models.SyncConfig) error
}

// LocalStore bundles every local persistence concern the engine needs.
type LocalStore interface {
	EntryRepository
	SearchIndexRepository
	SettingsRepository

	// Events returns the store's event bus. The sync scheduler subscribes to
	// it for record-changed and record-deleted notifications.
	Events() *EventBus
}
