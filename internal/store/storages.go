package store

import (
	"context"

	"github.com/daybook-app/daybook/internal/config"
	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/models"
)

// Storages bundles the SQLite-backed repositories and the store event bus
// into the [LocalStore] the sync engine consumes.
type Storages struct {
	*entryRepository
	*settingsRepository

	events *EventBus
}

// NewStorages opens the local database, applies migrations, and wires the
// repositories together.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		entryRepository:    NewEntryRepository(db, log),
		settingsRepository: NewSettingsRepository(db, log),
		events:             NewEventBus(),
	}, nil
}

// Events implements [LocalStore].
func (s *Storages) Events() *EventBus {
	return s.events
}

// SaveLocalEdit persists a locally edited entry and notifies observers.
// This is the write path used by the editor; remote merges go through
// SaveEntry directly so they do not re-mark the record dirty.
func (s *Storages) SaveLocalEdit(ctx context.Context, entry models.Entry) error {
	if err := s.SaveEntry(ctx, entry); err != nil {
		return err
	}

	s.events.Publish(EntryChanged{ID: entry.ID})
	return nil
}

// DeleteLocalEntry removes a locally deleted entry and its search document,
// then notifies observers so the deletion is tombstoned on the next push.
func (s *Storages) DeleteLocalEntry(ctx context.Context, id string) error {
	if err := s.DeleteEntry(ctx, id); err != nil {
		return err
	}
	if err := s.DeleteSearchIndex(ctx, id); err != nil {
		return err
	}

	s.events.Publish(EntryDeleted{ID: id})
	return nil
}
