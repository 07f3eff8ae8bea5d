package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/internal/store"
	"github.com/daybook-app/daybook/internal/validators"
	"github.com/daybook-app/daybook/models"
)

type mergeEngine struct {
	store     MergeStore
	validator validators.Validator
	logger    *logger.Logger
}

// NewMergeEngine returns a Merger that applies remote batches to the given
// store using last-write-wins resolution.
func NewMergeEngine(mergeStore MergeStore, validator validators.Validator, log *logger.Logger) Merger {
	return &mergeEngine{store: mergeStore, validator: validator, logger: log}
}

// MergeRemoteEntries implements Merger.
//
// Tombstones always win: a remote deletion removes the local entry no matter
// which side is newer. Content entries overwrite only when the remote copy is
// strictly newer than the local one, so on equal timestamps the local copy
// stays. Entries that fail validation are skipped individually and never
// abort the batch.
func (m *mergeEngine) MergeRemoteEntries(ctx context.Context, batch []models.DecryptedEntry) (int, error) {
	changed := 0

	for _, remote := range batch {
		if remote.Tombstone() {
			applied, err := m.applyTombstone(ctx, remote.ID)
			if err != nil {
				return changed, err
			}
			if applied {
				changed++
			}
			continue
		}

		if err := m.validator.Validate(ctx, remote.Entry); err != nil {
			m.logger.Warn().Err(err).Str("entry_id", remote.ID).Msg("skipping invalid remote entry")
			continue
		}

		local, err := m.store.GetEntry(ctx, remote.ID)
		exists := true
		if err != nil {
			if !errors.Is(err, store.ErrEntryNotFound) {
				return changed, fmt.Errorf("load local entry %s: %w", remote.ID, err)
			}
			exists = false
		}

		if exists && remote.UpdatedAt <= local.UpdatedAt {
			continue
		}

		if err = m.store.SaveEntry(ctx, remote.Entry); err != nil {
			return changed, fmt.Errorf("save remote entry %s: %w", remote.ID, err)
		}
		if remote.Entry.HasContent() {
			if err = m.store.UpdateSearchIndex(ctx, searchDoc(remote.Entry)); err != nil {
				return changed, fmt.Errorf("update search index for %s: %w", remote.ID, err)
			}
		}
		changed++
	}

	return changed, nil
}

func (m *mergeEngine) applyTombstone(ctx context.Context, id string) (bool, error) {
	if _, err := m.store.GetEntry(ctx, id); err != nil {
		if errors.Is(err, store.ErrEntryNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("load local entry %s: %w", id, err)
	}

	if err := m.store.DeleteEntry(ctx, id); err != nil {
		return false, fmt.Errorf("delete local entry %s: %w", id, err)
	}
	if err := m.store.DeleteSearchIndex(ctx, id); err != nil {
		return false, fmt.Errorf("delete search index for %s: %w", id, err)
	}

	return true, nil
}

func searchDoc(entry models.Entry) models.SearchDoc {
	return models.SearchDoc{
		EntryID: entry.ID,
		Day:     entry.Day,
		Blocks:  entry.Blocks,
		Tags:    entry.Tags,
	}
}
