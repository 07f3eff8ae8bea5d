package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/daybook-app/daybook/internal/crypto"
	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/models"
)

type entryCodec struct {
	keychain crypto.KeyChainService
	logger   *logger.Logger
}

// NewEntryCodec returns a codec backed by the given keychain.
func NewEntryCodec(keychain crypto.KeyChainService, log *logger.Logger) EntryCodec {
	return &entryCodec{keychain: keychain, logger: log}
}

func (c *entryCodec) EncryptEntry(key []byte, entry models.Entry) (models.SyncEntry, error) {
	plaintext, err := json.Marshal(canonicalPayload(entry))
	if err != nil {
		return models.SyncEntry{}, fmt.Errorf("marshal entry payload %s: %w", entry.ID, err)
	}

	blob, err := c.keychain.Seal(key, plaintext)
	if err != nil {
		return models.SyncEntry{}, fmt.Errorf("encrypt entry %s: %w", entry.ID, err)
	}

	return models.SyncEntry{
		ID:               entry.ID,
		UpdatedAt:        entry.UpdatedAt,
		IsArchived:       entry.Archived,
		EncryptedPayload: blob,
		IntegrityHash:    digest(plaintext),
	}, nil
}

func (c *entryCodec) DecryptEntry(key []byte, envelope models.SyncEntry) (models.DecryptedEntry, error) {
	if envelope.IsDeleted {
		return models.DecryptedEntry{
			Entry:     models.Entry{ID: envelope.ID, UpdatedAt: envelope.UpdatedAt},
			IsDeleted: true,
		}, nil
	}

	plaintext, err := c.keychain.Open(key, envelope.EncryptedPayload)
	if err != nil {
		return models.DecryptedEntry{}, fmt.Errorf("decrypt entry %s: %w", envelope.ID, err)
	}

	// The AEAD tag already authenticated the payload. A stale digest only
	// indicates the sender computed it over a different serialization, so it
	// is logged and the entry is kept.
	if envelope.IntegrityHash != "" && envelope.IntegrityHash != digest(plaintext) {
		c.logger.Warn().Str("entry_id", envelope.ID).Msg("integrity hash mismatch, keeping authenticated payload")
	}

	var payload models.EntryPayload
	if err = json.Unmarshal(plaintext, &payload); err != nil {
		return models.DecryptedEntry{}, fmt.Errorf("unmarshal entry payload %s: %w", envelope.ID, err)
	}

	return models.DecryptedEntry{Entry: payloadToEntry(envelope.ID, payload)}, nil
}

func (c *entryCodec) Tombstone(id string, updatedAt int64) models.SyncEntry {
	return models.SyncEntry{ID: id, UpdatedAt: updatedAt, IsDeleted: true}
}

func canonicalPayload(entry models.Entry) models.EntryPayload {
	return models.EntryPayload{
		Day:       entry.Day,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
		Blocks:    entry.Blocks,
		Archived:  entry.Archived,
		Tags:      entry.Tags,
		Pinned:    entry.Pinned,
		Signifier: entry.Signifier,
	}
}

func payloadToEntry(id string, payload models.EntryPayload) models.Entry {
	return models.Entry{
		ID:        id,
		Day:       payload.Day,
		CreatedAt: payload.CreatedAt,
		UpdatedAt: payload.UpdatedAt,
		Blocks:    payload.Blocks,
		Archived:  payload.Archived,
		Tags:      payload.Tags,
		Pinned:    payload.Pinned,
		Signifier: payload.Signifier,
	}
}

func digest(plaintext []byte) string {
	sum := sha256.Sum256(plaintext)
	return hex.EncodeToString(sum[:])
}
