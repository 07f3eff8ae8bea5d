package service

import (
	"context"

	"github.com/daybook-app/daybook/internal/store"
	"github.com/daybook-app/daybook/models"
)

//go:generate mockgen -destination=../mock/sync_session_mock.go -package=mock github.com/daybook-app/daybook/internal/service SyncSession

// EntryCodec converts between plaintext entries and the encrypted envelopes
// exchanged with the sync server.
type EntryCodec interface {
	// EncryptEntry serializes entry into its canonical payload, encrypts it
	// with key and returns the envelope ready for upload.
	EncryptEntry(key []byte, entry models.Entry) (models.SyncEntry, error)
	// DecryptEntry opens an envelope received from the server. Tombstones are
	// returned without touching the (absent) payload.
	DecryptEntry(key []byte, envelope models.SyncEntry) (models.DecryptedEntry, error)
	// Tombstone builds a deletion envelope for the given entry id.
	Tombstone(id string, updatedAt int64) models.SyncEntry
}

// MergeStore is the slice of local storage the merge engine writes through.
type MergeStore interface {
	store.EntryRepository
	store.SearchIndexRepository
}

// Merger folds batches of decrypted remote entries into local storage.
type Merger interface {
	// MergeRemoteEntries applies a batch of remote entries using
	// last-write-wins and returns the number of local changes made.
	MergeRemoteEntries(ctx context.Context, batch []models.DecryptedEntry) (int, error)
}

// SyncSession owns the connection to a sync account and runs the push, pull
// and full-sync operations against it. At most one operation runs at a time.
type SyncSession interface {
	// Restore loads a previously saved sync configuration from local storage
	// and re-derives the key material. No-op when no account is configured.
	Restore(ctx context.Context) error
	// Connect pairs this device with the account identified by syncID,
	// creating the account on the server if it does not exist yet, and runs
	// an initial full sync.
	Connect(ctx context.Context, syncID, serverURL string) error
	// Disconnect switches back to local-only mode. Local entries are kept.
	Disconnect(ctx context.Context) error
	// DeleteAccount removes the account and all its data from the server,
	// then disconnects.
	DeleteAccount(ctx context.Context) error

	// Push uploads pending local changes. When forced is true every local
	// entry is uploaded regardless of the dirty set.
	Push(ctx context.Context, forced bool) error
	// Pull downloads remote changes since the last sync cursor and merges
	// them. Returns the number of local changes made.
	Pull(ctx context.Context) (int, error)
	// FullSync exchanges the complete local state for the complete merged
	// server state.
	FullSync(ctx context.Context) error

	// MarkDirty records a local edit for the next debounced push.
	MarkDirty(id string)
	// MarkDeleted records a local deletion for the next debounced push.
	MarkDeleted(id string)

	Status() models.SyncStatus
	Config() models.SyncConfig
}

// SyncScheduler drives a SyncSession in the background: debounced pushes
// after local edits and periodic pulls while the app is in the foreground.
type SyncScheduler interface {
	Start(ctx context.Context)
	Stop()
	// SetForeground tells the scheduler whether the app is visible. Interval
	// pulls are suppressed in the background; regaining the foreground
	// triggers an immediate pull.
	SetForeground(foreground bool)
	// SyncNow runs a forced push followed by a pull.
	SyncNow(ctx context.Context) error
}
