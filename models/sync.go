package models

// SyncMode selects whether the device keeps its journal local-only or
// synchronises it with a remote sync service.
type SyncMode string

const (
	SyncModeLocal  SyncMode = "local"
	SyncModeRemote SyncMode = "remote"
)

// SyncConfig is the per-device sync configuration, persisted as a single
// JSON blob in the local settings table.
//
// Invariant: SyncID and Salt are both present or both absent. Remote mode
// without both is an incomplete state and must be treated as not connected.
// LastSyncSeq never decreases for a given SyncID.
type SyncConfig struct {
	Mode        SyncMode `json:"mode"`
	SyncID      string   `json:"syncId,omitempty"`
	Salt        string   `json:"salt,omitempty"`
	ServerURL   string   `json:"serverUrl,omitempty"`
	LastSyncSeq int64    `json:"lastSyncSeq"`
	LastSyncAt  int64    `json:"lastSyncAt,omitempty"`
}

// Connected reports whether the config describes a fully established remote
// account: remote mode with both the sync id and the server-issued salt.
func (c SyncConfig) Connected() bool {
	return c.Mode == SyncModeRemote && c.SyncID != "" && c.Salt != ""
}

// SyncEntry is the wire envelope carrying one record per sync operation.
// The payload is opaque ciphertext; the server never sees plaintext.
//
// A SyncEntry with IsDeleted set is a tombstone and carries no payload.
// ServerSeq is assigned by the server and absent on the way up.
type SyncEntry struct {
	ID               string `json:"id"`
	UpdatedAt        int64  `json:"updatedAt"`
	IsArchived       bool   `json:"isArchived"`
	IsDeleted        bool   `json:"isDeleted"`
	EncryptedPayload string `json:"encryptedPayload,omitempty"`
	IntegrityHash    string `json:"integrityHash,omitempty"`
	ServerSeq        int64  `json:"serverSeq,omitempty"`
}

// EntryPayload is the canonical plaintext payload of a sync envelope: the
// fixed field set that is serialised, digested, and encrypted. The field
// order is fixed by the struct definition and must not change without a
// protocol revision, because the integrity digest is computed over the
// serialised bytes.
type EntryPayload struct {
	Day       string   `json:"day"`
	CreatedAt int64    `json:"createdAt"`
	UpdatedAt int64    `json:"updatedAt"`
	Blocks    []Block  `json:"blocks"`
	Archived  bool     `json:"archived"`
	Tags      []string `json:"tags"`
	Pinned    bool     `json:"pinned"`
	Signifier string   `json:"signifier,omitempty"`
}

// DecryptedEntry is the ephemeral plaintext projection of a sync envelope.
// It is never persisted as-is: the merge engine either writes its entry
// projection into the local store or discards it.
type DecryptedEntry struct {
	Entry
	IsDeleted bool
}

// Tombstone reports whether the decrypted entry marks a deletion.
func (d DecryptedEntry) Tombstone() bool {
	return d.IsDeleted
}
