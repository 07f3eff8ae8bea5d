// Package adapter implements the HTTP client for the remote sync service.
//
// The wire contract is JSON over HTTPS. Every authenticated request carries
// the X-Auth-Token header; the token is a deterministic digest of the user's
// sync id, derived by the keychain, so the server never learns anything that
// could decrypt payloads.
package adapter

import (
	"context"

	"github.com/daybook-app/daybook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sync_server_mock.go -package=mock

// SyncServer is the engine's view of the remote sync service.
type SyncServer interface {
	// SetToken stores the auth token used by all subsequent authenticated
	// requests.
	SetToken(token string)

	// Token returns the auth token currently held by the adapter, or an
	// empty string if none has been set.
	Token() string

	// CreateAccount registers a new account for the configured token and
	// returns the server-generated key-derivation salt.
	CreateAccount(ctx context.Context) (salt string, err error)

	// ValidateAccount checks the account behind the configured token and
	// returns its metadata, including the salt a reconnecting device needs
	// to re-derive its key.
	ValidateAccount(ctx context.Context) (models.ValidateAccountResponse, error)

	// DeleteAccount removes the account and all its entries from the server.
	DeleteAccount(ctx context.Context) error

	// Push uploads a batch of encrypted envelopes and returns the server's
	// acknowledgement with its new sequence counter.
	Push(ctx context.Context, entries []models.SyncEntry) (models.PushResponse, error)

	// Pull requests one page of entries with serverSeq greater than since,
	// bounded by limit.
	Pull(ctx context.Context, since int64, limit int) (models.PullResponse, error)

	// FullSync uploads the device's entire entry set and receives the
	// server's merged superset back. Used on first connect.
	FullSync(ctx context.Context, entries []models.SyncEntry) (models.FullSyncResponse, error)
}
