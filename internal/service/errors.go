package service

import "errors"

var (
	// ErrSyncBusy is returned when a sync operation is requested while
	// another one is still running. Callers are expected to retry later.
	ErrSyncBusy = errors.New("another sync operation is in progress")
	// ErrNotConnected is returned by sync operations while the app runs in
	// local-only mode.
	ErrNotConnected = errors.New("sync is not configured")
	// ErrEmptySyncID is returned by Connect when no sync ID was provided.
	ErrEmptySyncID = errors.New("sync ID is empty")
)
