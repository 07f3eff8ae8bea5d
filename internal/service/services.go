// Package service implements the sync engine: the entry codec that encrypts
// records for transport, the last-write-wins merge engine, the session that
// runs push/pull/full-sync against the server, and the scheduler that drives
// the session in the background.
package service

import (
	"github.com/daybook-app/daybook/internal/config"
	"github.com/daybook-app/daybook/internal/crypto"
	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/internal/store"
	"github.com/daybook-app/daybook/internal/validators"
)

// Services bundles every sync engine component for app wiring.
type Services struct {
	Codec     EntryCodec
	Merger    Merger
	Session   SyncSession
	Scheduler SyncScheduler
}

func NewServices(localStore store.LocalStore, keychain crypto.KeyChainService, cfg *config.Config, log *logger.Logger) *Services {
	codec := NewEntryCodec(keychain, log)
	merger := NewMergeEngine(localStore, validators.NewEntryValidator(), log)
	session := NewSyncSession(localStore, keychain, merger, codec, cfg.Sync, cfg.Adapter, log)

	return &Services{
		Codec:     codec,
		Merger:    merger,
		Session:   session,
		Scheduler: NewSyncScheduler(session, localStore.Events(), cfg.Sync, log),
	}
}
