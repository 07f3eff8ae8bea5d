package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/daybook-app/daybook/internal/adapter"
	"github.com/daybook-app/daybook/internal/config"
	"github.com/daybook-app/daybook/internal/crypto"
	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/internal/store"
	"github.com/daybook-app/daybook/models"
)

// ServerFactory builds a sync server client for a base URL. Injected so
// tests can substitute a mock without an HTTP round trip.
type ServerFactory func(baseURL string) (adapter.SyncServer, error)

type syncSession struct {
	localStore store.LocalStore
	codec      EntryCodec
	keychain   crypto.KeyChainService
	merger     Merger
	newServer  ServerFactory
	pageLimit  int
	logger     *logger.Logger

	// op serializes push, pull and full sync. Taken with TryLock so a
	// colliding caller gets ErrSyncBusy instead of queueing up.
	op sync.Mutex

	// mu guards the connection state and the status snapshot.
	mu     sync.RWMutex
	cfg    models.SyncConfig
	key    []byte
	server adapter.SyncServer
	status models.SyncStatus

	// setMu guards the dirty and deleted id sets.
	setMu   sync.Mutex
	dirty   map[string]struct{}
	deleted map[string]struct{}

	now func() int64
}

// NewSyncSession wires a session over the local store and the remote sync
// service. Call Restore before first use to pick up a saved configuration.
func NewSyncSession(localStore store.LocalStore, keychain crypto.KeyChainService, merger Merger, codec EntryCodec, cfg config.Sync, adapterCfg config.Adapter, log *logger.Logger) SyncSession {
	return &syncSession{
		localStore: localStore,
		codec:      codec,
		keychain:   keychain,
		merger:     merger,
		newServer: func(baseURL string) (adapter.SyncServer, error) {
			return adapter.NewHTTPSyncServer(adapter.HTTPClientConfig{BaseURL: baseURL, Timeout: adapterCfg.RequestTimeout})
		},
		pageLimit: cfg.PageLimit,
		logger:    log,
		cfg:       models.SyncConfig{Mode: models.SyncModeLocal},
		status:    models.SyncStatus{Phase: models.PhaseIdle},
		dirty:     make(map[string]struct{}),
		deleted:   make(map[string]struct{}),
		now:       func() int64 { return time.Now().UnixMilli() },
	}
}

// Restore implements SyncSession.
func (s *syncSession) Restore(ctx context.Context) error {
	cfg, err := s.localStore.LoadSyncConfig(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSyncConfigNotFound) {
			return nil
		}
		return fmt.Errorf("load sync config: %w", err)
	}

	if !cfg.Connected() {
		s.mu.Lock()
		s.cfg = cfg
		s.mu.Unlock()
		return nil
	}

	key, err := s.keychain.DeriveKey(cfg.SyncID, cfg.Salt)
	if err != nil {
		return fmt.Errorf("re-derive key: %w", err)
	}

	server, err := s.newServer(cfg.ServerURL)
	if err != nil {
		return fmt.Errorf("build sync server client: %w", err)
	}
	server.SetToken(s.keychain.AuthToken(cfg.SyncID))

	s.mu.Lock()
	s.cfg = cfg
	s.key = key
	s.server = server
	s.status.LastSyncAt = cfg.LastSyncAt
	s.mu.Unlock()

	s.logger.Info().Str("server", cfg.ServerURL).Msg("restored sync session")
	return nil
}

// Connect implements SyncSession.
func (s *syncSession) Connect(ctx context.Context, syncID, serverURL string) error {
	if syncID == "" {
		return ErrEmptySyncID
	}
	if !s.op.TryLock() {
		return ErrSyncBusy
	}
	defer s.op.Unlock()

	server, err := s.newServer(serverURL)
	if err != nil {
		return fmt.Errorf("build sync server client: %w", err)
	}
	server.SetToken(s.keychain.AuthToken(syncID))

	salt, err := s.resolveSalt(ctx, server)
	if err != nil {
		s.fail(err)
		return err
	}

	key, err := s.keychain.DeriveKey(syncID, salt)
	if err != nil {
		s.fail(err)
		return fmt.Errorf("derive key: %w", err)
	}

	cfg := models.SyncConfig{
		Mode:      models.SyncModeRemote,
		SyncID:    syncID,
		Salt:      salt,
		ServerURL: serverURL,
	}
	if err = s.localStore.SaveSyncConfig(ctx, cfg); err != nil {
		s.fail(err)
		return fmt.Errorf("save sync config: %w", err)
	}

	s.mu.Lock()
	s.cfg = cfg
	s.key = key
	s.server = server
	s.mu.Unlock()

	s.logger.Info().Str("server", serverURL).Msg("connected sync account")

	if err = s.fullSyncLocked(ctx); err != nil {
		return err
	}
	return nil
}

// resolveSalt validates the account behind the adapter's token and returns
// its salt, creating the account when the server does not know the token.
func (s *syncSession) resolveSalt(ctx context.Context, server adapter.SyncServer) (string, error) {
	info, err := server.ValidateAccount(ctx)
	switch {
	case errors.Is(err, adapter.ErrAccountNotFound):
	case err != nil:
		return "", fmt.Errorf("validate account: %w", err)
	case info.Valid:
		return info.Salt, nil
	}

	salt, err := server.CreateAccount(ctx)
	if err != nil {
		return "", fmt.Errorf("create account: %w", err)
	}
	return salt, nil
}

// Disconnect implements SyncSession. Local entries are untouched; only the
// sync configuration and in-memory key material are dropped.
func (s *syncSession) Disconnect(ctx context.Context) error {
	cfg := models.SyncConfig{Mode: models.SyncModeLocal}
	if err := s.localStore.SaveSyncConfig(ctx, cfg); err != nil {
		return fmt.Errorf("save sync config: %w", err)
	}

	s.mu.Lock()
	s.cfg = cfg
	s.key = nil
	s.server = nil
	s.status = models.SyncStatus{Phase: models.PhaseIdle}
	s.mu.Unlock()

	s.setMu.Lock()
	s.dirty = make(map[string]struct{})
	s.deleted = make(map[string]struct{})
	s.setMu.Unlock()

	s.logger.Info().Msg("disconnected sync account")
	return nil
}

// DeleteAccount implements SyncSession.
func (s *syncSession) DeleteAccount(ctx context.Context) error {
	_, server, _, err := s.connection()
	if err != nil {
		return err
	}
	if err = server.DeleteAccount(ctx); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return s.Disconnect(ctx)
}

// Push implements SyncSession.
func (s *syncSession) Push(ctx context.Context, forced bool) error {
	if !s.op.TryLock() {
		return ErrSyncBusy
	}
	defer s.op.Unlock()
	return s.pushLocked(ctx, forced)
}

func (s *syncSession) pushLocked(ctx context.Context, forced bool) error {
	cfg, server, key, err := s.connection()
	if err != nil {
		return err
	}

	dirty, deleted := s.snapshotPending()

	entries, err := s.collectPush(ctx, cfg, key, forced, dirty, deleted)
	if err != nil {
		s.fail(err)
		return err
	}
	if len(entries) == 0 {
		// Dirty ids can resolve to nothing when the entry was deleted but
		// the deletion event was lost; drop them so they do not count as
		// pending forever.
		s.clearPending(dirty, deleted)
		return nil
	}

	s.setPhase(models.PhasePushing)

	resp, err := server.Push(ctx, entries)
	if err != nil {
		s.fail(err)
		return fmt.Errorf("push %d entries: %w", len(entries), err)
	}
	// With conflicts the server holds newer copies this device has not seen;
	// holding the cursor back makes the next pull fetch them.
	cursor := resp.ServerSeq
	for _, c := range resp.Conflicts {
		cursor = 0
		s.logger.Warn().Str("entry_id", c.ID).Int64("server_updated_at", c.ServerUpdatedAt).Msg("push conflict, server copy is newer")
	}

	now := s.now()
	if err = s.advanceCursor(ctx, cursor, now); err != nil {
		s.fail(err)
		return err
	}
	s.clearPending(dirty, deleted)
	s.settle(now)
	if n := len(resp.Conflicts); n > 0 {
		s.setNotice(fmt.Sprintf("%d entries have newer copies on the server, pulling them next sync", n))
	}

	s.logger.Info().Int("pushed", len(entries)).Int("accepted", resp.Accepted).Msg("push complete")
	return nil
}

// collectPush assembles the upload batch: the dirty set when it is
// non-empty, every entry on a forced push, and otherwise an updatedAt sweep
// that catches edits whose change events were lost. Tombstones are appended
// last.
func (s *syncSession) collectPush(ctx context.Context, cfg models.SyncConfig, key []byte, forced bool, dirty, deleted map[string]struct{}) ([]models.SyncEntry, error) {
	var (
		locals []models.Entry
		err    error
	)
	switch {
	case len(dirty) > 0:
		locals = make([]models.Entry, 0, len(dirty))
		for id := range dirty {
			entry, getErr := s.localStore.GetEntry(ctx, id)
			if errors.Is(getErr, store.ErrEntryNotFound) {
				continue
			}
			if getErr != nil {
				return nil, fmt.Errorf("load dirty entry %s: %w", id, getErr)
			}
			locals = append(locals, entry)
		}
	case forced:
		locals, err = s.localStore.GetAllEntries(ctx)
	default:
		locals, err = s.localStore.GetEntriesUpdatedSince(ctx, cfg.LastSyncAt)
	}
	if err != nil {
		return nil, fmt.Errorf("collect entries for push: %w", err)
	}

	entries := make([]models.SyncEntry, 0, len(locals)+len(deleted))
	for _, entry := range locals {
		if _, gone := deleted[entry.ID]; gone {
			continue
		}
		envelope, encErr := s.codec.EncryptEntry(key, entry)
		if encErr != nil {
			return nil, encErr
		}
		entries = append(entries, envelope)
	}
	for id := range deleted {
		entries = append(entries, s.codec.Tombstone(id, s.now()))
	}
	return entries, nil
}

// Pull implements SyncSession.
func (s *syncSession) Pull(ctx context.Context) (int, error) {
	if !s.op.TryLock() {
		return 0, ErrSyncBusy
	}
	defer s.op.Unlock()
	return s.pullLocked(ctx)
}

func (s *syncSession) pullLocked(ctx context.Context) (int, error) {
	cfg, server, key, err := s.connection()
	if err != nil {
		return 0, err
	}

	s.setPhase(models.PhasePulling)

	cursor := cfg.LastSyncSeq
	merged := 0
	for {
		page, pullErr := server.Pull(ctx, cursor, s.pageLimit)
		if pullErr != nil {
			s.fail(pullErr)
			return merged, fmt.Errorf("pull since %d: %w", cursor, pullErr)
		}

		if len(page.Entries) > 0 {
			s.setPhase(models.PhaseMerging)
			n, mergeErr := s.mergePage(ctx, key, page.Entries)
			if mergeErr != nil {
				s.fail(mergeErr)
				return merged, mergeErr
			}
			merged += n
			s.setPhase(models.PhasePulling)
		}

		for _, e := range page.Entries {
			if e.ServerSeq > cursor {
				cursor = e.ServerSeq
			}
		}
		if !page.HasMore {
			if page.ServerSeq > cursor {
				cursor = page.ServerSeq
			}
			break
		}
	}

	now := s.now()
	if err = s.advanceCursor(ctx, cursor, now); err != nil {
		s.fail(err)
		return merged, err
	}
	s.settle(now)

	if merged > 0 {
		s.localStore.Events().Publish(store.StoreRefreshed{})
	}
	s.logger.Info().Int("merged", merged).Int64("cursor", cursor).Msg("pull complete")
	return merged, nil
}

// mergePage decrypts one page and merges it. Envelopes that fail to decrypt
// are skipped individually so one corrupt record cannot wedge the sync.
func (s *syncSession) mergePage(ctx context.Context, key []byte, envelopes []models.SyncEntry) (int, error) {
	batch := make([]models.DecryptedEntry, 0, len(envelopes))
	for _, envelope := range envelopes {
		entry, err := s.codec.DecryptEntry(key, envelope)
		if err != nil {
			s.logger.Warn().Err(err).Str("entry_id", envelope.ID).Msg("skipping undecryptable remote entry")
			continue
		}
		batch = append(batch, entry)
	}
	return s.merger.MergeRemoteEntries(ctx, batch)
}

// FullSync implements SyncSession.
func (s *syncSession) FullSync(ctx context.Context) error {
	if !s.op.TryLock() {
		return ErrSyncBusy
	}
	defer s.op.Unlock()
	return s.fullSyncLocked(ctx)
}

func (s *syncSession) fullSyncLocked(ctx context.Context) error {
	_, server, key, err := s.connection()
	if err != nil {
		return err
	}

	s.setPhase(models.PhasePushing)

	locals, err := s.localStore.GetAllEntries(ctx)
	if err != nil {
		s.fail(err)
		return fmt.Errorf("load local entries: %w", err)
	}
	upload := make([]models.SyncEntry, 0, len(locals))
	for _, entry := range locals {
		envelope, encErr := s.codec.EncryptEntry(key, entry)
		if encErr != nil {
			s.fail(encErr)
			return encErr
		}
		upload = append(upload, envelope)
	}

	resp, err := server.FullSync(ctx, upload)
	if err != nil {
		s.fail(err)
		return fmt.Errorf("full sync: %w", err)
	}

	s.setPhase(models.PhaseMerging)

	merged, err := s.mergePage(ctx, key, resp.Entries)
	if err != nil {
		s.fail(err)
		return err
	}

	now := s.now()
	if err = s.advanceCursor(ctx, resp.ServerSeq, now); err != nil {
		s.fail(err)
		return err
	}
	s.setMu.Lock()
	s.dirty = make(map[string]struct{})
	s.deleted = make(map[string]struct{})
	s.setMu.Unlock()
	s.settle(now)

	if merged > 0 {
		s.localStore.Events().Publish(store.StoreRefreshed{})
	}
	s.logger.Info().Int("uploaded", len(upload)).Int("merged", merged).Msg("full sync complete")
	return nil
}

// MarkDirty implements SyncSession.
func (s *syncSession) MarkDirty(id string) {
	s.setMu.Lock()
	defer s.setMu.Unlock()
	s.dirty[id] = struct{}{}
	delete(s.deleted, id)
}

// MarkDeleted implements SyncSession.
func (s *syncSession) MarkDeleted(id string) {
	s.setMu.Lock()
	defer s.setMu.Unlock()
	s.deleted[id] = struct{}{}
	delete(s.dirty, id)
}

// Status implements SyncSession.
func (s *syncSession) Status() models.SyncStatus {
	s.mu.RLock()
	status := s.status
	s.mu.RUnlock()

	s.setMu.Lock()
	status.PendingChanges = len(s.dirty) + len(s.deleted)
	s.setMu.Unlock()
	return status
}

// Config implements SyncSession.
func (s *syncSession) Config() models.SyncConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// connection snapshots the state a sync operation needs, or reports
// ErrNotConnected in local-only mode.
func (s *syncSession) connection() (models.SyncConfig, adapter.SyncServer, []byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.cfg.Connected() || s.server == nil {
		return models.SyncConfig{}, nil, nil, ErrNotConnected
	}
	return s.cfg, s.server, s.key, nil
}

// advanceCursor persists the new sync position. The sequence cursor is
// monotonic: a stale server response never moves it backwards.
func (s *syncSession) advanceCursor(ctx context.Context, serverSeq, syncedAt int64) error {
	s.mu.Lock()
	if serverSeq > s.cfg.LastSyncSeq {
		s.cfg.LastSyncSeq = serverSeq
	}
	s.cfg.LastSyncAt = syncedAt
	cfg := s.cfg
	s.mu.Unlock()

	if err := s.localStore.SaveSyncConfig(ctx, cfg); err != nil {
		return fmt.Errorf("save sync config: %w", err)
	}
	return nil
}

func (s *syncSession) snapshotPending() (dirty, deleted map[string]struct{}) {
	s.setMu.Lock()
	defer s.setMu.Unlock()
	dirty = make(map[string]struct{}, len(s.dirty))
	for id := range s.dirty {
		dirty[id] = struct{}{}
	}
	deleted = make(map[string]struct{}, len(s.deleted))
	for id := range s.deleted {
		deleted[id] = struct{}{}
	}
	return dirty, deleted
}

// clearPending drops only the ids that were part of the finished push, so
// edits made while the push was in flight stay pending.
func (s *syncSession) clearPending(dirty, deleted map[string]struct{}) {
	s.setMu.Lock()
	defer s.setMu.Unlock()
	for id := range dirty {
		delete(s.dirty, id)
	}
	for id := range deleted {
		delete(s.deleted, id)
	}
}

func (s *syncSession) setPhase(phase models.SyncPhase) {
	s.mu.Lock()
	s.status.Phase = phase
	s.mu.Unlock()
}

// settle records a successful operation: idle phase, cleared error and
// notice, fresh last-sync timestamp.
func (s *syncSession) settle(syncedAt int64) {
	s.mu.Lock()
	s.status.Phase = models.PhaseIdle
	s.status.Error = ""
	s.status.Notice = ""
	s.status.LastSyncAt = syncedAt
	s.mu.Unlock()
}

// setNotice surfaces a non-fatal advisory in the status snapshot. The next
// successful operation clears it.
func (s *syncSession) setNotice(msg string) {
	s.mu.Lock()
	s.status.Notice = msg
	s.mu.Unlock()
}

func (s *syncSession) fail(err error) {
	s.mu.Lock()
	s.status.Phase = models.PhaseError
	s.status.Error = err.Error()
	s.mu.Unlock()
}
