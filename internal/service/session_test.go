package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/daybook-app/daybook/internal/adapter"
	"github.com/daybook-app/daybook/internal/crypto"
	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/internal/mock"
	"github.com/daybook-app/daybook/internal/store"
	"github.com/daybook-app/daybook/internal/validators"
	"github.com/daybook-app/daybook/models"
)

// base64 of 16 fixed bytes, a valid key-derivation salt.
const testSalt = "MDEyMzQ1Njc4OWFiY2RlZg=="

const testSyncID = "amber-falcon-9271"

func newTestSession(t *testing.T, ctrl *gomock.Controller) (*syncSession, *mock.MockLocalStore, *mock.MockSyncServer) {
	t.Helper()

	mockStore := mock.NewMockLocalStore(ctrl)
	mockServer := mock.NewMockSyncServer(ctrl)
	keychain := crypto.NewKeyChainService()

	codec := NewEntryCodec(keychain, logger.Nop())
	merger := NewMergeEngine(mockStore, validators.NewEntryValidator(), logger.Nop())
	session := &syncSession{
		localStore: mockStore,
		codec:      codec,
		keychain:   keychain,
		merger:     merger,
		newServer: func(string) (adapter.SyncServer, error) {
			return mockServer, nil
		},
		pageLimit: 100,
		logger:    logger.Nop(),
		cfg:       models.SyncConfig{Mode: models.SyncModeLocal},
		status:    models.SyncStatus{Phase: models.PhaseIdle},
		dirty:     make(map[string]struct{}),
		deleted:   make(map[string]struct{}),
		now:       func() int64 { return 1_700_000_200_000 },
	}
	return session, mockStore, mockServer
}

// connect puts the session into an established remote state without going
// through the network handshake.
func connect(t *testing.T, s *syncSession, server adapter.SyncServer) []byte {
	t.Helper()
	key, err := s.keychain.DeriveKey(testSyncID, testSalt)
	require.NoError(t, err)

	s.cfg = models.SyncConfig{
		Mode:      models.SyncModeRemote,
		SyncID:    testSyncID,
		Salt:      testSalt,
		ServerURL: "https://sync.example.com",
	}
	s.key = key
	s.server = server
	return key
}

// ── push ─────────────────────────────────────────────────────────────────────

func TestSyncSession_PushNotConnected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	session, _, _ := newTestSession(t, ctrl)

	err := session.Push(context.Background(), false)
	assert.ErrorIs(t, err, ErrNotConnected)
}

// An empty batch never reaches the network.
func TestSyncSession_PushNothingPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	session, mockStore, mockServer := newTestSession(t, ctrl)
	connect(t, session, mockServer)
	ctx := context.Background()

	mockStore.EXPECT().GetEntriesUpdatedSince(ctx, int64(0)).Return(nil, nil)

	require.NoError(t, session.Push(ctx, false))
	assert.Equal(t, models.PhaseIdle, session.Status().Phase)
}

func TestSyncSession_PushDirtyEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	session, mockStore, mockServer := newTestSession(t, ctrl)
	key := connect(t, session, mockServer)
	ctx := context.Background()

	entry := sampleEntry()
	session.MarkDirty(entry.ID)
	assert.Equal(t, 1, session.Status().PendingChanges)

	mockStore.EXPECT().GetEntry(ctx, entry.ID).Return(entry, nil)

	var sent []models.SyncEntry
	mockServer.EXPECT().Push(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, entries []models.SyncEntry) (models.PushResponse, error) {
			sent = entries
			return models.PushResponse{Accepted: 1, ServerSeq: 7}, nil
		})

	var saved models.SyncConfig
	mockStore.EXPECT().SaveSyncConfig(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, cfg models.SyncConfig) error {
			saved = cfg
			return nil
		})

	require.NoError(t, session.Push(ctx, false))

	require.Len(t, sent, 1)
	got, err := session.codec.DecryptEntry(key, sent[0])
	require.NoError(t, err)
	assert.Equal(t, entry, got.Entry)

	assert.Equal(t, int64(7), saved.LastSyncSeq)
	assert.Zero(t, session.Status().PendingChanges)
	assert.Equal(t, models.PhaseIdle, session.Status().Phase)
}

func TestSyncSession_PushDeletedAsTombstone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	session, mockStore, mockServer := newTestSession(t, ctrl)
	connect(t, session, mockServer)
	ctx := context.Background()

	session.MarkDeleted("e9")

	var sent []models.SyncEntry
	mockServer.EXPECT().Push(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, entries []models.SyncEntry) (models.PushResponse, error) {
			sent = entries
			return models.PushResponse{Accepted: 1, ServerSeq: 2}, nil
		})
	mockStore.EXPECT().SaveSyncConfig(ctx, gomock.Any()).Return(nil)

	require.NoError(t, session.Push(ctx, false))

	require.Len(t, sent, 1)
	assert.True(t, sent[0].IsDeleted)
	assert.Equal(t, "e9", sent[0].ID)
	assert.Empty(t, sent[0].EncryptedPayload)
	assert.Zero(t, session.Status().PendingChanges)
}

// A failed push keeps the pending sets so nothing is lost for the retry.
func TestSyncSession_PushFailureKeepsPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	session, mockStore, mockServer := newTestSession(t, ctrl)
	connect(t, session, mockServer)
	ctx := context.Background()

	entry := sampleEntry()
	session.MarkDirty(entry.ID)

	mockStore.EXPECT().GetEntry(ctx, entry.ID).Return(entry, nil)
	mockServer.EXPECT().Push(ctx, gomock.Any()).Return(models.PushResponse{}, assert.AnError)

	err := session.Push(ctx, false)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, session.Status().PendingChanges)
	assert.Equal(t, models.PhaseError, session.Status().Phase)
	assert.NotEmpty(t, session.Status().Error)
}

// A conflicting push is not an error, but the user gets a notice and the
// cursor stays put so the next pull fetches the newer server copies.
func TestSyncSession_PushConflictSurfacesNotice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	session, mockStore, mockServer := newTestSession(t, ctrl)
	connect(t, session, mockServer)
	ctx := context.Background()

	entry := sampleEntry()
	session.MarkDirty(entry.ID)

	mockStore.EXPECT().GetEntry(ctx, entry.ID).Return(entry, nil)
	mockServer.EXPECT().Push(ctx, gomock.Any()).Return(models.PushResponse{
		ServerSeq: 9,
		Conflicts: []models.PushConflict{{ID: entry.ID, ServerUpdatedAt: 99}},
	}, nil)

	var saved models.SyncConfig
	mockStore.EXPECT().SaveSyncConfig(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, cfg models.SyncConfig) error {
			saved = cfg
			return nil
		})

	require.NoError(t, session.Push(ctx, false))

	st := session.Status()
	assert.Equal(t, models.PhaseIdle, st.Phase)
	assert.Empty(t, st.Error)
	assert.NotEmpty(t, st.Notice)
	assert.Zero(t, saved.LastSyncSeq)

	// The next clean operation clears the notice.
	session.MarkDirty(entry.ID)
	mockStore.EXPECT().GetEntry(ctx, entry.ID).Return(entry, nil)
	mockServer.EXPECT().Push(ctx, gomock.Any()).Return(models.PushResponse{Accepted: 1, ServerSeq: 10}, nil)
	mockStore.EXPECT().SaveSyncConfig(ctx, gomock.Any()).Return(nil)

	require.NoError(t, session.Push(ctx, false))
	assert.Empty(t, session.Status().Notice)
}

// Dirty ids whose entries vanished from the store are forgotten rather than
// counted as pending forever.
func TestSyncSession_PushDropsVanishedDirtyIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	session, mockStore, mockServer := newTestSession(t, ctrl)
	connect(t, session, mockServer)
	ctx := context.Background()

	session.MarkDirty("gone")
	assert.Equal(t, 1, session.Status().PendingChanges)

	mockStore.EXPECT().GetEntry(ctx, "gone").Return(models.Entry{}, store.ErrEntryNotFound)

	require.NoError(t, session.Push(ctx, false))
	assert.Zero(t, session.Status().PendingChanges)
}

func TestSyncSession_PushForcedTakesEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	session, mockStore, mockServer := newTestSession(t, ctrl)
	connect(t, session, mockServer)
	ctx := context.Background()

	all := []models.Entry{sampleEntry(), {ID: "e2", Day: "2026-03-15", UpdatedAt: 5}}
	mockStore.EXPECT().GetAllEntries(ctx).Return(all, nil)

	var sent []models.SyncEntry
	mockServer.EXPECT().Push(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, entries []models.SyncEntry) (models.PushResponse, error) {
			sent = entries
			return models.PushResponse{Accepted: 2, ServerSeq: 3}, nil
		})
	mockStore.EXPECT().SaveSyncConfig(ctx, gomock.Any()).Return(nil)

	require.NoError(t, session.Push(ctx, true))
	assert.Len(t, sent, 2)
}

func TestSyncSession_PushWhileBusy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	session, _, mockServer := newTestSession(t, ctrl)
	connect(t, session, mockServer)

	session.op.Lock()
	defer session.op.Unlock()

	assert.ErrorIs(t, session.Push(context.Background(), false), ErrSyncBusy)
}

// ── pull ─────────────────────────────────────────────────────────────────────

func TestSyncSession_PullPaginates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	session, mockStore, mockServer := newTestSession(t, ctrl)
	key := connect(t, session, mockServer)
	ctx := context.Background()

	encrypt := func(id string, updatedAt, seq int64) models.SyncEntry {
		entry := sampleEntry()
		entry.ID = id
		entry.UpdatedAt = updatedAt
		envelope, err := session.codec.EncryptEntry(key, entry)
		require.NoError(t, err)
		envelope.ServerSeq = seq
		return envelope
	}

	gomock.InOrder(
		mockServer.EXPECT().Pull(ctx, int64(0), 100).Return(models.PullResponse{
			Entries:   []models.SyncEntry{encrypt("e1", 10, 1), encrypt("e2", 20, 2)},
			ServerSeq: 3,
			HasMore:   true,
		}, nil),
		mockServer.EXPECT().Pull(ctx, int64(2), 100).Return(models.PullResponse{
			Entries:   []models.SyncEntry{encrypt("e3", 30, 3)},
			ServerSeq: 3,
			HasMore:   false,
		}, nil),
	)

	mockStore.EXPECT().GetEntry(ctx, gomock.Any()).Return(models.Entry{}, store.ErrEntryNotFound).Times(3)
	mockStore.EXPECT().SaveEntry(ctx, gomock.Any()).Return(nil).Times(3)
	mockStore.EXPECT().UpdateSearchIndex(ctx, gomock.Any()).Return(nil).Times(3)
	mockStore.EXPECT().Events().Return(store.NewEventBus())

	var saved models.SyncConfig
	mockStore.EXPECT().SaveSyncConfig(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, cfg models.SyncConfig) error {
			saved = cfg
			return nil
		})

	merged, err := session.Pull(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, merged)
	assert.Equal(t, int64(3), saved.LastSyncSeq)
	assert.Equal(t, models.PhaseIdle, session.Status().Phase)
}

// A corrupt envelope is skipped, the rest of the page still merges.
func TestSyncSession_PullSkipsUndecryptable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	session, mockStore, mockServer := newTestSession(t, ctrl)
	key := connect(t, session, mockServer)
	ctx := context.Background()

	good := sampleEntry()
	envelope, err := session.codec.EncryptEntry(key, good)
	require.NoError(t, err)
	envelope.ServerSeq = 2

	garbage := models.SyncEntry{ID: "junk", UpdatedAt: 5, EncryptedPayload: "not base64!!", ServerSeq: 1}

	mockServer.EXPECT().Pull(ctx, int64(0), 100).Return(models.PullResponse{
		Entries:   []models.SyncEntry{garbage, envelope},
		ServerSeq: 2,
	}, nil)

	mockStore.EXPECT().GetEntry(ctx, good.ID).Return(models.Entry{}, store.ErrEntryNotFound)
	mockStore.EXPECT().SaveEntry(ctx, good).Return(nil)
	mockStore.EXPECT().UpdateSearchIndex(ctx, gomock.Any()).Return(nil)
	mockStore.EXPECT().Events().Return(store.NewEventBus())
	mockStore.EXPECT().SaveSyncConfig(ctx, gomock.Any()).Return(nil)

	merged, err := session.Pull(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, merged)
}

// Pulling twice from the same cursor must not double-apply: the merge skips
// entries that are not strictly newer.
func TestSyncSession_PullIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	session, mockStore, mockServer := newTestSession(t, ctrl)
	key := connect(t, session, mockServer)
	ctx := context.Background()

	entry := sampleEntry()
	envelope, err := session.codec.EncryptEntry(key, entry)
	require.NoError(t, err)
	envelope.ServerSeq = 1

	mockServer.EXPECT().Pull(ctx, int64(0), 100).Return(models.PullResponse{
		Entries: []models.SyncEntry{envelope}, ServerSeq: 1,
	}, nil)
	mockStore.EXPECT().GetEntry(ctx, entry.ID).Return(entry, nil)
	mockStore.EXPECT().SaveSyncConfig(ctx, gomock.Any()).Return(nil)

	merged, err := session.Pull(ctx)
	require.NoError(t, err)
	assert.Zero(t, merged)
}

func TestSyncSession_PullFailureSetsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	session, _, mockServer := newTestSession(t, ctrl)
	connect(t, session, mockServer)
	ctx := context.Background()

	mockServer.EXPECT().Pull(ctx, int64(0), 100).Return(models.PullResponse{}, assert.AnError)

	_, err := session.Pull(ctx)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, models.PhaseError, session.Status().Phase)
}

// ── connect / restore / disconnect ───────────────────────────────────────────

func TestSyncSession_ConnectCreatesAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	session, mockStore, mockServer := newTestSession(t, ctrl)
	ctx := context.Background()

	wantToken := session.keychain.AuthToken(testSyncID)
	mockServer.EXPECT().SetToken(wantToken)
	mockServer.EXPECT().ValidateAccount(ctx).Return(models.ValidateAccountResponse{}, adapter.ErrAccountNotFound)
	mockServer.EXPECT().CreateAccount(ctx).Return(testSalt, nil)
	mockStore.EXPECT().SaveSyncConfig(ctx, gomock.Any()).Return(nil).Times(2)

	// initial full sync of an empty journal
	mockStore.EXPECT().GetAllEntries(ctx).Return(nil, nil)
	mockServer.EXPECT().FullSync(ctx, gomock.Any()).Return(models.FullSyncResponse{}, nil)

	require.NoError(t, session.Connect(ctx, testSyncID, "https://sync.example.com"))

	cfg := session.Config()
	assert.True(t, cfg.Connected())
	assert.Equal(t, testSalt, cfg.Salt)
	assert.Equal(t, testSyncID, cfg.SyncID)
}

func TestSyncSession_ConnectExistingAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	session, mockStore, mockServer := newTestSession(t, ctrl)
	ctx := context.Background()

	mockServer.EXPECT().SetToken(gomock.Any())
	mockServer.EXPECT().ValidateAccount(ctx).Return(models.ValidateAccountResponse{
		Valid: true, Salt: testSalt, EntryCount: 12,
	}, nil)
	mockStore.EXPECT().SaveSyncConfig(ctx, gomock.Any()).Return(nil).Times(2)
	mockStore.EXPECT().GetAllEntries(ctx).Return(nil, nil)
	mockServer.EXPECT().FullSync(ctx, gomock.Any()).Return(models.FullSyncResponse{}, nil)

	require.NoError(t, session.Connect(ctx, testSyncID, "https://sync.example.com"))
	assert.True(t, session.Config().Connected())
}

func TestSyncSession_ConnectEmptySyncID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	session, _, _ := newTestSession(t, ctrl)

	err := session.Connect(context.Background(), "", "https://sync.example.com")
	assert.ErrorIs(t, err, ErrEmptySyncID)
}

func TestSyncSession_RestoreSavedConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	session, mockStore, mockServer := newTestSession(t, ctrl)
	ctx := context.Background()

	saved := models.SyncConfig{
		Mode:        models.SyncModeRemote,
		SyncID:      testSyncID,
		Salt:        testSalt,
		ServerURL:   "https://sync.example.com",
		LastSyncSeq: 41,
		LastSyncAt:  1_700_000_000_000,
	}
	mockStore.EXPECT().LoadSyncConfig(ctx).Return(saved, nil)
	mockServer.EXPECT().SetToken(session.keychain.AuthToken(testSyncID))

	require.NoError(t, session.Restore(ctx))
	assert.Equal(t, saved, session.Config())
	assert.NotNil(t, session.key)
}

func TestSyncSession_RestoreWithoutConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	session, mockStore, _ := newTestSession(t, ctrl)
	ctx := context.Background()

	mockStore.EXPECT().LoadSyncConfig(ctx).Return(models.SyncConfig{}, store.ErrSyncConfigNotFound)

	require.NoError(t, session.Restore(ctx))
	assert.False(t, session.Config().Connected())
}

func TestSyncSession_Disconnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	session, mockStore, mockServer := newTestSession(t, ctrl)
	connect(t, session, mockServer)
	ctx := context.Background()

	session.MarkDirty("e1")
	mockStore.EXPECT().SaveSyncConfig(ctx, models.SyncConfig{Mode: models.SyncModeLocal}).Return(nil)

	require.NoError(t, session.Disconnect(ctx))
	assert.False(t, session.Config().Connected())
	assert.Zero(t, session.Status().PendingChanges)

	assert.ErrorIs(t, session.Push(ctx, false), ErrNotConnected)
}

func TestSyncSession_DeleteAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	session, mockStore, mockServer := newTestSession(t, ctrl)
	connect(t, session, mockServer)
	ctx := context.Background()

	mockServer.EXPECT().DeleteAccount(ctx).Return(nil)
	mockStore.EXPECT().SaveSyncConfig(ctx, models.SyncConfig{Mode: models.SyncModeLocal}).Return(nil)

	require.NoError(t, session.DeleteAccount(ctx))
	assert.False(t, session.Config().Connected())
}

// ── full sync ────────────────────────────────────────────────────────────────

func TestSyncSession_FullSyncMergesServerSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	session, mockStore, mockServer := newTestSession(t, ctrl)
	key := connect(t, session, mockServer)
	ctx := context.Background()

	local := sampleEntry()
	remoteOnly := sampleEntry()
	remoteOnly.ID = "r1"
	remoteEnvelope, err := session.codec.EncryptEntry(key, remoteOnly)
	require.NoError(t, err)
	remoteEnvelope.ServerSeq = 9

	mockStore.EXPECT().GetAllEntries(ctx).Return([]models.Entry{local}, nil)
	mockServer.EXPECT().FullSync(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, entries []models.SyncEntry) (models.FullSyncResponse, error) {
			require.Len(t, entries, 1)
			return models.FullSyncResponse{
				Entries:   []models.SyncEntry{remoteEnvelope},
				ServerSeq: 9,
				Merged:    1,
			}, nil
		})
	mockStore.EXPECT().GetEntry(ctx, "r1").Return(models.Entry{}, store.ErrEntryNotFound)
	mockStore.EXPECT().SaveEntry(ctx, remoteOnly).Return(nil)
	mockStore.EXPECT().UpdateSearchIndex(ctx, gomock.Any()).Return(nil)
	mockStore.EXPECT().Events().Return(store.NewEventBus())

	var saved models.SyncConfig
	mockStore.EXPECT().SaveSyncConfig(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, cfg models.SyncConfig) error {
			saved = cfg
			return nil
		})

	require.NoError(t, session.FullSync(ctx))
	assert.Equal(t, int64(9), saved.LastSyncSeq)
}
