package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/daybook-app/daybook/internal/config"
	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/internal/store"
)

// busyRetryDelay is how long the scheduler waits before retrying a push or
// pull that found the session busy.
const busyRetryDelay = 500 * time.Millisecond

type syncScheduler struct {
	session      SyncSession
	events       *store.EventBus
	pushDebounce time.Duration
	pullInterval time.Duration
	logger       *logger.Logger

	foreground atomic.Bool
	fgPull     chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncScheduler wires the background sync loop: store change events feed
// a debounced push, a ticker drives foreground pulls. Idle until Start.
func NewSyncScheduler(session SyncSession, events *store.EventBus, cfg config.Sync, log *logger.Logger) SyncScheduler {
	return &syncScheduler{
		session:      session,
		events:       events,
		pushDebounce: cfg.PushDebounce,
		pullInterval: cfg.PullInterval,
		logger:       log,
		fgPull:       make(chan struct{}, 1),
	}
}

// Start implements SyncScheduler. It stops any previously running loop, then
// launches the background goroutine. The goroutine exits when ctx is
// cancelled or Stop is called.
func (s *syncScheduler) Start(ctx context.Context) {
	s.Stop()

	s.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	s.foreground.Store(true)
	events, unsubscribe := s.events.Subscribe()

	go func() {
		defer s.wg.Done()
		defer unsubscribe()
		s.run(loopCtx, events)
	}()
}

// Stop implements SyncScheduler. Blocks until the loop goroutine has exited.
// Safe to call when the scheduler is not running.
func (s *syncScheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// SetForeground implements SyncScheduler.
func (s *syncScheduler) SetForeground(foreground bool) {
	was := s.foreground.Swap(foreground)
	if foreground && !was {
		select {
		case s.fgPull <- struct{}{}:
		default:
		}
	}
}

// SyncNow implements SyncScheduler. Runs a forced push and then a pull in
// the caller's goroutine.
func (s *syncScheduler) SyncNow(ctx context.Context) error {
	if err := s.session.Push(ctx, true); err != nil && !errors.Is(err, ErrNotConnected) {
		return err
	}
	if _, err := s.session.Pull(ctx); err != nil {
		return err
	}
	return nil
}

func (s *syncScheduler) run(ctx context.Context, events <-chan store.Event) {
	debounce := time.NewTimer(s.pushDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	ticker := time.NewTicker(s.pullInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-events:
			if s.noteEvent(ev) {
				debounce.Reset(s.pushDebounce)
			}

		case <-debounce.C:
			s.push(ctx, debounce)

		case <-ticker.C:
			if !s.foreground.Load() {
				continue
			}
			s.pullAndCatchUp(ctx)

		case <-s.fgPull:
			s.pullAndCatchUp(ctx)
		}
	}
}

// noteEvent records a store event in the session's pending sets and reports
// whether it should (re)arm the push debounce.
func (s *syncScheduler) noteEvent(ev store.Event) bool {
	switch e := ev.(type) {
	case store.EntryChanged:
		s.session.MarkDirty(e.ID)
		return true
	case store.EntryDeleted:
		s.session.MarkDeleted(e.ID)
		return true
	default:
		// StoreRefreshed comes from our own merges; resyncing on it would
		// loop.
		return false
	}
}

func (s *syncScheduler) push(ctx context.Context, debounce *time.Timer) {
	err := s.session.Push(ctx, false)
	switch {
	case errors.Is(err, ErrSyncBusy):
		debounce.Reset(busyRetryDelay)
	case errors.Is(err, ErrNotConnected):
	case err != nil:
		s.logger.Error().Err(err).Msg("scheduled push failed")
	}
}

// pullAndCatchUp pushes anything still pending, then pulls remote changes.
// The push runs first because it doubles as the catch-up sweep for local
// edits whose change events were dropped: the sweep window is bounded by the
// last sync timestamp, which the pull is about to advance.
func (s *syncScheduler) pullAndCatchUp(ctx context.Context) {
	if err := s.session.Push(ctx, false); err != nil {
		if errors.Is(err, ErrSyncBusy) || errors.Is(err, ErrNotConnected) {
			return
		}
		s.logger.Error().Err(err).Msg("catch-up push failed")
	}
	if _, err := s.session.Pull(ctx); err != nil && !errors.Is(err, ErrSyncBusy) && !errors.Is(err, ErrNotConnected) {
		s.logger.Error().Err(err).Msg("scheduled pull failed")
	}
}
