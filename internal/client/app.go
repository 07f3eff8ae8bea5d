// Package client assembles the journal client: local storage, keychain,
// sync engine, scheduler and the terminal UI.
package client

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/daybook-app/daybook/internal/config"
	"github.com/daybook-app/daybook/internal/crypto"
	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/internal/service"
	"github.com/daybook-app/daybook/internal/store"
	"github.com/daybook-app/daybook/internal/tui"
)

type App struct {
	cfg      *config.Config
	services *service.Services
	ui       *tui.TUI
	logger   *logger.Logger
}

func NewApp(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log.GetChildLogger())
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	keychain := crypto.NewKeyChainService()
	services := service.NewServices(storages, keychain, cfg, log.GetChildLogger())
	ui := tui.New(services.Session, services.Scheduler, cfg.Adapter.ServerURL, log.GetChildLogger())

	return &App{cfg: cfg, services: services, ui: ui, logger: log}, nil
}

func (a *App) Run(ctx context.Context) error {
	if err := a.services.Session.Restore(ctx); err != nil {
		return fmt.Errorf("restore sync session: %w", err)
	}

	// Companion mode for pairing a second device: copy the id and exit.
	if a.cfg.App.CopySyncID {
		return a.copySyncID()
	}

	a.services.Scheduler.Start(ctx)
	defer a.services.Scheduler.Stop()

	return a.ui.Run(ctx)
}

// copySyncID puts the paired sync id on the system clipboard so the user can
// paste it into another device's pairing form.
func (a *App) copySyncID() error {
	cfg := a.services.Session.Config()
	if !cfg.Connected() {
		return fmt.Errorf("no sync account configured on this device")
	}
	if err := clipboard.WriteAll(cfg.SyncID); err != nil {
		return fmt.Errorf("copy sync id to clipboard: %w", err)
	}
	a.logger.Info().Msg("sync id copied to clipboard")
	return nil
}
