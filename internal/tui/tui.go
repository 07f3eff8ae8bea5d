// Package tui renders the terminal sync indicator: current phase, pending
// count and last sync time, with hotkeys for manual sync and pairing. The
// journal editor itself lives elsewhere; this surface only drives the sync
// engine.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/internal/service"
)

// rootModel routes between the status screen and the pairing form.
type rootModel struct {
	screens map[string]tea.Model
	current tea.Model
}

func newRootModel(screens map[string]tea.Model) rootModel {
	return rootModel{screens: screens, current: screens["status"]}
}

func (r rootModel) Init() tea.Cmd {
	return r.current.Init()
}

func (r rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if nav, ok := msg.(navigateMsg); ok {
		if next, exists := r.screens[nav.screen]; exists {
			r.current = next
			return r, r.current.Init()
		}
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r rootModel) View() string {
	return r.current.View()
}

// TUI owns the terminal program.
type TUI struct {
	session       service.SyncSession
	scheduler     service.SyncScheduler
	defaultServer string
	logger        *logger.Logger
}

func New(session service.SyncSession, scheduler service.SyncScheduler, defaultServer string, log *logger.Logger) *TUI {
	return &TUI{session: session, scheduler: scheduler, defaultServer: defaultServer, logger: log}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	screens := map[string]tea.Model{
		"status":  newStatusModel(ctx, t.session, t.scheduler),
		"connect": newConnectModel(ctx, t.session, t.defaultServer),
	}

	_, err := tea.NewProgram(newRootModel(screens), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
