package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/daybook-app/daybook/internal/service"
	"github.com/daybook-app/daybook/models"
)

const statusRefresh = 500 * time.Millisecond

// statusModel is the main screen: the live sync indicator plus the hotkeys
// for manual sync, pairing and disconnecting.
type statusModel struct {
	ctx       context.Context
	session   service.SyncSession
	scheduler service.SyncScheduler
	spinner   spinner.Model

	status  models.SyncStatus
	cfg     models.SyncConfig
	syncing bool
	notice  string
}

func newStatusModel(ctx context.Context, session service.SyncSession, scheduler service.SyncScheduler) statusModel {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	return statusModel{
		ctx:       ctx,
		session:   session,
		scheduler: scheduler,
		spinner:   sp,
		status:    session.Status(),
		cfg:       session.Config(),
	}
}

func statusTick() tea.Cmd {
	return tea.Tick(statusRefresh, func(t time.Time) tea.Msg { return statusTickMsg(t) })
}

func (m statusModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, statusTick())
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "s":
			if m.syncing {
				return m, nil
			}
			m.syncing = true
			m.notice = ""
			return m, func() tea.Msg { return syncDoneMsg{err: m.scheduler.SyncNow(m.ctx)} }
		case "c":
			if !m.cfg.Connected() {
				return m, openConnect
			}
		case "d":
			if m.cfg.Connected() {
				return m, func() tea.Msg { return disconnectDoneMsg{err: m.session.Disconnect(m.ctx)} }
			}
		}

	case statusTickMsg:
		m.status = m.session.Status()
		m.cfg = m.session.Config()
		return m, statusTick()

	case syncDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.notice = errorStyle.Render(msg.err.Error())
		} else {
			m.notice = okStyle.Render("synced")
		}
		return m, nil

	case disconnectDoneMsg:
		if msg.err != nil {
			m.notice = errorStyle.Render(msg.err.Error())
		} else {
			m.notice = "local-only mode"
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m statusModel) View() string {
	body := titleStyle.Render("Daybook") + "\n\n"
	body += m.statusLine() + "\n"

	if m.cfg.Connected() {
		body += helpStyle.Render(fmt.Sprintf("account %s", m.cfg.SyncID)) + "\n"
	} else {
		body += helpStyle.Render("journal is local-only") + "\n"
	}

	if m.notice != "" {
		body += "\n" + m.notice + "\n"
	}

	body += "\n" + helpStyle.Render(m.helpLine())
	return appStyle.Render(body)
}

func (m statusModel) statusLine() string {
	switch m.status.Phase {
	case models.PhasePushing, models.PhasePulling, models.PhaseMerging:
		return m.spinner.View() + " " + string(m.status.Phase)
	case models.PhaseError:
		return errorStyle.Render("sync error: " + m.status.Error)
	}

	line := okStyle.Render("idle")
	if m.status.Notice != "" {
		line += pendingStyle.Render("  " + m.status.Notice)
	}
	if m.status.PendingChanges > 0 {
		line += pendingStyle.Render(fmt.Sprintf("  %d pending", m.status.PendingChanges))
	}
	if m.status.LastSyncAt > 0 {
		line += helpStyle.Render("  last sync " + time.UnixMilli(m.status.LastSyncAt).Format("15:04:05"))
	}
	return line
}

func (m statusModel) helpLine() string {
	if m.cfg.Connected() {
		return "s sync now • d disconnect • q quit"
	}
	return "c connect • q quit"
}
