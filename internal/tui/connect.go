package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/daybook-app/daybook/internal/service"
)

// navigateMsg switches the root model between screens.
type navigateMsg struct{ screen string }

func openConnect() tea.Msg { return navigateMsg{screen: "connect"} }
func openStatus() tea.Msg  { return navigateMsg{screen: "status"} }

// connectModel is the pairing form: sync id plus server address.
type connectModel struct {
	ctx     context.Context
	session service.SyncSession

	syncID  textinput.Model
	server  textinput.Model
	focused int
	busy    bool
	errText string
}

func newConnectModel(ctx context.Context, session service.SyncSession, defaultServer string) connectModel {
	syncID := textinput.New()
	syncID.Placeholder = "sync id"
	syncID.Focus()

	server := textinput.New()
	server.Placeholder = "server address"
	server.SetValue(defaultServer)

	return connectModel{ctx: ctx, session: session, syncID: syncID, server: server}
}

func (m connectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m connectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, openStatus
		case "tab", "shift+tab":
			m.focused = 1 - m.focused
			if m.focused == 0 {
				m.syncID.Focus()
				m.server.Blur()
			} else {
				m.server.Focus()
				m.syncID.Blur()
			}
			return m, nil
		case "enter":
			syncID := strings.TrimSpace(m.syncID.Value())
			server := strings.TrimSpace(m.server.Value())
			if syncID == "" || server == "" {
				m.errText = "both fields are required"
				return m, nil
			}
			m.busy = true
			m.errText = ""
			return m, func() tea.Msg {
				return connectDoneMsg{err: m.session.Connect(m.ctx, syncID, server)}
			}
		}

	case connectDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		return m, openStatus
	}

	var cmds [2]tea.Cmd
	m.syncID, cmds[0] = m.syncID.Update(msg)
	m.server, cmds[1] = m.server.Update(msg)
	return m, tea.Batch(cmds[0], cmds[1])
}

func (m connectModel) View() string {
	body := titleStyle.Render("Pair this device") + "\n\n"
	body += m.syncID.View() + "\n"
	body += m.server.View() + "\n"

	if m.busy {
		body += "\n" + pendingStyle.Render("connecting, running first sync...") + "\n"
	}
	if m.errText != "" {
		body += "\n" + errorStyle.Render(m.errText) + "\n"
	}

	body += "\n" + helpStyle.Render("enter connect • tab switch field • esc back")
	return appStyle.Render(body)
}
