// Package login implements the page shown when no session is available.
package login

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/esportlab/elab/pkg/ui/common"
)

// Login is the page shown when the user has no stored session.
type Login struct {
	common common.Common
}

// New returns a new Login page.
func New(c common.Common) *Login {
	return &Login{common: c}
}

// SetSize implements common.Component.
func (l *Login) SetSize(width, height int) {
	l.common.SetSize(width, height)
}

// ShortHelp implements help.KeyMap.
func (l *Login) ShortHelp() []key.Binding {
	return []key.Binding{l.common.KeyMap.Quit}
}

// FullHelp implements help.KeyMap.
func (l *Login) FullHelp() [][]key.Binding {
	return [][]key.Binding{l.ShortHelp()}
}

// Init implements tea.Model.
func (l *Login) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (l *Login) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return l, nil
}

// View implements tea.Model.
func (l *Login) View() string {
	st := l.common.Styles
	cfg := l.common.Config()
	return lipgloss.JoinVertical(lipgloss.Top,
		st.FormTitle.Render("Not logged in"),
		"Run `elab login` in another terminal to sign in with Discord.",
		st.FormHint.Render("The login flow opens "+cfg.Auth.AuthorizeURL),
	)
}
