// Package statusbar provides the status bar component.
package statusbar

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/esportlab/elab/pkg/ui/common"
	"github.com/muesli/reflow/truncate"
)

// StatusBarMsg updates the status bar contents.
type StatusBarMsg struct {
	Key   string
	Value string
	Info  string
}

// StatusBar is the status bar component.
type StatusBar struct {
	common common.Common
	msg    StatusBarMsg
}

// New returns a new StatusBar.
func New(c common.Common) *StatusBar {
	return &StatusBar{
		common: c,
	}
}

// SetSize implements common.Component.
func (s *StatusBar) SetSize(width, height int) {
	s.common.SetSize(width, height)
}

// Init implements tea.Model.
func (s *StatusBar) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s *StatusBar) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StatusBarMsg:
		s.msg = msg
	}
	return s, nil
}

// View implements tea.Model.
func (s *StatusBar) View() string {
	st := s.common.Styles
	w := lipgloss.Width
	key := st.StatusBarKey.Render(s.msg.Key)
	info := st.StatusBarInfo.Render(s.msg.Info)
	maxWidth := s.common.Width - w(key) - w(info)
	v := truncate.StringWithTail(s.msg.Value,
		uint(max(0, maxWidth-st.StatusBarValue.GetHorizontalFrameSize())), "…")
	value := st.StatusBarValue.
		Width(maxWidth).
		Render(v)

	return s.common.Styles.StatusBar.MaxWidth(s.common.Width).Render(
		lipgloss.JoinHorizontal(lipgloss.Top,
			key,
			value,
			info,
		),
	)
}
