// Package header provides the top application header.
package header

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/esportlab/elab/pkg/ui/common"
)

// Header is the application header component.
type Header struct {
	common common.Common
	text   string
}

// New returns a new Header.
func New(c common.Common, text string) *Header {
	return &Header{
		common: c,
		text:   text,
	}
}

// SetText sets the header text.
func (h *Header) SetText(text string) {
	h.text = text
}

// SetSize implements common.Component.
func (h *Header) SetSize(width, height int) {
	h.common.SetSize(width, height)
}

// Init implements tea.Model.
func (h *Header) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (h *Header) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return h, nil
}

// View implements tea.Model.
func (h *Header) View() string {
	s := h.common.Styles.Header.Width(h.common.Width)
	return s.Render(strings.TrimSpace(h.text))
}
