// Package styles defines the UI styles.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// XXX: This is in its own package so that it can be shared between
// different packages without incurring an illegal import cycle.

// Styles defines styles for the UI.
type Styles struct {
	ActiveBorderColor   lipgloss.Color
	InactiveBorderColor lipgloss.Color

	App    lipgloss.Style
	Header lipgloss.Style
	Footer lipgloss.Style

	// Calendar page styles
	WeekTitle       lipgloss.Style
	WeekTitleBadge  lipgloss.Style
	DayHeading      lipgloss.Style
	DayHeadingToday lipgloss.Style
	DayCell         lipgloss.Style
	DayCellActive   lipgloss.Style
	SlotAvailable   lipgloss.Style
	SlotUnavailable lipgloss.Style
	SlotNote        lipgloss.Style
	SlotTime        lipgloss.Style
	MemberName      lipgloss.Style
	MemberStats     lipgloss.Style
	NoSlots         lipgloss.Style

	// Form styles
	FormTitle lipgloss.Style
	FormLabel lipgloss.Style
	FormHint  lipgloss.Style
	FormError lipgloss.Style

	StatusBar      lipgloss.Style
	StatusBarKey   lipgloss.Style
	StatusBarValue lipgloss.Style
	StatusBarInfo  lipgloss.Style

	HelpKey   lipgloss.Style
	HelpValue lipgloss.Style

	Error      lipgloss.Style
	ErrorTitle lipgloss.Style
	ErrorBody  lipgloss.Style

	Spinner lipgloss.Style
}

// DefaultStyles returns default styles for the UI.
func DefaultStyles(r *lipgloss.Renderer) *Styles {
	s := new(Styles)

	s.ActiveBorderColor = lipgloss.Color("62")
	s.InactiveBorderColor = lipgloss.Color("241")

	s.App = r.NewStyle().
		Margin(1, 2)

	s.Header = r.NewStyle().
		Foreground(lipgloss.Color("15")).
		Height(1).
		Bold(true)

	s.Footer = r.NewStyle().
		MarginTop(1).
		Height(1)

	s.WeekTitle = r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15"))

	s.WeekTitleBadge = r.NewStyle().
		Foreground(lipgloss.Color("203")).
		Background(lipgloss.Color("236")).
		Padding(0, 1).
		MarginLeft(1)

	s.DayHeading = r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("241")).
		Align(lipgloss.Center)

	s.DayHeadingToday = s.DayHeading.
		Foreground(lipgloss.Color("213"))

	s.DayCell = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.InactiveBorderColor).
		Padding(0, 1)

	s.DayCellActive = s.DayCell.
		BorderForeground(s.ActiveBorderColor)

	s.SlotAvailable = r.NewStyle().
		Foreground(lipgloss.Color("42"))

	s.SlotUnavailable = r.NewStyle().
		Foreground(lipgloss.Color("203"))

	s.SlotNote = r.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true)

	s.SlotTime = r.NewStyle().
		Foreground(lipgloss.Color("15"))

	s.MemberName = r.NewStyle().
		Bold(true)

	s.MemberStats = r.NewStyle().
		Foreground(lipgloss.Color("241"))

	s.NoSlots = r.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true)

	s.FormTitle = r.NewStyle().
		Bold(true).
		MarginBottom(1)

	s.FormLabel = r.NewStyle().
		Foreground(lipgloss.Color("241"))

	s.FormHint = r.NewStyle().
		Foreground(lipgloss.Color("239")).
		Italic(true)

	s.FormError = r.NewStyle().
		Foreground(lipgloss.Color("203"))

	s.StatusBar = r.NewStyle()

	s.StatusBarKey = r.NewStyle().
		Bold(true).
		Padding(0, 1).
		Background(lipgloss.Color("206")).
		Foreground(lipgloss.Color("228"))

	s.StatusBarValue = r.NewStyle().
		Padding(0, 1).
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("243"))

	s.StatusBarInfo = r.NewStyle().
		Padding(0, 1).
		Background(lipgloss.Color("212")).
		Foreground(lipgloss.Color("230"))

	s.HelpKey = r.NewStyle().
		Foreground(lipgloss.Color("241"))

	s.HelpValue = r.NewStyle().
		Foreground(lipgloss.Color("239"))

	s.Error = r.NewStyle().
		MarginTop(2)

	s.ErrorTitle = r.NewStyle().
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("204")).
		Bold(true).
		Padding(0, 1)

	s.ErrorBody = r.NewStyle().
		Foreground(lipgloss.Color("252")).
		MarginLeft(2)

	s.Spinner = r.NewStyle().
		MarginTop(1).
		MarginLeft(2).
		Foreground(lipgloss.Color("205"))

	return s
}
