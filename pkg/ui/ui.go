// Package ui is the root Bubble Tea model for the elab terminal UI.
package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/esportlab/elab/pkg/proto"
	"github.com/esportlab/elab/pkg/ui/common"
	"github.com/esportlab/elab/pkg/ui/components/footer"
	"github.com/esportlab/elab/pkg/ui/components/header"
	"github.com/esportlab/elab/pkg/ui/pages/calendar"
	"github.com/esportlab/elab/pkg/ui/pages/login"
	"github.com/esportlab/elab/pkg/ui/pages/teams"
)

type page int

const (
	loginPage page = iota
	teamsPage
	calendarPage
)

type sessionState int

const (
	startState sessionState = iota
	errorState
	loadedState
)

type profileMsg struct {
	profile proto.Profile
	team    *proto.Team
}

// UI is the main UI model.
type UI struct {
	common     common.Common
	pages      map[page]common.Page
	activePage page
	state      sessionState
	header     *header.Header
	footer     *footer.Footer
	error      error
}

// New returns a new UI model.
func New(c common.Common) *UI {
	ui := &UI{
		common:     c,
		pages:      make(map[page]common.Page),
		activePage: teamsPage,
		state:      startState,
		header:     header.New(c, "EsportLab"),
	}
	ui.footer = footer.New(c, ui)
	ui.SetSize(c.Width, c.Height)
	return ui
}

func (ui *UI) getMargins() (wm, hm int) {
	style := ui.common.Styles.App
	wm = style.GetHorizontalFrameSize()
	hm = style.GetVerticalFrameSize() +
		ui.common.Styles.Header.GetHeight() +
		ui.footer.Height()
	return
}

// ShortHelp implements help.KeyMap.
func (ui *UI) ShortHelp() []key.Binding {
	b := make([]key.Binding, 0)
	if p, ok := ui.pages[ui.activePage]; ok {
		b = append(b, p.ShortHelp()...)
	}
	b = append(b, ui.common.KeyMap.Quit)
	return b
}

// FullHelp implements help.KeyMap.
func (ui *UI) FullHelp() [][]key.Binding {
	b := make([][]key.Binding, 0)
	if p, ok := ui.pages[ui.activePage]; ok {
		b = append(b, p.FullHelp()...)
	}
	b = append(b, []key.Binding{ui.common.KeyMap.Quit, ui.common.KeyMap.Help})
	return b
}

// SetSize implements common.Component.
func (ui *UI) SetSize(width, height int) {
	ui.common.SetSize(width, height)
	wm, hm := ui.getMargins()
	ui.header.SetSize(width-wm, height-hm)
	ui.footer.SetSize(width-wm, height-hm)
	for _, p := range ui.pages {
		p.SetSize(width-wm, height-hm)
	}
}

// Init implements tea.Model.
func (ui *UI) Init() tea.Cmd {
	return ui.loadProfileCmd
}

// loadProfileCmd resolves the session and decides the initial page.
func (ui *UI) loadProfileCmd() tea.Msg {
	b := ui.common.Backend()
	ctx := ui.common.Context()

	p, err := b.Me(ctx)
	if err != nil {
		if errors.Is(err, proto.ErrNoCredentials) || errors.Is(err, proto.ErrUnauthorized) {
			return profileMsg{}
		}
		return common.ErrorMsg(err)
	}

	team, err := b.RequireTeam(ctx)
	if err != nil {
		if errors.Is(err, proto.ErrNoTeam) {
			return profileMsg{profile: p}
		}
		return common.ErrorMsg(err)
	}

	return profileMsg{profile: p, team: &team}
}

// Update implements tea.Model.
func (ui *UI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		ui.SetSize(msg.Width, msg.Height)
		for _, p := range ui.pages {
			_, cmd := p.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return ui, tea.Batch(cmds...)
	case profileMsg:
		ui.state = loadedState
		ui.pages[loginPage] = login.New(ui.common)
		ui.pages[teamsPage] = teams.New(ui.common)
		switch {
		case msg.profile.ID == 0:
			ui.activePage = loginPage
		case msg.team != nil:
			cal := calendar.New(ui.common, msg.profile)
			ui.pages[calendarPage] = cal
			ui.activePage = calendarPage
			ui.header.SetText("EsportLab · " + msg.team.Name)
			cmds = append(cmds,
				func() tea.Msg { return calendar.TeamMsg(*msg.team) },
			)
		default:
			ui.activePage = teamsPage
			cmds = append(cmds, ui.pages[teamsPage].Init())
		}
		ui.SetSize(ui.common.Width, ui.common.Height)
	case teams.SelectMsg:
		b := ui.common.Backend()
		ctx := ui.common.Context()
		p, err := b.Me(ctx)
		if err != nil {
			return ui, common.ErrorCmd(err)
		}
		team := proto.Team(msg)
		cal := calendar.New(ui.common, p)
		ui.pages[calendarPage] = cal
		ui.activePage = calendarPage
		ui.header.SetText("EsportLab · " + team.Name)
		ui.SetSize(ui.common.Width, ui.common.Height)
		cmds = append(cmds, func() tea.Msg { return calendar.TeamMsg(team) })
	case common.ErrorMsg:
		ui.error = msg
		ui.state = errorState
		return ui, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ui.common.KeyMap.Back) && ui.error != nil:
			ui.error = nil
			ui.state = loadedState
		case key.Matches(msg, ui.common.KeyMap.Help):
			ui.footer.SetShowAll(!ui.footer.ShowAll())
			ui.SetSize(ui.common.Width, ui.common.Height)
		case key.Matches(msg, ui.common.KeyMap.Quit):
			return ui, tea.Quit
		case ui.activePage == calendarPage && key.Matches(msg, ui.common.KeyMap.Back):
			ui.activePage = teamsPage
			cmds = append(cmds, ui.pages[teamsPage].Init())
		}
	}

	if p, ok := ui.pages[ui.activePage]; ok {
		m, cmd := p.Update(msg)
		ui.pages[ui.activePage] = m.(common.Page)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return ui, tea.Batch(cmds...)
}

// View implements tea.Model.
func (ui *UI) View() string {
	var view string
	switch ui.state {
	case startState:
		view = "Loading…"
	case errorState:
		err := ui.common.Styles.ErrorTitle.Render("Bummer")
		err += "\n"
		err += ui.common.Styles.ErrorBody.Render(
			strings.TrimSpace(ui.error.Error()),
		)
		view = ui.common.Styles.Error.Render(err)
	case loadedState:
		pageView := ""
		if p, ok := ui.pages[ui.activePage]; ok {
			pageView = p.View()
		}
		view = lipgloss.JoinVertical(
			lipgloss.Top,
			ui.header.View(),
			pageView,
			ui.footer.View(),
		)
	default:
		view = "Unknown state :/ this is a bug!"
	}
	return ui.common.Zone.Scan(ui.common.Styles.App.Render(view))
}
