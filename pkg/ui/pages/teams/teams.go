// Package teams implements the team selection page.
package teams

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/esportlab/elab/pkg/proto"
	"github.com/esportlab/elab/pkg/ui/common"
)

// SelectMsg is sent when a team is chosen.
type SelectMsg proto.Team

// TeamsMsg carries the loaded team list.
type TeamsMsg []proto.Team

// Item is a list item for a team.
type Item struct {
	Team proto.Team
}

// Title implements list.DefaultItem.
func (i Item) Title() string { return i.Team.Name }

// Description implements list.DefaultItem.
func (i Item) Description() string {
	desc := fmt.Sprintf("%d members", i.Team.MemberCount)
	if i.Team.IsCurrentUserOwner {
		desc += " · owner"
	} else if i.Team.IsCurrentUserAdmin {
		desc += " · admin"
	}
	return desc
}

// FilterValue implements list.Item.
func (i Item) FilterValue() string { return i.Team.Name }

// Teams is the team selection page.
type Teams struct {
	common common.Common
	list   list.Model
}

// New returns a new Teams page.
func New(c common.Common) *Teams {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), c.Width, c.Height)
	l.SetShowTitle(true)
	l.Title = "Teams"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.DisableQuitKeybindings()
	t := &Teams{
		common: c,
		list:   l,
	}
	t.SetSize(c.Width, c.Height)
	return t
}

// SetSize implements common.Component.
func (t *Teams) SetSize(width, height int) {
	t.common.SetSize(width, height)
	t.list.SetSize(width, height)
}

// ShortHelp implements help.KeyMap.
func (t *Teams) ShortHelp() []key.Binding {
	return []key.Binding{
		t.common.KeyMap.UpDown,
		t.common.KeyMap.Select,
		t.list.KeyMap.Filter,
	}
}

// FullHelp implements help.KeyMap.
func (t *Teams) FullHelp() [][]key.Binding {
	k := t.list.KeyMap
	return [][]key.Binding{
		{k.CursorUp, k.CursorDown, k.NextPage, k.PrevPage},
		{k.Filter, k.ClearFilter, t.common.KeyMap.Select},
	}
}

// Init implements tea.Model.
func (t *Teams) Init() tea.Cmd {
	return t.fetchCmd
}

// Update implements tea.Model.
func (t *Teams) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)
	switch msg := msg.(type) {
	case TeamsMsg:
		items := make([]list.Item, 0, len(msg))
		for _, team := range msg {
			items = append(items, Item{Team: team})
		}
		cmds = append(cmds, t.list.SetItems(items))
	case tea.KeyMsg:
		if t.list.FilterState() != list.Filtering &&
			key.Matches(msg, t.common.KeyMap.Select) {
			if item, ok := t.list.SelectedItem().(Item); ok {
				return t, t.selectCmd(item.Team)
			}
		}
	}

	l, cmd := t.list.Update(msg)
	t.list = l
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return t, tea.Batch(cmds...)
}

// View implements tea.Model.
func (t *Teams) View() string {
	return t.list.View()
}

func (t *Teams) fetchCmd() tea.Msg {
	b := t.common.Backend()
	ctx := t.common.Context()

	p, err := b.Me(ctx)
	if err != nil {
		return common.ErrorMsg(err)
	}

	// The backend reports a single membership; selection still goes
	// through the list so the flow stays the same when more arrive.
	if team, ok := p.Membership().Team(); ok {
		return TeamsMsg{team}
	}
	return TeamsMsg{}
}

func (t *Teams) selectCmd(team proto.Team) tea.Cmd {
	return func() tea.Msg {
		if err := t.common.Backend().SetSelectedTeam(t.common.Context(), team.ID); err != nil {
			return common.ErrorMsg(err)
		}
		return SelectMsg(team)
	}
}
