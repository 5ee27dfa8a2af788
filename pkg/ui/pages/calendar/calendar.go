// Package calendar implements the weekly availability calendar page.
package calendar

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/esportlab/elab/pkg/proto"
	"github.com/esportlab/elab/pkg/schedule"
	"github.com/esportlab/elab/pkg/ui/common"
	"github.com/esportlab/elab/pkg/ui/components/statusbar"
)

type state int

const (
	loadingState state = iota
	loadedState
	formState
)

// OverviewMsg carries a freshly loaded overview for one week window.
type OverviewMsg struct {
	Window   schedule.Window
	Overview proto.Overview
}

// TeamMsg sets the team whose calendar is shown.
type TeamMsg proto.Team

type slotMutatedMsg struct{}

// Calendar is the weekly availability calendar page.
type Calendar struct {
	common    common.Common
	statusbar *statusbar.StatusBar
	spinner   spinner.Model

	team proto.Team
	me   proto.Profile
	loc  *time.Location
	win  schedule.Window
	view schedule.WeekView

	state     state
	form      *Form
	activeDay int
	activeRow int
}

// New returns a new Calendar page.
func New(c common.Common, me proto.Profile) *Calendar {
	s := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(c.Styles.Spinner))

	loc, err := schedule.LoadZone(c.Config().Timezone)
	if err != nil {
		loc = time.UTC
	}

	cal := &Calendar{
		common:    c,
		statusbar: statusbar.New(c),
		spinner:   s,
		me:        me,
		loc:       loc,
		win:       schedule.CurrentWeek(time.Now().In(loc)),
		state:     loadingState,
	}
	cal.SetSize(c.Width, c.Height)
	return cal
}

// SetSize implements common.Component.
func (c *Calendar) SetSize(width, height int) {
	c.common.SetSize(width, height)
	c.statusbar.SetSize(width, height)
	if c.form != nil {
		c.form.SetSize(width, height)
	}
}

// ShortHelp implements help.KeyMap.
func (c *Calendar) ShortHelp() []key.Binding {
	if c.state == formState && c.form != nil {
		return c.form.ShortHelp()
	}
	km := c.common.KeyMap
	return []key.Binding{
		km.PrevWeek,
		km.NextWeek,
		km.Today,
		c.addBinding(),
		km.Edit,
		km.Delete,
		km.Refresh,
	}
}

// FullHelp implements help.KeyMap.
func (c *Calendar) FullHelp() [][]key.Binding {
	if c.state == formState && c.form != nil {
		return c.form.FullHelp()
	}
	km := c.common.KeyMap
	return [][]key.Binding{
		{km.PrevWeek, km.NextWeek, km.Today},
		{c.addBinding(), km.Edit, km.Delete},
		{km.Refresh, km.UpDown},
	}
}

// Init implements tea.Model.
func (c *Calendar) Init() tea.Cmd {
	c.state = loadingState
	return tea.Batch(c.spinner.Tick, c.fetchCmd())
}

// Update implements tea.Model.
func (c *Calendar) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)
	switch msg := msg.(type) {
	case TeamMsg:
		c.team = proto.Team(msg)
		return c, c.Init()
	case OverviewMsg:
		// A response for a week the user already left is stale; the fetch
		// for the current window is still in flight.
		if msg.Window.Key() != c.win.Key() {
			break
		}
		c.view = schedule.NewWeekView(msg.Overview, c.win, c.loc)
		c.state = loadedState
		c.clampSelection()
		cmds = append(cmds, c.statusCmd())
	case slotMutatedMsg:
		c.state = loadingState
		cmds = append(cmds, c.spinner.Tick, c.fetchCmd())
	case spinner.TickMsg:
		if c.state == loadingState && c.spinner.ID() == msg.ID {
			s, cmd := c.spinner.Update(msg)
			c.spinner = s
			cmds = append(cmds, cmd)
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			for i := 0; i < 7; i++ {
				if c.common.Zone.Get(c.dayZoneID(i)).InBounds(msg) {
					c.activeDay = i
					c.activeRow = 0
					cmds = append(cmds, c.statusCmd())
					break
				}
			}
		}
	case tea.KeyMsg:
		if c.state == formState && c.form != nil {
			f, cmd := c.form.Update(msg)
			c.form = f.(*Form)
			return c, cmd
		}
		cmds = append(cmds, c.handleKey(msg)...)
	case FormClosedMsg:
		c.state = loadedState
		c.form = nil
	case FormSubmittedMsg:
		c.form = nil
		cmds = append(cmds, func() tea.Msg { return slotMutatedMsg{} })
	}

	if c.state == formState && c.form != nil {
		f, cmd := c.form.Update(msg)
		c.form = f.(*Form)
		cmds = append(cmds, cmd)
	}

	s, cmd := c.statusbar.Update(msg)
	c.statusbar = s.(*statusbar.StatusBar)
	cmds = append(cmds, cmd)

	return c, tea.Batch(cmds...)
}

func (c *Calendar) handleKey(msg tea.KeyMsg) []tea.Cmd {
	km := c.common.KeyMap
	cmds := make([]tea.Cmd, 0)
	switch {
	case key.Matches(msg, km.PrevWeek):
		c.win = c.win.Shift(schedule.Prev)
		c.state = loadingState
		cmds = append(cmds, c.spinner.Tick, c.fetchCmd())
	case key.Matches(msg, km.NextWeek):
		c.win = c.win.Shift(schedule.Next)
		c.state = loadingState
		cmds = append(cmds, c.spinner.Tick, c.fetchCmd())
	case key.Matches(msg, km.Today):
		c.win = schedule.CurrentWeek(time.Now().In(c.loc))
		c.state = loadingState
		cmds = append(cmds, c.spinner.Tick, c.fetchCmd())
	case key.Matches(msg, km.Refresh):
		c.state = loadingState
		cmds = append(cmds, c.spinner.Tick, c.refreshCmd())
	case key.Matches(msg, km.UpDown):
		switch msg.String() {
		case "up", "k":
			if c.activeRow > 0 {
				c.activeRow--
			}
		case "down", "j":
			if c.activeRow < len(c.daySlots(c.activeDay))-1 {
				c.activeRow++
			}
		}
		cmds = append(cmds, c.statusCmd())
	case msg.String() == "tab":
		c.activeDay = (c.activeDay + 1) % 7
		c.activeRow = 0
		cmds = append(cmds, c.statusCmd())
	case msg.String() == "shift+tab":
		c.activeDay = (c.activeDay + 6) % 7
		c.activeRow = 0
		cmds = append(cmds, c.statusCmd())
	case key.Matches(msg, km.Add):
		if !c.canQuickAdd(c.activeDay) {
			cmds = append(cmds, c.noticeCmd("you already have slots on this day; edit or delete them"))
			break
		}
		day := c.view.Days[c.activeDay]
		start, end := schedule.QuickAddDefaults(day)
		c.form = NewForm(c.common, c.loc, day, nil, start, end)
		c.state = formState
		cmds = append(cmds, c.form.Init())
	case key.Matches(msg, km.Edit):
		if slot, ok := c.selectedSlot(); ok && schedule.IsEditable(slot, c.me.ID) {
			day := c.view.Days[c.activeDay]
			c.form = NewForm(c.common, c.loc, day, &slot, slot.StartsAt.In(c.loc), slot.EndsAt.In(c.loc))
			c.state = formState
			cmds = append(cmds, c.form.Init())
		}
	case key.Matches(msg, km.Delete):
		if slot, ok := c.selectedSlot(); ok && schedule.IsEditable(slot, c.me.ID) {
			cmds = append(cmds, c.deleteCmd(slot.ID))
		}
	}
	return cmds
}

func (c *Calendar) dayZoneID(i int) string {
	return fmt.Sprintf("calendar-day-%d", i)
}

// daySlots returns every member's slots for the i-th day, own slots first.
func (c *Calendar) daySlots(i int) []proto.Slot {
	if i < 0 || i > 6 {
		return nil
	}
	day := schedule.Day(c.view.Days[i], c.loc)
	var own, others []proto.Slot
	for _, m := range c.view.Members {
		for _, s := range m.Buckets[day] {
			if s.MemberID == c.me.ID {
				own = append(own, s)
			} else {
				others = append(others, s)
			}
		}
	}
	return append(own, others...)
}

// canQuickAdd reports whether the viewing member may open the create form
// from the i-th day cell. Days already holding their own slots only offer
// edit and delete.
func (c *Calendar) canQuickAdd(i int) bool {
	if i < 0 || i > 6 {
		return false
	}
	day := schedule.Day(c.view.Days[i], c.loc)
	for _, m := range c.view.Members {
		if m.MemberID == c.me.ID {
			return m.CanQuickAdd(day)
		}
	}
	return true
}

// addBinding is the quick-add key with its enabled state following the
// active day, so the help bar hides it where it would be refused.
func (c *Calendar) addBinding() key.Binding {
	add := c.common.KeyMap.Add
	add.SetEnabled(c.canQuickAdd(c.activeDay))
	return add
}

func (c *Calendar) selectedSlot() (proto.Slot, bool) {
	slots := c.daySlots(c.activeDay)
	if c.activeRow < 0 || c.activeRow >= len(slots) {
		return proto.Slot{}, false
	}
	return slots[c.activeRow], true
}

func (c *Calendar) clampSelection() {
	if n := len(c.daySlots(c.activeDay)); c.activeRow >= n {
		c.activeRow = 0
	}
}

// fetchCmd snapshots the window before the command goroutine starts; the
// user may shift weeks while the fetch is in flight.
func (c *Calendar) fetchCmd() tea.Cmd {
	win, teamID := c.win, c.team.ID
	return func() tea.Msg {
		o, err := c.common.Backend().Overview(c.common.Context(), teamID, win)
		if err != nil {
			return common.ErrorMsg(err)
		}
		return OverviewMsg{Window: win, Overview: o}
	}
}

func (c *Calendar) refreshCmd() tea.Cmd {
	win, teamID := c.win, c.team.ID
	return func() tea.Msg {
		b := c.common.Backend()
		if err := b.RefreshOverviews(c.common.Context(), teamID, win); err != nil {
			return common.ErrorMsg(err)
		}
		o, err := b.Overview(c.common.Context(), teamID, win)
		if err != nil {
			return common.ErrorMsg(err)
		}
		return OverviewMsg{Window: win, Overview: o}
	}
}

func (c *Calendar) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		if err := c.common.Backend().DeleteSlot(c.common.Context(), id); err != nil {
			return common.ErrorMsg(err)
		}
		return slotMutatedMsg{}
	}
}

// noticeCmd flashes a hint in the statusbar without changing the page state.
func (c *Calendar) noticeCmd(info string) tea.Cmd {
	return func() tea.Msg {
		day := c.view.Days[c.activeDay]
		return statusbar.StatusBarMsg{
			Key:   c.team.Name,
			Value: schedule.FormatDisplay(day, "Monday, Jan 2", c.loc),
			Info:  info,
		}
	}
}

func (c *Calendar) statusCmd() tea.Cmd {
	return func() tea.Msg {
		day := c.view.Days[c.activeDay]
		value := schedule.FormatDisplay(day, "Monday, Jan 2", c.loc)
		info := ""
		if slot, ok := c.selectedSlot(); ok {
			info = fmt.Sprintf("%s–%s %s",
				schedule.FormatTimeOfDay(slot.StartsAt, c.loc),
				schedule.FormatTimeOfDay(slot.EndsAt, c.loc),
				slot.MemberDisplayName,
			)
		}
		return statusbar.StatusBarMsg{
			Key:   c.team.Name,
			Value: value,
			Info:  info,
		}
	}
}

// View implements tea.Model.
func (c *Calendar) View() string {
	if c.state == formState && c.form != nil {
		return c.form.View()
	}

	if c.state == loadingState {
		return lipgloss.JoinVertical(lipgloss.Top,
			c.titleView(),
			c.spinner.View()+" Loading week…",
		)
	}

	return lipgloss.JoinVertical(lipgloss.Top,
		c.titleView(),
		c.gridView(),
		c.statsView(),
		c.statusbar.View(),
	)
}

func (c *Calendar) titleView() string {
	st := c.common.Styles
	from, to := c.win.Start, c.win.End
	title := st.WeekTitle.Render(fmt.Sprintf("%s – %s",
		from.Format("Mon, Jan 2"),
		to.Format("Mon, Jan 2, 2006"),
	))
	if c.win.IsCurrent(time.Now().In(c.loc)) {
		title += st.WeekTitleBadge.Render("current week")
	}
	return title
}

func (c *Calendar) gridView() string {
	st := c.common.Styles
	colWidth := c.common.Width/7 - 2
	if colWidth < 10 {
		colWidth = 10
	}

	today := schedule.Day(time.Now().In(c.loc), c.loc)
	cols := make([]string, 0, 7)
	for i, day := range c.view.Days {
		dk := schedule.Day(day, c.loc)

		heading := st.DayHeading
		if dk == today {
			heading = st.DayHeadingToday
		}
		head := heading.Width(colWidth).Render(day.Format("Mon 2"))

		cell := st.DayCell
		if i == c.activeDay {
			cell = st.DayCellActive
		}

		body := c.dayView(i, colWidth)
		col := lipgloss.JoinVertical(lipgloss.Top, head, cell.Width(colWidth).Render(body))
		cols = append(cols, c.common.Zone.Mark(c.dayZoneID(i), col))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (c *Calendar) dayView(i, width int) string {
	st := c.common.Styles
	slots := c.daySlots(i)
	if len(slots) == 0 {
		return st.NoSlots.Render("–")
	}

	lines := make([]string, 0, len(slots))
	for row, s := range slots {
		mark := " "
		if i == c.activeDay && row == c.activeRow {
			mark = ">"
		}

		style := st.SlotAvailable
		if !s.Available {
			style = st.SlotUnavailable
		}

		line := fmt.Sprintf("%s%s–%s %s",
			mark,
			schedule.FormatTimeOfDay(s.StartsAt, c.loc),
			schedule.FormatTimeOfDay(s.EndsAt, c.loc),
			s.MemberDisplayName,
		)
		lines = append(lines, style.MaxWidth(width).Render(line))
		if s.Note != "" {
			lines = append(lines, st.SlotNote.MaxWidth(width).Render(" "+s.Note))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Top, lines...)
}

func (c *Calendar) statsView() string {
	st := c.common.Styles
	lines := make([]string, 0, len(c.view.Members))
	for _, m := range c.view.Members {
		hours := float64(m.Stats.AvailableMinutes) / 60
		lines = append(lines, fmt.Sprintf("%s %s",
			st.MemberName.Render(m.DisplayName),
			st.MemberStats.Render(fmt.Sprintf("%s available (%.0f%%, %d slots)",
				humanize.FtoaWithDigits(hours, 1)+"h",
				m.Stats.AvailabilityPercentage,
				m.Stats.AvailableSlots+m.Stats.UnavailableSlots,
			)),
		))
	}
	return lipgloss.NewStyle().MarginTop(1).Render(
		lipgloss.JoinVertical(lipgloss.Top, lines...),
	)
}
