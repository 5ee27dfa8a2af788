package calendar

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/esportlab/elab/pkg/proto"
	"github.com/esportlab/elab/pkg/schedule"
	"github.com/esportlab/elab/pkg/ui/common"
	"github.com/matryer/is"
)

func testCalendar(t *testing.T) *Calendar {
	t.Helper()
	c := common.NewCommon(context.TODO(), lipgloss.DefaultRenderer(), 120, 40)
	cal := New(c, proto.Profile{ID: 1, DisplayName: "kai"})
	cal.team = proto.Team{ID: 3, Name: "Alpha"}
	return cal
}

func overviewFor(members ...proto.MemberAvailability) proto.Overview {
	return proto.Overview{TeamID: 3, TeamName: "Alpha", Members: members}
}

// slotOn builds a slot on the n-th day of the calendar's current week.
func slotOn(cal *Calendar, memberID int64, dayIdx int) proto.Slot {
	day := cal.win.Days()[dayIdx]
	y, m, d := day.In(cal.loc).Date()
	return proto.Slot{
		ID:        int64(100 + dayIdx),
		MemberID:  memberID,
		StartsAt:  time.Date(y, m, d, 10, 0, 0, 0, cal.loc),
		EndsAt:    time.Date(y, m, d, 12, 0, 0, 0, cal.loc),
		Available: true,
	}
}

func TestStaleOverviewDropped(t *testing.T) {
	is := is.New(t)
	cal := testCalendar(t)

	// The first week's fetch is still in flight when the user moves on.
	stale := cal.win
	cal.win = cal.win.Shift(schedule.Next)
	cal.state = loadingState

	_, _ = cal.Update(OverviewMsg{Window: stale, Overview: overviewFor()})
	is.Equal(cal.state, loadingState)

	_, _ = cal.Update(OverviewMsg{Window: cal.win, Overview: overviewFor()})
	is.Equal(cal.state, loadedState)
}

func TestLastRequestWinsByWindow(t *testing.T) {
	is := is.New(t)
	cal := testCalendar(t)

	cur := cal.win
	mine := proto.MemberAvailability{
		MemberID:    1,
		DisplayName: "kai",
		Slots:       []proto.Slot{slotOn(cal, 1, 0)},
	}

	_, _ = cal.Update(OverviewMsg{Window: cur, Overview: overviewFor(mine)})
	is.Equal(len(cal.view.Members), 1)

	// A late response from a previously viewed week must not replace the
	// rendered view, no matter the arrival order.
	_, _ = cal.Update(OverviewMsg{Window: cur.Shift(schedule.Prev), Overview: overviewFor()})
	is.Equal(len(cal.view.Members), 1)
	is.Equal(cal.view.Window.Key(), cur.Key())
}

func TestAddBlockedOnDayWithOwnSlots(t *testing.T) {
	is := is.New(t)
	cal := testCalendar(t)

	mine := proto.MemberAvailability{
		MemberID:    1,
		DisplayName: "kai",
		Slots:       []proto.Slot{slotOn(cal, 1, 0)},
	}
	_, _ = cal.Update(OverviewMsg{Window: cal.win, Overview: overviewFor(mine)})

	cal.activeDay = 0
	is.True(!cal.addBinding().Enabled())
	_, _ = cal.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	is.Equal(cal.state, loadedState)
	is.True(cal.form == nil)

	// An empty day still offers the create form.
	cal.activeDay = 1
	is.True(cal.addBinding().Enabled())
	_, _ = cal.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	is.Equal(cal.state, formState)
	is.True(cal.form != nil)
}

func TestAddAllowedWhenOnlyOthersHaveSlots(t *testing.T) {
	is := is.New(t)
	cal := testCalendar(t)

	other := proto.MemberAvailability{
		MemberID:    2,
		DisplayName: "lena",
		Slots:       []proto.Slot{slotOn(cal, 2, 0)},
	}
	me := proto.MemberAvailability{MemberID: 1, DisplayName: "kai"}
	_, _ = cal.Update(OverviewMsg{Window: cal.win, Overview: overviewFor(me, other)})

	cal.activeDay = 0
	is.True(cal.addBinding().Enabled())
	_, _ = cal.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	is.Equal(cal.state, formState)
}
