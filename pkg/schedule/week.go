// Package schedule implements the weekly availability calendar model: week
// windows, timezone projection, day bucketing and per-member statistics.
package schedule

import (
	"time"
)

// Direction is a week navigation direction.
type Direction int8

const (
	// Prev navigates one week back.
	Prev Direction = iota - 1
	_
	// Next navigates one week forward.
	Next
)

// Window is a Monday–Sunday week range. Start is the Monday midnight of the
// week in the viewing timezone and End the Sunday midnight six days later.
type Window struct {
	Start time.Time
	End   time.Time
}

// CurrentWeek returns the week window containing ref, using ISO week
// semantics (weeks start on Monday), in ref's location.
func CurrentWeek(ref time.Time) Window {
	y, m, d := ref.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, ref.Location())

	// time.Weekday numbers Sunday as 0.
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)

	return Window{
		Start: start,
		End:   start.AddDate(0, 0, 6),
	}
}

// Shift returns a window exactly one week earlier or later. Both bounds move
// by the same delta so the window stays seven calendar days wide.
func (w Window) Shift(dir Direction) Window {
	days := 7 * int(dir)
	return Window{
		Start: w.Start.AddDate(0, 0, days),
		End:   w.End.AddDate(0, 0, days),
	}
}

// IsCurrent reports whether w is the week containing ref.
func (w Window) IsCurrent(ref time.Time) bool {
	cur := CurrentWeek(ref.In(w.Start.Location()))
	wy, wm, wd := w.Start.Date()
	cy, cm, cd := cur.Start.Date()
	return wy == cy && wm == cm && wd == cd
}

// Days returns the seven days of the window, Monday through Sunday, each the
// midnight instant of that calendar day in the window's timezone.
func (w Window) Days() [7]time.Time {
	var days [7]time.Time
	for i := range days {
		days[i] = w.Start.AddDate(0, 0, i)
	}
	return days
}

// Range returns the window's bounds for a backend range query: Monday
// midnight through the last second of Sunday.
func (w Window) Range() (from, to time.Time) {
	return w.Start, w.End.AddDate(0, 0, 1).Add(-time.Second)
}

// Key returns a stable identity for the window, used for cache keying. Two
// windows with the same starting calendar day share a key.
func (w Window) Key() string {
	return w.Start.Format(time.DateOnly)
}
