package schedule

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func berlin(t *testing.T) *time.Location {
	t.Helper()
	loc, err := LoadZone("Europe/Berlin")
	if err != nil {
		t.Fatal(err)
	}
	return loc
}

func TestCurrentWeekStartsMonday(t *testing.T) {
	is := is.New(t)
	loc := berlin(t)

	refs := []time.Time{
		time.Date(2025, 6, 11, 15, 30, 0, 0, loc),  // Wednesday
		time.Date(2025, 6, 9, 0, 0, 0, 0, loc),     // Monday itself
		time.Date(2025, 6, 15, 23, 59, 59, 0, loc), // Sunday night
		time.Date(2025, 1, 1, 12, 0, 0, 0, loc),
		time.Date(2024, 12, 31, 12, 0, 0, 0, loc),
	}

	for _, ref := range refs {
		w := CurrentWeek(ref)
		is.Equal(w.Start.Weekday(), time.Monday)
		is.Equal(w.End.Weekday(), time.Sunday)
		is.Equal(w.End, w.Start.AddDate(0, 0, 6))
	}
}

func TestCurrentWeekScenario(t *testing.T) {
	is := is.New(t)
	loc := berlin(t)

	// Wednesday 2025-06-11 sits in the week of Monday the 9th.
	w := CurrentWeek(time.Date(2025, 6, 11, 10, 0, 0, 0, loc))
	is.Equal(w.Start, time.Date(2025, 6, 9, 0, 0, 0, 0, loc))
	is.Equal(w.End, time.Date(2025, 6, 15, 0, 0, 0, 0, loc))
}

func TestShiftRoundTrip(t *testing.T) {
	is := is.New(t)
	loc := berlin(t)

	w := CurrentWeek(time.Date(2025, 6, 11, 10, 0, 0, 0, loc))
	is.Equal(w.Shift(Next).Shift(Prev), w)
	is.Equal(w.Shift(Prev).Shift(Next), w)

	next := w.Shift(Next)
	is.Equal(next.Start, w.Start.AddDate(0, 0, 7))
	is.Equal(next.End, w.End.AddDate(0, 0, 7))
}

func TestShiftAcrossDSTKeepsMidnight(t *testing.T) {
	is := is.New(t)
	loc := berlin(t)

	// The week before the March 2025 DST transition.
	w := CurrentWeek(time.Date(2025, 3, 26, 12, 0, 0, 0, loc))
	prev := w.Shift(Prev)
	is.Equal(prev.Start.Hour(), 0)
	is.Equal(prev.End.Hour(), 0)
	is.Equal(prev.Start.Weekday(), time.Monday)
}

func TestIsCurrent(t *testing.T) {
	is := is.New(t)
	loc := berlin(t)

	ref := time.Date(2025, 6, 11, 10, 0, 0, 0, loc)
	w := CurrentWeek(ref)
	is.True(w.IsCurrent(ref))
	is.True(!w.Shift(Next).IsCurrent(ref))
	is.True(!w.Shift(Prev).IsCurrent(ref))

	// Any instant inside the same week shares the window.
	is.True(w.IsCurrent(time.Date(2025, 6, 15, 23, 0, 0, 0, loc)))
}

func TestDays(t *testing.T) {
	is := is.New(t)
	loc := berlin(t)

	w := CurrentWeek(time.Date(2025, 6, 11, 10, 0, 0, 0, loc))
	days := w.Days()
	is.Equal(len(days), 7)
	is.Equal(days[0], w.Start)
	is.Equal(days[6], w.End)
	for i, d := range days {
		is.Equal(d, w.Start.AddDate(0, 0, i))
		is.Equal(d.Hour(), 0)
	}
}

func TestRangeCoversSunday(t *testing.T) {
	is := is.New(t)
	loc := berlin(t)

	w := CurrentWeek(time.Date(2025, 6, 11, 10, 0, 0, 0, loc))
	from, to := w.Range()
	is.Equal(from, w.Start)
	is.Equal(to, time.Date(2025, 6, 15, 23, 59, 59, 0, loc))
}

func TestKeyIdentity(t *testing.T) {
	is := is.New(t)
	loc := berlin(t)

	w := CurrentWeek(time.Date(2025, 6, 11, 10, 0, 0, 0, loc))
	is.Equal(w.Key(), "2025-06-09")
	is.True(w.Key() != w.Shift(Next).Key())
}
