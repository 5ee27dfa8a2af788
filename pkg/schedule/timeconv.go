package schedule

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// DefaultTimezone is the fallback IANA timezone for display and editing.
const DefaultTimezone = "Europe/Berlin"

// ErrInvalidTimezone is returned when a timezone identifier is not
// recognized.
var ErrInvalidTimezone = errors.New("invalid timezone")

// LoadZone resolves an IANA timezone identifier.
func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, name)
	}

	return loc, nil
}

// ToZoned projects a UTC instant into the given timezone's wall-clock
// representation.
func ToZoned(t time.Time, loc *time.Location) time.Time {
	return t.In(loc)
}

// ToUTC projects a zoned instant back to UTC, used before sending edits to
// the backend.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// FormatDisplay formats an instant in the given timezone using a Go time
// layout.
func FormatDisplay(t time.Time, layout string, loc *time.Location) string {
	return t.In(loc).Format(layout)
}

// FormatTimeOfDay formats an instant as "HH:MM" wall-clock time in the given
// timezone.
func FormatTimeOfDay(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("15:04")
}

// CombineDateAndTime builds a precise instant from a calendar day and an
// "HH:MM" time-of-day string in the day's timezone. It is used when a user
// edits the time portion of a slot while keeping its day fixed.
func CombineDateAndTime(day time.Time, timeOfDay string) (time.Time, error) {
	tod, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time of day %q: %w", timeOfDay, err)
	}

	y, m, d := day.Date()
	return time.Date(y, m, d, tod.Hour(), tod.Minute(), 0, 0, day.Location()), nil
}

// DurationHours returns end minus start in hours, rounded to one decimal
// place. Rounding is round-half-up on the tenths digit, so 75 minutes is
// 1.3, not 1.2.
func DurationHours(start, end time.Time) float64 {
	// Tenths of an hour are minutes over six. Dividing minutes keeps the
	// half boundaries exact in floating point where hours*10 would not.
	tenths := end.Sub(start).Minutes() / 6
	return math.Floor(tenths+0.5) / 10
}
