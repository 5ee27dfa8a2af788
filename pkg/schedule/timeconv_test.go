package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestLoadZone(t *testing.T) {
	is := is.New(t)

	loc, err := LoadZone("Europe/Berlin")
	is.NoErr(err)
	is.Equal(loc.String(), "Europe/Berlin")

	// Empty falls back to the default.
	loc, err = LoadZone("")
	is.NoErr(err)
	is.Equal(loc.String(), DefaultTimezone)

	_, err = LoadZone("Mars/Olympus_Mons")
	is.True(errors.Is(err, ErrInvalidTimezone))
}

func TestZonedRoundTrip(t *testing.T) {
	is := is.New(t)
	loc := berlin(t)

	utc := time.Date(2025, 6, 9, 7, 0, 0, 0, time.UTC)
	zoned := ToZoned(utc, loc)
	is.Equal(zoned.Hour(), 9) // CEST is UTC+2 in June
	is.True(ToUTC(zoned).Equal(utc))
}

func TestFormatTimeOfDay(t *testing.T) {
	is := is.New(t)
	loc := berlin(t)

	utc := time.Date(2025, 6, 9, 7, 5, 0, 0, time.UTC)
	is.Equal(FormatTimeOfDay(utc, loc), "09:05")
	is.Equal(FormatDisplay(utc, "Mon 02 Jan", loc), "Mon 09 Jun")
}

func TestCombineDateAndTime(t *testing.T) {
	is := is.New(t)
	loc := berlin(t)

	day := time.Date(2025, 6, 9, 0, 0, 0, 0, loc)
	got, err := CombineDateAndTime(day, "18:30")
	is.NoErr(err)
	is.Equal(got, time.Date(2025, 6, 9, 18, 30, 0, 0, loc))

	_, err = CombineDateAndTime(day, "25:99")
	is.True(err != nil)
	_, err = CombineDateAndTime(day, "six pm")
	is.True(err != nil)
}

func TestDurationHoursRoundsHalfUp(t *testing.T) {
	is := is.New(t)

	start := time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC)

	// 75 minutes is 1.25h; half-up rounding on the tenths digit gives 1.3.
	is.Equal(DurationHours(start, start.Add(75*time.Minute)), 1.3)
	is.Equal(DurationHours(start, start.Add(60*time.Minute)), 1.0)
	is.Equal(DurationHours(start, start.Add(81*time.Minute)), 1.4) // 1.35 -> 1.4
	is.Equal(DurationHours(start, start.Add(9*time.Minute)), 0.2)  // 0.15 -> 0.2
	is.Equal(DurationHours(start, start), 0.0)
}
