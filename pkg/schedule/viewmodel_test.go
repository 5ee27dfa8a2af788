package schedule

import (
	"math/rand"
	"testing"
	"time"

	"github.com/esportlab/elab/pkg/proto"
	"github.com/matryer/is"
)

func slot(id, memberID int64, start time.Time, d time.Duration, available bool) proto.Slot {
	return proto.Slot{
		ID:        id,
		MemberID:  memberID,
		StartsAt:  start.UTC(),
		EndsAt:    start.Add(d).UTC(),
		Available: available,
	}
}

func TestComputeStatsSingleSlot(t *testing.T) {
	is := is.New(t)
	loc := berlin(t)

	mon := time.Date(2025, 6, 9, 9, 0, 0, 0, loc)
	s := ComputeStats([]proto.Slot{slot(1, 7, mon, 3*time.Hour, true)})

	is.Equal(s.AvailableMinutes, 180)
	is.Equal(s.UnavailableMinutes, 0)
	is.Equal(s.AvailableSlots, 1)
	is.Equal(s.UnavailableSlots, 0)
	is.Equal(s.AvailabilityPercentage, 100.0)
}

func TestComputeStatsEmpty(t *testing.T) {
	is := is.New(t)
	s := ComputeStats(nil)
	is.Equal(s.AvailabilityPercentage, 0.0)
	is.Equal(s.AvailableMinutes+s.UnavailableMinutes, 0)
}

func TestComputeStatsOverlapsCountIndependently(t *testing.T) {
	is := is.New(t)
	loc := berlin(t)

	mon := time.Date(2025, 6, 9, 0, 0, 0, 0, loc)
	avail, _ := CombineDateAndTime(mon, "09:00")
	unavail, _ := CombineDateAndTime(mon, "10:00")

	s := ComputeStats([]proto.Slot{
		slot(1, 7, avail, 2*time.Hour, true),
		slot(2, 7, unavail, 2*time.Hour, false),
	})

	is.Equal(s.AvailableMinutes, 120)
	is.Equal(s.UnavailableMinutes, 120)
	is.Equal(s.AvailabilityPercentage, 50.0)
}

func TestComputeStatsOrderIndependent(t *testing.T) {
	is := is.New(t)
	loc := berlin(t)

	base := time.Date(2025, 6, 9, 8, 0, 0, 0, loc)
	slots := []proto.Slot{
		slot(1, 7, base, 90*time.Minute, true),
		slot(2, 7, base.Add(2*time.Hour), time.Hour, false),
		slot(3, 7, base.Add(26*time.Hour), 45*time.Minute, true),
		slot(4, 7, base.Add(50*time.Hour), 30*time.Minute, false),
	}

	want := ComputeStats(slots)
	total := want.AvailableMinutes + want.UnavailableMinutes
	is.Equal(total, 90+60+45+30)

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := append([]proto.Slot(nil), slots...)
		r.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		is.Equal(ComputeStats(shuffled), want)
	}
}

func TestBucketByDayPartition(t *testing.T) {
	is := is.New(t)
	loc := berlin(t)

	w := CurrentWeek(time.Date(2025, 6, 11, 10, 0, 0, 0, loc))
	days := w.Days()

	slots := []proto.Slot{
		slot(1, 7, time.Date(2025, 6, 9, 9, 0, 0, 0, loc), time.Hour, true),
		slot(2, 7, time.Date(2025, 6, 9, 20, 0, 0, 0, loc), time.Hour, false),
		slot(3, 7, time.Date(2025, 6, 12, 18, 0, 0, 0, loc), 2*time.Hour, true),
		slot(4, 7, time.Date(2025, 6, 15, 23, 0, 0, 0, loc), 2*time.Hour, true),
		// Outside the week; must be dropped.
		slot(5, 7, time.Date(2025, 6, 16, 9, 0, 0, 0, loc), time.Hour, true),
		slot(6, 7, time.Date(2025, 6, 8, 9, 0, 0, 0, loc), time.Hour, true),
	}

	buckets := BucketByDay(slots, days, loc)

	seen := map[int64]int{}
	total := 0
	for _, b := range buckets {
		total += len(b)
		for _, s := range b {
			seen[s.ID]++
		}
	}

	// Every in-week slot lands in exactly one bucket; none are dropped or
	// duplicated.
	is.Equal(total, 4)
	for _, id := range []int64{1, 2, 3, 4} {
		is.Equal(seen[id], 1)
	}
	is.Equal(seen[5], 0)
	is.Equal(seen[6], 0)

	mon := Day(days[0], loc)
	is.Equal(len(buckets[mon]), 2)
	is.True(buckets[mon][0].StartsAt.Before(buckets[mon][1].StartsAt))
}

func TestBucketByDayMidnightSpanStaysOnStartDay(t *testing.T) {
	is := is.New(t)
	loc := berlin(t)

	w := CurrentWeek(time.Date(2025, 6, 11, 10, 0, 0, 0, loc))

	// Friday 23:00 until Saturday 01:00: attributed wholly to Friday.
	s := slot(9, 7, time.Date(2025, 6, 13, 23, 0, 0, 0, loc), 2*time.Hour, true)
	buckets := BucketByDay([]proto.Slot{s}, w.Days(), loc)

	is.Equal(len(buckets[DayKey("2025-06-13")]), 1)
	is.Equal(len(buckets[DayKey("2025-06-14")]), 0)
}

func TestBucketByDayUsesZonedStartDate(t *testing.T) {
	is := is.New(t)
	loc := berlin(t)

	w := CurrentWeek(time.Date(2025, 6, 11, 10, 0, 0, 0, loc))

	// 22:30 UTC on Monday is already Tuesday 00:30 in Berlin.
	s := slot(10, 7, time.Date(2025, 6, 9, 22, 30, 0, 0, time.UTC), time.Hour, true)
	buckets := BucketByDay([]proto.Slot{s}, w.Days(), loc)

	is.Equal(len(buckets[DayKey("2025-06-09")]), 0)
	is.Equal(len(buckets[DayKey("2025-06-10")]), 1)
}

func TestIsEditable(t *testing.T) {
	is := is.New(t)
	loc := berlin(t)

	s := slot(1, 7, time.Date(2025, 6, 9, 9, 0, 0, 0, loc), time.Hour, true)
	is.True(IsEditable(s, 7))
	is.True(!IsEditable(s, 8))
	is.True(!IsEditable(s, 0))
}

func TestQuickAdd(t *testing.T) {
	is := is.New(t)
	loc := berlin(t)

	day := time.Date(2025, 6, 9, 0, 0, 0, 0, loc)
	start, end := QuickAddDefaults(day)
	is.Equal(start, time.Date(2025, 6, 9, 9, 0, 0, 0, loc))
	is.Equal(end, time.Date(2025, 6, 9, 17, 0, 0, 0, loc))

	w := CurrentWeek(day)
	m := NewMemberView(proto.MemberAvailability{
		MemberID: 7,
		Slots: []proto.Slot{
			slot(1, 7, time.Date(2025, 6, 9, 9, 0, 0, 0, loc), time.Hour, true),
		},
	}, w, loc)

	// The occupied Monday blocks quick-add; empty Tuesday exposes it.
	is.True(!m.CanQuickAdd(DayKey("2025-06-09")))
	is.True(m.CanQuickAdd(DayKey("2025-06-10")))
}

func TestValidateSlot(t *testing.T) {
	is := is.New(t)
	loc := berlin(t)

	start := time.Date(2025, 6, 9, 9, 0, 0, 0, loc)

	is.NoErr(ValidateSlot(start, start.Add(time.Hour), ""))
	is.True(ValidateSlot(start, start, "") != nil)
	is.True(ValidateSlot(start, start.Add(-time.Hour), "") != nil)

	long := make([]rune, MaxNoteLength+1)
	for i := range long {
		long[i] = 'x'
	}
	is.True(ValidateSlot(start, start.Add(time.Hour), string(long)) != nil)
	is.NoErr(ValidateSlot(start, start.Add(time.Hour), string(long[:MaxNoteLength])))
}

func TestNewWeekView(t *testing.T) {
	is := is.New(t)
	loc := berlin(t)

	w := CurrentWeek(time.Date(2025, 6, 11, 10, 0, 0, 0, loc))
	ov := proto.Overview{
		TeamID: 3,
		Members: []proto.MemberAvailability{
			{MemberID: 7, DisplayName: "ember", Slots: []proto.Slot{
				slot(1, 7, time.Date(2025, 6, 9, 9, 0, 0, 0, loc), 3*time.Hour, true),
				// Next week's slot is excluded from buckets and stats.
				slot(2, 7, time.Date(2025, 6, 17, 9, 0, 0, 0, loc), time.Hour, true),
			}},
			{MemberID: 8, DisplayName: "frost"},
		},
	}

	view := NewWeekView(ov, w, loc)
	is.Equal(len(view.Members), 2)
	is.Equal(view.Members[0].Stats.AvailableMinutes, 180)
	is.Equal(view.Members[0].Stats.AvailabilityPercentage, 100.0)
	is.Equal(len(view.Members[1].Buckets), 0)
	is.Equal(view.Days[0], w.Start)
}
