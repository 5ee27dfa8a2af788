package schedule

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/esportlab/elab/pkg/proto"
)

// MaxNoteLength is the maximum length of a slot note.
const MaxNoteLength = 500

// DayKey identifies a calendar day in the viewing timezone.
type DayKey string

// Day returns the day key of an instant in the given timezone.
func Day(t time.Time, loc *time.Location) DayKey {
	return DayKey(t.In(loc).Format(time.DateOnly))
}

// Stats are per-member aggregate numbers for one week. Overlapping or
// duplicate slots are not merged; every slot counts independently.
type Stats struct {
	AvailableMinutes   int
	UnavailableMinutes int
	AvailableSlots     int
	UnavailableSlots   int
	// AvailabilityPercentage is available/(available+unavailable) minutes as
	// a percentage, 0 when the member declared nothing.
	AvailabilityPercentage float64
}

// ComputeStats partitions slots into available and unavailable, summing
// durations in minutes and counting slots per partition. The result is
// independent of slot ordering.
func ComputeStats(slots []proto.Slot) Stats {
	var s Stats
	for _, slot := range slots {
		minutes := int(math.Round(slot.Duration().Minutes()))
		if slot.Available {
			s.AvailableMinutes += minutes
			s.AvailableSlots++
		} else {
			s.UnavailableMinutes += minutes
			s.UnavailableSlots++
		}
	}

	total := s.AvailableMinutes + s.UnavailableMinutes
	if total > 0 {
		s.AvailabilityPercentage = float64(s.AvailableMinutes) / float64(total) * 100
	}

	return s
}

// BucketByDay groups slots into the week's day columns. A slot belongs to
// the day whose calendar date in the viewing timezone equals the slot's
// zoned start date. Slots spanning midnight are attributed entirely to
// their start day; they are never split across buckets. Slots starting
// outside the week are dropped.
func BucketByDay(slots []proto.Slot, days [7]time.Time, loc *time.Location) map[DayKey][]proto.Slot {
	keys := make(map[DayKey]struct{}, len(days))
	for _, d := range days {
		keys[Day(d, loc)] = struct{}{}
	}

	buckets := make(map[DayKey][]proto.Slot)
	for _, s := range slots {
		k := Day(s.StartsAt, loc)
		if _, ok := keys[k]; !ok {
			continue
		}
		buckets[k] = append(buckets[k], s)
	}

	for k := range buckets {
		b := buckets[k]
		sort.SliceStable(b, func(i, j int) bool {
			return b[i].StartsAt.Before(b[j].StartsAt)
		})
	}

	return buckets
}

// MemberView is one member's calendar column set for a week: slots bucketed
// per day plus locally computed stats.
type MemberView struct {
	MemberID    int64
	DisplayName string
	AvatarURL   string
	Buckets     map[DayKey][]proto.Slot
	Stats       Stats
}

// NewMemberView buckets a member's raw slot list into the given week and
// computes their stats. Only slots starting inside the week count.
func NewMemberView(m proto.MemberAvailability, w Window, loc *time.Location) MemberView {
	buckets := BucketByDay(m.Slots, w.Days(), loc)

	var inWeek []proto.Slot
	for _, b := range buckets {
		inWeek = append(inWeek, b...)
	}

	return MemberView{
		MemberID:    m.MemberID,
		DisplayName: m.DisplayName,
		AvatarURL:   m.AvatarURL,
		Buckets:     buckets,
		Stats:       ComputeStats(inWeek),
	}
}

// WeekView is the calendar-ready view of a team's availability for one week.
type WeekView struct {
	Window  Window
	Days    [7]time.Time
	Members []MemberView
}

// NewWeekView derives the calendar view model from a raw overview. The
// input is never mutated.
func NewWeekView(ov proto.Overview, w Window, loc *time.Location) WeekView {
	members := make([]MemberView, 0, len(ov.Members))
	for _, m := range ov.Members {
		members = append(members, NewMemberView(m, w, loc))
	}

	return WeekView{
		Window:  w,
		Days:    w.Days(),
		Members: members,
	}
}

// IsEditable reports whether the viewing member may edit or delete the slot.
// Only the owning member may, regardless of team role.
func IsEditable(s proto.Slot, viewerID int64) bool {
	return s.MemberID == viewerID
}

// CanQuickAdd reports whether the day cell exposes the quick-add affordance
// for the member: only when the member has no slots on that day. Editing or
// deleting existing slots stays available either way.
func (v MemberView) CanQuickAdd(day DayKey) bool {
	return len(v.Buckets[day]) == 0
}

// QuickAddDefaults returns the prefill times for a create action seeded from
// an empty day cell: 09:00–17:00 wall-clock in the day's timezone.
func QuickAddDefaults(day time.Time) (start, end time.Time) {
	y, m, d := day.Date()
	start = time.Date(y, m, d, 9, 0, 0, 0, day.Location())
	end = time.Date(y, m, d, 17, 0, 0, 0, day.Location())
	return start, end
}

// ValidateSlot enforces the form-level invariants before a create or update
// is submitted: the end must be after the start and the note must fit.
// Violations are shown inline and never reach the network.
func ValidateSlot(start, end time.Time, note string) error {
	if !end.After(start) {
		return fmt.Errorf("end time must be after start time")
	}
	if len([]rune(note)) > MaxNoteLength {
		return fmt.Errorf("note must be at most %d characters", MaxNoteLength)
	}
	return nil
}
