package proto

import "time"

// Slot is a single declared interval of a member being available or
// unavailable to play. Slots are value snapshots; the backend owns the
// records and every mutation goes through the API.
type Slot struct {
	ID                int64     `json:"id"`
	MemberID          int64     `json:"memberId"`
	MemberDisplayName string    `json:"memberDisplayName"`
	MemberAvatarURL   string    `json:"memberAvatarUrl,omitempty"`
	StartsAt          time.Time `json:"startsAt"`
	EndsAt            time.Time `json:"endsAt"`
	Available         bool      `json:"available"`
	Note              string    `json:"note,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Duration returns the slot's length.
func (s Slot) Duration() time.Duration {
	return s.EndsAt.Sub(s.StartsAt)
}

// MemberAvailability is one member's slots for a requested range, with the
// backend's own aggregate numbers attached. The calendar recomputes stats
// locally from the slots; see the schedule package.
type MemberAvailability struct {
	MemberID    int64     `json:"memberId"`
	DisplayName string    `json:"displayName"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
	Slots       []Slot    `json:"availabilities"`
	Stats       WireStats `json:"stats"`
}

// WireStats are the aggregate numbers as reported by the backend.
type WireStats struct {
	TotalAvailableMinutes   int     `json:"totalAvailableMinutes"`
	TotalUnavailableMinutes int     `json:"totalUnavailableMinutes"`
	AvailableSlots          int     `json:"availableSlots"`
	UnavailableSlots        int     `json:"unavailableSlots"`
	AvailabilityPercentage  float64 `json:"availabilityPercentage"`
}

// Overview is the aggregated availability of every team member for one
// requested range.
type Overview struct {
	TeamID   int64                `json:"teamId"`
	TeamName string               `json:"teamName,omitempty"`
	FromDate time.Time            `json:"fromDate"`
	ToDate   time.Time            `json:"toDate"`
	Members  []MemberAvailability `json:"members"`
}

// UpsertSlotOptions are options for creating or updating a slot. Times are
// wall-clock instants in Timezone; the backend converts to UTC.
type UpsertSlotOptions struct {
	StartsAt  time.Time `json:"startsAt"`
	EndsAt    time.Time `json:"endsAt"`
	Available bool      `json:"available"`
	Note      string    `json:"note,omitempty"`
	Timezone  string    `json:"timezone,omitempty"`
}
