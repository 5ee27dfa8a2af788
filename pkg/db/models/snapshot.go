package models

import "time"

// OverviewSnapshot is a cached availability overview, stored as the raw
// JSON payload keyed by team and week. Snapshots back the calendar when
// the backend is unreachable.
type OverviewSnapshot struct {
	ID        int64     `db:"id"`
	TeamID    int64     `db:"team_id"`
	WeekKey   string    `db:"week_key"`
	Payload   []byte    `db:"payload"`
	FetchedAt time.Time `db:"fetched_at"`
}
