// Package models defines the local database models.
package models

import "time"

// State is a key-value row of client state, such as the selected team.
type State struct {
	ID        int64     `db:"id"`
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}
