package backend

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/esportlab/elab/pkg/db"
)

const stateSelectedTeam = "selected_team"

// SelectedTeam returns the locally selected team id, or zero when no team
// is selected.
func (b *Backend) SelectedTeam(ctx context.Context) (int64, error) {
	var value string
	query := b.db.Rebind("SELECT value FROM state WHERE key = ?")
	if err := b.db.GetContext(ctx, &value, query, stateSelectedTeam); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, db.WrapError(err)
	}
	return strconv.ParseInt(value, 10, 64)
}

// SetSelectedTeam stores the locally selected team id.
func (b *Backend) SetSelectedTeam(ctx context.Context, teamID int64) error {
	return b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		query := tx.Rebind(`
			INSERT INTO state (key, value, updated_at)
			VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT (key)
			DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
		`)
		_, err := tx.ExecContext(ctx, query, stateSelectedTeam, strconv.FormatInt(teamID, 10))
		return db.WrapError(err)
	})
}

// ClearSelectedTeam removes the local team selection.
func (b *Backend) ClearSelectedTeam(ctx context.Context) error {
	query := b.db.Rebind("DELETE FROM state WHERE key = ?")
	_, err := b.db.ExecContext(ctx, query, stateSelectedTeam)
	return db.WrapError(err)
}
