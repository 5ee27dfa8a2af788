package migrate

import (
	"context"

	"github.com/esportlab/elab/pkg/db"
)

const (
	createTablesName    = "create tables"
	createTablesVersion = 1
)

var createTables = Migration{
	Version: createTablesVersion,
	Name:    createTablesName,
	Migrate: func(ctx context.Context, tx *db.Tx) error {
		var schema string
		switch tx.DriverName() {
		case driverSQLite, driverSQLite3:
			schema = `
			CREATE TABLE IF NOT EXISTS state (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				key TEXT NOT NULL UNIQUE,
				value TEXT NOT NULL,
				updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
			);
			CREATE TABLE IF NOT EXISTS overview_snapshots (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				team_id INTEGER NOT NULL,
				week_key TEXT NOT NULL,
				payload BLOB NOT NULL,
				fetched_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				UNIQUE (team_id, week_key)
			);
			`
		case driverPostgres:
			schema = `
			CREATE TABLE IF NOT EXISTS state (
				id SERIAL PRIMARY KEY,
				key TEXT NOT NULL UNIQUE,
				value TEXT NOT NULL,
				updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			);
			CREATE TABLE IF NOT EXISTS overview_snapshots (
				id SERIAL PRIMARY KEY,
				team_id BIGINT NOT NULL,
				week_key TEXT NOT NULL,
				payload BYTEA NOT NULL,
				fetched_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				UNIQUE (team_id, week_key)
			);
			`
		}

		_, err := tx.ExecContext(ctx, schema)
		return err
	},
	Rollback: func(ctx context.Context, tx *db.Tx) error {
		_, err := tx.ExecContext(ctx, `
			DROP TABLE IF EXISTS overview_snapshots;
			DROP TABLE IF EXISTS state;
		`)
		return err
	},
}
