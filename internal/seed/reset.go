package seed

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/seedbot/seeder/internal/database"
)

// Reset deletes every row from the seeded tables in a single transaction so
// the database can be seeded again from scratch.
func Reset(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}

	for _, table := range database.Tables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil { //nolint:gosec // table names are hardcoded constants
			_ = tx.Rollback()
			return fmt.Errorf("clear table %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}
	return nil
}
