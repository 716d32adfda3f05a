package testhelpers

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/seedbot/seeder/internal/database"
)

// NewTestDB returns an in-memory SQLite database configured the same way as
// a local SeedBot database. The database is automatically closed when the
// test completes.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// NewMigratedDB returns a test database with the SeedBot schema applied.
func NewMigratedDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db := NewTestDB(t)
	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// CountRows returns the number of rows in table.
func CountRows(t *testing.T, db *sqlx.DB, table string) int {
	t.Helper()

	var n int
	if err := db.Get(&n, "SELECT COUNT(*) FROM "+table); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
