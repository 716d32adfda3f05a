package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Driver names registered by the imported database/sql drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Tables lists the seeded tables in foreign-key-safe deletion order.
var Tables = []string{
	"robot_status",
	"sensor_realtime",
	"system_parameters",
	"news",
	"users",
}

// Dialect resolves a DATABASE_URL value to a driver name and the DSN that
// driver expects. Postgres URLs and keyword/value connection strings
// ("host=... dbname=...") are passed through untouched; sqlite:// prefixes
// are stripped. A bare path is accepted as SQLite only when it is :memory:
// or carries a SQLite file extension, so a mistyped connection string never
// creates a stray database file.
func Dialect(url string) (driver, dsn string, err error) {
	url = strings.TrimSpace(url)
	switch {
	case url == "":
		return "", "", fmt.Errorf("empty database url")
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DriverPostgres, url, nil
	case strings.HasPrefix(url, "sqlite://"):
		dsn = strings.TrimPrefix(url, "sqlite://")
		if dsn == "" {
			return "", "", fmt.Errorf("sqlite url %q has no path", url)
		}
		return DriverSQLite, dsn, nil
	case strings.HasPrefix(url, "file:"), url == ":memory:":
		return DriverSQLite, url, nil
	case strings.Contains(url, "://"):
		scheme, _, _ := strings.Cut(url, "://")
		return "", "", fmt.Errorf("unsupported database scheme %q", scheme)
	case strings.Contains(url, "="):
		return DriverPostgres, url, nil
	case hasSQLiteExt(url):
		return DriverSQLite, url, nil
	default:
		return "", "", fmt.Errorf("unrecognized database url %q: use postgres://, sqlite:// or a .db/.sqlite path", url)
	}
}

func hasSQLiteExt(path string) bool {
	for _, ext := range []string{".db", ".sqlite", ".sqlite3"} {
		if strings.HasSuffix(strings.ToLower(path), ext) {
			return true
		}
	}
	return false
}

// Open opens the database named by url. SQLite targets are configured the
// way the application runs them: WAL mode, foreign keys enabled, busy
// timeout of 5s, and a single connection.
func Open(url string) (*sqlx.DB, error) {
	driver, dsn, err := Dialect(url)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if driver != DriverSQLite {
		return db, nil
	}

	// Single connection for SQLite to avoid locking issues.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("exec %q: %w", p, err)
		}
	}

	return db, nil
}

// Migrate runs all pending schema migrations for the connected dialect. Each
// migration runs inside a transaction and is tracked in the
// schema_migrations table by version number.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	steps, ok := migrations[db.DriverName()]
	if !ok {
		return fmt.Errorf("no migrations for driver %q", db.DriverName())
	}

	// Ensure schema_migrations table exists (outside transaction so it's always
	// available for version checks).
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	for i, stmts := range steps {
		version := i + 1

		var exists int
		if err := db.GetContext(ctx, &exists, db.Rebind("SELECT COUNT(*) FROM schema_migrations WHERE version = ?"), version); err != nil {
			return fmt.Errorf("check migration %d: %w", version, err)
		}
		if exists > 0 {
			continue
		}

		tx, err := db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", version, err)
		}

		for _, stmt := range stmts {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("migration %d: %w", version, err)
			}
		}

		if _, err := tx.ExecContext(ctx, tx.Rebind("INSERT INTO schema_migrations (version) VALUES (?)"), version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %d: %w", version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", version, err)
		}
	}

	return nil
}
