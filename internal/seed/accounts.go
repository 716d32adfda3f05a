package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// Accounts inserts the demo accounts if the users table is empty. Passwords
// are hashed before insert and never logged.
func (s *Seeder) Accounts(ctx context.Context) Result {
	return s.runGroup(ctx, GroupAccounts, func(ctx context.Context, tx *sqlx.Tx, log *slog.Logger) (int, error) {
		count, err := countRows(ctx, tx, "users")
		if err != nil {
			return 0, err
		}
		if count > 0 {
			log.Info("users already exist, skipping", "existing", count)
			return 0, nil
		}

		insert := tx.Rebind(insertUserSQL)

		for _, a := range s.fixtures.Accounts {
			hashed, err := s.hasher.Hash(a.Password)
			if err != nil {
				return 0, fmt.Errorf("account %s: %w", a.Username, err)
			}
			if _, err := tx.ExecContext(ctx, insert, a.Username, hashed, a.FullName, a.Role, a.StoredStatus()); err != nil {
				return 0, fmt.Errorf("insert account %s: %w", a.Username, err)
			}
			log.Info("created account", "username", a.Username, "role", a.Role, "status", a.StoredStatus())
		}

		return len(s.fixtures.Accounts), nil
	})
}
