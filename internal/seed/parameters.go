package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// Parameters inserts the default system parameters if none exist yet.
func (s *Seeder) Parameters(ctx context.Context) Result {
	return s.runGroup(ctx, GroupParameters, func(ctx context.Context, tx *sqlx.Tx, log *slog.Logger) (int, error) {
		count, err := countRows(ctx, tx, "system_parameters")
		if err != nil {
			return 0, err
		}
		if count > 0 {
			log.Info("system parameters already exist, skipping", "existing", count)
			return 0, nil
		}

		insert := tx.Rebind(insertParameterSQL)

		for _, p := range s.fixtures.Parameters {
			if _, err := tx.ExecContext(ctx, insert, p.Name, p.Value, p.Unit, p.Description); err != nil {
				return 0, fmt.Errorf("insert parameter %s: %w", p.Name, err)
			}
			log.Info("created parameter", "name", p.Name, "value", p.Value, "unit", p.Unit)
		}

		return len(s.fixtures.Parameters), nil
	})
}
