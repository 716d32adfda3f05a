package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// Articles inserts the demo news articles if the news table is empty.
func (s *Seeder) Articles(ctx context.Context) Result {
	return s.runGroup(ctx, GroupArticles, func(ctx context.Context, tx *sqlx.Tx, log *slog.Logger) (int, error) {
		count, err := countRows(ctx, tx, "news")
		if err != nil {
			return 0, err
		}
		if count > 0 {
			log.Info("news articles already exist, skipping", "existing", count)
			return 0, nil
		}

		insert := tx.Rebind(insertNewsSQL)

		for _, a := range s.fixtures.Articles {
			if _, err := tx.ExecContext(ctx, insert, a.Title, a.Content, a.ImageURL, a.Date, a.Status); err != nil {
				return 0, fmt.Errorf("insert article %q: %w", a.Title, err)
			}
			log.Info("created article", "title", truncate(a.Title, 50))
		}

		return len(s.fixtures.Articles), nil
	})
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
