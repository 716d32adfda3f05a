package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Group names one independently committed unit of seed data.
type Group string

// Seed groups, in the order Run executes them.
const (
	GroupAccounts        Group = "accounts"
	GroupArticles        Group = "articles"
	GroupParameters      Group = "parameters"
	GroupSensorSnapshots Group = "sensor_snapshots"
)

// Outcome is how a group finished.
type Outcome int

const (
	// Seeded means at least one row was written and committed.
	Seeded Outcome = iota
	// Skipped means the group had nothing to do. It counts as success.
	Skipped
	// Failed means the group's transaction was rolled back or never started.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Seeded:
		return "seeded"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Result describes one group's run.
type Result struct {
	Group    Group
	Outcome  Outcome
	Inserted int
	Err      error
}

// OK reports whether the group succeeded.
func (r Result) OK() bool { return r.Outcome != Failed }

// Report aggregates the results of a full Run.
type Report struct {
	RunID   string
	Results []Result
}

// OK is true only when every group succeeded.
func (r Report) OK() bool {
	ok := true
	for _, res := range r.Results {
		ok = res.OK() && ok
	}
	return ok
}

// Seeder loads the demo dataset into a database. Each group runs on its own
// connection and transaction; a failing group never stops the others.
type Seeder struct {
	db       *sqlx.DB
	fixtures Fixtures
	hasher   Hasher
	logger   *slog.Logger
	runID    string
}

// Option configures a Seeder.
type Option func(*Seeder)

// WithFixtures replaces the embedded dataset.
func WithFixtures(f Fixtures) Option {
	return func(s *Seeder) { s.fixtures = f }
}

// WithHasher replaces the default bcrypt hasher.
func WithHasher(h Hasher) Option {
	return func(s *Seeder) { s.hasher = h }
}

// WithLogger sets the logger used for progress messages.
func WithLogger(l *slog.Logger) Option {
	return func(s *Seeder) { s.logger = l }
}

// New creates a Seeder using the embedded fixtures and bcrypt at its default
// cost unless overridden by opts.
func New(db *sqlx.DB, opts ...Option) *Seeder {
	s := &Seeder{
		db:     db,
		hasher: BcryptHasher{},
		logger: slog.Default(),
		runID:  uuid.NewString(),
	}
	s.fixtures = DefaultFixtures()
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("run_id", s.runID)
	return s
}

// Run seeds every group in fixed order: accounts, articles, parameters,
// sensor snapshots. Later groups run even when earlier ones fail; sensor
// snapshots depend on operator accounts existing by the time they run.
func (s *Seeder) Run(ctx context.Context) Report {
	s.logger.Info("starting seed run")

	report := Report{RunID: s.runID}
	for _, step := range []func(context.Context) Result{
		s.Accounts,
		s.Articles,
		s.Parameters,
		s.SensorSnapshots,
	} {
		report.Results = append(report.Results, step(ctx))
	}

	if report.OK() {
		s.logger.Info("seed run completed")
	} else {
		s.logger.Warn("seed run completed with failures")
	}
	return report
}

// groupFunc does a group's work inside tx and returns the number of rows it
// wrote. Zero rows means the group is reported as skipped.
type groupFunc func(ctx context.Context, tx *sqlx.Tx, log *slog.Logger) (int, error)

// runGroup acquires a dedicated connection, runs fn in a transaction on it
// and releases the connection on every path. Any error rolls the whole group
// back.
func (s *Seeder) runGroup(ctx context.Context, g Group, fn groupFunc) Result {
	log := s.logger.With("group", string(g))
	res := Result{Group: g}

	fail := func(err error) Result {
		res.Outcome = Failed
		res.Inserted = 0
		res.Err = fmt.Errorf("seed %s: %w", g, err)
		log.Error("seed group failed", "error", err)
		return res
	}

	conn, err := s.db.Connx(ctx)
	if err != nil {
		return fail(fmt.Errorf("acquire connection: %w", err))
	}
	defer func() { _ = conn.Close() }()

	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return fail(fmt.Errorf("begin transaction: %w", err))
	}

	n, err := fn(ctx, tx, log)
	if err != nil {
		_ = tx.Rollback()
		return fail(err)
	}

	if err := tx.Commit(); err != nil {
		return fail(fmt.Errorf("commit: %w", err))
	}

	res.Inserted = n
	if n == 0 {
		res.Outcome = Skipped
		log.Info("seed group skipped")
	} else {
		res.Outcome = Seeded
		log.Info("seed group completed", "inserted", n)
	}
	return res
}

// countRows returns the number of rows in table. table must be a constant.
func countRows(ctx context.Context, tx *sqlx.Tx, table string) (int, error) {
	var n int
	if err := tx.GetContext(ctx, &n, "SELECT COUNT(*) FROM "+table); err != nil { //nolint:gosec // table names are hardcoded constants
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
