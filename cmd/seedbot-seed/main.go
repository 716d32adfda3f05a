package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/seedbot/seeder/internal/config"
	"github.com/seedbot/seeder/internal/database"
	"github.com/seedbot/seeder/internal/seed"
)

func main() {
	// A missing .env is fine; DATABASE_URL may come from the environment.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("seedbot-seed", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fixturesPath := fs.String("fixtures", "", "load demo data from this YAML file instead of the built-in set")
	reset := fs.Bool("reset", false, "delete all seeded rows before seeding")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	fixtures := seed.DefaultFixtures()
	if *fixturesPath != "" {
		f, err := seed.LoadFixturesFile(*fixturesPath)
		if err != nil {
			return fmt.Errorf("load fixtures: %w", err)
		}
		fixtures = f
	}

	rule := strings.Repeat("=", 50)
	_, _ = fmt.Fprintln(stdout, "Starting SeedBot database seeding")
	_, _ = fmt.Fprintln(stdout, rule)

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		_, _ = fmt.Fprintln(stdout, "Cannot connect to database. Please check DATABASE_URL or your .env file.")
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.PingContext(ctx); err != nil {
		_, _ = fmt.Fprintln(stdout, "Cannot connect to database. Please check DATABASE_URL or your .env file.")
		return fmt.Errorf("connect database: %w", err)
	}
	_, _ = fmt.Fprintln(stdout, "Database connection successful")

	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	if *reset {
		if err := seed.Reset(ctx, db); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		_, _ = fmt.Fprintln(stdout, "Cleared existing demo data")
	}

	seeder := seed.New(db,
		seed.WithFixtures(fixtures),
		seed.WithHasher(seed.BcryptHasher{Cost: cfg.BcryptCost}),
		seed.WithLogger(logger),
	)
	report := seeder.Run(ctx)

	printReport(stdout, report, fixtures)
	_, _ = fmt.Fprintln(stdout, rule)

	return nil
}

func printReport(w io.Writer, report seed.Report, fixtures seed.Fixtures) {
	_, _ = fmt.Fprintln(w)
	for _, res := range report.Results {
		switch res.Outcome {
		case seed.Seeded:
			_, _ = fmt.Fprintf(w, "  %-18s seeded (%d rows)\n", res.Group, res.Inserted)
		case seed.Skipped:
			_, _ = fmt.Fprintf(w, "  %-18s skipped (already seeded or nothing to do)\n", res.Group)
		case seed.Failed:
			_, _ = fmt.Fprintf(w, "  %-18s FAILED: %v\n", res.Group, res.Err)
		}
	}
	_, _ = fmt.Fprintln(w)

	if !report.OK() {
		_, _ = fmt.Fprintln(w, "Some seed groups failed. Please check the errors above.")
		return
	}

	_, _ = fmt.Fprintln(w, "All seed groups completed successfully!")
	if len(fixtures.Accounts) == 0 {
		return
	}
	_, _ = fmt.Fprintln(w, "\nDemo accounts:")
	for _, a := range fixtures.Accounts {
		label := "Petani"
		if a.Role == seed.RoleAdministrator {
			label = "Admin"
		}
		_, _ = fmt.Fprintf(w, "   %s: %s\n", label, a.Username)
	}
}
