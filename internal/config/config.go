package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrMissingDatabaseURL is returned by Validate when DATABASE_URL is unset.
var ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")

// Config holds seeder configuration loaded from environment variables.
type Config struct {
	DatabaseURL string     // DATABASE_URL, required
	LogLevel    slog.Level // SEEDBOT_LOG_LEVEL, default "info"
	BcryptCost  int        // SEEDBOT_BCRYPT_COST, default bcrypt.DefaultCost
	AutoMigrate bool       // SEEDBOT_AUTO_MIGRATE, default false
}

// Load reads configuration from environment variables with sensible defaults.
// Callers that want .env support load it before calling Load.
func Load() Config {
	return Config{
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		LogLevel:    parseLevel(envOr("SEEDBOT_LOG_LEVEL", "info")),
		BcryptCost:  parseCost(os.Getenv("SEEDBOT_BCRYPT_COST")),
		AutoMigrate: parseBool(os.Getenv("SEEDBOT_AUTO_MIGRATE")),
	}
}

// Validate reports configuration that would make seeding impossible.
func (c Config) Validate() error {
	if c.DatabaseURL == "" {
		return ErrMissingDatabaseURL
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func parseCost(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < bcrypt.MinCost || n > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return n
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
