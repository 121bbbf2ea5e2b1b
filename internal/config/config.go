package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config is the host application's wiring: backend selection, storage path
// and the generation/aggregation knobs passed down to the engine. The engine
// itself never reads the environment.
type Config struct {
	// Backend selection
	DataBackend  string
	SQLiteDBPath string

	// Generation
	Seed         int64
	WindowMonths int
	SeedCount    int

	// Aggregation
	AsOf         string // YYYY-MM-DD; empty means "now" resolved by the cmd
	WeeklyWindow int
}

func Load() *Config {
	return &Config{
		DataBackend:  getEnv("DATA_BACKEND", "memory"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/ledgerlab.db"),

		Seed:         getEnvInt64("GENERATOR_SEED", 0),
		WindowMonths: getEnvInt("WINDOW_MONTHS", 24),
		SeedCount:    getEnvInt("SEED_COUNT", 0),

		AsOf:         getEnv("AS_OF", ""),
		WeeklyWindow: getEnvInt("WEEKLY_WINDOW", 0),
	}
}

// Validate returns a single error listing everything wrong with the
// configuration.
func (c *Config) Validate() error {
	var errs []string

	switch c.DataBackend {
	case "memory", "sqlite":
	default:
		errs = append(errs, fmt.Sprintf("invalid data backend '%s': must be one of [memory sqlite]", c.DataBackend))
	}

	if c.DataBackend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errs = append(errs, "SQLite database path cannot be empty when using sqlite backend")
		} else if dir := filepath.Dir(c.SQLiteDBPath); dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errs = append(errs, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
				}
			}
		}
	}

	if c.WindowMonths < 1 {
		errs = append(errs, fmt.Sprintf("invalid window months %d: must be at least 1", c.WindowMonths))
	} else if c.WindowMonths > 120 {
		errs = append(errs, fmt.Sprintf("invalid window months %d: must be at most 120", c.WindowMonths))
	}

	if c.SeedCount < 0 {
		errs = append(errs, fmt.Sprintf("invalid seed count %d: must not be negative", c.SeedCount))
	}

	if c.WeeklyWindow < 0 {
		errs = append(errs, fmt.Sprintf("invalid weekly window %d: must not be negative", c.WeeklyWindow))
	}

	if c.AsOf != "" {
		if _, err := time.Parse("2006-01-02", c.AsOf); err != nil {
			errs = append(errs, fmt.Sprintf("invalid as-of date '%s': must be YYYY-MM-DD", c.AsOf))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// AsOfTime resolves the configured as-of date, falling back to the supplied
// instant. Only cmds call this with the wall clock; the engine always
// receives the resolved value as an explicit parameter.
func (c *Config) AsOfTime(fallback time.Time) (time.Time, error) {
	if c.AsOf == "" {
		return fallback, nil
	}
	t, err := time.Parse("2006-01-02", c.AsOf)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse as-of date: %w", err)
	}
	return t, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}
