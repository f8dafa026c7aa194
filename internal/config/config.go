// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/visotime/internal/domain"
	"github.com/joho/godotenv"
)

// Backend selects the storage engine that holds the entry collection.
type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendBadger Backend = "badger"
)

// Latency holds the simulated per-operation delays of the entry service.
type Latency struct {
	List   time.Duration
	Create time.Duration
	Delete time.Duration
}

// DefaultLatency returns the delays of the hosted backend this tool stands in for.
func DefaultLatency() Latency {
	return Latency{
		List:   300 * time.Millisecond,
		Create: 500 * time.Millisecond,
		Delete: 300 * time.Millisecond,
	}
}

// Config is the full runtime configuration.
type Config struct {
	Backend       Backend
	DBPath        string
	BadgerDir     string
	MaxDailyHours float64
	Latency       Latency
	ProjectsFile  string
	LogCalls      bool
	LogLevel      slog.Level
	// LogFile overrides the default log location from LogPath.
	LogFile string

	// problems collects values that were set but could not be parsed.
	problems []string
}

// DefaultConfig returns a Config rooted at ~/.visotime.
func DefaultConfig() Config {
	base := ".visotime"
	if home, err := os.UserHomeDir(); err == nil {
		base = filepath.Join(home, ".visotime")
	}
	return Config{
		Backend:       BackendSQLite,
		DBPath:        filepath.Join(base, "visotime.db"),
		BadgerDir:     filepath.Join(base, "badger"),
		MaxDailyHours: domain.DefaultMaxDailyHours,
		Latency:       DefaultLatency(),
		LogLevel:      slog.LevelInfo,
	}
}

// Load reads a .env file from the working directory when one exists, then
// overlays VISOTIME_* environment variables on DefaultConfig.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) Config {
	cfg := DefaultConfig()

	if v := getenv("VISOTIME_BACKEND"); v != "" {
		cfg.Backend = Backend(strings.ToLower(v))
	}
	if v := getenv("VISOTIME_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := getenv("VISOTIME_BADGER_DIR"); v != "" {
		cfg.BadgerDir = v
	}
	if v := getenv("VISOTIME_MAX_DAILY_HOURS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			cfg.MaxDailyHours = f
		} else {
			cfg.problems = append(cfg.problems, fmt.Sprintf("VISOTIME_MAX_DAILY_HOURS %q is not a finite number", v))
		}
	}
	if v := getenv("VISOTIME_LATENCY"); v != "" {
		switch strings.ToLower(v) {
		case "on", "true", "1":
			cfg.Latency = DefaultLatency()
		case "off", "false", "0":
			cfg.Latency = Latency{}
		default:
			cfg.problems = append(cfg.problems, fmt.Sprintf("VISOTIME_LATENCY %q must be on or off", v))
		}
	}
	if v := getenv("VISOTIME_PROJECTS_FILE"); v != "" {
		cfg.ProjectsFile = v
	}
	if v := getenv("VISOTIME_LOG_CALLS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogCalls = b
		} else {
			cfg.problems = append(cfg.problems, fmt.Sprintf("VISOTIME_LOG_CALLS %q is not a boolean", v))
		}
	}
	if v := getenv("VISOTIME_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := getenv("VISOTIME_LOG_LEVEL"); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(v)); err == nil {
			cfg.LogLevel = lvl
		} else {
			cfg.problems = append(cfg.problems, fmt.Sprintf("VISOTIME_LOG_LEVEL %q is not a log level", v))
		}
	}

	return cfg
}

// LogPath is where use-case logs are written: LogFile when set, otherwise
// visotime.log next to the active backend's data.
func (c Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	dataDir := filepath.Dir(c.DBPath)
	if c.Backend == BackendBadger {
		dataDir = filepath.Dir(c.BadgerDir)
	}
	return filepath.Join(dataDir, "visotime.log")
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	errs := append([]string(nil), c.problems...)

	switch c.Backend {
	case BackendSQLite:
		if c.DBPath == "" {
			errs = append(errs, "database path cannot be empty when using the sqlite backend")
		}
	case BackendBadger:
		if c.BadgerDir == "" {
			errs = append(errs, "badger directory cannot be empty when using the badger backend")
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid backend %q: must be one of [%s %s]", c.Backend, BackendSQLite, BackendBadger))
	}

	if !(c.MaxDailyHours > 0) || math.IsInf(c.MaxDailyHours, 0) {
		errs = append(errs, fmt.Sprintf("invalid max daily hours %v: must be greater than 0", c.MaxDailyHours))
	}
	if c.Latency.List < 0 || c.Latency.Create < 0 || c.Latency.Delete < 0 {
		errs = append(errs, "latencies cannot be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
