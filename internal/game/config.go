package game

import (
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/wumpus/internal/world"
)

// Environment variables read by LoadConfig.
const (
	EnvGridSize  = "WUMPUS_GRID_SIZE"
	EnvPitCount  = "WUMPUS_PIT_COUNT"
	EnvSeed      = "WUMPUS_SEED"
	EnvTelemetry = "WUMPUS_TELEMETRY"
	EnvLogFile   = "WUMPUS_LOG_FILE"
	EnvLogLevel  = "LOG_LEVEL"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible boards.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	GridSize int
	PitCount int

	// Telemetry enables the OTLP trace exporter.
	Telemetry bool

	// LogFile receives structured logs. Empty discards them, since the
	// terminal belongs to the board while playing.
	LogFile  string
	LogLevel string
}

// DefaultConfig returns the classic 4x4 board with three pits.
func DefaultConfig() Config {
	return Config{
		GridSize: world.DefaultSize,
		PitCount: world.DefaultPitCount,
		LogLevel: "info",
	}
}

// LoadConfig reads the configuration from the environment, falling back to
// DefaultConfig for unset variables.
func LoadConfig() (Config, error) {
	return loadConfig(os.Getenv)
}

func loadConfig(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if err := parseInt(getenv, EnvGridSize, &cfg.GridSize); err != nil {
		return cfg, err
	}
	if err := parseInt(getenv, EnvPitCount, &cfg.PitCount); err != nil {
		return cfg, err
	}
	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvSeed, v, err)
		}
		cfg.Seed = seed
	}
	if v := getenv(EnvTelemetry); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvTelemetry, v, err)
		}
		cfg.Telemetry = enabled
	}
	cfg.LogFile = getenv(EnvLogFile)
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}

func parseInt(getenv func(string) string, name string, dst *int) error {
	v := getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	*dst = n
	return nil
}
