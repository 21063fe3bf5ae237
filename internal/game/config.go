package game

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samdwyer/mazerun/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible mazes.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Width  int // Logical canvas width
	Height int // Logical canvas height
	FPS    int // Ticks per second

	// KeyHold is how long a direction stays held after a key press.
	// Terminals report presses and auto-repeats but never releases, and
	// auto-repeat usually starts 250-500ms after the first press.
	KeyHold time.Duration

	LogFile      string // Empty discards logs
	LogVerbosity int
	Telemetry    bool // Export traces over OTLP
}

// DefaultConfig returns the stock 800x600, 60 FPS configuration.
func DefaultConfig() Config {
	return Config{
		Width:     world.DefaultWidth,
		Height:    world.DefaultHeight,
		FPS:       60,
		KeyHold:   300 * time.Millisecond,
		Telemetry: true,
	}
}

// LoadConfig reads MAZERUN_* environment variables on top of the defaults.
func LoadConfig() (Config, error) {
	return loadConfig(os.LookupEnv)
}

func loadConfig(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	if v, ok := lookup("MAZERUN_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("MAZERUN_SEED must be an integer: %w", err)
		}
		cfg.Seed = seed
	}

	ints := []struct {
		key string
		dst *int
		min int
	}{
		{"MAZERUN_WIDTH", &cfg.Width, 1},
		{"MAZERUN_HEIGHT", &cfg.Height, 1},
		{"MAZERUN_FPS", &cfg.FPS, 1},
		{"MAZERUN_LOG_VERBOSITY", &cfg.LogVerbosity, 0},
	}
	for _, f := range ints {
		v, ok := lookup(f.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s must be an integer: %w", f.key, err)
		}
		if n < f.min {
			return cfg, fmt.Errorf("%s must be at least %d, got %d", f.key, f.min, n)
		}
		*f.dst = n
	}

	if v, ok := lookup("MAZERUN_KEY_HOLD_MS"); ok {
		ms, err := strconv.Atoi(v)
		if err != nil || ms < 0 {
			return cfg, fmt.Errorf("MAZERUN_KEY_HOLD_MS must be a non-negative integer, got %q", v)
		}
		cfg.KeyHold = time.Duration(ms) * time.Millisecond
	}

	if v, ok := lookup("MAZERUN_LOG_FILE"); ok {
		cfg.LogFile = v
	}

	if v, ok := lookup("MAZERUN_TELEMETRY"); ok {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "off", "false", "0", "no":
			cfg.Telemetry = false
		case "on", "true", "1", "yes":
			cfg.Telemetry = true
		default:
			return cfg, fmt.Errorf("MAZERUN_TELEMETRY must be on or off, got %q", v)
		}
	}

	return cfg, nil
}

// TickInterval returns the time between ticks.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// HoldTicks returns KeyHold in ticks, rounded up and never less than one.
func (c Config) HoldTicks() int {
	ticks := (c.KeyHold*time.Duration(c.FPS) + time.Second - 1) / time.Second
	return max(1, int(ticks))
}
