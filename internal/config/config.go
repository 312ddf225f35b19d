package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the viewer configuration.
type Config struct {
	// Model is a URDF path. Empty selects the builtin quadruped.
	Model    string
	Window   Window
	Headless Headless
	Log      Log
	Trace    Trace
}

type Window struct {
	Scale int
	TPS   int
}

type Headless struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	Fixed   bool
}

type Log struct {
	Level     string
	Timestamp bool
	NoColor   bool
}

type Trace struct {
	// Backend is "", "memory" or "sqlite".
	Backend string
	Path    string
}

func Default() Config {
	return Config{
		Window:   Window{Scale: 2, TPS: 60},
		Headless: Headless{Hz: 60},
		Log:      Log{Level: "info", Timestamp: true},
	}
}

type fileConfig struct {
	Model  string `toml:"model"`
	Window struct {
		Scale int `toml:"scale"`
		TPS   int `toml:"tps"`
	} `toml:"window"`
	Headless struct {
		Enabled bool  `toml:"enabled"`
		Hz      int   `toml:"hz"`
		Ticks   int64 `toml:"ticks"`
		Fixed   bool  `toml:"fixed"`
	} `toml:"headless"`
	Log struct {
		Level     string `toml:"level"`
		Timestamp bool   `toml:"timestamp"`
		NoColor   bool   `toml:"no_color"`
	} `toml:"log"`
	Trace struct {
		Backend string `toml:"backend"`
		Path    string `toml:"path"`
	} `toml:"trace"`
}

// Load reads path on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load config: unknown keys: %s", strings.Join(keys, ", "))
	}

	if meta.IsDefined("model") {
		cfg.Model = strings.TrimSpace(raw.Model)
	}

	if meta.IsDefined("window", "scale") {
		cfg.Window.Scale = raw.Window.Scale
	}
	if meta.IsDefined("window", "tps") {
		cfg.Window.TPS = raw.Window.TPS
	}

	if meta.IsDefined("headless", "enabled") {
		cfg.Headless.Enabled = raw.Headless.Enabled
	}
	if meta.IsDefined("headless", "hz") {
		cfg.Headless.Hz = raw.Headless.Hz
	}
	if meta.IsDefined("headless", "ticks") {
		if raw.Headless.Ticks < 0 {
			return Config{}, fmt.Errorf("headless.ticks must not be negative: %d", raw.Headless.Ticks)
		}
		cfg.Headless.Ticks = uint64(raw.Headless.Ticks)
	}
	if meta.IsDefined("headless", "fixed") {
		cfg.Headless.Fixed = raw.Headless.Fixed
	}

	if meta.IsDefined("log", "level") {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(raw.Log.Level))
	}
	if meta.IsDefined("log", "timestamp") {
		cfg.Log.Timestamp = raw.Log.Timestamp
	}
	if meta.IsDefined("log", "no_color") {
		cfg.Log.NoColor = raw.Log.NoColor
	}

	if meta.IsDefined("trace", "backend") {
		cfg.Trace.Backend = strings.ToLower(strings.TrimSpace(raw.Trace.Backend))
	}
	if meta.IsDefined("trace", "path") {
		cfg.Trace.Path = strings.TrimSpace(raw.Trace.Path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var ErrInvalid = errors.New("invalid config")

// Validate checks ranges and cross-field rules.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Scale < 1 || c.Window.Scale > 8 {
		errs = append(errs, fmt.Errorf("window.scale out of range [1,8]: %d", c.Window.Scale))
	}
	if c.Window.TPS < 1 || c.Window.TPS > 240 {
		errs = append(errs, fmt.Errorf("window.tps out of range [1,240]: %d", c.Window.TPS))
	}
	if c.Headless.Hz < 1 || c.Headless.Hz > 1000 {
		errs = append(errs, fmt.Errorf("headless.hz out of range [1,1000]: %d", c.Headless.Hz))
	}
	switch c.Log.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		errs = append(errs, fmt.Errorf("log.level unknown: %q", c.Log.Level))
	}
	switch c.Trace.Backend {
	case "", "memory":
	case "sqlite":
		if c.Trace.Path == "" {
			errs = append(errs, errors.New("trace.path is required for the sqlite backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("trace.backend unknown: %q", c.Trace.Backend))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
