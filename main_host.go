package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"quadtrot/app"
	"quadtrot/hal"
	"quadtrot/internal/buildinfo"
	"quadtrot/internal/config"
	"quadtrot/internal/logging"
	"quadtrot/internal/trace"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	flag.StringVar(&configPath, "config", "", "TOML config file.")
	model := flag.String("model", "", "URDF file (default: builtin quadruped).")
	headless := flag.Bool("headless", false, "Run without a window.")
	hz := flag.Int("hz", 0, "Tick rate in headless mode.")
	ticks := flag.Uint64("ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	scale := flag.Int("scale", 0, "Window scale factor.")
	traceBackend := flag.String("trace", "", "Trace backend: memory or sqlite.")
	tracePath := flag.String("trace-path", "", "SQLite trace file.")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "model":
			cfg.Model = *model
		case "headless":
			cfg.Headless.Enabled = *headless
		case "hz":
			cfg.Headless.Hz = *hz
		case "ticks":
			cfg.Headless.Ticks = *ticks
		case "scale":
			cfg.Window.Scale = *scale
		case "trace":
			cfg.Trace.Backend = *traceBackend
		case "trace-path":
			cfg.Trace.Path = *tracePath
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	lc := logging.FromSettings(cfg.Log.Level, cfg.Log.Timestamp, cfg.Log.NoColor)
	logger := logging.Configure("quadtrot", logging.ProfileRuntime, &lc)
	logger.Info().Str("version", buildinfo.Short()).Str("commit", buildinfo.Commit).Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rec, err := openRecorder(ctx, cfg.Trace)
	if err != nil {
		return err
	}
	if rec != nil {
		defer func() {
			if err := rec.Close(); err != nil {
				logger.Error().Err(err).Msg("close trace")
			}
		}()
	}

	var viewer *app.Viewer
	newApp := func(h hal.HAL) (func() error, error) {
		v, err := app.New(ctx, h, app.Options{Model: cfg.Model, Logger: logger, Recorder: rec})
		if err != nil {
			return nil, err
		}
		viewer = v
		return v.Step, nil
	}
	defer func() {
		if viewer != nil {
			_ = viewer.Close()
		}
	}()

	if cfg.Headless.Enabled {
		return runHeadless(ctx, logger, newApp, cfg.Headless)
	}
	return hal.RunWindow(newApp, hal.WindowConfig{Scale: cfg.Window.Scale, TPS: cfg.Window.TPS})
}

func runHeadless(ctx context.Context, logger zerolog.Logger, newApp func(hal.HAL) (func() error, error), c config.Headless) error {
	logger.Info().Int("hz", c.Hz).Uint64("ticks", c.Ticks).Bool("fixed", c.Fixed).Msg("headless")
	return hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{
		Enabled: true,
		Hz:      c.Hz,
		Ticks:   c.Ticks,
		Fixed:   c.Fixed,
	})
}

func openRecorder(ctx context.Context, c config.Trace) (trace.Recorder, error) {
	if c.Backend == "" {
		return nil, nil
	}
	rec, err := trace.NewRecorder(c.Backend, c.Path)
	if err != nil {
		return nil, err
	}
	if err := rec.Init(ctx); err != nil {
		return nil, fmt.Errorf("init trace %s: %w", c.Backend, err)
	}
	return rec, nil
}
