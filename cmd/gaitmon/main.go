// Command gaitmon runs the quadruped rig without a window and shows the gait
// signals in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"quadtrot/app"
	"quadtrot/hal"
	"quadtrot/internal/config"
	"quadtrot/internal/logging"
)

func main() {
	var (
		configPath string
		modelPath  string
		hz         int
		logPath    string
	)
	flag.StringVar(&configPath, "config", "", "TOML config file.")
	flag.StringVar(&modelPath, "model", "", "URDF file (default: builtin quadruped).")
	flag.IntVar(&hz, "hz", 30, "Monitor refresh rate.")
	flag.StringVar(&logPath, "log", "", "Write logs to this file instead of discarding them.")
	flag.Parse()

	if err := run(configPath, modelPath, hz, logPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, modelPath string, hz int, logPath string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if modelPath != "" {
		cfg.Model = modelPath
	}
	if hz <= 0 {
		return fmt.Errorf("invalid hz: %d", hz)
	}

	logger := zerolog.Nop()
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		lc := logging.FromSettings(cfg.Log.Level, cfg.Log.Timestamp, true)
		lc.Out = f
		logger = logging.New("gaitmon", lc)
	}

	h := hal.NewHost(0, 0, 0)
	v, err := app.New(context.Background(), h, app.Options{Model: cfg.Model, Logger: logger, NoRender: true})
	if err != nil {
		return err
	}
	defer v.Close()

	m := newMonitor(h, v, time.Second/time.Duration(hz))
	return runMonitor(m, tea.WithAltScreen())
}

// runMonitor runs the program until it quits and reports the step error that
// stopped it, if any.
func runMonitor(m monitor, opts ...tea.ProgramOption) error {
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(monitor); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
