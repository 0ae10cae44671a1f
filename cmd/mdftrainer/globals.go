package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/lox/mdftrainer/internal/config"
	"github.com/lox/mdftrainer/internal/scenario"
)

// Globals are flags shared by every command.
type Globals struct {
	StateDir string `help:"Directory holding the score and settings" env:"MDFTRAINER_STATE_DIR" type:"path"`
	Config   string `help:"Settings file (default: <state-dir>/settings.hcl)" env:"MDFTRAINER_CONFIG" type:"path"`
	LogLevel string `help:"Log level: debug, info, warn or error" env:"MDFTRAINER_LOG_LEVEL"`
	NoColor  bool   `help:"Disable colour output" env:"MDFTRAINER_NO_COLOR"`
}

// environment is the resolved state every command works from.
type environment struct {
	cfg          *config.Config
	stateDir     string
	settingsPath string
}

func (g *Globals) load() (*environment, error) {
	dir := g.StateDir
	if dir == "" {
		var err error
		if dir, err = config.DefaultStateDir(); err != nil {
			return nil, err
		}
	}

	path := g.Config
	if path == "" {
		path = filepath.Join(dir, config.FileName)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}

	return &environment{cfg: cfg, stateDir: dir, settingsPath: path}, nil
}

func (e *environment) logger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(e.cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

func (e *environment) logPath() string {
	if filepath.IsAbs(e.cfg.Log.File) {
		return e.cfg.Log.File
	}
	return filepath.Join(e.stateDir, e.cfg.Log.File)
}

// DrillFlags override the stored drill settings for one run. Whatever they
// set becomes the new last-used settings.
type DrillFlags struct {
	Kind         string   `short:"k" help:"Question kind: pot-odds, mdf or random"`
	MinPot       *float64 `help:"Smallest pot to draw"`
	MaxPot       *float64 `help:"Largest pot to draw"`
	BetSize      *int     `help:"Always bet this percentage of the pot (0 draws sizes)"`
	NoOccasional bool     `help:"Only use the standard 33/50/75/100% sizes"`
	Tolerance    *float64 `help:"Accepted distance from the exact answer, in percentage points"`
	Seed         *int64   `help:"Random seed for reproducible drills"`
}

func (f *DrillFlags) apply(cfg *config.Config) error {
	if f.Kind != "" {
		kind, err := scenario.ParseKind(f.Kind)
		if err != nil {
			return err
		}
		cfg.Drill.Kind = string(kind)
	}
	if f.MinPot != nil {
		cfg.Drill.MinPot = *f.MinPot
	}
	if f.MaxPot != nil {
		cfg.Drill.MaxPot = *f.MaxPot
	}
	if f.BetSize != nil {
		cfg.Drill.FixedBetSize = *f.BetSize
	}
	if f.NoOccasional {
		cfg.Drill.ExcludeOccasional = true
	}
	if f.Tolerance != nil {
		cfg.Drill.Tolerance = *f.Tolerance
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}
