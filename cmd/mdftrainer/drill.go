package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/lox/mdftrainer/internal/config"
	"github.com/lox/mdftrainer/internal/drill"
	"github.com/lox/mdftrainer/internal/randutil"
	"github.com/lox/mdftrainer/internal/scenario"
	"github.com/lox/mdftrainer/internal/store"
	"github.com/lox/mdftrainer/internal/tui"
)

type DrillCmd struct {
	DrillFlags
}

func (c *DrillCmd) Run(g *Globals) error {
	env, err := g.load()
	if err != nil {
		return err
	}
	if err := c.apply(env.cfg); err != nil {
		return err
	}

	logger, logFile, err := openLogFile(env, "drill")
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, st, err := openSession(ctx, env, c.Seed, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	logger.Info("Starting drill", "kind", session.Kind(), "settings", env.settingsPath)
	if err := tui.Run(ctx, session, logger); err != nil {
		return err
	}

	return saveSettings(env, session, logger)
}

// openLogFile returns a logger writing to the state directory's log file.
// The terminal belongs to the drill, so nothing is logged to it.
func openLogFile(env *environment, prefix string) (*log.Logger, *os.File, error) {
	if err := os.MkdirAll(env.stateDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	f, err := os.OpenFile(env.logPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return env.logger(f, prefix), f, nil
}

// openSession wires generator, store and session from the resolved settings.
func openSession(ctx context.Context, env *environment, seed *int64, logger *log.Logger) (*drill.Session, store.Store, error) {
	s := randutil.Seed(seed)
	logger.Debug("Seeding generator", "seed", s)

	gen, err := scenario.NewGenerator(randutil.New(s), env.cfg.GeneratorOptions())
	if err != nil {
		return nil, nil, err
	}

	st, err := store.Open(ctx, env.cfg.StoreOptions(env.stateDir), logger)
	if err != nil {
		return nil, nil, err
	}

	session, err := drill.NewSession(ctx, drill.Config{
		Generator: gen,
		Store:     st,
		Kind:      env.cfg.Kind(),
		Tolerance: env.cfg.Drill.Tolerance,
		Logger:    logger,
	})
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return session, st, nil
}

func saveSettings(env *environment, session *drill.Session, logger *log.Logger) error {
	env.cfg.Drill.Kind = string(session.Kind())
	if err := config.Save(env.settingsPath, env.cfg); err != nil {
		return err
	}
	logger.Debug("Saved settings", "path", env.settingsPath)
	return nil
}
