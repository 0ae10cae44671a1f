package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/lox/mdftrainer/internal/drill"
)

type QuizCmd struct {
	DrillFlags

	Rounds int `short:"n" default:"10" help:"Number of questions (0 for unlimited)"`
}

func (c *QuizCmd) Run(g *Globals) error {
	env, err := g.load()
	if err != nil {
		return err
	}
	if err := c.apply(env.cfg); err != nil {
		return err
	}

	logger, logFile, err := openLogFile(env, "quiz")
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

	if err := drill.RunConsole(ctx, session, os.Stdin, os.Stdout, c.Rounds); err != nil {
		return err
	}
	return saveSettings(env, session, logger)
}
