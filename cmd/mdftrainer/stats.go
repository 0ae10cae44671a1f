package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/mdftrainer/internal/score"
	"github.com/lox/mdftrainer/internal/store"
)

type StatsCmd struct {
	Reset bool `help:"Zero the running score"`
}

func (c *StatsCmd) Run(g *Globals) error {
	env, err := g.load()
	if err != nil {
		return err
	}
	if err := env.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	logger := env.logger(os.Stderr, "stats")

	ctx := context.Background()
	st, err := store.Open(ctx, env.cfg.StoreOptions(env.stateDir), logger)
	if err != nil {
		return err
	}
	defer st.Close()

	if c.Reset {
		if err := st.SaveScore(ctx, score.RunningScore{}); err != nil {
			return err
		}
		logger.Info("Score reset")
	}

	s, err := st.LoadScore(ctx)
	if err != nil {
		return err
	}
	renderStats(os.Stdout, s)
	return nil
}

func renderStats(out io.Writer, s score.RunningScore) {
	rows := [][]string{
		{"pot odds", s.PotOdds.String()},
		{"mdf", s.MDF.String()},
		{"overall", s.Overall().String()},
	}
	fmt.Fprintln(out, renderPairs(rows, map[int]lipgloss.Style{0: oddsStyle, 1: mdfStyle}))
}
