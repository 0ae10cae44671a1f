package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/mdftrainer/internal/calculator"
)

type CalcCmd struct {
	Pot float64  `arg:"" help:"Pot size before the bet"`
	Bet *float64 `arg:"" optional:"" help:"Bet amount"`
	Pct *float64 `short:"p" help:"Bet size as a percentage of the pot, instead of BET"`
}

func (c *CalcCmd) Run() error {
	bet, err := c.resolveBet()
	if err != nil {
		return err
	}
	renderCalc(os.Stdout, c.Pot, bet)
	return nil
}

func (c *CalcCmd) resolveBet() (float64, error) {
	if c.Pot <= 0 {
		return 0, errors.New("pot must be positive")
	}
	switch {
	case c.Bet != nil && c.Pct != nil:
		return 0, errors.New("give either BET or --pct, not both")
	case c.Bet != nil:
		if *c.Bet < 0 {
			return 0, errors.New("bet cannot be negative")
		}
		return *c.Bet, nil
	case c.Pct != nil:
		if *c.Pct < 0 {
			return 0, errors.New("bet size cannot be negative")
		}
		return calculator.BetAmount(c.Pot, *c.Pct), nil
	}
	return 0, errors.New("a BET or --pct is required")
}

func renderCalc(out io.Writer, pot, bet float64) {
	rows := [][]string{
		{"pot", fmt.Sprintf("%.2f", pot)},
		{"bet", fmt.Sprintf("%.2f (%d%% pot)", bet, calculator.BetSizePercent(pot, bet))},
		{"pot odds", fmt.Sprintf("%.2f%% (%s)", calculator.PotOdds(pot, bet), calculator.PotOddsRatio(pot, bet))},
		{"pot share", fmt.Sprintf("%.2f%%", calculator.PotShare(pot, bet))},
		{"mdf", fmt.Sprintf("%.2f%%", calculator.MDF(pot, bet))},
	}
	fmt.Fprintln(out, renderPairs(rows, map[int]lipgloss.Style{2: oddsStyle, 4: mdfStyle}))

	fmt.Fprintf(out, "\n%s\n", dimStyle.Render(fmt.Sprintf(
		"call %.2f to win %.2f; defend at least %.2f%% of your range",
		bet, pot+bet+bet, calculator.MDF(pot, bet))))
}

// renderPairs lays out label/value rows. valueStyles colours the value cell
// of the given rows.
func renderPairs(rows [][]string, valueStyles map[int]lipgloss.Style) string {
	return plainTable().
		BorderHeader(false).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return cellStyle.Inherit(headerStyle)
			}
			if style, ok := valueStyles[row]; ok {
				return cellStyle.Inherit(style)
			}
			return cellStyle
		}).
		Render()
}
