package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/mdftrainer/internal/calculator"
)

type ChartCmd struct {
	Pot   float64 `default:"100" help:"Pot size the chart is computed for"`
	Sizes []int   `default:"33,50,75,100" help:"Bet sizes, as percentages of the pot"`
}

func (c *ChartCmd) Run() error {
	if c.Pot <= 0 {
		return errors.New("pot must be positive")
	}
	for _, size := range c.Sizes {
		if size <= 0 {
			return fmt.Errorf("bet size %d%% must be positive", size)
		}
	}
	renderChart(os.Stdout, c.Pot, c.Sizes)
	return nil
}

func renderChart(out io.Writer, pot float64, sizes []int) {
	t := plainTable().
		Headers("size", "bet", "pot odds", "ratio", "mdf").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cellStyle.Inherit(headerStyle)
			}
			switch col {
			case 0:
				return cellStyle.Inherit(sizeStyle)
			case 2:
				return cellStyle.Inherit(oddsStyle)
			case 4:
				return cellStyle.Inherit(mdfStyle)
			}
			return cellStyle
		})

	for _, size := range sizes {
		bet := calculator.BetAmount(pot, float64(size))
		t.Row(
			fmt.Sprintf("%d%%", size),
			fmt.Sprintf("%.2f", bet),
			fmt.Sprintf("%.2f%%", calculator.PotOdds(pot, bet)),
			calculator.PotOddsRatio(pot, bet),
			fmt.Sprintf("%.2f%%", calculator.MDF(pot, bet)))
	}

	fmt.Fprintln(out, t.Render())
	fmt.Fprintf(out, "\n%s\n", dimStyle.Render(fmt.Sprintf("pot %.2f", pot)))
}
