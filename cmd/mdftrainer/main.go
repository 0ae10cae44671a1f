package main

import (
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/muesli/termenv"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Drill   DrillCmd         `cmd:"" default:"withargs" help:"Run the full-screen drill (default)"`
	Quiz    QuizCmd          `cmd:"" help:"Drill on plain stdin/stdout"`
	Calc    CalcCmd          `cmd:"" help:"Work out pot odds and MDF for a pot and bet"`
	Chart   ChartCmd         `cmd:"" help:"Print a reference chart of common bet sizes"`
	Stats   StatsCmd         `cmd:"" help:"Show or reset the running score"`
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("mdftrainer"),
		kong.Description("Practice pot odds and minimum defense frequency against random bets"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
