package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/mdftrainer/internal/config"
	"github.com/lox/mdftrainer/internal/scenario"
	"github.com/lox/mdftrainer/internal/score"
)

func ptr[T any](v T) *T { return &v }

func TestCalcResolveBet(t *testing.T) {
	tests := []struct {
		name     string
		cmd      CalcCmd
		expected float64
		hasError bool
	}{
		{name: "explicit bet", cmd: CalcCmd{Pot: 100, Bet: ptr(50.0)}, expected: 50},
		{name: "percentage", cmd: CalcCmd{Pot: 4.5, Pct: ptr(75.0)}, expected: 3.38},
		{name: "zero bet", cmd: CalcCmd{Pot: 100, Bet: ptr(0.0)}, expected: 0},
		{name: "both", cmd: CalcCmd{Pot: 100, Bet: ptr(50.0), Pct: ptr(50.0)}, hasError: true},
		{name: "neither", cmd: CalcCmd{Pot: 100}, hasError: true},
		{name: "negative bet", cmd: CalcCmd{Pot: 100, Bet: ptr(-1.0)}, hasError: true},
		{name: "zero pot", cmd: CalcCmd{Pot: 0, Bet: ptr(10.0)}, hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bet, err := tt.cmd.resolveBet()
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, bet)
		})
	}
}

func TestRenderCalc(t *testing.T) {
	var out bytes.Buffer
	renderCalc(&out, 100, 50)

	text := out.String()
	assert.Contains(t, text, "50.00 (50% pot)")
	assert.Contains(t, text, "25.00% (3:1)")
	assert.Contains(t, text, "75.00%")
	assert.Contains(t, text, "66.67%")
	assert.Contains(t, text, "call 50.00 to win 200.00")
}

func TestRenderChart(t *testing.T) {
	var out bytes.Buffer
	renderChart(&out, 100, []int{33, 50, 75, 100})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 6)

	assert.Contains(t, lines[0], "pot odds")
	assert.Contains(t, lines[2], "33%")
	assert.Contains(t, lines[2], "19.88%")
	assert.Contains(t, lines[2], "75.19%")
	assert.Contains(t, lines[3], "25.00%")
	assert.Contains(t, lines[3], "66.67%")
	assert.Contains(t, lines[4], "30.00%")
	assert.Contains(t, lines[4], "57.14%")
	assert.Contains(t, lines[5], "2:1")
	assert.Contains(t, lines[5], "50.00%")
}

var escapes = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestRenderChartAlignsColouredColumns(t *testing.T) {
	profile := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(func() { lipgloss.SetColorProfile(profile) })

	var out bytes.Buffer
	renderChart(&out, 100, []int{20, 100})
	require.Contains(t, out.String(), "\x1b[", "expected styled output")

	lines := strings.Split(escapes.ReplaceAllString(out.String(), ""), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	header, row := lines[0], lines[2]

	for _, col := range []struct{ heading, cell string }{
		{"size", "20%"},
		{"bet", "20.00"},
		{"pot odds", "14.29%"},
		{"ratio", "6:1"},
		{"mdf", "83.33%"},
	} {
		assert.Equal(t, strings.Index(header, col.heading), strings.Index(row, col.cell), "column %q", col.heading)
	}
}

func TestRenderStats(t *testing.T) {
	var out bytes.Buffer
	renderStats(&out, score.RunningScore{
		PotOdds: score.Tally{Correct: 3, Total: 4},
		MDF:     score.Tally{Correct: 1, Total: 4},
	})

	text := out.String()
	assert.Contains(t, text, "3/4 (75%)")
	assert.Contains(t, text, "1/4 (25%)")
	assert.Contains(t, text, "4/8 (50%)")
}

func TestDrillFlagsApply(t *testing.T) {
	cfg := config.Default()
	flags := DrillFlags{
		Kind:         "mdf",
		MinPot:       ptr(10.0),
		MaxPot:       ptr(20.0),
		BetSize:      ptr(75),
		NoOccasional: true,
		Tolerance:    ptr(1.0),
	}

	require.NoError(t, flags.apply(cfg))
	assert.Equal(t, scenario.MDF, cfg.Kind())
	assert.Equal(t, 10.0, cfg.Drill.MinPot)
	assert.Equal(t, 20.0, cfg.Drill.MaxPot)
	assert.Equal(t, 75, cfg.Drill.FixedBetSize)
	assert.True(t, cfg.Drill.ExcludeOccasional)
	assert.Equal(t, 1.0, cfg.Drill.Tolerance)
}

func TestDrillFlagsApplyRejectsBadSettings(t *testing.T) {
	assert.Error(t, (&DrillFlags{Kind: "equity"}).apply(config.Default()))
	assert.Error(t, (&DrillFlags{MinPot: ptr(50.0), MaxPot: ptr(10.0)}).apply(config.Default()))
	assert.ErrorContains(t, (&DrillFlags{Tolerance: ptr(0.0)}).apply(config.Default()), "tolerance must be positive")
}

func TestGlobalsLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("defaults when nothing is stored", func(t *testing.T) {
		env, err := (&Globals{StateDir: dir, LogLevel: "debug"}).load()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, config.FileName), env.settingsPath)
		assert.Equal(t, "debug", env.cfg.Log.Level)
		assert.Equal(t, filepath.Join(dir, "mdftrainer.log"), env.logPath())
	})

	t.Run("reads the stored settings", func(t *testing.T) {
		cfg := config.Default()
		cfg.Drill.Kind = string(scenario.PotOdds)
		require.NoError(t, config.Save(filepath.Join(dir, config.FileName), cfg))

		env, err := (&Globals{StateDir: dir}).load()
		require.NoError(t, err)
		assert.Equal(t, scenario.PotOdds, env.cfg.Kind())
	})

	t.Run("explicit config path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.hcl")
		require.NoError(t, os.WriteFile(path, []byte("drill {\n  kind = \"mdf\"\n}\nlog {}\nstore {}\n"), 0o644))

		env, err := (&Globals{StateDir: dir, Config: path}).load()
		require.NoError(t, err)
		assert.Equal(t, path, env.settingsPath)
		assert.Equal(t, scenario.MDF, env.cfg.Kind())
	})
}

func TestOpenLogFileWritesToStateDir(t *testing.T) {
	env, err := (&Globals{StateDir: filepath.Join(t.TempDir(), "state")}).load()
	require.NoError(t, err)

	logger, f, err := openLogFile(env, "quiz")
	require.NoError(t, err)
	logger.Info("Answer submitted", "correct", true)
	require.NoError(t, f.Close())

	data, err := os.ReadFile(env.logPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "quiz")
	assert.Contains(t, string(data), "Answer submitted")
}
