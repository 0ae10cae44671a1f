// Package tui is the full-screen drill built on Bubble Tea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/mdftrainer/internal/drill"
	"github.com/lox/mdftrainer/internal/scenario"
)

// AdvanceDelay is how long feedback stays up before the next scenario.
const AdvanceDelay = 1500 * time.Millisecond

// advanceMsg moves on to the next scenario if seq still matches, so a stale
// timer from an earlier answer cannot skip a fresh question.
type advanceMsg struct {
	seq int
}

// Model represents the Bubble Tea model for a drill session
type Model struct {
	ctx     context.Context
	session *drill.Session
	logger  *log.Logger

	input textinput.Model

	scenario scenario.Scenario
	answered bool
	seq      int
	feedback string
	correct  bool
	warning  string

	width    int
	height   int
	quitting bool
}

// NewModel creates a model over session and asks the first scenario.
func NewModel(ctx context.Context, session *drill.Session, logger *log.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = "answer in %"
	ti.Focus()
	ti.CharLimit = 16
	ti.Width = 20
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	m := &Model{
		ctx:     ctx,
		session: session,
		logger:  logger.WithPrefix("tui"),
		input:   ti,
	}
	m.next()
	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		if m.answered && msg.seq == m.seq {
			m.next()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if m.answered {
				m.next()
				return m, nil
			}
			return m, m.submit()
		case "ctrl+n":
			m.next()
			return m, nil
		case "tab":
			m.session.SetKind(m.session.Kind().Next())
			m.logger.Debug("Kind changed", "kind", m.session.Kind())
			m.next()
			return m, nil
		case "ctrl+r":
			m.resetScore()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) next() {
	m.scenario = m.session.Next()
	m.answered = false
	m.seq++
	m.feedback = ""
	m.warning = ""
	m.input.SetValue("")
	m.input.Focus()
}

func (m *Model) submit() tea.Cmd {
	result, err := m.session.Submit(m.ctx, m.input.Value())
	switch {
	case errors.Is(err, scenario.ErrInvalidAnswer):
		m.feedback = "Please enter a valid number"
		m.correct = false
		return nil
	case errors.Is(err, drill.ErrNoScenario):
		return nil
	case err != nil:
		// the answer was judged but could not be persisted
		m.logger.Error("Failed to save score", "error", err)
		m.warning = "Score not saved: " + err.Error()
	}

	m.feedback = result.Feedback()
	m.correct = result.Correct
	m.answered = true
	m.input.Blur()

	seq := m.seq
	return tea.Tick(AdvanceDelay, func(time.Time) tea.Msg {
		return advanceMsg{seq: seq}
	})
}

func (m *Model) resetScore() {
	if err := m.session.ResetScore(m.ctx); err != nil {
		m.logger.Error("Failed to reset score", "error", err)
		m.warning = "Score not saved: " + err.Error()
		return
	}
	m.warning = ""
}

// View renders the drill
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(HeaderStyle.Render("♠ MDF & Pot Odds Trainer ♥"))
	b.WriteString("\n\n")
	b.WriteString(m.renderKinds())
	b.WriteString("\n\n")
	b.WriteString(PanelStyle.Render(m.renderScenario()))
	b.WriteString("\n\n")
	b.WriteString(QuestionStyle.Render(m.scenario.Question() + " (in %)"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.feedback != "" {
		style := ErrorStyle
		if m.answered && m.correct {
			style = SuccessStyle
		}
		b.WriteString(style.Render(m.feedback))
		b.WriteString("\n")
	}
	if m.warning != "" {
		b.WriteString(WarningStyle.Render(m.warning))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderScore())
	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render("Enter submit • Tab kind • Ctrl+N new • Ctrl+R reset stats • Esc quit"))

	return b.String()
}

func (m *Model) renderKinds() string {
	parts := make([]string, 0, len(scenario.Kinds))
	for _, kind := range scenario.Kinds {
		if kind == m.session.Kind() {
			parts = append(parts, ActiveKindStyle.Render(kind.Label()))
		} else {
			parts = append(parts, InfoStyle.Render(kind.Label()))
		}
	}
	return LabelStyle.Render("Mode: ") + strings.Join(parts, "  ")
}

func (m *Model) renderScenario() string {
	row := func(label, value string) string {
		return LabelStyle.Render(fmt.Sprintf("%-9s", label)) + ValueStyle.Render(value)
	}
	return strings.Join([]string{
		row("Pot", fmt.Sprintf("%.2f", m.scenario.Pot)),
		row("Bet", fmt.Sprintf("%.2f", m.scenario.Bet)),
		row("Bet size", fmt.Sprintf("%d%%", m.scenario.BetSizePercent)),
	}, "\n")
}

func (m *Model) renderScore() string {
	sc := m.session.Score()
	current, best := m.session.Streak()
	return strings.Join([]string{
		LabelStyle.Render("Pot Odds ") + sc.PotOdds.String(),
		LabelStyle.Render("MDF      ") + sc.MDF.String(),
		LabelStyle.Render("Streak   ") + fmt.Sprintf("%d (best %d)", current, best),
	}, "\n")
}

// Run starts the drill program on the terminal and blocks until it exits.
func Run(ctx context.Context, session *drill.Session, logger *log.Logger) error {
	p := tea.NewProgram(NewModel(ctx, session, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("drill ui: %w", err)
	}
	return nil
}
