// Package drill runs a practice session: it asks generated scenarios, judges
// the answers and keeps the running score persisted.
package drill

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/mdftrainer/internal/scenario"
	"github.com/lox/mdftrainer/internal/score"
	"github.com/lox/mdftrainer/internal/store"
)

// ErrNoScenario is returned when an answer is submitted with no open
// scenario.
var ErrNoScenario = errors.New("no scenario to answer")

// Result describes one judged answer.
type Result struct {
	Scenario scenario.Scenario
	Given    float64
	Correct  bool
	Elapsed  time.Duration
	Streak   int
}

// Feedback is the line shown to the player after an answer.
func (r Result) Feedback() string {
	answer := formatPercent(r.Scenario.Answer)
	if r.Correct {
		return fmt.Sprintf("Correct! The answer is %s%%", answer)
	}
	return fmt.Sprintf("Wrong! The correct answer is %s%%. You answered %s%%", answer, formatPercent(r.Given))
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Config holds the session's collaborators.
type Config struct {
	Generator *scenario.Generator
	Store     store.Store
	Kind      scenario.Kind
	Tolerance float64
	Clock     quartz.Clock
	Logger    *log.Logger
}

// Session is a single-player drill. It is not safe for concurrent use.
type Session struct {
	gen       *scenario.Generator
	store     store.Store
	kind      scenario.Kind
	tolerance float64
	clock     quartz.Clock
	logger    *log.Logger

	score      score.RunningScore
	current    scenario.Scenario
	open       bool
	askedAt    time.Time
	streak     int
	bestStreak int
}

// NewSession loads the persisted score and returns a session ready for Next.
func NewSession(ctx context.Context, cfg Config) (*Session, error) {
	if cfg.Generator == nil {
		return nil, errors.New("drill: generator is required")
	}
	if cfg.Store == nil {
		return nil, errors.New("drill: store is required")
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Kind == "" {
		cfg.Kind = scenario.Random
	}

	saved, err := cfg.Store.LoadScore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load score: %w", err)
	}

	s := &Session{
		gen:       cfg.Generator,
		store:     cfg.Store,
		kind:      cfg.Kind,
		tolerance: cfg.Tolerance,
		clock:     cfg.Clock,
		logger:    cfg.Logger.WithPrefix("drill"),
		score:     saved,
	}
	s.logger.Debug("Session started", "kind", s.kind, "score", saved.Overall().String())
	return s, nil
}

// Next generates and opens a new scenario, abandoning any open one.
func (s *Session) Next() scenario.Scenario {
	s.current = s.gen.Generate(s.kind)
	s.open = true
	s.askedAt = s.clock.Now()

	s.logger.Debug("New scenario",
		"kind", s.current.Kind,
		"pot", s.current.Pot,
		"bet", s.current.Bet,
		"answer", s.current.Answer)
	return s.current
}

// Current returns the most recent scenario and whether it is still open.
func (s *Session) Current() (scenario.Scenario, bool) {
	return s.current, s.open
}

// Submit judges input against the open scenario. Input that is not a number
// returns an error wrapping scenario.ErrInvalidAnswer and changes nothing.
func (s *Session) Submit(ctx context.Context, input string) (Result, error) {
	if !s.open {
		return Result{}, ErrNoScenario
	}

	given, err := scenario.ParseAnswer(input)
	if err != nil {
		return Result{}, err
	}

	correct := s.current.Check(given, s.tolerance)
	s.open = false
	s.score.Record(s.current.Kind, correct)

	if correct {
		s.streak++
		if s.streak > s.bestStreak {
			s.bestStreak = s.streak
		}
	} else {
		s.streak = 0
	}

	result := Result{
		Scenario: s.current,
		Given:    given,
		Correct:  correct,
		Elapsed:  s.clock.Since(s.askedAt),
		Streak:   s.streak,
	}

	s.logger.Info("Answer submitted",
		"kind", result.Scenario.Kind,
		"given", given,
		"answer", result.Scenario.Answer,
		"correct", correct,
		"elapsed", result.Elapsed)

	if err := s.store.SaveScore(ctx, s.score); err != nil {
		return result, fmt.Errorf("failed to save score: %w", err)
	}
	return result, nil
}

// Score returns the running score including this session's answers.
func (s *Session) Score() score.RunningScore {
	return s.score
}

// ResetScore zeroes and persists the running score.
func (s *Session) ResetScore(ctx context.Context) error {
	s.score.Reset()
	s.streak = 0
	s.logger.Info("Score reset")
	if err := s.store.SaveScore(ctx, s.score); err != nil {
		return fmt.Errorf("failed to save score: %w", err)
	}
	return nil
}

// Kind is the current question kind selection.
func (s *Session) Kind() scenario.Kind {
	return s.kind
}

// SetKind changes the selection used by subsequent calls to Next.
func (s *Session) SetKind(kind scenario.Kind) {
	s.kind = kind
}

// Tolerance is the accepted distance from the correct answer.
func (s *Session) Tolerance() float64 {
	return s.tolerance
}

// Streak returns the current and best run of correct answers this session.
func (s *Session) Streak() (current, best int) {
	return s.streak, s.bestStreak
}
