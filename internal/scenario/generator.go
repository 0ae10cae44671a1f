// Package scenario generates random betting spots for the pot odds and MDF
// drills and checks answers against them.
package scenario

import (
	"errors"
	"fmt"
	"math"
	rand "math/rand/v2"

	"github.com/lox/mdftrainer/internal/calculator"
)

// Pot bounds in big blinds.
const (
	MinimumPot    = 2.5 // SB limps, BB checks
	DefaultMinPot = 4.5 // min-raise, one caller
	DefaultMaxPot = 400 // 200bb deep on both sides
)

// BetSize is a bet-size candidate with its relative draw weight.
type BetSize struct {
	Percent int
	Weight  int
}

// StandardBetSizes are the sizings seen in most pot-limit games, weighted
// towards the half and three-quarter pot bets.
var StandardBetSizes = []BetSize{
	{Percent: 33, Weight: 3},
	{Percent: 50, Weight: 4},
	{Percent: 75, Weight: 4},
	{Percent: 100, Weight: 3},
}

// OccasionalBetSizes show up now and then to keep the player honest.
var OccasionalBetSizes = []BetSize{
	{Percent: 20, Weight: 1},
	{Percent: 66, Weight: 1},
}

// Options controls scenario generation.
type Options struct {
	MinPot float64
	MaxPot float64

	// BetSizePercent fixes every bet at this size when > 0.
	BetSizePercent int

	// ExcludeOccasional draws only from StandardBetSizes.
	ExcludeOccasional bool

	// BetSizes replaces the built-in candidate table when non-empty.
	BetSizes []BetSize
}

// DefaultOptions returns the options the trainer starts with.
func DefaultOptions() Options {
	return Options{
		MinPot: DefaultMinPot,
		MaxPot: DefaultMaxPot,
	}
}

// Validate checks that the options describe a drawable scenario space.
func (o Options) Validate() error {
	if o.MinPot <= 0 || o.MaxPot <= 0 {
		return errors.New("pot sizes must be positive")
	}
	if o.MinPot > o.MaxPot {
		return fmt.Errorf("min pot %.2f is greater than max pot %.2f", o.MinPot, o.MaxPot)
	}
	if o.BetSizePercent < 0 {
		return errors.New("bet size must be positive")
	}
	if len(o.BetSizes) > 0 {
		total := 0
		for _, size := range o.BetSizes {
			if size.Percent <= 0 {
				return fmt.Errorf("bet size %d%% must be positive", size.Percent)
			}
			if size.Weight < 0 {
				return fmt.Errorf("bet size %d%% has negative weight", size.Percent)
			}
			total += size.Weight
		}
		if total == 0 {
			return errors.New("bet size weights sum to zero")
		}
	}
	return nil
}

// Candidates returns the bet-size table draws are made from.
func (o Options) Candidates() []BetSize {
	if len(o.BetSizes) > 0 {
		return o.BetSizes
	}
	if o.ExcludeOccasional {
		return StandardBetSizes
	}
	sizes := make([]BetSize, 0, len(StandardBetSizes)+len(OccasionalBetSizes))
	sizes = append(sizes, StandardBetSizes...)
	return append(sizes, OccasionalBetSizes...)
}

// Generator produces scenarios from a seeded random source. It is not safe
// for concurrent use.
type Generator struct {
	rng        *rand.Rand
	opts       Options
	candidates []BetSize
	weight     int
}

// NewGenerator validates opts and returns a generator drawing from rng.
func NewGenerator(rng *rand.Rand, opts Options) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	candidates := opts.Candidates()
	weight := 0
	for _, c := range candidates {
		weight += c.Weight
	}

	return &Generator{
		rng:        rng,
		opts:       opts,
		candidates: candidates,
		weight:     weight,
	}, nil
}

// Options returns the options the generator was built with.
func (g *Generator) Options() Options {
	return g.opts
}

// Generate returns a scenario of the given kind. Random picks one of PotOdds
// and MDF with equal probability.
func (g *Generator) Generate(kind Kind) Scenario {
	if kind != PotOdds && kind != MDF {
		kind = g.coinFlip()
	}

	pot := g.DrawPot()
	pct := g.opts.BetSizePercent
	if pct <= 0 {
		pct = g.DrawBetSize()
	}
	bet := calculator.BetAmount(pot, float64(pct))

	s := Scenario{
		Kind:           kind,
		Pot:            pot,
		Bet:            bet,
		BetSizePercent: pct,
	}
	switch kind {
	case PotOdds:
		s.Answer = calculator.PotOdds(pot, bet)
	case MDF:
		s.Answer = calculator.MDF(pot, bet)
	}
	return s
}

// DrawPot draws a pot uniformly from [MinPot, MaxPot] and snaps it to the
// nearest half unit, staying inside the range.
func (g *Generator) DrawPot() float64 {
	lo, hi := g.opts.MinPot, g.opts.MaxPot
	raw := lo + g.rng.Float64()*(hi-lo)

	pot := math.Round(raw*2) / 2
	if pot < lo {
		pot += 0.5
	}
	if pot > hi {
		pot -= 0.5
	}
	if pot < lo || pot > hi {
		// no half unit inside the range
		return math.Round(raw*100) / 100
	}
	return pot
}

// DrawBetSize performs a weighted draw over the candidate table by scanning
// cumulative weights against a uniform draw in [0, total weight).
func (g *Generator) DrawBetSize() int {
	r := g.rng.Float64() * float64(g.weight)
	for _, c := range g.candidates {
		if c.Weight == 0 {
			continue
		}
		r -= float64(c.Weight)
		if r <= 0 {
			return c.Percent
		}
	}
	return g.candidates[0].Percent
}

func (g *Generator) coinFlip() Kind {
	if g.rng.IntN(2) == 0 {
		return PotOdds
	}
	return MDF
}
