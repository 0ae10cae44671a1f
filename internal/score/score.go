// Package score keeps the running tally of drill answers per question kind.
package score

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lox/mdftrainer/internal/scenario"
)

// Tally counts answers for one question kind.
type Tally struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Percent is the share of correct answers rounded to a whole percent.
func (t Tally) Percent() int {
	if t.Total == 0 {
		return 0
	}
	return int(math.Round(float64(t.Correct) / float64(t.Total) * 100))
}

func (t Tally) String() string {
	return fmt.Sprintf("%d/%d (%d%%)", t.Correct, t.Total, t.Percent())
}

// RunningScore is the persisted score across drill sessions.
type RunningScore struct {
	PotOdds Tally `json:"pot_odds"`
	MDF     Tally `json:"mdf"`
}

// Record counts one answer for kind. Kinds other than pot odds and MDF are
// ignored.
func (s *RunningScore) Record(kind scenario.Kind, correct bool) {
	var t *Tally
	switch kind {
	case scenario.PotOdds:
		t = &s.PotOdds
	case scenario.MDF:
		t = &s.MDF
	default:
		return
	}

	t.Total++
	if correct {
		t.Correct++
	}
}

// Tally returns the counts for kind; Random yields the overall tally.
func (s RunningScore) Tally(kind scenario.Kind) Tally {
	switch kind {
	case scenario.PotOdds:
		return s.PotOdds
	case scenario.MDF:
		return s.MDF
	}
	return s.Overall()
}

// Overall sums both kinds.
func (s RunningScore) Overall() Tally {
	return Tally{
		Correct: s.PotOdds.Correct + s.MDF.Correct,
		Total:   s.PotOdds.Total + s.MDF.Total,
	}
}

// Reset zeroes every counter.
func (s *RunningScore) Reset() {
	*s = RunningScore{}
}

// Flat record field names.
const (
	FieldPotOddsCorrect = "pot_odds_correct"
	FieldPotOddsTotal   = "pot_odds_total"
	FieldMDFCorrect     = "mdf_correct"
	FieldMDFTotal       = "mdf_total"
)

// Fields flattens the score into a key/value record.
func (s RunningScore) Fields() map[string]int {
	return map[string]int{
		FieldPotOddsCorrect: s.PotOdds.Correct,
		FieldPotOddsTotal:   s.PotOdds.Total,
		FieldMDFCorrect:     s.MDF.Correct,
		FieldMDFTotal:       s.MDF.Total,
	}
}

var fieldNames = []string{FieldPotOddsCorrect, FieldPotOddsTotal, FieldMDFCorrect, FieldMDFTotal}

// FromFields rebuilds a score from a flat string record such as a Redis hash.
// Missing keys count as zero; unknown keys are ignored.
func FromFields(fields map[string]string) (RunningScore, error) {
	counts := make(map[string]int, len(fieldNames))
	for _, key := range fieldNames {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return RunningScore{}, fmt.Errorf("field %s: %w", key, err)
		}
		counts[key] = v
	}
	return FromCounts(counts)
}

// FromCounts rebuilds a score from the record returned by Fields.
func FromCounts(counts map[string]int) (RunningScore, error) {
	var s RunningScore
	targets := map[string]*int{
		FieldPotOddsCorrect: &s.PotOdds.Correct,
		FieldPotOddsTotal:   &s.PotOdds.Total,
		FieldMDFCorrect:     &s.MDF.Correct,
		FieldMDFTotal:       &s.MDF.Total,
	}

	for key, dst := range targets {
		v, ok := counts[key]
		if !ok {
			continue
		}
		if v < 0 {
			return RunningScore{}, fmt.Errorf("field %s: negative count %d", key, v)
		}
		*dst = v
	}
	return s, nil
}
