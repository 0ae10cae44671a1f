package score

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/mdftrainer/internal/scenario"
)

func TestRecord(t *testing.T) {
	var s RunningScore

	s.Record(scenario.PotOdds, true)
	s.Record(scenario.PotOdds, false)
	s.Record(scenario.MDF, true)
	s.Record(scenario.Random, true)

	assert.Equal(t, Tally{Correct: 1, Total: 2}, s.PotOdds)
	assert.Equal(t, Tally{Correct: 1, Total: 1}, s.MDF)
	assert.Equal(t, Tally{Correct: 2, Total: 3}, s.Overall())
	assert.Equal(t, s.Overall(), s.Tally(scenario.Random))
	assert.Equal(t, s.MDF, s.Tally(scenario.MDF))
}

func TestReset(t *testing.T) {
	s := RunningScore{PotOdds: Tally{3, 4}, MDF: Tally{1, 9}}
	s.Reset()
	assert.Equal(t, RunningScore{}, s)
}

func TestTallyPercent(t *testing.T) {
	assert.Equal(t, 0, Tally{}.Percent())
	assert.Equal(t, 75, Tally{Correct: 3, Total: 4}.Percent())
	assert.Equal(t, 67, Tally{Correct: 2, Total: 3}.Percent())
	assert.Equal(t, "2/3 (67%)", Tally{Correct: 2, Total: 3}.String())
}

func TestFieldsRoundTrip(t *testing.T) {
	s := RunningScore{PotOdds: Tally{5, 8}, MDF: Tally{2, 3}}

	flat := map[string]string{}
	for k, v := range s.Fields() {
		flat[k] = strconv.Itoa(v)
	}
	flat["unrelated"] = "x"

	got, err := FromFields(flat)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestFromFieldsRejectsBadValues(t *testing.T) {
	_, err := FromFields(map[string]string{FieldMDFTotal: "many"})
	assert.ErrorContains(t, err, FieldMDFTotal)

	_, err = FromFields(map[string]string{FieldPotOddsCorrect: "-1"})
	assert.ErrorContains(t, err, "negative")

	empty, err := FromFields(nil)
	require.NoError(t, err)
	assert.Equal(t, RunningScore{}, empty)
}

func TestFromCounts(t *testing.T) {
	s := RunningScore{PotOdds: Tally{5, 8}, MDF: Tally{2, 3}}

	got, err := FromCounts(s.Fields())
	require.NoError(t, err)
	assert.Equal(t, s, got)

	_, err = FromCounts(map[string]int{FieldMDFCorrect: -1})
	assert.ErrorContains(t, err, "negative count")
}
