package scenario

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultTolerance is how far, in percentage points, an answer may be from
// the exact value and still count as correct.
const DefaultTolerance = 0.5

// epsilon absorbs float error so that 33.33 vs 33.83 is still within 0.5.
const epsilon = 1e-9

// ErrInvalidAnswer is returned by ParseAnswer for input that is not a number.
var ErrInvalidAnswer = errors.New("please enter a valid number")

// CheckAnswer reports whether |given - correct| <= tolerance.
func CheckAnswer(given, correct, tolerance float64) bool {
	if tolerance < 0 {
		tolerance = 0
	}
	return math.Abs(given-correct) <= tolerance+epsilon
}

// ParseAnswer parses a percentage typed by the player. Surrounding space and
// a trailing percent sign are ignored.
func ParseAnswer(input string) (float64, error) {
	s := strings.TrimSpace(input)
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	if s == "" {
		return 0, ErrInvalidAnswer
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAnswer, input)
	}
	return v, nil
}
