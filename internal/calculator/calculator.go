// Package calculator implements the closed-form pot odds and minimum defense
// frequency formulas used by the trainer. All percentages are rounded to two
// decimal places.
package calculator

import (
	"math"
	"strconv"
)

// PotOdds returns the price of a call as a percentage of the pot after the
// call: bet / (pot + bet + call). A zero or negative bet costs nothing.
func PotOdds(pot, bet float64) float64 {
	if bet <= 0 {
		return 0
	}
	potAfterCall := pot + bet + bet
	return round2(bet / potAfterCall * 100)
}

// PotShare is the complement of PotOdds: the part of the final pot the caller
// does not put in. PotOdds(pot, bet) + PotShare(pot, bet) is always 100.
func PotShare(pot, bet float64) float64 {
	return round2(100 - PotOdds(pot, bet))
}

// PotOddsRatio formats the pot odds as "R:1", the amount the caller can win
// against each unit risked, to one decimal place.
func PotOddsRatio(pot, bet float64) string {
	if bet <= 0 {
		return "0:1"
	}
	ratio := math.Round((pot+bet)/bet*10) / 10
	return strconv.FormatFloat(ratio, 'f', -1, 64) + ":1"
}

// MDF returns the minimum defense frequency against a bet: the share of a
// range that must continue so that a pure bluff breaks even.
// 1 - bet / (pot + bet), as a percentage.
func MDF(pot, bet float64) float64 {
	if bet <= 0 {
		return 100
	}
	return round2((1 - bet/(pot+bet)) * 100)
}

// BetAmount converts a bet size given as a percentage of the pot into chips.
func BetAmount(pot float64, percent float64) float64 {
	return round2(pot * percent / 100)
}

// BetSizePercent is the inverse of BetAmount, rounded to a whole percent.
func BetSizePercent(pot, bet float64) int {
	if pot <= 0 {
		return 0
	}
	return int(math.Round(bet / pot * 100))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
