package scenario

import (
	"fmt"
	"strings"
)

// Kind selects which number the player has to work out for a scenario.
type Kind string

const (
	PotOdds Kind = "pot-odds"
	MDF     Kind = "mdf"

	// Random is only valid as a selection: each generated scenario picks
	// PotOdds or MDF with equal probability.
	Random Kind = "random"
)

// Kinds lists the selections in the order the UI cycles through them.
var Kinds = []Kind{Random, PotOdds, MDF}

// ParseKind accepts the canonical names plus a few spellings players type.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pot-odds", "potodds", "pot_odds", "odds":
		return PotOdds, nil
	case "mdf":
		return MDF, nil
	case "random", "mixed", "":
		return Random, nil
	}
	return "", fmt.Errorf("unknown question kind %q (want pot-odds, mdf or random)", s)
}

// Next returns the selection after k in Kinds, wrapping around.
func (k Kind) Next() Kind {
	for i, kind := range Kinds {
		if kind == k {
			return Kinds[(i+1)%len(Kinds)]
		}
	}
	return Kinds[0]
}

// Label is the human readable name of the kind.
func (k Kind) Label() string {
	switch k {
	case PotOdds:
		return "Pot Odds"
	case MDF:
		return "MDF"
	case Random:
		return "Random"
	}
	return string(k)
}

func (k Kind) String() string {
	return string(k)
}
