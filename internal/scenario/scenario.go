package scenario

import "fmt"

// Scenario is one generated betting spot together with its correct answer.
// Pot and Bet are in chips (or big blinds); Answer is a percentage.
type Scenario struct {
	Kind           Kind
	Pot            float64
	Bet            float64
	BetSizePercent int
	Answer         float64
}

// Question is the prompt shown above the answer input.
func (s Scenario) Question() string {
	if s.Kind == PotOdds {
		return "What are your pot odds?"
	}
	return "What is your MDF?"
}

// Check reports whether given is within tolerance of the correct answer.
func (s Scenario) Check(given, tolerance float64) bool {
	return CheckAnswer(given, s.Answer, tolerance)
}

func (s Scenario) String() string {
	return fmt.Sprintf("Pot: %.2f, Bet: %.2f (%d%% pot). %s", s.Pot, s.Bet, s.BetSizePercent, s.Question())
}
