package pricing

import "math"

// OptionType is the payoff selector. The set is closed: only Call and Put
// exist, and NewPricer rejects anything else before a payoff is ever
// evaluated.
type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)

// Payoff returns the exercise value of the option at expiry given the
// terminal price of the underlying and the strike.
//
//	Call: max(0, terminal - strike)
//	Put:  max(0, strike - terminal)
//
// An OptionType outside the closed set yields NaN, never a silent zero
// (zero is a legitimate payoff; NaN poisons the accumulated sum and is
// caught by any finiteness check). Validated Parameters cannot reach
// that branch.
func (t OptionType) Payoff(terminal, strike float64) float64 {
	switch t {
	case Call:
		return math.Max(0, terminal-strike)
	case Put:
		return math.Max(0, strike-terminal)
	}
	return math.NaN()
}
