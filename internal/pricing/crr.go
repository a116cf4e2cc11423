// Package pricing implements theoretical valuation of European options.
//
// The primary model is the Cox-Ross-Rubenstein (CRR) binomial tree, evaluated
// in closed form over the terminal nodes: no tree structure is materialized,
// the value is the discounted risk-neutral expectation of the payoff across
// the steps+1 possible terminal prices. A Black-Scholes closed form is also
// provided as a convergence reference.
//
// Two numerical quirks are kept on purpose, for parity with the reference
// sequence this model reproduces:
//
//   - The per-step risk-free growth factor uses discrete compounding,
//     (1+r)^(t/n), while the final discounting is continuous, exp(-r*t).
//     This asymmetry shifts the large-n limit slightly away from the
//     textbook Black-Scholes price. Do not "fix" it; every output value
//     depends on it.
//   - Binomial weights are computed from floating-point factorials, which
//     overflow to +Inf past 170!. Valuations with Steps above ~170 degrade
//     to NaN. See Factorial.
package pricing

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidParameters wraps all construction-time validation failures.
var ErrInvalidParameters = fmt.Errorf("invalid pricing parameters")

// validate checks Parameters struct tags. A single shared instance is fine:
// the validator is stateless after construction and safe for concurrent use.
var validate = validator.New()

// Parameters carries the inputs of one valuation. It is a plain value: build
// it, hand it to NewPricer, throw it away. Nothing mutates it afterwards.
type Parameters struct {
	// AssetPrice is the spot price of the underlying.
	AssetPrice float64 `json:"asset_price" validate:"gt=0"`
	// Strike is the exercise price of the option.
	Strike float64 `json:"strike" validate:"gt=0"`
	// TimeStep is the time to expiry in years.
	TimeStep float64 `json:"time_step" validate:"gt=0"`
	// Volatility is the annualized volatility as a decimal. Zero is accepted
	// but degenerate: the up and down factors coincide and the risk-neutral
	// probability divides by zero, so the result is non-finite.
	Volatility float64 `json:"volatility" validate:"gte=0"`
	// RiskFreeRate is the annualized risk-free rate as a decimal.
	RiskFreeRate float64 `json:"rate"`
	// OptionType selects the payoff, Call or Put.
	OptionType OptionType `json:"option_type" validate:"oneof=call put"`
	// Steps is the tree resolution. Values above ~170 overflow the
	// floating-point factorial and yield NaN; that is a documented
	// degradation, not a validation failure.
	Steps int `json:"steps" validate:"gte=1"`
}

// Pricer values one European option under the CRR binomial model.
// Construct with NewPricer; the zero value is not usable.
type Pricer struct {
	params Parameters
}

// NewPricer validates the parameters and returns a Pricer over them.
// Violations of the structural constraints (non-positive prices or expiry,
// negative volatility, steps < 1, unknown option type) return an error
// wrapping ErrInvalidParameters.
func NewPricer(params Parameters) (*Pricer, error) {
	if err := validate.Struct(params); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}
	return &Pricer{params: params}, nil
}

// Params returns a copy of the parameters the Pricer was built with.
func (p *Pricer) Params() Parameters { return p.params }

// OptionValue computes the present value of the option.
//
// The tree has params.Steps periods of length TimeStep/Steps years. Per
// period the underlying moves up by u = exp(vol*sqrt(dt)) or down by
// d = 1/u, and grows risk-free by (1+rate)^dt (discrete compounding, see
// the package comment). The risk-neutral up probability is
// (growth-d)/(u-d). Terminal node j (j up-moves out of n) contributes
// C(n,j) * p^j * (1-p)^(n-j) * payoff(S*u^j*d^(n-j)), and the sum is
// discounted continuously over the full horizon.
//
// The call is pure: no state, no side effects, O(Steps) arithmetic.
// Degenerate inputs (zero volatility, Steps beyond the factorial range)
// produce NaN or Inf rather than an error.
func (p *Pricer) OptionValue() float64 {
	n := p.params.Steps
	dt := p.params.TimeStep / float64(n)

	up := math.Exp(p.params.Volatility * math.Sqrt(dt))
	down := math.Exp(-p.params.Volatility * math.Sqrt(dt))
	growth := FutureValue(1, p.params.RiskFreeRate, dt)
	prob := (growth - down) / (up - down)

	total := 0.0
	for j := 0; j <= n; j++ {
		terminal := p.params.AssetPrice * math.Pow(up, float64(j)) * math.Pow(down, float64(n-j))
		weight := BinomialCoefficient(j, n) * math.Pow(prob, float64(j)) * math.Pow(1-prob, float64(n-j))
		total += weight * p.params.OptionType.Payoff(terminal, p.params.Strike)
	}

	return PresentValue(total, p.params.RiskFreeRate, p.params.TimeStep)
}
