package pricing

import "math"

// BlackScholesPrice calculates the closed-form Black-Scholes price of a
// European option. It is the continuous-time limit the binomial valuation
// approaches as Steps grows, and serves as the convergence reference in
// sweep reports and tests.
//
// Parameters:
//   - optType: Call or Put
//   - spot: price of the underlying asset
//   - strike: strike price of the option
//   - expiry: time to expiry in years
//   - rate: risk-free interest rate (annual, continuously compounded)
//   - sigma: volatility of the underlying asset (annual, as a decimal)
//
// If time to expiry or volatility is zero or negative the formula is
// undefined and the intrinsic value is returned instead.
//
// Note: the binomial model compounds the per-step growth discretely, so its
// large-Steps limit sits slightly off this price; the residual shrinks with
// the rate but does not vanish. Treat agreement to within a few cents as
// convergence, not equality.
func BlackScholesPrice(
	optType OptionType,
	spot float64,
	strike float64,
	expiry float64,
	rate float64,
	sigma float64,
) float64 {

	if expiry <= 0 || sigma <= 0 {
		return optType.Payoff(spot, strike) // intrinsic fallback
	}

	d1 := (math.Log(spot/strike) + (rate+0.5*sigma*sigma)*expiry) / (sigma * math.Sqrt(expiry))
	d2 := d1 - sigma*math.Sqrt(expiry)

	if optType == Call {
		return spot*normCDF(d1) - strike*math.Exp(-rate*expiry)*normCDF(d2)
	}
	return strike*math.Exp(-rate*expiry)*normCDF(-d2) - spot*normCDF(-d1)
}

// normCDF computes the cumulative distribution function of the standard
// normal distribution for a given value x using the error function.
func normCDF(x float64) float64 {
	return 0.5 * (1.0 + math.Erf(x/math.Sqrt2))
}
