package pricing

import "math"

// Factorial computes n! by iterative floating-point multiplication, with
// Factorial(0) = 1.
//
// float64 saturates to +Inf at 171!, which caps the usable tree resolution
// at roughly 170 steps: beyond that BinomialCoefficient degenerates to
// Inf/Inf = NaN and the valuation follows. The float accumulation is kept
// deliberately (a Pascal recurrence or log-gamma would extend the range but
// perturb the low-order bits of every weight).
func Factorial(n int) float64 {
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result
}

// BinomialCoefficient returns C(n, k) = n! / (k! * (n-k)!), the number of
// paths through a binomial tree reaching the terminal node with k up-moves.
func BinomialCoefficient(k, n int) float64 {
	return Factorial(n) / (Factorial(k) * Factorial(n-k))
}

// FutureValue grows a present amount at rate r, discretely compounded,
// over n years (n may be fractional): P * (1+r)^n.
func FutureValue(present, rate, years float64) float64 {
	return present * math.Pow(1+rate, years)
}

// PresentValue discounts a future amount at rate r, continuously
// compounded, over n years: F / exp(r*n).
func PresentValue(future, rate, years float64) float64 {
	return future / math.Exp(rate*years)
}
