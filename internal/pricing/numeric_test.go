package pricing

import (
	"math"
	"testing"
)

func TestFactorial(t *testing.T) {
	cases := []struct {
		n    int
		want float64
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
	}
	for _, c := range cases {
		if got := Factorial(c.n); got != c.want {
			t.Fatalf("Factorial(%d) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestFactorialOverflowCeiling(t *testing.T) {
	if v := Factorial(170); math.IsInf(v, 1) {
		t.Fatalf("170! should still be finite, got %v", v)
	}
	if v := Factorial(171); !math.IsInf(v, 1) {
		t.Fatalf("171! should overflow to +Inf, got %v", v)
	}
}

func TestBinomialCoefficient(t *testing.T) {
	cases := []struct {
		k, n int
		want float64
	}{
		{0, 10, 1},
		{10, 10, 1},
		{2, 5, 10},
		{3, 7, 35},
	}
	for _, c := range cases {
		if got := BinomialCoefficient(c.k, c.n); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("BinomialCoefficient(%d, %d) = %v, want %v", c.k, c.n, got, c.want)
		}
	}
}

func TestFutureValue(t *testing.T) {
	if got := FutureValue(100, 0.08, 1); math.Abs(got-108) > 1e-12 {
		t.Fatalf("FutureValue(100, 0.08, 1) = %v, want 108", got)
	}
	// fractional periods compound discretely
	want := math.Pow(1.08, 0.5)
	if got := FutureValue(1, 0.08, 0.5); math.Abs(got-want) > 1e-15 {
		t.Fatalf("FutureValue(1, 0.08, 0.5) = %v, want %v", got, want)
	}
}

func TestPresentValue(t *testing.T) {
	future := 100 * math.Exp(0.05*2)
	if got := PresentValue(future, 0.05, 2); math.Abs(got-100) > 1e-9 {
		t.Fatalf("PresentValue round trip = %v, want 100", got)
	}
}
