package pricing

import (
	"math"
	"testing"
)

func TestPayoffCall(t *testing.T) {
	if got := Call.Payoff(110, 95); got != 15 {
		t.Fatalf("in-the-money call payoff: got %v want 15", got)
	}
	if got := Call.Payoff(80, 95); got != 0 {
		t.Fatalf("out-of-the-money call payoff: got %v want 0", got)
	}
}

func TestPayoffPut(t *testing.T) {
	if got := Put.Payoff(80, 95); got != 15 {
		t.Fatalf("in-the-money put payoff: got %v want 15", got)
	}
	if got := Put.Payoff(110, 95); got != 0 {
		t.Fatalf("out-of-the-money put payoff: got %v want 0", got)
	}
}

// Unknown variants must not silently price as worthless.
func TestPayoffUnknownTypeSignalsNaN(t *testing.T) {
	if got := OptionType("straddle").Payoff(100, 95); !math.IsNaN(got) {
		t.Fatalf("unknown option type payoff: got %v want NaN", got)
	}
}
