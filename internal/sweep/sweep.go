// Package sweep runs a binomial valuation across a range of tree
// resolutions, producing one (steps, value) point per resolution. It is the
// harness around the pricing core: all numerical logic lives in
// internal/pricing, this package only iterates, logs and collects.
package sweep

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/contactkeval/option-lattice/internal/data"
	"github.com/contactkeval/option-lattice/internal/logger"
	"github.com/contactkeval/option-lattice/internal/pricing"
)

const (
	VerbosityError = iota // 0
	VerbosityInfo         // 1
	VerbosityDebug        // 2
	VerbosityTrace        // 3
)

// Config struct
type Config struct {
	AssetPrice   float64            `json:"asset_price,omitempty"` // spot; 0 = resolve from underlying
	Underlying   string             `json:"underlying,omitempty"`  // e.g. "AAPL", used when asset_price is 0
	Strike       float64            `json:"strike"`                // strike price
	TimeStep     float64            `json:"time_step"`             // time to expiry in years
	Volatility   float64            `json:"volatility"`            // annualized, as a decimal
	RiskFreeRate float64            `json:"rate"`                  // annualized, as a decimal
	OptionType   pricing.OptionType `json:"option_type"`           // "call" or "put"
	MinSteps     int                `json:"min_steps,omitempty"`   // first tree resolution, default 2
	MaxSteps     int                `json:"max_steps,omitempty"`   // last tree resolution, default 170
	ReportDir    string             `json:"report_dir,omitempty"`  // report directory
	Verbosity    int                `json:"verbosity,omitempty"`   // 0=errors,1=info,2=debug,3=trace
}

// DefaultConfig reproduces the reference run: a half-year 95-strike put on
// a 100 spot, 30% vol, 8% rate, swept over resolutions 2 through 170.
func DefaultConfig() *Config {
	return &Config{
		AssetPrice:   100,
		Strike:       95,
		TimeStep:     0.5,
		Volatility:   0.3,
		RiskFreeRate: 0.08,
		OptionType:   pricing.Put,
		MinSteps:     2,
		MaxSteps:     170,
	}
}

// Point is one valuation of the sweep.
type Point struct {
	Steps int     `json:"steps"`
	Value float64 `json:"value"`
}

// MarshalJSON encodes non-finite values as null: encoding/json refuses NaN
// and Inf, and a sweep past the factorial ceiling still has to serialize.
func (p Point) MarshalJSON() ([]byte, error) {
	if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
		return []byte(fmt.Sprintf(`{"steps":%d,"value":null}`, p.Steps)), nil
	}
	type alias Point
	return json.Marshal(alias(p))
}

// Result collects the sweep output.
type Result struct {
	Spot       float64 `json:"spot"`        // resolved spot actually used
	Reference  float64 `json:"reference"`   // closed-form Black-Scholes price
	Points     []Point `json:"points"`      // one per tree resolution
	NonFinite  int     `json:"non_finite"`  // count of NaN/Inf values kept in Points
	OptionType string  `json:"option_type"` // echoed from config
}

type Runner struct {
	cfg  *Config
	prov data.Provider
}

func NewRunner(cfg *Config, prov data.Provider) *Runner {
	return &Runner{cfg: cfg, prov: prov}
}

// Run executes the sweep sequentially. Each step count is an independent
// valuation, so the loop could be fanned out, but a full 2..170 sweep is a
// few thousand floating-point operations and not worth coordinating.
func (r *Runner) Run() (*Result, error) {
	cfg := r.cfg
	// fill defaults
	if cfg.MinSteps <= 0 {
		cfg.MinSteps = 2
	}
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = 170
	}
	if cfg.ReportDir == "" {
		cfg.ReportDir = "./out"
	}
	if cfg.Verbosity < VerbosityError || cfg.Verbosity > VerbosityTrace {
		cfg.Verbosity = VerbosityInfo
	}
	logger.SetVerbosity(cfg.Verbosity)

	if cfg.MinSteps > cfg.MaxSteps {
		return nil, fmt.Errorf("sweep config: min_steps %d > max_steps %d", cfg.MinSteps, cfg.MaxSteps)
	}

	spot := cfg.AssetPrice
	if spot == 0 {
		if cfg.Underlying == "" {
			return nil, fmt.Errorf("sweep config: no asset_price and no underlying to resolve one from")
		}
		var err error
		spot, err = r.prov.SpotPrice(cfg.Underlying)
		if err != nil {
			return nil, fmt.Errorf("resolving spot for %s: %w", cfg.Underlying, err)
		}
		logger.Infof("resolved spot for %s = %.2f", cfg.Underlying, spot)
	}

	res := &Result{
		Spot:       spot,
		Reference:  pricing.BlackScholesPrice(cfg.OptionType, spot, cfg.Strike, cfg.TimeStep, cfg.RiskFreeRate, cfg.Volatility),
		OptionType: string(cfg.OptionType),
	}
	logger.Infof("black-scholes reference = %.6f", res.Reference)

	for steps := cfg.MinSteps; steps <= cfg.MaxSteps; steps++ {
		pricer, err := pricing.NewPricer(pricing.Parameters{
			AssetPrice:   spot,
			Strike:       cfg.Strike,
			TimeStep:     cfg.TimeStep,
			Volatility:   cfg.Volatility,
			RiskFreeRate: cfg.RiskFreeRate,
			OptionType:   cfg.OptionType,
			Steps:        steps,
		})
		if err != nil {
			return nil, fmt.Errorf("steps=%d: %w", steps, err)
		}
		value := pricer.OptionValue()
		if math.IsNaN(value) || math.IsInf(value, 0) {
			// kept in the output: a run past the factorial ceiling should
			// show where the numbers went bad, not hide it
			res.NonFinite++
			logger.Debugf("steps=%d produced non-finite value %v", steps, value)
		} else {
			logger.Tracef("steps=%d value=%.6f", steps, value)
		}
		res.Points = append(res.Points, Point{Steps: steps, Value: value})
	}

	logger.Infof("swept %d resolutions (%d non-finite)", len(res.Points), res.NonFinite)
	return res, nil
}
