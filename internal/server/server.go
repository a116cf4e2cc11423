// Package server exposes the valuation core over HTTP for callers that
// want to submit parameters as JSON instead of running the CLI.
package server

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contactkeval/option-lattice/internal/data"
	"github.com/contactkeval/option-lattice/internal/logger"
	"github.com/contactkeval/option-lattice/internal/pricing"
	"github.com/contactkeval/option-lattice/internal/sweep"
)

// PriceRequest represents a single-valuation request.
type PriceRequest struct {
	AssetPrice   float64 `json:"asset_price" binding:"required,gt=0"`
	Strike       float64 `json:"strike" binding:"required,gt=0"`
	TimeStep     float64 `json:"time_step" binding:"required,gt=0"`
	Volatility   float64 `json:"volatility" binding:"gte=0"`
	RiskFreeRate float64 `json:"rate"`
	OptionType   string  `json:"option_type" binding:"required,oneof=call put"`
	Steps        int     `json:"steps" binding:"required,gte=1"`
}

// PriceResponse carries the binomial value and the closed-form reference.
type PriceResponse struct {
	Value     float64 `json:"value"`
	Reference float64 `json:"reference"`
	Finite    bool    `json:"finite"`
}

// New builds the gin router. The provider backs sweep requests that name an
// underlying rather than an explicit spot.
func New(prov data.Provider) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.POST("/price", handlePrice)
	router.POST("/sweep", func(c *gin.Context) { handleSweep(c, prov) })

	return router
}

func handlePrice(c *gin.Context) {
	var req PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pricer, err := pricing.NewPricer(pricing.Parameters{
		AssetPrice:   req.AssetPrice,
		Strike:       req.Strike,
		TimeStep:     req.TimeStep,
		Volatility:   req.Volatility,
		RiskFreeRate: req.RiskFreeRate,
		OptionType:   pricing.OptionType(req.OptionType),
		Steps:        req.Steps,
	})
	if err != nil {
		// binding already mirrors the structural constraints, so this is
		// mostly unreachable, but the core owns the contract
		status := http.StatusInternalServerError
		if errors.Is(err, pricing.ErrInvalidParameters) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	value := pricer.OptionValue()
	logger.Debugf("priced %s steps=%d value=%v", req.OptionType, req.Steps, value)

	if math.IsNaN(value) || math.IsInf(value, 0) {
		// JSON has no NaN; surface the degenerate condition instead
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "non-finite result: degenerate parameters (zero volatility, or steps beyond the factorial range)",
			"finite": false,
		})
		return
	}

	c.JSON(http.StatusOK, PriceResponse{
		Value: value,
		Reference: pricing.BlackScholesPrice(pricing.OptionType(req.OptionType),
			req.AssetPrice, req.Strike, req.TimeStep, req.RiskFreeRate, req.Volatility),
		Finite: !math.IsNaN(value) && !math.IsInf(value, 0),
	})
}

func handleSweep(c *gin.Context, prov data.Provider) {
	logger.Infof("received /sweep request")
	var cfg sweep.Config
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := sweep.NewRunner(&cfg, prov).Run()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, pricing.ErrInvalidParameters) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
