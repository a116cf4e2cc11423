package data

import "os"

// Provider supplies market data. The sweep only needs a spot quote: when a
// config names an underlying ticker instead of an explicit asset price, the
// provider resolves it.
type Provider interface {
	// Secondary returns the fallback provider, or nil.
	Secondary() Provider

	// SpotPrice returns the latest available price for an underlying.
	SpotPrice(underlying string) (float64, error)
}

// GetProvider selects a provider from the environment: Polygon when an API
// key is configured, synthetic otherwise. The synthetic provider is wired
// as the Polygon fallback so a data outage degrades instead of failing.
func GetProvider() Provider {
	apiKey := os.Getenv("POLYGON_API_KEY")
	if apiKey == "" {
		return NewSyntheticProvider()
	}
	return NewPolygonProvider(apiKey, NewSyntheticProvider())
}
