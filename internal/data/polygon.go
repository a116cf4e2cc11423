package data

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/contactkeval/option-lattice/internal/logger"
)

// polygonDataProvider implements Provider using the Polygon.io API.
type polygonDataProvider struct {
	apiKey    string
	client    *http.Client
	baseURL   string
	secondary Provider
}

func NewPolygonProvider(apiKey string, secondary Provider) Provider {
	return &polygonDataProvider{
		apiKey:    apiKey,
		client:    &http.Client{Timeout: 30 * time.Second},
		baseURL:   "https://api.polygon.io",
		secondary: secondary,
	}
}

func (polygonDataProv *polygonDataProvider) Secondary() Provider {
	return polygonDataProv.secondary
}

// SpotPrice returns the previous session close for the underlying.
// Polygon's previous-close aggregate is the cheapest endpoint available on
// every plan tier, and a one-day-old close is fine for a theoretical
// valuation sweep.
func (polygonDataProv *polygonDataProvider) SpotPrice(underlying string) (float64, error) {
	price, err := polygonDataProv.getPrevClose(underlying)
	if err == nil {
		return price, nil
	}
	logger.Debugf("polygon spot for %s failed: %v", underlying, err)
	if polygonDataProv.secondary != nil {
		logger.Infof("polygon spot unavailable, falling back to secondary provider")
		return polygonDataProv.secondary.SpotPrice(underlying)
	}
	return 0, err
}

func (polygonDataProv *polygonDataProvider) getPrevClose(underlying string) (float64, error) {
	url := fmt.Sprintf("%s/v2/aggs/ticker/%s/prev?adjusted=true&apiKey=%s",
		polygonDataProv.baseURL, underlying, polygonDataProv.apiKey)
	req, _ := http.NewRequest("GET", url, nil)
	resp, err := polygonDataProv.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return 0, fmt.Errorf("polygon prev close status %d", resp.StatusCode)
	}
	var body struct {
		Results []struct {
			Close float64 `json:"c"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	if len(body.Results) == 0 {
		return 0, fmt.Errorf("polygon prev close: no results for %s", underlying)
	}
	return body.Results[0].Close, nil
}
