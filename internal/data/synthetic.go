package data

import (
	"hash/fnv"
	"math/rand"
)

// synthDataProvider implements Provider generating synthetic data.
// Quotes are seeded by ticker so repeated runs for the same underlying see
// the same spot.
type synthDataProvider struct {
	secondary Provider
}

func NewSyntheticProvider() Provider { return &synthDataProvider{} }

func (synthDataProv *synthDataProvider) Secondary() Provider {
	return synthDataProv.secondary
}

func (synthDataProv *synthDataProvider) SpotPrice(underlying string) (float64, error) {
	if synthDataProv.secondary != nil {
		return synthDataProv.secondary.SpotPrice(underlying)
	}
	h := fnv.New64a()
	h.Write([]byte(underlying))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))
	return 50.0 + rng.Float64()*200.0, nil
}
