package service

import (
	"context"
	"log"

	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/cache"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/yahoo"
)

// FXService supplies the USD to viewer-currency conversion rate.
type FXService struct {
	yahooClient yahoo.Client
	cache       *cache.Store
	pair        string
	fallback    float64
}

// NewFXService creates a new FXService for the given pair symbol. The
// fallback rate is returned whenever the provider cannot supply one.
func NewFXService(yahooClient yahoo.Client, cacheStore *cache.Store, pair string, fallback float64) *FXService {
	return &FXService{
		yahooClient: yahooClient,
		cache:       cacheStore,
		pair:        pair,
		fallback:    fallback,
	}
}

// Rate returns the current conversion rate, served from the cache when fresh.
// A provider failure degrades to the configured fallback rate rather than an
// error: a stale-but-plausible conversion is more useful to the card than
// none, and unlike dividend amounts the rate is only used for display-side
// scaling.
func (s *FXService) Rate(ctx context.Context) float64 {
	rate, err := s.cache.FXRate(s.pair, func() (float64, error) {
		raw, err := s.yahooClient.QueryLatestFX(ctx, s.pair)
		if err != nil {
			return 0, err
		}
		return s.yahooClient.ParseLatestPrice(raw)
	})
	if err != nil {
		log.Printf("fx fetch failed for %s, using fallback rate %.2f: %v", s.pair, s.fallback, err)
		return s.fallback
	}

	return rate
}
