// Package cache provides the in-memory response cache keyed by ticker, with a
// distinct time-to-live per data source and request deduplication so
// concurrent queries for the same ticker repopulate an expired entry once.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/model"
)

// TTLs holds the time-to-live per data source.
type TTLs struct {
	Dividend     time.Duration // Historical dividend series
	Announcement time.Duration // Live announcement series
	FXRate       time.Duration // Currency conversion rate
}

// DefaultTTLs mirrors the provider refresh cadence: dividends every 30
// minutes, announcements every 3 hours, FX hourly.
func DefaultTTLs() TTLs {
	return TTLs{
		Dividend:     30 * time.Minute,
		Announcement: 3 * time.Hour,
		FXRate:       time.Hour,
	}
}

// Store is the shared response cache. Writes are idempotent (values derive
// from the same external source), so last-writer-wins is acceptable; the
// singleflight group only exists to avoid redundant provider calls.
type Store struct {
	dividends     *gocache.Cache
	announcements *gocache.Cache
	fxRates       *gocache.Cache
	flight        singleflight.Group
}

// New creates a store with the given per-source TTLs. Expired entries are
// janitored at twice the TTL.
func New(ttls TTLs) *Store {
	return &Store{
		dividends:     gocache.New(ttls.Dividend, 2*ttls.Dividend),
		announcements: gocache.New(ttls.Announcement, 2*ttls.Announcement),
		fxRates:       gocache.New(ttls.FXRate, 2*ttls.FXRate),
	}
}

// Dividends returns the cached historical series for a ticker, calling fetch
// on a miss. Concurrent misses for the same ticker share one fetch.
func (s *Store) Dividends(ticker string, fetch func() ([]model.DividendEvent, error)) ([]model.DividendEvent, error) {
	return s.fetchSeries(s.dividends, "div:"+ticker, ticker, fetch)
}

// Announcements returns the cached live announcement series for a ticker,
// calling fetch on a miss.
func (s *Store) Announcements(ticker string, fetch func() ([]model.DividendEvent, error)) ([]model.DividendEvent, error) {
	return s.fetchSeries(s.announcements, "ann:"+ticker, ticker, fetch)
}

// FXRate returns the cached conversion rate for a pair, calling fetch on a
// miss. Fetch errors are returned without caching so the next query retries.
func (s *Store) FXRate(pair string, fetch func() (float64, error)) (float64, error) {
	if rate, found := s.fxRates.Get(pair); found {
		return rate.(float64), nil
	}

	v, err, _ := s.flight.Do("fx:"+pair, func() (interface{}, error) {
		if rate, found := s.fxRates.Get(pair); found {
			return rate.(float64), nil
		}
		rate, err := fetch()
		if err != nil {
			return 0.0, err
		}
		s.fxRates.Set(pair, rate, gocache.DefaultExpiration)
		return rate, nil
	})
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

// Flush drops every cached entry across all sources.
func (s *Store) Flush() {
	s.dividends.Flush()
	s.announcements.Flush()
	s.fxRates.Flush()
}

func (s *Store) fetchSeries(c *gocache.Cache, flightKey, key string, fetch func() ([]model.DividendEvent, error)) ([]model.DividendEvent, error) {
	if series, found := c.Get(key); found {
		return series.([]model.DividendEvent), nil
	}

	v, err, _ := s.flight.Do(flightKey, func() (interface{}, error) {
		if series, found := c.Get(key); found {
			return series.([]model.DividendEvent), nil
		}
		series, err := fetch()
		if err != nil {
			return nil, err
		}
		c.Set(key, series, gocache.DefaultExpiration)
		return series, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.DividendEvent), nil
}
