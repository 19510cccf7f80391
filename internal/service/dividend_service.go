package service

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/apperrors"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/cache"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/marketcal"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/model"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/repository"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/schedule"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/yahoo"
)

// DividendService fetches, caches and merges the two dividend series for a
// ticker: the long historical series (primary) and the near-real-time
// announcement series (secondary).
//
// Fetch failures never propagate: the service degrades to the last persisted
// snapshot, and failing that to an empty series. An empty series is a normal,
// displayable state.
type DividendService struct {
	yahooClient  yahoo.Client
	cache        *cache.Store
	snapshotRepo *repository.SnapshotRepository
	calendar     *marketcal.Calendar
}

// NewDividendService creates a new DividendService with the provided
// dependencies. The snapshot repository may be nil; persistence is then
// skipped entirely.
func NewDividendService(
	yahooClient yahoo.Client,
	cacheStore *cache.Store,
	snapshotRepo *repository.SnapshotRepository,
	calendar *marketcal.Calendar,
) *DividendService {
	return &DividendService{
		yahooClient:  yahooClient,
		cache:        cacheStore,
		snapshotRepo: snapshotRepo,
		calendar:     calendar,
	}
}

// History returns the historical dividend series for a ticker, ex-dates
// normalized to market-local calendar days, sorted newest first.
func (s *DividendService) History(ctx context.Context, ticker string) []model.DividendEvent {
	series, err := s.cache.Dividends(ticker, func() ([]model.DividendEvent, error) {
		return s.fetchSeries(ctx, ticker, model.SourceHistory)
	})
	if err != nil {
		log.Printf("dividend history fetch failed for %s: %v", ticker, err)
		return s.snapshotFallback(ctx, ticker, model.SourceHistory)
	}
	return series
}

// Announcements returns the live announcement series for a ticker.
func (s *DividendService) Announcements(ctx context.Context, ticker string) []model.DividendEvent {
	series, err := s.cache.Announcements(ticker, func() ([]model.DividendEvent, error) {
		return s.fetchSeries(ctx, ticker, model.SourceLive)
	})
	if err != nil {
		log.Printf("announcement fetch failed for %s: %v", ticker, err)
		return s.snapshotFallback(ctx, ticker, model.SourceLive)
	}
	return series
}

// Merged returns the overlaid series (live amounts over history) sorted by
// ex-date descending.
func (s *DividendService) Merged(ctx context.Context, ticker string) []model.DividendEvent {
	return schedule.Merge(s.History(ctx, ticker), s.Announcements(ctx, ticker))
}

// HistoryPayload builds the API payload for the dividend listing endpoint:
// the merged series truncated to limit entries, amounts converted to the
// viewer currency at fxRate, plus the percent change between the two most
// recent amounts.
func (s *DividendService) HistoryPayload(ctx context.Context, ticker string, limit int, fxRate float64) model.DividendHistory {
	merged := s.Merged(ctx, ticker)

	pct, pctOK := schedule.PercentChange(merged)

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}

	entries := make([]model.DividendEntry, 0, len(merged))
	for _, ev := range merged {
		entries = append(entries, model.DividendEntry{
			ExDate:    ev.ExDate,
			AmountUSD: ev.Amount,
			AmountKRW: math.Round(ev.Amount*fxRate*100) / 100,
			Source:    ev.Source,
		})
	}

	payload := model.DividendHistory{
		Ticker:  ticker,
		FXRate:  fxRate,
		Entries: entries,
	}
	if pctOK {
		payload.PercentChange = &pct
	}

	return payload
}

// fetchSeries queries the provider for one source, normalizes the raw points
// to market-local calendar days and persists the result as the latest
// snapshot for that (ticker, source).
func (s *DividendService) fetchSeries(ctx context.Context, ticker, source string) ([]model.DividendEvent, error) {
	var (
		raw yahoo.Response
		err error
	)
	if source == model.SourceLive {
		raw, err = s.yahooClient.QueryLiveAnnouncements(ctx, ticker)
	} else {
		raw, err = s.yahooClient.QueryDividendHistory(ctx, ticker)
	}
	if err != nil {
		return nil, s.recordFailure(ctx, ticker, source, err)
	}

	points, err := s.yahooClient.ParseDividends(raw)
	if err != nil {
		return nil, s.recordFailure(ctx, ticker, source, err)
	}

	events := make([]model.DividendEvent, 0, len(points))
	for _, p := range points {
		day := s.calendar.MarketDay(p.Date)
		if day.IsZero() {
			continue
		}
		events = append(events, model.DividendEvent{
			ExDate: day,
			Amount: p.Amount,
			Source: source,
		})
	}

	if s.snapshotRepo != nil {
		if err := s.snapshotRepo.Upsert(ctx, ticker, source, model.SnapshotStatusOK, events); err != nil {
			log.Printf("failed to persist %s snapshot for %s: %v", source, ticker, err)
		}
	}

	return events, nil
}

// recordFailure persists the failed fetch attempt so "fetch failed" stays
// distinguishable from "never fetched" and from a confirmed-empty series. The
// last good payload, if any, is left in place. Returns the wrapped fetch
// error for the caller to propagate.
func (s *DividendService) recordFailure(ctx context.Context, ticker, source string, fetchErr error) error {
	wrapped := fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveDividends, fetchErr)
	if s.snapshotRepo != nil {
		if err := s.snapshotRepo.MarkUnavailable(ctx, ticker, source, wrapped); err != nil {
			log.Printf("failed to record snapshot failure for %s: %v", ticker, err)
		}
	}
	return wrapped
}

// snapshotFallback serves the last persisted OK snapshot, or an empty series
// when none exists. A row whose payload status is unavailable records a
// failed fetch with no usable data and is not served.
func (s *DividendService) snapshotFallback(ctx context.Context, ticker, source string) []model.DividendEvent {
	if s.snapshotRepo == nil {
		return []model.DividendEvent{}
	}

	snapshot, err := s.snapshotRepo.GetLatest(ctx, ticker, source)
	if err != nil || snapshot.Status != model.SnapshotStatusOK {
		return []model.DividendEvent{}
	}

	log.Printf("serving stored %s snapshot for %s from %s", source, ticker, snapshot.FetchedAt.Format("2006-01-02 15:04"))
	return snapshot.Events
}
