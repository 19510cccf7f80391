// Package refresh keeps the response caches warm so viewer requests rarely
// wait on the upstream provider.
package refresh

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/cache"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/service"
)

// runTimeout bounds a full warm-up pass across the ticker universe.
const runTimeout = 10 * time.Minute

// Refresher periodically re-fetches the dividend, announcement and FX caches
// for every covered ticker.
type Refresher struct {
	dividendService *service.DividendService
	fxService       *service.FXService
	store           *cache.Store
	tickers         []string
	schedule        string
	cron            *cron.Cron
}

// NewRefresher creates a Refresher for the given ticker universe. An empty
// cron schedule leaves the background refresh disabled; RunOnce still works
// for on-demand refreshes.
func NewRefresher(
	dividendService *service.DividendService,
	fxService *service.FXService,
	store *cache.Store,
	tickers []string,
	schedule string,
) *Refresher {
	return &Refresher{
		dividendService: dividendService,
		fxService:       fxService,
		store:           store,
		tickers:         tickers,
		schedule:        schedule,
	}
}

// Start registers the cron schedule and begins background refreshing.
// A no-op when no schedule is configured.
func (r *Refresher) Start() error {
	if r.schedule == "" {
		log.Println("Background refresh disabled: no schedule configured")
		return nil
	}

	r.cron = cron.New()
	if _, err := r.cron.AddFunc(r.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		r.RunOnce(ctx)
	}); err != nil {
		return err
	}

	r.cron.Start()
	log.Printf("Background refresh started with schedule %q", r.schedule)
	return nil
}

// Stop halts background refreshing. Safe to call when never started.
func (r *Refresher) Stop() {
	if r.cron != nil {
		r.cron.Stop()
	}
}

// RunOnce drops every cached entry and re-fetches both dividend series for
// each covered ticker plus the FX rate. Fetch failures are logged inside the
// services and do not abort the pass.
func (r *Refresher) RunOnce(ctx context.Context) {
	start := time.Now()
	r.store.Flush()

	for _, ticker := range r.tickers {
		if ctx.Err() != nil {
			log.Printf("Refresh aborted after %s: %v", time.Since(start), ctx.Err())
			return
		}
		r.dividendService.History(ctx, ticker)
		r.dividendService.Announcements(ctx, ticker)
	}
	r.fxService.Rate(ctx)

	log.Printf("Refreshed %d tickers in %s", len(r.tickers), time.Since(start))
}
