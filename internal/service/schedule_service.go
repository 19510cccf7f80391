package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/apperrors"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/marketcal"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/model"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/schedule"
)

// ScheduleService resolves the dividend timeline for a ticker: it reconciles
// the static group schedule with the live announcement feed and derives the
// viewer-local holding deadlines.
type ScheduleService struct {
	table           *schedule.Table
	calendar        *marketcal.Calendar
	dividendService *DividendService
}

// NewScheduleService creates a new ScheduleService with the provided
// dependencies.
func NewScheduleService(
	table *schedule.Table,
	calendar *marketcal.Calendar,
	dividendService *DividendService,
) *ScheduleService {
	return &ScheduleService{
		table:           table,
		calendar:        calendar,
		dividendService: dividendService,
	}
}

// Summary resolves the ticker against the current wall clock.
func (s *ScheduleService) Summary(ctx context.Context, ticker string) (model.TickerSummary, error) {
	return s.SummaryAt(ctx, ticker, time.Now())
}

// SummaryAt resolves the ticker as of the given instant. "Today" for the
// past/future partition is the viewer-local calendar day of that instant,
// matching what the viewer sees on their own clock.
//
// Resolution is recomputed on every call; nothing is persisted.
func (s *ScheduleService) SummaryAt(ctx context.Context, ticker string, now time.Time) (model.TickerSummary, error) {
	group, err := s.table.GroupFor(ticker)
	if err != nil {
		return model.TickerSummary{}, err
	}

	sched, err := s.table.Schedule(group.Key)
	if err != nil {
		return model.TickerSummary{}, fmt.Errorf("%w: group %s: %v", apperrors.ErrFailedToRetrieveSchedule, group.Key, err)
	}

	clock := s.calendar.NowTimes(now)
	today := marketcal.Day(clock.ViewerTime)

	live := s.dividendService.Announcements(ctx, ticker)
	liveDates := make([]time.Time, 0, len(live))
	for _, ev := range live {
		liveDates = append(liveDates, ev.ExDate)
	}

	recentEx, nextEx := schedule.ResolveWithLive(sched.ExDates, liveDates, today)

	resolution := model.Resolution{
		RecentExDate: timePtr(recentEx),
		NextExDate:   timePtr(nextEx),
	}

	decl, pay, err := schedule.CycleFor(sched, recentEx)
	if err != nil {
		return model.TickerSummary{}, err
	}
	resolution.RecentDeclaration = timePtr(decl)
	resolution.RecentPayment = timePtr(pay)

	decl, pay, err = schedule.CycleFor(sched, nextEx)
	if err != nil {
		return model.TickerSummary{}, err
	}
	resolution.NextDeclaration = timePtr(decl)
	resolution.NextPayment = timePtr(pay)

	if deadline, ok := s.calendar.HoldDeadline(recentEx); ok {
		resolution.RecentDeadline = &deadline
	}
	if deadline, ok := s.calendar.HoldDeadline(nextEx); ok {
		resolution.NextDeadline = &deadline
	}

	merged := s.dividendService.Merged(ctx, ticker)
	if amount, ok := schedule.AmountFor(merged, recentEx); ok {
		resolution.RecentAmount = &amount
	}
	if amount, ok := schedule.AmountFor(merged, nextEx); ok {
		resolution.NextAmount = &amount
	}

	return model.TickerSummary{
		Ticker:     ticker,
		Group:      group,
		Clock:      clock,
		Resolution: resolution,
	}, nil
}

// Covered reports whether a ticker is part of the tracked universe.
func (s *ScheduleService) Covered(ticker string) bool {
	_, err := s.table.GroupFor(ticker)
	return err == nil
}

// Groups returns the static group listings.
func (s *ScheduleService) Groups() []model.GroupListing {
	return s.table.Listings()
}

// Tickers returns the covered universe.
func (s *ScheduleService) Tickers() []string {
	return s.table.Tickers()
}

// timePtr returns a pointer to t, or nil for the zero time. Zero times mean
// "absent" throughout the resolution pipeline.
func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
