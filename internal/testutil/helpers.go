package testutil

import (
	"database/sql"
	"testing"

	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/cache"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/marketcal"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/repository"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/schedule"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/service"
)

// NewTestCalendar creates a calendar with the 2025 US market holidays,
// New York market time and Seoul viewer time. Fails the test on error.
func NewTestCalendar(t *testing.T) *marketcal.Calendar {
	t.Helper()

	cal, err := marketcal.NewCalendar(marketcal.USMarketHolidays2025, "America/New_York", "Asia/Seoul")
	if err != nil {
		t.Fatalf("Failed to create test calendar: %v", err)
	}
	return cal
}

// NewTestDividendService creates a DividendService backed by the given mock
// Yahoo client, a fresh cache and no snapshot persistence.
func NewTestDividendService(t *testing.T, mock *MockYahooClient) *service.DividendService {
	t.Helper()

	return service.NewDividendService(mock, cache.New(cache.DefaultTTLs()), nil, NewTestCalendar(t))
}

// NewTestDividendServiceWithDB creates a DividendService with snapshot
// persistence against the given test database.
func NewTestDividendServiceWithDB(t *testing.T, mock *MockYahooClient, db *sql.DB) *service.DividendService {
	t.Helper()

	repo := repository.NewSnapshotRepository(db)
	return service.NewDividendService(mock, cache.New(cache.DefaultTTLs()), repo, NewTestCalendar(t))
}

// NewTestScheduleService creates a ScheduleService with the full ticker
// table, test calendar and a mock-backed dividend service.
func NewTestScheduleService(t *testing.T, mock *MockYahooClient) *service.ScheduleService {
	t.Helper()

	return service.NewScheduleService(schedule.NewTable(), NewTestCalendar(t), NewTestDividendService(t, mock))
}
