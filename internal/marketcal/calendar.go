// Package marketcal provides the market holiday calendar, timezone conversion
// between the market's local time and the viewer's local time, and the
// holding-deadline calculation derived from market close.
package marketcal

import (
	"fmt"
	"time"

	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/model"
)

// USMarketHolidays2025 lists the US stock market full-day closures for 2025.
var USMarketHolidays2025 = []string{
	"2025-01-01", "2025-01-20", "2025-02-17", "2025-04-18",
	"2025-05-26", "2025-07-04", "2025-09-01", "2025-11-27", "2025-12-25",
}

// MarketCloseHour is the wall-clock hour of the trading day's end in the
// market's own timezone (16:00).
const MarketCloseHour = 16

// Calendar is an immutable holiday set plus the two fixed timezones.
// It is built once at startup and safe for concurrent readers.
type Calendar struct {
	holidays map[string]bool
	market   *time.Location
	viewer   *time.Location
}

// NewCalendar builds a calendar from a holiday date list (YYYY-MM-DD,
// market-local) and two IANA timezone names. Holiday entries that fail to
// parse are dropped; an unknown timezone is an error.
func NewCalendar(holidays []string, marketTZ, viewerTZ string) (*Calendar, error) {
	market, err := time.LoadLocation(marketTZ)
	if err != nil {
		return nil, fmt.Errorf("failed to load market timezone %q: %w", marketTZ, err)
	}
	viewer, err := time.LoadLocation(viewerTZ)
	if err != nil {
		return nil, fmt.Errorf("failed to load viewer timezone %q: %w", viewerTZ, err)
	}

	set := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		d, err := time.Parse("2006-01-02", h)
		if err != nil {
			continue
		}
		set[d.Format("2006-01-02")] = true
	}

	return &Calendar{
		holidays: set,
		market:   market,
		viewer:   viewer,
	}, nil
}

// Day normalizes an instant to a plain calendar day: midnight UTC on the
// year/month/day the instant displays in its own location. Comparing Day
// values compares calendar days regardless of the original clock or zone.
func Day(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MarketLocation returns the market's timezone.
func (c *Calendar) MarketLocation() *time.Location { return c.market }

// ViewerLocation returns the viewer's timezone.
func (c *Calendar) ViewerLocation() *time.Location { return c.viewer }

// MarketDay returns the market-local calendar day of an instant.
func (c *Calendar) MarketDay(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return Day(t.In(c.market))
}

// ViewerDay returns the viewer-local calendar day of an instant.
func (c *Calendar) ViewerDay(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return Day(t.In(c.viewer))
}

// IsHoliday reports whether the given calendar day is a listed market holiday.
func (c *Calendar) IsHoliday(day time.Time) bool {
	return c.holidays[Day(day).Format("2006-01-02")]
}

// IsTradingDay reports whether the given calendar day is a trading day:
// not a Saturday, not a Sunday and not a listed holiday.
func (c *Calendar) IsTradingDay(day time.Time) bool {
	day = Day(day)
	wd := day.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !c.IsHoliday(day)
}

// NowTimes returns the current instant in the market and viewer timezones and
// whether daylight saving time is active in the market's timezone. DST is
// detected by comparing the current UTC offset against the year's standard
// (minimum) offset, so it works in either hemisphere.
func (c *Calendar) NowTimes(now time.Time) model.MarketClock {
	marketNow := now.In(c.market)

	_, current := marketNow.Zone()
	_, jan := time.Date(marketNow.Year(), time.January, 1, 0, 0, 0, 0, c.market).Zone()
	_, jul := time.Date(marketNow.Year(), time.July, 1, 0, 0, 0, 0, c.market).Zone()
	std := jan
	if jul < jan {
		std = jul
	}

	return model.MarketClock{
		MarketTime: marketNow,
		ViewerTime: now.In(c.viewer),
		DSTActive:  current != std,
	}
}
