package marketcal

import "time"

// HoldDeadline computes the viewer-local instant by which shares must be held
// to capture the dividend with the given ex-dividend date: market close
// (16:00 market-local) on the last trading day strictly before the ex-date.
//
// The candidate day starts at ex-date minus one calendar day and walks
// backward while it falls on a weekend or a listed holiday. The loop always
// terminates: weekends recur every seven days and the holiday set is finite.
// The close instant is composed in the market's timezone on the candidate day
// itself, so the seasonal offset in effect on that day is applied even when
// the walk-back crosses a DST boundary.
//
// Returns the zero time and false when exDate is zero.
func (c *Calendar) HoldDeadline(exDate time.Time) (time.Time, bool) {
	if exDate.IsZero() {
		return time.Time{}, false
	}

	candidate := Day(exDate).AddDate(0, 0, -1)
	for !c.IsTradingDay(candidate) {
		candidate = candidate.AddDate(0, 0, -1)
	}

	closeInstant := time.Date(
		candidate.Year(), candidate.Month(), candidate.Day(),
		MarketCloseHour, 0, 0, 0,
		c.market,
	)

	return closeInstant.In(c.viewer), true
}
