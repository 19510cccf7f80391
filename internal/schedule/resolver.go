package schedule

import (
	"time"

	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/marketcal"
)

// Resolve partitions a date sequence around today and returns the most recent
// past date and the nearest upcoming date. The boundary day itself counts as
// upcoming: an event dated today is still "next". Zero entries (failed
// normalization upstream) are skipped rather than aborting; an empty input
// yields two zero results, which is not an error.
func Resolve(dates []time.Time, today time.Time) (recent, next time.Time) {
	today = marketcal.Day(today)

	for _, d := range dates {
		if d.IsZero() {
			continue
		}
		d = marketcal.Day(d)

		if d.Before(today) {
			if recent.IsZero() || d.After(recent) {
				recent = d
			}
		} else {
			if next.IsZero() || d.Before(next) {
				next = d
			}
		}
	}

	return recent, next
}

// ResolveWithLive reconciles the static schedule with the live announcement
// feed for one ticker.
//
// Selection order:
//  1. recent/next are taken from the static schedule partition.
//  2. When the live feed contains any date strictly after today, the minimum
//     such date overrides the static next: the live feed is authoritative for
//     upcoming cycles it already knows about.
//  3. When the live feed contains today itself, the upcoming cycle has
//     confirmed terms: next is promoted to recent and cleared.
//  4. When next is still absent, it is refilled from the static schedule so a
//     plannable date always exists while the live feed lags. The refill takes
//     the minimum static date on or after today; when a promotion just set
//     recent, only dates after the promoted recent qualify, otherwise the
//     refill could regress next behind recent.
//
// The function is pure: calling it again with the same inputs yields the same
// result, and at most one promotion occurs per call.
func ResolveWithLive(staticDates, liveDates []time.Time, today time.Time) (recent, next time.Time) {
	today = marketcal.Day(today)
	recent, next = Resolve(staticDates, today)

	var liveNext time.Time
	announcedToday := false
	for _, d := range liveDates {
		if d.IsZero() {
			continue
		}
		d = marketcal.Day(d)

		if d.Equal(today) {
			announcedToday = true
		}
		if d.After(today) && (liveNext.IsZero() || d.Before(liveNext)) {
			liveNext = d
		}
	}

	if !liveNext.IsZero() {
		next = liveNext
	}

	if announcedToday && !next.IsZero() {
		recent = next
		next = time.Time{}
	}

	if next.IsZero() {
		for _, d := range staticDates {
			if d.IsZero() {
				continue
			}
			d = marketcal.Day(d)

			if d.Before(today) {
				continue
			}
			if !recent.IsZero() && !d.After(recent) {
				continue
			}
			if next.IsZero() || d.Before(next) {
				next = d
			}
		}
	}

	return recent, next
}
