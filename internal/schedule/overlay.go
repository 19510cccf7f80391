package schedule

import (
	"sort"
	"time"

	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/marketcal"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/model"
)

// Merge outer-joins two dividend series by ex-date: every date present in
// either series survives. For dates present in both, the secondary value wins
// when it is strictly positive; a zero or absent secondary amount falls back
// to the primary (which may itself carry zero). Each input series carries at
// most one entry per date. The result is sorted by ex-date descending.
//
// The secondary series is assumed more current for cash amounts but may have
// gaps during pre-announcement periods that the primary history fills.
func Merge(primary, secondary []model.DividendEvent) []model.DividendEvent {
	merged := make(map[time.Time]model.DividendEvent, len(primary)+len(secondary))

	for _, ev := range primary {
		if ev.ExDate.IsZero() {
			continue
		}
		day := marketcal.Day(ev.ExDate)
		merged[day] = model.DividendEvent{ExDate: day, Amount: ev.Amount, Source: model.SourceHistory}
	}

	for _, ev := range secondary {
		if ev.ExDate.IsZero() {
			continue
		}
		day := marketcal.Day(ev.ExDate)
		if ev.Amount > 0 {
			merged[day] = model.DividendEvent{ExDate: day, Amount: ev.Amount, Source: model.SourceLive}
			continue
		}
		if _, exists := merged[day]; !exists {
			merged[day] = model.DividendEvent{ExDate: day, Amount: ev.Amount, Source: model.SourceLive}
		}
	}

	result := make([]model.DividendEvent, 0, len(merged))
	for _, ev := range merged {
		result = append(result, ev)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ExDate.After(result[j].ExDate)
	})

	return result
}

// PercentChange returns the relative change, in percent, between the two most
// recent amounts of a descending-sorted series. The second return is false
// when fewer than two entries exist or the older amount is zero.
func PercentChange(series []model.DividendEvent) (float64, bool) {
	if len(series) < 2 {
		return 0, false
	}

	latest := series[0].Amount
	previous := series[1].Amount
	if previous == 0 {
		return 0, false
	}

	return (latest - previous) / previous * 100, true
}

// AmountFor looks up the amount recorded for an ex-date in a merged series.
// The second return is false when the date is missing or the amount is not
// yet announced (zero).
func AmountFor(series []model.DividendEvent, exDate time.Time) (float64, bool) {
	if exDate.IsZero() {
		return 0, false
	}

	target := marketcal.Day(exDate)
	for _, ev := range series {
		if marketcal.Day(ev.ExDate).Equal(target) {
			if ev.Amount > 0 {
				return ev.Amount, true
			}
			return 0, false
		}
	}
	return 0, false
}
