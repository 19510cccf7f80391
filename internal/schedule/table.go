// Package schedule owns the static per-group dividend schedule table, the
// ticker-to-group mapping, and the reconciliation of static schedule dates
// with live announcement dates.
package schedule

import (
	"sort"
	"time"

	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/apperrors"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/marketcal"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/model"
)

// DefaultWeeks is the fixed generation horizon for group schedules.
const DefaultWeeks = 52

// groupOneTickers and groupTwoTickers are the covered ETF universe, keyed to
// the issuer's published weekly distribution groups.
var groupOneTickers = []string{
	"CHPY", "FEAT", "FIVY", "GPTY", "LFGY", "QDTY", "RDTY", "SDTY",
	"SLTY", "ULTY", "YMAG", "YMAX",
}

var groupTwoTickers = []string{
	"ABNY", "AIYY", "AMDY", "AMZY", "APLY", "BABO", "BRKC", "CONY", "CRCO", "CRSH",
	"CVNY", "DIPS", "DISO", "DRAY", "FBY", "FIAT", "GDXY", "GMEY", "GOOY", "HIYY",
	"HOOY", "JPMO", "MARO", "MRNY", "MSFO", "MSTY", "NFLY", "NVDY", "OARK", "PLTY",
	"PYPY", "RBLY", "RDYY", "SMCY", "SNOY", "TSLY", "TSMY", "WNTR", "XOMO", "XYZY",
	"YBIT", "YQQQ",
}

var groupMeta = map[string]model.Group{
	"G1": {Key: "G1", Name: "Group 1 Weekly Cycle", CardColor: "#e8f5e9"},
	"G2": {Key: "G2", Name: "Group 2 Weekly Cycle", CardColor: "#e3f2fd"},
}

// seed holds the first declaration/ex/payment triple of a group's cycle.
type seed struct {
	declaration string
	exDate      string
	payment     string
}

// Group 1 runs Tue/Wed/Thu, group 2 Wed/Thu/Fri.
var groupSeeds = map[string]seed{
	"G1": {declaration: "2025-10-14", exDate: "2025-10-15", payment: "2025-10-16"},
	"G2": {declaration: "2025-10-15", exDate: "2025-10-16", payment: "2025-10-17"},
}

// GenerateWeekly builds the index-aligned date triples for a weekly cadence:
// each sequence starts at its seed date and advances by exactly seven days per
// cycle for the given number of weeks. The caller supplies chronologically
// sensible seeds; inconsistent seeds are reproduced faithfully.
func GenerateWeekly(startDeclaration, startEx, startPayment time.Time, weeks int) model.GroupSchedule {
	sched := model.GroupSchedule{
		Declarations: make([]time.Time, 0, weeks),
		ExDates:      make([]time.Time, 0, weeks),
		Payments:     make([]time.Time, 0, weeks),
	}

	for i := 0; i < weeks; i++ {
		sched.Declarations = append(sched.Declarations, marketcal.Day(startDeclaration).AddDate(0, 0, 7*i))
		sched.ExDates = append(sched.ExDates, marketcal.Day(startEx).AddDate(0, 0, 7*i))
		sched.Payments = append(sched.Payments, marketcal.Day(startPayment).AddDate(0, 0, 7*i))
	}

	return sched
}

// Table is the immutable ticker-to-group map plus the per-group schedules.
// It is constructed once at startup and never mutated, so it needs no
// synchronization for concurrent readers.
type Table struct {
	tickerToGroup map[string]string
	groups        map[string]model.Group
	schedules     map[string]model.GroupSchedule
}

// NewTable builds the static schedule table from the fixed seed dates over the
// default 52-week horizon.
func NewTable() *Table {
	tickerToGroup := make(map[string]string, len(groupOneTickers)+len(groupTwoTickers))
	for _, t := range groupOneTickers {
		tickerToGroup[t] = "G1"
	}
	for _, t := range groupTwoTickers {
		tickerToGroup[t] = "G2"
	}

	schedules := make(map[string]model.GroupSchedule, len(groupSeeds))
	for key, s := range groupSeeds {
		decl, _ := time.Parse("2006-01-02", s.declaration)
		ex, _ := time.Parse("2006-01-02", s.exDate)
		pay, _ := time.Parse("2006-01-02", s.payment)
		schedules[key] = GenerateWeekly(decl, ex, pay, DefaultWeeks)
	}

	return &Table{
		tickerToGroup: tickerToGroup,
		groups:        groupMeta,
		schedules:     schedules,
	}
}

// GroupFor returns the group a ticker belongs to.
// Returns apperrors.ErrTickerNotFound for tickers outside the covered universe.
func (t *Table) GroupFor(ticker string) (model.Group, error) {
	key, ok := t.tickerToGroup[ticker]
	if !ok {
		return model.Group{}, apperrors.ErrTickerNotFound
	}
	return t.groups[key], nil
}

// Schedule returns the date triples for a group key.
func (t *Table) Schedule(groupKey string) (model.GroupSchedule, error) {
	sched, ok := t.schedules[groupKey]
	if !ok {
		return model.GroupSchedule{}, apperrors.ErrGroupNotFound
	}
	return sched, nil
}

// Tickers returns the full covered universe in sorted order.
func (t *Table) Tickers() []string {
	tickers := make([]string, 0, len(t.tickerToGroup))
	for ticker := range t.tickerToGroup {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)
	return tickers
}

// Listings returns every group with its member tickers, sorted by group key.
func (t *Table) Listings() []model.GroupListing {
	byGroup := make(map[string][]string)
	for ticker, key := range t.tickerToGroup {
		byGroup[key] = append(byGroup[key], ticker)
	}

	keys := make([]string, 0, len(t.groups))
	for key := range t.groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	listings := make([]model.GroupListing, 0, len(keys))
	for _, key := range keys {
		tickers := byGroup[key]
		sort.Strings(tickers)
		listings = append(listings, model.GroupListing{
			Group:   t.groups[key],
			Tickers: tickers,
			Cycles:  len(t.schedules[key].ExDates),
		})
	}
	return listings
}

// CycleFor looks up the declaration and payment dates aligned with the given
// ex-dividend date. Zero returns mean the ex-date is not part of the static
// schedule (e.g. it came from the live feed), which is a normal state.
// Returns apperrors.ErrMismatchedSchedule when the date sequences have
// diverging lengths, since index alignment is the lookup's contract.
func CycleFor(sched model.GroupSchedule, exDate time.Time) (declaration, payment time.Time, err error) {
	if len(sched.ExDates) != len(sched.Declarations) || len(sched.ExDates) != len(sched.Payments) {
		return time.Time{}, time.Time{}, apperrors.ErrMismatchedSchedule
	}
	if exDate.IsZero() {
		return time.Time{}, time.Time{}, nil
	}

	target := marketcal.Day(exDate)
	for i, ex := range sched.ExDates {
		if marketcal.Day(ex).Equal(target) {
			return marketcal.Day(sched.Declarations[i]), marketcal.Day(sched.Payments[i]), nil
		}
	}
	return time.Time{}, time.Time{}, nil
}
