package model

import "time"

// MarketClock reports the current instant in both fixed timezones along with
// whether daylight saving time is active in the market's timezone.
type MarketClock struct {
	MarketTime time.Time `json:"marketTime"`
	ViewerTime time.Time `json:"viewerTime"`
	DSTActive  bool      `json:"dstActive"`
}

// Resolution is the outcome of reconciling the static group schedule with the
// live announcement feed for one ticker. All fields are optional: a nil value
// means no data exists in that direction, which callers must treat as a
// normal, displayable state.
//
// Deadline fields are instants in the viewer's timezone: the market close on
// the last trading day before the corresponding ex-dividend date.
type Resolution struct {
	RecentDeclaration *time.Time `json:"recentDeclaration,omitempty"`
	NextDeclaration   *time.Time `json:"nextDeclaration,omitempty"`
	RecentExDate      *time.Time `json:"recentExDate,omitempty"`
	NextExDate        *time.Time `json:"nextExDate,omitempty"`
	RecentPayment     *time.Time `json:"recentPayment,omitempty"`
	NextPayment       *time.Time `json:"nextPayment,omitempty"`
	RecentAmount      *float64   `json:"recentAmount,omitempty"`
	NextAmount        *float64   `json:"nextAmount,omitempty"`
	RecentDeadline    *time.Time `json:"recentDeadline,omitempty"`
	NextDeadline      *time.Time `json:"nextDeadline,omitempty"`
}

// TickerSummary is the card payload for one ticker: its group, the current
// clock in both timezones, and the resolved schedule.
type TickerSummary struct {
	Ticker     string      `json:"ticker"`
	Group      Group       `json:"group"`
	Clock      MarketClock `json:"clock"`
	Resolution Resolution  `json:"resolution"`
}
