package model

import "time"

// Group identifies a distribution group of the ETF universe. Every ticker
// belongs to exactly one group, and all tickers in a group share the same
// weekly declaration/ex-dividend/payment cadence.
type Group struct {
	Key       string `json:"key"`       // Group key, e.g. "G1"
	Name      string `json:"name"`      // Display name, e.g. "Group 1 Weekly Cycle"
	CardColor string `json:"cardColor"` // Hex background color used by the display layer
}

// GroupSchedule holds the index-aligned date triples for one group.
// Declarations[i], ExDates[i] and Payments[i] form one dividend cycle.
// All three slices have equal length and are non-decreasing; this is a
// construction-time contract, not a runtime-checked invariant.
type GroupSchedule struct {
	Declarations []time.Time `json:"declarations"`
	ExDates      []time.Time `json:"exDates"`
	Payments     []time.Time `json:"payments"`
}

// GroupListing is the API representation of a group with its member tickers.
type GroupListing struct {
	Group   Group    `json:"group"`
	Tickers []string `json:"tickers"`
	Cycles  int      `json:"cycles"` // Number of scheduled dividend cycles
}
