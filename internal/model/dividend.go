package model

import "time"

// Dividend data sources.
const (
	SourceHistory = "history" // Long-history best-effort provider
	SourceLive    = "live"    // Near-real-time announcement provider
)

// DividendEvent is a single dividend observation: an ex-dividend calendar day
// (market-local, normalized to midnight) and the cash amount per share in USD.
// A zero amount means the dividend has not been announced yet.
type DividendEvent struct {
	ExDate time.Time `json:"exDate"`
	Amount float64   `json:"amount"`
	Source string    `json:"source,omitempty"`
}

// DividendEntry is the API representation of one merged dividend record,
// with the amount converted to the viewer's currency at the current FX rate.
type DividendEntry struct {
	ExDate    time.Time `json:"exDate"`
	AmountUSD float64   `json:"amountUsd"`
	AmountKRW float64   `json:"amountKrw"`
	Source    string    `json:"source"`
}

// DividendHistory is the payload for the per-ticker dividend listing endpoint.
// Entries are sorted by ex-date descending. PercentChange is the relative
// change between the two most recent amounts, nil when fewer than two
// positive amounts exist.
type DividendHistory struct {
	Ticker        string          `json:"ticker"`
	FXRate        float64         `json:"fxRate"`
	Entries       []DividendEntry `json:"entries"`
	PercentChange *float64        `json:"percentChange,omitempty"`
}
