package model

import "time"

// Snapshot fetch statuses. A snapshot with StatusUnavailable records that the
// provider could not be reached, which is distinct from an OK snapshot with an
// empty payload (ticker confirmed to have no dividend history).
const (
	SnapshotStatusOK          = "ok"
	SnapshotStatusUnavailable = "unavailable"
)

// Snapshot is one persisted provider response for a ticker and source,
// used as the on-disk fallback when a live fetch fails.
//
// Status describes the stored payload; LastStatus describes the most recent
// fetch attempt. A failed fetch updates LastStatus and LastError but leaves
// the last good payload (and its Status and FetchedAt) untouched, so a
// ticker can be "serving the snapshot from Tuesday, provider down since
// Thursday" rather than one or the other.
type Snapshot struct {
	ID         string
	Ticker     string
	Source     string
	Status     string
	FetchedAt  time.Time
	Events     []DividendEvent
	LastStatus string
	LastError  string
	CheckedAt  time.Time
}
