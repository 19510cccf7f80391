package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrTickerNotFound indicates that a ticker is not part of the covered ETF universe.
	ErrTickerNotFound = errors.New("ticker not found")

	// ErrGroupNotFound indicates that a group key has no schedule table entry.
	ErrGroupNotFound = errors.New("group not found")

	// ErrSnapshotNotFound indicates that no stored provider response exists
	// for a ticker/source combination.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrFXRateNotFound indicates that the FX provider returned no usable rate.
	ErrFXRateNotFound = errors.New("exchange rate not found")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidTicker indicates that a ticker parameter is empty or contains
	// non-alphabetic characters after normalization.
	ErrInvalidTicker = errors.New("invalid ticker format")

	// ErrInvalidLimit indicates that a limit query parameter is not a positive integer.
	ErrInvalidLimit = errors.New("limit must be a positive integer")

	// ErrMismatchedSchedule indicates that a group's date sequences are not
	// index-aligned (unequal lengths).
	ErrMismatchedSchedule = errors.New("schedule date sequences are not aligned")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These errors indicate that an operation failed, but not due
// to missing entities or validation issues.
var (
	ErrFailedToRetrieveDividends = errors.New("failed to retrieve dividends")
	ErrFailedToRetrieveSchedule  = errors.New("failed to retrieve schedule")
)
