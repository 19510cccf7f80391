package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/apperrors"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/model"
)

// SnapshotRepository stores the latest provider response per ticker and
// source. It backs the on-disk response cache: when a live fetch fails, the
// service falls back to the last OK snapshot instead of showing nothing.
type SnapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Upsert writes the snapshot for (ticker, source), replacing any previous
// payload and marking the fetch attempt as successful.
func (r *SnapshotRepository) Upsert(ctx context.Context, ticker, source, status string, events []model.DividendEvent) error {
	payload, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot payload: %w", err)
	}

	query := `
		INSERT INTO dividend_snapshot (id, ticker, source, status, fetched_at, payload, last_status, last_error, checked_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, '', ?)
		ON CONFLICT (ticker, source) DO UPDATE SET
			status = excluded.status,
			fetched_at = excluded.fetched_at,
			payload = excluded.payload,
			last_status = excluded.last_status,
			last_error = '',
			checked_at = excluded.checked_at
	`

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = r.db.ExecContext(ctx, query,
		uuid.New().String(),
		ticker,
		source,
		status,
		now,
		string(payload),
		status,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert snapshot: %w", err)
	}

	return nil
}

// MarkUnavailable records a failed fetch attempt for (ticker, source).
// An existing row keeps its payload, status and fetched_at so the last good
// snapshot stays servable; only the attempt columns change. When no row
// exists yet, an unavailable row with an empty payload is created, which
// keeps "fetch failed" distinguishable from "never fetched".
func (r *SnapshotRepository) MarkUnavailable(ctx context.Context, ticker, source string, fetchErr error) error {
	query := `
		INSERT INTO dividend_snapshot (id, ticker, source, status, fetched_at, payload, last_status, last_error, checked_at)
		VALUES (?, ?, ?, ?, ?, '[]', ?, ?, ?)
		ON CONFLICT (ticker, source) DO UPDATE SET
			last_status = excluded.last_status,
			last_error = excluded.last_error,
			checked_at = excluded.checked_at
	`

	message := ""
	if fetchErr != nil {
		message = fetchErr.Error()
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx, query,
		uuid.New().String(),
		ticker,
		source,
		model.SnapshotStatusUnavailable,
		now,
		model.SnapshotStatusUnavailable,
		message,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to mark snapshot unavailable: %w", err)
	}

	return nil
}

// GetLatest returns the stored snapshot for (ticker, source).
// Returns apperrors.ErrSnapshotNotFound when none exists.
func (r *SnapshotRepository) GetLatest(ctx context.Context, ticker, source string) (model.Snapshot, error) {
	query := `
		SELECT id, ticker, source, status, fetched_at, payload, last_status, last_error, checked_at
		FROM dividend_snapshot
		WHERE ticker = ? AND source = ?
	`

	var snapshot model.Snapshot
	var fetchedAtStr, checkedAtStr, payload string

	err := r.db.QueryRowContext(ctx, query, ticker, source).Scan(
		&snapshot.ID,
		&snapshot.Ticker,
		&snapshot.Source,
		&snapshot.Status,
		&fetchedAtStr,
		&payload,
		&snapshot.LastStatus,
		&snapshot.LastError,
		&checkedAtStr,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Snapshot{}, apperrors.ErrSnapshotNotFound
	}
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to query snapshot: %w", err)
	}

	snapshot.FetchedAt, err = time.Parse(time.RFC3339, fetchedAtStr)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to parse snapshot timestamp: %w", err)
	}
	if checkedAtStr != "" {
		snapshot.CheckedAt, err = time.Parse(time.RFC3339, checkedAtStr)
		if err != nil {
			return model.Snapshot{}, fmt.Errorf("failed to parse snapshot check timestamp: %w", err)
		}
	}

	if err := json.Unmarshal([]byte(payload), &snapshot.Events); err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to unmarshal snapshot payload: %w", err)
	}

	return snapshot, nil
}
