package schedule_test

import (
	"testing"
	"time"

	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/schedule"
)

// TestResolve tests the past/future partition.
//
// WHY: Partition completeness is the reconciler's base invariant: recent is
// the maximum date before today, next the minimum on or after today, and a
// same-day event is still upcoming.
func TestResolve(t *testing.T) {
	today := day(2025, 10, 10)

	tests := []struct {
		name       string
		dates      []time.Time
		wantRecent time.Time
		wantNext   time.Time
	}{
		{
			name:       "empty input yields absent pair",
			dates:      nil,
			wantRecent: time.Time{},
			wantNext:   time.Time{},
		},
		{
			name:       "weekly schedule around today",
			dates:      []time.Time{day(2025, 10, 1), day(2025, 10, 8), day(2025, 10, 15), day(2025, 10, 22)},
			wantRecent: day(2025, 10, 8),
			wantNext:   day(2025, 10, 15),
		},
		{
			name:       "today belongs to future",
			dates:      []time.Time{day(2025, 10, 3), day(2025, 10, 10)},
			wantRecent: day(2025, 10, 3),
			wantNext:   day(2025, 10, 10),
		},
		{
			name:       "all past",
			dates:      []time.Time{day(2025, 9, 3), day(2025, 9, 10)},
			wantRecent: day(2025, 9, 10),
			wantNext:   time.Time{},
		},
		{
			name:       "all future",
			dates:      []time.Time{day(2025, 11, 5), day(2025, 11, 12)},
			wantRecent: time.Time{},
			wantNext:   day(2025, 11, 5),
		},
		{
			name:       "zero entries are skipped",
			dates:      []time.Time{{}, day(2025, 10, 8), {}, day(2025, 10, 15)},
			wantRecent: day(2025, 10, 8),
			wantNext:   day(2025, 10, 15),
		},
		{
			name:       "unsorted input",
			dates:      []time.Time{day(2025, 10, 22), day(2025, 10, 1), day(2025, 10, 15), day(2025, 10, 8)},
			wantRecent: day(2025, 10, 8),
			wantNext:   day(2025, 10, 15),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recent, next := schedule.Resolve(tt.dates, today)

			if !recent.Equal(tt.wantRecent) {
				t.Errorf("recent = %v, want %v", recent, tt.wantRecent)
			}
			if !next.Equal(tt.wantNext) {
				t.Errorf("next = %v, want %v", next, tt.wantNext)
			}
		})
	}
}

// TestResolve_PartitionCompleteness sweeps the partition property.
//
// WHY: Every input date must land in exactly one partition; the boundary day
// must always land in the future side.
func TestResolve_PartitionCompleteness(t *testing.T) {
	dates := []time.Time{
		day(2025, 10, 1), day(2025, 10, 8), day(2025, 10, 10),
		day(2025, 10, 15), day(2025, 10, 22),
	}

	for _, today := range dates {
		recent, next := schedule.Resolve(dates, today)

		if !recent.IsZero() && !recent.Before(today) {
			t.Errorf("today=%v: recent %v is not strictly before today", today, recent)
		}
		if !next.IsZero() && next.Before(today) {
			t.Errorf("today=%v: next %v is before today", today, next)
		}
		if !next.Equal(today) {
			t.Errorf("today=%v: expected boundary date itself as next, got %v", today, next)
		}
	}
}

// TestResolveWithLive tests the multi-source reconciliation rules.
//
// WHY: This is the densest logic in the system: the live feed overrides the
// static next, a same-day announcement promotes next to recent, and the
// static schedule refills next whenever the live feed lags.
func TestResolveWithLive(t *testing.T) {
	today := day(2025, 10, 10)
	staticDates := []time.Time{
		day(2025, 10, 1), day(2025, 10, 8), day(2025, 10, 15), day(2025, 10, 22),
	}

	t.Run("no live feed falls through to static partition", func(t *testing.T) {
		recent, next := schedule.ResolveWithLive(staticDates, nil, today)

		if !recent.Equal(day(2025, 10, 8)) {
			t.Errorf("recent = %v, want 2025-10-08", recent)
		}
		if !next.Equal(day(2025, 10, 15)) {
			t.Errorf("next = %v, want 2025-10-15", next)
		}
	})

	t.Run("live future date overrides static next", func(t *testing.T) {
		live := []time.Time{day(2025, 10, 14)}

		recent, next := schedule.ResolveWithLive(staticDates, live, today)

		if !recent.Equal(day(2025, 10, 8)) {
			t.Errorf("recent = %v, want static 2025-10-08", recent)
		}
		if !next.Equal(day(2025, 10, 14)) {
			t.Errorf("next = %v, want live 2025-10-14", next)
		}
	})

	t.Run("same-day announcement promotes next to recent", func(t *testing.T) {
		live := []time.Time{day(2025, 10, 10)}

		recent, next := schedule.ResolveWithLive(staticDates, live, today)

		// Static next (10-15) is promoted; the static refill then supplies
		// the following cycle.
		if !recent.Equal(day(2025, 10, 15)) {
			t.Errorf("recent = %v, want promoted 2025-10-15", recent)
		}
		if !next.Equal(day(2025, 10, 22)) {
			t.Errorf("next = %v, want refilled 2025-10-22", next)
		}
	})

	t.Run("promotion then refill from static after promoted recent", func(t *testing.T) {
		// The scenario from the distribution calendar: live announces today,
		// static next is 11-05, refill must come from the entry after it.
		staticSeq := []time.Time{day(2025, 10, 29), day(2025, 11, 5), day(2025, 11, 12)}
		live := []time.Time{day(2025, 10, 31)}

		recent, next := schedule.ResolveWithLive(staticSeq, live, day(2025, 10, 31))

		if !recent.Equal(day(2025, 11, 5)) {
			t.Errorf("recent = %v, want promoted 2025-11-05", recent)
		}
		if !next.Equal(day(2025, 11, 12)) {
			t.Errorf("next = %v, want 2025-11-12", next)
		}
	})

	t.Run("promotion with exhausted static leaves next absent", func(t *testing.T) {
		staticSeq := []time.Time{day(2025, 10, 1), day(2025, 10, 8)}
		live := []time.Time{day(2025, 10, 10), day(2025, 10, 14)}

		recent, next := schedule.ResolveWithLive(staticSeq, live, today)

		// Live next 10-14 is promoted; nothing in the static sequence can
		// refill past it.
		if !recent.Equal(day(2025, 10, 14)) {
			t.Errorf("recent = %v, want promoted 2025-10-14", recent)
		}
		if !next.IsZero() {
			t.Errorf("next = %v, want absent", next)
		}
	})

	t.Run("live feed without future dates keeps static next", func(t *testing.T) {
		live := []time.Time{day(2025, 9, 24), day(2025, 10, 1)}

		recent, next := schedule.ResolveWithLive(staticDates, live, today)

		if !recent.Equal(day(2025, 10, 8)) {
			t.Errorf("recent = %v, want 2025-10-08", recent)
		}
		if !next.Equal(day(2025, 10, 15)) {
			t.Errorf("next = %v, want static fallback 2025-10-15", next)
		}
	})

	t.Run("empty everything yields absent pair", func(t *testing.T) {
		recent, next := schedule.ResolveWithLive(nil, nil, today)

		if !recent.IsZero() || !next.IsZero() {
			t.Errorf("Expected absent pair, got recent=%v next=%v", recent, next)
		}
	})

	t.Run("resolution is idempotent", func(t *testing.T) {
		live := []time.Time{day(2025, 10, 10)}

		r1, n1 := schedule.ResolveWithLive(staticDates, live, today)
		r2, n2 := schedule.ResolveWithLive(staticDates, live, today)

		if !r1.Equal(r2) || !n1.Equal(n2) {
			t.Errorf("Repeated resolution differs: (%v,%v) vs (%v,%v)", r1, n1, r2, n2)
		}
	})
}
