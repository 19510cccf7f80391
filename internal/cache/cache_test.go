package cache_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/cache"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/model"
)

func testSeries() []model.DividendEvent {
	return []model.DividendEvent{
		{ExDate: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), Amount: 0.47},
	}
}

// TestStore_Dividends tests populate-on-miss and hit behavior.
//
// WHY: Every ticker query funnels through this cache; a broken hit path would
// hammer the provider, a broken miss path would serve nothing.
func TestStore_Dividends(t *testing.T) {
	t.Run("miss populates then hit skips fetch", func(t *testing.T) {
		store := cache.New(cache.DefaultTTLs())
		calls := 0

		fetch := func() ([]model.DividendEvent, error) {
			calls++
			return testSeries(), nil
		}

		first, err := store.Dividends("ULTY", fetch)
		if err != nil {
			t.Fatalf("Dividends() returned unexpected error: %v", err)
		}
		second, err := store.Dividends("ULTY", fetch)
		if err != nil {
			t.Fatalf("Dividends() returned unexpected error: %v", err)
		}

		if calls != 1 {
			t.Errorf("Expected 1 fetch, got %d", calls)
		}
		if len(first) != 1 || len(second) != 1 {
			t.Errorf("Expected cached series on both reads")
		}
	})

	t.Run("fetch error is not cached", func(t *testing.T) {
		store := cache.New(cache.DefaultTTLs())
		calls := 0

		failing := func() ([]model.DividendEvent, error) {
			calls++
			return nil, errors.New("provider down")
		}

		if _, err := store.Dividends("ULTY", failing); err == nil {
			t.Fatal("Expected error from failing fetch")
		}
		if _, err := store.Dividends("ULTY", failing); err == nil {
			t.Fatal("Expected error from failing fetch")
		}

		if calls != 2 {
			t.Errorf("Expected error to bypass the cache, got %d fetches", calls)
		}
	})

	t.Run("tickers are cached independently", func(t *testing.T) {
		store := cache.New(cache.DefaultTTLs())
		calls := 0

		fetch := func() ([]model.DividendEvent, error) {
			calls++
			return testSeries(), nil
		}

		if _, err := store.Dividends("ULTY", fetch); err != nil {
			t.Fatalf("Dividends() returned unexpected error: %v", err)
		}
		if _, err := store.Dividends("TSLY", fetch); err != nil {
			t.Fatalf("Dividends() returned unexpected error: %v", err)
		}

		if calls != 2 {
			t.Errorf("Expected 2 fetches for 2 tickers, got %d", calls)
		}
	})

	t.Run("dividend and announcement caches are distinct", func(t *testing.T) {
		store := cache.New(cache.DefaultTTLs())
		divCalls, annCalls := 0, 0

		if _, err := store.Dividends("ULTY", func() ([]model.DividendEvent, error) {
			divCalls++
			return testSeries(), nil
		}); err != nil {
			t.Fatalf("Dividends() returned unexpected error: %v", err)
		}

		if _, err := store.Announcements("ULTY", func() ([]model.DividendEvent, error) {
			annCalls++
			return testSeries(), nil
		}); err != nil {
			t.Fatalf("Announcements() returned unexpected error: %v", err)
		}

		if divCalls != 1 || annCalls != 1 {
			t.Errorf("Expected both sources to fetch once, got %d/%d", divCalls, annCalls)
		}
	})
}

// TestStore_ConcurrentMiss tests that simultaneous misses share one fetch.
//
// WHY: Concurrent queries for a ticker may race to repopulate an expired
// entry; the singleflight group must collapse them into a single provider call.
func TestStore_ConcurrentMiss(t *testing.T) {
	store := cache.New(cache.DefaultTTLs())
	var calls int32

	fetch := func() ([]model.DividendEvent, error) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(20 * time.Millisecond)
		return testSeries(), nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Dividends("ULTY", fetch); err != nil {
				t.Errorf("Dividends() returned unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("Expected 1 shared fetch, got %d", got)
	}
}

// TestStore_FXRate tests the FX-rate cache.
func TestStore_FXRate(t *testing.T) {
	t.Run("caches the rate", func(t *testing.T) {
		store := cache.New(cache.DefaultTTLs())
		calls := 0

		fetch := func() (float64, error) {
			calls++
			return 1421.5, nil
		}

		for i := 0; i < 3; i++ {
			rate, err := store.FXRate("USDKRW=X", fetch)
			if err != nil {
				t.Fatalf("FXRate() returned unexpected error: %v", err)
			}
			if rate != 1421.5 {
				t.Errorf("Rate = %v, want 1421.5", rate)
			}
		}

		if calls != 1 {
			t.Errorf("Expected 1 fetch, got %d", calls)
		}
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		store := cache.New(cache.DefaultTTLs())

		_, err := store.FXRate("USDKRW=X", func() (float64, error) {
			return 0, errors.New("provider down")
		})
		if err == nil {
			t.Error("Expected error from failing fetch")
		}
	})
}

// TestStore_Flush tests cache invalidation.
func TestStore_Flush(t *testing.T) {
	store := cache.New(cache.DefaultTTLs())
	calls := 0

	fetch := func() ([]model.DividendEvent, error) {
		calls++
		return testSeries(), nil
	}

	if _, err := store.Dividends("ULTY", fetch); err != nil {
		t.Fatalf("Dividends() returned unexpected error: %v", err)
	}

	store.Flush()

	if _, err := store.Dividends("ULTY", fetch); err != nil {
		t.Fatalf("Dividends() returned unexpected error: %v", err)
	}

	if calls != 2 {
		t.Errorf("Expected refetch after flush, got %d fetches", calls)
	}
}
