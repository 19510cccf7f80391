package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/cache"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/model"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/schedule"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/service"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/testutil"
)

func setupTickerHandler(t *testing.T, mock *testutil.MockYahooClient) *TickerHandler {
	t.Helper()

	dividendService := testutil.NewTestDividendService(t, mock)
	scheduleService := service.NewScheduleService(
		schedule.NewTable(), testutil.NewTestCalendar(t), dividendService)
	fxService := service.NewFXService(mock, cache.New(cache.DefaultTTLs()), "USDKRW=X", 1350.0)

	return NewTickerHandler(scheduleService, dividendService, fxService)
}

func tickerRequest(method, target, ticker string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("ticker", ticker)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestTickerHandler_Summary(t *testing.T) {
	t.Run("returns the resolved card for a covered ticker", func(t *testing.T) {
		handler := setupTickerHandler(t, testutil.NewMockYahooClient(t))

		req := tickerRequest(http.MethodGet, "/api/ticker/ULTY/summary", "ULTY")
		w := httptest.NewRecorder()

		handler.Summary(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response model.TickerSummary
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Ticker != "ULTY" {
			t.Errorf("Expected ticker ULTY, got %s", response.Ticker)
		}
		if response.Group.Key != "G1" {
			t.Errorf("Expected group G1, got %s", response.Group.Key)
		}
		if response.Clock.MarketTime.IsZero() || response.Clock.ViewerTime.IsZero() {
			t.Error("Expected both clock instants to be set")
		}
	})

	t.Run("normalizes the ticker before lookup", func(t *testing.T) {
		handler := setupTickerHandler(t, testutil.NewMockYahooClient(t))

		req := tickerRequest(http.MethodGet, "/api/ticker/msty/summary", "msty")
		w := httptest.NewRecorder()

		handler.Summary(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response model.TickerSummary
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Ticker != "MSTY" {
			t.Errorf("Expected normalized ticker MSTY, got %s", response.Ticker)
		}
	})

	t.Run("returns 404 for an uncovered ticker", func(t *testing.T) {
		handler := setupTickerHandler(t, testutil.NewMockYahooClient(t))

		req := tickerRequest(http.MethodGet, "/api/ticker/SPY/summary", "SPY")
		w := httptest.NewRecorder()

		handler.Summary(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestTickerHandler_Dividends(t *testing.T) {
	newMock := func(t *testing.T) *testutil.MockYahooClient {
		t.Helper()
		mock := testutil.NewMockYahooClient(t)
		mock.HistoryResponse = testutil.DividendResponse(t, map[int64]float64{
			testutil.MarketEpoch(2025, time.October, 15): 0.50,
			testutil.MarketEpoch(2025, time.October, 22): 0.75,
		})
		return mock
	}

	t.Run("returns the merged listing with converted amounts", func(t *testing.T) {
		handler := setupTickerHandler(t, newMock(t))

		req := tickerRequest(http.MethodGet, "/api/ticker/ULTY/dividends", "ULTY")
		w := httptest.NewRecorder()

		handler.Dividends(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response model.DividendHistory
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Ticker != "ULTY" {
			t.Errorf("Expected ticker ULTY, got %s", response.Ticker)
		}
		if len(response.Entries) != 2 {
			t.Fatalf("Expected 2 entries, got %d", len(response.Entries))
		}
		if response.FXRate != 1400.0 {
			t.Errorf("Expected FX rate 1400.0, got %v", response.FXRate)
		}
		if response.Entries[0].AmountKRW != 1050.0 {
			t.Errorf("Expected KRW amount 1050.0, got %v", response.Entries[0].AmountKRW)
		}
	})

	t.Run("honors the limit parameter", func(t *testing.T) {
		handler := setupTickerHandler(t, newMock(t))

		req := tickerRequest(http.MethodGet, "/api/ticker/ULTY/dividends?limit=1", "ULTY")
		w := httptest.NewRecorder()

		handler.Dividends(w, req)

		var response model.DividendHistory
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if len(response.Entries) != 1 {
			t.Errorf("Expected 1 entry, got %d", len(response.Entries))
		}
	})

	t.Run("rejects a non-numeric limit", func(t *testing.T) {
		handler := setupTickerHandler(t, newMock(t))

		req := tickerRequest(http.MethodGet, "/api/ticker/ULTY/dividends?limit=ten", "ULTY")
		w := httptest.NewRecorder()

		handler.Dividends(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects a non-positive limit", func(t *testing.T) {
		handler := setupTickerHandler(t, newMock(t))

		req := tickerRequest(http.MethodGet, "/api/ticker/ULTY/dividends?limit=0", "ULTY")
		w := httptest.NewRecorder()

		handler.Dividends(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 404 for an uncovered ticker", func(t *testing.T) {
		handler := setupTickerHandler(t, newMock(t))

		req := tickerRequest(http.MethodGet, "/api/ticker/SPY/dividends", "SPY")
		w := httptest.NewRecorder()

		handler.Dividends(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}
