package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/yahoo"
)

// MockYahooClient is a mock implementation of yahoo.Client for testing.
// It returns predefined responses instead of making actual API calls.
type MockYahooClient struct {
	// HistoryResponse is returned by QueryDividendHistory
	HistoryResponse yahoo.Response
	// LiveResponse is returned by QueryLiveAnnouncements
	LiveResponse yahoo.Response
	// FXResponse is returned by QueryLatestFX
	FXResponse yahoo.Response
	// MockError, when set, is returned by every query method
	MockError error
	// QueryCount tracks how many query calls were made
	QueryCount int
}

// NewMockYahooClient creates a mock with empty-but-valid responses.
func NewMockYahooClient(t *testing.T) *MockYahooClient {
	t.Helper()

	return &MockYahooClient{
		HistoryResponse: DividendResponse(t, nil),
		LiveResponse:    DividendResponse(t, nil),
		FXResponse:      FXResponse(t, 1400.0),
	}
}

// QueryDividendHistory mocks the historical dividend query.
func (m *MockYahooClient) QueryDividendHistory(_ context.Context, _ string) (yahoo.Response, error) {
	m.QueryCount++
	if m.MockError != nil {
		return yahoo.Response{}, m.MockError
	}
	return m.HistoryResponse, nil
}

// QueryLiveAnnouncements mocks the live announcement query.
func (m *MockYahooClient) QueryLiveAnnouncements(_ context.Context, _ string) (yahoo.Response, error) {
	m.QueryCount++
	if m.MockError != nil {
		return yahoo.Response{}, m.MockError
	}
	return m.LiveResponse, nil
}

// QueryLatestFX mocks the FX rate query.
func (m *MockYahooClient) QueryLatestFX(_ context.Context, _ string) (yahoo.Response, error) {
	m.QueryCount++
	if m.MockError != nil {
		return yahoo.Response{}, m.MockError
	}
	return m.FXResponse, nil
}

// ParseDividends delegates to the real implementation; parsing is pure logic.
func (m *MockYahooClient) ParseDividends(resp yahoo.Response) ([]yahoo.DividendPoint, error) {
	return yahoo.NewFinanceClient().ParseDividends(resp)
}

// ParseLatestPrice delegates to the real implementation.
func (m *MockYahooClient) ParseLatestPrice(resp yahoo.Response) (float64, error) {
	return yahoo.NewFinanceClient().ParseLatestPrice(resp)
}

// WithError configures the mock to fail every query.
func (m *MockYahooClient) WithError(err error) *MockYahooClient {
	m.MockError = err
	return m
}

// DividendResponse builds a chart response carrying the given dividend
// events, keyed by epoch second.
func DividendResponse(t *testing.T, events map[int64]float64) yahoo.Response {
	t.Helper()

	entries := make([]string, 0, len(events))
	for epoch, amount := range events {
		entries = append(entries,
			fmt.Sprintf(`"%d":{"amount":%g,"date":%d}`, epoch, amount, epoch))
	}

	body := fmt.Sprintf(`{"chart":{"result":[{
		"meta":{"currency":"USD"},
		"events":{"dividends":{%s}}
	}]}}`, strings.Join(entries, ","))

	var resp yahoo.Response
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("Failed to build mock dividend response: %v", err)
	}
	return resp
}

// FXResponse builds a chart response carrying the given market price.
func FXResponse(t *testing.T, rate float64) yahoo.Response {
	t.Helper()

	body := fmt.Sprintf(`{"chart":{"result":[{
		"meta":{"currency":"KRW","regularMarketPrice":%g}
	}]}}`, rate)

	var resp yahoo.Response
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("Failed to build mock FX response: %v", err)
	}
	return resp
}

// MarketEpoch returns the epoch second Yahoo typically stamps on a dividend
// event for the given market-local calendar day (09:30 New York, expressed
// here as a fixed 13:30 UTC which maps to the same calendar day year-round).
func MarketEpoch(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 13, 30, 0, 0, time.UTC).Unix()
}
