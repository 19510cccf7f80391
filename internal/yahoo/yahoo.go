// Package yahoo provides a client for the Yahoo Finance chart API, used as
// the dividend-history, live-announcement and FX-rate data provider.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"sort"
	"time"

	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"

	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/apperrors"
)

// Client is the interface the services depend on. It is satisfied by
// FinanceClient and by the test mock.
type Client interface {
	QueryDividendHistory(ctx context.Context, symbol string) (Response, error)
	QueryLiveAnnouncements(ctx context.Context, symbol string) (Response, error)
	QueryLatestFX(ctx context.Context, pair string) (Response, error)
	ParseDividends(resp Response) ([]DividendPoint, error)
	ParseLatestPrice(resp Response) (float64, error)
}

// FinanceClient provides methods for fetching dividend and FX data from the
// Yahoo Finance chart API. Requests share a cookie jar so Yahoo's consent
// cookies persist across calls, and outbound calls are paced by a rate
// limiter to stay well under the API's informal request budget.
type FinanceClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewFinanceClient creates a new Yahoo Finance client with a public-suffix
// aware cookie jar and a 15 second request timeout.
func NewFinanceClient() *FinanceClient {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		// cookiejar.New only fails on a nil-option misuse; fall back to a
		// jarless client rather than refusing to start.
		jar = nil
	}

	return &FinanceClient{
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 15 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Every(250*time.Millisecond), 4),
	}
}

// QueryDividendHistory fetches the long dividend history for a symbol.
// It requests five years of daily data with dividend events attached, which
// is the best-effort historical series the overlay treats as primary.
func (c *FinanceClient) QueryDividendHistory(ctx context.Context, symbol string) (Response, error) {
	url := fmt.Sprintf(
		"https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=5y&events=div",
		symbol,
	)
	result, err := c.queryYahoo(ctx, url)
	if err != nil {
		return Response{}, err
	}
	if len(result.Chart.Result) == 0 {
		return Response{}, fmt.Errorf("no results returned for symbol %s", symbol)
	}

	return result, nil
}

// QueryLiveAnnouncements fetches the recent dividend window for a symbol.
// The three month range covers announced-but-unpaid cycles, which is the
// near-real-time series the overlay treats as secondary/authoritative.
func (c *FinanceClient) QueryLiveAnnouncements(ctx context.Context, symbol string) (Response, error) {
	url := fmt.Sprintf(
		"https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=3mo&events=div",
		symbol,
	)
	result, err := c.queryYahoo(ctx, url)
	if err != nil {
		return Response{}, err
	}
	if len(result.Chart.Result) == 0 {
		return Response{}, fmt.Errorf("no results returned for symbol %s", symbol)
	}

	return result, nil
}

// QueryLatestFX fetches the latest daily candle for a currency pair symbol
// (e.g. "USDKRW=X").
func (c *FinanceClient) QueryLatestFX(ctx context.Context, pair string) (Response, error) {
	url := fmt.Sprintf(
		"https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=1d",
		pair,
	)
	result, err := c.queryYahoo(ctx, url)
	if err != nil {
		return Response{}, err
	}
	if len(result.Chart.Result) == 0 {
		return Response{}, fmt.Errorf("no results returned for pair %s", pair)
	}

	return result, nil
}

// ParseDividends converts a raw chart response into dividend points sorted by
// date descending. Entries with a non-positive epoch or a negative amount are
// dropped; an empty events map yields an empty slice, not an error.
func (c *FinanceClient) ParseDividends(resp Response) ([]DividendPoint, error) {
	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("no chart results")
	}

	events := resp.Chart.Result[0].Events.Dividends
	points := make([]DividendPoint, 0, len(events))
	for _, ev := range events {
		if ev.Date <= 0 || ev.Amount < 0 {
			continue
		}
		points = append(points, DividendPoint{
			Date:   time.Unix(ev.Date, 0).UTC(),
			Amount: ev.Amount,
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.After(points[j].Date)
	})

	return points, nil
}

// ParseLatestPrice extracts the most recent price from a chart response:
// the meta regular market price when present, otherwise the last non-zero
// close in the daily series.
func (c *FinanceClient) ParseLatestPrice(resp Response) (float64, error) {
	if len(resp.Chart.Result) == 0 {
		return 0, fmt.Errorf("no chart results")
	}
	result := resp.Chart.Result[0]

	if result.Meta.RegularMarketPrice > 0 {
		return result.Meta.RegularMarketPrice, nil
	}

	if len(result.Indicators.Quote) > 0 {
		closes := result.Indicators.Quote[0].Close
		for i := len(closes) - 1; i >= 0; i-- {
			if closes[i] > 0 {
				return closes[i], nil
			}
		}
	}

	return 0, fmt.Errorf("%w: no usable price in response", apperrors.ErrFXRateNotFound)
}

// queryYahoo is an internal helper that executes HTTP requests to the Yahoo
// Finance API. It paces requests through the limiter, sets the browser-like
// headers Yahoo expects, parses the JSON body and surfaces API-level errors.
func (c *FinanceClient) queryYahoo(ctx context.Context, url string) (Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Response{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Response{}, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return Response{}, err
	}

	if response.Chart.Error != nil {
		return response, fmt.Errorf("yahoo error: %s", *response.Chart.Error)
	}

	return response, nil
}
