package yahoo

import "time"

// Response represents the raw JSON response structure from the Yahoo Finance
// chart API, queried with events=div so dividend events ride along with the
// price series.
//
// The structure includes:
//   - Chart.Result: Array of result objects (typically one element)
//   - Chart.Result[].Meta: Symbol metadata and the regular market price
//   - Chart.Result[].Events.Dividends: Map of epoch-keyed dividend events
//   - Chart.Result[].Timestamp / Indicators: Daily close series
//   - Chart.Error: Optional error message from the Yahoo API
type Response struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency           string  `json:"currency"`
				Symbol             string  `json:"symbol"`
				ExchangeName       string  `json:"exchangeName"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
			Events struct {
				Dividends map[string]struct {
					Amount float64 `json:"amount"`
					Date   int64   `json:"date"`
				} `json:"dividends"`
			} `json:"events"`
		} `json:"result"`
		Error *string `json:"error"`
	} `json:"chart"`
}

// DividendPoint is one parsed dividend event: the raw instant Yahoo stamps on
// the ex-dividend day and the per-share cash amount in the quote currency.
type DividendPoint struct {
	Date   time.Time
	Amount float64
}
