// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/api/response"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/validation"
)

// ValidateTickerMiddleware validates that the ticker URL parameter is present
// and normalizes to a plausible ticker symbol.
// Returns 400 Bad Request if the ticker is missing or invalid.
// This middleware should be applied to routes that carry a ticker in the URL path.
//
// Example usage in router:
//
//	r.Route("/{ticker}", func(r chi.Router) {
//	    r.Use(middleware.ValidateTickerMiddleware)
//	    r.Get("/summary", handler.Summary)
//	    r.Get("/dividends", handler.Dividends)
//	})
func ValidateTickerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ticker := chi.URLParam(r, "ticker")

		if ticker == "" {
			response.RespondError(w, http.StatusBadRequest, "ticker is required", "")
			return
		}

		if err := validation.ValidateTicker(validation.NormalizeTicker(ticker)); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid ticker format", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
