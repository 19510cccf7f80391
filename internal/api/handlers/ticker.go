// Package handlers implements the HTTP handlers of the API.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/api/response"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/apperrors"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/service"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/validation"
)

// defaultDividendLimit is the number of listing entries returned when the
// client does not ask for a specific count.
const defaultDividendLimit = 10

// TickerHandler handles per-ticker HTTP requests
type TickerHandler struct {
	scheduleService *service.ScheduleService
	dividendService *service.DividendService
	fxService       *service.FXService
}

// NewTickerHandler creates a new TickerHandler
func NewTickerHandler(
	scheduleService *service.ScheduleService,
	dividendService *service.DividendService,
	fxService *service.FXService,
) *TickerHandler {
	return &TickerHandler{
		scheduleService: scheduleService,
		dividendService: dividendService,
		fxService:       fxService,
	}
}

// Summary handles GET requests for the per-ticker schedule card.
// Returns the ticker's group, the current clock in both timezones, and the
// resolved recent/next dividend cycle with viewer-local deadlines.
//
// Endpoint: GET /api/ticker/{ticker}/summary
// Response: 200 OK with TickerSummary
// Error: 404 Not Found for tickers outside the covered universe
func (h *TickerHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ticker := validation.NormalizeTicker(chi.URLParam(r, "ticker"))

	summary, err := h.scheduleService.Summary(r.Context(), ticker)
	if err != nil {
		if errors.Is(err, apperrors.ErrTickerNotFound) {
			response.RespondError(w, http.StatusNotFound, "ticker not covered", ticker)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to resolve schedule", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// Dividends handles GET requests for the per-ticker dividend listing.
// Returns the merged dividend series converted at the current FX rate.
//
// Endpoint: GET /api/ticker/{ticker}/dividends?limit=N
// Response: 200 OK with DividendHistory
// Error: 400 Bad Request for a non-positive or non-numeric limit
// Error: 404 Not Found for tickers outside the covered universe
func (h *TickerHandler) Dividends(w http.ResponseWriter, r *http.Request) {
	ticker := validation.NormalizeTicker(chi.URLParam(r, "ticker"))

	if !h.scheduleService.Covered(ticker) {
		response.RespondError(w, http.StatusNotFound, "ticker not covered", ticker)
		return
	}

	limit := defaultDividendLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.RespondError(w, http.StatusBadRequest, "invalid limit", apperrors.ErrInvalidLimit.Error())
			return
		}
		limit = parsed
	}

	fxRate := h.fxService.Rate(r.Context())
	payload := h.dividendService.HistoryPayload(r.Context(), ticker, limit, fxRate)

	response.RespondJSON(w, http.StatusOK, payload)
}
