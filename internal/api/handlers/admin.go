package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/api/response"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/refresh"
)

// refreshTimeout bounds a handler-triggered warm-up pass.
const refreshTimeout = 10 * time.Minute

// AdminHandler handles administrative HTTP requests
type AdminHandler struct {
	refresher *refresh.Refresher
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(refresher *refresh.Refresher) *AdminHandler {
	return &AdminHandler{
		refresher: refresher,
	}
}

// Refresh handles POST requests to drop and re-warm every cache.
// The pass runs in the background; the handler returns immediately.
//
// Endpoint: POST /api/admin/refresh
// Response: 202 Accepted
func (h *AdminHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		h.refresher.RunOnce(ctx)
	}()

	response.RespondJSON(w, http.StatusAccepted, map[string]string{"status": "refresh started"})
}
