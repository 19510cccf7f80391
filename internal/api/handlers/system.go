package handlers

import (
	"net/http"

	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/api/response"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// Health reports service and snapshot-store health. Always 200: the snapshot
// store is a fallback, its state is reported rather than failed on.
//
// Endpoint: GET /api/system/health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.systemService.Health())
}

// Version reports the service and Go runtime versions.
//
// Endpoint: GET /api/system/version
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.systemService.GetVersion())
}
