package handlers

import (
	"net/http"

	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/api/response"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/service"
)

// GroupHandler handles group-related HTTP requests
type GroupHandler struct {
	scheduleService *service.ScheduleService
}

// NewGroupHandler creates a new GroupHandler
func NewGroupHandler(scheduleService *service.ScheduleService) *GroupHandler {
	return &GroupHandler{
		scheduleService: scheduleService,
	}
}

// Groups handles GET requests for the distribution group overview.
// Returns every group with its member tickers, sorted by group key.
//
// Endpoint: GET /api/groups
// Response: 200 OK with []GroupListing
func (h *GroupHandler) Groups(w http.ResponseWriter, r *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.scheduleService.Groups())
}
