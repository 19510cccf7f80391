// Package api wires the HTTP surface of the service: routing, middleware and
// handlers.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/api/handlers"
	custommiddleware "github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/api/middleware"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/config"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/refresh"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	scheduleService *service.ScheduleService,
	dividendService *service.DividendService,
	fxService *service.FXService,
	refresher *refresh.Refresher,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		groupHandler := handlers.NewGroupHandler(scheduleService)
		r.Get("/groups", groupHandler.Groups)

		r.Route("/ticker/{ticker}", func(r chi.Router) {
			r.Use(custommiddleware.ValidateTickerMiddleware)
			tickerHandler := handlers.NewTickerHandler(scheduleService, dividendService, fxService)
			r.Get("/summary", tickerHandler.Summary)
			r.Get("/dividends", tickerHandler.Dividends)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(custommiddleware.APIKeyMiddleware)
			adminHandler := handlers.NewAdminHandler(refresher)
			r.Post("/refresh", adminHandler.Refresh)
		})
	})

	return r
}
