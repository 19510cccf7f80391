package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/api"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/cache"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/config"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/database"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/marketcal"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/refresh"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/repository"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/schedule"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/service"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/yahoo"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open snapshot database and bring the schema up to date
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Build the fixed calendar and schedule table
	calendar, err := marketcal.NewCalendar(marketcal.USMarketHolidays2025, cfg.Market.Timezone, cfg.Market.ViewerTimezone)
	if err != nil {
		log.Fatalf("Failed to build market calendar: %v", err)
	}
	table := schedule.NewTable()

	// Create the provider client and cache
	yahooClient := yahoo.NewFinanceClient()
	store := cache.New(cache.TTLs{
		Dividend:     cfg.Cache.DividendTTL,
		Announcement: cfg.Cache.AnnouncementTTL,
		FXRate:       cfg.Cache.FXRateTTL,
	})

	// Create repositories
	snapshotRepo := repository.NewSnapshotRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	dividendService := service.NewDividendService(yahooClient, store, snapshotRepo, calendar)
	fxService := service.NewFXService(yahooClient, store, cfg.FX.Pair, cfg.FX.FallbackRate)
	scheduleService := service.NewScheduleService(table, calendar, dividendService)

	// Start the background cache refresher
	refresher := refresh.NewRefresher(dividendService, fxService, store, table.Tickers(), cfg.Refresh.Schedule)
	if err := refresher.Start(); err != nil {
		log.Fatalf("Failed to start refresher: %v", err)
	}
	defer refresher.Stop()

	// Create router
	router := api.NewRouter(systemService, scheduleService, dividendService, fxService, refresher, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
