package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Market   MarketConfig
	FX       FXConfig
	Cache    CacheConfig
	Refresh  RefreshConfig
	CORS     CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds the snapshot store configuration
type DatabaseConfig struct {
	Path string
}

// MarketConfig holds the two fixed timezones of the deadline calculation
type MarketConfig struct {
	Timezone       string // Exchange timezone (IANA name)
	ViewerTimezone string // Viewer timezone (IANA name)
}

// FXConfig holds the currency conversion settings
type FXConfig struct {
	Pair         string  // Yahoo pair symbol, e.g. USDKRW=X
	FallbackRate float64 // Conventional rate used when the provider is unreachable
}

// CacheConfig holds the per-source response cache TTLs
type CacheConfig struct {
	DividendTTL     time.Duration
	AnnouncementTTL time.Duration
	FXRateTTL       time.Duration
}

// RefreshConfig holds the background cache refresh schedule.
// An empty schedule disables the refresher.
type RefreshConfig struct {
	Schedule string // cron expression
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	dividendTTL, err := getDuration("DIVIDEND_CACHE_TTL", 30*time.Minute)
	if err != nil {
		return nil, err
	}
	announcementTTL, err := getDuration("ANNOUNCEMENT_CACHE_TTL", 3*time.Hour)
	if err != nil {
		return nil, err
	}
	fxTTL, err := getDuration("FX_CACHE_TTL", time.Hour)
	if err != nil {
		return nil, err
	}
	fallbackRate, err := getFloat("FX_FALLBACK_RATE", 1350.0)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/dividend_radar.db"),
		},
		Market: MarketConfig{
			Timezone:       getEnv("MARKET_TZ", "America/New_York"),
			ViewerTimezone: getEnv("VIEWER_TZ", "Asia/Seoul"),
		},
		FX: FXConfig{
			Pair:         getEnv("FX_PAIR", "USDKRW=X"),
			FallbackRate: fallbackRate,
		},
		Cache: CacheConfig{
			DividendTTL:     dividendTTL,
			AnnouncementTTL: announcementTTL,
			FXRateTTL:       fxTTL,
		},
		Refresh: RefreshConfig{
			Schedule: getEnv("REFRESH_SCHEDULE", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getDuration gets a duration environment variable (Go syntax, e.g. "30m")
// or returns a default value
func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	return d, nil
}

// getFloat gets a float environment variable or returns a default value
func getFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number for %s: %w", key, err)
	}
	return f, nil
}
