package service

import (
	"database/sql"
	"runtime"

	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/database"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/model"
)

// Version is the service version reported by the version endpoint.
const Version = "1.0.0"

// SystemService handles health and version reporting.
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService over the snapshot database.
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{db: db}
}

// Health reports service and database health. A failing database does not
// fail the endpoint; the snapshot store is a fallback, not a dependency of
// the resolution path.
func (s *SystemService) Health() model.HealthResponse {
	dbStatus := "ok"
	if s.db == nil {
		dbStatus = "disabled"
	} else if err := database.HealthCheck(s.db); err != nil {
		dbStatus = "unavailable"
	}

	return model.HealthResponse{
		Status:   "ok",
		Database: dbStatus,
	}
}

// GetVersion reports the service and Go runtime versions.
func (s *SystemService) GetVersion() model.VersionResponse {
	return model.VersionResponse{
		Version:   Version,
		GoVersion: runtime.Version(),
	}
}
