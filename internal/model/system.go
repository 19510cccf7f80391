package model

// HealthResponse reports service and database health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// VersionResponse reports the running service version.
type VersionResponse struct {
	Version   string `json:"version"`
	GoVersion string `json:"goVersion"`
}
