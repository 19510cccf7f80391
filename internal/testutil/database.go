package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the embedded production migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE dividend_snapshot (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			ticker VARCHAR(10) NOT NULL,
			source VARCHAR(10) NOT NULL,
			status VARCHAR(16) NOT NULL,
			fetched_at DATETIME NOT NULL,
			payload TEXT NOT NULL,
			last_status VARCHAR(16) NOT NULL DEFAULT 'ok',
			last_error TEXT NOT NULL DEFAULT '',
			checked_at DATETIME NOT NULL DEFAULT '',
			CONSTRAINT unique_ticker_source UNIQUE (ticker, source)
		);

		CREATE INDEX idx_dividend_snapshot_ticker ON dividend_snapshot (ticker);
	`

	_, err := db.Exec(schema)
	return err
}
