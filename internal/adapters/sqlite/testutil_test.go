package sqlite

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/skyops/internal/db"
	"github.com/example/skyops/internal/ports/secondary"
)

// setupTestDB creates an in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if _, err := database.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return database
}

func testPilotRecord(id, name string) *secondary.PilotRecord {
	return &secondary.PilotRecord{
		ID:                id,
		Name:              name,
		Skills:            "Mapping, Survey",
		Certifications:    "DGCA",
		Location:          "Mumbai",
		Status:            "Available",
		CurrentAssignment: "–",
		AvailableFrom:     "2024-01-01",
	}
}

func testDroneRecord(id, model string) *secondary.DroneRecord {
	return &secondary.DroneRecord{
		ID:                id,
		Model:             model,
		Capabilities:      "RGB, Thermal",
		Status:            "Available",
		Location:          "Mumbai",
		CurrentAssignment: "–",
		MaintenanceDue:    "2024-06-01",
	}
}

func testMissionRecord(id, client string) *secondary.MissionRecord {
	return &secondary.MissionRecord{
		ID:            id,
		Client:        client,
		Location:      "Mumbai",
		RequiredSkill: "Mapping",
		RequiredCert:  "DGCA",
		StartDate:     "2024-03-01",
		EndDate:       "2024-03-10",
		Priority:      "High",
	}
}
