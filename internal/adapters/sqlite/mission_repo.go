package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/skyops/internal/core/fleet"
	"github.com/example/skyops/internal/ports/secondary"
)

// MissionRepository implements secondary.MissionRepository with SQLite.
type MissionRepository struct {
	db *sql.DB
}

// NewMissionRepository creates a new SQLite mission repository.
func NewMissionRepository(db *sql.DB) *MissionRepository {
	return &MissionRepository{db: db}
}

// Create persists a new mission.
func (r *MissionRepository) Create(ctx context.Context, mission *secondary.MissionRecord) error {
	if mission.ID == "" {
		return fmt.Errorf("mission ID must be pre-populated by service layer")
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO missions (id, client, location, required_skills, required_certs, start_date, end_date, priority) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		mission.ID, mission.Client, mission.Location, mission.RequiredSkill, mission.RequiredCert, mission.StartDate, mission.EndDate, mission.Priority,
	)
	if err != nil {
		return fmt.Errorf("failed to create mission: %w", err)
	}

	return nil
}

// GetByID retrieves a mission by its ID.
func (r *MissionRepository) GetByID(ctx context.Context, id string) (*secondary.MissionRecord, error) {
	record := &secondary.MissionRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, client, location, required_skills, required_certs, start_date, end_date, priority FROM missions WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Client, &record.Location, &record.RequiredSkill, &record.RequiredCert, &record.StartDate, &record.EndDate, &record.Priority)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("mission %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}

	return record, nil
}

// List retrieves all missions in insertion order.
func (r *MissionRepository) List(ctx context.Context) ([]*secondary.MissionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, client, location, required_skills, required_certs, start_date, end_date, priority FROM missions ORDER BY rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	defer rows.Close()

	var missions []*secondary.MissionRecord
	for rows.Next() {
		record := &secondary.MissionRecord{}
		err := rows.Scan(&record.ID, &record.Client, &record.Location, &record.RequiredSkill, &record.RequiredCert, &record.StartDate, &record.EndDate, &record.Priority)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mission: %w", err)
		}
		missions = append(missions, record)
	}

	return missions, nil
}

// Update replaces the mutable fields of an existing mission.
func (r *MissionRepository) Update(ctx context.Context, mission *secondary.MissionRecord) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE missions SET client = ?, location = ?, required_skills = ?, required_certs = ?, start_date = ?, end_date = ?, priority = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		mission.Client, mission.Location, mission.RequiredSkill, mission.RequiredCert, mission.StartDate, mission.EndDate, mission.Priority, mission.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update mission: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("mission %s not found", mission.ID)
	}

	return nil
}

// GetNextID returns the next available mission ID.
// Mission IDs carry a three letter prefix, so the numeric part starts at
// offset 4.
func (r *MissionRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 4) AS INTEGER)), 0) FROM missions",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next mission ID: %w", err)
	}

	return fleet.GenerateProjectID(maxID), nil
}

// Ensure MissionRepository implements the interface
var _ secondary.MissionRepository = (*MissionRepository)(nil)
