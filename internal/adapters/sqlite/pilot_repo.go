// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/skyops/internal/core/fleet"
	"github.com/example/skyops/internal/ports/secondary"
)

// PilotRepository implements secondary.PilotRepository with SQLite.
type PilotRepository struct {
	db *sql.DB
}

// NewPilotRepository creates a new SQLite pilot repository.
func NewPilotRepository(db *sql.DB) *PilotRepository {
	return &PilotRepository{db: db}
}

// Create persists a new pilot.
// The record must have ID pre-populated by the service layer.
func (r *PilotRepository) Create(ctx context.Context, pilot *secondary.PilotRecord) error {
	if pilot.ID == "" {
		return fmt.Errorf("pilot ID must be pre-populated by service layer")
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO pilots (id, name, skills, certifications, location, status, current_assignment, available_from) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		pilot.ID, pilot.Name, pilot.Skills, pilot.Certifications, pilot.Location, pilot.Status, pilot.CurrentAssignment, pilot.AvailableFrom,
	)
	if err != nil {
		return fmt.Errorf("failed to create pilot: %w", err)
	}

	return nil
}

// GetByID retrieves a pilot by its ID.
func (r *PilotRepository) GetByID(ctx context.Context, id string) (*secondary.PilotRecord, error) {
	record := &secondary.PilotRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, skills, certifications, location, status, current_assignment, available_from FROM pilots WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Name, &record.Skills, &record.Certifications, &record.Location, &record.Status, &record.CurrentAssignment, &record.AvailableFrom)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("pilot %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pilot: %w", err)
	}

	return record, nil
}

// List retrieves all pilots in insertion order. First-match selection in the
// core depends on this ordering staying stable.
func (r *PilotRepository) List(ctx context.Context) ([]*secondary.PilotRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, skills, certifications, location, status, current_assignment, available_from FROM pilots ORDER BY rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list pilots: %w", err)
	}
	defer rows.Close()

	var pilots []*secondary.PilotRecord
	for rows.Next() {
		record := &secondary.PilotRecord{}
		err := rows.Scan(&record.ID, &record.Name, &record.Skills, &record.Certifications, &record.Location, &record.Status, &record.CurrentAssignment, &record.AvailableFrom)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pilot: %w", err)
		}
		pilots = append(pilots, record)
	}

	return pilots, nil
}

// Update replaces the mutable fields of an existing pilot.
func (r *PilotRepository) Update(ctx context.Context, pilot *secondary.PilotRecord) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE pilots SET name = ?, skills = ?, certifications = ?, location = ?, status = ?, current_assignment = ?, available_from = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		pilot.Name, pilot.Skills, pilot.Certifications, pilot.Location, pilot.Status, pilot.CurrentAssignment, pilot.AvailableFrom, pilot.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update pilot: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("pilot %s not found", pilot.ID)
	}

	return nil
}

// UpdateStatus updates only the status field.
func (r *PilotRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE pilots SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update pilot status: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("pilot %s not found", id)
	}

	return nil
}

// SetAssignment updates assignment and status together.
func (r *PilotRepository) SetAssignment(ctx context.Context, id, assignment, status string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE pilots SET current_assignment = ?, status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		assignment, status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set pilot assignment: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("pilot %s not found", id)
	}

	return nil
}

// GetNextID returns the next available pilot ID.
// Uses the core function for ID format to keep business logic in the
// functional core.
func (r *PilotRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 2) AS INTEGER)), 0) FROM pilots",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next pilot ID: %w", err)
	}

	return fleet.GeneratePilotID(maxID), nil
}

// Ensure PilotRepository implements the interface
var _ secondary.PilotRepository = (*PilotRepository)(nil)
