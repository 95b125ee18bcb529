package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/skyops/internal/core/fleet"
	"github.com/example/skyops/internal/ports/secondary"
)

// DroneRepository implements secondary.DroneRepository with SQLite.
type DroneRepository struct {
	db *sql.DB
}

// NewDroneRepository creates a new SQLite drone repository.
func NewDroneRepository(db *sql.DB) *DroneRepository {
	return &DroneRepository{db: db}
}

// Create persists a new drone.
func (r *DroneRepository) Create(ctx context.Context, drone *secondary.DroneRecord) error {
	if drone.ID == "" {
		return fmt.Errorf("drone ID must be pre-populated by service layer")
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO drones (id, model, capabilities, status, location, current_assignment, maintenance_due) VALUES (?, ?, ?, ?, ?, ?, ?)",
		drone.ID, drone.Model, drone.Capabilities, drone.Status, drone.Location, drone.CurrentAssignment, drone.MaintenanceDue,
	)
	if err != nil {
		return fmt.Errorf("failed to create drone: %w", err)
	}

	return nil
}

// GetByID retrieves a drone by its ID.
func (r *DroneRepository) GetByID(ctx context.Context, id string) (*secondary.DroneRecord, error) {
	record := &secondary.DroneRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, model, capabilities, status, location, current_assignment, maintenance_due FROM drones WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Model, &record.Capabilities, &record.Status, &record.Location, &record.CurrentAssignment, &record.MaintenanceDue)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("drone %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get drone: %w", err)
	}

	return record, nil
}

// List retrieves all drones in insertion order.
func (r *DroneRepository) List(ctx context.Context) ([]*secondary.DroneRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, model, capabilities, status, location, current_assignment, maintenance_due FROM drones ORDER BY rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list drones: %w", err)
	}
	defer rows.Close()

	var drones []*secondary.DroneRecord
	for rows.Next() {
		record := &secondary.DroneRecord{}
		err := rows.Scan(&record.ID, &record.Model, &record.Capabilities, &record.Status, &record.Location, &record.CurrentAssignment, &record.MaintenanceDue)
		if err != nil {
			return nil, fmt.Errorf("failed to scan drone: %w", err)
		}
		drones = append(drones, record)
	}

	return drones, nil
}

// Update replaces the mutable fields of an existing drone.
func (r *DroneRepository) Update(ctx context.Context, drone *secondary.DroneRecord) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE drones SET model = ?, capabilities = ?, status = ?, location = ?, current_assignment = ?, maintenance_due = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		drone.Model, drone.Capabilities, drone.Status, drone.Location, drone.CurrentAssignment, drone.MaintenanceDue, drone.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update drone: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("drone %s not found", drone.ID)
	}

	return nil
}

// UpdateStatus updates only the status field.
func (r *DroneRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE drones SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update drone status: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("drone %s not found", id)
	}

	return nil
}

// SetAssignment updates assignment and status together.
func (r *DroneRepository) SetAssignment(ctx context.Context, id, assignment, status string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE drones SET current_assignment = ?, status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		assignment, status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set drone assignment: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("drone %s not found", id)
	}

	return nil
}

// GetNextID returns the next available drone ID.
func (r *DroneRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 2) AS INTEGER)), 0) FROM drones",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next drone ID: %w", err)
	}

	return fleet.GenerateDroneID(maxID), nil
}

// Ensure DroneRepository implements the interface
var _ secondary.DroneRepository = (*DroneRepository)(nil)
