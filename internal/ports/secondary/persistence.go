// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// external systems.
package secondary

import "context"

// PilotRecord represents a pilot as stored in persistence. Fields mirror the
// external tabular contract; absent values are empty strings, never errors.
type PilotRecord struct {
	ID                string
	Name              string
	Skills            string
	Certifications    string
	Location          string
	Status            string
	CurrentAssignment string
	AvailableFrom     string
	CreatedAt         string
	UpdatedAt         string
}

// DroneRecord represents a drone as stored in persistence.
type DroneRecord struct {
	ID                string
	Model             string
	Capabilities      string
	Status            string
	Location          string
	CurrentAssignment string
	MaintenanceDue    string
	CreatedAt         string
	UpdatedAt         string
}

// MissionRecord represents a mission as stored in persistence.
type MissionRecord struct {
	ID            string
	Client        string
	Location      string
	RequiredSkill string
	RequiredCert  string
	StartDate     string
	EndDate       string
	Priority      string
	CreatedAt     string
	UpdatedAt     string
}

// PilotRepository defines the secondary port for pilot persistence.
// List returns rows in insertion order: first-match selection in the core
// depends on stable listing order.
type PilotRepository interface {
	// Create persists a new pilot. ID must be pre-populated by the service.
	Create(ctx context.Context, pilot *PilotRecord) error

	// GetByID retrieves a pilot by its ID.
	GetByID(ctx context.Context, id string) (*PilotRecord, error)

	// List retrieves all pilots in insertion order.
	List(ctx context.Context) ([]*PilotRecord, error)

	// Update replaces the mutable fields of an existing pilot.
	Update(ctx context.Context, pilot *PilotRecord) error

	// UpdateStatus updates only the status field.
	UpdateStatus(ctx context.Context, id, status string) error

	// SetAssignment updates assignment and status together.
	SetAssignment(ctx context.Context, id, assignment, status string) error

	// GetNextID returns the next available pilot ID.
	GetNextID(ctx context.Context) (string, error)
}

// DroneRepository defines the secondary port for drone persistence.
type DroneRepository interface {
	Create(ctx context.Context, drone *DroneRecord) error
	GetByID(ctx context.Context, id string) (*DroneRecord, error)
	List(ctx context.Context) ([]*DroneRecord, error)
	Update(ctx context.Context, drone *DroneRecord) error
	UpdateStatus(ctx context.Context, id, status string) error
	SetAssignment(ctx context.Context, id, assignment, status string) error
	GetNextID(ctx context.Context) (string, error)
}

// MissionRepository defines the secondary port for mission persistence.
type MissionRepository interface {
	Create(ctx context.Context, mission *MissionRecord) error
	GetByID(ctx context.Context, id string) (*MissionRecord, error)
	List(ctx context.Context) ([]*MissionRecord, error)
	Update(ctx context.Context, mission *MissionRecord) error
	GetNextID(ctx context.Context) (string, error)
}

// ActivityRecord is one audit-trail entry for a mutating operation.
type ActivityRecord struct {
	ID        int64
	Actor     string
	Action    string
	EntityID  string
	Detail    string
	CreatedAt string
}

// ActivityLogRepository defines the secondary port for the activity log.
type ActivityLogRepository interface {
	// Append writes one entry to the log.
	Append(ctx context.Context, entry *ActivityRecord) error

	// Recent returns the newest entries, newest first.
	Recent(ctx context.Context, limit int) ([]*ActivityRecord, error)
}
