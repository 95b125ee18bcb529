package primary

import "context"

// Drone is the drone view returned to callers.
type Drone struct {
	ID                string
	Model             string
	Capabilities      string
	Status            string
	Location          string
	CurrentAssignment string
	MaintenanceDue    string
}

// DroneQuery holds the optional predicates for a drone search.
type DroneQuery struct {
	Capability         string
	Location           string
	IncludeUnavailable bool
}

// AddDroneRequest is the input for creating a drone. ID is allocated by the
// service.
type AddDroneRequest struct {
	Model          string
	Capabilities   string
	Location       string
	Status         string
	MaintenanceDue string
}

// AddDroneResponse is the result of creating a drone.
type AddDroneResponse struct {
	DroneID string
	Drone   *Drone
}

// FleetService is the primary port for drone operations.
type FleetService interface {
	// ListDrones returns drones matching the query, in fleet order.
	ListDrones(ctx context.Context, query DroneQuery) ([]*Drone, error)

	// GetDrone retrieves a drone by ID.
	GetDrone(ctx context.Context, droneID string) (*Drone, error)

	// AddDrone creates a drone with the next sequential ID.
	AddDrone(ctx context.Context, req AddDroneRequest) (*AddDroneResponse, error)

	// UpdateDroneStatus sets a drone's status. The status must parse
	// against the closed drone status set.
	UpdateDroneStatus(ctx context.Context, droneID, status string) error
}
