// Package primary defines the primary ports (driving adapters) for the
// application. The CLI talks to the services through these interfaces.
package primary

import "context"

// Pilot is the pilot view returned to callers.
type Pilot struct {
	ID                string
	Name              string
	Skills            string
	Certifications    string
	Location          string
	Status            string
	CurrentAssignment string
	AvailableFrom     string
}

// PilotQuery holds the optional predicates for a pilot search. Empty fields
// are not applied. IncludeUnavailable lifts the default available-only
// restriction.
type PilotQuery struct {
	Skill              string
	Cert               string
	Location           string
	IncludeUnavailable bool
}

// AddPilotRequest is the input for creating a pilot. ID is allocated by the
// service.
type AddPilotRequest struct {
	Name           string
	Skills         string
	Certifications string
	Location       string
	Status         string
	AvailableFrom  string
}

// AddPilotResponse is the result of creating a pilot.
type AddPilotResponse struct {
	PilotID string
	Pilot   *Pilot
}

// RosterService is the primary port for pilot operations.
type RosterService interface {
	// ListPilots returns pilots matching the query, in roster order.
	ListPilots(ctx context.Context, query PilotQuery) ([]*Pilot, error)

	// GetPilot retrieves a pilot by ID.
	GetPilot(ctx context.Context, pilotID string) (*Pilot, error)

	// AddPilot creates a pilot with the next sequential ID.
	AddPilot(ctx context.Context, req AddPilotRequest) (*AddPilotResponse, error)

	// UpdatePilotStatus sets a pilot's status. The status must parse
	// against the closed pilot status set.
	UpdatePilotStatus(ctx context.Context, pilotID, status string) error
}
