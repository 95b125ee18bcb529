package primary

import "context"

// Mission is the mission view returned to callers.
type Mission struct {
	ID            string
	Client        string
	Location      string
	RequiredSkill string
	RequiredCert  string
	StartDate     string
	EndDate       string
	Priority      string
}

// MissionQuery holds the optional predicates for a mission search.
type MissionQuery struct {
	Priority string
}

// AddMissionRequest is the input for creating a mission. ID is allocated by
// the service.
type AddMissionRequest struct {
	Client        string
	Location      string
	RequiredSkill string
	RequiredCert  string
	StartDate     string
	EndDate       string
	Priority      string
}

// AddMissionResponse is the result of creating a mission.
type AddMissionResponse struct {
	ProjectID string
	Mission   *Mission
}

// MissionResources lists the pilots and drones currently assigned to a
// mission. Both may be empty; that is an answer, not an error.
type MissionResources struct {
	ProjectID string
	Pilots    []*Pilot
	Drones    []*Drone
}

// MissionService is the primary port for mission operations.
type MissionService interface {
	// ListMissions returns missions matching the query, in listing order.
	ListMissions(ctx context.Context, query MissionQuery) ([]*Mission, error)

	// GetMission retrieves a mission by project ID.
	GetMission(ctx context.Context, projectID string) (*Mission, error)

	// AddMission creates a mission with the next sequential project ID.
	AddMission(ctx context.Context, req AddMissionRequest) (*AddMissionResponse, error)

	// Resources returns the pilots and drones holding the given assignment.
	Resources(ctx context.Context, projectID string) (*MissionResources, error)
}
