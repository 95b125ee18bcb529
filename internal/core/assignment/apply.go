package assignment

import "github.com/example/skyops/internal/core/fleet"

// ApplyResult holds updated copies of the collections after a recommendation
// is accepted. The input slices are never mutated; the persistence layer
// writes the copies back.
type ApplyResult struct {
	Pilots  []fleet.Pilot
	Drones  []fleet.Drone
	PilotID string
	DroneID string
	Applied bool
}

// Apply marks the recommended pilot and drone as assigned to the project and
// returns updated copies of both collections. A recommendation with issues is
// not applied. Partial recommendations are not applied either: an assignment
// needs both resources.
func Apply(rec Recommendation, projectID string, pilots []fleet.Pilot, drones []fleet.Drone) ApplyResult {
	result := ApplyResult{
		Pilots: append([]fleet.Pilot(nil), pilots...),
		Drones: append([]fleet.Drone(nil), drones...),
	}
	if !rec.Satisfiable() {
		return result
	}

	for i := range result.Pilots {
		if result.Pilots[i].ID == rec.Pilot.ID {
			result.Pilots[i].CurrentAssignment = projectID
			result.Pilots[i].Status = fleet.PilotAssigned
			result.PilotID = result.Pilots[i].ID
		}
	}
	for i := range result.Drones {
		if result.Drones[i].ID == rec.Drone.ID {
			result.Drones[i].CurrentAssignment = projectID
			result.Drones[i].Status = fleet.DroneAssigned
			result.DroneID = result.Drones[i].ID
		}
	}
	result.Applied = result.PilotID != "" && result.DroneID != ""
	return result
}
