// Package replan contains the pure urgent-reassignment planner. This is part
// of the Functional Core - no I/O, only pure functions.
package replan

import (
	"fmt"

	"github.com/example/skyops/internal/core/assignment"
	"github.com/example/skyops/internal/core/fleet"
)

// NoElevatedMissions is the single informational line returned when nothing
// needs replanning.
const NoElevatedMissions = "No urgent or high-priority missions found."

// Plan proposes pulling resources from lower-priority missions to cover
// Urgent and High missions the constraint system cannot currently satisfy.
//
// A mission that the recommender can fully satisfy is skipped - coverable is
// enough, whether or not it is already assigned. For each uncoverable
// elevated mission the planner proposes the first pilot found assigned to a
// Standard or Low mission, scanning those missions in listing order. Only
// pilots are ever proposed; drones stay where they are.
func Plan(missions []fleet.Mission, pilots []fleet.Pilot, drones []fleet.Drone) []string {
	var elevated []fleet.Mission
	for _, m := range missions {
		if m.Priority.Elevated() {
			elevated = append(elevated, m)
		}
	}
	if len(elevated) == 0 {
		return []string{NoElevatedMissions}
	}

	var plan []string
	for _, m := range elevated {
		rec := assignment.Recommend(m.ID, pilots, drones, missions)
		if rec.Satisfiable() {
			continue
		}

		candidate, ok := reassignablePilot(missions, pilots)
		if ok {
			plan = append(plan, fmt.Sprintf(
				"Consider reassigning pilot %s from %s to urgent mission %s.",
				candidate.Name, candidate.CurrentAssignment, m.ID,
			))
		} else {
			plan = append(plan, fmt.Sprintf(
				"No reassignable pilots found for urgent mission %s.", m.ID,
			))
		}
	}
	return plan
}

// reassignablePilot returns the first pilot assigned to a Standard or Low
// mission, mission-major iteration order.
func reassignablePilot(missions []fleet.Mission, pilots []fleet.Pilot) (fleet.Pilot, bool) {
	for _, m := range missions {
		if !m.Priority.Preemptible() {
			continue
		}
		for _, p := range pilots {
			if p.CurrentAssignment == m.ID {
				return p, true
			}
		}
	}
	return fleet.Pilot{}, false
}
