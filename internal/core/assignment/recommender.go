// Package assignment contains the pure recommendation logic that matches a
// mission to an eligible pilot and drone. This is part of the Functional
// Core - no I/O, only pure functions.
package assignment

import (
	"fmt"

	"github.com/example/skyops/internal/core/fleet"
	"github.com/example/skyops/internal/core/roster"
)

// Issue strings reported by Recommend. Unsatisfiable constraints are
// advisory results, never errors.
const (
	IssueNoPilot = "No available pilot meets skill, cert, and location requirements."
	IssueNoDrone = "No available drone matches capability and location requirements."
)

// Recommendation is the outcome of matching a mission to resources. Pilot
// and Drone are nil when no eligible candidate exists; Issues lists what
// could not be satisfied. A partial recommendation (one of the two) is a
// valid result - the caller decides whether it is usable.
type Recommendation struct {
	Pilot  *fleet.Pilot
	Drone  *fleet.Drone
	Issues []string
}

// Satisfiable reports whether the recommendation covers both resources with
// no outstanding issues.
func (r Recommendation) Satisfiable() bool {
	return r.Pilot != nil && r.Drone != nil && len(r.Issues) == 0
}

// Recommend finds the best pilot and drone for the mission identified by
// projectID. Selection is first-match in collection order - no scoring.
//
// Pilot eligibility: status Available, location equal to the mission's,
// skill set holding the required skill, certification set holding the
// required cert, and no temporal conflict with the pilot's current
// assignment (an existing assigned mission whose date range overlaps the
// candidate mission's excludes the pilot).
//
// Drone eligibility: the availability filter with the capability derived
// from the required skill and the mission's location.
func Recommend(projectID string, pilots []fleet.Pilot, drones []fleet.Drone, missions []fleet.Mission) Recommendation {
	mission, ok := fleet.FindMission(missions, projectID)
	if !ok {
		return Recommendation{Issues: []string{fmt.Sprintf("Unknown project: %s", projectID)}}
	}

	var eligible []fleet.Pilot
	for _, p := range pilots {
		if !p.Status.Is(fleet.PilotAvailable) {
			continue
		}
		if !fleet.EqualLocation(p.Location, mission.Location) {
			continue
		}
		if !p.Skills.Contains(mission.RequiredSkill) {
			continue
		}
		if !p.Certifications.Contains(mission.RequiredCert) {
			continue
		}
		if hasTemporalConflict(p, mission, missions) {
			continue
		}
		eligible = append(eligible, p)
	}

	capability := fleet.RequiredCapability(mission.RequiredSkill)
	eligibleDrones := roster.FilterDrones(drones, roster.DroneFilter{
		Capability:    capability,
		Location:      mission.Location,
		AvailableOnly: true,
	})

	var rec Recommendation
	if len(eligible) > 0 {
		pilot := eligible[0]
		rec.Pilot = &pilot
	} else {
		rec.Issues = append(rec.Issues, IssueNoPilot)
	}
	if len(eligibleDrones) > 0 {
		drone := eligibleDrones[0]
		rec.Drone = &drone
	} else {
		rec.Issues = append(rec.Issues, IssueNoDrone)
	}
	return rec
}

// hasTemporalConflict reports whether the pilot's current assignment refers
// to an existing mission whose dates overlap the candidate mission's.
// An assignment to an unknown mission is not a temporal conflict here; the
// conflict detector reports it separately.
func hasTemporalConflict(p fleet.Pilot, candidate fleet.Mission, missions []fleet.Mission) bool {
	if !p.Assigned() {
		return false
	}
	assigned, ok := fleet.FindMission(missions, p.CurrentAssignment)
	if !ok {
		return false
	}
	return fleet.MissionsOverlap(candidate, assigned)
}
