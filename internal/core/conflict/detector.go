// Package conflict contains the pure assignment-consistency checks. This is
// part of the Functional Core - no I/O, no mutation, deterministic output.
package conflict

import (
	"fmt"

	"github.com/example/skyops/internal/core/fleet"
)

// Kind classifies a detected conflict.
type Kind string

const (
	KindUnknownMission    Kind = "unknown_mission"
	KindMissingSkill      Kind = "missing_skill"
	KindMissingCert       Kind = "missing_cert"
	KindLocationMismatch  Kind = "location_mismatch"
	KindMaintenance       Kind = "maintenance_assigned"
	KindMissingCapability Kind = "missing_capability"
	KindOverlap           Kind = "overlapping_bookings"
	KindColocation        Kind = "pilot_drone_split"
)

// Conflict is one detected inconsistency between an entity's current
// assignment and the constraints that assignment implies.
type Conflict struct {
	Kind        Kind
	PilotID     string
	DroneID     string
	ProjectID   string
	Description string
}

// Describe flattens conflicts to their human-readable descriptions.
func Describe(conflicts []Conflict) []string {
	lines := make([]string, len(conflicts))
	for i, c := range conflicts {
		lines[i] = c.Description
	}
	return lines
}

// Detect scans all current assignments for rule violations. It re-derives
// conflicts from the data rather than trusting the status fields: a pilot
// marked Assigned with no assignment generates nothing, and a pilot marked
// Available with a bad assignment is still reported.
//
// Output order is deterministic: pilot integrity, drone integrity, overlap,
// colocation - entity listing order within each phase. A single entity may
// generate multiple conflicts. An empty result means a consistent dataset,
// not an error.
func Detect(pilots []fleet.Pilot, drones []fleet.Drone, missions []fleet.Mission) []Conflict {
	index := fleet.IndexMissions(missions)

	var conflicts []Conflict
	conflicts = append(conflicts, pilotIntegrity(pilots, index)...)
	conflicts = append(conflicts, droneIntegrity(drones, index)...)
	conflicts = append(conflicts, overlapConflicts(pilots, missions, index)...)
	conflicts = append(conflicts, colocationConflicts(pilots, drones)...)
	return conflicts
}

func pilotIntegrity(pilots []fleet.Pilot, index map[string]fleet.Mission) []Conflict {
	var conflicts []Conflict
	for _, p := range pilots {
		if !p.Assigned() {
			continue
		}
		mission, ok := index[p.CurrentAssignment]
		if !ok {
			conflicts = append(conflicts, Conflict{
				Kind:        KindUnknownMission,
				PilotID:     p.ID,
				ProjectID:   p.CurrentAssignment,
				Description: fmt.Sprintf("Pilot %s assigned to unknown mission %s.", p.Name, p.CurrentAssignment),
			})
			continue
		}
		if !p.Skills.Contains(mission.RequiredSkill) {
			conflicts = append(conflicts, Conflict{
				Kind:        KindMissingSkill,
				PilotID:     p.ID,
				ProjectID:   mission.ID,
				Description: fmt.Sprintf("Pilot %s lacks required skill for %s.", p.Name, mission.ID),
			})
		}
		if !p.Certifications.Contains(mission.RequiredCert) {
			conflicts = append(conflicts, Conflict{
				Kind:        KindMissingCert,
				PilotID:     p.ID,
				ProjectID:   mission.ID,
				Description: fmt.Sprintf("Pilot %s lacks required certs for %s.", p.Name, mission.ID),
			})
		}
		if !fleet.EqualLocation(p.Location, mission.Location) {
			conflicts = append(conflicts, Conflict{
				Kind:        KindLocationMismatch,
				PilotID:     p.ID,
				ProjectID:   mission.ID,
				Description: fmt.Sprintf("Pilot %s location mismatch for %s.", p.Name, mission.ID),
			})
		}
	}
	return conflicts
}

func droneIntegrity(drones []fleet.Drone, index map[string]fleet.Mission) []Conflict {
	var conflicts []Conflict
	for _, d := range drones {
		if !d.Assigned() {
			continue
		}
		mission, ok := index[d.CurrentAssignment]
		if !ok {
			conflicts = append(conflicts, Conflict{
				Kind:        KindUnknownMission,
				DroneID:     d.ID,
				ProjectID:   d.CurrentAssignment,
				Description: fmt.Sprintf("Drone %s assigned to unknown mission %s.", d.ID, d.CurrentAssignment),
			})
			continue
		}
		if d.Status.Is(fleet.DroneMaintenance) {
			conflicts = append(conflicts, Conflict{
				Kind:        KindMaintenance,
				DroneID:     d.ID,
				ProjectID:   mission.ID,
				Description: fmt.Sprintf("Drone %s is in maintenance but assigned to %s.", d.ID, mission.ID),
			})
		}
		if !fleet.EqualLocation(d.Location, mission.Location) {
			conflicts = append(conflicts, Conflict{
				Kind:        KindLocationMismatch,
				DroneID:     d.ID,
				ProjectID:   mission.ID,
				Description: fmt.Sprintf("Drone %s location mismatch for %s.", d.ID, mission.ID),
			})
		}
		if !d.Capabilities.Contains(fleet.RequiredCapability(mission.RequiredSkill)) {
			conflicts = append(conflicts, Conflict{
				Kind:        KindMissingCapability,
				DroneID:     d.ID,
				ProjectID:   mission.ID,
				Description: fmt.Sprintf("Drone %s lacks capability for %s.", d.ID, mission.ID),
			})
		}
	}
	return conflicts
}

// overlapConflicts reports, per pilot, the first other mission whose dates
// overlap the pilot's assigned mission. One conflict per pilot at most.
func overlapConflicts(pilots []fleet.Pilot, missions []fleet.Mission, index map[string]fleet.Mission) []Conflict {
	var conflicts []Conflict
	for _, p := range pilots {
		if !p.Assigned() {
			continue
		}
		assigned, ok := index[p.CurrentAssignment]
		if !ok {
			continue
		}
		for _, other := range missions {
			if other.ID == assigned.ID {
				continue
			}
			if fleet.MissionsOverlap(assigned, other) {
				conflicts = append(conflicts, Conflict{
					Kind:        KindOverlap,
					PilotID:     p.ID,
					ProjectID:   assigned.ID,
					Description: fmt.Sprintf("Pilot %s assigned to %s overlaps with %s.", p.Name, assigned.ID, other.ID),
				})
				break
			}
		}
	}
	return conflicts
}

// colocationConflicts pairs each assigned pilot with the drone holding the
// same assignment (last drone wins on duplicates) and reports split
// locations.
func colocationConflicts(pilots []fleet.Pilot, drones []fleet.Drone) []Conflict {
	droneByAssignment := make(map[string]fleet.Drone)
	for _, d := range drones {
		if d.Assigned() {
			droneByAssignment[d.CurrentAssignment] = d
		}
	}

	var conflicts []Conflict
	for _, p := range pilots {
		if !p.Assigned() {
			continue
		}
		d, ok := droneByAssignment[p.CurrentAssignment]
		if !ok {
			continue
		}
		if !fleet.EqualLocation(p.Location, d.Location) {
			conflicts = append(conflicts, Conflict{
				Kind:        KindColocation,
				PilotID:     p.ID,
				DroneID:     d.ID,
				ProjectID:   p.CurrentAssignment,
				Description: fmt.Sprintf("Pilot %s and drone %s are in different locations for %s.", p.Name, d.ID, p.CurrentAssignment),
			})
		}
	}
	return conflicts
}
