// Package roster contains the pure availability filter over pilots and
// drones. This is part of the Functional Core - no I/O, only pure functions.
package roster

import "github.com/example/skyops/internal/core/fleet"

// PilotFilter holds the optional predicates for a pilot search. Empty fields
// are not applied. AvailableOnly additionally requires status Available.
type PilotFilter struct {
	Skill         string
	Cert          string
	Location      string
	AvailableOnly bool
}

// DroneFilter holds the optional predicates for a drone search.
type DroneFilter struct {
	Capability    string
	Location      string
	AvailableOnly bool
}

// FilterPilots returns the pilots satisfying every provided predicate, in
// original collection order. An empty result is an expected state, not an
// error.
func FilterPilots(pilots []fleet.Pilot, f PilotFilter) []fleet.Pilot {
	var matches []fleet.Pilot
	for _, p := range pilots {
		if f.AvailableOnly && !p.Status.Is(fleet.PilotAvailable) {
			continue
		}
		if f.Skill != "" && !p.Skills.Contains(f.Skill) {
			continue
		}
		if f.Cert != "" && !p.Certifications.Contains(f.Cert) {
			continue
		}
		if f.Location != "" && !fleet.EqualLocation(p.Location, f.Location) {
			continue
		}
		matches = append(matches, p)
	}
	return matches
}

// FilterDrones returns the drones satisfying every provided predicate, in
// original collection order.
func FilterDrones(drones []fleet.Drone, f DroneFilter) []fleet.Drone {
	var matches []fleet.Drone
	for _, d := range drones {
		if f.AvailableOnly && !d.Status.Is(fleet.DroneAvailable) {
			continue
		}
		if f.Capability != "" && !d.Capabilities.Contains(f.Capability) {
			continue
		}
		if f.Location != "" && !fleet.EqualLocation(d.Location, f.Location) {
			continue
		}
		matches = append(matches, d)
	}
	return matches
}
