// Package fleet contains the shared entity model for the coordination engine.
// This is part of the Functional Core - no I/O, only plain values and pure
// functions over them.
package fleet

import "strings"

// Pilot is a member of the pilot roster.
type Pilot struct {
	ID                string
	Name              string
	Skills            TagSet
	Certifications    TagSet
	Location          string
	Status            PilotStatus
	CurrentAssignment string
	AvailableFrom     string
}

// Assigned reports whether the pilot currently holds a non-empty assignment.
func (p Pilot) Assigned() bool {
	return !IsUnassigned(p.CurrentAssignment)
}

// Drone is a unit of the drone fleet.
type Drone struct {
	ID                string
	Model             string
	Capabilities      TagSet
	Status            DroneStatus
	Location          string
	CurrentAssignment string
	MaintenanceDue    string
}

// Assigned reports whether the drone currently holds a non-empty assignment.
func (d Drone) Assigned() bool {
	return !IsUnassigned(d.CurrentAssignment)
}

// Mission is a time-boxed job with location and capability requirements.
// RequiredSkill and RequiredCert are scalar membership keys tested against
// the multi-valued pilot tag sets; a mission requires exactly one of each.
type Mission struct {
	ID            string
	Client        string
	Location      string
	RequiredSkill string
	RequiredCert  string
	StartDate     string
	EndDate       string
	Priority      Priority
}

// unassignedSpellings are the historical encodings of "no assignment" found in
// roster exports: empty cell, hyphen, en-dash, and a mis-encoded en-dash.
var unassignedSpellings = map[string]bool{
	"":    true,
	"-":   true,
	"–":   true,
	"â€–": true,
}

// IsUnassigned reports whether an assignment value means "no assignment".
// All components must use this predicate rather than comparing spellings
// themselves.
func IsUnassigned(assignment string) bool {
	return unassignedSpellings[strings.TrimSpace(assignment)]
}

// EqualLocation compares two place names case-insensitively, ignoring
// surrounding whitespace.
func EqualLocation(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// IndexMissions builds a lookup from project ID to mission. Later duplicates
// win, matching the tabular source where the last row is authoritative.
func IndexMissions(missions []Mission) map[string]Mission {
	index := make(map[string]Mission, len(missions))
	for _, m := range missions {
		index[m.ID] = m
	}
	return index
}

// FindMission returns the first mission with the given project ID.
// Absence is an expected state, not an error.
func FindMission(missions []Mission, projectID string) (Mission, bool) {
	for _, m := range missions {
		if m.ID == projectID {
			return m, true
		}
	}
	return Mission{}, false
}
