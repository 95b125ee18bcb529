package fleet

import "strings"

// PilotStatus is a pilot roster status. Values loaded from external data keep
// their raw spelling; comparisons go through Is, which is case-insensitive, so
// an unrecognized value simply never matches any known status.
type PilotStatus string

const (
	PilotAvailable   PilotStatus = "Available"
	PilotOnLeave     PilotStatus = "On Leave"
	PilotUnavailable PilotStatus = "Unavailable"
	PilotAssigned    PilotStatus = "Assigned"
)

// PilotStatuses lists the closed set of valid pilot statuses.
var PilotStatuses = []PilotStatus{PilotAvailable, PilotOnLeave, PilotUnavailable, PilotAssigned}

// Is compares the status against a canonical value case-insensitively.
func (s PilotStatus) Is(canonical PilotStatus) bool {
	return strings.EqualFold(strings.TrimSpace(string(s)), string(canonical))
}

// ParsePilotStatus resolves user input to a canonical pilot status.
// Returns false for values outside the closed set; callers at the command
// boundary reject those instead of letting a typo become a silent no-op.
func ParsePilotStatus(input string) (PilotStatus, bool) {
	for _, s := range PilotStatuses {
		if s.Is(PilotStatus(input)) {
			return s, true
		}
	}
	return "", false
}

// DroneStatus is a drone fleet status.
type DroneStatus string

const (
	DroneAvailable   DroneStatus = "Available"
	DroneMaintenance DroneStatus = "Maintenance"
	DroneAssigned    DroneStatus = "Assigned"
)

// DroneStatuses lists the closed set of valid drone statuses.
var DroneStatuses = []DroneStatus{DroneAvailable, DroneMaintenance, DroneAssigned}

// Is compares the status against a canonical value case-insensitively.
func (s DroneStatus) Is(canonical DroneStatus) bool {
	return strings.EqualFold(strings.TrimSpace(string(s)), string(canonical))
}

// ParseDroneStatus resolves user input to a canonical drone status.
func ParseDroneStatus(input string) (DroneStatus, bool) {
	for _, s := range DroneStatuses {
		if s.Is(DroneStatus(input)) {
			return s, true
		}
	}
	return "", false
}

// Priority is a mission priority.
type Priority string

const (
	PriorityUrgent   Priority = "Urgent"
	PriorityHigh     Priority = "High"
	PriorityStandard Priority = "Standard"
	PriorityLow      Priority = "Low"
)

// Priorities lists the closed set of valid mission priorities.
var Priorities = []Priority{PriorityUrgent, PriorityHigh, PriorityStandard, PriorityLow}

// Is compares the priority against a canonical value case-insensitively.
func (p Priority) Is(canonical Priority) bool {
	return strings.EqualFold(strings.TrimSpace(string(p)), string(canonical))
}

// Elevated reports whether the priority calls for reassignment planning.
func (p Priority) Elevated() bool {
	return p.Is(PriorityUrgent) || p.Is(PriorityHigh)
}

// Preemptible reports whether resources on a mission of this priority may be
// proposed for reassignment to an elevated mission.
func (p Priority) Preemptible() bool {
	return p.Is(PriorityStandard) || p.Is(PriorityLow)
}

// ParsePriority resolves user input to a canonical priority.
func ParsePriority(input string) (Priority, bool) {
	for _, p := range Priorities {
		if p.Is(Priority(input)) {
			return p, true
		}
	}
	return "", false
}
