// Package app contains the application services that implement the primary
// ports. Services load records, hand them to the functional core, and
// persist the results; no matching or conflict logic lives here.
package app

import (
	"github.com/example/skyops/internal/core/fleet"
	"github.com/example/skyops/internal/ports/primary"
	"github.com/example/skyops/internal/ports/secondary"
)

// pilotFromRecord builds the core view of a stored pilot. Tag cells are
// parsed here so the core only ever sees structured sets.
func pilotFromRecord(r *secondary.PilotRecord) fleet.Pilot {
	return fleet.Pilot{
		ID:                r.ID,
		Name:              r.Name,
		Skills:            fleet.ParseTags(r.Skills),
		Certifications:    fleet.ParseTags(r.Certifications),
		Location:          r.Location,
		Status:            fleet.PilotStatus(r.Status),
		CurrentAssignment: r.CurrentAssignment,
		AvailableFrom:     r.AvailableFrom,
	}
}

func droneFromRecord(r *secondary.DroneRecord) fleet.Drone {
	return fleet.Drone{
		ID:                r.ID,
		Model:             r.Model,
		Capabilities:      fleet.ParseTags(r.Capabilities),
		Status:            fleet.DroneStatus(r.Status),
		Location:          r.Location,
		CurrentAssignment: r.CurrentAssignment,
		MaintenanceDue:    r.MaintenanceDue,
	}
}

func missionFromRecord(r *secondary.MissionRecord) fleet.Mission {
	return fleet.Mission{
		ID:            r.ID,
		Client:        r.Client,
		Location:      r.Location,
		RequiredSkill: r.RequiredSkill,
		RequiredCert:  r.RequiredCert,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Priority:      fleet.Priority(r.Priority),
	}
}

func pilotsFromRecords(records []*secondary.PilotRecord) []fleet.Pilot {
	pilots := make([]fleet.Pilot, 0, len(records))
	for _, r := range records {
		pilots = append(pilots, pilotFromRecord(r))
	}
	return pilots
}

func dronesFromRecords(records []*secondary.DroneRecord) []fleet.Drone {
	drones := make([]fleet.Drone, 0, len(records))
	for _, r := range records {
		drones = append(drones, droneFromRecord(r))
	}
	return drones
}

func missionsFromRecords(records []*secondary.MissionRecord) []fleet.Mission {
	missions := make([]fleet.Mission, 0, len(records))
	for _, r := range records {
		missions = append(missions, missionFromRecord(r))
	}
	return missions
}

// pilotDTO builds the caller-facing view from the stored record, preserving
// raw cell values.
func pilotDTO(r *secondary.PilotRecord) *primary.Pilot {
	return &primary.Pilot{
		ID:                r.ID,
		Name:              r.Name,
		Skills:            r.Skills,
		Certifications:    r.Certifications,
		Location:          r.Location,
		Status:            r.Status,
		CurrentAssignment: r.CurrentAssignment,
		AvailableFrom:     r.AvailableFrom,
	}
}

func droneDTO(r *secondary.DroneRecord) *primary.Drone {
	return &primary.Drone{
		ID:                r.ID,
		Model:             r.Model,
		Capabilities:      r.Capabilities,
		Status:            r.Status,
		Location:          r.Location,
		CurrentAssignment: r.CurrentAssignment,
		MaintenanceDue:    r.MaintenanceDue,
	}
}

func missionDTO(r *secondary.MissionRecord) *primary.Mission {
	return &primary.Mission{
		ID:            r.ID,
		Client:        r.Client,
		Location:      r.Location,
		RequiredSkill: r.RequiredSkill,
		RequiredCert:  r.RequiredCert,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Priority:      r.Priority,
	}
}

// pilotDTOFromCore renders a core pilot for callers. Tag sets serialize
// back to comma-joined cells.
func pilotDTOFromCore(p fleet.Pilot) *primary.Pilot {
	return &primary.Pilot{
		ID:                p.ID,
		Name:              p.Name,
		Skills:            p.Skills.String(),
		Certifications:    p.Certifications.String(),
		Location:          p.Location,
		Status:            string(p.Status),
		CurrentAssignment: p.CurrentAssignment,
		AvailableFrom:     p.AvailableFrom,
	}
}

func droneDTOFromCore(d fleet.Drone) *primary.Drone {
	return &primary.Drone{
		ID:                d.ID,
		Model:             d.Model,
		Capabilities:      d.Capabilities.String(),
		Status:            string(d.Status),
		Location:          d.Location,
		CurrentAssignment: d.CurrentAssignment,
		MaintenanceDue:    d.MaintenanceDue,
	}
}
