package app

import (
	"context"
	"fmt"

	"github.com/example/skyops/internal/core/fleet"
	"github.com/example/skyops/internal/ports/secondary"
)

// In-memory repositories backing service tests. Slices preserve insertion
// order the way the SQLite adapters do.

type memPilotRepo struct {
	records []*secondary.PilotRecord
}

func (m *memPilotRepo) Create(_ context.Context, pilot *secondary.PilotRecord) error {
	if pilot.ID == "" {
		return fmt.Errorf("pilot ID must be pre-populated")
	}
	copied := *pilot
	m.records = append(m.records, &copied)
	return nil
}

func (m *memPilotRepo) GetByID(_ context.Context, id string) (*secondary.PilotRecord, error) {
	for _, r := range m.records {
		if r.ID == id {
			copied := *r
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("pilot %s not found", id)
}

func (m *memPilotRepo) List(_ context.Context) ([]*secondary.PilotRecord, error) {
	out := make([]*secondary.PilotRecord, 0, len(m.records))
	for _, r := range m.records {
		copied := *r
		out = append(out, &copied)
	}
	return out, nil
}

func (m *memPilotRepo) Update(_ context.Context, pilot *secondary.PilotRecord) error {
	for i, r := range m.records {
		if r.ID == pilot.ID {
			copied := *pilot
			m.records[i] = &copied
			return nil
		}
	}
	return fmt.Errorf("pilot %s not found", pilot.ID)
}

func (m *memPilotRepo) UpdateStatus(_ context.Context, id, status string) error {
	for _, r := range m.records {
		if r.ID == id {
			r.Status = status
			return nil
		}
	}
	return fmt.Errorf("pilot %s not found", id)
}

func (m *memPilotRepo) SetAssignment(_ context.Context, id, assignment, status string) error {
	for _, r := range m.records {
		if r.ID == id {
			r.CurrentAssignment = assignment
			r.Status = status
			return nil
		}
	}
	return fmt.Errorf("pilot %s not found", id)
}

func (m *memPilotRepo) GetNextID(_ context.Context) (string, error) {
	return fleet.GeneratePilotID(len(m.records)), nil
}

type memDroneRepo struct {
	records []*secondary.DroneRecord
}

func (m *memDroneRepo) Create(_ context.Context, drone *secondary.DroneRecord) error {
	if drone.ID == "" {
		return fmt.Errorf("drone ID must be pre-populated")
	}
	copied := *drone
	m.records = append(m.records, &copied)
	return nil
}

func (m *memDroneRepo) GetByID(_ context.Context, id string) (*secondary.DroneRecord, error) {
	for _, r := range m.records {
		if r.ID == id {
			copied := *r
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("drone %s not found", id)
}

func (m *memDroneRepo) List(_ context.Context) ([]*secondary.DroneRecord, error) {
	out := make([]*secondary.DroneRecord, 0, len(m.records))
	for _, r := range m.records {
		copied := *r
		out = append(out, &copied)
	}
	return out, nil
}

func (m *memDroneRepo) Update(_ context.Context, drone *secondary.DroneRecord) error {
	for i, r := range m.records {
		if r.ID == drone.ID {
			copied := *drone
			m.records[i] = &copied
			return nil
		}
	}
	return fmt.Errorf("drone %s not found", drone.ID)
}

func (m *memDroneRepo) UpdateStatus(_ context.Context, id, status string) error {
	for _, r := range m.records {
		if r.ID == id {
			r.Status = status
			return nil
		}
	}
	return fmt.Errorf("drone %s not found", id)
}

func (m *memDroneRepo) SetAssignment(_ context.Context, id, assignment, status string) error {
	for _, r := range m.records {
		if r.ID == id {
			r.CurrentAssignment = assignment
			r.Status = status
			return nil
		}
	}
	return fmt.Errorf("drone %s not found", id)
}

func (m *memDroneRepo) GetNextID(_ context.Context) (string, error) {
	return fleet.GenerateDroneID(len(m.records)), nil
}

type memMissionRepo struct {
	records []*secondary.MissionRecord
}

func (m *memMissionRepo) Create(_ context.Context, mission *secondary.MissionRecord) error {
	if mission.ID == "" {
		return fmt.Errorf("mission ID must be pre-populated")
	}
	copied := *mission
	m.records = append(m.records, &copied)
	return nil
}

func (m *memMissionRepo) GetByID(_ context.Context, id string) (*secondary.MissionRecord, error) {
	for _, r := range m.records {
		if r.ID == id {
			copied := *r
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("mission %s not found", id)
}

func (m *memMissionRepo) List(_ context.Context) ([]*secondary.MissionRecord, error) {
	out := make([]*secondary.MissionRecord, 0, len(m.records))
	for _, r := range m.records {
		copied := *r
		out = append(out, &copied)
	}
	return out, nil
}

func (m *memMissionRepo) Update(_ context.Context, mission *secondary.MissionRecord) error {
	for i, r := range m.records {
		if r.ID == mission.ID {
			copied := *mission
			m.records[i] = &copied
			return nil
		}
	}
	return fmt.Errorf("mission %s not found", mission.ID)
}

func (m *memMissionRepo) GetNextID(_ context.Context) (string, error) {
	return fleet.GenerateProjectID(len(m.records)), nil
}

type memActivityRepo struct {
	entries []*secondary.ActivityRecord
}

func (m *memActivityRepo) Append(_ context.Context, entry *secondary.ActivityRecord) error {
	copied := *entry
	copied.ID = int64(len(m.entries) + 1)
	m.entries = append(m.entries, &copied)
	return nil
}

func (m *memActivityRepo) Recent(_ context.Context, limit int) ([]*secondary.ActivityRecord, error) {
	var out []*secondary.ActivityRecord
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		copied := *m.entries[i]
		out = append(out, &copied)
	}
	return out, nil
}

var (
	_ secondary.PilotRepository       = (*memPilotRepo)(nil)
	_ secondary.DroneRepository       = (*memDroneRepo)(nil)
	_ secondary.MissionRepository     = (*memMissionRepo)(nil)
	_ secondary.ActivityLogRepository = (*memActivityRepo)(nil)
)

// seedRepos loads the standard demo fleet used across service tests.
func seedRepos() (*memPilotRepo, *memDroneRepo, *memMissionRepo, *memActivityRepo) {
	pilots := &memPilotRepo{records: []*secondary.PilotRecord{
		{ID: "P001", Name: "Arjun", Skills: "Mapping, Survey", Certifications: "DGCA", Location: "Mumbai", Status: "Available", CurrentAssignment: "–", AvailableFrom: "2024-01-01"},
		{ID: "P002", Name: "Meera", Skills: "Thermal", Certifications: "DGCA, Night Ops", Location: "Bangalore", Status: "Available", CurrentAssignment: "–", AvailableFrom: "2024-01-05"},
		{ID: "P003", Name: "Kiran", Skills: "Mapping", Certifications: "DGCA", Location: "Mumbai", Status: "Assigned", CurrentAssignment: "PRJ002", AvailableFrom: "2024-02-01"},
		{ID: "P004", Name: "Divya", Skills: "Inspection, Mapping", Certifications: "DGCA", Location: "Delhi", Status: "On Leave", CurrentAssignment: "–", AvailableFrom: "2024-03-01"},
	}}
	drones := &memDroneRepo{records: []*secondary.DroneRecord{
		{ID: "D001", Model: "DJI Matrice 350", Capabilities: "RGB, Thermal", Status: "Available", Location: "Mumbai", CurrentAssignment: "–", MaintenanceDue: "2024-06-01"},
		{ID: "D002", Model: "DJI Mavic 3E", Capabilities: "RGB", Status: "Assigned", Location: "Mumbai", CurrentAssignment: "PRJ002", MaintenanceDue: "2024-04-15"},
		{ID: "D003", Model: "Parrot Anafi USA", Capabilities: "Thermal", Status: "Maintenance", Location: "Bangalore", CurrentAssignment: "–", MaintenanceDue: "2024-02-20"},
	}}
	missions := &memMissionRepo{records: []*secondary.MissionRecord{
		{ID: "PRJ001", Client: "AgriCo", Location: "Mumbai", RequiredSkill: "Mapping", RequiredCert: "DGCA", StartDate: "2024-03-01", EndDate: "2024-03-10", Priority: "High"},
		{ID: "PRJ002", Client: "MetroRail", Location: "Mumbai", RequiredSkill: "Mapping", RequiredCert: "DGCA", StartDate: "2024-03-05", EndDate: "2024-03-15", Priority: "Standard"},
		{ID: "PRJ003", Client: "PowerGrid", Location: "Bangalore", RequiredSkill: "Thermal", RequiredCert: "Night Ops", StartDate: "2024-03-08", EndDate: "2024-03-12", Priority: "Urgent"},
	}}
	return pilots, drones, missions, &memActivityRepo{}
}
