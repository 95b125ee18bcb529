package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/skyops/internal/core/fleet"
	"github.com/example/skyops/internal/ports/primary"
	"github.com/example/skyops/internal/ports/secondary"
)

// MissionServiceImpl implements primary.MissionService.
type MissionServiceImpl struct {
	missions secondary.MissionRepository
	pilots   secondary.PilotRepository
	drones   secondary.DroneRepository
	activity secondary.ActivityLogRepository
}

// NewMissionService creates a new mission service.
func NewMissionService(
	missions secondary.MissionRepository,
	pilots secondary.PilotRepository,
	drones secondary.DroneRepository,
	activity secondary.ActivityLogRepository,
) *MissionServiceImpl {
	return &MissionServiceImpl{missions: missions, pilots: pilots, drones: drones, activity: activity}
}

// ListMissions returns missions matching the query, in listing order.
func (s *MissionServiceImpl) ListMissions(ctx context.Context, query primary.MissionQuery) ([]*primary.Mission, error) {
	records, err := s.missions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}

	result := make([]*primary.Mission, 0, len(records))
	for _, r := range records {
		if query.Priority != "" && !fleet.Priority(r.Priority).Is(fleet.Priority(query.Priority)) {
			continue
		}
		result = append(result, missionDTO(r))
	}
	return result, nil
}

// GetMission retrieves a mission by project ID.
func (s *MissionServiceImpl) GetMission(ctx context.Context, projectID string) (*primary.Mission, error) {
	record, err := s.missions.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return missionDTO(record), nil
}

// AddMission creates a mission with the next sequential project ID.
// Dates and priority are validated here; the store itself tolerates legacy
// rows that predate validation.
func (s *MissionServiceImpl) AddMission(ctx context.Context, req primary.AddMissionRequest) (*primary.AddMissionResponse, error) {
	if req.Client == "" {
		return nil, fmt.Errorf("mission client is required")
	}
	if _, ok := fleet.ParseDate(req.StartDate); !ok {
		return nil, fmt.Errorf("invalid start date: %q", req.StartDate)
	}
	if _, ok := fleet.ParseDate(req.EndDate); !ok {
		return nil, fmt.Errorf("invalid end date: %q", req.EndDate)
	}

	priority := string(fleet.PriorityStandard)
	if req.Priority != "" {
		parsed, ok := fleet.ParsePriority(req.Priority)
		if !ok {
			return nil, fmt.Errorf("invalid priority: %q", req.Priority)
		}
		priority = string(parsed)
	}

	id, err := s.missions.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate project ID: %w", err)
	}

	record := &secondary.MissionRecord{
		ID:            id,
		Client:        req.Client,
		Location:      req.Location,
		RequiredSkill: req.RequiredSkill,
		RequiredCert:  req.RequiredCert,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Priority:      priority,
	}
	if err := s.missions.Create(ctx, record); err != nil {
		return nil, err
	}

	if err := s.activity.Append(ctx, &secondary.ActivityRecord{
		Actor:    currentActor(),
		Action:   "mission-add",
		EntityID: id,
		Detail:   fmt.Sprintf("added mission for %s", req.Client),
	}); err != nil {
		return nil, fmt.Errorf("failed to record activity: %w", err)
	}

	return &primary.AddMissionResponse{ProjectID: id, Mission: missionDTO(record)}, nil
}

// Resources returns the pilots and drones whose current assignment names
// the given mission. Assignment match is exact, the way the conflict
// detector reads it.
func (s *MissionServiceImpl) Resources(ctx context.Context, projectID string) (*primary.MissionResources, error) {
	if _, err := s.missions.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	pilotRecords, err := s.pilots.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pilots: %w", err)
	}
	droneRecords, err := s.drones.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drones: %w", err)
	}

	resources := &primary.MissionResources{ProjectID: projectID}
	for _, r := range pilotRecords {
		if !fleet.IsUnassigned(r.CurrentAssignment) && strings.TrimSpace(r.CurrentAssignment) == projectID {
			resources.Pilots = append(resources.Pilots, pilotDTO(r))
		}
	}
	for _, r := range droneRecords {
		if !fleet.IsUnassigned(r.CurrentAssignment) && strings.TrimSpace(r.CurrentAssignment) == projectID {
			resources.Drones = append(resources.Drones, droneDTO(r))
		}
	}

	return resources, nil
}

// Ensure MissionServiceImpl implements the interface
var _ primary.MissionService = (*MissionServiceImpl)(nil)
