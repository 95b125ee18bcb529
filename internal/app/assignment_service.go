package app

import (
	"context"
	"fmt"

	"github.com/example/skyops/internal/core/assignment"
	"github.com/example/skyops/internal/core/conflict"
	"github.com/example/skyops/internal/core/fleet"
	"github.com/example/skyops/internal/core/replan"
	"github.com/example/skyops/internal/ports/primary"
	"github.com/example/skyops/internal/ports/secondary"
)

// AssignmentServiceImpl implements primary.AssignmentService.
type AssignmentServiceImpl struct {
	pilots   secondary.PilotRepository
	drones   secondary.DroneRepository
	missions secondary.MissionRepository
	activity secondary.ActivityLogRepository
}

// NewAssignmentService creates a new assignment service.
func NewAssignmentService(
	pilots secondary.PilotRepository,
	drones secondary.DroneRepository,
	missions secondary.MissionRepository,
	activity secondary.ActivityLogRepository,
) *AssignmentServiceImpl {
	return &AssignmentServiceImpl{pilots: pilots, drones: drones, missions: missions, activity: activity}
}

// loadFleet reads the full working set the core operates on.
func (s *AssignmentServiceImpl) loadFleet(ctx context.Context) ([]fleet.Pilot, []fleet.Drone, []fleet.Mission, error) {
	pilotRecords, err := s.pilots.List(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list pilots: %w", err)
	}
	droneRecords, err := s.drones.List(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list drones: %w", err)
	}
	missionRecords, err := s.missions.List(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list missions: %w", err)
	}
	return pilotsFromRecords(pilotRecords), dronesFromRecords(droneRecords), missionsFromRecords(missionRecords), nil
}

// Recommend matches the mission to the first eligible pilot and drone
// without persisting anything.
func (s *AssignmentServiceImpl) Recommend(ctx context.Context, projectID string) (*primary.AssignmentProposal, error) {
	pilots, drones, missions, err := s.loadFleet(ctx)
	if err != nil {
		return nil, err
	}

	rec := assignment.Recommend(projectID, pilots, drones, missions)

	proposal := &primary.AssignmentProposal{ProjectID: projectID, Issues: rec.Issues}
	if rec.Pilot != nil {
		proposal.Pilot = pilotDTOFromCore(*rec.Pilot)
	}
	if rec.Drone != nil {
		proposal.Drone = droneDTOFromCore(*rec.Drone)
	}
	return proposal, nil
}

// Assign recommends and, when the proposal is satisfiable, persists the
// assignment on both resources and records it in the activity log.
func (s *AssignmentServiceImpl) Assign(ctx context.Context, projectID string) (*primary.AssignmentResult, error) {
	pilots, drones, missions, err := s.loadFleet(ctx)
	if err != nil {
		return nil, err
	}

	rec := assignment.Recommend(projectID, pilots, drones, missions)
	applied := assignment.Apply(rec, projectID, pilots, drones)

	result := &primary.AssignmentResult{
		ProjectID: projectID,
		Issues:    rec.Issues,
		Applied:   applied.Applied,
	}
	if rec.Pilot != nil {
		result.Pilot = pilotDTOFromCore(*rec.Pilot)
	}
	if rec.Drone != nil {
		result.Drone = droneDTOFromCore(*rec.Drone)
	}
	if !applied.Applied {
		return result, nil
	}

	if err := s.pilots.SetAssignment(ctx, applied.PilotID, projectID, string(fleet.PilotAssigned)); err != nil {
		return nil, fmt.Errorf("failed to assign pilot: %w", err)
	}
	if err := s.drones.SetAssignment(ctx, applied.DroneID, projectID, string(fleet.DroneAssigned)); err != nil {
		return nil, fmt.Errorf("failed to assign drone: %w", err)
	}

	if err := s.activity.Append(ctx, &secondary.ActivityRecord{
		Actor:    currentActor(),
		Action:   "assign",
		EntityID: projectID,
		Detail:   fmt.Sprintf("assigned pilot %s and drone %s", applied.PilotID, applied.DroneID),
	}); err != nil {
		return nil, fmt.Errorf("failed to record activity: %w", err)
	}

	return result, nil
}

// Ensure AssignmentServiceImpl implements the interface
var _ primary.AssignmentService = (*AssignmentServiceImpl)(nil)

// ConflictServiceImpl implements primary.ConflictService.
type ConflictServiceImpl struct {
	pilots   secondary.PilotRepository
	drones   secondary.DroneRepository
	missions secondary.MissionRepository
}

// NewConflictService creates a new conflict service.
func NewConflictService(
	pilots secondary.PilotRepository,
	drones secondary.DroneRepository,
	missions secondary.MissionRepository,
) *ConflictServiceImpl {
	return &ConflictServiceImpl{pilots: pilots, drones: drones, missions: missions}
}

// DetectConflicts scans all current assignments and returns the conflict
// descriptions in detector order.
func (s *ConflictServiceImpl) DetectConflicts(ctx context.Context) ([]string, error) {
	pilotRecords, err := s.pilots.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pilots: %w", err)
	}
	droneRecords, err := s.drones.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drones: %w", err)
	}
	missionRecords, err := s.missions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}

	conflicts := conflict.Detect(
		pilotsFromRecords(pilotRecords),
		dronesFromRecords(droneRecords),
		missionsFromRecords(missionRecords),
	)
	return conflict.Describe(conflicts), nil
}

// Ensure ConflictServiceImpl implements the interface
var _ primary.ConflictService = (*ConflictServiceImpl)(nil)

// ReplanServiceImpl implements primary.ReplanService.
type ReplanServiceImpl struct {
	pilots   secondary.PilotRepository
	drones   secondary.DroneRepository
	missions secondary.MissionRepository
}

// NewReplanService creates a new replan service.
func NewReplanService(
	pilots secondary.PilotRepository,
	drones secondary.DroneRepository,
	missions secondary.MissionRepository,
) *ReplanServiceImpl {
	return &ReplanServiceImpl{pilots: pilots, drones: drones, missions: missions}
}

// UrgentReassignments returns the planner's proposal lines.
func (s *ReplanServiceImpl) UrgentReassignments(ctx context.Context) ([]string, error) {
	pilotRecords, err := s.pilots.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pilots: %w", err)
	}
	droneRecords, err := s.drones.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drones: %w", err)
	}
	missionRecords, err := s.missions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}

	return replan.Plan(
		missionsFromRecords(missionRecords),
		pilotsFromRecords(pilotRecords),
		dronesFromRecords(droneRecords),
	), nil
}

// Ensure ReplanServiceImpl implements the interface
var _ primary.ReplanService = (*ReplanServiceImpl)(nil)
