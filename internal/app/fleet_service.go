package app

import (
	"context"
	"fmt"

	"github.com/example/skyops/internal/core/fleet"
	"github.com/example/skyops/internal/core/roster"
	"github.com/example/skyops/internal/ports/primary"
	"github.com/example/skyops/internal/ports/secondary"
)

// FleetServiceImpl implements primary.FleetService.
type FleetServiceImpl struct {
	drones   secondary.DroneRepository
	activity secondary.ActivityLogRepository
}

// NewFleetService creates a new fleet service.
func NewFleetService(drones secondary.DroneRepository, activity secondary.ActivityLogRepository) *FleetServiceImpl {
	return &FleetServiceImpl{drones: drones, activity: activity}
}

// ListDrones returns drones matching the query, in fleet order.
func (s *FleetServiceImpl) ListDrones(ctx context.Context, query primary.DroneQuery) ([]*primary.Drone, error) {
	records, err := s.drones.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drones: %w", err)
	}

	byID := make(map[string]*secondary.DroneRecord, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}

	filtered := roster.FilterDrones(dronesFromRecords(records), roster.DroneFilter{
		Capability:    query.Capability,
		Location:      query.Location,
		AvailableOnly: !query.IncludeUnavailable,
	})

	result := make([]*primary.Drone, 0, len(filtered))
	for _, d := range filtered {
		result = append(result, droneDTO(byID[d.ID]))
	}
	return result, nil
}

// GetDrone retrieves a drone by ID.
func (s *FleetServiceImpl) GetDrone(ctx context.Context, droneID string) (*primary.Drone, error) {
	record, err := s.drones.GetByID(ctx, droneID)
	if err != nil {
		return nil, err
	}
	return droneDTO(record), nil
}

// AddDrone creates a drone with the next sequential ID.
func (s *FleetServiceImpl) AddDrone(ctx context.Context, req primary.AddDroneRequest) (*primary.AddDroneResponse, error) {
	if req.Model == "" {
		return nil, fmt.Errorf("drone model is required")
	}

	status := string(fleet.DroneAvailable)
	if req.Status != "" {
		parsed, ok := fleet.ParseDroneStatus(req.Status)
		if !ok {
			return nil, fmt.Errorf("invalid drone status: %q", req.Status)
		}
		status = string(parsed)
	}

	id, err := s.drones.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate drone ID: %w", err)
	}

	record := &secondary.DroneRecord{
		ID:                id,
		Model:             req.Model,
		Capabilities:      req.Capabilities,
		Status:            status,
		Location:          req.Location,
		CurrentAssignment: "-",
		MaintenanceDue:    req.MaintenanceDue,
	}
	if err := s.drones.Create(ctx, record); err != nil {
		return nil, err
	}

	if err := s.activity.Append(ctx, &secondary.ActivityRecord{
		Actor:    currentActor(),
		Action:   "drone-add",
		EntityID: id,
		Detail:   fmt.Sprintf("added drone %s", req.Model),
	}); err != nil {
		return nil, fmt.Errorf("failed to record activity: %w", err)
	}

	return &primary.AddDroneResponse{DroneID: id, Drone: droneDTO(record)}, nil
}

// UpdateDroneStatus sets a drone's status after validating it against the
// closed status set.
func (s *FleetServiceImpl) UpdateDroneStatus(ctx context.Context, droneID, status string) error {
	parsed, ok := fleet.ParseDroneStatus(status)
	if !ok {
		return fmt.Errorf("invalid drone status: %q", status)
	}

	if err := s.drones.UpdateStatus(ctx, droneID, string(parsed)); err != nil {
		return err
	}

	if err := s.activity.Append(ctx, &secondary.ActivityRecord{
		Actor:    currentActor(),
		Action:   "drone-status",
		EntityID: droneID,
		Detail:   fmt.Sprintf("set status to %s", parsed),
	}); err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}

	return nil
}

// Ensure FleetServiceImpl implements the interface
var _ primary.FleetService = (*FleetServiceImpl)(nil)
