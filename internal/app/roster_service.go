package app

import (
	"context"
	"fmt"

	"github.com/example/skyops/internal/core/fleet"
	"github.com/example/skyops/internal/core/roster"
	"github.com/example/skyops/internal/ports/primary"
	"github.com/example/skyops/internal/ports/secondary"
)

// RosterServiceImpl implements primary.RosterService.
type RosterServiceImpl struct {
	pilots   secondary.PilotRepository
	activity secondary.ActivityLogRepository
}

// NewRosterService creates a new roster service.
func NewRosterService(pilots secondary.PilotRepository, activity secondary.ActivityLogRepository) *RosterServiceImpl {
	return &RosterServiceImpl{pilots: pilots, activity: activity}
}

// ListPilots returns pilots matching the query, in roster order.
func (s *RosterServiceImpl) ListPilots(ctx context.Context, query primary.PilotQuery) ([]*primary.Pilot, error) {
	records, err := s.pilots.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pilots: %w", err)
	}

	byID := make(map[string]*secondary.PilotRecord, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}

	filtered := roster.FilterPilots(pilotsFromRecords(records), roster.PilotFilter{
		Skill:         query.Skill,
		Cert:          query.Cert,
		Location:      query.Location,
		AvailableOnly: !query.IncludeUnavailable,
	})

	result := make([]*primary.Pilot, 0, len(filtered))
	for _, p := range filtered {
		result = append(result, pilotDTO(byID[p.ID]))
	}
	return result, nil
}

// GetPilot retrieves a pilot by ID.
func (s *RosterServiceImpl) GetPilot(ctx context.Context, pilotID string) (*primary.Pilot, error) {
	record, err := s.pilots.GetByID(ctx, pilotID)
	if err != nil {
		return nil, err
	}
	return pilotDTO(record), nil
}

// AddPilot creates a pilot with the next sequential ID.
func (s *RosterServiceImpl) AddPilot(ctx context.Context, req primary.AddPilotRequest) (*primary.AddPilotResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("pilot name is required")
	}

	status := string(fleet.PilotAvailable)
	if req.Status != "" {
		parsed, ok := fleet.ParsePilotStatus(req.Status)
		if !ok {
			return nil, fmt.Errorf("invalid pilot status: %q", req.Status)
		}
		status = string(parsed)
	}

	id, err := s.pilots.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate pilot ID: %w", err)
	}

	record := &secondary.PilotRecord{
		ID:                id,
		Name:              req.Name,
		Skills:            req.Skills,
		Certifications:    req.Certifications,
		Location:          req.Location,
		Status:            status,
		CurrentAssignment: "-",
		AvailableFrom:     req.AvailableFrom,
	}
	if err := s.pilots.Create(ctx, record); err != nil {
		return nil, err
	}

	if err := s.activity.Append(ctx, &secondary.ActivityRecord{
		Actor:    currentActor(),
		Action:   "pilot-add",
		EntityID: id,
		Detail:   fmt.Sprintf("added pilot %s", req.Name),
	}); err != nil {
		return nil, fmt.Errorf("failed to record activity: %w", err)
	}

	return &primary.AddPilotResponse{PilotID: id, Pilot: pilotDTO(record)}, nil
}

// UpdatePilotStatus sets a pilot's status after validating it against the
// closed status set.
func (s *RosterServiceImpl) UpdatePilotStatus(ctx context.Context, pilotID, status string) error {
	parsed, ok := fleet.ParsePilotStatus(status)
	if !ok {
		return fmt.Errorf("invalid pilot status: %q", status)
	}

	if err := s.pilots.UpdateStatus(ctx, pilotID, string(parsed)); err != nil {
		return err
	}

	if err := s.activity.Append(ctx, &secondary.ActivityRecord{
		Actor:    currentActor(),
		Action:   "pilot-status",
		EntityID: pilotID,
		Detail:   fmt.Sprintf("set status to %s", parsed),
	}); err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}

	return nil
}

// Ensure RosterServiceImpl implements the interface
var _ primary.RosterService = (*RosterServiceImpl)(nil)
