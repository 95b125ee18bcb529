package app

import (
	"context"
	"fmt"

	"github.com/example/skyops/internal/adapters/csvfile"
	"github.com/example/skyops/internal/ports/primary"
	"github.com/example/skyops/internal/ports/secondary"
)

// TransferServiceImpl implements primary.TransferService over the CSV
// interchange files.
type TransferServiceImpl struct {
	pilots   secondary.PilotRepository
	drones   secondary.DroneRepository
	missions secondary.MissionRepository
	activity secondary.ActivityLogRepository
}

// NewTransferService creates a new transfer service.
func NewTransferService(
	pilots secondary.PilotRepository,
	drones secondary.DroneRepository,
	missions secondary.MissionRepository,
	activity secondary.ActivityLogRepository,
) *TransferServiceImpl {
	return &TransferServiceImpl{pilots: pilots, drones: drones, missions: missions, activity: activity}
}

// ImportCSV upserts pilots, drones, and missions from CSV files in dir.
// A missing file skips that table; rows without an ID are skipped rather
// than rejected.
func (s *TransferServiceImpl) ImportCSV(ctx context.Context, dir string) (*primary.TransferSummary, error) {
	summary := &primary.TransferSummary{}

	pilots, found, err := csvfile.ReadPilots(dir)
	if err != nil {
		return nil, err
	}
	if found {
		for _, record := range pilots {
			if record.ID == "" {
				continue
			}
			if _, err := s.pilots.GetByID(ctx, record.ID); err != nil {
				err = s.pilots.Create(ctx, record)
			} else {
				err = s.pilots.Update(ctx, record)
			}
			if err != nil {
				return nil, fmt.Errorf("failed to import pilot %s: %w", record.ID, err)
			}
			summary.Pilots++
		}
	}

	drones, found, err := csvfile.ReadDrones(dir)
	if err != nil {
		return nil, err
	}
	if found {
		for _, record := range drones {
			if record.ID == "" {
				continue
			}
			if _, err := s.drones.GetByID(ctx, record.ID); err != nil {
				err = s.drones.Create(ctx, record)
			} else {
				err = s.drones.Update(ctx, record)
			}
			if err != nil {
				return nil, fmt.Errorf("failed to import drone %s: %w", record.ID, err)
			}
			summary.Drones++
		}
	}

	missions, found, err := csvfile.ReadMissions(dir)
	if err != nil {
		return nil, err
	}
	if found {
		for _, record := range missions {
			if record.ID == "" {
				continue
			}
			if _, err := s.missions.GetByID(ctx, record.ID); err != nil {
				err = s.missions.Create(ctx, record)
			} else {
				err = s.missions.Update(ctx, record)
			}
			if err != nil {
				return nil, fmt.Errorf("failed to import mission %s: %w", record.ID, err)
			}
			summary.Missions++
		}
	}

	if err := s.activity.Append(ctx, &secondary.ActivityRecord{
		Actor:    currentActor(),
		Action:   "import",
		EntityID: dir,
		Detail:   fmt.Sprintf("imported %d pilots, %d drones, %d missions", summary.Pilots, summary.Drones, summary.Missions),
	}); err != nil {
		return nil, fmt.Errorf("failed to record activity: %w", err)
	}

	return summary, nil
}

// ExportCSV writes the store's pilots, drones, and missions as CSV files
// into dir.
func (s *TransferServiceImpl) ExportCSV(ctx context.Context, dir string) (*primary.TransferSummary, error) {
	pilots, err := s.pilots.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pilots: %w", err)
	}
	drones, err := s.drones.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drones: %w", err)
	}
	missions, err := s.missions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}

	if err := csvfile.WritePilots(dir, pilots); err != nil {
		return nil, err
	}
	if err := csvfile.WriteDrones(dir, drones); err != nil {
		return nil, err
	}
	if err := csvfile.WriteMissions(dir, missions); err != nil {
		return nil, err
	}

	summary := &primary.TransferSummary{
		Pilots:   len(pilots),
		Drones:   len(drones),
		Missions: len(missions),
	}

	if err := s.activity.Append(ctx, &secondary.ActivityRecord{
		Actor:    currentActor(),
		Action:   "export",
		EntityID: dir,
		Detail:   fmt.Sprintf("exported %d pilots, %d drones, %d missions", summary.Pilots, summary.Drones, summary.Missions),
	}); err != nil {
		return nil, fmt.Errorf("failed to record activity: %w", err)
	}

	return summary, nil
}

// Ensure TransferServiceImpl implements the interface
var _ primary.TransferService = (*TransferServiceImpl)(nil)
