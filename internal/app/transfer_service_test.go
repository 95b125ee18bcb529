package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/skyops/internal/adapters/csvfile"
)

func TestTransferService_ExportThenImport(t *testing.T) {
	pilots, drones, missions, activity := seedRepos()
	svc := NewTransferService(pilots, drones, missions, activity)
	ctx := context.Background()
	dir := t.TempDir()

	summary, err := svc.ExportCSV(ctx, dir)
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	if summary.Pilots != 4 || summary.Drones != 3 || summary.Missions != 3 {
		t.Errorf("export summary = %+v", summary)
	}

	// Re-import into empty repositories.
	emptyPilots, emptyDrones, emptyMissions, emptyActivity := &memPilotRepo{}, &memDroneRepo{}, &memMissionRepo{}, &memActivityRepo{}
	importSvc := NewTransferService(emptyPilots, emptyDrones, emptyMissions, emptyActivity)

	summary, err = importSvc.ImportCSV(ctx, dir)
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if summary.Pilots != 4 || summary.Drones != 3 || summary.Missions != 3 {
		t.Errorf("import summary = %+v", summary)
	}

	pilot, err := emptyPilots.GetByID(ctx, "P003")
	if err != nil {
		t.Fatalf("GetByID after import: %v", err)
	}
	if pilot.CurrentAssignment != "PRJ002" {
		t.Errorf("CurrentAssignment = %q, want PRJ002", pilot.CurrentAssignment)
	}
}

func TestTransferService_Import_UpsertsExisting(t *testing.T) {
	pilots, drones, missions, activity := seedRepos()
	svc := NewTransferService(pilots, drones, missions, activity)
	ctx := context.Background()
	dir := t.TempDir()

	csv := "pilot_id,name,skills,certifications,location,status,current_assignment,available_from\n" +
		"P001,Arjun,\"Mapping, Survey, Thermal\",DGCA,Pune,Available,-,2024-02-01\n"
	if err := os.WriteFile(filepath.Join(dir, csvfile.PilotRosterFile), []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}

	summary, err := svc.ImportCSV(ctx, dir)
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if summary.Pilots != 1 || summary.Drones != 0 || summary.Missions != 0 {
		t.Errorf("summary = %+v", summary)
	}

	pilot, _ := pilots.GetByID(ctx, "P001")
	if pilot.Location != "Pune" || pilot.Skills != "Mapping, Survey, Thermal" {
		t.Errorf("pilot after upsert: %+v", pilot)
	}
	if len(pilots.records) != 4 {
		t.Errorf("pilot count = %d, want 4 (update not insert)", len(pilots.records))
	}
}

func TestTransferService_Import_MissingFilesSkipped(t *testing.T) {
	pilots, drones, missions, activity := seedRepos()
	svc := NewTransferService(pilots, drones, missions, activity)

	summary, err := svc.ImportCSV(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if summary.Pilots != 0 || summary.Drones != 0 || summary.Missions != 0 {
		t.Errorf("summary = %+v, want zeros", summary)
	}
}

func TestTransferService_Import_SkipsRowsWithoutID(t *testing.T) {
	pilots, drones, missions, activity := seedRepos()
	svc := NewTransferService(pilots, drones, missions, activity)
	dir := t.TempDir()

	csv := "pilot_id,name\n,Nameless\nP009,Named\n"
	if err := os.WriteFile(filepath.Join(dir, csvfile.PilotRosterFile), []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}

	summary, err := svc.ImportCSV(context.Background(), dir)
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if summary.Pilots != 1 {
		t.Errorf("Pilots = %d, want 1", summary.Pilots)
	}
}

func TestActivityService_Recent(t *testing.T) {
	pilots, _, _, activity := seedRepos()
	roster := NewRosterService(pilots, activity)
	svc := NewActivityService(activity)
	ctx := context.Background()

	if err := roster.UpdatePilotStatus(ctx, "P001", "On Leave"); err != nil {
		t.Fatalf("UpdatePilotStatus: %v", err)
	}
	if err := roster.UpdatePilotStatus(ctx, "P002", "Unavailable"); err != nil {
		t.Fatalf("UpdatePilotStatus: %v", err)
	}

	entries, err := svc.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	// Newest first.
	if entries[0].EntityID != "P002" {
		t.Errorf("entries[0].EntityID = %q, want P002", entries[0].EntityID)
	}
}
