package csvfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/example/skyops/internal/ports/secondary"
)

func TestReadPilots_Missing(t *testing.T) {
	records, found, err := ReadPilots(t.TempDir())
	if err != nil {
		t.Fatalf("ReadPilots: %v", err)
	}
	if found {
		t.Error("found = true for missing file")
	}
	if records != nil {
		t.Errorf("records = %v, want nil", records)
	}
}

func TestWriteAndReadPilots_Roundtrip(t *testing.T) {
	dir := t.TempDir()

	in := []*secondary.PilotRecord{
		{ID: "P001", Name: "Arjun", Skills: "Mapping, Survey", Certifications: "DGCA", Location: "Mumbai", Status: "Available", CurrentAssignment: "–", AvailableFrom: "2024-01-01"},
		{ID: "P002", Name: "Meera", Skills: "Thermal", Certifications: "DGCA, Night Ops", Location: "Bangalore", Status: "Assigned", CurrentAssignment: "PRJ003", AvailableFrom: ""},
	}
	if err := WritePilots(dir, in); err != nil {
		t.Fatalf("WritePilots: %v", err)
	}

	out, found, err := ReadPilots(dir)
	if err != nil {
		t.Fatalf("ReadPilots: %v", err)
	}
	if !found {
		t.Fatal("found = false after write")
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].CurrentAssignment != "–" {
		t.Errorf("en dash sentinel lost: %q", out[0].CurrentAssignment)
	}
	if out[1].Certifications != "DGCA, Night Ops" {
		t.Errorf("comma-bearing field lost: %q", out[1].Certifications)
	}
}

func TestReadPilots_MissingAndUnknownColumns(t *testing.T) {
	dir := t.TempDir()

	// No status column, plus an extra column that should be ignored.
	csv := "pilot_id,name,location,favourite_colour\nP001,Arjun,Mumbai,blue\n"
	if err := os.WriteFile(filepath.Join(dir, PilotRosterFile), []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}

	records, found, err := ReadPilots(dir)
	if err != nil {
		t.Fatalf("ReadPilots: %v", err)
	}
	if !found || len(records) != 1 {
		t.Fatalf("found=%v len=%d", found, len(records))
	}
	if records[0].Status != "" {
		t.Errorf("Status = %q, want empty for missing column", records[0].Status)
	}
	if records[0].Name != "Arjun" {
		t.Errorf("Name = %q", records[0].Name)
	}
}

func TestReadPilots_HeaderOnly(t *testing.T) {
	dir := t.TempDir()
	csv := "pilot_id,name,skills,certifications,location,status,current_assignment,available_from\n"
	if err := os.WriteFile(filepath.Join(dir, PilotRosterFile), []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}

	records, found, err := ReadPilots(dir)
	if err != nil {
		t.Fatalf("ReadPilots: %v", err)
	}
	if !found {
		t.Error("found = false for header-only file")
	}
	if len(records) != 0 {
		t.Errorf("len = %d, want 0", len(records))
	}
}

func TestWriteAndReadDrones_Roundtrip(t *testing.T) {
	dir := t.TempDir()

	in := []*secondary.DroneRecord{
		{ID: "D001", Model: "DJI Matrice 350", Capabilities: "RGB, Thermal", Status: "Available", Location: "Mumbai", CurrentAssignment: "–", MaintenanceDue: "2024-06-01"},
	}
	if err := WriteDrones(dir, in); err != nil {
		t.Fatalf("WriteDrones: %v", err)
	}

	out, found, err := ReadDrones(dir)
	if err != nil || !found {
		t.Fatalf("ReadDrones: found=%v err=%v", found, err)
	}
	if len(out) != 1 || out[0].Model != "DJI Matrice 350" || out[0].Capabilities != "RGB, Thermal" {
		t.Errorf("got %+v", out)
	}
}

func TestWriteAndReadMissions_Roundtrip(t *testing.T) {
	dir := t.TempDir()

	in := []*secondary.MissionRecord{
		{ID: "PRJ001", Client: "AgriCo", Location: "Mumbai", RequiredSkill: "Mapping", RequiredCert: "DGCA", StartDate: "2024-03-01", EndDate: "2024-03-10", Priority: "High"},
	}
	if err := WriteMissions(dir, in); err != nil {
		t.Fatalf("WriteMissions: %v", err)
	}

	out, found, err := ReadMissions(dir)
	if err != nil || !found {
		t.Fatalf("ReadMissions: found=%v err=%v", found, err)
	}
	if len(out) != 1 || out[0].RequiredSkill != "Mapping" || out[0].Priority != "High" {
		t.Errorf("got %+v", out)
	}
}

func TestWritePilots_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "csv")

	if err := WritePilots(dir, nil); err != nil {
		t.Fatalf("WritePilots: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, PilotRosterFile)); err != nil {
		t.Errorf("file not created: %v", err)
	}
}
