// Package csvfile reads and writes the tabular interchange files used to
// move fleet data in and out of skyops. Column lookup is by header name,
// so files with extra columns or a different column order still load;
// missing columns come back as empty strings.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/skyops/internal/ports/secondary"
)

// Interchange file names inside the CSV directory.
const (
	PilotRosterFile = "pilot_roster.csv"
	DroneFleetFile  = "drone_fleet.csv"
	MissionsFile    = "missions.csv"
)

var pilotHeader = []string{"pilot_id", "name", "skills", "certifications", "location", "status", "current_assignment", "available_from"}
var droneHeader = []string{"drone_id", "model", "capabilities", "status", "location", "current_assignment", "maintenance_due"}
var missionHeader = []string{"project_id", "client", "location", "required_skills", "required_certs", "start_date", "end_date", "priority"}

// readTable loads a CSV file into header-keyed row maps.
// Returns (nil, false, nil) when the file does not exist.
func readTable(path string) ([]map[string]string, bool, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, true, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	if len(records) == 0 {
		return nil, true, nil
	}

	header := records[0]
	var rows []map[string]string
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, true, nil
}

func writeTable(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", filepath.Base(path), err)
	}
	return nil
}

// ReadPilots loads pilot records from dir/pilot_roster.csv.
// The found flag is false when the file is absent, which importers treat
// as "nothing to do" rather than an error.
func ReadPilots(dir string) (records []*secondary.PilotRecord, found bool, err error) {
	rows, found, err := readTable(filepath.Join(dir, PilotRosterFile))
	if err != nil || !found {
		return nil, found, err
	}

	for _, row := range rows {
		records = append(records, &secondary.PilotRecord{
			ID:                row["pilot_id"],
			Name:              row["name"],
			Skills:            row["skills"],
			Certifications:    row["certifications"],
			Location:          row["location"],
			Status:            row["status"],
			CurrentAssignment: row["current_assignment"],
			AvailableFrom:     row["available_from"],
		})
	}
	return records, true, nil
}

// ReadDrones loads drone records from dir/drone_fleet.csv.
func ReadDrones(dir string) (records []*secondary.DroneRecord, found bool, err error) {
	rows, found, err := readTable(filepath.Join(dir, DroneFleetFile))
	if err != nil || !found {
		return nil, found, err
	}

	for _, row := range rows {
		records = append(records, &secondary.DroneRecord{
			ID:                row["drone_id"],
			Model:             row["model"],
			Capabilities:      row["capabilities"],
			Status:            row["status"],
			Location:          row["location"],
			CurrentAssignment: row["current_assignment"],
			MaintenanceDue:    row["maintenance_due"],
		})
	}
	return records, true, nil
}

// ReadMissions loads mission records from dir/missions.csv.
func ReadMissions(dir string) (records []*secondary.MissionRecord, found bool, err error) {
	rows, found, err := readTable(filepath.Join(dir, MissionsFile))
	if err != nil || !found {
		return nil, found, err
	}

	for _, row := range rows {
		records = append(records, &secondary.MissionRecord{
			ID:            row["project_id"],
			Client:        row["client"],
			Location:      row["location"],
			RequiredSkill: row["required_skills"],
			RequiredCert:  row["required_certs"],
			StartDate:     row["start_date"],
			EndDate:       row["end_date"],
			Priority:      row["priority"],
		})
	}
	return records, true, nil
}

// WritePilots writes the roster to dir/pilot_roster.csv, creating dir if
// needed.
func WritePilots(dir string, records []*secondary.PilotRecord) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create csv dir: %w", err)
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.ID, r.Name, r.Skills, r.Certifications, r.Location, r.Status, r.CurrentAssignment, r.AvailableFrom})
	}
	return writeTable(filepath.Join(dir, PilotRosterFile), pilotHeader, rows)
}

// WriteDrones writes the fleet to dir/drone_fleet.csv.
func WriteDrones(dir string, records []*secondary.DroneRecord) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create csv dir: %w", err)
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.ID, r.Model, r.Capabilities, r.Status, r.Location, r.CurrentAssignment, r.MaintenanceDue})
	}
	return writeTable(filepath.Join(dir, DroneFleetFile), droneHeader, rows)
}

// WriteMissions writes the mission list to dir/missions.csv.
func WriteMissions(dir string, records []*secondary.MissionRecord) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create csv dir: %w", err)
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.ID, r.Client, r.Location, r.RequiredSkill, r.RequiredCert, r.StartDate, r.EndDate, r.Priority})
	}
	return writeTable(filepath.Join(dir, MissionsFile), missionHeader, rows)
}
