package db

import (
	"database/sql"
	"fmt"
)

// SeedFixtures populates the database with a realistic demo fleet. The data
// exercises the interesting cases: overlapping mission dates, a drone in
// maintenance, an urgent mission with no local coverage, and the legacy
// en-dash spelling of "no assignment".
func SeedFixtures(database *sql.DB) error {
	pilots := []struct{ id, name, skills, certs, location, status, assignment, availableFrom string }{
		{"P001", "Arjun", "Mapping, Survey", "DGCA", "Mumbai", "Available", "–", "2024-01-01"},
		{"P002", "Meera", "Thermal", "DGCA, Night Ops", "Bangalore", "Available", "–", "2024-01-05"},
		{"P003", "Kiran", "Mapping", "DGCA", "Mumbai", "Assigned", "PRJ002", "2024-02-01"},
		{"P004", "Divya", "Inspection, Mapping", "DGCA", "Delhi", "On Leave", "–", "2024-03-01"},
		{"P005", "Ravi", "Survey", "DGCA", "Bangalore", "Available", "–", "2024-01-10"},
	}
	for _, p := range pilots {
		if _, err := database.Exec(
			"INSERT INTO pilots (id, name, skills, certifications, location, status, current_assignment, available_from) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			p.id, p.name, p.skills, p.certs, p.location, p.status, p.assignment, p.availableFrom,
		); err != nil {
			return fmt.Errorf("seed pilots: %w", err)
		}
	}

	drones := []struct{ id, model, capabilities, status, location, assignment, maintenanceDue string }{
		{"D001", "DJI Matrice 350", "RGB, Thermal", "Available", "Mumbai", "–", "2024-06-01"},
		{"D002", "DJI Mavic 3E", "RGB", "Assigned", "Mumbai", "PRJ002", "2024-04-15"},
		{"D003", "Parrot Anafi USA", "Thermal", "Maintenance", "Bangalore", "–", "2024-02-20"},
		{"D004", "DJI Mavic 3T", "RGB, Thermal", "Available", "Bangalore", "–", "2024-07-01"},
	}
	for _, d := range drones {
		if _, err := database.Exec(
			"INSERT INTO drones (id, model, capabilities, status, location, current_assignment, maintenance_due) VALUES (?, ?, ?, ?, ?, ?, ?)",
			d.id, d.model, d.capabilities, d.status, d.location, d.assignment, d.maintenanceDue,
		); err != nil {
			return fmt.Errorf("seed drones: %w", err)
		}
	}

	missions := []struct{ id, client, location, skill, cert, start, end, priority string }{
		{"PRJ001", "AgriCo", "Mumbai", "Mapping", "DGCA", "2024-03-01", "2024-03-10", "High"},
		{"PRJ002", "MetroRail", "Mumbai", "Mapping", "DGCA", "2024-03-05", "2024-03-15", "Standard"},
		{"PRJ003", "PowerGrid", "Bangalore", "Thermal", "Night Ops", "2024-03-08", "2024-03-12", "Urgent"},
		{"PRJ004", "PortTrust", "Chennai", "Survey", "DGCA", "2024-04-01", "2024-04-05", "Low"},
	}
	for _, m := range missions {
		if _, err := database.Exec(
			"INSERT INTO missions (id, client, location, required_skills, required_certs, start_date, end_date, priority) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			m.id, m.client, m.location, m.skill, m.cert, m.start, m.end, m.priority,
		); err != nil {
			return fmt.Errorf("seed missions: %w", err)
		}
	}

	return nil
}
