package assignment

import (
	"testing"

	"github.com/example/skyops/internal/core/fleet"
)

func TestApply_UpdatesCopiesNotInputs(t *testing.T) {
	pilots := testPilots()
	drones := testDrones()
	rec := Recommend("PRJ001", pilots, drones, testMissions())

	result := Apply(rec, "PRJ001", pilots, drones)

	if !result.Applied {
		t.Fatal("expected recommendation to be applied")
	}
	if result.PilotID != "P001" || result.DroneID != "D001" {
		t.Errorf("applied %s/%s, want P001/D001", result.PilotID, result.DroneID)
	}

	// Returned copies carry the assignment.
	if result.Pilots[0].CurrentAssignment != "PRJ001" || !result.Pilots[0].Status.Is(fleet.PilotAssigned) {
		t.Errorf("updated pilot = %+v", result.Pilots[0])
	}
	if result.Drones[0].CurrentAssignment != "PRJ001" || !result.Drones[0].Status.Is(fleet.DroneAssigned) {
		t.Errorf("updated drone = %+v", result.Drones[0])
	}

	// Inputs stay untouched.
	if pilots[0].CurrentAssignment != "–" || pilots[0].Status != "Available" {
		t.Errorf("input pilot mutated: %+v", pilots[0])
	}
	if drones[0].CurrentAssignment != "–" || drones[0].Status != "Available" {
		t.Errorf("input drone mutated: %+v", drones[0])
	}
}

func TestApply_BlockedByIssues(t *testing.T) {
	pilots := testPilots()
	drones := testDrones()
	rec := Recommendation{Issues: []string{IssueNoDrone}}

	result := Apply(rec, "PRJ001", pilots, drones)

	if result.Applied {
		t.Error("recommendation with issues must not be applied")
	}
	for i := range result.Pilots {
		if result.Pilots[i].CurrentAssignment != pilots[i].CurrentAssignment {
			t.Errorf("pilot %s changed despite blocked apply", result.Pilots[i].ID)
		}
	}
}

func TestApply_PartialRecommendationNotApplied(t *testing.T) {
	pilots := testPilots()
	p := pilots[0]
	rec := Recommendation{Pilot: &p}

	result := Apply(rec, "PRJ001", pilots, testDrones())

	if result.Applied {
		t.Error("partial recommendation must not be applied")
	}
}
