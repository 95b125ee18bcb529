package replan

import (
	"reflect"
	"testing"

	"github.com/example/skyops/internal/core/fleet"
)

func TestPlan_NoElevatedMissions(t *testing.T) {
	missions := []fleet.Mission{
		{ID: "PRJ001", Priority: "Standard"},
		{ID: "PRJ002", Priority: "Low"},
	}

	got := Plan(missions, nil, nil)
	want := []string{"No urgent or high-priority missions found."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Plan = %v, want %v", got, want)
	}
}

func TestPlan_CoverableMissionSkipped(t *testing.T) {
	missions := []fleet.Mission{
		{ID: "PRJ001", Location: "Mumbai", RequiredSkill: "Mapping", RequiredCert: "DGCA", StartDate: "2024-01-01", EndDate: "2024-01-10", Priority: "Urgent"},
	}
	pilots := []fleet.Pilot{
		{ID: "P001", Name: "Arjun", Skills: fleet.ParseTags("Mapping"), Certifications: fleet.ParseTags("DGCA"), Location: "Mumbai", Status: "Available", CurrentAssignment: "–"},
	}
	drones := []fleet.Drone{
		{ID: "D001", Capabilities: fleet.ParseTags("RGB"), Status: "Available", Location: "Mumbai", CurrentAssignment: "–"},
	}

	if got := Plan(missions, pilots, drones); len(got) != 0 {
		t.Errorf("Plan = %v, want empty (mission is coverable)", got)
	}
}

func TestPlan_ProposesPilotFromLowerPriorityMission(t *testing.T) {
	missions := []fleet.Mission{
		{ID: "PRJ001", Location: "Mumbai", RequiredSkill: "Mapping", RequiredCert: "DGCA", StartDate: "2024-01-01", EndDate: "2024-01-10", Priority: "Urgent"},
		{ID: "PRJ002", Location: "Delhi", RequiredSkill: "Survey", RequiredCert: "DGCA", StartDate: "2024-02-01", EndDate: "2024-02-10", Priority: "Low"},
	}
	// Nobody available in Mumbai, so PRJ001 is uncoverable.
	pilots := []fleet.Pilot{
		{ID: "P001", Name: "Meera", Skills: fleet.ParseTags("Survey"), Certifications: fleet.ParseTags("DGCA"), Location: "Delhi", Status: "Assigned", CurrentAssignment: "PRJ002"},
	}

	got := Plan(missions, pilots, nil)
	want := []string{"Consider reassigning pilot Meera from PRJ002 to urgent mission PRJ001."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Plan = %v, want %v", got, want)
	}
}

func TestPlan_MissionMajorCandidateOrder(t *testing.T) {
	missions := []fleet.Mission{
		{ID: "PRJ001", Location: "Mumbai", RequiredSkill: "Mapping", RequiredCert: "DGCA", Priority: "High"},
		{ID: "PRJ002", Priority: "Standard"},
		{ID: "PRJ003", Priority: "Low"},
	}
	// P002 appears first in the roster but is assigned to the later-listed
	// PRJ003; the scan is mission-major, so PRJ002's pilot wins.
	pilots := []fleet.Pilot{
		{ID: "P002", Name: "Kiran", Status: "Assigned", CurrentAssignment: "PRJ003"},
		{ID: "P003", Name: "Divya", Status: "Assigned", CurrentAssignment: "PRJ002"},
	}

	got := Plan(missions, pilots, nil)
	want := []string{"Consider reassigning pilot Divya from PRJ002 to urgent mission PRJ001."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Plan = %v, want %v", got, want)
	}
}

func TestPlan_NoReassignablePilot(t *testing.T) {
	missions := []fleet.Mission{
		{ID: "PRJ001", Location: "Mumbai", RequiredSkill: "Mapping", RequiredCert: "DGCA", Priority: "Urgent"},
	}

	got := Plan(missions, nil, nil)
	want := []string{"No reassignable pilots found for urgent mission PRJ001."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Plan = %v, want %v", got, want)
	}
}

func TestPlan_DronesNeverProposed(t *testing.T) {
	// An idle drone sits on a Low mission, but the planner only ever moves
	// pilots; the drone must not appear in any proposal.
	missions := []fleet.Mission{
		{ID: "PRJ001", Location: "Mumbai", RequiredSkill: "Mapping", RequiredCert: "DGCA", Priority: "Urgent"},
		{ID: "PRJ002", Location: "Delhi", RequiredSkill: "Survey", RequiredCert: "DGCA", Priority: "Low"},
	}
	drones := []fleet.Drone{
		{ID: "D001", Capabilities: fleet.ParseTags("RGB"), Status: "Assigned", Location: "Delhi", CurrentAssignment: "PRJ002"},
	}

	got := Plan(missions, nil, drones)
	want := []string{"No reassignable pilots found for urgent mission PRJ001."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Plan = %v, want %v", got, want)
	}
}
