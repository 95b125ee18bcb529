package fleet

import "testing"

func TestIsUnassigned_Spellings(t *testing.T) {
	for _, v := range []string{"", "-", "–", "â€–", "  ", " - "} {
		if !IsUnassigned(v) {
			t.Errorf("IsUnassigned(%q) = false, want true", v)
		}
	}

	for _, v := range []string{"PRJ001", "prj001", "--"} {
		if IsUnassigned(v) {
			t.Errorf("IsUnassigned(%q) = true, want false", v)
		}
	}
}

func TestEqualLocation(t *testing.T) {
	if !EqualLocation("Mumbai", "mumbai") {
		t.Error("EqualLocation should be case-insensitive")
	}
	if !EqualLocation(" Mumbai ", "MUMBAI") {
		t.Error("EqualLocation should ignore surrounding whitespace")
	}
	if EqualLocation("Mumbai", "Delhi") {
		t.Error("EqualLocation matched different places")
	}
}

func TestFindMission(t *testing.T) {
	missions := []Mission{
		{ID: "PRJ001", Location: "Mumbai"},
		{ID: "PRJ002", Location: "Delhi"},
	}

	m, ok := FindMission(missions, "PRJ002")
	if !ok || m.Location != "Delhi" {
		t.Errorf("FindMission(PRJ002) = %+v, %v", m, ok)
	}

	if _, ok := FindMission(missions, "PRJ999"); ok {
		t.Error("FindMission should report absence for unknown project")
	}
}

func TestIndexMissions_LastWriterWins(t *testing.T) {
	missions := []Mission{
		{ID: "PRJ001", Client: "first"},
		{ID: "PRJ001", Client: "second"},
	}

	index := IndexMissions(missions)
	if index["PRJ001"].Client != "second" {
		t.Errorf("index[PRJ001].Client = %q, want second", index["PRJ001"].Client)
	}
}

func TestPilotAssigned(t *testing.T) {
	p := Pilot{CurrentAssignment: "–"}
	if p.Assigned() {
		t.Error("en-dash sentinel should count as unassigned")
	}

	p.CurrentAssignment = "PRJ001"
	if !p.Assigned() {
		t.Error("pilot with project assignment should count as assigned")
	}
}
