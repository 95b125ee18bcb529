package fleet

import "testing"

func TestGenerateIDs(t *testing.T) {
	if id := GeneratePilotID(0); id != "P001" {
		t.Errorf("GeneratePilotID(0) = %q, want P001", id)
	}
	if id := GeneratePilotID(12); id != "P013" {
		t.Errorf("GeneratePilotID(12) = %q, want P013", id)
	}
	if id := GenerateDroneID(4); id != "D005" {
		t.Errorf("GenerateDroneID(4) = %q, want D005", id)
	}
	if id := GenerateProjectID(99); id != "PRJ100" {
		t.Errorf("GenerateProjectID(99) = %q, want PRJ100", id)
	}
	if id := GenerateProjectID(999); id != "PRJ1000" {
		t.Errorf("GenerateProjectID(999) = %q, want PRJ1000", id)
	}
}
