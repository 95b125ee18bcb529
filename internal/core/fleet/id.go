package fleet

import "fmt"

// GeneratePilotID returns the pilot ID following the current max sequence.
// Format: P001, P002, ...
func GeneratePilotID(maxSeq int) string {
	return fmt.Sprintf("P%03d", maxSeq+1)
}

// GenerateDroneID returns the drone ID following the current max sequence.
// Format: D001, D002, ...
func GenerateDroneID(maxSeq int) string {
	return fmt.Sprintf("D%03d", maxSeq+1)
}

// GenerateProjectID returns the mission project ID following the current max
// sequence. Format: PRJ001, PRJ002, ...
func GenerateProjectID(maxSeq int) string {
	return fmt.Sprintf("PRJ%03d", maxSeq+1)
}
