package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/skyops/internal/ports/primary"
	"github.com/example/skyops/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show a fleet overview",
		Long: `Show pilot, drone, and mission counts broken down by status and
priority, followed by the conflict scan and any urgent reassignment
suggestions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			pilots, err := wire.RosterService().ListPilots(ctx, primary.PilotQuery{IncludeUnavailable: true})
			if err != nil {
				return fmt.Errorf("failed to list pilots: %w", err)
			}
			drones, err := wire.FleetService().ListDrones(ctx, primary.DroneQuery{IncludeUnavailable: true})
			if err != nil {
				return fmt.Errorf("failed to list drones: %w", err)
			}
			missions, err := wire.MissionService().ListMissions(ctx, primary.MissionQuery{})
			if err != nil {
				return fmt.Errorf("failed to list missions: %w", err)
			}

			pilotCounts := map[string]int{}
			for _, p := range pilots {
				pilotCounts[p.Status]++
			}
			droneCounts := map[string]int{}
			for _, d := range drones {
				droneCounts[d.Status]++
			}
			missionCounts := map[string]int{}
			for _, m := range missions {
				missionCounts[m.Priority]++
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Pilots (%d)\t%s\n", len(pilots), countLine(pilotCounts))
			fmt.Fprintf(w, "Drones (%d)\t%s\n", len(drones), countLine(droneCounts))
			fmt.Fprintf(w, "Missions (%d)\t%s\n", len(missions), countLine(missionCounts))
			w.Flush()
			fmt.Println()

			if len(missions) > 0 {
				w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "MISSION\tCLIENT\tLOCATION\tWINDOW\tPRIORITY")
				for _, m := range missions {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s to %s\t%s\n",
						m.ID, m.Client, m.Location, m.StartDate, m.EndDate, m.Priority)
				}
				w.Flush()
				fmt.Println()
			}

			conflicts, err := wire.ConflictService().DetectConflicts(ctx)
			if err != nil {
				return fmt.Errorf("failed to detect conflicts: %w", err)
			}
			if len(conflicts) == 0 {
				fmt.Printf("%s No conflicts detected\n", color.GreenString("✓"))
			} else {
				for _, line := range conflicts {
					fmt.Printf("%s %s\n", color.RedString("✗"), line)
				}
				fmt.Printf("%d conflict(s) found\n", len(conflicts))
			}

			proposals, err := wire.ReplanService().UrgentReassignments(ctx)
			if err != nil {
				return fmt.Errorf("failed to plan reassignments: %w", err)
			}
			fmt.Println()
			for _, line := range proposals {
				fmt.Println(line)
			}

			return nil
		},
	}
}

// countLine renders a status/priority breakdown in stable map-free order for
// the small fixed vocabularies used here.
func countLine(counts map[string]int) string {
	order := []string{"Available", "Assigned", "Maintenance", "On Leave", "Unavailable", "Urgent", "High", "Standard", "Low"}
	line := ""
	seen := map[string]bool{}
	for _, key := range order {
		if n, ok := counts[key]; ok {
			if line != "" {
				line += "  "
			}
			line += fmt.Sprintf("%s: %d", key, n)
			seen[key] = true
		}
	}
	for key, n := range counts {
		if !seen[key] {
			if line != "" {
				line += "  "
			}
			line += fmt.Sprintf("%s: %d", key, n)
		}
	}
	return line
}
