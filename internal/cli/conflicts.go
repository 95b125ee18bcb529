package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/skyops/internal/wire"
)

// ConflictsCmd returns the conflicts command
func ConflictsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts",
		Short: "Scan all assignments for conflicts",
		Long: `Scan every current assignment against the mission list and report
inconsistencies: dangling assignments, missing skills or certifications,
location mismatches, drones in maintenance, overlapping bookings, and
pilot/drone location splits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			conflicts, err := wire.ConflictService().DetectConflicts(context.Background())
			if err != nil {
				return fmt.Errorf("failed to detect conflicts: %w", err)
			}

			if len(conflicts) == 0 {
				fmt.Printf("%s No conflicts detected\n", color.GreenString("✓"))
				return nil
			}

			for _, line := range conflicts {
				fmt.Printf("%s %s\n", color.RedString("✗"), line)
			}
			fmt.Printf("\n%d conflict(s) found\n", len(conflicts))
			return nil
		},
	}
}
