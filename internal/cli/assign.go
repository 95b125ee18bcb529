package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/skyops/internal/wire"
)

// AssignCmd returns the assign command
func AssignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign [project-id]",
		Short: "Match and assign a pilot and drone to a mission",
		Long: `Recommend the first eligible pilot and drone for a mission and persist
the assignment. With --dry-run the recommendation is shown without
changing anything.

Examples:
  skyops assign PRJ001
  skyops assign PRJ001 --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID := args[0]
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			if dryRun {
				proposal, err := wire.AssignmentService().Recommend(ctx, projectID)
				if err != nil {
					return fmt.Errorf("failed to recommend: %w", err)
				}

				if proposal.Pilot != nil || proposal.Drone != nil {
					fmt.Printf("Recommendation for %s:\n", projectID)
				}
				if proposal.Pilot != nil {
					fmt.Printf("  Pilot: %s (%s)\n", proposal.Pilot.Name, proposal.Pilot.ID)
				}
				if proposal.Drone != nil {
					fmt.Printf("  Drone: %s (%s)\n", proposal.Drone.Model, proposal.Drone.ID)
				}
				printIssues(proposal.Issues)
				return nil
			}

			result, err := wire.AssignmentService().Assign(ctx, projectID)
			if err != nil {
				return fmt.Errorf("failed to assign: %w", err)
			}

			if !result.Applied {
				printIssues(result.Issues)
				return nil
			}

			fmt.Printf("%s Assigned to %s:\n", color.GreenString("✓"), projectID)
			fmt.Printf("  Pilot: %s (%s)\n", result.Pilot.Name, result.Pilot.ID)
			fmt.Printf("  Drone: %s (%s)\n", result.Drone.Model, result.Drone.ID)
			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Show the recommendation without persisting it")
	return cmd
}

func printIssues(issues []string) {
	for _, issue := range issues {
		fmt.Printf("%s %s\n", color.RedString("✗"), issue)
	}
}
