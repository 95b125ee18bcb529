package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/skyops/internal/wire"
)

// ReplanCmd returns the replan command
func ReplanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replan",
		Short: "Suggest reassignments for urgent missions",
		Long: `Scan urgent and high-priority missions that cannot be covered by the
available fleet, and suggest pilots that could be pulled from lower
priority missions. Suggestions are advisory; nothing is changed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			proposals, err := wire.ReplanService().UrgentReassignments(context.Background())
			if err != nil {
				return fmt.Errorf("failed to plan reassignments: %w", err)
			}

			for _, line := range proposals {
				fmt.Println(line)
			}
			return nil
		},
	}
}
