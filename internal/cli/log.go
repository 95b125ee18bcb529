package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/skyops/internal/wire"
)

// LogCmd returns the log command
func LogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent activity",
		Long:  `Show the audit trail of mutating operations, newest first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			entries, err := wire.ActivityService().Recent(context.Background(), limit)
			if err != nil {
				return fmt.Errorf("failed to fetch activity log: %w", err)
			}

			if len(entries) == 0 {
				fmt.Println("No activity recorded.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tACTOR\tACTION\tENTITY\tDETAIL")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					e.CreatedAt, e.Actor, e.Action, e.EntityID, e.Detail)
			}
			w.Flush()

			return nil
		},
	}

	cmd.Flags().Int("limit", 0, "Number of entries to show (default 20)")
	return cmd
}
