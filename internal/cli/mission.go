package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/skyops/internal/ports/primary"
	"github.com/example/skyops/internal/wire"
)

// MissionCmd returns the mission command
func MissionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mission",
		Short: "Manage missions",
		Long:  `Add and list client missions, and inspect the resources assigned to them.`,
	}

	cmd.AddCommand(missionAddCmd())
	cmd.AddCommand(missionListCmd())
	cmd.AddCommand(missionShowCmd())
	cmd.AddCommand(missionResourcesCmd())

	return cmd
}

func missionAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [client]",
		Short: "Add a mission",
		Long: `Add a mission. The project ID is allocated automatically.

Examples:
  skyops mission add "AgriCo" --location Mumbai --skill Mapping --cert DGCA \
    --start 2024-03-01 --end 2024-03-10 --priority High`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			location, _ := cmd.Flags().GetString("location")
			skill, _ := cmd.Flags().GetString("skill")
			cert, _ := cmd.Flags().GetString("cert")
			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")
			priority, _ := cmd.Flags().GetString("priority")

			resp, err := wire.MissionService().AddMission(ctx, primary.AddMissionRequest{
				Client:        args[0],
				Location:      location,
				RequiredSkill: skill,
				RequiredCert:  cert,
				StartDate:     start,
				EndDate:       end,
				Priority:      priority,
			})
			if err != nil {
				return fmt.Errorf("failed to add mission: %w", err)
			}

			fmt.Printf("✓ Added mission %s for %s\n", resp.ProjectID, resp.Mission.Client)
			return nil
		},
	}

	cmd.Flags().String("location", "", "Mission location")
	cmd.Flags().String("skill", "", "Required pilot skill")
	cmd.Flags().String("cert", "", "Required pilot certification")
	cmd.Flags().String("start", "", "Start date (e.g. 2024-03-01)")
	cmd.Flags().String("end", "", "End date")
	cmd.Flags().String("priority", "", "Priority: Urgent, High, Standard, Low (default Standard)")
	return cmd
}

func missionListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List missions",
		RunE: func(cmd *cobra.Command, args []string) error {
			priority, _ := cmd.Flags().GetString("priority")

			missions, err := wire.MissionService().ListMissions(context.Background(), primary.MissionQuery{
				Priority: priority,
			})
			if err != nil {
				return fmt.Errorf("failed to list missions: %w", err)
			}

			if len(missions) == 0 {
				fmt.Println("No missions found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCLIENT\tLOCATION\tSKILL\tCERT\tSTART\tEND\tPRIORITY")
			for _, m := range missions {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					m.ID, m.Client, m.Location, m.RequiredSkill, m.RequiredCert, m.StartDate, m.EndDate, m.Priority)
			}
			w.Flush()

			return nil
		},
	}

	cmd.Flags().String("priority", "", "Only show missions with this priority")
	return cmd
}

func missionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [project-id]",
		Short: "Show a mission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			mission, err := wire.MissionService().GetMission(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get mission: %w", err)
			}

			fmt.Printf("Mission %s: %s\n", mission.ID, mission.Client)
			fmt.Printf("  Location:       %s\n", mission.Location)
			fmt.Printf("  Required skill: %s\n", mission.RequiredSkill)
			fmt.Printf("  Required cert:  %s\n", mission.RequiredCert)
			fmt.Printf("  Window:         %s to %s\n", mission.StartDate, mission.EndDate)
			fmt.Printf("  Priority:       %s\n", mission.Priority)

			resources, err := wire.MissionService().Resources(ctx, mission.ID)
			if err != nil {
				return fmt.Errorf("failed to get mission resources: %w", err)
			}
			if len(resources.Pilots) == 0 && len(resources.Drones) == 0 {
				fmt.Println("  Assigned:       none")
				return nil
			}
			for _, p := range resources.Pilots {
				fmt.Printf("  Assigned pilot: %s (%s)\n", p.Name, p.ID)
			}
			for _, d := range resources.Drones {
				fmt.Printf("  Assigned drone: %s (%s)\n", d.Model, d.ID)
			}
			return nil
		},
	}
}

func missionResourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resources [project-id]",
		Short: "Show the resources assigned to a mission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resources, err := wire.MissionService().Resources(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get mission resources: %w", err)
			}

			if len(resources.Pilots) == 0 && len(resources.Drones) == 0 {
				fmt.Printf("No resources assigned to %s.\n", resources.ProjectID)
				return nil
			}

			for _, p := range resources.Pilots {
				fmt.Printf("Pilot %s: %s (%s)\n", p.ID, p.Name, p.Location)
			}
			for _, d := range resources.Drones {
				fmt.Printf("Drone %s: %s (%s)\n", d.ID, d.Model, d.Location)
			}
			return nil
		},
	}
}
