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

// PilotCmd returns the pilot command
func PilotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pilot",
		Short: "Manage the pilot roster",
		Long:  `Add, list, and update the pilots available for mission assignment.`,
	}

	cmd.AddCommand(pilotAddCmd())
	cmd.AddCommand(pilotListCmd())
	cmd.AddCommand(pilotShowCmd())
	cmd.AddCommand(pilotStatusCmd())

	return cmd
}

func pilotAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a pilot to the roster",
		Long: `Add a pilot to the roster. The pilot ID is allocated automatically.

Examples:
  skyops pilot add "Arjun" --skills "Mapping, Survey" --certs "DGCA" --location Mumbai
  skyops pilot add "Meera" --skills Thermal --certs "DGCA, Night Ops" --location Bangalore`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			skills, _ := cmd.Flags().GetString("skills")
			certs, _ := cmd.Flags().GetString("certs")
			location, _ := cmd.Flags().GetString("location")
			status, _ := cmd.Flags().GetString("status")
			availableFrom, _ := cmd.Flags().GetString("available-from")

			resp, err := wire.RosterService().AddPilot(ctx, primary.AddPilotRequest{
				Name:           args[0],
				Skills:         skills,
				Certifications: certs,
				Location:       location,
				Status:         status,
				AvailableFrom:  availableFrom,
			})
			if err != nil {
				return fmt.Errorf("failed to add pilot: %w", err)
			}

			fmt.Printf("✓ Added pilot %s: %s\n", resp.PilotID, resp.Pilot.Name)
			return nil
		},
	}

	cmd.Flags().String("skills", "", "Comma-separated skills (e.g. \"Mapping, Survey\")")
	cmd.Flags().String("certs", "", "Comma-separated certifications")
	cmd.Flags().String("location", "", "Home location")
	cmd.Flags().String("status", "", "Initial status (default Available)")
	cmd.Flags().String("available-from", "", "Date the pilot becomes available")
	return cmd
}

func pilotListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pilots",
		Long:  `List pilots. Only available pilots are shown unless --all is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			skill, _ := cmd.Flags().GetString("skill")
			cert, _ := cmd.Flags().GetString("cert")
			location, _ := cmd.Flags().GetString("location")
			all, _ := cmd.Flags().GetBool("all")

			pilots, err := wire.RosterService().ListPilots(ctx, primary.PilotQuery{
				Skill:              skill,
				Cert:               cert,
				Location:           location,
				IncludeUnavailable: all,
			})
			if err != nil {
				return fmt.Errorf("failed to list pilots: %w", err)
			}

			if len(pilots) == 0 {
				fmt.Println("No pilots found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSKILLS\tCERTS\tLOCATION\tSTATUS\tASSIGNMENT")
			for _, p := range pilots {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					p.ID, p.Name, p.Skills, p.Certifications, p.Location, p.Status, p.CurrentAssignment)
			}
			w.Flush()

			return nil
		},
	}

	cmd.Flags().String("skill", "", "Require this skill")
	cmd.Flags().String("cert", "", "Require this certification")
	cmd.Flags().String("location", "", "Require this location")
	cmd.Flags().Bool("all", false, "Include unavailable pilots")
	return cmd
}

func pilotShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [pilot-id]",
		Short: "Show a pilot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pilot, err := wire.RosterService().GetPilot(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get pilot: %w", err)
			}

			fmt.Printf("Pilot %s: %s\n", pilot.ID, pilot.Name)
			fmt.Printf("  Skills:         %s\n", pilot.Skills)
			fmt.Printf("  Certifications: %s\n", pilot.Certifications)
			fmt.Printf("  Location:       %s\n", pilot.Location)
			fmt.Printf("  Status:         %s\n", pilot.Status)
			fmt.Printf("  Assignment:     %s\n", pilot.CurrentAssignment)
			fmt.Printf("  Available from: %s\n", pilot.AvailableFrom)
			return nil
		},
	}
}

func pilotStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [pilot-id] [status]",
		Short: "Set a pilot's status",
		Long:  `Set a pilot's status. Valid statuses: Available, On Leave, Unavailable, Assigned.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.RosterService().UpdatePilotStatus(context.Background(), args[0], args[1]); err != nil {
				return fmt.Errorf("failed to update pilot status: %w", err)
			}

			fmt.Printf("✓ Pilot %s status updated\n", args[0])
			return nil
		},
	}
}
