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

// DroneCmd returns the drone command
func DroneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drone",
		Short: "Manage the drone fleet",
		Long:  `Add, list, and update the drones available for mission assignment.`,
	}

	cmd.AddCommand(droneAddCmd())
	cmd.AddCommand(droneListCmd())
	cmd.AddCommand(droneShowCmd())
	cmd.AddCommand(droneStatusCmd())

	return cmd
}

func droneAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [model]",
		Short: "Add a drone to the fleet",
		Long: `Add a drone to the fleet. The drone ID is allocated automatically.

Examples:
  skyops drone add "DJI Matrice 350" --capabilities "RGB, Thermal" --location Mumbai
  skyops drone add "Parrot Anafi USA" --capabilities Thermal --location Bangalore`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			capabilities, _ := cmd.Flags().GetString("capabilities")
			location, _ := cmd.Flags().GetString("location")
			status, _ := cmd.Flags().GetString("status")
			maintenanceDue, _ := cmd.Flags().GetString("maintenance-due")

			resp, err := wire.FleetService().AddDrone(ctx, primary.AddDroneRequest{
				Model:          args[0],
				Capabilities:   capabilities,
				Location:       location,
				Status:         status,
				MaintenanceDue: maintenanceDue,
			})
			if err != nil {
				return fmt.Errorf("failed to add drone: %w", err)
			}

			fmt.Printf("✓ Added drone %s: %s\n", resp.DroneID, resp.Drone.Model)
			return nil
		},
	}

	cmd.Flags().String("capabilities", "", "Comma-separated sensor capabilities (e.g. \"RGB, Thermal\")")
	cmd.Flags().String("location", "", "Home location")
	cmd.Flags().String("status", "", "Initial status (default Available)")
	cmd.Flags().String("maintenance-due", "", "Next maintenance date")
	return cmd
}

func droneListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List drones",
		Long:  `List drones. Only available drones are shown unless --all is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			capability, _ := cmd.Flags().GetString("capability")
			location, _ := cmd.Flags().GetString("location")
			all, _ := cmd.Flags().GetBool("all")

			drones, err := wire.FleetService().ListDrones(ctx, primary.DroneQuery{
				Capability:         capability,
				Location:           location,
				IncludeUnavailable: all,
			})
			if err != nil {
				return fmt.Errorf("failed to list drones: %w", err)
			}

			if len(drones) == 0 {
				fmt.Println("No drones found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tMODEL\tCAPABILITIES\tLOCATION\tSTATUS\tASSIGNMENT\tMAINT DUE")
			for _, d := range drones {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					d.ID, d.Model, d.Capabilities, d.Location, d.Status, d.CurrentAssignment, d.MaintenanceDue)
			}
			w.Flush()

			return nil
		},
	}

	cmd.Flags().String("capability", "", "Require this capability")
	cmd.Flags().String("location", "", "Require this location")
	cmd.Flags().Bool("all", false, "Include unavailable drones")
	return cmd
}

func droneShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [drone-id]",
		Short: "Show a drone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			drone, err := wire.FleetService().GetDrone(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get drone: %w", err)
			}

			fmt.Printf("Drone %s: %s\n", drone.ID, drone.Model)
			fmt.Printf("  Capabilities:    %s\n", drone.Capabilities)
			fmt.Printf("  Location:        %s\n", drone.Location)
			fmt.Printf("  Status:          %s\n", drone.Status)
			fmt.Printf("  Assignment:      %s\n", drone.CurrentAssignment)
			fmt.Printf("  Maintenance due: %s\n", drone.MaintenanceDue)
			return nil
		},
	}
}

func droneStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [drone-id] [status]",
		Short: "Set a drone's status",
		Long:  `Set a drone's status. Valid statuses: Available, Maintenance, Assigned.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.FleetService().UpdateDroneStatus(context.Background(), args[0], args[1]); err != nil {
				return fmt.Errorf("failed to update drone status: %w", err)
			}

			fmt.Printf("✓ Drone %s status updated\n", args[0])
			return nil
		},
	}
}
