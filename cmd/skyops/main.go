package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/skyops/internal/cli"
	"github.com/example/skyops/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "skyops",
		Short:   "skyops - drone operations coordinator",
		Version: version.String(),
		Long: `skyops is a CLI tool for coordinating drone survey operations.
It matches pilots and drones to client missions, detects scheduling
conflicts, and plans reassignments for urgent work.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.PilotCmd())
	rootCmd.AddCommand(cli.DroneCmd())
	rootCmd.AddCommand(cli.MissionCmd())
	rootCmd.AddCommand(cli.AssignCmd())
	rootCmd.AddCommand(cli.ConflictsCmd())
	rootCmd.AddCommand(cli.ReplanCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.ImportCmd())
	rootCmd.AddCommand(cli.ExportCmd())
	rootCmd.AddCommand(cli.LogCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
