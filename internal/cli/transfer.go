package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/skyops/internal/config"
	"github.com/example/skyops/internal/wire"
)

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import pilots, drones, and missions from CSV files",
		Long: `Import pilot_roster.csv, drone_fleet.csv, and missions.csv from a
directory. Existing rows are updated by ID; missing files are skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := csvDir(cmd)
			if err != nil {
				return err
			}

			summary, err := wire.TransferService().ImportCSV(context.Background(), dir)
			if err != nil {
				return fmt.Errorf("failed to import: %w", err)
			}

			fmt.Printf("✓ Imported %d pilots, %d drones, %d missions from %s\n",
				summary.Pilots, summary.Drones, summary.Missions, dir)
			return nil
		},
	}

	cmd.Flags().String("dir", "", "Directory containing the CSV files (default from config)")
	return cmd
}

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export pilots, drones, and missions to CSV files",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := csvDir(cmd)
			if err != nil {
				return err
			}

			summary, err := wire.TransferService().ExportCSV(context.Background(), dir)
			if err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}

			fmt.Printf("✓ Exported %d pilots, %d drones, %d missions to %s\n",
				summary.Pilots, summary.Drones, summary.Missions, dir)
			return nil
		},
	}

	cmd.Flags().String("dir", "", "Directory for the CSV files (default from config)")
	return cmd
}

// csvDir resolves the CSV directory: --dir flag, configured csv_dir,
// ~/.skyops/csv.
func csvDir(cmd *cobra.Command) (string, error) {
	if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
		return dir, nil
	}

	if cwd, err := os.Getwd(); err == nil {
		if cfg, err := config.LoadConfig(cwd); err == nil && cfg.CSVDir != "" {
			return cfg.CSVDir, nil
		}
	}

	return config.DefaultCSVDir()
}
