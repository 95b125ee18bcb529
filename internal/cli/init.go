// Package cli contains the cobra commands for the skyops binary.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/skyops/internal/config"
	"github.com/example/skyops/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the skyops database",
		Long:  `Initialize the skyops database at ~/.skyops/skyops.db with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, _ := cmd.Flags().GetBool("seed")

			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing skyops database at %s\n", dbPath)

			database, err := db.GetDB()
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}

			fmt.Println("✓ Database initialized successfully")

			created, err := initConfig()
			if err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}
			if created {
				fmt.Println("✓ Config file created at .skyops/config.json")
			}

			if seed {
				if err := db.SeedFixtures(database); err != nil {
					return fmt.Errorf("failed to seed demo fleet: %w", err)
				}
				fmt.Println("✓ Demo fleet loaded")
			}

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  skyops pilot add \"Arjun\" --skills \"Mapping\" --certs \"DGCA\" --location Mumbai")
			fmt.Println("  skyops status")

			return nil
		},
	}

	cmd.Flags().Bool("seed", false, "Load a demo fleet after initializing")
	return cmd
}

// initConfig writes a default config in the working directory unless one
// already exists.
func initConfig() (bool, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(filepath.Join(cwd, ".skyops", "config.json")); err == nil {
		return false, nil
	}

	cfg := &config.Config{Version: "1"}
	if err := config.SaveConfig(cwd, cfg); err != nil {
		return false, err
	}
	return true, nil
}
