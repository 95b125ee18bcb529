//go:build ignore
// +build ignore

// One-off migration: rewrite the legacy "no assignment" spellings in
// current_assignment cells to the plain "-" sentinel. Older exports used
// an en dash, and some round-tripped through a Latin-1 decode that left
// mojibake behind. The matcher treats all of them as unassigned, so this
// is cosmetic, but it keeps new exports clean.
//
// Usage:
//   go run scripts/normalize_sentinels.go --dry-run
//   go run scripts/normalize_sentinels.go
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

var legacySpellings = []string{"–", "â€–", ""}

func main() {
	dryRun := flag.Bool("dry-run", false, "Preview changes without executing")
	flag.Parse()

	dbPath := os.Getenv("SKYOPS_DB")
	if dbPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home dir: %v\n", err)
			os.Exit(1)
		}
		dbPath = filepath.Join(homeDir, ".skyops", "skyops.db")
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	total := 0
	for _, table := range []string{"pilots", "drones"} {
		for _, spelling := range legacySpellings {
			var count int
			err := db.QueryRow(
				fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE current_assignment = ?", table),
				spelling,
			).Scan(&count)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error counting %s rows: %v\n", table, err)
				os.Exit(1)
			}
			if count == 0 {
				continue
			}

			fmt.Printf("%s: %d row(s) with current_assignment = %q\n", table, count, spelling)
			total += count

			if *dryRun {
				continue
			}

			if _, err := db.Exec(
				fmt.Sprintf("UPDATE %s SET current_assignment = '-' WHERE current_assignment = ?", table),
				spelling,
			); err != nil {
				fmt.Fprintf(os.Stderr, "Error updating %s: %v\n", table, err)
				os.Exit(1)
			}
		}
	}

	if total == 0 {
		fmt.Println("No legacy sentinel spellings found.")
		return
	}
	if *dryRun {
		fmt.Printf("Dry run: %d row(s) would be normalized.\n", total)
	} else {
		fmt.Printf("Normalized %d row(s).\n", total)
	}
}
