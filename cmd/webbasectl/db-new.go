package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// defaultMigrationsPath is where new migrations are written and where
// non-embedded builds read them from.
const defaultMigrationsPath = "db/migrations"

var migrationNamePattern = regexp.MustCompile(`[^a-z0-9_]+`)

// dbNewCmd represents the db new command
var dbNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new pair of migration files",
	Long: `Create a new pair of timestamped migration files in db/migrations.

The name is lowercased and non-alphanumeric characters are replaced
with underscores.

Example:
  webbasectl db new add_profile_table`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		upPath, downPath, err := newMigration(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create migration: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Created", upPath)
		fmt.Println("Created", downPath)
	},
}

func init() {
	dbCmd.AddCommand(dbNewCmd)
}

func newMigration(name string) (string, string, error) {
	slug := migrationNamePattern.ReplaceAllString(strings.ToLower(name), "_")
	slug = strings.Trim(slug, "_")
	if slug == "" {
		return "", "", fmt.Errorf("migration name %q contains no usable characters", name)
	}

	if err := os.MkdirAll(defaultMigrationsPath, 0o755); err != nil {
		return "", "", err
	}

	version := time.Now().UTC().Format("20060102150405")
	upPath := filepath.Join(defaultMigrationsPath, version+"_"+slug+".up.sql")
	downPath := filepath.Join(defaultMigrationsPath, version+"_"+slug+".down.sql")

	for _, path := range []string{upPath, downPath} {
		if err := os.WriteFile(path, []byte("-- "+slug+"\n"), 0o644); err != nil {
			return "", "", err
		}
	}
	return upPath, downPath, nil
}
