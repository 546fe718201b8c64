package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/quevon24/webbase/pkg/config"
)

// dbShellCmd represents the db shell command
var dbShellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Open a database shell",
	Long: `Open psql connected to the configured database.

Example:
  webbasectl db shell`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDatabaseShell(config.Get()); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open database shell: %v\n", err)
			os.Exit(1)
		}
	},
}

// shellCmd is a top-level alias for db shell
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Open a database shell (alias for db shell)",
	Run:   dbShellCmd.Run,
}

func init() {
	dbCmd.AddCommand(dbShellCmd)
	rootCmd.AddCommand(shellCmd)
}

func runDatabaseShell(settings *config.Settings) error {
	psql, err := exec.LookPath("psql")
	if err != nil {
		return fmt.Errorf("psql not found in PATH: %w", err)
	}

	shell := exec.Command(psql, settings.DatabaseDSN())
	shell.Stdin = os.Stdin
	shell.Stdout = os.Stdout
	shell.Stderr = os.Stderr
	return shell.Run()
}
