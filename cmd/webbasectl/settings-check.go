package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quevon24/webbase/pkg/config"
)

// settingsCheckCmd represents the settings check command
var settingsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the settings",
	Long: `Validate the effective settings and exit non-zero on problems.

Checks that SECRET_KEY is set and strong enough, that ALLOWED_HOSTS is
configured outside debug mode, and that numeric settings parse.

Example:
  webbasectl settings check`,
	Run: func(cmd *cobra.Command, args []string) {
		settings := config.Get()

		if err := settings.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Settings check failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("Settings check passed")
	},
}

func init() {
	settingsCmd.AddCommand(settingsCheckCmd)
}
