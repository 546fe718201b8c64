package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quevon24/webbase/pkg/config"
)

// settingsShowCmd represents the settings show command
var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	Long: `Show the effective settings and the source of each value.

Each attribute is marked with where its value came from: the default,
the settings file, or an environment variable. Secrets are not printed.

Example:
  webbasectl settings show
  webbasectl settings show --json`,
	Run: func(cmd *cobra.Command, args []string) {
		settings := config.Get()

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			out, err := settings.FormatJSON()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to render settings: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(out)
			return
		}

		fmt.Print(settings.FormatText())
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsShowCmd.Flags().Bool("json", false, "output as JSON")
}
