package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// settingsCmd represents the settings command
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect the effective settings",
	Long:  `Inspect and validate the effective settings.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'settings' requires a subcommand (show, check)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}
