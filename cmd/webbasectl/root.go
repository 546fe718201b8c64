package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "webbasectl",
	Short: "Manage a webbase project",
	Long:  `webbasectl is the management command for a webbase project: run the server, apply migrations, manage users and inspect settings.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
