package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// superuserCmd represents the superuser command
var superuserCmd = &cobra.Command{
	Use:   "superuser",
	Short: "Manage administrator accounts",
	Long:  `Manage administrator accounts.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'superuser' requires a subcommand (create)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(superuserCmd)
}
