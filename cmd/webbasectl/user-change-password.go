package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quevon24/webbase/pkg/config"
	"github.com/quevon24/webbase/pkg/db"
	"github.com/quevon24/webbase/pkg/model"
	gormstore "github.com/quevon24/webbase/pkg/server/store/gorm"
)

// userChangePasswordCmd represents the user change-password command
var userChangePasswordCmd = &cobra.Command{
	Use:   "change-password <username>",
	Short: "Set a new password for a user",
	Long: `Set a new password for an existing user.

The password is prompted for unless --password is given.

Example:
  webbasectl user change-password admin`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		password, _ := cmd.Flags().GetString("password")

		if err := changePassword(args[0], password); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to change password for %s: %v\n", args[0], err)
			os.Exit(1)
		}
	},
}

func init() {
	userCmd.AddCommand(userChangePasswordCmd)
	userChangePasswordCmd.Flags().String("password", "", "New password (prompted for when not given)")
}

func changePassword(username, password string) error {
	var err error
	if password == "" {
		if password, err = promptPassword(); err != nil {
			return err
		}
	}

	hash, err := model.HashPassword(password)
	if err != nil {
		return err
	}

	database, err := db.Connect(config.Get())
	if err != nil {
		return err
	}
	users := gormstore.NewUserStore(database)

	if err := users.UpdatePassword(username, hash); err != nil {
		return err
	}

	fmt.Printf("Password changed for '%s'\n", username)
	return nil
}
