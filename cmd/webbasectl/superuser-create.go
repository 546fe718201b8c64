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

// superuserCreateCmd represents the superuser create command
var superuserCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an administrator account",
	Long: `Create an administrator account.

The account is created active, with staff and superuser flags set.
Username, email and password are prompted for when not given as flags.

Example:
  webbasectl superuser create
  webbasectl superuser create --username admin --email admin@example.com`,
	Run: func(cmd *cobra.Command, args []string) {
		username, _ := cmd.Flags().GetString("username")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if err := createSuperuser(username, email, password); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create superuser: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	superuserCmd.AddCommand(superuserCreateCmd)
	superuserCreateCmd.Flags().StringP("username", "u", "", "Username")
	superuserCreateCmd.Flags().StringP("email", "e", "", "Email address")
	superuserCreateCmd.Flags().String("password", "", "Password (prompted for when not given)")
}

func createSuperuser(username, email, password string) error {
	var err error
	if username == "" {
		if username, err = promptLine("Username"); err != nil {
			return err
		}
	}
	if username == "" {
		return fmt.Errorf("username must not be empty")
	}
	if email == "" {
		if email, err = promptLine("Email address"); err != nil {
			return err
		}
	}
	if password == "" {
		if password, err = promptPassword(); err != nil {
			return err
		}
	}

	database, err := db.Connect(config.Get())
	if err != nil {
		return err
	}
	users := gormstore.NewUserStore(database)

	exists, err := users.Exists(username)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("user %q already exists", username)
	}

	user := &model.User{
		Username:    username,
		Email:       email,
		IsActive:    true,
		IsStaff:     true,
		IsSuperuser: true,
	}
	if err := user.SetPassword(password); err != nil {
		return err
	}
	if err := users.Create(user); err != nil {
		return err
	}

	fmt.Printf("Superuser '%s' created successfully\n", username)
	return nil
}
