package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quevon24/webbase/pkg/config"
	"github.com/quevon24/webbase/pkg/db"
	"github.com/quevon24/webbase/pkg/server"
	"github.com/quevon24/webbase/pkg/server/endpoints"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return config.DefaultPort
}

func defaultPortInt() int {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	p, _ := strconv.Atoi(config.DefaultPort)
	return p
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the application server",
	Long: `Run the application server.

Settings are read from the environment, with optional defaults from the
settings file. SECRET_KEY is required; outside debug mode ALLOWED_HOSTS
must be set as well.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings := config.Get()

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		settings.BindAddress = host
		settings.Port = port

		// Validate settings first (fail fast)
		if err := settings.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Settings check failed: %v\n", err)
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(settings); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		database, err := db.Connect(settings)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		s, err := server.NewServer(settings, database)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to initialize server:", err)
			os.Exit(1)
		}

		endpoints.RegisterAll(s)

		// In debug mode, reload the settings file when it changes
		if settings.Debug && settings.SettingsFilePath() != "" {
			stop, err := config.Watch(settings.SettingsFilePath(), func(reloaded *config.Settings) {
				log.Println("Settings file changed, settings reloaded")
			})
			if err != nil {
				log.Printf("Settings watch disabled: %v", err)
			} else {
				defer stop()
			}
		}

		log.Printf("Running server at http://%s:%s...\n", host, port)
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
