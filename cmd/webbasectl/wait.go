package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// waitCmd represents the wait command
var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for the server to be ready",
	Long: `Wait for the server to be ready by polling the health endpoint.

The health endpoint answers 200 only once the server is up and can reach
its database, so this is suitable as a readiness gate in scripts and
container orchestration.

Example:
  webbasectl wait
  webbasectl wait --timeout 30s
  webbasectl wait --url http://web:9000/health`,
	Run: func(cmd *cobra.Command, args []string) {
		url, _ := cmd.Flags().GetString("url")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		if url == "" {
			url = fmt.Sprintf("http://localhost:%d/health", defaultPortInt())
		}

		fmt.Printf("Waiting up to %s for %s...\n", timeout, url)
		if err := waitForServer(url, timeout, time.Second); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		fmt.Println("Server is ready")
	},
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().String("url", "", "Health endpoint to poll (default http://localhost:<port>/health)")
	waitCmd.Flags().Duration("timeout", 90*time.Second, "How long to keep polling before giving up")
}

// waitForServer polls url every interval until it answers with a 2xx
// status or the timeout elapses.
func waitForServer(url string, timeout, interval time.Duration) error {
	client := &http.Client{Timeout: interval * 2}
	deadline := time.Now().Add(timeout)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return nil
			}
		}

		if time.Now().After(deadline) {
			if err != nil {
				return fmt.Errorf("server not ready after %s: %w", timeout, err)
			}
			return fmt.Errorf("server not ready after %s: health returned %d", timeout, resp.StatusCode)
		}
		<-ticker.C
	}
}
