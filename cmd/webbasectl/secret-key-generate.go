package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quevon24/webbase/pkg/config"
)

// secretKeyGenerateCmd represents the secret-key generate command
var secretKeyGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new secret key",
	Long: `Generate a new random SECRET_KEY and print it to stdout.

Use this to generate the key for a new deployment:

  export SECRET_KEY=$(webbasectl secret-key generate)`,
	Run: func(cmd *cobra.Command, args []string) {
		key, err := generateSecretKey()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate secret key: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(key)
	},
}

func init() {
	secretKeyCmd.AddCommand(secretKeyGenerateCmd)
}

func generateSecretKey() (string, error) {
	// Enough raw entropy that the encoded key clears the minimum length
	buf := make([]byte, config.MinSecretKeyLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
