package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/quevon24/webbase/pkg/config"
	"github.com/quevon24/webbase/pkg/server/endpoints"
)

// collectstaticCmd represents the collectstatic command
var collectstaticCmd = &cobra.Command{
	Use:   "collectstatic",
	Short: "Copy static assets into STATIC_ROOT",
	Long: `Copy the bundled static assets into STATIC_ROOT.

Files already present in STATIC_ROOT are overwritten. The server serves
STATIC_ROOT in preference to the bundled assets when the directory
exists, so this is the place to add deployment-specific files.

Example:
  webbasectl collectstatic`,
	Run: func(cmd *cobra.Command, args []string) {
		settings := config.Get()

		clearFirst, _ := cmd.Flags().GetBool("clear")
		if clearFirst {
			if err := os.RemoveAll(settings.StaticRoot); err != nil {
				fmt.Fprintf(os.Stderr, "collectstatic failed: %v\n", err)
				os.Exit(1)
			}
		}

		count, err := collectStatic(settings.StaticRoot)
		if err != nil {
			fmt.Fprintf(os.Stderr, "collectstatic failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%d static files copied to '%s'\n", count, settings.StaticRoot)
	},
}

func init() {
	rootCmd.AddCommand(collectstaticCmd)
	collectstaticCmd.Flags().Bool("clear", false, "remove STATIC_ROOT before copying")
}

func collectStatic(staticRoot string) (int, error) {
	bundled, err := endpoints.BundledStatic()
	if err != nil {
		return 0, err
	}

	count := 0
	err = fs.WalkDir(bundled, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		dest := filepath.Join(staticRoot, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(dest, 0o755)
		}

		src, err := bundled.Open(path)
		if err != nil {
			return err
		}
		defer func() { _ = src.Close() }()

		out, err := os.Create(dest)
		if err != nil {
			return err
		}
		if _, err := io.Copy(out, src); err != nil {
			_ = out.Close()
			return err
		}
		count++
		return out.Close()
	})
	return count, err
}
