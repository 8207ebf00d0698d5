package cli

import (
	"fmt"
	"os"

	"github.com/RZI3D/HifdhApp/internal/library"
	"github.com/spf13/cobra"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Work with a recitation catalog",
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "Validate and list the recitations in a manifest",
	Long: `Load a yaml manifest describing the available recitations and list its
entries. With --check, the referenced audio and subtitle files are verified
to exist.

Examples:
  hifdh library list
  hifdh library list --manifest recitations/library.yaml --check`,
	RunE: runLibraryList,
}

func init() {
	rootCmd.AddCommand(libraryCmd)
	libraryCmd.AddCommand(libraryListCmd)

	libraryListCmd.Flags().String("manifest", "library.yaml", "Manifest path")
	libraryListCmd.Flags().Bool("check", false, "Verify referenced files exist")
}

func runLibraryList(cmd *cobra.Command, args []string) error {
	manifest, _ := cmd.Flags().GetString("manifest")
	check, _ := cmd.Flags().GetBool("check")

	lib, err := library.Load(manifest)
	if err != nil {
		return err
	}

	logger.Debugw("Loaded manifest",
		"manifest", manifest,
		"recitations", len(lib.Recitations),
	)

	missing := 0
	for _, r := range lib.Recitations {
		fmt.Printf("%-24s %s", r.ID, r.Title)
		if r.Reciter != "" {
			fmt.Printf(" (%s)", r.Reciter)
		}
		fmt.Println()

		if !check {
			continue
		}
		for _, path := range []string{lib.AudioPath(r), lib.SubtitlesPath(r)} {
			if _, err := os.Stat(path); err != nil {
				fmt.Printf("    missing: %s\n", path)
				missing++
			}
		}
	}

	fmt.Printf("Total recitations: %d\n", len(lib.Recitations))
	if missing > 0 {
		return fmt.Errorf("%d referenced files are missing", missing)
	}

	return nil
}
