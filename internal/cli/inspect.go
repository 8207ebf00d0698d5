package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/RZI3D/HifdhApp/internal/subtitle"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [subtitle_file]",
	Short: "Parse a subtitle file and list its cues",
	Long: `Parse a subtitle file and print the resulting cue sequence.

Malformed blocks are skipped silently, so the printed count also shows how
much of the file survived parsing.

Examples:
  hifdh inspect surah.srt
  hifdh inspect surah.srt --json`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().Bool("json", false, "Output cues as JSON")
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read subtitle file: %w", err)
	}

	cues := subtitle.Parse(string(data))
	logger.Debugw("Parsed subtitle file",
		"file", path,
		"cues", len(cues),
	)

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		out, err := json.MarshalIndent(cues, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode cues: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	for _, cue := range cues {
		fmt.Printf("%4d  %s --> %s  %s\n",
			cue.Index,
			formatPosition(cue.StartTime),
			formatPosition(cue.EndTime),
			strings.ReplaceAll(cue.Text, "\n", " / "),
		)
	}
	fmt.Printf("Total cues: %d\n", len(cues))

	return nil
}
