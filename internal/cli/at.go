package cli

import (
	"fmt"
	"os"

	"github.com/RZI3D/HifdhApp/internal/subtitle"
	"github.com/spf13/cobra"
)

var atCmd = &cobra.Command{
	Use:   "at [subtitle_file] [position]",
	Short: "Show the caption active at a playback position",
	Long: `Show the caption that should be highlighted at the given playback
position. Positions in a gap between captions resolve to the caption that
most recently finished.

Examples:
  hifdh at surah.srt 1m30s
  hifdh at surah.srt 00:01:30,500`,
	Args: cobra.ExactArgs(2),
	RunE: runAt,
}

func init() {
	rootCmd.AddCommand(atCmd)
}

func runAt(cmd *cobra.Command, args []string) error {
	path := args[0]

	pos, err := parsePosition(args[1])
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read subtitle file: %w", err)
	}

	cues := subtitle.Parse(string(data))
	idx, ok := subtitle.Locate(cues, pos)
	if !ok {
		return fmt.Errorf("no cues found in %s", path)
	}

	cue := cues[idx]
	fmt.Printf("Cue %d  [%s --> %s]\n",
		cue.Index,
		formatPosition(cue.StartTime),
		formatPosition(cue.EndTime),
	)
	if cue.Text != "" {
		fmt.Println(cue.Text)
	}

	return nil
}
