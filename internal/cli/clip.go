package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/RZI3D/HifdhApp/internal/audio"
	"github.com/RZI3D/HifdhApp/internal/subtitle"
	"github.com/spf13/cobra"
)

var clipCmd = &cobra.Command{
	Use:   "clip [audio_file] [subtitle_file] [from_cue] [to_cue]",
	Short: "Export the audio for a range of cues",
	Long: `Cut the audio spanning the given cue range (inclusive, zero-based
indices as shown by inspect) into its own file. The audio stream is copied
without re-encoding.

Examples:
  hifdh clip surah.mp3 surah.srt 3 5
  hifdh clip surah.mp3 surah.srt 0 0 -o first-verse.mp3`,
	Args: cobra.ExactArgs(4),
	RunE: runClip,
}

func init() {
	rootCmd.AddCommand(clipCmd)

	clipCmd.Flags().StringP("output", "o", "", "Output file path")
}

func runClip(cmd *cobra.Command, args []string) error {
	audioPath := args[0]
	subsPath := args[1]

	if !audio.IsAudioFile(audioPath) {
		return fmt.Errorf(
			"unsupported file type: %s (expected an audio file)",
			filepath.Ext(audioPath),
		)
	}

	fromCue, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid from_cue %q", args[2])
	}
	toCue, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("invalid to_cue %q", args[3])
	}

	data, err := os.ReadFile(subsPath)
	if err != nil {
		return fmt.Errorf("failed to read subtitle file: %w", err)
	}
	cues := subtitle.Parse(string(data))
	if len(cues) == 0 {
		return fmt.Errorf("no cues found in %s", subsPath)
	}
	if fromCue < 0 || toCue >= len(cues) || fromCue > toCue {
		return fmt.Errorf(
			"invalid cue range [%d, %d]: file has %d cues",
			fromCue,
			toCue,
			len(cues),
		)
	}

	start := cues[fromCue].StartTime
	end := cues[toCue].EndTime

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		ext := filepath.Ext(audioPath)
		outputPath = strings.TrimSuffix(audioPath, ext) +
			fmt.Sprintf("_cues%d-%d%s", fromCue, toCue, ext)
	}

	logger.Infow("Exporting cue range",
		"audio", audioPath,
		"output", outputPath,
		"start", start.String(),
		"end", end.String(),
	)

	ctx := context.Background()
	if err := audio.ExportRange(ctx, audioPath, outputPath, start, end); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Clip exported successfully: %s\n", absOutput)

	return nil
}
