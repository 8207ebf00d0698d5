package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/RZI3D/HifdhApp/internal/audio"
	"github.com/RZI3D/HifdhApp/internal/player"
	"github.com/spf13/cobra"
)

var followCmd = &cobra.Command{
	Use:   "follow [subtitle_file]",
	Short: "Print captions in real time as playback advances",
	Long: `Tick through a subtitle file in real time, printing each caption as it
becomes active. This mirrors what the app's caption view does while audio
plays.

With --audio the end of the run is bounded by the probed audio duration
instead of the last cue. With --repeat-from/--repeat-to the given cue range
loops until interrupted.

Examples:
  hifdh follow surah.srt
  hifdh follow surah.srt --from 1m --every 100ms
  hifdh follow surah.srt --audio surah.mp3
  hifdh follow surah.srt --repeat-from 3 --repeat-to 5`,
	Args: cobra.ExactArgs(1),
	RunE: runFollow,
}

func init() {
	rootCmd.AddCommand(followCmd)

	followCmd.Flags().String("from", "0s", "Position to start following from")
	followCmd.Flags().Duration("every", 250*time.Millisecond, "Tick interval")
	followCmd.Flags().String("audio", "", "Audio file whose duration bounds the run")
	followCmd.Flags().Int("repeat-from", -1, "First cue of a repeat range")
	followCmd.Flags().Int("repeat-to", -1, "Last cue of a repeat range")
}

func runFollow(cmd *cobra.Command, args []string) error {
	path := args[0]

	fromStr, _ := cmd.Flags().GetString("from")
	every, _ := cmd.Flags().GetDuration("every")
	audioPath, _ := cmd.Flags().GetString("audio")
	repeatFrom, _ := cmd.Flags().GetInt("repeat-from")
	repeatTo, _ := cmd.Flags().GetInt("repeat-to")

	from, err := parsePosition(fromStr)
	if err != nil {
		return err
	}
	if every <= 0 {
		return fmt.Errorf("tick interval must be positive, got %v", every)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read subtitle file: %w", err)
	}

	sess := player.NewSession()
	count := sess.LoadDocument(string(data))
	if count == 0 {
		return fmt.Errorf("no cues found in %s", path)
	}

	end := sess.Cues()[count-1].EndTime
	if audioPath != "" {
		if !audio.IsAudioFile(audioPath) {
			return fmt.Errorf("unsupported audio file: %s", audioPath)
		}
		duration, err := audio.GetDuration(audioPath)
		if err != nil {
			return fmt.Errorf("failed to probe audio: %w", err)
		}
		if duration > end {
			end = duration
		}
	}

	if repeatFrom >= 0 || repeatTo >= 0 {
		if err := sess.SetRepeat(repeatFrom, repeatTo); err != nil {
			return err
		}
		logger.Infow("Repeating cue range",
			"from", repeatFrom,
			"to", repeatTo,
		)
	}

	logger.Infow("Following captions",
		"file", path,
		"cues", count,
		"from", from.String(),
		"until", end.String(),
	)

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	base := time.Now()
	for {
		<-ticker.C
		pos := from + time.Since(base)
		if pos > end {
			break
		}

		tick := sess.Advance(pos)
		if tick.WantSeek {
			// repeat range wrapped; restart the clock at the seek target
			from = tick.Seek
			base = time.Now()
		}
		if !tick.Changed {
			continue
		}
		if cue, ok := sess.Active(); ok {
			fmt.Printf("[%s] %s\n", formatPosition(cue.StartTime), cue.Text)
		}
	}

	return nil
}
