package cli

import (
	"fmt"
	"time"

	"github.com/RZI3D/HifdhApp/internal/logging"
	"github.com/RZI3D/HifdhApp/internal/subtitle"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "hifdh",
	Short: "Synchronized caption toolkit for audio recitations",
	Long: `Hifdh is a companion CLI for audio recitations of classical texts with
synchronized subtitle captions.

It parses SRT-style caption files as produced by mixed Arabic/Latin tooling
(tolerating bidirectional marks, Arabic-Indic digits and arrow glyph
substitutions), maps playback positions to the active caption, and can
follow, search and clip recitations.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// formatPosition renders a position the way SRT timing lines do.
func formatPosition(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

// parsePosition accepts either a Go duration ("1m30s") or an SRT-style
// timestamp ("00:01:30,500").
func parsePosition(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		if d < 0 {
			return 0, fmt.Errorf("position must not be negative: %s", s)
		}
		return d, nil
	}
	if d, ok := subtitle.ParseTimestamp(s); ok {
		return d, nil
	}
	return 0, fmt.Errorf(
		"invalid position %q: use a duration like 1m30s or a timestamp like 00:01:30,500",
		s,
	)
}
