package subtitle

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// accepted start/end separators; "-->" is canonical, the rest are lookalike
// substitutions seen in files round-tripped through Arabic text editors
var arrowVariants = []string{"-->", "—>", "–>", "→"}

var (
	blockSplitRegex = regexp.MustCompile(`\n{2,}`)

	// matched against a normalized (whitespace-free) timing line; anchored so
	// a line with leading junk is rejected rather than misread from its tail
	timingLineRegex = regexp.MustCompile(
		`^(\d+:\d{2}:\d{2}[.,]\d{1,3})(?:-->|\x{2014}>|\x{2013}>|\x{2192})(\d+:\d{2}:\d{2}[.,]\d{1,3})`,
	)
	timestampRegex = regexp.MustCompile(`^(\d+):(\d{2}):(\d{2})[.,](\d{1,3})$`)
)

// Parse converts a complete subtitle document into a cue sequence sorted by
// start time with indices reassigned 0..n-1. It is total: blocks without a
// parseable timing line are silently skipped, and non-subtitle input yields
// an empty sequence.
func Parse(document string) []Cue {
	if document == "" {
		return nil
	}

	doc := strings.TrimPrefix(document, "\ufeff")
	doc = strings.ReplaceAll(doc, "\r\n", "\n")
	doc = strings.ReplaceAll(doc, "\r", "\n")

	var cues []Cue
	for _, block := range blockSplitRegex.Split(doc, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		lines := strings.Split(block, "\n")
		for i := range lines {
			lines[i] = strings.TrimRightFunc(lines[i], unicode.IsSpace)
		}
		cue, ok := parseBlock(lines)
		if !ok {
			continue
		}
		cue.Index = len(cues)
		cues = append(cues, cue)
	}

	sort.SliceStable(cues, func(i, j int) bool {
		return cues[i].StartTime < cues[j].StartTime
	})
	for i := range cues {
		cues[i].Index = i
	}
	return cues
}

func parseBlock(lines []string) (Cue, bool) {
	timingIdx := findTimingLine(lines)
	if timingIdx < 0 {
		return Cue{}, false
	}

	m := timingLineRegex.FindStringSubmatch(NormalizeTimingText(lines[timingIdx]))
	if m == nil {
		return Cue{}, false
	}
	start, ok := ParseTimestamp(m[1])
	if !ok {
		return Cue{}, false
	}
	end, ok := ParseTimestamp(m[2])
	if !ok {
		return Cue{}, false
	}

	var textLines []string
	for _, line := range lines[timingIdx+1:] {
		if strings.TrimSpace(line) != "" {
			textLines = append(textLines, line)
		}
	}

	return Cue{
		StartTime: start,
		EndTime:   end,
		Text:      strings.TrimSpace(strings.Join(textLines, "\n")),
	}, true
}

// findTimingLine returns the first line containing the canonical arrow, then
// falls back to the lookalike variants.
func findTimingLine(lines []string) int {
	for i, line := range lines {
		if strings.Contains(line, "-->") {
			return i
		}
	}
	for i, line := range lines {
		for _, arrow := range arrowVariants[1:] {
			if strings.Contains(line, arrow) {
				return i
			}
		}
	}
	return -1
}

// ParseTimestamp converts an hours:minutes:seconds[.,]fraction string to a
// duration with millisecond precision. The input is normalized first, hours
// may be any width, and a 1-3 digit fraction is right-padded to milliseconds,
// so ",5" means 500ms rather than 5ms.
func ParseTimestamp(raw string) (time.Duration, bool) {
	m := timestampRegex.FindStringSubmatch(NormalizeTimingText(raw))
	if m == nil {
		return 0, false
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}
	seconds, err := strconv.Atoi(m[3])
	if err != nil {
		return 0, false
	}
	frac := m[4]
	for len(frac) < 3 {
		frac += "0"
	}
	millis, err := strconv.Atoi(frac)
	if err != nil {
		return 0, false
	}

	total := ((hours*60+minutes)*60+seconds)*1000 + millis
	return time.Duration(total) * time.Millisecond, true
}
