package subtitle

import (
	"time"
)

// Locate returns the index of the cue that should be visually active at the
// given playback position: the cue whose range contains the position, or the
// most recent cue whose end precedes it when the position falls in a gap.
// The boolean is false only for an empty sequence, in which case the index
// does not refer to a real cue and must not be dereferenced.
//
// The sequence must be sorted by start time, as Parse produces it. For
// overlapping cues the first one visited by the search wins.
func Locate(cues []Cue, pos time.Duration) (int, bool) {
	if len(cues) == 0 {
		return 0, false
	}

	best := 0
	lo, hi := 0, len(cues)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case pos < cues[mid].StartTime:
			hi = mid - 1
		case pos > cues[mid].EndTime:
			best = mid
			lo = mid + 1
		default:
			return mid, true
		}
	}
	return best, true
}
