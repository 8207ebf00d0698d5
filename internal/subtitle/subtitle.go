package subtitle

import (
	"time"
)

// single timed caption
type Cue struct {
	Index     int
	StartTime time.Duration
	EndTime   time.Duration
	Text      string
}

// reports whether the position falls inside the cue's time range, boundaries
// included
func (c Cue) Contains(pos time.Duration) bool {
	return pos >= c.StartTime && pos <= c.EndTime
}
