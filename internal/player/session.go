package player

import (
	"fmt"
	"time"

	"github.com/RZI3D/HifdhApp/internal/subtitle"
)

// Tick is the outcome of advancing the playback position.
type Tick struct {
	Index    int           // active cue index, valid only when Active is true
	Active   bool          // false when no cues are loaded
	Changed  bool          // active cue changed since the previous tick
	Seek     time.Duration // position the caller should seek its audio service to
	WantSeek bool          // set when a repeat range wrapped around
}

// Session tracks a playback position against an immutable cue snapshot. It is
// meant to be driven from a single goroutine: the host event loop calls
// Advance on every position tick and swaps in a new snapshot with
// LoadDocument. The snapshot is never mutated after a load.
type Session struct {
	cues      []subtitle.Cue
	pos       time.Duration
	active    int
	hasActive bool

	repeatFrom int
	repeatTo   int
	repeating  bool
}

func NewSession() *Session {
	return &Session{}
}

// LoadDocument parses the subtitle document and replaces the cue snapshot.
// Position, highlight and repeat state reset with the new document. Returns
// the number of cues parsed.
func (s *Session) LoadDocument(document string) int {
	s.cues = subtitle.Parse(document)
	s.pos = 0
	s.active = 0
	s.hasActive = false
	s.repeating = false
	return len(s.cues)
}

// Cues returns the current snapshot. Callers must not mutate it.
func (s *Session) Cues() []subtitle.Cue {
	return s.cues
}

// Advance moves the playback position and reports the active cue. When a
// repeat range is set and the position passes the end of the range, the tick
// asks the caller to seek back to the start of the range.
func (s *Session) Advance(pos time.Duration) Tick {
	s.pos = pos

	idx, ok := s.locate(pos)
	if !ok {
		return Tick{}
	}

	if s.repeating && pos > s.cues[s.repeatTo].EndTime {
		target := s.cues[s.repeatFrom].StartTime
		s.pos = target
		changed := !s.hasActive || s.repeatFrom != s.active
		s.active = s.repeatFrom
		s.hasActive = true
		return Tick{
			Index:    s.repeatFrom,
			Active:   true,
			Changed:  changed,
			Seek:     target,
			WantSeek: true,
		}
	}

	changed := !s.hasActive || idx != s.active
	s.active = idx
	s.hasActive = true
	return Tick{Index: idx, Active: true, Changed: changed}
}

// locate checks the previously active cue before falling back to the binary
// search, since consecutive ticks almost always land on the same cue.
func (s *Session) locate(pos time.Duration) (int, bool) {
	if s.hasActive && s.active < len(s.cues) {
		c := s.cues[s.active]
		if c.Contains(pos) {
			return s.active, true
		}
		if next := s.active + 1; next < len(s.cues) &&
			pos > c.EndTime && pos < s.cues[next].StartTime {
			// in the gap right after the active cue
			return s.active, true
		}
	}
	return subtitle.Locate(s.cues, pos)
}

// SetRepeat loops playback over the inclusive cue range [from, to].
func (s *Session) SetRepeat(from, to int) error {
	if from < 0 || to >= len(s.cues) || from > to {
		return fmt.Errorf(
			"invalid repeat range [%d, %d] for %d cues",
			from,
			to,
			len(s.cues),
		)
	}
	s.repeatFrom = from
	s.repeatTo = to
	s.repeating = true
	return nil
}

// ClearRepeat disables the repeat range.
func (s *Session) ClearRepeat() {
	s.repeating = false
}

// SeekToCue jumps the session to the start of the given cue and returns the
// position the caller should seek its audio service to.
func (s *Session) SeekToCue(i int) (time.Duration, error) {
	if i < 0 || i >= len(s.cues) {
		return 0, fmt.Errorf(
			"cue index %d out of range (0-%d)",
			i,
			len(s.cues)-1,
		)
	}
	s.pos = s.cues[i].StartTime
	s.active = i
	s.hasActive = true
	return s.cues[i].StartTime, nil
}

// Active returns the currently active cue.
func (s *Session) Active() (subtitle.Cue, bool) {
	if !s.hasActive || s.active >= len(s.cues) {
		return subtitle.Cue{}, false
	}
	return s.cues[s.active], true
}

// Position returns the last advanced-to position.
func (s *Session) Position() time.Duration {
	return s.pos
}
