package subtitle

import (
	"testing"
	"time"
)

func threeCues() []Cue {
	return []Cue{
		{Index: 0, StartTime: 0, EndTime: 999 * time.Millisecond, Text: "a"},
		{Index: 1, StartTime: 1000 * time.Millisecond, EndTime: 1999 * time.Millisecond, Text: "b"},
		{Index: 2, StartTime: 2000 * time.Millisecond, EndTime: 2999 * time.Millisecond, Text: "c"},
	}
}

func TestLocate(t *testing.T) {
	cues := threeCues()

	tests := []struct {
		name string
		pos  time.Duration
		want int
	}{
		{"inside second cue", 1500 * time.Millisecond, 1},
		{"start of first cue", 0, 0},
		{"past the end", 50000 * time.Millisecond, 2},
		{"exact end boundary stays on earlier cue", 999 * time.Millisecond, 0},
		{"exact start boundary", 2000 * time.Millisecond, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Locate(cues, tt.pos)
			if !ok {
				t.Fatalf("Locate(%v) reported no cues", tt.pos)
			}
			if got != tt.want {
				t.Errorf("Locate(%v) = %d, want %d", tt.pos, got, tt.want)
			}
		})
	}
}

func TestLocateEmptySequence(t *testing.T) {
	got, ok := Locate(nil, 0)
	if ok {
		t.Error("expected ok=false for empty sequence")
	}
	if got != 0 {
		t.Errorf("expected index 0 for empty sequence, got %d", got)
	}
}

func TestLocateGapFallsBackToPrecedingCue(t *testing.T) {
	cues := []Cue{
		{Index: 0, StartTime: 0, EndTime: time.Second},
		{Index: 1, StartTime: 5 * time.Second, EndTime: 6 * time.Second},
	}

	got, ok := Locate(cues, 3*time.Second)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if got != 0 {
		t.Errorf("gap position: got %d, want 0", got)
	}
}

func TestLocateBeforeFirstCue(t *testing.T) {
	cues := []Cue{
		{Index: 0, StartTime: 10 * time.Second, EndTime: 11 * time.Second},
		{Index: 1, StartTime: 12 * time.Second, EndTime: 13 * time.Second},
	}

	got, ok := Locate(cues, time.Second)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if got != 0 {
		t.Errorf("position before first cue: got %d, want 0", got)
	}
}

func TestLocateAgainstLinearScan(t *testing.T) {
	var cues []Cue
	for i := 0; i < 25; i++ {
		start := time.Duration(i*2000) * time.Millisecond
		cues = append(cues, Cue{
			Index:     i,
			StartTime: start,
			EndTime:   start + 1500*time.Millisecond,
		})
	}

	linear := func(pos time.Duration) int {
		best := 0
		for i, c := range cues {
			if c.Contains(pos) {
				return i
			}
			if pos > c.EndTime {
				best = i
			}
		}
		return best
	}

	for pos := time.Duration(0); pos < 52*time.Second; pos += 333 * time.Millisecond {
		got, ok := Locate(cues, pos)
		if !ok {
			t.Fatalf("Locate(%v) reported no cues", pos)
		}
		if want := linear(pos); got != want {
			t.Errorf("Locate(%v) = %d, linear scan says %d", pos, got, want)
		}
	}
}
