package library

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "library.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	content := `recitations:
  - id: baqarah-husary
    title: Surah Al-Baqarah
    reciter: Mahmoud Khalil Al-Husary
    audio: audio/002.mp3
    subtitles: subs/002.srt
  - id: fatihah-husary
    title: Surah Al-Fatihah
    reciter: Mahmoud Khalil Al-Husary
    audio: audio/001.mp3
    subtitles: subs/001.srt
`
	path := writeManifest(t, content)

	lib, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(lib.Recitations) != 2 {
		t.Fatalf("expected 2 recitations, got %d", len(lib.Recitations))
	}

	r, ok := lib.Find("baqarah-husary")
	if !ok {
		t.Fatal("Find did not locate baqarah-husary")
	}
	if r.Title != "Surah Al-Baqarah" {
		t.Errorf("unexpected title %q", r.Title)
	}

	wantAudio := filepath.Join(filepath.Dir(path), "audio/002.mp3")
	if got := lib.AudioPath(r); got != wantAudio {
		t.Errorf("AudioPath = %q, want %q", got, wantAudio)
	}
	wantSubs := filepath.Join(filepath.Dir(path), "subs/002.srt")
	if got := lib.SubtitlesPath(r); got != wantSubs {
		t.Errorf("SubtitlesPath = %q, want %q", got, wantSubs)
	}
}

func TestLoadRejectsInvalidManifests(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "missing id",
			content: `recitations:
  - title: No ID
    audio: a.mp3
    subtitles: a.srt
`,
			wantErr: "missing id",
		},
		{
			name: "duplicate id",
			content: `recitations:
  - id: dup
    audio: a.mp3
    subtitles: a.srt
  - id: dup
    audio: b.mp3
    subtitles: b.srt
`,
			wantErr: "duplicate recitation id",
		},
		{
			name: "missing audio",
			content: `recitations:
  - id: x
    subtitles: a.srt
`,
			wantErr: "missing audio path",
		},
		{
			name: "missing subtitles",
			content: `recitations:
  - id: x
    audio: a.mp3
`,
			wantErr: "missing subtitles path",
		},
		{
			name:    "not yaml",
			content: "{{{",
			wantErr: "failed to parse manifest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing manifest")
	}
}
