package library

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// single entry in the recitation catalog
type Recitation struct {
	ID        string `yaml:"id"`
	Title     string `yaml:"title"`
	Reciter   string `yaml:"reciter"`
	Audio     string `yaml:"audio"`
	Subtitles string `yaml:"subtitles"`
}

// catalog of recitations loaded from a yaml manifest
type Library struct {
	Recitations []Recitation `yaml:"recitations"`

	dir string
}

// Load reads and validates a manifest. Relative audio/subtitle paths are
// resolved against the manifest's directory.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	lib.dir = filepath.Dir(path)

	if err := lib.validate(); err != nil {
		return nil, err
	}
	return &lib, nil
}

func (l *Library) validate() error {
	seen := make(map[string]bool)
	for i, r := range l.Recitations {
		if r.ID == "" {
			return fmt.Errorf("recitation %d: missing id", i)
		}
		if seen[r.ID] {
			return fmt.Errorf("duplicate recitation id %q", r.ID)
		}
		seen[r.ID] = true
		if r.Audio == "" {
			return fmt.Errorf("recitation %q: missing audio path", r.ID)
		}
		if r.Subtitles == "" {
			return fmt.Errorf("recitation %q: missing subtitles path", r.ID)
		}
	}
	return nil
}

// Find returns the recitation with the given id.
func (l *Library) Find(id string) (Recitation, bool) {
	for _, r := range l.Recitations {
		if r.ID == id {
			return r, true
		}
	}
	return Recitation{}, false
}

// AudioPath resolves the recitation's audio file path.
func (l *Library) AudioPath(r Recitation) string {
	return l.resolve(r.Audio)
}

// SubtitlesPath resolves the recitation's subtitle file path.
func (l *Library) SubtitlesPath(r Recitation) string {
	return l.resolve(r.Subtitles)
}

func (l *Library) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.dir, path)
}
