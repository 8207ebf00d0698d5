package ffmpeg

import (
	"errors"
	"os"
	"os/exec"
	"sync"
)

type BinaryPaths struct {
	FFmpeg  string
	FFprobe string
}

var (
	ensureOnce sync.Once
	ensureErr  error
	ensurePath BinaryPaths
)

// Ensure resolves ffmpeg and ffprobe once per process: explicit env overrides
// first, then PATH lookup.
func Ensure() (BinaryPaths, error) {
	ensureOnce.Do(func() {
		ensurePath, ensureErr = ensure()
	})
	return ensurePath, ensureErr
}

func FFmpegPath() (string, error) {
	paths, err := Ensure()
	if err != nil {
		return "", err
	}
	return paths.FFmpeg, nil
}

func FFprobePath() (string, error) {
	paths, err := Ensure()
	if err != nil {
		return "", err
	}
	return paths.FFprobe, nil
}

func ensure() (BinaryPaths, error) {
	paths := BinaryPaths{
		FFmpeg:  os.Getenv("HIFDH_FFMPEG_PATH"),
		FFprobe: os.Getenv("HIFDH_FFPROBE_PATH"),
	}

	if paths.FFmpeg == "" {
		if found, err := exec.LookPath("ffmpeg"); err == nil {
			paths.FFmpeg = found
		}
	}
	if paths.FFprobe == "" {
		if found, err := exec.LookPath("ffprobe"); err == nil {
			paths.FFprobe = found
		}
	}

	if paths.FFmpeg == "" || paths.FFprobe == "" {
		return BinaryPaths{}, errors.New(
			"ffmpeg and ffprobe are required: install them or set HIFDH_FFMPEG_PATH and HIFDH_FFPROBE_PATH",
		)
	}
	return paths, nil
}
