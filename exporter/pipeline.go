package exporter

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const (
	exportTimeout = 2 * time.Minute
	playTimeout   = 30 * time.Minute
)

// WriteAlda writes the rendered score text to an .alda file.
func WriteAlda(text, path string) error {
	return os.WriteFile(path, []byte(text), 0644)
}

// ExportMIDI shells out to the alda CLI to turn an .alda file into MIDI.
func ExportMIDI(ctx context.Context, aldaPath, midiPath string) error {
	ctx, cancel := context.WithTimeout(ctx, exportTimeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, "alda", "export", "-f", aldaPath, "-o", midiPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("alda export: %w: %s", err, out)
	}
	return nil
}

// MIDIToMP3 renders MIDI to mp3 via timidity and ffmpeg, staging the wav in
// the temp dir.
func MIDIToMP3(ctx context.Context, midiPath, mp3Path string) error {
	ctx, cancel := context.WithTimeout(ctx, exportTimeout)
	defer cancel()

	wavPath := filepath.Join(os.TempDir(), uuid.NewString()+".wav")
	defer os.Remove(wavPath)

	cmd := exec.CommandContext(ctx, "timidity", midiPath, "-Ow", "-o", wavPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("timidity: %w: %s", err, out)
	}
	cmd = exec.CommandContext(ctx, "ffmpeg", "-y", "-i", wavPath, "-acodec", "libmp3lame", mp3Path)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg: %w: %s", err, out)
	}
	return nil
}

// Play plays an .alda file through the alda CLI, blocking until playback
// finishes or the context expires.
func Play(ctx context.Context, aldaPath string) error {
	ctx, cancel := context.WithTimeout(ctx, playTimeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, "alda", "play", "-f", aldaPath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
