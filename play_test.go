// SPDX-License-Identifier: EPL-2.0

package audplay

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/ik5/audplay/audio"
	"github.com/ik5/audplay/formats/wav"
	"github.com/ik5/audplay/internal/audiotest"
	"github.com/ik5/audplay/player"
	"github.com/ik5/audplay/sink"
)

func writeWAV(t *testing.T, channels int, samples []int16) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sound.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := wav.WriteWAV16(f, 44100, channels, samples); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPlayFile_Stereo(t *testing.T) {
	t.Parallel()

	samples := audiotest.Ramp(10000)
	path := writeWAV(t, 2, samples)
	out := new(sink.Capture)

	res, err := PlayFile(context.Background(), out, path, player.DefaultConfig())
	if err != nil {
		t.Fatalf("PlayFile() error = %v", err)
	}

	if res.Outcome != player.Completed || res.Path != path {
		t.Errorf("result = %v %q, want completed %q", res.Outcome, res.Path, path)
	}
	if !bytes.Equal(out.Bytes(), audiotest.Bytes(samples)) {
		t.Error("sink stream differs from the file data")
	}
}

func TestPlayFile_Mono(t *testing.T) {
	t.Parallel()

	samples := audiotest.Ramp(777)
	path := writeWAV(t, 1, samples)
	out := new(sink.Capture)

	if _, err := PlayFile(context.Background(), out, path, player.DefaultConfig()); err != nil {
		t.Fatalf("PlayFile() error = %v", err)
	}
	if !bytes.Equal(out.Bytes(), audiotest.StereoFrames(samples)) {
		t.Error("sink stream is not the duplicated mono data")
	}
}

func TestPlayFile_NotFound(t *testing.T) {
	t.Parallel()

	res, err := PlayFile(context.Background(), sink.Discard{}, filepath.Join(t.TempDir(), "nope.wav"), player.DefaultConfig())
	if !errors.Is(err, audio.ErrNotFound) {
		t.Errorf("PlayFile() error = %v, want ErrNotFound", err)
	}
	if res.Outcome != player.Failed {
		t.Errorf("Outcome = %v, want failed", res.Outcome)
	}
}

func TestPlayFile_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := player.DefaultConfig()
	cfg.BufferSize = 3

	_, err := PlayFile(context.Background(), sink.Discard{}, "x.wav", cfg)
	if !errors.Is(err, player.ErrInvalidConfig) {
		t.Errorf("PlayFile() error = %v, want ErrInvalidConfig", err)
	}
}

func TestPlayFile_Canceled(t *testing.T) {
	t.Parallel()

	path := writeWAV(t, 2, audiotest.Ramp(100000))

	ctx, cancel := context.WithCancel(context.Background())
	out := &sink.Capture{
		OnWrite: func(call int, p []byte) error {
			if call == 2 {
				cancel()
			}
			return nil
		},
	}

	res, err := PlayFile(ctx, out, path, player.DefaultConfig())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("PlayFile() error = %v, want context.Canceled", err)
	}
	if res.Outcome != player.Stopped {
		t.Errorf("Outcome = %v, want stopped", res.Outcome)
	}
	if n := len(out.Writes()); n != 2 {
		t.Errorf("sink got %d writes, want 2", n)
	}
}

func TestPlayFile_AlreadyCanceled(t *testing.T) {
	t.Parallel()

	path := writeWAV(t, 2, audiotest.Ramp(100000))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := new(sink.Capture)
	res, err := PlayFile(ctx, out, path, player.DefaultConfig())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("PlayFile() error = %v, want context.Canceled", err)
	}
	if res.Outcome != player.Stopped {
		t.Errorf("Outcome = %v, want stopped", res.Outcome)
	}
	if n := len(out.Writes()); n != 0 {
		t.Errorf("sink got %d writes, want none", n)
	}
}

func TestPlayFS(t *testing.T) {
	t.Parallel()

	samples := audiotest.Ramp(600)
	fsys := fstest.MapFS{
		"sounds/boot.wav": &fstest.MapFile{Data: audiotest.MonoWAV(44100, samples)},
		"sounds/bell":     &fstest.MapFile{Data: audiotest.AIFF(44100, 2, samples)},
	}

	tests := []struct {
		name string
		want []byte
	}{
		{"sounds/boot.wav", audiotest.StereoFrames(samples)},
		{"sounds/bell", audiotest.Bytes(samples)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := new(sink.Capture)
			res, err := PlayFS(context.Background(), out, fsys, tt.name, player.DefaultConfig())
			if err != nil {
				t.Fatalf("PlayFS() error = %v", err)
			}
			if res.Outcome != player.Completed || res.Path != tt.name {
				t.Errorf("result = %v %q, want completed %q", res.Outcome, res.Path, tt.name)
			}
			if !bytes.Equal(out.Bytes(), tt.want) {
				t.Error("sink stream differs from the stored sound")
			}
		})
	}

	_, err := PlayFS(context.Background(), sink.Discard{}, fsys, "sounds/missing.wav", player.DefaultConfig())
	if !errors.Is(err, audio.ErrNotFound) {
		t.Errorf("PlayFS(missing) error = %v, want audio.ErrNotFound", err)
	}
}
