// SPDX-License-Identifier: EPL-2.0

package main

import (
	"path/filepath"
	"testing"

	"github.com/ik5/audplay/config"
	"github.com/ik5/audplay/sink"
)

func TestOpenSink_Null(t *testing.T) {
	t.Parallel()

	s := config.Default()
	s.Backend = config.BackendNull

	out, closer, err := openSink(s)
	if err != nil {
		t.Fatalf("openSink() error = %v", err)
	}
	defer closer.Close()

	if _, ok := out.(*sink.Paced); !ok {
		t.Errorf("openSink() = %T, want *sink.Paced", out)
	}
}

func TestOpenSink_WAV(t *testing.T) {
	t.Parallel()

	s := config.Default()
	s.Backend = config.BackendWAV
	s.Output = filepath.Join(t.TempDir(), "capture.wav")

	out, closer, err := openSink(s)
	if err != nil {
		t.Fatalf("openSink() error = %v", err)
	}
	if n, err := out.Write(make([]byte, 16)); n != 16 || err != nil {
		t.Errorf("Write() = %d, %v, want 16, nil", n, err)
	}
	if err := closer.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestOpenSink_Unknown(t *testing.T) {
	t.Parallel()

	s := config.Default()
	s.Backend = "alsa"

	if _, _, err := openSink(s); err == nil {
		t.Error("openSink() with an unknown backend should fail")
	}
}
