// SPDX-License-Identifier: EPL-2.0

// Command audplay plays WAV files through the playback engine.
//
// Usage:
//
//	audplay play [flags] [file]   play a file; p/space triggers, s stops, q quits
//	audplay tone [flags]          write a test tone WAV file
//
// Settings come from AUDPLAY_* environment variables and an optional .env
// file; see package config.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "play":
		err = runPlay(os.Args[2:])
	case "tone":
		err = runTone(os.Args[2:])
	case "-h", "--help", "help":
		usage(os.Stdout)
		return
	default:
		fmt.Fprintf(os.Stderr, "audplay: unknown command %q\n", os.Args[1])
		usage(os.Stderr)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "audplay:", err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: audplay play [flags] [file.wav]")
	fmt.Fprintln(w, "       audplay tone [flags]")
}

// newLogger writes human readable logs to stderr. In raw terminal mode a
// bare LF does not return the carriage, so rawTerm switches to CRLF.
func newLogger(level zerolog.Level, rawTerm bool) zerolog.Logger {
	var out io.Writer = os.Stderr
	if rawTerm {
		out = crlfWriter{os.Stderr}
	}

	cw := zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}

type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	s := strings.ReplaceAll(string(p), "\n", "\r\n")
	if _, err := io.WriteString(c.w, s); err != nil {
		return 0, err
	}
	return len(p), nil
}
