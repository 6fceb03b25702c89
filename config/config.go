// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/ik5/audplay/player"
)

// ErrInvalidValue is wrapped when a variable cannot be parsed.
var ErrInvalidValue = errors.New("invalid config value")

// Output backends.
const (
	BackendOto       = "oto"
	BackendPortAudio = "portaudio"
	BackendWAV       = "wav"
	BackendNull      = "null"
)

// Environment variables.
const (
	EnvSampleRate    = "AUDPLAY_SAMPLE_RATE"
	EnvBufferSize    = "AUDPLAY_BUFFER_SIZE"
	EnvDMABufCount   = "AUDPLAY_DMA_BUF_COUNT"
	EnvDMABufLen     = "AUDPLAY_DMA_BUF_LEN"
	EnvMaxStaging    = "AUDPLAY_MAX_STAGING"
	EnvProgressEvery = "AUDPLAY_PROGRESS_EVERY"
	EnvRoot          = "AUDPLAY_ROOT"
	EnvFile          = "AUDPLAY_FILE"
	EnvBackend       = "AUDPLAY_BACKEND"
	EnvOutput        = "AUDPLAY_OUTPUT"
	EnvLogLevel      = "AUDPLAY_LOG_LEVEL"
)

// Settings of the audplay command.
type Settings struct {
	Player player.Config

	// Root directory sound paths are resolved against.
	Root string
	// File played on trigger.
	File string
	// Backend is one of the Backend constants.
	Backend string
	// Output is the file written by the wav backend.
	Output string

	LogLevel zerolog.Level
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		Player:   player.DefaultConfig(),
		Root:     ".",
		Backend:  BackendOto,
		Output:   "audplay-out.wav",
		LogLevel: zerolog.InfoLevel,
	}
}

// Load reads the given .env files, or ".env" when none is given, into the
// process environment and builds Settings from it. Variables already set in
// the environment take precedence. A missing default .env is not an error.
func Load(files ...string) (Settings, error) {
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("config: %w", err)
		}
	}

	return FromLookup(os.LookupEnv)
}

// FromLookup builds Settings from lookup, which has the signature of
// os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) (Settings, error) {
	s := Default()

	ints := []struct {
		key string
		dst *int
	}{
		{EnvSampleRate, &s.Player.SampleRate},
		{EnvBufferSize, &s.Player.BufferSize},
		{EnvDMABufCount, &s.Player.DMABufCount},
		{EnvDMABufLen, &s.Player.DMABufLen},
		{EnvMaxStaging, &s.Player.MaxStagingBytes},
		{EnvProgressEvery, &s.Player.ProgressEvery},
	}
	for _, v := range ints {
		raw, ok := lookup(v.key)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		n, err := parseSize(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("%w: %s=%q: %w", ErrInvalidValue, v.key, raw, err)
		}
		*v.dst = n
	}

	if v, ok := lookup(EnvRoot); ok && v != "" {
		s.Root = v
	}
	if v, ok := lookup(EnvFile); ok {
		s.File = v
	}
	if v, ok := lookup(EnvOutput); ok && v != "" {
		s.Output = v
	}

	if v, ok := lookup(EnvBackend); ok && v != "" {
		backend := strings.ToLower(strings.TrimSpace(v))
		switch backend {
		case BackendOto, BackendPortAudio, BackendWAV, BackendNull:
			s.Backend = backend
		default:
			return Settings{}, fmt.Errorf("%w: %s=%q: unknown backend", ErrInvalidValue, EnvBackend, v)
		}
	}

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(v)))
		if err != nil {
			return Settings{}, fmt.Errorf("%w: %s=%q: %w", ErrInvalidValue, EnvLogLevel, v, err)
		}
		s.LogLevel = lvl
	}

	if err := s.Player.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// parseSize accepts plain integers and the K and M binary suffixes
// ("8K" is 8192, "4M" is 4194304).
func parseSize(raw string) (int, error) {
	raw = strings.ToUpper(strings.TrimSpace(raw))

	mult := 1
	switch {
	case strings.HasSuffix(raw, "K"):
		mult, raw = 1<<10, strings.TrimSuffix(raw, "K")
	case strings.HasSuffix(raw, "M"):
		mult, raw = 1<<20, strings.TrimSuffix(raw, "M")
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	return n * mult, nil
}
