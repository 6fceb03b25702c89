// SPDX-License-Identifier: EPL-2.0

package player

import (
	"fmt"

	"github.com/ik5/audplay/audio"
)

// Config is fixed when the engine is created.
type Config struct {
	// SampleRate of the output in Hz. Sources with another rate are played
	// at this rate anyway.
	SampleRate int
	// BitsPerSample of the output. Only 16 is supported.
	BitsPerSample int
	// Channels of the output frames. Only 2 is supported; mono sources are
	// duplicated.
	Channels int
	// BufferSize of each of the two hardware buffers in bytes.
	BufferSize int
	// DMABufCount and DMABufLen describe the transfer descriptors of the
	// output: count of descriptors and frames per descriptor.
	DMABufCount int
	DMABufLen   int
	// MaxStagingBytes caps the sample data a single source may stage.
	MaxStagingBytes int
	// ProgressEvery logs progress every n sink writes. Zero disables it.
	ProgressEvery int
}

// DefaultConfig matches the stock device.
func DefaultConfig() Config {
	return Config{
		SampleRate:      44100,
		BitsPerSample:   16,
		Channels:        2,
		BufferSize:      8192,
		DMABufCount:     4,
		DMABufLen:       1024,
		MaxStagingBytes: 4 << 20,
		ProgressEvery:   20,
	}
}

// Validate checks c for values the engine cannot run with.
func (c Config) Validate() error {
	switch {
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidConfig, c.SampleRate)
	case c.BitsPerSample != 16:
		return fmt.Errorf("%w: only 16 bits per sample are supported, got %d", ErrInvalidConfig, c.BitsPerSample)
	case c.Channels != 2:
		return fmt.Errorf("%w: output must be stereo, got %d channels", ErrInvalidConfig, c.Channels)
	case c.BufferSize <= 0 || c.BufferSize%4 != 0:
		return fmt.Errorf("%w: %w, got %d", ErrInvalidConfig, audio.ErrInvalidBufSize, c.BufferSize)
	case c.DMABufCount <= 0 || c.DMABufLen <= 0:
		return fmt.Errorf("%w: DMA layout %dx%d", ErrInvalidConfig, c.DMABufCount, c.DMABufLen)
	case c.MaxStagingBytes <= 0:
		return fmt.Errorf("%w: staging budget must be positive, got %d", ErrInvalidConfig, c.MaxStagingBytes)
	case c.ProgressEvery < 0:
		return fmt.Errorf("%w: progress interval must not be negative, got %d", ErrInvalidConfig, c.ProgressEvery)
	}
	return nil
}
