// SPDX-License-Identifier: EPL-2.0

// Package otosink plays through the system audio device with
// github.com/ebitengine/oto/v3.
//
// oto allows a single context per process, so a program opens one Sink and
// keeps it for its whole lifetime.
package otosink

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// ErrClosed is returned by writes after Close.
var ErrClosed = errors.New("otosink: sink closed")

// Sink feeds an oto player through a pipe. Write returns once the player
// pulled every byte into its own buffer, which gives the same backpressure
// as a DMA queue of BufferSize.
type Sink struct {
	mu sync.Mutex

	ctx    *oto.Context
	player *oto.Player
	pr     *io.PipeReader
	pw     *io.PipeWriter
	closed bool
}

// BufferSize converts a DMA descriptor layout into the oto buffer duration.
func BufferSize(sampleRate, dmaBufCount, dmaBufLen int) time.Duration {
	if sampleRate <= 0 || dmaBufCount <= 0 || dmaBufLen <= 0 {
		return 0
	}
	return time.Duration(dmaBufCount*dmaBufLen) * time.Second / time.Duration(sampleRate)
}

// New opens the default output for 16-bit stereo at sampleRate.
// A zero bufferSize lets oto pick its default.
func New(sampleRate int, bufferSize time.Duration) (*Sink, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   bufferSize,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("otosink: create context: %w", err)
	}
	<-ready

	pr, pw := io.Pipe()
	player := ctx.NewPlayer(pr)
	player.Play()

	return &Sink{
		ctx:    ctx,
		player: player,
		pr:     pr,
		pw:     pw,
	}, nil
}

func (s *Sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrClosed
	}
	if err := s.player.Err(); err != nil {
		return 0, fmt.Errorf("otosink: player: %w", err)
	}

	n, err := s.pw.Write(p)
	if err != nil {
		return n, fmt.Errorf("otosink: write: %w", err)
	}
	return n, nil
}

// Preload queues p ahead of the next write. On stop this is a block of zeros
// that lets the device ring out silence instead of stale samples.
func (s *Sink) Preload(p []byte) (int, error) {
	return s.Write(p)
}

// Close stops the player and suspends the device.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	s.pw.Close()
	err := s.player.Close()
	s.pr.Close()

	if serr := s.ctx.Suspend(); serr != nil && err == nil {
		err = serr
	}
	return err
}
