// SPDX-License-Identifier: EPL-2.0

// Package pasink writes to a blocking PortAudio output stream through
// github.com/gordonklaus/portaudio.
package pasink

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
)

// ErrClosed is returned by writes after Close.
var ErrClosed = errors.New("pasink: sink closed")

const channels = 2

// stream is the part of *portaudio.Stream the sink drives.
type stream interface {
	Start() error
	Write() error
	Stop() error
	Close() error
}

// Sink pushes 16-bit stereo frames into a PortAudio stream one hardware
// period at a time. Frames that do not fill a whole period are carried over
// to the next write.
type Sink struct {
	mu sync.Mutex

	stream stream
	period []int16
	fill   int
	closed bool

	terminate func() error
}

// New initializes PortAudio and opens the default output device with
// framesPerBuffer frames per period, the analogue of one DMA descriptor.
func New(sampleRate, framesPerBuffer int) (*Sink, error) {
	if framesPerBuffer <= 0 {
		return nil, fmt.Errorf("pasink: frames per buffer must be positive, got %d", framesPerBuffer)
	}

	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("pasink: initialize: %w", err)
	}

	period := make([]int16, framesPerBuffer*channels)
	st, err := portaudio.OpenDefaultStream(0, channels, float64(sampleRate), framesPerBuffer, period)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("pasink: open stream: %w", err)
	}

	s, err := newSink(st, period, portaudio.Terminate)
	if err != nil {
		st.Close()
		portaudio.Terminate()
		return nil, err
	}
	return s, nil
}

func newSink(st stream, period []int16, terminate func() error) (*Sink, error) {
	if err := st.Start(); err != nil {
		return nil, fmt.Errorf("pasink: start stream: %w", err)
	}

	return &Sink{
		stream:    st,
		period:    period,
		terminate: terminate,
	}, nil
}

// Write blocks until every whole period contained in p has been handed to
// the device. A trailing odd byte is not consumed.
func (s *Sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrClosed
	}

	n := 0
	for n+2 <= len(p) {
		s.period[s.fill] = int16(binary.LittleEndian.Uint16(p[n:]))
		s.fill++
		n += 2

		if s.fill == len(s.period) {
			if err := s.flush(); err != nil {
				return n, err
			}
		}
	}

	return n, nil
}

// Preload pads and plays any carried-over frames, then plays p.
func (s *Sink) Preload(p []byte) (int, error) {
	n, err := s.Write(p)
	if err != nil {
		return n, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fill > 0 {
		clear(s.period[s.fill:])
		s.fill = len(s.period)
		if err := s.flush(); err != nil {
			return n, err
		}
	}
	return n, nil
}

func (s *Sink) flush() error {
	s.fill = 0
	if err := s.stream.Write(); err != nil {
		if errors.Is(err, portaudio.OutputUnderflowed) {
			return nil
		}
		return fmt.Errorf("pasink: write: %w", err)
	}
	return nil
}

// Close stops the stream and releases PortAudio.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	err := s.stream.Stop()
	if cerr := s.stream.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if s.terminate != nil {
		if terr := s.terminate(); terr != nil && err == nil {
			err = terr
		}
	}
	return err
}
