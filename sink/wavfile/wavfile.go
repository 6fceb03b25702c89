// SPDX-License-Identifier: EPL-2.0

// Package wavfile records the output stream into a WAV file using
// github.com/go-audio/wav, which makes a run of the player inspectable
// without audio hardware.
package wavfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// ErrClosed is returned by writes after Close.
var ErrClosed = errors.New("wavfile: sink closed")

// Sink encodes every write as 16-bit stereo PCM.
type Sink struct {
	mu sync.Mutex

	enc    *gowav.Encoder
	buf    *goaudio.IntBuffer
	file   io.Closer
	closed bool
}

// Create records into a new file at path.
func Create(path string, sampleRate int) (*Sink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("wavfile: %w", err)
	}

	s := New(f, sampleRate)
	s.file = f
	return s, nil
}

// New records into ws. Close finalizes the header but leaves ws open.
func New(ws io.WriteSeeker, sampleRate int) *Sink {
	return &Sink{
		enc: gowav.NewEncoder(ws, sampleRate, 16, 2, 1),
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: 2, SampleRate: sampleRate},
			SourceBitDepth: 16,
		},
	}
}

// Write encodes the whole 16-bit samples held in p.
func (s *Sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrClosed
	}

	samples := len(p) / 2
	if cap(s.buf.Data) < samples {
		s.buf.Data = make([]int, samples)
	}
	s.buf.Data = s.buf.Data[:samples]
	for i := range s.buf.Data {
		s.buf.Data[i] = int(int16(binary.LittleEndian.Uint16(p[i*2:])))
	}

	if err := s.enc.Write(s.buf); err != nil {
		return 0, fmt.Errorf("wavfile: %w", err)
	}
	return samples * 2, nil
}

// Close writes the final header sizes and closes the file opened by Create.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	err := s.enc.Close()
	if s.file != nil {
		if cerr := s.file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if err != nil {
		return fmt.Errorf("wavfile: %w", err)
	}
	return nil
}
