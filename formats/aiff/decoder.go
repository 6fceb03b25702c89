// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audplay/audio"
)

// readBlock is the number of samples pulled from go-audio per refill.
const readBlock = 2048

// pcmReader is the part of aiff.Decoder the source needs.
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio's aiff.Decoder and serves its big-endian samples as
// little-endian bytes.
type source struct {
	dec        pcmReader
	sampleRate int
	channels   int
	dataLen    int

	ints    *goaudio.IntBuffer
	scratch []byte
	pending []byte
	left    int
}

func newSource(dec pcmReader, sampleRate, channels, frames int) *source {
	ints := &goaudio.IntBuffer{
		Data:           make([]int, readBlock),
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		SourceBitDepth: 16,
	}

	dataLen := frames * channels * 2
	return &source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		dataLen:    dataLen,
		ints:       ints,
		scratch:    make([]byte, 0, readBlock*2),
		left:       dataLen,
	}
}

func (s *source) SampleRate() int    { return s.sampleRate }
func (s *source) Channels() int      { return s.channels }
func (s *source) BitsPerSample() int { return 16 }
func (s *source) BlockAlign() int    { return s.channels * 2 }
func (s *source) DataLen() int       { return s.dataLen }
func (s *source) Close() error       { return nil }

// Read fills p with little-endian sample bytes, never past DataLen.
func (s *source) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if len(s.pending) == 0 {
		if s.left == 0 {
			return 0, io.EOF
		}
		if err := s.refill(); err != nil {
			return 0, err
		}
	}

	n := copy(p, s.pending)
	s.pending = s.pending[n:]
	s.left -= n

	return n, nil
}

func (s *source) refill() error {
	s.ints.Data = s.ints.Data[:cap(s.ints.Data)]

	n, err := s.dec.PCMBuffer(s.ints)
	if n == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			return io.EOF
		}
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	s.scratch = s.scratch[:0]
	for _, v := range s.ints.Data[:n] {
		s.scratch = binary.LittleEndian.AppendUint16(s.scratch, uint16(int16(v)))
	}
	s.pending = s.scratch[:min(len(s.scratch), s.left)]

	return nil
}

// Decoder validates AIFF and AIFF-C containers holding 16-bit PCM.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w: reading aiff data: %w", audio.ErrIO, err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	format := dec.Format()
	if format == nil || format.SampleRate <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}
	if format.NumChannels != 1 && format.NumChannels != 2 {
		return nil, fmt.Errorf("%w: got %d channels", ErrUnsupportedChannels, format.NumChannels)
	}
	if dec.BitDepth != 16 {
		return nil, fmt.Errorf("%w: got %d bits", ErrOnlyPCM16bitSupported, dec.BitDepth)
	}

	return newSource(dec, format.SampleRate, format.NumChannels, int(dec.NumSampleFrames)), nil
}
