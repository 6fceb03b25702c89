// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/ik5/audplay/audio"
)

// PCMSource is a test helper that serves 16-bit sample data as an audio.Source.
type PCMSource struct {
	sampleRate int
	channels   int
	data       []byte
	r          *bytes.Reader
	closed     bool
}

// NewPCMSource creates a source holding samples packed little-endian.
func NewPCMSource(sampleRate, channels int, samples []int16) *PCMSource {
	data := Bytes(samples)
	return &PCMSource{
		sampleRate: sampleRate,
		channels:   channels,
		data:       data,
		r:          bytes.NewReader(data),
	}
}

func (s *PCMSource) SampleRate() int    { return s.sampleRate }
func (s *PCMSource) Channels() int      { return s.channels }
func (s *PCMSource) BitsPerSample() int { return 16 }
func (s *PCMSource) BlockAlign() int    { return s.channels * 2 }
func (s *PCMSource) DataLen() int       { return len(s.data) }
func (s *PCMSource) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

func (s *PCMSource) Close() error {
	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *PCMSource) Closed() bool { return s.closed }

// NopDecoder always yields an empty stereo source.
type NopDecoder struct{}

func (NopDecoder) Decode(r io.Reader) (audio.Source, error) {
	return NewPCMSource(44100, 2, nil), nil
}

// Ramp returns n distinct, deterministic samples.
func Ramp(n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(i*37 - 16384)
	}
	return out
}

// Constant returns n copies of v.
func Constant(n int, v int16) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Bytes packs samples as little-endian 16-bit PCM.
func Bytes(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}

// StereoFrames expands mono samples the way the player is expected to.
func StereoFrames(mono []int16) []byte {
	out := make([]byte, 0, len(mono)*4)
	for _, s := range mono {
		out = binary.LittleEndian.AppendUint16(out, uint16(s))
		out = binary.LittleEndian.AppendUint16(out, uint16(s))
	}
	return out
}
