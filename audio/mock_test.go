// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// mockSource is a test helper that serves raw sample bytes as a Source.
// declared lets tests advertise a data length that differs from the payload.
type mockSource struct {
	channels int
	declared int
	r        io.Reader
	closed   bool
}

func newMockSource(channels int, data []byte) *mockSource {
	return &mockSource{
		channels: channels,
		declared: len(data),
		r:        bytes.NewReader(data),
	}
}

// newSampleSource packs int16 samples little-endian.
func newSampleSource(channels int, samples []int16) *mockSource {
	buf := new(bytes.Buffer)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}
	return newMockSource(channels, buf.Bytes())
}

func (m *mockSource) SampleRate() int    { return 44100 }
func (m *mockSource) Channels() int      { return m.channels }
func (m *mockSource) BitsPerSample() int { return 16 }
func (m *mockSource) BlockAlign() int    { return m.channels * 2 }
func (m *mockSource) DataLen() int       { return m.declared }
func (m *mockSource) Close() error {
	m.closed = true
	return nil
}

func (m *mockSource) Read(p []byte) (int, error) {
	return m.r.Read(p)
}

// failingReader fails every read with err.
type failingReader struct {
	err error
}

func (f *failingReader) Read(p []byte) (int, error) {
	return 0, f.err
}

var errDiskGone = errors.New("disk gone")

// sequence returns n bytes counting up from 0, wrapping at 256.
func sequence(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i)
	}
	return out
}
