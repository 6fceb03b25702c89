// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-audio/riff"
	"github.com/ik5/audplay/audio"
)

const (
	// MaxChunkScan bounds the number of chunks inspected after "fmt " while
	// looking for "data".
	MaxChunkScan = 10

	formatPCM  = 1
	fmtMinSize = 16
)

type wavSource struct {
	r             io.Reader
	closer        io.Closer
	sampleRate    int
	channels      int
	bitsPerSample int
	blockAlign    int
	dataLen       int
}

func (s *wavSource) SampleRate() int    { return s.sampleRate }
func (s *wavSource) Channels() int      { return s.channels }
func (s *wavSource) BitsPerSample() int { return s.bitsPerSample }
func (s *wavSource) BlockAlign() int    { return s.blockAlign }
func (s *wavSource) DataLen() int       { return s.dataLen }

func (s *wavSource) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

func (s *wavSource) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// Decoder validates RIFF/WAVE containers holding 16-bit PCM.
// If the reader passed to Decode is an io.Closer, closing the returned
// source closes it.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	p := riff.New(r)

	// RIFF id, size, WAVE form type
	if err := p.ParseHeaders(); err != nil {
		return nil, readErr(ErrNotWavFile, err)
	}
	if p.Format != riff.WavFormatID {
		return nil, fmt.Errorf("%w: form type %q", ErrNotWavFile, p.Format[:])
	}

	ch, err := p.NextChunk()
	if err != nil {
		return nil, readErr(ErrUnsupportedWavLayout, err)
	}
	if ch.ID != riff.FmtID {
		return nil, fmt.Errorf("%w: expected fmt chunk, got %q", ErrUnsupportedWavLayout, ch.ID[:])
	}
	if ch.Size < fmtMinSize {
		return nil, fmt.Errorf("%w: fmt chunk of %d bytes", ErrUnsupportedWavLayout, ch.Size)
	}
	// Extended fmt payloads are skipped, not interpreted
	if err := ch.DecodeWavHeader(p); err != nil {
		return nil, readErr(ErrUnsupportedWavLayout, err)
	}

	if p.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrNotPCM, p.WavAudioFormat)
	}

	dataLen, err := findData(r)
	if err != nil {
		return nil, err
	}

	if p.NumChannels != 1 && p.NumChannels != 2 {
		return nil, fmt.Errorf("%w: got %d channels", ErrUnsupportedChannels, p.NumChannels)
	}
	if p.BitsPerSample != 16 {
		return nil, fmt.Errorf("%w: got %d bits", ErrOnlyPCM16bitSupported, p.BitsPerSample)
	}

	src := &wavSource{
		r:             io.LimitReader(r, int64(dataLen)),
		sampleRate:    int(p.SampleRate),
		channels:      int(p.NumChannels),
		bitsPerSample: int(p.BitsPerSample),
		blockAlign:    int(p.BlockAlign),
		dataLen:       dataLen,
	}
	if c, ok := r.(io.Closer); ok {
		src.closer = c
	}

	return src, nil
}

// findData walks chunk headers until "data", skipping anything else by its
// declared length. It leaves r positioned at the first sample byte.
// Headers are read with io.ReadFull; riff.Parser.IDnSize ignores a short
// size field.
func findData(r io.Reader) (int, error) {
	var hdr [8]byte

	for range MaxChunkScan {
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return 0, fmt.Errorf("%w: truncated chunk header", ErrUnsupportedWavChunks)
			}
			return 0, fmt.Errorf("%w: %w", audio.ErrIO, err)
		}

		id := [4]byte(hdr[:4])
		size := binary.LittleEndian.Uint32(hdr[4:])

		if id == riff.DataFormatID {
			return int(size), nil
		}

		skip := &riff.Chunk{ID: id, Size: int(size), R: r}
		skip.Drain()
	}

	return 0, ErrUnsupportedWavChunks
}

// readErr maps a read failure while parsing to kind, unless the reader
// failed for a reason other than running out of bytes.
func readErr(kind error, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: truncated", kind)
	}
	// riff formats its own errors with %s, so match on the message
	if strings.Contains(err.Error(), riff.ErrFmtNotSupported.Error()) {
		return fmt.Errorf("%w: %v", kind, err)
	}
	return fmt.Errorf("%w: %w", audio.ErrIO, err)
}
