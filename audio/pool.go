// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// MaxBufferSize is the largest hardware buffer a Pool will allocate.
const MaxBufferSize = 64 << 10

// BufferIndex names one of the two hardware buffers.
type BufferIndex int

const (
	Ping BufferIndex = 0
	Pong BufferIndex = 1
)

func (b BufferIndex) String() string {
	switch b {
	case Ping:
		return "ping"
	case Pong:
		return "pong"
	default:
		return fmt.Sprintf("buffer(%d)", int(b))
	}
}

// Other returns the opposite buffer.
func (b BufferIndex) Other() BufferIndex {
	return 1 - b
}

func (b BufferIndex) valid() bool {
	return b == Ping || b == Pong
}

// Pool owns all sample memory of the player: two fixed-size hardware buffers
// allocated once, and the staging buffer holding the sample data of the
// current session.
//
// A Pool is not safe for concurrent use. It is meant to be driven by a single
// playback worker.
type Pool struct {
	bufSize    int
	maxStaging int

	buffers [2][]byte
	valid   [2]int

	staging []byte
	offset  int
	mode    Mode
}

// NewPool allocates the ping and pong buffers of bufSize bytes each.
// maxStaging bounds the staging buffer; sources declaring more sample data
// than that are rejected with ErrOutOfMemory.
func NewPool(bufSize, maxStaging int) (*Pool, error) {
	if bufSize <= 0 || bufSize%4 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBufSize, bufSize)
	}
	if bufSize > MaxBufferSize {
		return nil, fmt.Errorf("%w: %d byte hardware buffers exceed %d", ErrOutOfMemory, bufSize, MaxBufferSize)
	}

	p := &Pool{
		bufSize:    bufSize,
		maxStaging: maxStaging,
	}
	p.buffers[Ping] = make([]byte, bufSize)
	p.buffers[Pong] = make([]byte, bufSize)

	return p, nil
}

// BufferSize is the capacity of each hardware buffer in bytes.
func (p *Pool) BufferSize() int { return p.bufSize }

// Active reports whether a staging buffer is held.
func (p *Pool) Active() bool { return p.staging != nil }

// Mode of the current session.
func (p *Pool) Mode() Mode { return p.mode }

// Remaining is the number of staged bytes not yet loaded into a hardware buffer.
func (p *Pool) Remaining() int {
	if p.staging == nil {
		return 0
	}
	return len(p.staging) - p.offset
}

// StartSession stages the whole sample-data region of src. Any previous
// session is released first. On failure no staging buffer is kept.
func (p *Pool) StartSession(src Source) error {
	if p.staging != nil {
		p.EndSession()
	}

	size := src.DataLen()
	if size < 0 {
		return fmt.Errorf("%w: negative data length %d", ErrFormat, size)
	}
	if size > p.maxStaging {
		return fmt.Errorf("%w: %d bytes of sample data exceed the %d byte staging budget", ErrOutOfMemory, size, p.maxStaging)
	}

	staging := make([]byte, size)
	n, err := io.ReadFull(src, staging)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: short read, got %d/%d bytes", ErrIO, n, size)
		}
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	p.staging = staging
	p.offset = 0
	p.mode = ModeFor(src.Channels())
	p.valid = [2]int{}

	return nil
}

// LoadChunk copies the next slice of staged data into the named hardware
// buffer, expanding mono to stereo when needed. It returns the number of valid
// bytes now held by that buffer; zero means the staged data is exhausted.
func (p *Pool) LoadChunk(idx BufferIndex) (int, error) {
	if !idx.valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidBuffer, int(idx))
	}
	if p.staging == nil {
		return 0, ErrNoSession
	}

	dst := p.buffers[idx]
	src := p.staging[p.offset:]

	var consumed, written int
	switch p.mode {
	case MonoDuplicate:
		consumed, written = ExpandMono(dst, src)
	default:
		written = copy(dst, src)
		consumed = written
	}

	p.offset += consumed
	p.valid[idx] = written

	return written, nil
}

// Buffer returns the valid bytes of the named hardware buffer.
// The slice aliases pool memory and is overwritten by the next LoadChunk.
func (p *Pool) Buffer(idx BufferIndex) []byte {
	if !idx.valid() {
		return nil
	}
	return p.buffers[idx][:p.valid[idx]]
}

// EndSession releases the staging buffer. Calling it without an active
// session is a no-op.
func (p *Pool) EndSession() {
	p.staging = nil
	p.offset = 0
	p.mode = Passthrough
	p.valid = [2]int{}
}
