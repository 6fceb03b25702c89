// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"sync"
	"time"
)

// Sink is the audio output peripheral.
//
// Write blocks until the output has accepted p. Returning is the only
// backpressure signal the player gets, so implementations must not buffer
// without bound. A short count with a nil error is a partial write.
type Sink interface {
	Write(p []byte) (int, error)
}

// Preloader is implemented by sinks that can be primed outside the normal
// write path, typically with silence when playback stops.
type Preloader interface {
	Preload(p []byte) (int, error)
}

// Discard accepts everything immediately.
type Discard struct{}

func (Discard) Write(p []byte) (int, error)   { return len(p), nil }
func (Discard) Preload(p []byte) (int, error) { return len(p), nil }

// Paced wraps a sink and holds every write for the time the frames take to
// play, emulating the clock of a real output on top of sinks that return
// immediately.
type Paced struct {
	Sink Sink

	// FrameSize is the byte size of one frame (4 for 16-bit stereo).
	FrameSize int
	// SampleRate in frames per second.
	SampleRate int

	sleep func(time.Duration)
}

// NewPaced paces s at sampleRate frames per second of 16-bit stereo.
func NewPaced(s Sink, sampleRate int) *Paced {
	return &Paced{
		Sink:       s,
		FrameSize:  4,
		SampleRate: sampleRate,
		sleep:      time.Sleep,
	}
}

func (p *Paced) Write(b []byte) (int, error) {
	start := time.Now()
	n, err := p.Sink.Write(b)

	if p.FrameSize > 0 && p.SampleRate > 0 && n > 0 {
		d := time.Duration(n/p.FrameSize) * time.Second / time.Duration(p.SampleRate)
		if wait := d - time.Since(start); wait > 0 {
			sleep := p.sleep
			if sleep == nil {
				sleep = time.Sleep
			}
			sleep(wait)
		}
	}

	return n, err
}

// Preload forwards to the wrapped sink when it is a Preloader.
func (p *Paced) Preload(b []byte) (int, error) {
	if pl, ok := p.Sink.(Preloader); ok {
		return pl.Preload(b)
	}
	return len(b), nil
}

// Capture records everything written to it. It is safe for concurrent use.
type Capture struct {
	// OnWrite, when set, is called before a write is recorded, with the
	// 1-based write number. A non-nil error fails the write without
	// recording it.
	OnWrite func(call int, p []byte) error

	// Limit, when positive, caps how many bytes a single write accepts.
	Limit int

	mu       sync.Mutex
	data     []byte
	sizes    []int
	preloads [][]byte
}

func (c *Capture) Write(p []byte) (int, error) {
	c.mu.Lock()
	call := len(c.sizes) + 1
	hook := c.OnWrite
	c.mu.Unlock()

	if hook != nil {
		if err := hook(call, p); err != nil {
			return 0, err
		}
	}

	n := len(p)
	if c.Limit > 0 && n > c.Limit {
		n = c.Limit
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = append(c.data, p[:n]...)
	c.sizes = append(c.sizes, n)

	return n, nil
}

func (c *Capture) Preload(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.preloads = append(c.preloads, append([]byte(nil), p...))
	return len(p), nil
}

// Bytes returns a copy of everything written so far.
func (c *Capture) Bytes() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]byte(nil), c.data...)
}

// Writes returns the byte count of each recorded write.
func (c *Capture) Writes() []int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]int(nil), c.sizes...)
}

// Preloads returns a copy of every preloaded buffer.
func (c *Capture) Preloads() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([][]byte, len(c.preloads))
	for i, p := range c.preloads {
		out[i] = append([]byte(nil), p...)
	}
	return out
}

// Reset drops everything recorded.
func (c *Capture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = nil
	c.sizes = nil
	c.preloads = nil
}
