// SPDX-License-Identifier: EPL-2.0

package player

import (
	"context"
	"sync/atomic"
)

// Signals is a set of pending trigger requests.
type Signals uint32

const (
	SignalPlay Signals = 1 << iota
	SignalStop
)

// Play reports whether a play request is pending.
func (s Signals) Play() bool { return s&SignalPlay != 0 }

// Stop reports whether a stop request is pending.
func (s Signals) Stop() bool { return s&SignalStop != 0 }

// Trigger carries the two binary signals from any context, including
// interrupt handlers, to the playback worker.
//
// SetPlay and SetStop never block, never allocate and perform no I/O.
// Requests are not queued: setting a signal that is already pending is a
// no-op, so a burst of triggers collapses into one activation.
type Trigger struct {
	pending atomic.Uint32
	wake    chan struct{}
}

// NewTrigger returns a Trigger with nothing pending.
func NewTrigger() *Trigger {
	return &Trigger{wake: make(chan struct{}, 1)}
}

// SetPlay requests playback of the configured source.
func (t *Trigger) SetPlay() { t.set(SignalPlay) }

// SetStop requests an orderly stop.
func (t *Trigger) SetStop() { t.set(SignalStop) }

func (t *Trigger) set(s Signals) {
	t.pending.Or(uint32(s))

	select {
	case t.wake <- struct{}{}:
	default:
	}
}

// Poll consumes and returns the pending signals without blocking.
func (t *Trigger) Poll() Signals {
	return Signals(t.pending.Swap(0))
}

// Pending returns the pending signals without consuming them.
func (t *Trigger) Pending() Signals {
	return Signals(t.pending.Load())
}

// Wait blocks until at least one signal is pending and consumes it.
// It returns ctx.Err() if ctx is done first.
func (t *Trigger) Wait(ctx context.Context) (Signals, error) {
	for {
		if s := t.Poll(); s != 0 {
			return s, nil
		}

		select {
		case <-t.wake:
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
}
