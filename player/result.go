// SPDX-License-Identifier: EPL-2.0

package player

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Outcome of a playback session.
type Outcome int

const (
	// Completed sessions played their source to the end.
	Completed Outcome = iota
	// Stopped sessions ended on a stop request or engine shutdown.
	Stopped
	// Replaced sessions were cut short by a newer play request.
	Replaced
	// Failed sessions ended on an error; Result.Err says which.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case Stopped:
		return "stopped"
	case Replaced:
		return "replaced"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result describes a finished session.
type Result struct {
	Session uuid.UUID
	Path    string
	Outcome Outcome
	Err     error

	// Writes and Bytes count what the sink accepted.
	Writes int
	Bytes  int64
}

// Stats is a snapshot of the engine counters.
type Stats struct {
	Sessions      uint64
	Completed     uint64
	Stopped       uint64
	Replaced      uint64
	Failed        uint64
	Writes        uint64
	Bytes         uint64
	PartialWrites uint64
}

type counters struct {
	sessions      atomic.Uint64
	completed     atomic.Uint64
	stopped       atomic.Uint64
	replaced      atomic.Uint64
	failed        atomic.Uint64
	writes        atomic.Uint64
	bytes         atomic.Uint64
	partialWrites atomic.Uint64
}

func (c *counters) outcome(o Outcome) {
	switch o {
	case Completed:
		c.completed.Add(1)
	case Stopped:
		c.stopped.Add(1)
	case Replaced:
		c.replaced.Add(1)
	case Failed:
		c.failed.Add(1)
	}
}

func (c *counters) snapshot() Stats {
	return Stats{
		Sessions:      c.sessions.Load(),
		Completed:     c.completed.Load(),
		Stopped:       c.stopped.Load(),
		Replaced:      c.replaced.Load(),
		Failed:        c.failed.Load(),
		Writes:        c.writes.Load(),
		Bytes:         c.bytes.Load(),
		PartialWrites: c.partialWrites.Load(),
	}
}
