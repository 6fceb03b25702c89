// SPDX-License-Identifier: EPL-2.0

package player

import "fmt"

// State of the playback state machine.
type State uint32

const (
	// Idle waits for a trigger. No session exists.
	Idle State = iota
	// Loading parses the source, stages it and fills both hardware buffers.
	Loading
	// Playing alternates blocking sink writes with buffer refills.
	Playing
	// Stopping releases the session and silences the sink.
	Stopping
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Playing:
		return "playing"
	case Stopping:
		return "stopping"
	default:
		return fmt.Sprintf("state(%d)", uint32(s))
	}
}
