// SPDX-License-Identifier: EPL-2.0

// Package player is the playback engine: one PCM source at a time, streamed
// to a blocking sink through two fixed hardware buffers.
//
// # States
//
//	Idle ──trigger──▶ Loading ──both buffers filled──▶ Playing
//	  ▲                  │                               │
//	  └──── Stopping ◀───┴──── error / stop / end ◀──────┘
//
// Loading opens the source, validates the container, stages the whole
// sample-data region and fills the ping buffer, then the pong buffer. An
// empty ping buffer is fatal; an empty pong buffer only means the source is
// shorter than one buffer.
//
// Playing writes the current buffer to the sink. The write blocks until the
// output accepted the data, and that is the only pacing the engine has.
// The buffer that just played is then refilled while the other one, already
// loaded, becomes the next to play. When nothing is waiting in the other
// buffer the stream is complete.
//
// Stopping releases the staging buffer and, when the sink implements
// sink.Preloader, primes it with a short block of silence.
//
// # Triggering
//
// SetPlayTrigger and SetStopTrigger may be called from any goroutine,
// including code standing in for an interrupt handler: they set a bit and
// return. Signals are checked at the top of every Playing iteration.
// A play request during a session replaces it with the current source;
// a stop request ends it. When both are pending, stop wins.
//
//	e, _ := player.New(player.DefaultConfig(), storage.Dir("/sdcard"), out,
//	    player.WithLogger(logger))
//	go e.Run(ctx)
//
//	e.SetSource("sounds/chime.wav")
//	button.OnPress(e.SetPlayTrigger)
//
// # Errors
//
// Every failed session reports one of the audio error kinds through the
// observer registered with WithObserver, and the engine returns to Idle.
// Nothing reaches the sink before the container was validated and staged.
package player
