// SPDX-License-Identifier: EPL-2.0

package player

import (
	"github.com/rs/zerolog"

	"github.com/ik5/audplay/audio"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// WithObserver registers fn to receive the Result of every session. fn runs
// on the playback worker once the session is released and must not block.
func WithObserver(fn func(Result)) Option {
	return func(e *Engine) {
		e.observer = fn
	}
}

// WithRegistry replaces the decoder registry. The default knows "wav", "aiff"
// and "aif".
func WithRegistry(r *audio.Registry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}
