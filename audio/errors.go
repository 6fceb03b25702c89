// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

// Error kinds. Every failure surfaced by the playback path wraps exactly one of these.
var (
	ErrNotFound          = errors.New("source not found")
	ErrFormat            = errors.New("malformed container")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrOutOfMemory       = errors.New("out of memory")
	ErrIO                = errors.New("i/o error")
	ErrSink              = errors.New("sink write failed")
)

var (
	ErrNoSession      = errors.New("no active session")
	ErrInvalidBuffer  = errors.New("invalid buffer index")
	ErrInvalidBufSize = errors.New("buffer size must be a positive multiple of 4")
)
