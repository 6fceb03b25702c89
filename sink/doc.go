// SPDX-License-Identifier: EPL-2.0

// Package sink defines the audio output the player writes to.
//
// A Sink receives interleaved 16-bit little-endian stereo frames. Its Write
// method blocks until the output accepted the data; the player relies on
// that to pace itself and has no other clock.
//
// Sinks that can be primed with silence implement Preloader. The player
// preloads a short block of zeros when a session ends so the output does
// not keep repeating the last buffer.
//
// Implementations in this module:
//   - Discard, for benchmarks
//   - Capture, an in-memory recorder with write hooks
//   - Paced, real-time pacing on top of any other sink
//   - sink/oto, the default speaker output
//   - sink/portaudio, a blocking PortAudio stream
//   - sink/wavfile, a WAV file recorder
package sink
