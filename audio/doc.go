// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample memory and the core types of the player.
//
// This package contains the building blocks shared by the decoders and the
// playback engine:
//   - Source interface for opened PCM containers
//   - Decoder interface, a Registry keyed by file extension, and Sniff for
//     telling containers apart by their magic tags
//   - Pool, the owner of the staging buffer and the ping/pong hardware buffers
//   - ExpandMono for mono to stereo duplication
//   - The error kinds every failure is reported with
//
// # Source Interface
//
// A Source is produced by a Decoder once the container has been validated.
// It is positioned at the first byte of the sample-data region:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    BitsPerSample() int
//	    BlockAlign() int
//	    DataLen() int
//	    Read(p []byte) (int, error)
//	    Close() error
//	}
//
// # Buffer Pool
//
// The Pool allocates its two hardware buffers once and keeps them for its
// whole lifetime. A session stages the entire sample data of one source:
//
//	pool, _ := audio.NewPool(8192, 4<<20)
//	if err := pool.StartSession(src); err != nil {
//	    return err
//	}
//	defer pool.EndSession()
//
//	n, _ := pool.LoadChunk(audio.Ping)
//	sink.Write(pool.Buffer(audio.Ping))
//
// LoadChunk never allocates. A return of zero bytes means the staged data is
// exhausted, which is not an error.
//
// # Channel Expansion
//
// Hardware buffers always carry interleaved 16-bit stereo frames. Stereo
// sources are copied verbatim; mono sources have every sample written to
// both the left and the right slot, so they occupy twice their size on the
// way out.
//
// # Error Handling
//
// Failures wrap one of ErrNotFound, ErrFormat, ErrUnsupportedFormat,
// ErrOutOfMemory, ErrIO or ErrSink:
//
//	if errors.Is(err, audio.ErrUnsupportedFormat) {
//	    // wrong bit depth, channel count or encoding
//	}
package audio
