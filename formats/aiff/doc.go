// SPDX-License-Identifier: EPL-2.0

// Package aiff validates AIFF containers holding 16-bit PCM.
//
// Parsing is done by github.com/go-audio/aiff. AIFF stores samples
// big-endian; the returned audio.Source swaps them while it is read, so the
// player stages the same little-endian bytes it would get from a WAV file.
//
// # Supported Formats
//
// Accepted:
//   - AIFF and uncompressed AIFF-C
//   - 16 bits per sample
//   - Mono and stereo
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("chime.aiff")
//	source, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	data := make([]byte, source.DataLen())
//	_, err = io.ReadFull(source, data)
//
// Readers that are not an io.Seeker are read into memory first.
//
// # Error Handling
//
// ErrNotAiffFile and ErrUnsupportedAiffLayout wrap audio.ErrFormat;
// ErrOnlyPCM16bitSupported and ErrUnsupportedChannels wrap
// audio.ErrUnsupportedFormat.
package aiff
