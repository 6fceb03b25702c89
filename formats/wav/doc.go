// SPDX-License-Identifier: EPL-2.0

// Package wav validates RIFF/WAVE containers and writes 16-bit PCM files.
//
// Container walking is done with github.com/go-audio/riff. The decoder only
// accepts what the playback hardware can take directly.
//
// # Supported Formats
//
// Accepted:
//   - PCM (format tag 1)
//   - 16 bits per sample
//   - Mono and stereo
//   - Any sample rate; a mismatch with the output rate is the caller's concern
//
// # Decoding WAV Files
//
// Use the Decoder to validate a file and position it at the sample data:
//
//	file, _ := os.Open("chime.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	defer source.Close()
//
//	data := make([]byte, source.DataLen())
//	_, err = io.ReadFull(source, data)
//
// Chunks between "fmt " and "data" (LIST, fact, cue and friends) are skipped
// by their declared size. At most MaxChunkScan chunks are inspected while
// looking for "data".
//
// # Writing WAV Files
//
// WriteWAV16 emits a canonical 44-byte header followed by the samples:
//
//	samples := []int16{100, -100, 200, -200} // L R L R
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 8000, 2, samples)
//
// # Error Handling
//
// Every decoder error wraps one of the audio error kinds:
//   - ErrNotWavFile, ErrUnsupportedWavLayout, ErrUnsupportedWavChunks: audio.ErrFormat
//   - ErrNotPCM, ErrOnlyPCM16bitSupported, ErrUnsupportedChannels: audio.ErrUnsupportedFormat
//   - read failures: audio.ErrIO
//
// Example:
//
//	source, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, audio.ErrUnsupportedFormat) {
//	    fmt.Println("valid WAV, but not playable")
//	}
//
// # File Format
//
// WAV files consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk (at least 24 bytes): audio format, sample rate, channels, bit depth
//   - optional metadata chunks
//   - data chunk: little-endian interleaved samples
package wav
