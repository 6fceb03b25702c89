// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// canonicalHeaderSize is the size of a RIFF/WAVE header with a 16 byte fmt
// chunk followed directly by the data chunk header.
const canonicalHeaderSize = 44

// writeBlock is the number of samples converted per Write call.
const writeBlock = 8192

// WriteWAV16 writes a 16-bit PCM WAV at sampleRate with the given channel
// count. samples must be interleaved int16 PCM. w does not need to be an
// io.Seeker.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if channels != 1 && channels != 2 {
		return fmt.Errorf("%w: got %d channels", ErrUnsupportedChannels, channels)
	}
	if len(samples)%channels != 0 {
		return fmt.Errorf("%w: %d samples do not form whole %d-channel frames", ErrUnsupportedWavLayout, len(samples), channels)
	}

	if _, err := w.Write(canonicalHeader(sampleRate, channels, len(samples)*2)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if len(samples) == 0 {
		return nil
	}

	block := make([]byte, 0, min(len(samples), writeBlock)*2)
	for len(samples) > 0 {
		n := min(len(samples), writeBlock)

		block = block[:0]
		for _, s := range samples[:n] {
			block = binary.LittleEndian.AppendUint16(block, uint16(s))
		}
		if _, err := w.Write(block); err != nil {
			return fmt.Errorf("write samples: %w", err)
		}

		samples = samples[n:]
	}

	return nil
}

func canonicalHeader(sampleRate, channels, dataSize int) []byte {
	const bits = 16
	blockAlign := channels * bits / 8

	h := make([]byte, 0, canonicalHeaderSize)
	le := binary.LittleEndian

	h = append(h, "RIFF"...)
	h = le.AppendUint32(h, uint32(canonicalHeaderSize-8+dataSize))
	h = append(h, "WAVE"...)

	h = append(h, "fmt "...)
	h = le.AppendUint32(h, 16)
	h = le.AppendUint16(h, formatPCM)
	h = le.AppendUint16(h, uint16(channels))
	h = le.AppendUint32(h, uint32(sampleRate))
	h = le.AppendUint32(h, uint32(sampleRate*blockAlign))
	h = le.AppendUint16(h, uint16(blockAlign))
	h = le.AppendUint16(h, bits)

	h = append(h, "data"...)
	h = le.AppendUint32(h, uint32(dataSize))

	return h
}
