// SPDX-License-Identifier: EPL-2.0

package audio

// Mode selects how staged bytes are copied into a hardware buffer.
type Mode int

const (
	// Passthrough copies interleaved stereo frames verbatim.
	Passthrough Mode = iota
	// MonoDuplicate writes every mono sample to both the left and right slot.
	MonoDuplicate
)

func (m Mode) String() string {
	switch m {
	case Passthrough:
		return "passthrough"
	case MonoDuplicate:
		return "mono-duplicate"
	default:
		return "unknown"
	}
}

// ModeFor returns the expansion mode for a source with the given channel count.
func ModeFor(channels int) Mode {
	if channels == 1 {
		return MonoDuplicate
	}
	return Passthrough
}

// ExpandMono duplicates each 16-bit mono sample of src into an adjacent
// left/right pair in dst. Only whole samples that fit into dst are converted.
// It returns the number of source bytes consumed and destination bytes written.
func ExpandMono(dst, src []byte) (consumed, written int) {
	samples := min(len(dst)/4, len(src)/2)

	// Byte-wise copy keeps the sample endianness untouched.
	for i := range samples {
		s := i << 1 // i * 2
		d := i << 2 // i * 4
		lo, hi := src[s], src[s+1]
		dst[d], dst[d+1] = lo, hi
		dst[d+2], dst[d+3] = lo, hi
	}

	return samples * 2, samples * 4
}
