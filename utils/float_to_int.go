// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 converts a sample in [-1, 1] to 16-bit PCM.
// Values outside the range are clamped.
func Float32ToInt16(x float32) int16 {
	return int16(Float32ToPCM(x, 16))
}

// Float32ToPCM converts a sample in [-1, 1] to a signed integer of the
// given bit depth (8 to 32). Values outside the range are clamped.
func Float32ToPCM(x float32, bitDepth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 2^(n-1)-1 for positive max to avoid overflow
	full := float64(int64(1)<<(bitDepth-1) - 1)
	return int(float64(x) * full)
}

// Tone fills dst with a sine of freq Hz at sampleRate, scaled by amp, and
// fades the first and last fade samples in and out to avoid clicks.
func Tone(dst []float32, freq float64, sampleRate int, amp float32, fade int) {
	step := 2 * math.Pi * freq / float64(sampleRate)
	fade = min(fade, len(dst)/2)

	for i := range dst {
		gain := amp
		switch {
		case i < fade:
			gain *= float32(i) / float32(fade)
		case i >= len(dst)-fade:
			gain *= float32(len(dst)-1-i) / float32(fade)
		}
		dst[i] = gain * float32(math.Sin(step*float64(i)))
	}
}
