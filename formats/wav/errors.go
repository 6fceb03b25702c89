// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"

	"github.com/ik5/audplay/audio"
)

var (
	ErrNotWavFile           = fmt.Errorf("%w: not a WAV file", audio.ErrFormat)
	ErrUnsupportedWavLayout = fmt.Errorf("%w: unsupported WAV layout", audio.ErrFormat)
	ErrUnsupportedWavChunks = fmt.Errorf("%w: data chunk not found", audio.ErrFormat)

	ErrNotPCM                = fmt.Errorf("%w: only uncompressed PCM supported", audio.ErrUnsupportedFormat)
	ErrOnlyPCM16bitSupported = fmt.Errorf("%w: only PCM 16-bit supported", audio.ErrUnsupportedFormat)
	ErrUnsupportedChannels   = fmt.Errorf("%w: only mono or stereo supported", audio.ErrUnsupportedFormat)
)
