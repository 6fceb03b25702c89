// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"

	"github.com/ik5/audplay/audio"
)

var (
	// ErrNotAiffFile indicates the input is not a FORM/AIFF container
	ErrNotAiffFile = fmt.Errorf("%w: not an AIFF file", audio.ErrFormat)

	// ErrUnsupportedAiffLayout indicates a missing or broken COMM chunk
	ErrUnsupportedAiffLayout = fmt.Errorf("%w: unsupported AIFF layout", audio.ErrFormat)

	ErrOnlyPCM16bitSupported = fmt.Errorf("%w: only 16-bit PCM AIFF is supported", audio.ErrUnsupportedFormat)
	ErrUnsupportedChannels   = fmt.Errorf("%w: only mono or stereo supported", audio.ErrUnsupportedFormat)
)
