// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"path/filepath"
	"strings"
	"sync"
)

// Source is an opened PCM container positioned at the start of its sample data.
type Source interface {
	// SampleRate declared by the container, in Hz.
	SampleRate() int
	// Channels count (1=mono, 2=stereo).
	Channels() int
	// BitsPerSample of a single channel sample.
	BitsPerSample() int
	// BlockAlign is the declared size of one frame in bytes.
	BlockAlign() int
	// DataLen is the declared length of the sample-data region in bytes.
	DataLen() int
	// Read reads raw little-endian sample bytes from the sample-data region.
	Read(p []byte) (n int, err error)
	// Close releases the underlying container handle.
	Close() error
}

// Decoder validates a container and constructs a Source from it.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by format key (e.g., "wav").
type Registry struct {
	codecs map[string]Decoder
	mtx    *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.codecs[strings.ToLower(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	d, ok := r.codecs[strings.ToLower(format)]
	return d, ok
}

// ForPath picks a decoder by the file extension of path.
func (r *Registry) ForPath(path string) (Decoder, bool) {
	ext := filepath.Ext(path)
	if len(ext) > 0 {
		ext = ext[1:] // drop dot
	}
	return r.Get(ext)
}

// SniffLen is the number of leading bytes Sniff inspects.
const SniffLen = 12

// Sniff names the container held in head, the first bytes of a file, by its
// magic tags. It returns "wav", "aiff" or "" when the container is unknown.
func Sniff(head []byte) string {
	if len(head) < SniffLen {
		return ""
	}

	id, form := string(head[0:4]), string(head[8:12])
	switch {
	case id == "RIFF" && form == "WAVE":
		return "wav"
	case id == "FORM" && (form == "AIFF" || form == "AIFC"):
		return "aiff"
	default:
		return ""
	}
}
