// SPDX-License-Identifier: EPL-2.0

package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sync"

	"github.com/ik5/audplay/audio"
)

// Storage opens sound files by path.
type Storage interface {
	// Open returns a sequential reader over the named file.
	// A missing file yields an error wrapping audio.ErrNotFound; any other
	// failure wraps audio.ErrIO.
	Open(name string) (io.ReadCloser, error)
}

// Dir serves files below a directory of the host file system.
// Names are slash separated and may not escape the directory.
type Dir string

func (d Dir) Open(name string) (io.ReadCloser, error) {
	f, err := os.OpenInRoot(string(d), clean(name))
	if err != nil {
		return nil, mapErr(name, err)
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, mapErr(name, err)
	}
	if st.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%w: %s is a directory", audio.ErrNotFound, name)
	}

	return f, nil
}

// FS adapts an fs.FS, such as an embed.FS of bundled sounds.
type FS struct {
	FS fs.FS
}

func (s FS) Open(name string) (io.ReadCloser, error) {
	f, err := s.FS.Open(clean(name))
	if err != nil {
		return nil, mapErr(name, err)
	}
	return f, nil
}

// Memory holds sound files in memory. The zero value is ready to use and
// safe for concurrent use.
type Memory struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// Put stores data under name, replacing any previous content.
func (m *Memory) Put(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.files == nil {
		m.files = make(map[string][]byte)
	}
	m.files[clean(name)] = data
}

func (m *Memory) Open(name string) (io.ReadCloser, error) {
	m.mu.RLock()
	data, ok := m.files[clean(name)]
	m.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", audio.ErrNotFound, name)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// clean turns "/sounds/./chime.wav" into "sounds/chime.wav".
func clean(name string) string {
	name = path.Clean("/" + name)
	if name == "/" {
		return "."
	}
	return name[1:]
}

func mapErr(name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", audio.ErrNotFound, name)
	}
	return fmt.Errorf("%w: open %s: %w", audio.ErrIO, name, err)
}
