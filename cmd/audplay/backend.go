// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"

	"github.com/ik5/audplay/config"
	"github.com/ik5/audplay/sink"
	"github.com/ik5/audplay/sink/otosink"
	"github.com/ik5/audplay/sink/pasink"
	"github.com/ik5/audplay/sink/wavfile"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openSink opens the output selected by s.Backend.
func openSink(s config.Settings) (sink.Sink, io.Closer, error) {
	cfg := s.Player

	switch s.Backend {
	case config.BackendOto:
		out, err := otosink.New(cfg.SampleRate, otosink.BufferSize(cfg.SampleRate, cfg.DMABufCount, cfg.DMABufLen))
		if err != nil {
			return nil, nil, err
		}
		return out, out, nil

	case config.BackendPortAudio:
		out, err := pasink.New(cfg.SampleRate, cfg.DMABufLen)
		if err != nil {
			return nil, nil, err
		}
		return out, out, nil

	case config.BackendWAV:
		out, err := wavfile.Create(s.Output, cfg.SampleRate)
		if err != nil {
			return nil, nil, err
		}
		return out, out, nil

	case config.BackendNull:
		return sink.NewPaced(sink.Discard{}, cfg.SampleRate), nopCloser{}, nil

	default:
		return nil, nil, fmt.Errorf("unknown backend %q", s.Backend)
	}
}
