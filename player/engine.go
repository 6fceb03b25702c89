// SPDX-License-Identifier: EPL-2.0

package player

import (
	"bufio"
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ik5/audplay/audio"
	"github.com/ik5/audplay/formats/aiff"
	"github.com/ik5/audplay/formats/wav"
	"github.com/ik5/audplay/sink"
	"github.com/ik5/audplay/storage"
)

// silenceSize is the block of zeros preloaded into the sink on stop.
const silenceSize = 128

// Engine plays one PCM source at a time on a single worker goroutine.
//
// All buffer work happens on the goroutine running Run. Other goroutines,
// and interrupt-like callers, only touch the Trigger and the source path.
type Engine struct {
	cfg      Config
	store    storage.Storage
	out      sink.Sink
	registry *audio.Registry
	log      zerolog.Logger
	observer func(Result)

	pool    *audio.Pool
	trig    *Trigger
	silence [silenceSize]byte

	state   atomic.Uint32
	running atomic.Bool
	stats   counters

	mu     sync.Mutex
	source string
}

// New creates an engine and allocates both hardware buffers.
func New(cfg Config, store storage.Storage, out sink.Sink, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool, err := audio.NewPool(cfg.BufferSize, cfg.MaxStagingBytes)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:   cfg,
		store: store,
		out:   out,
		log:   zerolog.Nop(),
		pool:  pool,
		trig:  NewTrigger(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.registry == nil {
		e.registry = audio.NewRegistry()
		e.registry.Register("wav", wav.Decoder{})
		e.registry.Register("aiff", aiff.Decoder{})
		e.registry.Register("aif", aiff.Decoder{})
	}

	return e, nil
}

// Config returns the configuration the engine was created with.
func (e *Engine) Config() Config { return e.cfg }

// SetSource selects the path played by the next trigger.
// Not for interrupt context.
func (e *Engine) SetSource(path string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.source = path
}

// Source returns the configured path.
func (e *Engine) Source() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.source
}

// SetPlayTrigger requests playback of the configured source. Safe from any
// context: it never blocks and never allocates.
func (e *Engine) SetPlayTrigger() { e.trig.SetPlay() }

// SetStopTrigger requests an orderly stop. Safe from any context.
func (e *Engine) SetStopTrigger() { e.trig.SetStop() }

// Play sets the source and triggers it.
func (e *Engine) Play(path string) {
	e.SetSource(path)
	e.trig.SetPlay()
}

// Trigger exposes the signal pair, for wiring to interrupt handlers.
func (e *Engine) Trigger() *Trigger { return e.trig }

// State returns the current state.
func (e *Engine) State() State { return State(e.state.Load()) }

// IsPlaying reports whether a session is loading or playing.
func (e *Engine) IsPlaying() bool {
	s := e.State()
	return s == Loading || s == Playing
}

// Stats returns a snapshot of the counters.
func (e *Engine) Stats() Stats { return e.stats.snapshot() }

// Run is the playback worker. It sleeps until a signal is pending, plays
// the configured source on a play request and returns nil once ctx is done.
// A session in progress when ctx ends is stopped like on a stop request.
func (e *Engine) Run(ctx context.Context) error {
	if !e.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer e.running.Store(false)

	e.log.Info().
		Int("sample_rate", e.cfg.SampleRate).
		Int("buffer_size", e.cfg.BufferSize).
		Int("dma_buf_count", e.cfg.DMABufCount).
		Int("dma_buf_len", e.cfg.DMABufLen).
		Msg("playback worker started")

	for {
		sig, err := e.trig.Wait(ctx)
		if err != nil {
			e.log.Info().Msg("playback worker stopped")
			return nil
		}

		if sig.Stop() {
			if sig.Play() {
				e.log.Debug().Msg("stop and play pending together, play dropped")
			}
			continue
		}

		path := e.Source()
		e.log.Debug().Str("path", path).Msg("trigger accepted")
		for replaced := true; replaced; {
			path, replaced = e.session(ctx, path)
		}
	}
}

// session runs one playback from Loading back to Idle. When a newer play
// request cuts it short it returns the path to play next and true.
func (e *Engine) session(ctx context.Context, path string) (string, bool) {
	res := Result{
		Session: uuid.New(),
		Path:    path,
	}
	log := e.log.With().
		Str("session", res.Session.String()).
		Str("path", path).
		Logger()

	e.stats.sessions.Add(1)
	defer func() {
		e.stop(log)
		e.finish(log, res)
	}()

	e.setState(log, Loading)
	if err := e.load(log, path); err != nil {
		res.Outcome, res.Err = Failed, err
		return "", false
	}

	e.setState(log, Playing)

	play := audio.Ping
	for iter := 1; ; iter++ {
		if sig := e.trig.Poll(); sig != 0 {
			if sig.Stop() {
				log.Info().Msg("stop requested")
				res.Outcome = Stopped
				return "", false
			}
			next := e.Source()
			log.Info().Str("next", next).Msg("new trigger, replacing current playback")
			res.Outcome = Replaced
			return next, true
		}
		if ctx.Err() != nil {
			res.Outcome = Stopped
			return "", false
		}

		buf := e.pool.Buffer(play)
		n, err := e.out.Write(buf)
		res.Bytes += int64(n)
		e.stats.bytes.Add(uint64(n))

		if err != nil {
			res.Outcome = Failed
			res.Err = fmt.Errorf("%w: %w", audio.ErrSink, err)
			return "", false
		}
		res.Writes++
		e.stats.writes.Add(1)
		if n < len(buf) {
			e.stats.partialWrites.Add(1)
			log.Warn().Int("written", n).Int("want", len(buf)).Msg("partial sink write")
		}

		if e.cfg.ProgressEvery > 0 && iter%e.cfg.ProgressEvery == 0 {
			log.Debug().
				Int("writes", iter).
				Int("remaining", e.pool.Remaining()).
				Msg("progress")
		}

		// The other buffer already holds the chunk that plays next.
		next := play.Other()
		if len(e.pool.Buffer(next)) == 0 {
			log.Debug().Int("writes", res.Writes).Int64("bytes", res.Bytes).Msg("end of file")
			res.Outcome = Completed
			return "", false
		}

		if _, err := e.pool.LoadChunk(play); err != nil {
			res.Outcome, res.Err = Failed, err
			return "", false
		}
		play = next
	}
}

// load runs the Loading state: parse, stage, preload ping then pong.
func (e *Engine) load(log zerolog.Logger, path string) error {
	if path == "" {
		return ErrNoSource
	}

	rc, err := e.store.Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	// The decoder gets a plain reader; rc is closed here only.
	br := bufio.NewReader(rc)
	head, _ := br.Peek(audio.SniffLen)

	dec, err := e.decoderFor(path, head)
	if err != nil {
		return err
	}

	src, err := dec.Decode(br)
	if err != nil {
		return err
	}
	defer src.Close()

	e.checkFormat(log, src)

	if err := e.pool.StartSession(src); err != nil {
		return err
	}

	n, err := e.pool.LoadChunk(audio.Ping)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: no sample data to play", audio.ErrIO)
	}

	m, err := e.pool.LoadChunk(audio.Pong)
	if err != nil {
		return err
	}
	if m == 0 {
		log.Warn().Int("bytes", n).Msg("source shorter than one buffer")
	}

	return nil
}

// decoderFor picks the decoder for path by its extension, then by the magic
// tags in head. Anything else is handed to the wav decoder, which reports
// what is wrong with the container.
func (e *Engine) decoderFor(path string, head []byte) (audio.Decoder, error) {
	if dec, ok := e.registry.ForPath(path); ok {
		return dec, nil
	}
	if format := audio.Sniff(head); format != "" {
		if dec, ok := e.registry.Get(format); ok {
			return dec, nil
		}
	}
	if dec, ok := e.registry.Get("wav"); ok {
		return dec, nil
	}

	return nil, fmt.Errorf("%w: no decoder for %q", audio.ErrUnsupportedFormat, path)
}

func (e *Engine) checkFormat(log zerolog.Logger, src audio.Source) {
	mode := audio.ModeFor(src.Channels())

	log.Info().
		Int("sample_rate", src.SampleRate()).
		Int("channels", src.Channels()).
		Int("bits", src.BitsPerSample()).
		Int("data_len", src.DataLen()).
		Stringer("mode", mode).
		Msg("playing")

	if src.SampleRate() != e.cfg.SampleRate {
		log.Warn().
			Int("file_rate", src.SampleRate()).
			Int("output_rate", e.cfg.SampleRate).
			Msg("sample rate mismatch, playing at output rate")
	}

	if want := src.Channels() * src.BitsPerSample() / 8; src.BlockAlign() != want {
		log.Warn().
			Int("block_align", src.BlockAlign()).
			Int("want", want).
			Msg("unexpected block align")
	}
}

// stop runs the Stopping state and leaves the engine Idle.
func (e *Engine) stop(log zerolog.Logger) {
	e.setState(log, Stopping)
	e.pool.EndSession()

	if pl, ok := e.out.(sink.Preloader); ok {
		if _, err := pl.Preload(e.silence[:]); err != nil {
			log.Warn().Err(err).Msg("failed to silence sink")
		}
	}

	e.setState(log, Idle)
}

func (e *Engine) finish(log zerolog.Logger, res Result) {
	e.stats.outcome(res.Outcome)

	ev := log.Info()
	if res.Outcome == Failed {
		ev = log.Error().Err(res.Err)
	}
	ev.Stringer("outcome", res.Outcome).
		Int("writes", res.Writes).
		Int64("bytes", res.Bytes).
		Msg("playback finished")

	if e.observer != nil {
		e.observer(res)
	}
}

func (e *Engine) setState(log zerolog.Logger, s State) {
	prev := State(e.state.Swap(uint32(s)))
	log.Debug().Stringer("from", prev).Stringer("to", s).Msg("state")
}
