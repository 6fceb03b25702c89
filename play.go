// SPDX-License-Identifier: EPL-2.0

package audplay

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/ik5/audplay/player"
	"github.com/ik5/audplay/sink"
	"github.com/ik5/audplay/storage"
)

// PlayFile is a high-level convenience function that plays a single WAV file
// to out and waits until it is done.
//
// It runs a private engine for the call:
//  1. Opens path from its directory on the host file system
//  2. Validates and stages the file
//  3. Streams it through the ping/pong buffers of cfg
//  4. Releases everything before returning
//
// Parameters:
//   - ctx: Cancelling it stops playback between two buffers
//   - out: The sink receiving 16-bit stereo frames (blocking writes)
//   - path: WAV file to play
//   - cfg: Engine configuration, usually player.DefaultConfig()
//   - opts: Extra engine options such as player.WithLogger
//
// Returns:
//   - player.Result: What was played and how the session ended
//   - error: The session error, or ctx.Err() when playback was cut short
//
// Note: PlayFile installs its own observer; an observer passed in opts is
// replaced. For repeated or triggered playback use player.Engine directly.
//
// Example:
//
//	res, err := audplay.PlayFile(ctx, out, "chime.wav", player.DefaultConfig())
//	if errors.Is(err, audio.ErrNotFound) {
//	    // no such file
//	}
//	fmt.Println(res.Bytes, "bytes played")
func PlayFile(ctx context.Context, out sink.Sink, path string, cfg player.Config, opts ...player.Option) (player.Result, error) {
	return play(ctx, out, storage.Dir(filepath.Dir(path)), filepath.Base(path), path, cfg, opts)
}

// PlayFS is PlayFile for a sound stored in fsys, such as an embed.FS
// compiled into the binary. name is slash separated.
//
// Example:
//
//	//go:embed sounds
//	var sounds embed.FS
//
//	res, err := audplay.PlayFS(ctx, out, sounds, "sounds/boot.wav", player.DefaultConfig())
func PlayFS(ctx context.Context, out sink.Sink, fsys fs.FS, name string, cfg player.Config, opts ...player.Option) (player.Result, error) {
	return play(ctx, out, storage.FS{FS: fsys}, name, name, cfg, opts)
}

func play(ctx context.Context, out sink.Sink, store storage.Storage, name, path string, cfg player.Config, opts []player.Option) (player.Result, error) {
	done := make(chan player.Result, 1)
	opts = append(opts, player.WithObserver(func(r player.Result) {
		done <- r
	}))

	e, err := player.New(cfg, store, out, opts...)
	if err != nil {
		return player.Result{Path: path, Outcome: player.Failed, Err: err}, err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, 1)
	go func() {
		errc <- e.Run(runCtx)
	}()

	e.Play(name)

	select {
	case res := <-done:
		cancel()
		<-errc
		return finish(ctx, path, res)

	case <-errc:
		// Run saw ctx end before the trigger.
		select {
		case res := <-done:
			return finish(ctx, path, res)
		default:
		}
		return player.Result{Path: path, Outcome: player.Stopped}, ctx.Err()
	}
}

func finish(ctx context.Context, path string, res player.Result) (player.Result, error) {
	res.Path = path
	if res.Outcome == player.Stopped && ctx.Err() != nil {
		return res, ctx.Err()
	}
	return res, res.Err
}
