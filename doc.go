// SPDX-License-Identifier: EPL-2.0

// Package audplay is a real-time PCM WAV playback engine for small devices.
//
// It plays one 16-bit mono or stereo WAV or AIFF file at a time, end to end, at the
// output's native rate. The whole sample data of a file is staged in memory
// and streamed to a blocking audio sink through two fixed-size hardware
// buffers, so nothing is allocated while sound is playing.
//
// # Quick Start
//
// The simplest way to play a file is PlayFile:
//
//	out, _ := otosink.New(44100, 0)
//	defer out.Close()
//
//	res, err := audplay.PlayFile(ctx, out, "sounds/chime.wav", player.DefaultConfig())
//
// PlayFS does the same for sounds embedded in the binary or held in any
// other fs.FS.
//
// The decoder is picked by file extension, then by the container's magic
// tags, so files without an extension play as well.
//
// # Triggered Playback
//
// A long-running program keeps an engine and fires it from a button or any
// other event source:
//
//	e, _ := player.New(player.DefaultConfig(), storage.Dir("/sdcard"), out,
//	    player.WithLogger(logger))
//	go e.Run(ctx)
//
//	e.SetSource("sounds/chime.wav")
//	e.SetPlayTrigger() // safe from any context, never blocks
//
// A trigger during playback restarts with the current source, and a stop
// trigger ends the session.
//
// # Packages
//
//   - audio: buffer pool, mono expansion, error kinds
//   - formats/wav: container validation and a 16-bit writer
//   - formats/aiff: AIFF validation, samples served little-endian
//   - player: the state machine and its trigger
//   - storage: where sound files come from
//   - sink and its subpackages: where the frames go
//   - config: environment and .env settings
//
// # Writing WAV Files
//
// The package can write PCM WAV files for testing an output:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	wav.WriteWAV16(file, 8000, 2, samples)
//
// See the individual subpackages for more detailed documentation.
package audplay
