// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/ik5/audplay/config"
	"github.com/ik5/audplay/player"
	"github.com/ik5/audplay/storage"
)

func runPlay(args []string) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	envFile := fs.String("env", "", "load settings from this .env file")
	backend := fs.String("backend", "", "output backend: oto, portaudio, wav or null")
	root := fs.String("root", "", "sound directory")
	once := fs.Bool("once", false, "play once and exit, ignoring the keyboard")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}
	settings, err := config.Load(envFiles...)
	if err != nil {
		return err
	}
	if *backend != "" {
		settings.Backend = *backend
	}
	if *root != "" {
		settings.Root = *root
	}
	if fs.NArg() > 0 {
		settings.File = fs.Arg(0)
	}
	if settings.File == "" {
		return errors.New("no file to play, pass one or set " + config.EnvFile)
	}

	interactive := !*once && term.IsTerminal(int(os.Stdin.Fd()))

	if interactive {
		fd := int(os.Stdin.Fd())
		old, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("raw terminal: %w", err)
		}
		defer term.Restore(fd, old)
	}

	log := newLogger(settings.LogLevel, interactive)

	out, closer, err := openSink(settings)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	results := make(chan player.Result, 1)
	e, err := player.New(settings.Player, storage.Dir(settings.Root), out,
		player.WithLogger(log),
		player.WithObserver(func(r player.Result) {
			select {
			case results <- r:
			default:
			}
		}),
	)
	if err != nil {
		return err
	}

	runErr := make(chan error, 1)
	go func() {
		runErr <- e.Run(ctx)
	}()

	e.SetSource(settings.File)
	e.SetPlayTrigger()

	if !interactive {
		select {
		case r := <-results:
			cancel()
			<-runErr
			return r.Err
		case err := <-runErr:
			return err
		}
	}

	log.Info().Str("file", settings.File).Msg("p or space: play, s: stop, q: quit")
	go readKeys(ctx, log, e, cancel)

	return <-runErr
}

// readKeys turns keypresses into trigger signals, standing in for the
// button interrupt of the device.
func readKeys(ctx context.Context, log zerolog.Logger, e *player.Engine, quit context.CancelFunc) {
	buf := make([]byte, 1)
	for ctx.Err() == nil {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			quit()
			return
		}
		if n == 0 {
			continue
		}

		switch buf[0] {
		case 'p', ' ':
			e.SetPlayTrigger()
		case 's':
			e.SetStopTrigger()
		case 'i':
			st := e.Stats()
			log.Info().
				Stringer("state", e.State()).
				Uint64("sessions", st.Sessions).
				Uint64("completed", st.Completed).
				Uint64("failed", st.Failed).
				Uint64("bytes", st.Bytes).
				Msg("stats")
		case 'q', 0x03, 0x04: // q, Ctrl-C, Ctrl-D
			quit()
			return
		}
	}
}
