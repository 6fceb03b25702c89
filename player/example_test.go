// SPDX-License-Identifier: EPL-2.0

package player_test

import (
	"context"
	"fmt"

	"github.com/ik5/audplay/internal/audiotest"
	"github.com/ik5/audplay/player"
	"github.com/ik5/audplay/sink"
	"github.com/ik5/audplay/storage"
)

// Example demonstrates playing a mono sound to an in-memory sink.
func Example() {
	sounds := new(storage.Memory)
	sounds.Put("chime.wav", audiotest.MonoWAV(44100, audiotest.Ramp(3000)))

	out := new(sink.Capture)
	done := make(chan player.Result, 1)

	e, err := player.New(player.DefaultConfig(), sounds, out,
		player.WithObserver(func(r player.Result) { done <- r }))
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go e.Run(ctx)

	e.Play("chime.wav")
	r := <-done

	fmt.Println(r.Outcome)
	fmt.Println("writes:", out.Writes())
	fmt.Println("bytes:", r.Bytes)
	// Output:
	// completed
	// writes: [8192 3808]
	// bytes: 12000
}

// Example_failure shows how errors surface.
func Example_failure() {
	done := make(chan player.Result, 1)

	e, _ := player.New(player.DefaultConfig(), new(storage.Memory), sink.Discard{},
		player.WithObserver(func(r player.Result) { done <- r }))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go e.Run(ctx)

	e.Play("sounds/missing.wav")
	r := <-done

	fmt.Println(r.Outcome)
	fmt.Println(r.Err)
	fmt.Println(e.State())
	// Output:
	// failed
	// source not found: sounds/missing.wav
	// idle
}
