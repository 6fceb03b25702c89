// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"

	"github.com/ik5/audplay/audio"
	"github.com/ik5/audplay/internal/audiotest"
)

// Example_pool demonstrates staging a stereo source and draining it through
// the ping and pong buffers.
func Example_pool() {
	pool, err := audio.NewPool(4096, 1<<20)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	// 10000 bytes of stereo sample data
	src := audiotest.NewPCMSource(44100, 2, audiotest.Ramp(5000))
	if err := pool.StartSession(src); err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer pool.EndSession()

	idx := audio.Ping
	for {
		n, err := pool.LoadChunk(idx)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		if n == 0 {
			break
		}
		fmt.Printf("%s: %d bytes\n", idx, n)
		idx = idx.Other()
	}
	// Output:
	// ping: 4096 bytes
	// pong: 4096 bytes
	// ping: 1808 bytes
}

// Example_monoExpansion shows a mono source doubling in size on its way to
// the hardware buffers.
func Example_monoExpansion() {
	pool, _ := audio.NewPool(4096, 1<<20)

	// 3000 mono samples = 6000 bytes
	src := audiotest.NewPCMSource(22050, 1, audiotest.Ramp(3000))
	if err := pool.StartSession(src); err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer pool.EndSession()

	fmt.Println("Mode:", pool.Mode())

	total := 0
	idx := audio.Ping
	for {
		n, _ := pool.LoadChunk(idx)
		if n == 0 {
			break
		}
		total += n
		idx = idx.Other()
	}

	fmt.Println("Hardware bytes:", total)
	// Output:
	// Mode: mono-duplicate
	// Hardware bytes: 12000
}

// Example_registry shows decoder lookup by file extension.
func Example_registry() {
	reg := audio.NewRegistry()
	reg.Register("wav", audiotest.NopDecoder{})

	_, ok := reg.ForPath("/sdcard/beep.wav")
	fmt.Println("wav:", ok)

	_, ok = reg.ForPath("/sdcard/beep.mp3")
	fmt.Println("mp3:", ok)
	// Output:
	// wav: true
	// mp3: false
}
