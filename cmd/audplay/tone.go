// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audplay/formats/wav"
	"github.com/ik5/audplay/utils"
)

type toneOptions struct {
	out      string
	freq     float64
	duration time.Duration
	rate     int
	channels int
	bits     int
	amp      float64
	title    string
}

func runTone(args []string) error {
	var o toneOptions

	fs := flag.NewFlagSet("tone", flag.ContinueOnError)
	fs.StringVar(&o.out, "o", "tone.wav", `output file, "-" for stdout`)
	fs.Float64Var(&o.freq, "freq", 440, "frequency in Hz")
	fs.DurationVar(&o.duration, "d", time.Second, "duration")
	fs.IntVar(&o.rate, "rate", 44100, "sample rate in Hz")
	fs.IntVar(&o.channels, "channels", 1, "1 or 2")
	fs.IntVar(&o.bits, "bits", 16, "bit depth; anything but 16 makes a file the player rejects")
	fs.Float64Var(&o.amp, "amp", 0.8, "amplitude, 0 to 1")
	fs.StringVar(&o.title, "title", "", "title stored in a LIST chunk")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if o.out == "-" {
		if o.bits != 16 || o.title != "" {
			return errors.New("stdout output only supports plain 16-bit files")
		}
		return writeTone16(os.Stdout, o)
	}

	f, err := os.Create(o.out)
	if err != nil {
		return err
	}

	if err := encodeTone(f, o); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func toneSamples(o toneOptions) ([]float32, error) {
	if o.channels != 1 && o.channels != 2 {
		return nil, fmt.Errorf("channels must be 1 or 2, got %d", o.channels)
	}
	if o.rate <= 0 || o.duration <= 0 {
		return nil, errors.New("rate and duration must be positive")
	}

	frames := int(o.duration.Seconds() * float64(o.rate))
	mono := make([]float32, frames)
	utils.Tone(mono, o.freq, o.rate, float32(o.amp), o.rate/100)
	return mono, nil
}

// writeTone16 streams a canonical 16-bit file, which needs no seeking.
func writeTone16(w io.Writer, o toneOptions) error {
	mono, err := toneSamples(o)
	if err != nil {
		return err
	}

	samples := make([]int16, 0, len(mono)*o.channels)
	for _, v := range mono {
		s := utils.Float32ToInt16(v)
		for range o.channels {
			samples = append(samples, s)
		}
	}

	return wav.WriteWAV16(w, o.rate, o.channels, samples)
}

// encodeTone uses the go-audio encoder, which handles any bit depth and
// metadata chunks.
func encodeTone(ws io.WriteSeeker, o toneOptions) error {
	switch o.bits {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("unsupported bit depth %d", o.bits)
	}

	mono, err := toneSamples(o)
	if err != nil {
		return err
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: o.channels, SampleRate: o.rate},
		Data:           make([]int, 0, len(mono)*o.channels),
		SourceBitDepth: o.bits,
	}
	for _, v := range mono {
		s := utils.Float32ToPCM(v, o.bits)
		for range o.channels {
			buf.Data = append(buf.Data, s)
		}
	}

	enc := gowav.NewEncoder(ws, o.rate, o.bits, o.channels, 1)
	if o.title != "" {
		enc.Metadata = &gowav.Metadata{Title: o.title}
	}

	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}
