// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audplay/audio"
	"github.com/ik5/audplay/internal/audiotest"
)

// fakePCM hands out samples in PCMBuffer-sized slices.
type fakePCM struct {
	samples []int
	offset  int
	err     error
}

func (f *fakePCM) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	if f.offset >= len(f.samples) {
		return 0, io.EOF
	}

	n := copy(buf.Data, f.samples[f.offset:])
	f.offset += n
	return n, nil
}

// encodeFixture writes an AIFF file through go-audio's encoder.
func encodeFixture(t *testing.T, bitDepth, channels int, data []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.aiff")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("os.Create() error = %v", err)
	}
	defer f.Close()

	enc := goaiff.NewEncoder(f, 22050, bitDepth, channels)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: 22050},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("Encoder.Write() error = %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Encoder.Close() error = %v", err)
	}

	return path
}

func TestSource_SwapsToLittleEndian(t *testing.T) {
	t.Parallel()

	src := newSource(&fakePCM{samples: []int{0x0102, -2, 32767, -32768}}, 8000, 2, 2)

	got, err := io.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	want := audiotest.Bytes([]int16{0x0102, -2, 32767, -32768})
	if !bytes.Equal(got, want) {
		t.Errorf("ReadAll() = % x, want % x", got, want)
	}
	if src.DataLen() != len(want) {
		t.Errorf("DataLen() = %d, want %d", src.DataLen(), len(want))
	}
}

func TestSource_SmallReads(t *testing.T) {
	t.Parallel()

	samples := make([]int, 3*readBlock+7)
	want := make([]int16, len(samples))
	for i := range samples {
		samples[i] = i - 5000
		want[i] = int16(i - 5000)
	}
	src := newSource(&fakePCM{samples: samples}, 8000, 1, len(samples))

	var got []byte
	p := make([]byte, 3)
	for {
		n, err := src.Read(p)
		got = append(got, p[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
	}

	if !bytes.Equal(got, audiotest.Bytes(want)) {
		t.Errorf("Read() in 3 byte steps produced %d bytes, want %d matching", len(got), len(want)*2)
	}
}

func TestSource_StopsAtDeclaredFrames(t *testing.T) {
	t.Parallel()

	src := newSource(&fakePCM{samples: []int{1, 2, 3, 4, 5, 6}}, 8000, 1, 4)

	got, err := io.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got) != 8 {
		t.Errorf("ReadAll() returned %d bytes, want 8", len(got))
	}
}

func TestSource_ShortData(t *testing.T) {
	t.Parallel()

	src := newSource(&fakePCM{samples: []int{1, 2}}, 8000, 1, 100)

	buf := make([]byte, src.DataLen())
	n, err := io.ReadFull(src, buf)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadFull() error = %v, want io.ErrUnexpectedEOF", err)
	}
	if n != 4 {
		t.Errorf("ReadFull() n = %d, want 4", n)
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("card removed")
	src := newSource(&fakePCM{err: boom}, 8000, 1, 10)

	_, err := src.Read(make([]byte, 8))
	if !errors.Is(err, audio.ErrIO) || !errors.Is(err, boom) {
		t.Errorf("Read() error = %v, want audio.ErrIO wrapping %v", err, boom)
	}
}

func TestDecoder_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		kind error
	}{
		{"empty input", nil, audio.ErrFormat},
		{"not an AIFF file", []byte("This is not AIFF data"), audio.ErrFormat},
		{"WAV container", audiotest.StereoWAV(8000, []int16{1, 2}), audio.ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.kind) {
				t.Errorf("Decode() error = %v, want %v", err, tt.kind)
			}
			if src != nil {
				t.Error("Decode() returned a source on error")
			}
		})
	}
}

func TestDecoder_GoAudioEncodedFile(t *testing.T) {
	t.Parallel()

	path := encodeFixture(t, 16, 2, []int{100, -100, 200, -200, 300, -300})

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	// Not an io.Seeker, so the decoder buffers the file.
	src, err := Decoder{}.Decode(io.MultiReader(f))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.DataLen() != 12 {
		t.Errorf("DataLen() = %d, want 12", src.DataLen())
	}

	got, err := io.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	want := audiotest.Bytes([]int16{100, -100, 200, -200, 300, -300})
	if !bytes.Equal(got, want) {
		t.Errorf("ReadAll() = % x, want % x", got, want)
	}
}

func TestDecoder_GoAudioEncoded24Bit(t *testing.T) {
	t.Parallel()

	path := encodeFixture(t, 24, 1, []int{1, 2, 3, 4})

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	_, err = Decoder{}.Decode(f)
	if !errors.Is(err, ErrOnlyPCM16bitSupported) {
		t.Errorf("Decode() error = %v, want ErrOnlyPCM16bitSupported", err)
	}
	if !errors.Is(err, audio.ErrUnsupportedFormat) {
		t.Errorf("Decode() error = %v, want audio.ErrUnsupportedFormat", err)
	}
}

func BenchmarkSource_Read(b *testing.B) {
	samples := make([]int, 44100*2)
	buf := make([]byte, 4096)

	b.ReportAllocs()

	for b.Loop() {
		src := newSource(&fakePCM{samples: samples}, 44100, 2, len(samples)/2)
		for {
			if _, err := src.Read(buf); err != nil {
				break
			}
		}
	}
}
