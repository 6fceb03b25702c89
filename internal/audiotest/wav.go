// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

// Chunk is an extra RIFF chunk placed between "fmt " and "data".
type Chunk struct {
	ID   string
	Data []byte
}

// WAV describes a RIFF/WAVE container to build. Zero values give a canonical
// 16-bit PCM file.
type WAV struct {
	RIFF       string // default "RIFF"
	Wave       string // default "WAVE"
	FmtID      string // default "fmt "
	Format     uint16 // default 1 (PCM)
	Channels   int
	SampleRate int
	Bits       int // default 16
	FmtExtra   []byte
	Chunks     []Chunk
	NoData     bool
	DataLen    int // declared data length; 0 means len(Data)
	Data       []byte
}

// Build renders the container.
func (w WAV) Build() []byte {
	riff := orDefault(w.RIFF, "RIFF")
	wave := orDefault(w.Wave, "WAVE")
	fmtID := orDefault(w.FmtID, "fmt ")
	format := w.Format
	if format == 0 {
		format = 1
	}
	bits := w.Bits
	if bits == 0 {
		bits = 16
	}

	numChannels := uint16(w.Channels)
	byteRate := uint32(w.SampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := numChannels * uint16(bits/8)

	body := new(bytes.Buffer)
	body.WriteString(wave)

	// fmt chunk
	body.WriteString(fmtID)
	binary.Write(body, binary.LittleEndian, uint32(16+len(w.FmtExtra)))
	binary.Write(body, binary.LittleEndian, format)
	binary.Write(body, binary.LittleEndian, numChannels)
	binary.Write(body, binary.LittleEndian, uint32(w.SampleRate))
	binary.Write(body, binary.LittleEndian, byteRate)
	binary.Write(body, binary.LittleEndian, blockAlign)
	binary.Write(body, binary.LittleEndian, uint16(bits))
	body.Write(w.FmtExtra)

	for _, c := range w.Chunks {
		body.WriteString(c.ID)
		binary.Write(body, binary.LittleEndian, uint32(len(c.Data)))
		body.Write(c.Data)
	}

	if !w.NoData {
		declared := w.DataLen
		if declared == 0 {
			declared = len(w.Data)
		}
		body.WriteString("data")
		binary.Write(body, binary.LittleEndian, uint32(declared))
		body.Write(w.Data)
	}

	out := new(bytes.Buffer)
	out.WriteString(riff)
	binary.Write(out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())

	return out.Bytes()
}

// MonoWAV builds a canonical mono 16-bit file.
func MonoWAV(sampleRate int, samples []int16) []byte {
	return WAV{Channels: 1, SampleRate: sampleRate, Data: Bytes(samples)}.Build()
}

// StereoWAV builds a canonical stereo 16-bit file from interleaved samples.
func StereoWAV(sampleRate int, samples []int16) []byte {
	return WAV{Channels: 2, SampleRate: sampleRate, Data: Bytes(samples)}.Build()
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// AIFF builds an AIFF file with big-endian 16-bit samples.
func AIFF(sampleRate, channels int, samples []int16) []byte {
	be := binary.BigEndian

	data := make([]byte, 0, len(samples)*2)
	for _, s := range samples {
		data = be.AppendUint16(data, uint16(s))
	}

	comm := be.AppendUint16(nil, uint16(channels))
	comm = be.AppendUint32(comm, uint32(len(samples)/max(channels, 1)))
	comm = be.AppendUint16(comm, 16)
	comm = append(comm, extended(sampleRate)...)

	body := []byte("AIFF")
	body = append(body, "COMM"...)
	body = be.AppendUint32(body, uint32(len(comm)))
	body = append(body, comm...)
	body = append(body, "SSND"...)
	body = be.AppendUint32(body, uint32(8+len(data)))
	body = be.AppendUint32(body, 0) // offset
	body = be.AppendUint32(body, 0) // block size
	body = append(body, data...)

	out := []byte("FORM")
	out = be.AppendUint32(out, uint32(len(body)))
	return append(out, body...)
}

// extended encodes a positive integer as an 80-bit IEEE 754 extended float.
func extended(v int) []byte {
	out := make([]byte, 10)
	if v <= 0 {
		return out
	}

	exp := bits.Len64(uint64(v)) - 1
	binary.BigEndian.PutUint16(out[0:2], uint16(16383+exp))
	binary.BigEndian.PutUint64(out[2:10], uint64(v)<<(63-exp))
	return out
}
