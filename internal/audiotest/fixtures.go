// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds WAV fixtures for tests.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/ik5/audvinyl/audio"
)

// Chunk is an extra RIFF chunk placed between "fmt " and "data".
type Chunk struct {
	ID   string
	Data []byte
}

// WAVBytes builds a canonical 44-byte-header PCM WAV file.
func WAVBytes(sampleRate, channels, bitsPerSample int, samples []int16) []byte {
	return WAVBytesWithChunks(sampleRate, channels, bitsPerSample, samples)
}

// WAVBytesWithChunks builds a PCM WAV file with extra chunks before "data".
// Odd-sized chunks get the RIFF pad byte.
func WAVBytesWithChunks(sampleRate, channels, bitsPerSample int, samples []int16, extra ...Chunk) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	bits := uint16(bitsPerSample)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bits) / 8
	blockAlign := numChannels * bits / 8
	dataSize := uint32(len(samples) * 2)

	extraSize := uint32(0)
	for _, c := range extra {
		extraSize += 8 + uint32(len(c.Data)+len(c.Data)%2)
	}
	riffSize := 36 + extraSize + dataSize

	// RIFF header
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, riffSize)
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	for _, c := range extra {
		buf.WriteString(c.ID)
		binary.Write(buf, binary.LittleEndian, uint32(len(c.Data)))
		buf.Write(c.Data)
		if len(c.Data)%2 == 1 {
			buf.WriteByte(0)
		}
	}

	// data chunk
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}

	return buf.Bytes()
}

// NewAsset builds an asset whose sample for (frame, channel) comes from waveform.
func NewAsset(sampleRate, channels, bitsPerSample, frames int, waveform func(frame, channel int) int16) *audio.Asset {
	samples := make([]int16, frames*channels)
	for f := range frames {
		for c := range channels {
			samples[f*channels+c] = waveform(f, c)
		}
	}

	return audio.NewAsset(sampleRate, channels, bitsPerSample, samples)
}

// SilentAsset returns an all-zero asset.
func SilentAsset(sampleRate, channels, bitsPerSample, frames int) *audio.Asset {
	return NewAsset(sampleRate, channels, bitsPerSample, frames, func(int, int) int16 { return 0 })
}

// ConstantAsset returns an asset where every sample equals value.
func ConstantAsset(sampleRate, channels, bitsPerSample, frames int, value int16) *audio.Asset {
	return NewAsset(sampleRate, channels, bitsPerSample, frames, func(int, int) int16 { return value })
}

// SineAsset returns a sine wave of the given frequency and peak amplitude
// on every channel.
func SineAsset(sampleRate, channels, bitsPerSample, frames int, frequency, amplitude float64) *audio.Asset {
	return NewAsset(sampleRate, channels, bitsPerSample, frames, func(f, _ int) int16 {
		t := float64(f) / float64(sampleRate)
		return int16(amplitude * math.Sin(2*math.Pi*frequency*t))
	})
}

// RampAsset returns a rising ramp that differs per channel, so tests can
// tell channels apart: sample = frame*step + channel*offset.
func RampAsset(sampleRate, channels, frames int, step, offset int) *audio.Asset {
	return NewAsset(sampleRate, channels, 16, frames, func(f, c int) int16 {
		return int16(f*step + c*offset)
	})
}

// SineBytes returns a 16-bit WAV file holding a 440 Hz sine.
func SineBytes(sampleRate, channels, frames int) []byte {
	a := SineAsset(sampleRate, channels, 16, frames, 440, 16000)
	return WAVBytes(sampleRate, channels, 16, a.Samples)
}
