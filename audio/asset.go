// SPDX-License-Identifier: EPL-2.0

package audio

import (
	goaudio "github.com/go-audio/audio"
)

const (
	// PCMFormat is the only supported WAV audio format tag.
	PCMFormat = 1
	// FmtChunkSize is the size of a plain PCM fmt chunk.
	FmtChunkSize = 16
	// HeaderSize is the size of the canonical RIFF/WAVE/PCM header.
	HeaderSize = 44

	MinSampleRate = 8000
	MaxSampleRate = 192000
)

// Asset is a decoded PCM WAV file. Samples are always stored as signed
// 16-bit interleaved values; BitsPerSample is the nominal depth written to
// the header.
type Asset struct {
	RiffSize      uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataSize      uint32

	Samples []int16
}

// NewAsset returns a PCM asset with consistent derived fields.
func NewAsset(sampleRate, channels, bitsPerSample int, samples []int16) *Asset {
	a := &Asset{
		AudioFormat:   PCMFormat,
		NumChannels:   uint16(channels),
		SampleRate:    uint32(sampleRate),
		BitsPerSample: uint16(bitsPerSample),
		Samples:       samples,
	}
	a.Sync()

	return a
}

// Sync recomputes ByteRate, BlockAlign, DataSize and RiffSize.
func (a *Asset) Sync() {
	a.ByteRate = a.SampleRate * uint32(a.NumChannels) * uint32(a.BitsPerSample) / 8
	a.BlockAlign = a.NumChannels * a.BitsPerSample / 8
	a.DataSize = uint32(len(a.Samples) * 2)
	a.RiffSize = 36 + a.DataSize
}

// Channels returns the channel count as int.
func (a *Asset) Channels() int { return int(a.NumChannels) }

// Frames returns the number of interleaved frames in the buffer.
func (a *Asset) Frames() int {
	if a.NumChannels == 0 {
		return 0
	}

	return len(a.Samples) / int(a.NumChannels)
}

// Duration returns the buffer length in seconds.
func (a *Asset) Duration() float64 {
	if a.SampleRate == 0 {
		return 0
	}

	return float64(a.Frames()) / float64(a.SampleRate)
}

// Validate checks the header invariants against the buffer.
func (a *Asset) Validate() error {
	const op = "validate"

	switch {
	case a.AudioFormat != PCMFormat:
		return FormatError(op, "unsupported audio format %d", a.AudioFormat)
	case a.NumChannels < 1 || a.NumChannels > 2:
		return FormatError(op, "unsupported channel count %d", a.NumChannels)
	case a.SampleRate < MinSampleRate || a.SampleRate > MaxSampleRate:
		return FormatError(op, "unsupported sample rate %d", a.SampleRate)
	case !ValidBitDepth(int(a.BitsPerSample)):
		return FormatError(op, "unsupported bits per sample %d", a.BitsPerSample)
	case a.ByteRate != a.SampleRate*uint32(a.NumChannels)*uint32(a.BitsPerSample)/8:
		return FormatError(op, "byte rate %d inconsistent with format", a.ByteRate)
	case a.BlockAlign != a.NumChannels*a.BitsPerSample/8:
		return FormatError(op, "block align %d inconsistent with format", a.BlockAlign)
	case int(a.DataSize) != len(a.Samples)*2:
		return FormatError(op, "data size %d does not match %d samples", a.DataSize, len(a.Samples))
	case a.RiffSize != 36+a.DataSize:
		return FormatError(op, "riff size %d does not match data size %d", a.RiffSize, a.DataSize)
	case len(a.Samples)%int(a.NumChannels) != 0:
		return FormatError(op, "%d samples is not a whole number of %d-channel frames", len(a.Samples), a.NumChannels)
	}

	return nil
}

// Clone returns a deep copy of a.
func (a *Asset) Clone() *Asset {
	out := *a
	out.Samples = append([]int16(nil), a.Samples...)

	return &out
}

// Format describes the asset for go-audio consumers.
func (a *Asset) Format() *goaudio.Format {
	return &goaudio.Format{
		NumChannels: int(a.NumChannels),
		SampleRate:  int(a.SampleRate),
	}
}

// IntBuffer copies the samples into a go-audio IntBuffer. SourceBitDepth is
// 16 because that is the storage width of Samples.
func (a *Asset) IntBuffer() *goaudio.IntBuffer {
	data := make([]int, len(a.Samples))
	for i, s := range a.Samples {
		data[i] = int(s)
	}

	return &goaudio.IntBuffer{
		Format:         a.Format(),
		Data:           data,
		SourceBitDepth: 16,
	}
}

// ValidBitDepth reports whether bits is a supported nominal depth.
func ValidBitDepth(bits int) bool {
	switch bits {
	case 8, 16, 24, 32:
		return true
	}

	return false
}
