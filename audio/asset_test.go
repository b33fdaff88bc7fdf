// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"
)

func TestNewAsset_DerivedFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		rate, ch, bits int
		samples        int
		wantByteRate   uint32
		wantBlockAlign uint16
	}{
		{"mono 16-bit", 44100, 1, 16, 44100, 88200, 2},
		{"stereo 16-bit", 48000, 2, 16, 10, 192000, 4},
		{"mono 8-bit", 44100, 1, 8, 4, 44100, 1},
		{"stereo 24-bit", 96000, 2, 24, 6, 576000, 6},
		{"stereo 32-bit", 192000, 2, 32, 0, 1536000, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := NewAsset(tt.rate, tt.ch, tt.bits, make([]int16, tt.samples))

			if a.ByteRate != tt.wantByteRate {
				t.Errorf("ByteRate = %d, want %d", a.ByteRate, tt.wantByteRate)
			}
			if a.BlockAlign != tt.wantBlockAlign {
				t.Errorf("BlockAlign = %d, want %d", a.BlockAlign, tt.wantBlockAlign)
			}
			if a.DataSize != uint32(tt.samples*2) {
				t.Errorf("DataSize = %d, want %d", a.DataSize, tt.samples*2)
			}
			if a.RiffSize != 36+a.DataSize {
				t.Errorf("RiffSize = %d, want %d", a.RiffSize, 36+a.DataSize)
			}
			if err := a.Validate(); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestAsset_FramesAndDuration(t *testing.T) {
	t.Parallel()

	a := NewAsset(8000, 2, 16, make([]int16, 16000))

	if a.Frames() != 8000 {
		t.Errorf("Frames() = %d, want 8000", a.Frames())
	}
	if math.Abs(a.Duration()-1.0) > 1e-12 {
		t.Errorf("Duration() = %v, want 1.0", a.Duration())
	}

	var empty Asset
	if empty.Frames() != 0 || empty.Duration() != 0 {
		t.Error("zero Asset must report 0 frames and 0 duration")
	}
}

func TestAsset_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(a *Asset)
	}{
		{"audio format", func(a *Asset) { a.AudioFormat = 3 }},
		{"channels", func(a *Asset) { a.NumChannels = 0 }},
		{"sample rate", func(a *Asset) { a.SampleRate = 1000 }},
		{"bit depth", func(a *Asset) { a.BitsPerSample = 12 }},
		{"byte rate", func(a *Asset) { a.ByteRate++ }},
		{"block align", func(a *Asset) { a.BlockAlign++ }},
		{"data size", func(a *Asset) { a.DataSize += 2 }},
		{"riff size", func(a *Asset) { a.RiffSize++ }},
		{"partial frame", func(a *Asset) { a.Samples = a.Samples[:3]; a.DataSize = 6; a.RiffSize = 42 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := NewAsset(8000, 2, 16, make([]int16, 4))
			tt.mutate(a)

			err := a.Validate()
			if !errors.Is(err, ErrFormat) {
				t.Errorf("Validate() error = %v, want format kind", err)
			}
		})
	}
}

func TestAsset_SyncAfterMutation(t *testing.T) {
	t.Parallel()

	a := NewAsset(8000, 1, 16, make([]int16, 10))
	a.Samples = append(a.Samples, 1, 2, 3)
	a.SampleRate = 16000
	a.BitsPerSample = 8

	if err := a.Validate(); err == nil {
		t.Fatal("Validate() = nil before Sync, want error")
	}

	a.Sync()

	if err := a.Validate(); err != nil {
		t.Errorf("Validate() after Sync error = %v", err)
	}
	if a.ByteRate != 16000 {
		t.Errorf("ByteRate = %d, want 16000", a.ByteRate)
	}
}

func TestAsset_Clone(t *testing.T) {
	t.Parallel()

	a := NewAsset(8000, 1, 16, []int16{1, 2, 3})
	c := a.Clone()
	c.Samples[0] = 99
	c.SampleRate = 16000

	if a.Samples[0] != 1 || a.SampleRate != 8000 {
		t.Error("Clone() shares state with the original")
	}
}

func TestAsset_IntBuffer(t *testing.T) {
	t.Parallel()

	a := NewAsset(22050, 2, 24, []int16{-32768, 32767, 0, 5})
	buf := a.IntBuffer()

	if buf.Format.SampleRate != 22050 || buf.Format.NumChannels != 2 {
		t.Errorf("Format = %+v, want 22050 Hz stereo", *buf.Format)
	}
	if buf.SourceBitDepth != 16 {
		t.Errorf("SourceBitDepth = %d, want 16", buf.SourceBitDepth)
	}
	want := []int{-32768, 32767, 0, 5}
	for i := range want {
		if buf.Data[i] != want[i] {
			t.Errorf("Data[%d] = %d, want %d", i, buf.Data[i], want[i])
		}
	}
	if buf.NumFrames() != 2 {
		t.Errorf("NumFrames() = %d, want 2", buf.NumFrames())
	}
}

func TestValidBitDepth(t *testing.T) {
	t.Parallel()

	for bits := 0; bits <= 40; bits++ {
		want := bits == 8 || bits == 16 || bits == 24 || bits == 32
		if got := ValidBitDepth(bits); got != want {
			t.Errorf("ValidBitDepth(%d) = %v, want %v", bits, got, want)
		}
	}
}
