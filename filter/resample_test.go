// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"errors"
	"slices"
	"testing"

	"github.com/ik5/audvinyl/audio"
	"github.com/ik5/audvinyl/internal/audiotest"
)

func TestResample_FrameCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		oldRate    int
		newRate    int
		channels   int
		frames     int
		wantFrames int
	}{
		{"upsample 44.1k to 48k", 44100, 48000, 1, 44100, 48000},
		{"downsample 48k to 44.1k", 48000, 44100, 1, 1001, 919},
		{"halve", 44100, 22050, 2, 1000, 500},
		{"double", 8000, 16000, 2, 333, 666},
		{"to minimum", 192000, 8000, 1, 100, 4},
		{"empty", 44100, 8000, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := audiotest.RampAsset(tt.oldRate, tt.channels, tt.frames, 7, 0)

			if err := Resample(a, tt.newRate); err != nil {
				t.Fatalf("Resample() error = %v", err)
			}
			if got := a.Frames(); got != tt.wantFrames {
				t.Errorf("Frames() = %d, want %d", got, tt.wantFrames)
			}
			if len(a.Samples) != tt.wantFrames*tt.channels {
				t.Errorf("len(Samples) = %d, want %d", len(a.Samples), tt.wantFrames*tt.channels)
			}
			if int(a.SampleRate) != tt.newRate {
				t.Errorf("SampleRate = %d, want %d", a.SampleRate, tt.newRate)
			}
			if err := a.Validate(); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestResample_InvalidRate(t *testing.T) {
	t.Parallel()

	for _, rate := range []int{0, -44100, audio.MinSampleRate - 1, audio.MaxSampleRate + 1} {
		a := audiotest.RampAsset(44100, 1, 10, 1, 0)
		before := slices.Clone(a.Samples)

		err := Resample(a, rate)
		if !errors.Is(err, audio.ErrValidation) {
			t.Errorf("Resample(%d) error = %v, want validation kind", rate, err)
		}
		if !slices.Equal(a.Samples, before) || a.SampleRate != 44100 {
			t.Errorf("Resample(%d) modified the asset on error", rate)
		}
	}
}

func TestResample_SameRate(t *testing.T) {
	t.Parallel()

	a := audiotest.RampAsset(44100, 2, 64, 3, -50)
	before := a.Clone()

	if err := Resample(a, 44100); err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	if !slices.Equal(a.Samples, before.Samples) {
		t.Error("Resample() to the same rate changed the samples")
	}
}

func TestResample_RoundTripApproximates(t *testing.T) {
	t.Parallel()

	const frames = 4410

	a := audiotest.SineAsset(44100, 1, 16, frames, 440, 10000)
	orig := slices.Clone(a.Samples)

	if err := Resample(a, 48000); err != nil {
		t.Fatalf("Resample(48000) error = %v", err)
	}
	if err := Resample(a, 44100); err != nil {
		t.Fatalf("Resample(44100) error = %v", err)
	}

	if len(a.Samples) != frames {
		t.Fatalf("len(Samples) = %d, want %d", len(a.Samples), frames)
	}

	const tolerance = 100

	identical := true
	for i := range orig {
		d := int(a.Samples[i]) - int(orig[i])
		if d < -tolerance || d > tolerance {
			t.Fatalf("sample %d = %d, want %d ±%d", i, a.Samples[i], orig[i], tolerance)
		}
		if d != 0 {
			identical = false
		}
	}

	if identical {
		t.Error("round trip reproduced the buffer exactly, expected interpolation error")
	}
}

func TestResample_ChannelsStaySeparate(t *testing.T) {
	t.Parallel()

	a := audiotest.NewAsset(44100, 2, 16, 2000, func(_, ch int) int16 {
		if ch == 0 {
			return 8000
		}
		return -8000
	})

	if err := Resample(a, 32000); err != nil {
		t.Fatalf("Resample() error = %v", err)
	}

	for i := 0; i < len(a.Samples); i += 2 {
		if a.Samples[i] < 7990 || a.Samples[i+1] > -7990 {
			t.Fatalf("frame %d = [%d %d], channels were mixed", i/2, a.Samples[i], a.Samples[i+1])
		}
	}
}

func BenchmarkResample(b *testing.B) {
	src := audiotest.SineAsset(44100, 2, 16, 44100, 440, 12000)

	b.ReportAllocs()

	for b.Loop() {
		a := src.Clone()
		if err := Resample(a, 48000); err != nil {
			b.Fatal(err)
		}
	}
}
