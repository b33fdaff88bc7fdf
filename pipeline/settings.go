// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"math"

	"github.com/ik5/audvinyl/audio"
	"github.com/ik5/audvinyl/filter"
)

// Default conversion settings.
const (
	DefaultSampleRate = 48000
	DefaultBitDepth   = 24
	DefaultNeedleDrop = 0.8
	DefaultNeedleLift = 1.0
)

// DefaultDynamicRange is the default [min, max] window in dBFS.
var DefaultDynamicRange = []float64{-60, -0.5}

// Settings controls one conversion.
type Settings struct {
	// SampleRate is the output rate in Hz.
	SampleRate int
	// BitDepth is the output nominal depth; it can only be reduced.
	BitDepth int
	// DynamicRange is the [min, max] sample magnitude window in dBFS.
	DynamicRange []float64
	// CrackleLevel is the crackle probability in 1/10000 per frame.
	CrackleLevel int
	// PopLevel is the pop probability in 1/100000 per frame.
	PopLevel int
	// NeedleDrop and NeedleLift are stylus noise durations in seconds.
	NeedleDrop float64
	NeedleLift float64
	// Length is the output duration in seconds. Zero keeps the input
	// duration plus both needle sounds.
	Length float64
	// PadLength pads with silence when Length exceeds the processed audio.
	PadLength bool
}

// DefaultSettings returns the documented defaults.
func DefaultSettings() Settings {
	return Settings{
		SampleRate:   DefaultSampleRate,
		BitDepth:     DefaultBitDepth,
		DynamicRange: append([]float64(nil), DefaultDynamicRange...),
		NeedleDrop:   DefaultNeedleDrop,
		NeedleLift:   DefaultNeedleLift,
	}
}

// Validate checks every setting before any audio is touched.
func (s Settings) Validate() error {
	const op = "settings"

	switch {
	case s.SampleRate < audio.MinSampleRate || s.SampleRate > audio.MaxSampleRate:
		return audio.ValidationError(op, "sample rate %d outside %d..%d",
			s.SampleRate, audio.MinSampleRate, audio.MaxSampleRate)
	case !audio.ValidBitDepth(s.BitDepth):
		return audio.ValidationError(op, "bit depth %d not one of 8, 16, 24, 32", s.BitDepth)
	case len(s.DynamicRange) != 2:
		return audio.ValidationError(op, "dynamic range needs 2 bounds, got %d", len(s.DynamicRange))
	}

	for _, db := range s.DynamicRange {
		if math.IsNaN(db) || math.IsInf(db, 0) {
			return audio.ValidationError(op, "dynamic range bound %g is not finite", db)
		}
	}

	switch {
	case s.DynamicRange[0] > s.DynamicRange[1]:
		return audio.ValidationError(op, "dynamic range min %g above max %g", s.DynamicRange[0], s.DynamicRange[1])
	case s.CrackleLevel < 0 || s.CrackleLevel > filter.MaxCrackleLevel:
		return audio.ValidationError(op, "crackle level %d outside 0..%d", s.CrackleLevel, filter.MaxCrackleLevel)
	case s.PopLevel < 0 || s.PopLevel > filter.MaxPopLevel:
		return audio.ValidationError(op, "pop level %d outside 0..%d", s.PopLevel, filter.MaxPopLevel)
	case !seconds(s.NeedleDrop):
		return audio.ValidationError(op, "needle drop %g outside 0..%d seconds", s.NeedleDrop, filter.MaxSeconds)
	case !seconds(s.NeedleLift):
		return audio.ValidationError(op, "needle lift %g outside 0..%d seconds", s.NeedleLift, filter.MaxSeconds)
	case !seconds(s.Length):
		return audio.ValidationError(op, "length %g outside 0..%d seconds", s.Length, filter.MaxSeconds)
	}

	return nil
}

// seconds rejects NaN as well, since every comparison with it is false.
func seconds(v float64) bool {
	return v >= 0 && v <= filter.MaxSeconds
}
