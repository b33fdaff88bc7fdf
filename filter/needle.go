// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"math"

	"github.com/ik5/audvinyl/audio"
)

const (
	impactSeconds = 0.01
	impactLow     = -25000
	impactHigh    = -23000
)

// AddNeedleDrop prepends sec seconds of stylus noise to a.
func AddNeedleDrop(a *audio.Asset, sec float64, rnd Rand) error {
	sound, err := needle("needle drop", a, sec, rnd)
	if err != nil || sound == nil {
		return err
	}

	a.Samples = append(sound, a.Samples...)
	raiseDepth(a)

	return nil
}

// AddNeedleLift appends sec seconds of stylus noise to a.
func AddNeedleLift(a *audio.Asset, sec float64, rnd Rand) error {
	sound, err := needle("needle lift", a, sec, rnd)
	if err != nil || sound == nil {
		return err
	}

	a.Samples = append(a.Samples, sound...)
	raiseDepth(a)

	return nil
}

// NeedleSound returns total = int(sec*rate) frames of interleaved noise: a
// 10 ms impact burst followed by friction noise decaying with time
// constant friction/2*sec.
func NeedleSound(rate, channels int, sec float64, rnd Rand) []int16 {
	total := int(sec * float64(rate))
	if total <= 0 {
		return nil
	}

	impact := min(int(impactSeconds*float64(rate)), total)
	friction := total - impact
	tau := float64(friction) / 2 * sec

	out := make([]int16, 0, total*channels)

	for range impact {
		out = appendFrame(out, impactSample(rnd), channels)
	}

	for i := range friction {
		decay := math.Exp(-float64(i) / tau)
		out = appendFrame(out, int16(float64(impactSample(rnd))*decay), channels)
	}

	return out
}

func needle(op string, a *audio.Asset, sec float64, rnd Rand) ([]int16, error) {
	switch {
	case !validSeconds(sec):
		return nil, audio.ValidationError(op, "duration %g outside 0..%d seconds", sec, MaxSeconds)
	case sec == 0:
		return nil, nil
	case rnd == nil:
		return nil, audio.ValidationError(op, "nil random source")
	}

	return NeedleSound(int(a.SampleRate), max(a.Channels(), 1), sec, rnd), nil
}

func impactSample(rnd Rand) int16 {
	return int16(impactLow + rnd.IntN(impactHigh-impactLow+1))
}

func appendFrame(dst []int16, v int16, channels int) []int16 {
	for range channels {
		dst = append(dst, v)
	}

	return dst
}

func raiseDepth(a *audio.Asset) {
	if a.BitsPerSample < 16 {
		a.BitsPerSample = 16
	}

	a.Sync()
}
