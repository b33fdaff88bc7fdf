// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"github.com/ik5/audvinyl/audio"
	"github.com/ik5/audvinyl/utils"
)

const (
	// MaxCrackleLevel makes every frame crackle.
	MaxCrackleLevel = 10000
	// MaxPopLevel makes every frame pop.
	MaxPopLevel = 100000

	crackleSpread = 2000
	crackleGain   = 2
	popAmplitude  = 16384
)

// AddCrackle adds small random offsets to the lead sample of a frame with
// probability level/MaxCrackleLevel.
func AddCrackle(a *audio.Asset, level int, rnd Rand) error {
	const op = "crackle"

	if err := checkLevel(op, level, MaxCrackleLevel, rnd); err != nil {
		return err
	}
	if level == 0 {
		return nil
	}

	stride := max(a.Channels(), 1)
	for i := 0; i < len(a.Samples); i += stride {
		if rnd.IntN(MaxCrackleLevel) >= level {
			continue
		}

		offset := (rnd.IntN(crackleSpread) - crackleSpread/2) * crackleGain
		a.Samples[i] = utils.ClampInt16(int(a.Samples[i]) + offset)
	}

	return nil
}

// AddPops replaces the lead sample of a frame with a ±16384 spike with
// probability level/MaxPopLevel.
func AddPops(a *audio.Asset, level int, rnd Rand) error {
	const op = "pop"

	if err := checkLevel(op, level, MaxPopLevel, rnd); err != nil {
		return err
	}
	if level == 0 {
		return nil
	}

	stride := max(a.Channels(), 1)
	for i := 0; i < len(a.Samples); i += stride {
		if rnd.IntN(MaxPopLevel) >= level {
			continue
		}

		if rnd.IntN(2) == 0 {
			a.Samples[i] = popAmplitude
		} else {
			a.Samples[i] = -popAmplitude
		}
	}

	return nil
}

func checkLevel(op string, level, limit int, rnd Rand) error {
	if level < 0 || level > limit {
		return audio.ValidationError(op, "level %d outside 0..%d", level, limit)
	}
	if level > 0 && rnd == nil {
		return audio.ValidationError(op, "nil random source")
	}

	return nil
}
