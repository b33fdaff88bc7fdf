// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"math"

	"github.com/ik5/audvinyl/audio"
	"github.com/ik5/audvinyl/utils"
)

// LimitRange clamps the magnitude of every non-zero sample into the window
// rng = [minDB, maxDB], given in dBFS relative to the full scale of the
// current bit depth. Signs are kept.
//
// Zero samples are left at zero: the window's floor only lifts samples that
// already carry signal, so silence is never raised to linear(minDB).
func LimitRange(a *audio.Asset, rng []float64) error {
	const op = "limit"

	if len(rng) != 2 {
		return audio.ValidationError(op, "dynamic range needs 2 bounds, got %d", len(rng))
	}

	minDB, maxDB := rng[0], rng[1]

	switch {
	case !finite(minDB) || !finite(maxDB):
		return audio.ValidationError(op, "dynamic range bounds must be finite, got [%g, %g]", minDB, maxDB)
	case minDB > maxDB:
		return audio.ValidationError(op, "dynamic range min %g above max %g", minDB, maxDB)
	}

	lo := Linear(minDB, int(a.BitsPerSample))
	hi := Linear(maxDB, int(a.BitsPerSample))
	ceilLo, floorHi := math.Ceil(lo), math.Floor(hi)

	for i, s := range a.Samples {
		if s == 0 {
			continue
		}

		mag := math.Abs(float64(s))

		switch {
		case mag > hi:
			mag = floorHi
		case mag < lo:
			mag = math.Min(ceilLo, floorHi)
		}

		v := int(mag)
		if s < 0 {
			v = -v
		}

		a.Samples[i] = utils.ClampInt16(v)
	}

	return nil
}

// FullScale returns the largest magnitude representable at bits, expressed
// in 16-bit storage units.
func FullScale(bits int) float64 {
	if bits <= 0 || bits > 16 {
		return math.MaxInt16
	}

	fs := (1<<(bits-1) - 1) << (16 - bits)

	return float64(fs)
}

// Linear converts a dBFS level to a sample magnitude at the given depth.
func Linear(db float64, bits int) float64 {
	return FullScale(bits) * math.Pow(10, db/20)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
