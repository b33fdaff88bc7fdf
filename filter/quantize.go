// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"log/slog"

	"github.com/ik5/audvinyl/audio"
	"github.com/ik5/audvinyl/utils"
)

// storageBits is the width every sample is held in, whatever the nominal depth.
const storageBits = 16

// Quantize lowers the nominal bit depth of a to newDepth by discarding the
// low bits of every sample. Storage stays 16-bit, so depths above 16 carry
// no extra resolution: 32 to 16 or 24 to 16 only rewrites the header, and
// 24 to 8 drops the same 8 bits as 16 to 8.
//
// Low bits are cleared on the magnitude, rounding toward zero, so no sample
// ever grows in magnitude or changes sign.
//
// A request to raise the depth is logged and ignored, and quantizing to the
// current depth is a no-op, so repeated calls are idempotent.
func Quantize(a *audio.Asset, newDepth int) error {
	const op = "quantize"

	if !audio.ValidBitDepth(newDepth) {
		return audio.ValidationError(op, "bit depth %d not one of 8, 16, 24, 32", newDepth)
	}

	current := int(a.BitsPerSample)

	switch {
	case newDepth > current:
		slog.Warn("bit depth can only be reduced, keeping current depth",
			"current", current, "requested", newDepth)

		return nil
	case newDepth == current:
		return nil
	}

	shift := min(current, storageBits) - min(newDepth, storageBits)

	for i, s := range a.Samples {
		a.Samples[i] = truncate(s, shift)
	}

	a.BitsPerSample = uint16(newDepth)
	a.Sync()

	return nil
}

func truncate(s int16, shift int) int16 {
	if shift <= 0 {
		return s
	}

	v := int(s)
	if v < 0 {
		return utils.ClampInt16(-(-v >> shift << shift))
	}

	return utils.ClampInt16(v >> shift << shift)
}
