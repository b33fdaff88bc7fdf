// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"math"

	"github.com/ik5/audvinyl/audio"
)

// MaxSeconds bounds every duration accepted by the length and needle
// filters. Longer durations are rejected before any frame count is computed.
const MaxSeconds = 24 * 60 * 60

// AdjustLength truncates a to floor(sec*rate) frames. A shorter asset is
// left alone unless pad is set, in which case it is padded with silence.
func AdjustLength(a *audio.Asset, sec float64, pad bool) error {
	const op = "length"

	if !validSeconds(sec) {
		return audio.ValidationError(op, "length %g outside 0..%d seconds", sec, MaxSeconds)
	}

	target := int(math.Floor(sec*float64(a.SampleRate))) * a.Channels()

	switch {
	case target < len(a.Samples):
		a.Samples = a.Samples[:target]
	case target > len(a.Samples) && pad:
		a.Samples = append(a.Samples, make([]int16, target-len(a.Samples))...)
	}

	a.Sync()

	return nil
}

// validSeconds is false for NaN, since every comparison with it is false.
func validSeconds(sec float64) bool {
	return sec >= 0 && sec <= MaxSeconds
}
