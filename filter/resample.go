// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"github.com/ik5/audvinyl/audio"
	"github.com/ik5/audvinyl/utils"
)

// Resample converts a to newRate using linear interpolation between
// neighbouring frames of the same channel. The new frame count is
// floor(frames * newRate / oldRate).
func Resample(a *audio.Asset, newRate int) error {
	const op = "resample"

	if newRate < audio.MinSampleRate || newRate > audio.MaxSampleRate {
		return audio.ValidationError(op, "sample rate %d outside %d..%d",
			newRate, audio.MinSampleRate, audio.MaxSampleRate)
	}

	oldRate := int(a.SampleRate)
	if newRate == oldRate {
		return nil
	}
	if oldRate == 0 {
		return audio.ValidationError(op, "asset has no sample rate")
	}

	channels := a.Channels()
	oldFrames := a.Frames()
	newFrames := int(uint64(oldFrames) * uint64(newRate) / uint64(oldRate))

	out := make([]int16, newFrames*channels)
	step := float64(oldRate) / float64(newRate)
	last := oldFrames - 1

	for i := range newFrames {
		pos := float64(i) * step
		lo := min(int(pos), last)
		hi := min(lo+1, last)
		w := pos - float64(lo)

		for c := range channels {
			y0 := float64(a.Samples[lo*channels+c])
			y1 := float64(a.Samples[hi*channels+c])
			out[i*channels+c] = utils.FloatToInt16(utils.LinearInterpolate(y0, y1, w))
		}
	}

	a.Samples = out
	a.SampleRate = uint32(newRate)
	a.Sync()

	return nil
}
