// SPDX-License-Identifier: EPL-2.0

package audvinyl

import (
	"fmt"
	"io"

	"github.com/ik5/audvinyl/audio"
	"github.com/ik5/audvinyl/filter"
	"github.com/ik5/audvinyl/formats/wav"
	"github.com/ik5/audvinyl/pipeline"
)

// Process runs the vinyl pipeline for s on a and returns the result.
func Process(a *audio.Asset, s pipeline.Settings, rnd filter.Rand) (*audio.Asset, error) {
	p, err := pipeline.New(s, rnd)
	if err != nil {
		return nil, err
	}

	return p.Run(a)
}

// Convert decodes a WAV stream from r, applies the vinyl pipeline and
// writes the result to w. Nothing is written unless decoding and every
// filter succeed.
//
// Example:
//
//	in, _ := os.Open("track.wav")
//	out, _ := os.Create("vinyl_track.wav")
//	err := audvinyl.Convert(in, out, pipeline.DefaultSettings(), filter.NewRand(1, 0))
func Convert(r io.Reader, w io.Writer, s pipeline.Settings, rnd filter.Rand) error {
	a, err := wav.Decode(r)
	if err != nil {
		return err
	}

	a, err = Process(a, s, rnd)
	if err != nil {
		return err
	}

	return wav.Encode(w, a)
}

// ConvertFile converts src into outDir/vinyl_<base of src> and returns the
// output path. No file is created when any step fails.
func ConvertFile(src, outDir string, s pipeline.Settings, rnd filter.Rand) (string, error) {
	out, err := wav.OutputPath(outDir, src)
	if err != nil {
		return "", err
	}

	a, err := wav.ReadFile(src)
	if err != nil {
		return "", err
	}

	a, err = Process(a, s, rnd)
	if err != nil {
		return "", fmt.Errorf("%s: %w", src, err)
	}

	if err := wav.WriteFile(out, a); err != nil {
		return "", err
	}

	return out, nil
}
