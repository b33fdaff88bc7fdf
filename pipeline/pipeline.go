// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/ik5/audvinyl/audio"
	"github.com/ik5/audvinyl/filter"
)

// Stage names, in the order New arranges them.
const (
	StageNeedleDrop = "needle-drop"
	StageNeedleLift = "needle-lift"
	StageCrackle    = "crackle"
	StagePop        = "pop"
	StageQuantize   = "quantize"
	StageResample   = "resample"
	StageLimit      = "limit"
	StageLength     = "length"
)

// Stage is one named step that mutates an asset in place.
type Stage struct {
	Name  string
	Apply func(a *audio.Asset) error
}

// Pipeline runs its stages in order.
type Pipeline struct {
	Stages []Stage
	// Logger receives a debug record per stage. Nil uses slog.Default.
	Logger *slog.Logger
}

// New builds the fixed vinyl stage sequence for s. Needle sounds are
// spliced in first so the later stages degrade them along with the music.
func New(s Settings, rnd filter.Rand) (*Pipeline, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	// Duration of the input plus both needle sounds, measured when the
	// needle-drop stage sees the decoded asset.
	var autoLength float64

	return &Pipeline{Stages: []Stage{
		{StageNeedleDrop, func(a *audio.Asset) error {
			autoLength = a.Duration() + s.NeedleDrop + s.NeedleLift
			return filter.AddNeedleDrop(a, s.NeedleDrop, rnd)
		}},
		{StageNeedleLift, func(a *audio.Asset) error {
			return filter.AddNeedleLift(a, s.NeedleLift, rnd)
		}},
		{StageCrackle, func(a *audio.Asset) error {
			return filter.AddCrackle(a, s.CrackleLevel, rnd)
		}},
		{StagePop, func(a *audio.Asset) error {
			return filter.AddPops(a, s.PopLevel, rnd)
		}},
		{StageQuantize, func(a *audio.Asset) error {
			return filter.Quantize(a, s.BitDepth)
		}},
		{StageResample, func(a *audio.Asset) error {
			return filter.Resample(a, s.SampleRate)
		}},
		{StageLimit, func(a *audio.Asset) error {
			return filter.LimitRange(a, s.DynamicRange)
		}},
		{StageLength, func(a *audio.Asset) error {
			if s.Length > 0 {
				return filter.AdjustLength(a, s.Length, s.PadLength)
			}
			return filter.AdjustLength(a, autoLength, false)
		}},
	}}, nil
}

// Names returns the stage names in run order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.Stages))
	for i, st := range p.Stages {
		names[i] = st.Name
	}

	return names
}

// Run applies every stage to a and returns it. The first failing stage
// stops the run; its error is prefixed with the stage name.
func (p *Pipeline) Run(a *audio.Asset) (*audio.Asset, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	for _, st := range p.Stages {
		if err := st.Apply(a); err != nil {
			return nil, fmt.Errorf("%s: %w", st.Name, err)
		}

		logger.Debug("stage done",
			"stage", st.Name,
			"frames", a.Frames(),
			"sample_rate", a.SampleRate,
			"bits_per_sample", a.BitsPerSample)
	}

	return a, nil
}
