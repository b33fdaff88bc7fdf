// SPDX-License-Identifier: EPL-2.0

// Package pipeline arranges the filters into the fixed vinyl conversion
// sequence:
//
//	needle-drop → needle-lift → crackle → pop → quantize → resample → limit → length
//
// Build a pipeline from Settings and run it on a decoded asset:
//
//	p, err := pipeline.New(pipeline.DefaultSettings(), filter.NewRand(1, 0))
//	if err != nil {
//	    return err
//	}
//	a, err = p.Run(a)
//
// A Pipeline keeps per-run state for the automatic output length, so use
// one Pipeline per asset.
package pipeline
