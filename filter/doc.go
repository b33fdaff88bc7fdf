// SPDX-License-Identifier: EPL-2.0

// Package filter implements the vinyl degradation filters. Every filter
// mutates an *audio.Asset in place and calls Sync before returning, so the
// asset can be encoded directly afterwards.
//
// Filters that draw random numbers take a Rand. Pass a seeded generator
// from NewRand to get reproducible output:
//
//	rnd := filter.NewRand(42, 0)
//	if err := filter.AddCrackle(a, 50, rnd); err != nil {
//	    return err
//	}
//
// Parameters outside their documented range return an error of kind
// audio.KindValidation and leave the asset untouched.
package filter
