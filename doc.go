// SPDX-License-Identifier: EPL-2.0

// Package audvinyl turns PCM WAV files into recordings that sound like they
// were played from vinyl.
//
// A conversion decodes the file, runs a fixed filter sequence over the
// samples and encodes the result:
//   - a needle drop and needle lift are spliced around the audio
//   - crackle and pops are injected at configurable rates
//   - the bit depth and sample rate are reduced
//   - sample magnitudes are limited to a dBFS window
//   - the length is trimmed to the input plus the needle sounds
//
// # Quick Start
//
//	rnd := filter.NewRand(42, 0)
//	out, err := audvinyl.ConvertFile("track.wav", "out", pipeline.DefaultSettings(), rnd)
//	// out == "out/vinyl_track.wav"
//
// # Subpackages
//
//   - audio: the Asset type and the error kinds
//   - formats/wav: the RIFF/WAVE/PCM codec and file helpers
//   - filter: the individual filters
//   - pipeline: the stage sequence and its Settings
//
// The audvinyl command in cmd/audvinyl converts single files or whole
// directories from the shell.
//
// # Errors
//
// Every error carries an audio.Kind. Use errors.Is with audio.ErrIO,
// audio.ErrFormat or audio.ErrValidation to tell them apart.
package audvinyl
