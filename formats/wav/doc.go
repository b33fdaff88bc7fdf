// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM WAV files as audio.Asset values.
//
// # Supported Formats
//
//   - PCM (audio format 1) only, with a 16-byte fmt chunk
//   - Mono and stereo
//   - Sample rates from 8000 Hz to 192000 Hz
//   - Nominal bit depths of 8, 16, 24 and 32
//
// Samples are always read and written as interleaved 16-bit values; the
// nominal bit depth is carried through the header untouched.
//
// # Decoding WAV Files
//
//	a, err := wav.ReadFile("audio.wav")
//	if err != nil {
//	    // Handle error
//	}
//
// Chunks between "fmt " and "data" (LIST, fact, ...) are skipped by
// scanning for the "data" tag byte by byte.
//
// # Writing WAV Files
//
//	a.Sync()
//	err := wav.WriteFile("out.wav", a)
//
// Encode always writes the canonical 44-byte header and recomputes
// nothing, so decoding and re-encoding a canonical file is byte-exact.
//
// # Error Handling
//
// Every error is an *audio.Error. The sentinels in this package identify the
// exact failure, and audio.ErrFormat, audio.ErrIO and audio.ErrValidation
// identify its kind:
//
//	_, err := wav.ReadFile(path)
//	if errors.Is(err, wav.ErrMissingRIFF) {
//	    fmt.Println("Not a WAV file")
//	}
//
// # File Format
//
//	offset size field
//	0      4    "RIFF"
//	4      4    riff size (36 + data size)
//	8      4    "WAVE"
//	12     4    "fmt "
//	16     4    16
//	20     2    audio format (1)
//	22     2    channels
//	24     4    sample rate
//	28     4    byte rate
//	32     2    block align
//	34     2    bits per sample
//	36     4    "data"
//	40     4    data size
//	44     ...  samples
package wav
