// SPDX-License-Identifier: EPL-2.0

// Package audio holds the in-memory representation of a PCM WAV file and
// the error kinds shared by the codec and the filters.
//
// # Asset
//
// An Asset mirrors the canonical 44-byte WAV header field by field and
// keeps the samples as interleaved int16 values:
//
//	a := audio.NewAsset(44100, 2, 16, samples)
//	fmt.Println(a.Frames(), a.Duration())
//
// Samples are stored as 16-bit values regardless of BitsPerSample. Reducing
// the bit depth is simulated by clearing low bits, not by changing the
// storage width, so DataSize is always len(Samples)*2.
//
// Code that changes Samples, SampleRate, NumChannels or BitsPerSample must
// call Sync to bring ByteRate, BlockAlign, DataSize and RiffSize back in
// line before the asset is encoded.
//
// # Errors
//
// Every failure is an *Error carrying a Kind:
//   - KindIO: a file could not be opened, read, created or written
//   - KindFormat: the input is not a supported PCM WAV layout
//   - KindValidation: a parameter is outside its documented range
//
// Test the kind with errors.Is:
//
//	if errors.Is(err, audio.ErrFormat) {
//	    // not a usable WAV file
//	}
package audio
