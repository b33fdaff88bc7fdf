// SPDX-License-Identifier: EPL-2.0

package wav

import "github.com/ik5/audvinyl/audio"

var (
	ErrMissingRIFF         = &audio.Error{Kind: audio.KindFormat, Op: "decode", Msg: "missing RIFF tag"}
	ErrMissingWAVE         = &audio.Error{Kind: audio.KindFormat, Op: "decode", Msg: "missing WAVE tag"}
	ErrMissingFmt          = &audio.Error{Kind: audio.KindFormat, Op: "decode", Msg: "missing 'fmt ' sub-chunk"}
	ErrFmtChunkSize        = &audio.Error{Kind: audio.KindFormat, Op: "decode", Msg: "unexpected fmt chunk size"}
	ErrNotPCM              = &audio.Error{Kind: audio.KindFormat, Op: "decode", Msg: "unsupported audio format (only PCM is supported)"}
	ErrUnsupportedChannels = &audio.Error{Kind: audio.KindFormat, Op: "decode", Msg: "unsupported number of channels"}
	ErrUnsupportedRate     = &audio.Error{Kind: audio.KindFormat, Op: "decode", Msg: "unsupported sample rate"}
	ErrUnsupportedDepth    = &audio.Error{Kind: audio.KindFormat, Op: "decode", Msg: "unsupported bits per sample"}
	ErrByteRate            = &audio.Error{Kind: audio.KindFormat, Op: "decode", Msg: "byte rate inconsistent with format"}
	ErrBlockAlign          = &audio.Error{Kind: audio.KindFormat, Op: "decode", Msg: "block align inconsistent with format"}
	ErrMissingData         = &audio.Error{Kind: audio.KindFormat, Op: "decode", Msg: "missing 'data' sub-chunk"}
	ErrTruncatedHeader     = &audio.Error{Kind: audio.KindFormat, Op: "decode", Msg: "truncated header"}
	ErrPartialFrame        = &audio.Error{Kind: audio.KindFormat, Op: "decode", Msg: "data is not a whole number of frames"}
	ErrTruncatedData       = &audio.Error{Kind: audio.KindIO, Op: "decode", Msg: "fewer data bytes than declared"}
	ErrDataSizeMismatch    = &audio.Error{Kind: audio.KindFormat, Op: "encode", Msg: "data size does not match sample buffer"}
	ErrOutputDir           = &audio.Error{Kind: audio.KindValidation, Op: "output path", Msg: "output path is not an existing directory"}
	ErrNotWavExtension     = &audio.Error{Kind: audio.KindValidation, Op: "output path", Msg: "source file has no .wav extension"}
)
