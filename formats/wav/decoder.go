// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ik5/audvinyl/audio"
)

const (
	tagRIFF = "RIFF"
	tagWAVE = "WAVE"
	tagFmt  = "fmt "
	tagData = "data"

	// bytes from "RIFF" up to and including bitsPerSample
	fmtHeaderSize = 36
)

// Decode parses a RIFF/WAVE/PCM stream into an Asset.
//
// Chunks between the fmt chunk and the data chunk are skipped by scanning
// for the "data" tag one byte at a time. No partial asset is returned on
// error.
func Decode(r io.Reader) (*audio.Asset, error) {
	br := bufio.NewReader(r)

	header := make([]byte, fmtHeaderSize)
	n, err := io.ReadFull(br, header)
	if tagErr := checkTags(header[:n]); tagErr != nil {
		return nil, tagErr
	}
	if err != nil {
		return nil, readError(err)
	}

	a := &audio.Asset{
		RiffSize:      binary.LittleEndian.Uint32(header[4:8]),
		AudioFormat:   binary.LittleEndian.Uint16(header[20:22]),
		NumChannels:   binary.LittleEndian.Uint16(header[22:24]),
		SampleRate:    binary.LittleEndian.Uint32(header[24:28]),
		ByteRate:      binary.LittleEndian.Uint32(header[28:32]),
		BlockAlign:    binary.LittleEndian.Uint16(header[32:34]),
		BitsPerSample: binary.LittleEndian.Uint16(header[34:36]),
	}

	if err := checkFormat(a); err != nil {
		return nil, err
	}

	if err := seekDataTag(br); err != nil {
		return nil, err
	}

	var sizeBuf [4]byte
	if _, err := io.ReadFull(br, sizeBuf[:]); err != nil {
		return nil, readError(err)
	}
	a.DataSize = binary.LittleEndian.Uint32(sizeBuf[:])

	if a.DataSize%2 != 0 {
		return nil, ErrPartialFrame
	}

	samples, err := readSamples(br, a.DataSize)
	if err != nil {
		return nil, err
	}
	if len(samples)%int(a.NumChannels) != 0 {
		return nil, ErrPartialFrame
	}
	a.Samples = samples

	return a, nil
}

// DecodeBytes is Decode over an in-memory file.
func DecodeBytes(data []byte) (*audio.Asset, error) {
	return Decode(bytes.NewReader(data))
}

func checkFormat(a *audio.Asset) error {
	if a.AudioFormat != audio.PCMFormat {
		return ErrNotPCM
	}
	if a.NumChannels < 1 || a.NumChannels > 2 {
		return ErrUnsupportedChannels
	}
	if a.SampleRate < audio.MinSampleRate || a.SampleRate > audio.MaxSampleRate {
		return ErrUnsupportedRate
	}
	if !audio.ValidBitDepth(int(a.BitsPerSample)) {
		return ErrUnsupportedDepth
	}
	if a.ByteRate != a.SampleRate*uint32(a.NumChannels)*uint32(a.BitsPerSample)/8 {
		return ErrByteRate
	}
	if a.BlockAlign != a.NumChannels*a.BitsPerSample/8 {
		return ErrBlockAlign
	}

	return nil
}

// seekDataTag advances br until the next four bytes read were "data".
// A mismatch re-synchronises one byte further on.
func seekDataTag(br *bufio.Reader) error {
	window := make([]byte, 0, 4)

	for {
		b, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return ErrMissingData
			}
			return audio.IOError("decode", err)
		}

		if len(window) == 4 {
			copy(window, window[1:])
			window = window[:3]
		}
		window = append(window, b)

		if len(window) == 4 && string(window) == tagData {
			return nil
		}
	}
}

func readSamples(r io.Reader, dataSize uint32) ([]int16, error) {
	const (
		chunkSize = 8192
		// a corrupt size field must not trigger a huge allocation up front
		maxPrealloc = 1 << 20
	)

	samples := make([]int16, 0, min(int(dataSize/2), maxPrealloc))
	buf := make([]byte, min(int(dataSize), chunkSize))

	remaining := int(dataSize)
	for remaining > 0 {
		chunk := buf[:min(remaining, chunkSize)]

		n, err := io.ReadFull(r, chunk)
		for i := 0; i+1 < n; i += 2 {
			samples = append(samples, int16(binary.LittleEndian.Uint16(chunk[i:i+2])))
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: declared %d bytes, read %d", ErrTruncatedData, dataSize, int(dataSize)-remaining+n)
			}
			return nil, audio.IOError("decode", err)
		}

		remaining -= n
	}

	return samples, nil
}

// checkTags validates the fixed tags and the fmt chunk size present in
// the (possibly short) header prefix.
func checkTags(header []byte) error {
	checks := []struct {
		off int
		tag string
		err error
	}{
		{0, tagRIFF, ErrMissingRIFF},
		{8, tagWAVE, ErrMissingWAVE},
		{12, tagFmt, ErrMissingFmt},
	}

	for _, c := range checks {
		end := min(len(header), c.off+4)
		if end <= c.off {
			return nil
		}
		if !strings.HasPrefix(c.tag, string(header[c.off:end])) {
			return c.err
		}
	}

	if len(header) >= 20 && binary.LittleEndian.Uint32(header[16:20]) != audio.FmtChunkSize {
		return ErrFmtChunkSize
	}

	return nil
}

// readError classifies a failed header read.
func readError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncatedHeader
	}

	return audio.IOError("decode", err)
}
