// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audvinyl/audio"
)

// Encode writes a as a canonical 44-byte-header PCM WAV stream.
//
// Header fields are written exactly as they are set on a; call a.Sync
// first if the buffer changed. Encode only refuses a DataSize that
// disagrees with the buffer, since that would produce a file whose header
// lies about its payload.
func Encode(w io.Writer, a *audio.Asset) error {
	if int(a.DataSize) != len(a.Samples)*2 {
		return fmt.Errorf("%w: header says %d bytes, buffer holds %d", ErrDataSizeMismatch, a.DataSize, len(a.Samples)*2)
	}

	header := make([]byte, audio.HeaderSize)

	// RIFF header (12 bytes)
	copy(header[0:4], tagRIFF)
	binary.LittleEndian.PutUint32(header[4:8], a.RiffSize)
	copy(header[8:12], tagWAVE)

	// fmt chunk (24 bytes)
	copy(header[12:16], tagFmt)
	binary.LittleEndian.PutUint32(header[16:20], audio.FmtChunkSize)
	binary.LittleEndian.PutUint16(header[20:22], a.AudioFormat)
	binary.LittleEndian.PutUint16(header[22:24], a.NumChannels)
	binary.LittleEndian.PutUint32(header[24:28], a.SampleRate)
	binary.LittleEndian.PutUint32(header[28:32], a.ByteRate)
	binary.LittleEndian.PutUint16(header[32:34], a.BlockAlign)
	binary.LittleEndian.PutUint16(header[34:36], a.BitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], tagData)
	binary.LittleEndian.PutUint32(header[40:44], a.DataSize)

	if _, err := w.Write(header); err != nil {
		return audio.IOError("encode", err)
	}

	const chunkSize = 8192 // samples per write
	if len(a.Samples) == 0 {
		return nil
	}

	buf := make([]byte, min(len(a.Samples), chunkSize)*2)

	for i := 0; i < len(a.Samples); i += chunkSize {
		chunk := a.Samples[i:min(i+chunkSize, len(a.Samples))]
		buf = buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return audio.IOError("encode", err)
		}
	}

	return nil
}

// EncodeBytes returns the encoded file as a byte slice.
func EncodeBytes(a *audio.Asset) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, audio.HeaderSize+len(a.Samples)*2))
	if err := Encode(buf, a); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
