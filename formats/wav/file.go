// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audvinyl/audio"
)

// OutputPrefix is prepended to the base name of every converted file.
const OutputPrefix = "vinyl_"

// ReadFile opens and decodes the WAV file at path.
func ReadFile(path string) (*audio.Asset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, audio.IOError("open "+path, err)
	}
	defer f.Close()

	a, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return a, nil
}

// WriteFile encodes a and writes it to path. The file is only created once
// the whole asset has been encoded, and it is removed again if writing
// fails, so a failed call never leaves a truncated WAV behind.
func WriteFile(path string, a *audio.Asset) (err error) {
	data, err := EncodeBytes(a)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return audio.IOError("create "+path, err)
	}

	defer func() {
		closeErr := f.Close()
		if err == nil && closeErr != nil {
			err = audio.IOError("close "+path, closeErr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return audio.IOError("write "+path, err)
	}

	return nil
}

// OutputPath returns <outDir>/vinyl_<base name of src>. outDir must be an
// existing directory and src must carry the .wav extension.
func OutputPath(outDir, src string) (string, error) {
	info, err := os.Stat(outDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrOutputDir, outDir)
		}
		return "", audio.IOError("stat "+outDir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrOutputDir, outDir)
	}

	base := filepath.Base(src)
	if !IsWAVName(base) {
		return "", fmt.Errorf("%w: %s", ErrNotWavExtension, src)
	}

	return filepath.Join(outDir, OutputPrefix+base), nil
}

// IsWAVName reports whether name ends in ".wav" (case-insensitive).
func IsWAVName(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".wav")
}
