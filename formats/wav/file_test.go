// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audvinyl/audio"
	"github.com/ik5/audvinyl/internal/audiotest"
)

func TestReadWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "in.wav")
	data := audiotest.WAVBytes(16000, 1, 16, []int16{1, -2, 3, -4})

	if err := os.WriteFile(src, data, 0o600); err != nil {
		t.Fatal(err)
	}

	a, err := ReadFile(src)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	dst := filepath.Join(dir, "out.wav")
	if err := WriteFile(dst, a); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, data) {
		t.Error("written file differs from the input")
	}
}

func TestReadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.wav"))
	if !errors.Is(err, audio.ErrIO) {
		t.Errorf("ReadFile() error = %v, want io kind", err)
	}
}

func TestReadFile_NotWAV(t *testing.T) {
	t.Parallel()

	src := filepath.Join(t.TempDir(), "text.wav")
	if err := os.WriteFile(src, []byte("hello, this is not audio at all......................"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := ReadFile(src)
	if !errors.Is(err, ErrMissingRIFF) {
		t.Errorf("ReadFile() error = %v, want ErrMissingRIFF", err)
	}
}

func TestWriteFile_NoOutputOnEncodeError(t *testing.T) {
	t.Parallel()

	dst := filepath.Join(t.TempDir(), "out.wav")

	a := audio.NewAsset(8000, 1, 16, []int16{1})
	a.DataSize = 100

	if err := WriteFile(dst, a); !errors.Is(err, ErrDataSizeMismatch) {
		t.Fatalf("WriteFile() error = %v, want ErrDataSizeMismatch", err)
	}
	if _, err := os.Stat(dst); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("output file exists after failed encode (stat err = %v)", err)
	}
}

func TestWriteFile_CreateFailure(t *testing.T) {
	t.Parallel()

	dst := filepath.Join(t.TempDir(), "missing-dir", "out.wav")

	err := WriteFile(dst, audio.NewAsset(8000, 1, 16, nil))
	if !errors.Is(err, audio.ErrIO) {
		t.Errorf("WriteFile() error = %v, want io kind", err)
	}
}

func TestOutputPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(file, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		outDir  string
		src     string
		want    string
		wantErr error
	}{
		{"simple", dir, "/music/song.wav", filepath.Join(dir, "vinyl_song.wav"), nil},
		{"upper case extension", dir, "SONG.WAV", filepath.Join(dir, "vinyl_SONG.WAV"), nil},
		{"not a wav", dir, "song.mp3", "", ErrNotWavExtension},
		{"missing dir", filepath.Join(dir, "nope"), "song.wav", "", ErrOutputDir},
		{"dir is a file", file, "song.wav", "", ErrOutputDir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := OutputPath(tt.outDir, tt.src)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("OutputPath() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("OutputPath() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("OutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
