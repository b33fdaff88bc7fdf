// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/audvinyl/formats/wav"
	"github.com/ik5/audvinyl/internal/audiotest"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	orig := slog.Default()
	t.Cleanup(func() { slog.SetDefault(orig) })

	var out bytes.Buffer

	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(io.Discard)

	err := root.Execute()

	return out.String(), err
}

func writeWAV(t *testing.T, path string, rate, channels, frames int) {
	t.Helper()

	if err := os.WriteFile(path, audiotest.SineBytes(rate, channels, frames), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestConvert_SingleFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "song.wav")
	outDir := t.TempDir()
	writeWAV(t, src, 22050, 2, 2205)

	stdout, err := execute(t, "convert", src, outDir,
		"--seed=3", "--sample-rate=16000", "--bit-depth=8", "--crackle-level=100")
	if err != nil {
		t.Fatalf("convert error = %v", err)
	}

	outPath := filepath.Join(outDir, "vinyl_song.wav")
	if !strings.Contains(stdout, "ok   "+src+" -> "+outPath) {
		t.Errorf("stdout = %q, want ok line for %s", stdout, outPath)
	}

	a, err := wav.ReadFile(outPath)
	if err != nil {
		t.Fatalf("ReadFile(output) error = %v", err)
	}
	if a.SampleRate != 16000 || a.BitsPerSample != 8 {
		t.Errorf("output = %d Hz %d bit, want 16000 Hz 8 bit", a.SampleRate, a.BitsPerSample)
	}
}

func TestConvert_DirectoryIsolatesFailures(t *testing.T) {
	src := t.TempDir()
	outDir := t.TempDir()

	writeWAV(t, filepath.Join(src, "a.wav"), 8000, 1, 800)
	writeWAV(t, filepath.Join(src, "c.wav"), 8000, 1, 800)
	if err := os.WriteFile(filepath.Join(src, "b.wav"), []byte("broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "readme.txt"), []byte("skip me"), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, err := execute(t, "convert", src, outDir, "--seed=9", "--workers=2")
	if err == nil || !strings.Contains(err.Error(), "1 of 3 files failed") {
		t.Fatalf("convert error = %v, want 1 of 3 failed", err)
	}
	if !strings.Contains(stdout, "FAIL "+filepath.Join(src, "b.wav")) {
		t.Errorf("stdout = %q, want FAIL line for b.wav", stdout)
	}

	for _, name := range []string{"vinyl_a.wav", "vinyl_c.wav"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("%s missing: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(outDir, "vinyl_b.wav")); !os.IsNotExist(err) {
		t.Error("output written for the broken input")
	}
}

func TestConvert_Errors(t *testing.T) {
	src := filepath.Join(t.TempDir(), "song.wav")
	writeWAV(t, src, 8000, 1, 80)
	emptyDir := t.TempDir()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing args", []string{"convert", src}, "accepts 2 arg(s)"},
		{"bad output dir", []string{"convert", src, filepath.Join(emptyDir, "nope")}, "not an existing directory"},
		{"no wav files", []string{"convert", emptyDir, emptyDir}, "no .wav files"},
		{"bad setting", []string{"convert", src, emptyDir, "--pop-level=-1"}, "pop level"},
		{"bad range", []string{"convert", src, emptyDir, "--dynamic-range=loud"}, "dynamic range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}
