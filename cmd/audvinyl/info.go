// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	gowav "github.com/go-audio/wav"
	"github.com/spf13/cobra"

	"github.com/ik5/audvinyl/audio"
	"github.com/ik5/audvinyl/filter"
	"github.com/ik5/audvinyl/formats/wav"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Print the WAV header of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.OutOrStdout(), args[0])
		},
	}
}

func runInfo(out io.Writer, path string) error {
	a, err := wav.ReadFile(path)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	rows := []struct {
		name  string
		value any
	}{
		{"File", path},
		{"RIFF size", a.RiffSize},
		{"Audio format", fmt.Sprintf("%d (PCM)", a.AudioFormat)},
		{"Channels", a.NumChannels},
		{"Sample rate", fmt.Sprintf("%d Hz", a.SampleRate)},
		{"Byte rate", a.ByteRate},
		{"Block align", a.BlockAlign},
		{"Bits per sample", a.BitsPerSample},
		{"Data size", a.DataSize},
		{"Frames", a.Frames()},
		{"Duration", fmt.Sprintf("%.3f s", a.Duration())},
		{"Peak", peakDBFS(a)},
	}

	for _, r := range rows {
		_, _ = fmt.Fprintf(tw, "%s:\t%v\n", r.name, r.value)
	}

	if err := tw.Flush(); err != nil {
		return audio.IOError("info", err)
	}

	return crossCheck(out, path, a)
}

// peakDBFS reports the loudest sample relative to the full scale of the
// nominal bit depth.
func peakDBFS(a *audio.Asset) string {
	peak := 0
	for _, v := range a.IntBuffer().Data {
		peak = max(peak, v, -v)
	}

	if peak == 0 {
		return "silent"
	}

	db := 20 * math.Log10(float64(peak)/filter.FullScale(int(a.BitsPerSample)))

	return fmt.Sprintf("%.1f dBFS", db)
}

// crossCheck reads the header again with go-audio/wav and reports any
// disagreement with our decoder.
func crossCheck(out io.Writer, path string, a *audio.Asset) error {
	f, err := os.Open(path)
	if err != nil {
		return audio.IOError("open "+path, err)
	}
	defer f.Close()

	dec := gowav.NewDecoder(f)
	if !dec.IsValidFile() {
		_, _ = fmt.Fprintln(out, "go-audio/wav: rejected the file")
		return nil
	}

	dur, err := dec.Duration()
	if err != nil {
		_, _ = fmt.Fprintf(out, "go-audio/wav: %v\n", err)
		return nil
	}

	format := dec.Format()
	ours := a.Format()
	match := format.NumChannels == ours.NumChannels &&
		format.SampleRate == ours.SampleRate &&
		dec.BitDepth == a.BitsPerSample

	verdict := "agrees"
	if !match {
		verdict = "DISAGREES"
	}

	_, _ = fmt.Fprintf(out, "go-audio/wav: %s (%d ch, %d Hz, %d bit, %s)\n",
		verdict, format.NumChannels, format.SampleRate, dec.BitDepth, dur)

	return nil
}
