// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/audvinyl/audio"
	"github.com/ik5/audvinyl/formats/wav"
	"github.com/ik5/audvinyl/internal/batch"
	"github.com/ik5/audvinyl/internal/config"
)

func newConvertCmd(defaults config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <source> <outputDir>",
		Short: "Convert a WAV file, or every WAV file in a directory",
		Long: `Convert writes <outputDir>/vinyl_<name>.wav for the source file, or for
every *.wav file directly inside the source directory. A file that fails is
reported and skipped; the exit status is non-zero if any file failed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.Context(), cmd.OutOrStdout(), activeCfg, args[0], args[1])
		},
	}

	config.RegisterConvertFlags(cmd.Flags(), defaults)

	return cmd
}

func runConvert(ctx context.Context, out io.Writer, cfg config.Config, src, outDir string) error {
	settings, err := cfg.Settings()
	if err != nil {
		return err
	}

	if info, err := os.Stat(outDir); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", wav.ErrOutputDir, outDir)
	}

	files, err := batch.Collect(src)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return audio.ValidationError("convert", "no .wav files in %s", src)
	}

	seed := cfg.Batch.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	slog.Info("converting",
		"files", len(files),
		"output_dir", outDir,
		"seed", seed,
		"sample_rate", settings.SampleRate,
		"bit_depth", settings.BitDepth)

	results, err := batch.Run(ctx, batch.Options{
		OutDir:   outDir,
		Settings: settings,
		Workers:  cfg.Batch.Workers,
		Seed:     seed,
		Logger:   slog.Default(),
	}, files)

	for _, r := range results {
		if r.Err != nil {
			_, _ = fmt.Fprintf(out, "FAIL %s: %v\n", r.Source, r.Err)
			continue
		}
		_, _ = fmt.Fprintf(out, "ok   %s -> %s\n", r.Source, r.Output)
	}

	if err != nil {
		return err
	}
	if n := batch.Failed(results); n > 0 {
		return fmt.Errorf("%d of %d files failed", n, len(results))
	}

	return nil
}
