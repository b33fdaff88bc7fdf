// SPDX-License-Identifier: EPL-2.0

// Package batch converts many files with a bounded worker pool.
package batch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/audvinyl"
	"github.com/ik5/audvinyl/audio"
	"github.com/ik5/audvinyl/filter"
	"github.com/ik5/audvinyl/formats/wav"
	"github.com/ik5/audvinyl/pipeline"
)

// ConvertFunc converts one file and returns the output path.
type ConvertFunc func(src, outDir string, s pipeline.Settings, rnd filter.Rand) (string, error)

// Options configures Run.
type Options struct {
	OutDir   string
	Settings pipeline.Settings
	// Workers bounds concurrent conversions. Zero or less uses one per CPU.
	Workers int
	// Seed feeds every per-file random source. File i uses stream i.
	Seed   uint64
	Logger *slog.Logger
	// Convert defaults to audvinyl.ConvertFile.
	Convert ConvertFunc
}

// Result is the outcome for one input file.
type Result struct {
	Source  string
	Output  string
	Err     error
	Elapsed time.Duration
}

// Collect returns the files to convert for src: the *.wav regular files
// directly inside src sorted by name, or src itself when it is a file.
func Collect(src string) ([]string, error) {
	info, err := os.Stat(src)
	if err != nil {
		return nil, audio.IOError("stat "+src, err)
	}
	if !info.IsDir() {
		return []string{src}, nil
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return nil, audio.IOError("read dir "+src, err)
	}

	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() && wav.IsWAVName(e.Name()) {
			files = append(files, filepath.Join(src, e.Name()))
		}
	}

	return files, nil
}

// Run converts files and returns one Result per file in input order. A
// failing file does not stop the others. Once ctx is done no new file is
// started; the skipped files carry ctx's error and Run returns it.
func Run(ctx context.Context, opts Options, files []string) ([]Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	convert := opts.Convert
	if convert == nil {
		convert = audvinyl.ConvertFile
	}

	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, src := range files {
		results[i].Source = src

		if err := gctx.Err(); err != nil {
			results[i].Err = err
			continue
		}

		g.Go(func() error {
			start := time.Now()
			rnd := filter.NewRand(opts.Seed, uint64(i))

			out, err := convert(src, opts.OutDir, opts.Settings, rnd)
			results[i].Output = out
			results[i].Err = err
			results[i].Elapsed = time.Since(start)

			if err != nil {
				logger.Error("conversion failed", "source", src, "error", err)
			} else {
				logger.Info("converted", "source", src, "output", out, "elapsed", results[i].Elapsed)
			}

			return nil
		})
	}

	_ = g.Wait()

	return results, ctx.Err()
}

// Failed returns the number of results that carry an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}

	return n
}
