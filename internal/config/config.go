// SPDX-License-Identifier: EPL-2.0

// Package config loads the audvinyl command configuration from defaults,
// an optional config file, AUDVINYL_* environment variables and flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ik5/audvinyl/audio"
	"github.com/ik5/audvinyl/pipeline"
)

type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Convert ConvertConfig `mapstructure:"convert"`
	Batch   BatchConfig   `mapstructure:"batch"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ConvertConfig struct {
	SampleRate   int     `mapstructure:"sample_rate"`
	BitDepth     int     `mapstructure:"bit_depth"`
	CrackleLevel int     `mapstructure:"crackle_level"`
	PopLevel     int     `mapstructure:"pop_level"`
	NeedleDrop   float64 `mapstructure:"needle_drop"`
	NeedleLift   float64 `mapstructure:"needle_lift"`
	// DynamicRange is "min,max" in dBFS.
	DynamicRange string  `mapstructure:"dynamic_range"`
	Length       float64 `mapstructure:"length"`
	PadLength    bool    `mapstructure:"pad_length"`
}

type BatchConfig struct {
	Workers int `mapstructure:"workers"`
	// Seed zero picks a fresh seed per run.
	Seed uint64 `mapstructure:"seed"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"log.level":             "log-level",
	"log.format":            "log-format",
	"convert.sample_rate":   "sample-rate",
	"convert.bit_depth":     "bit-depth",
	"convert.crackle_level": "crackle-level",
	"convert.pop_level":     "pop-level",
	"convert.needle_drop":   "needle-drop",
	"convert.needle_lift":   "needle-lift",
	"convert.dynamic_range": "dynamic-range",
	"convert.length":        "length",
	"convert.pad_length":    "pad-length",
	"batch.workers":         "workers",
	"batch.seed":            "seed",
}

func DefaultConfig() Config {
	s := pipeline.DefaultSettings()

	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Convert: ConvertConfig{
			SampleRate:   s.SampleRate,
			BitDepth:     s.BitDepth,
			CrackleLevel: s.CrackleLevel,
			PopLevel:     s.PopLevel,
			NeedleDrop:   s.NeedleDrop,
			NeedleLift:   s.NeedleLift,
			DynamicRange: FormatRange(s.DynamicRange),
			Length:       s.Length,
			PadLength:    s.PadLength,
		},
		Batch: BatchConfig{
			Workers: 0,
			Seed:    0,
		},
	}
}

// RegisterFlags adds the global flags.
func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.Log.Level, "Log level (debug|info|warn|error)")
	fs.String("log-format", defaults.Log.Format, "Log format (text|json)")
}

// RegisterConvertFlags adds the conversion and batch flags.
func RegisterConvertFlags(fs *pflag.FlagSet, defaults Config) {
	c := defaults.Convert
	fs.Int("sample-rate", c.SampleRate, "Output sample rate in Hz (8000-192000)")
	fs.Int("bit-depth", c.BitDepth, "Output bit depth (8|16|24|32), never raised")
	fs.Int("crackle-level", c.CrackleLevel, "Crackle probability per frame in 1/10000")
	fs.Int("pop-level", c.PopLevel, "Pop probability per frame in 1/100000")
	fs.Float64("needle-drop", c.NeedleDrop, "Needle drop duration in seconds")
	fs.Float64("needle-lift", c.NeedleLift, "Needle lift duration in seconds")
	fs.String("dynamic-range", c.DynamicRange, "Sample magnitude window in dBFS as min,max")
	fs.Float64("length", c.Length, "Output length in seconds (0 = input plus needle sounds)")
	fs.Bool("pad-length", c.PadLength, "Pad with silence when --length exceeds the audio")
	fs.Int("workers", defaults.Batch.Workers, "Concurrent conversions (0 = one per CPU)")
	fs.Uint64("seed", defaults.Batch.Seed, "Random seed for noise and needle sounds (0 = random)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	v.SetEnvPrefix("AUDVINYL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("audvinyl")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// Settings converts the conversion section into pipeline settings.
func (c Config) Settings() (pipeline.Settings, error) {
	rng, err := ParseRange(c.Convert.DynamicRange)
	if err != nil {
		return pipeline.Settings{}, err
	}

	s := pipeline.Settings{
		SampleRate:   c.Convert.SampleRate,
		BitDepth:     c.Convert.BitDepth,
		DynamicRange: rng,
		CrackleLevel: c.Convert.CrackleLevel,
		PopLevel:     c.Convert.PopLevel,
		NeedleDrop:   c.Convert.NeedleDrop,
		NeedleLift:   c.Convert.NeedleLift,
		Length:       c.Convert.Length,
		PadLength:    c.Convert.PadLength,
	}

	return s, s.Validate()
}

// ParseRange parses "min,max" into a two element slice.
func ParseRange(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, audio.ValidationError("config", "dynamic range %q must be min,max", s)
	}

	out := make([]float64, 2)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, audio.ValidationError("config", "dynamic range bound %q is not a number", p)
		}
		out[i] = f
	}

	return out, nil
}

// FormatRange is the inverse of ParseRange.
func FormatRange(rng []float64) string {
	parts := make([]string, len(rng))
	for i, f := range rng {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}

	return strings.Join(parts, ",")
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, name := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log.level", c.Log.Level)
	v.SetDefault("log.format", c.Log.Format)
	v.SetDefault("convert.sample_rate", c.Convert.SampleRate)
	v.SetDefault("convert.bit_depth", c.Convert.BitDepth)
	v.SetDefault("convert.crackle_level", c.Convert.CrackleLevel)
	v.SetDefault("convert.pop_level", c.Convert.PopLevel)
	v.SetDefault("convert.needle_drop", c.Convert.NeedleDrop)
	v.SetDefault("convert.needle_lift", c.Convert.NeedleLift)
	v.SetDefault("convert.dynamic_range", c.Convert.DynamicRange)
	v.SetDefault("convert.length", c.Convert.Length)
	v.SetDefault("convert.pad_length", c.Convert.PadLength)
	v.SetDefault("batch.workers", c.Batch.Workers)
	v.SetDefault("batch.seed", c.Batch.Seed)
}
