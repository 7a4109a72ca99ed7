package app

import (
	"fmt"
	"log/slog"

	"github.com/specialistvlad/imgconv/internal/codec"
	"github.com/specialistvlad/imgconv/internal/config"
)

// settings is the effective configuration of a run: command-line values
// layered over the configuration file layered over defaults.
type settings struct {
	logLevel     slog.Level
	logFormat    string
	targetFormat string
	workers      int
	encode       codec.Options
}

// resolve merges cfg and file. file may be nil when no configuration file
// was given. Values taken from the file are validated with the same rules
// as their command-line counterparts.
func resolve(cfg *Config, file *config.File) (*settings, error) {
	if file == nil {
		file = &config.File{}
	}

	levelName := pick(cfg.LogLevel, file.LogLevel, DefaultLogLevel)
	level, err := ParseLogLevel(levelName)
	if err != nil {
		return nil, err
	}

	format := pick(cfg.LogFormat, file.LogFormat, DefaultLogFormat)
	if err := ValidateLogFormat(format); err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers == 0 && file.Workers != nil {
		workers = *file.Workers
	}
	if workers < 0 {
		return nil, fmt.Errorf("workers must not be negative, got %d", workers)
	}

	encode := mergeEncode(codec.DefaultOptions(), file.Encode)
	if err := encode.Validate(); err != nil {
		return nil, err
	}

	return &settings{
		logLevel:     level,
		logFormat:    format,
		targetFormat: pick(cfg.TargetFormat, file.TargetFormat, ""),
		workers:      workers,
		encode:       encode,
	}, nil
}

func pick(flag string, file *string, fallback string) string {
	if flag != "" {
		return flag
	}
	if file != nil {
		return *file
	}
	return fallback
}

func mergeEncode(opts codec.Options, enc config.Encode) codec.Options {
	if enc.JPEGQuality != nil {
		opts.JPEGQuality = *enc.JPEGQuality
	}
	if enc.PNGCompression != nil {
		opts.PNGCompression = *enc.PNGCompression
	}
	if enc.GIFColors != nil {
		opts.GIFColors = *enc.GIFColors
	}
	if enc.TIFFCompression != nil {
		opts.TIFFCompression = *enc.TIFFCompression
	}
	if enc.WebPLossless != nil {
		opts.WebPLossless = *enc.WebPLossless
	}
	if enc.WebPQuality != nil {
		opts.WebPQuality = float32(*enc.WebPQuality)
	}
	if enc.AVIFQuality != nil {
		opts.AVIFQuality = *enc.AVIFQuality
	}
	if enc.AVIFSpeed != nil {
		opts.AVIFSpeed = *enc.AVIFSpeed
	}
	return opts
}
