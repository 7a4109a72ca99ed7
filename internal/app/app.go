package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/imgconv/internal/config"
	"github.com/specialistvlad/imgconv/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	settings *settings
}

// NewApp is the constructor for the main application. Results go to outW and
// logs to logW. When cfg.ConfigPath is set the file is read through loader
// before the final logger is built, so a level set in the file applies to
// the whole run.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	bootstrapLevel, err := ParseLogLevel(pick(cfg.LogLevel, nil, DefaultLogLevel))
	if err != nil {
		return nil, err
	}
	bootstrap := newLogger(bootstrapLevel, pick(cfg.LogFormat, nil, DefaultLogFormat), logW)
	ctx := ctxlog.WithLogger(context.Background(), bootstrap)

	var file *config.File
	if cfg.ConfigPath != "" {
		bootstrap.Debug("Loading configuration file.", "path", cfg.ConfigPath)
		file, err = loader.Load(ctx, cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
	}

	s, err := resolve(cfg, file)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(s.logLevel, s.logFormat, logW)
	logger.Debug("Logger configured successfully.",
		"command", cfg.Command.String(),
		"workers", s.workers,
		"target_format", s.targetFormat,
	)

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		settings: s,
	}, nil
}
