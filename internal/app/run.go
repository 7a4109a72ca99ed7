package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/imgconv/internal/convert"
	"github.com/specialistvlad/imgconv/internal/ctxlog"
	"github.com/specialistvlad/imgconv/internal/fsutil"
	"github.com/specialistvlad/imgconv/internal/imgformat"
	"github.com/specialistvlad/imgconv/internal/inspect"
)

var (
	// ErrPathNotFound is returned when the input path does not exist.
	ErrPathNotFound = errors.New("path not found")
	// ErrFormatMismatch is the negative answer of the is command. It is an
	// error so that the process exits non-zero on a mismatch.
	ErrFormatMismatch = errors.New("format mismatch")
	// ErrUnsupportedForDirectory is returned by is and info on a directory.
	ErrUnsupportedForDirectory = errors.New("command does not support directories")
	// ErrNoTargetFormat is returned by convert when neither the command line
	// nor the configuration file names a target format.
	ErrNoTargetFormat = errors.New("no target format given")
)

// Run executes the configured command against the configured path.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	path := a.config.Path
	a.logger.Debug("App.Run method started.", "path", path, "command", a.config.Command.String())

	if !fsutil.Exists(path) {
		return fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	// Format names are checked before the path is classified or opened.
	var target imgformat.Format
	switch a.config.Command {
	case CommandConvert:
		var err error
		if target, err = a.targetFormat(); err != nil {
			return err
		}
	case CommandIs:
		if _, err := imgformat.Parse(a.config.ExpectedFormat); err != nil {
			return err
		}
	}

	kind := fsutil.Classify(path)
	ctxlog.Trace(ctx, "Path classified.", "path", path, "kind", kind.String())
	if kind == fsutil.None {
		if a.config.Command == CommandIs {
			return fmt.Errorf("%w: %s is not a regular file", ErrFormatMismatch, path)
		}
		a.logger.Warn("Path is neither a regular file nor a directory, nothing to do.", "path", path)
		return nil
	}

	var err error
	switch a.config.Command {
	case CommandConvert:
		err = a.convert(ctx, path, kind, target)
	case CommandIs:
		err = a.is(ctx, path, kind)
	default:
		err = a.info(ctx, path, kind)
	}
	if err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// targetFormat resolves the conversion target from the flag or the file.
func (a *App) targetFormat() (imgformat.Format, error) {
	if a.settings.targetFormat == "" {
		return 0, ErrNoTargetFormat
	}
	return imgformat.Parse(a.settings.targetFormat)
}

func (a *App) convert(ctx context.Context, path string, kind fsutil.Kind, target imgformat.Format) error {
	if kind == fsutil.File {
		if _, err := convert.File(ctx, path, target, a.settings.encode); err != nil {
			return err
		}
		return nil
	}

	result, err := convert.Dir(ctx, path, target, a.settings.encode, a.settings.workers)
	if err != nil {
		return err
	}
	a.logger.Info("Directory converted.", "path", path, "converted", len(result.Converted))
	return nil
}

func (a *App) is(ctx context.Context, path string, kind fsutil.Kind) error {
	if kind == fsutil.Directory {
		return fmt.Errorf("%w: is %s", ErrUnsupportedForDirectory, path)
	}
	ok, err := inspect.Is(ctx, path, a.config.ExpectedFormat)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s is not %s", ErrFormatMismatch, path, a.config.ExpectedFormat)
	}
	a.logger.Info("Format matches.", "path", path, "format", a.config.ExpectedFormat)
	return nil
}

func (a *App) info(ctx context.Context, path string, kind fsutil.Kind) error {
	if kind == fsutil.Directory {
		return fmt.Errorf("%w: info %s", ErrUnsupportedForDirectory, path)
	}
	return inspect.Info(ctx, path, a.outW)
}
