package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/imgconv/internal/ctxlog"
)

// Defaults used when neither the command line nor the configuration file
// sets a value.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

var (
	// ErrInvalidLogLevel is returned for a log level outside LogLevels.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidLogFormat is returned for a log format other than text or json.
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// LogLevels lists the accepted level names, most verbose first.
var LogLevels = []string{"trace", "debug", "info", "warn", "error"}

var levels = map[string]slog.Level{
	"trace": ctxlog.LevelTrace,
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ParseLogLevel maps a level name to its slog.Level. Matching ignores case.
func ParseLogLevel(name string) (slog.Level, error) {
	level, ok := levels[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("%w: %q, must be one of %s", ErrInvalidLogLevel, name, strings.Join(LogLevels, ", "))
	}
	return level, nil
}

// ValidateLogFormat accepts "text" and "json", ignoring case.
func ValidateLogFormat(name string) error {
	switch strings.ToLower(name) {
	case "text", "json":
		return nil
	}
	return fmt.Errorf("%w: %q, must be text or json", ErrInvalidLogFormat, name)
}

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances.
func newLogger(level slog.Level, format string, w io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: renameTrace,
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	return slog.New(handler)
}

// renameTrace prints LevelTrace as TRACE instead of slog's DEBUG-4.
func renameTrace(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.LevelKey {
		if level, ok := a.Value.Any().(slog.Level); ok && level == ctxlog.LevelTrace {
			a.Value = slog.StringValue("TRACE")
		}
	}
	return a
}
