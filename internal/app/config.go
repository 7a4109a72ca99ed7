package app

import (
	"errors"
	"fmt"
)

// Command selects what Run does with the path.
type Command int

const (
	// CommandInfo prints the detected format. It is the default.
	CommandInfo Command = iota
	// CommandConvert re-encodes a file or every image in a directory.
	CommandConvert
	// CommandIs checks a file against an expected format.
	CommandIs
)

func (c Command) String() string {
	switch c {
	case CommandInfo:
		return "info"
	case CommandConvert:
		return "convert"
	case CommandIs:
		return "is"
	default:
		return fmt.Sprintf("command(%d)", int(c))
	}
}

// Config holds everything the entrypoint collected for a single run.
//
// Empty strings and a zero Workers mean "not given on the command line"; the
// App then falls back to the configuration file and finally to defaults.
type Config struct {
	Command        Command
	Path           string
	TargetFormat   string
	ExpectedFormat string
	ConfigPath     string

	LogLevel  string
	LogFormat string
	Workers   int
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Path == "" {
		return nil, errors.New("a path is required")
	}
	if cfg.Command == CommandIs && cfg.ExpectedFormat == "" {
		return nil, errors.New("the is command requires an expected format")
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	if cfg.LogLevel != "" {
		if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
			return nil, err
		}
	}
	if cfg.LogFormat != "" {
		if err := ValidateLogFormat(cfg.LogFormat); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}
