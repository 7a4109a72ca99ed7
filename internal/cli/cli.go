package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/imgconv/internal/app"
	"github.com/specialistvlad/imgconv/internal/codec"
	"github.com/specialistvlad/imgconv/internal/imgformat"
)

// Version is printed by --version. Release builds override it with -ldflags.
var Version = "dev"

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	logLevel   string
	logFormat  string
	configPath string
}

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly (help, version, or
// no arguments at all), or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	var (
		globals globalFlags
		result  *app.Config
	)
	root := newRootCommand(&globals, &result)
	root.SetArgs(args)
	root.SetOut(output)
	root.SetErr(output)

	if _, err := root.ExecuteC(); err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			return nil, false, exitErr
		}
		return nil, false, usageError(err)
	}
	if result == nil {
		return nil, true, nil
	}
	return result, false, nil
}

func newRootCommand(globals *globalFlags, result **app.Config) *cobra.Command {
	var targetFormat string

	root := &cobra.Command{
		Use:   "imgconv [flags] <path>",
		Short: "Convert images between formats and report their format.",
		Long: `imgconv converts an image, or every image under a directory, to another
format. Without a subcommand it prints the detected format of <path>, or
converts it when --target-format is given.

` + formatTable(),
		Version:       Version,
		Args:          pathArgs(globals, 0, 1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			command := app.CommandInfo
			if cmd.Flags().Changed("target-format") {
				command = app.CommandConvert
			}
			return build(result, app.Config{
				Command:      command,
				Path:         args[0],
				TargetFormat: targetFormat,
			}, globals)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVarP(&globals.logLevel, "log-level", "l", "", "log level: "+strings.Join(app.LogLevels, ", ")+" (default "+app.DefaultLogLevel+")")
	pf.StringVar(&globals.logFormat, "log-format", "", "log format: text or json (default "+app.DefaultLogFormat+")")
	pf.StringVarP(&globals.configPath, "config", "c", "", "path to an HCL configuration file")

	root.Flags().StringVarP(&targetFormat, "target-format", "t", "", "convert <path> to this format")

	root.AddCommand(
		newConvertCommand(globals, result),
		newIsCommand(globals, result),
		newInfoCommand(globals, result),
	)
	return root
}

func newConvertCommand(globals *globalFlags, result **app.Config) *cobra.Command {
	var (
		targetFormat string
		workers      int
	)
	cmd := &cobra.Command{
		Use:   "convert <path>",
		Short: "Convert a file, or every image under a directory, to another format.",
		Long: `Convert decodes <path> and writes it next to the input with the extension
replaced by the target format. For a directory every detectable image in the
tree is converted; the first failure stops the run.

The target format may also come from target_format in the configuration file.`,
		Args: pathArgs(globals, 1, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return build(result, app.Config{
				Command:      app.CommandConvert,
				Path:         args[0],
				TargetFormat: targetFormat,
				Workers:      workers,
			}, globals)
		},
	}
	cmd.Flags().StringVarP(&targetFormat, "target-format", "t", "", "format to convert to")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "files converted concurrently in directory mode, 0 or 1 = sequential")
	return cmd
}

func newIsCommand(globals *globalFlags, result **app.Config) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "is <path>",
		Short: "Exit successfully if <path> is in the given format.",
		Long: `Is compares the format sniffed from the header of <path> with --format.
A mismatch is reported as an error and a non-zero exit status.`,
		Args: pathArgs(globals, 1, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return build(result, app.Config{
				Command:        app.CommandIs,
				Path:           args[0],
				ExpectedFormat: format,
			}, globals)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "expected format, one of: "+strings.Join(imgformat.Names(), ", "))
	_ = cmd.MarkFlagRequired("format")
	return cmd
}

func newInfoCommand(globals *globalFlags, result **app.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "info <path>",
		Short: "Print the detected format of <path>.",
		Args:  pathArgs(globals, 1, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return build(result, app.Config{
				Command: app.CommandInfo,
				Path:    args[0],
			}, globals)
		},
	}
}

// pathArgs validates the log flags and then the positional arguments.
// cobra runs positional validation before any hook, so this is the earliest
// point at which a bad --log-level can be reported.
func pathArgs(globals *globalFlags, minArgs, maxArgs int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validateGlobals(globals); err != nil {
			return err
		}
		return cobra.RangeArgs(minArgs, maxArgs)(cmd, args)
	}
}

func validateGlobals(globals *globalFlags) error {
	if globals.logLevel != "" {
		if _, err := app.ParseLogLevel(globals.logLevel); err != nil {
			return usageError(err)
		}
	}
	if globals.logFormat != "" {
		if err := app.ValidateLogFormat(globals.logFormat); err != nil {
			return usageError(err)
		}
	}
	return nil
}

// build fills in the global flags, validates the result and stores it.
func build(result **app.Config, cfg app.Config, globals *globalFlags) error {
	cfg.LogLevel = strings.ToLower(globals.logLevel)
	cfg.LogFormat = strings.ToLower(globals.logFormat)
	cfg.ConfigPath = globals.configPath

	validated, err := app.NewConfig(cfg)
	if err != nil {
		return usageError(err)
	}
	*result = validated
	return nil
}

// formatTable renders the supported formats for the help text.
func formatTable() string {
	var b strings.Builder
	b.WriteString("Formats (r = decode, w = encode):\n")
	for _, f := range imgformat.All() {
		decode, encode := codec.Supports(f)
		fmt.Fprintf(&b, "  %-9s %s%s\n", f.String(), mark(decode, "r"), mark(encode, "w"))
	}
	return strings.TrimRight(b.String(), "\n")
}

func mark(ok bool, s string) string {
	if ok {
		return s
	}
	return "-"
}
