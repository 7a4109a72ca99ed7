package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/specialistvlad/imgconv/internal/app"
	"github.com/specialistvlad/imgconv/internal/cli"
	"github.com/specialistvlad/imgconv/internal/hcl"
)

// main is the entrypoint for the imgconv application.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	os.Exit(exitCode(err, os.Stderr))
}

// run encapsulates the main application logic for easier testing and error
// handling. Results go to outW; usage text, logs and errors go to errW.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Instantiate the concrete HCL loader to pass to the app.
	imgconvApp, err := app.NewApp(outW, errW, appConfig, hcl.NewLoader())
	if err != nil {
		return err
	}
	return imgconvApp.Run(ctx)
}

// exitCode prints err and maps it to the process exit status.
func exitCode(err error, errW io.Writer) int {
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(errW, exitErr.Message)
		return exitErr.Code
	}
	fmt.Fprintln(errW, "imgconv:", err)
	return 1
}
