package inspect

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/imgconv/internal/codec"
	"github.com/specialistvlad/imgconv/internal/ctxlog"
	"github.com/specialistvlad/imgconv/internal/imgformat"
)

// Unknown is reported by Info when a file's format cannot be detected.
const Unknown = "unknown"

// Detect opens path and returns its sniffed format, or false when the header
// matches no known format. Pixel data is never read.
func Detect(ctx context.Context, path string) (imgformat.Format, bool, error) {
	r, err := codec.Open(path)
	if err != nil {
		return 0, false, err
	}
	defer r.Close()

	format, ok := r.Format()
	if ok {
		ctxlog.FromContext(ctx).Debug("Detected format.", "path", path, "format", format.String())
	} else {
		ctxlog.FromContext(ctx).Debug("Format not detected.", "path", path)
	}
	return format, ok, nil
}

// Is reports whether the file at path is in the expected format. expected is
// parsed first, so an unknown name fails before the file is opened. A file
// whose format cannot be detected is not a match.
func Is(ctx context.Context, path, expected string) (bool, error) {
	want, err := imgformat.Parse(expected)
	if err != nil {
		return false, err
	}
	got, ok, err := Detect(ctx, path)
	if err != nil {
		return false, err
	}
	return ok && got == want, nil
}

// Info writes "<path> <format>\n" to w, with path exactly as given and
// "unknown" in place of an undetectable format.
func Info(ctx context.Context, path string, w io.Writer) error {
	format, ok, err := Detect(ctx, path)
	if err != nil {
		return err
	}
	name := Unknown
	if ok {
		name = format.String()
	}
	_, err = fmt.Fprintf(w, "%s %s\n", path, name)
	return err
}
