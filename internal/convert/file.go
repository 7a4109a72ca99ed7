package convert

import (
	"context"
	"image"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/imgconv/internal/codec"
	"github.com/specialistvlad/imgconv/internal/ctxlog"
	"github.com/specialistvlad/imgconv/internal/imgformat"
)

// OutputPath replaces the extension of path with the canonical extension of
// target. A path without an extension gets one appended.
func OutputPath(path string, target imgformat.Format) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + target.Extension()
}

// File converts the image at path to target and returns the written path.
// Converting to the format the file already has re-encodes it in place.
func File(ctx context.Context, path string, target imgformat.Format, opts codec.Options) (string, error) {
	logger := ctxlog.FromContext(ctx)

	img, source, err := decode(ctx, path)
	if err != nil {
		return "", err
	}
	logger.Debug("Decoded input.", "path", path, "format", source.String(), "width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	out := OutputPath(path, target)
	logger.Debug("Saving output.", "path", out, "format", target.String())
	if err := codec.Save(img, out, target, opts); err != nil {
		return "", err
	}
	ctxlog.Trace(ctx, "Saved output.", "path", out)

	logger.Info("Converted image.", "from", path, "to", out, "source_format", source.String(), "target_format", target.String())
	return out, nil
}

// decode reads the whole image and closes the input before returning so the
// output may safely overwrite it.
func decode(ctx context.Context, path string) (image.Image, imgformat.Format, error) {
	r, err := codec.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer r.Close()
	ctxlog.Trace(ctx, "Opened input.", "path", path)

	source, ok := r.Format()
	if !ok {
		return nil, 0, &codec.Error{Kind: codec.ErrOpen, Path: path, Err: codec.ErrUndetected}
	}
	ctxlog.FromContext(ctx).Debug("Detected input format.", "path", path, "format", source.String())

	img, err := r.Decode()
	if err != nil {
		return nil, 0, err
	}
	return img, source, nil
}
