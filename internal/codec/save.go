package codec

import (
	"bufio"
	"fmt"
	"image"
	"os"

	"github.com/pkg/errors"

	"github.com/specialistvlad/imgconv/internal/imgformat"
)

// Save encodes img as format and writes it to path, creating or truncating
// the file. On failure no partial output is left behind.
func Save(img image.Image, path string, format imgformat.Format, opts Options) (err error) {
	enc := codecs[format].encode
	if enc == nil {
		return &Error{Kind: ErrEncode, Path: path, Err: fmt.Errorf("%w for %s", ErrUnsupported, format)}
	}

	f, err := os.Create(path)
	if err != nil {
		return &Error{Kind: ErrEncode, Path: path, Err: err}
	}
	defer func() {
		if err != nil {
			os.Remove(path)
		}
	}()

	w := bufio.NewWriter(f)
	if err := enc(w, img, opts); err != nil {
		f.Close()
		return &Error{Kind: ErrEncode, Path: path, Err: errors.Wrapf(err, "encode %s", format)}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return &Error{Kind: ErrEncode, Path: path, Err: errors.Wrap(err, "flush")}
	}
	if err := f.Close(); err != nil {
		return &Error{Kind: ErrEncode, Path: path, Err: errors.Wrap(err, "close")}
	}
	return nil
}
