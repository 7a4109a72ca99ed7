package codec

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/specialistvlad/imgconv/internal/imgformat"
)

// Reader is an opened image file whose format has been sniffed but whose
// pixel data has not been read yet.
type Reader struct {
	path   string
	file   *os.File
	buf    *bufio.Reader
	format imgformat.Format
	known  bool
}

// Open opens path and sniffs its format from the header. It fails with
// ErrOpen only when the file cannot be read; an unrecognised format is
// reported by Format, not by Open.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Kind: ErrOpen, Path: path, Err: err}
	}

	buf := bufio.NewReader(f)
	header, err := buf.Peek(imgformat.HeaderSize)
	if err != nil && !errors.Is(err, io.EOF) {
		f.Close()
		return nil, &Error{Kind: ErrOpen, Path: path, Err: errors.Wrap(err, "read header")}
	}

	r := &Reader{path: path, file: f, buf: buf}
	r.format, r.known = imgformat.Sniff(header)
	if !r.known {
		// TGA has no magic number; trust the extension for it and nothing else.
		if ext, ok := imgformat.FromExtension(path); ok && ext == imgformat.TGA {
			r.format, r.known = ext, true
		}
	}
	return r, nil
}

// Path returns the path exactly as it was passed to Open.
func (r *Reader) Path() string {
	return r.path
}

// Format reports the sniffed format, or false when it is unknown.
func (r *Reader) Format() (imgformat.Format, bool) {
	return r.format, r.known
}

// Decode reads and decodes the full pixel data. It fails with ErrDecode when
// the format is unknown, has no decoder, or the content is malformed.
func (r *Reader) Decode() (image.Image, error) {
	if !r.known {
		return nil, &Error{Kind: ErrDecode, Path: r.path, Err: ErrUndetected}
	}
	dec := codecs[r.format].decode
	if dec == nil {
		return nil, &Error{Kind: ErrDecode, Path: r.path, Err: fmt.Errorf("%w for %s", ErrUnsupported, r.format)}
	}
	img, err := dec(r.buf)
	if err != nil {
		return nil, &Error{Kind: ErrDecode, Path: r.path, Err: errors.Wrapf(err, "decode %s", r.format)}
	}
	return img, nil
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
