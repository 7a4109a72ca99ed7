package codec

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package matches exactly one of
// them with errors.Is.
var (
	ErrOpen   = errors.New("open failed")
	ErrDecode = errors.New("decode failed")
	ErrEncode = errors.New("encode failed")
)

// ErrUndetected is the cause attached when a file's format cannot be sniffed.
var ErrUndetected = errors.New("image format could not be detected")

// ErrUnsupported is the cause attached when a format has no decoder or encoder.
var ErrUnsupported = errors.New("no codec available")

// Error records which stage failed for which file.
type Error struct {
	Kind error // ErrOpen, ErrDecode or ErrEncode
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap exposes both the kind and the underlying cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
