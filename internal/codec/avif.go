//go:build avif

package codec

import (
	"image"
	"io"

	"github.com/Kagami/go-avif"
)

// encodeAVIF links against libaom, so it is only compiled with -tags avif.
var encodeAVIF encodeFunc = func(w io.Writer, img image.Image, opts Options) error {
	return avif.Encode(w, img, &avif.Options{
		Quality: opts.AVIFQuality,
		Speed:   opts.AVIFSpeed,
	})
}
