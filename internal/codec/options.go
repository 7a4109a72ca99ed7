package codec

import (
	"errors"
	"fmt"
	"image/png"
	"strings"

	"golang.org/x/image/tiff"
)

// ErrInvalidOptions is returned by Options.Validate.
var ErrInvalidOptions = errors.New("invalid encode options")

// Options tunes the encoders that accept parameters. Formats not listed here
// are encoded with their library defaults.
type Options struct {
	JPEGQuality     int    // 1..100
	PNGCompression  string // default, none, speed, best
	GIFColors       int    // 1..256
	TIFFCompression string // none, deflate
	WebPLossless    bool
	WebPQuality     float32 // 0..100, lossy only
	AVIFQuality     int     // 0 (best) .. 63
	AVIFSpeed       int     // 0 (slowest) .. 8
}

// DefaultOptions returns the settings used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		JPEGQuality:     75,
		PNGCompression:  "default",
		GIFColors:       256,
		TIFFCompression: "none",
		WebPLossless:    true,
		WebPQuality:     75,
		AVIFQuality:     25,
		AVIFSpeed:       8,
	}
}

// Validate checks every field against its allowed range.
func (o Options) Validate() error {
	var problems []string
	if o.JPEGQuality < 1 || o.JPEGQuality > 100 {
		problems = append(problems, fmt.Sprintf("jpeg_quality %d not in 1..100", o.JPEGQuality))
	}
	if _, ok := pngLevels[strings.ToLower(o.PNGCompression)]; !ok {
		problems = append(problems, fmt.Sprintf("png_compression %q not one of default, none, speed, best", o.PNGCompression))
	}
	if o.GIFColors < 1 || o.GIFColors > 256 {
		problems = append(problems, fmt.Sprintf("gif_colors %d not in 1..256", o.GIFColors))
	}
	if _, ok := tiffCompressions[strings.ToLower(o.TIFFCompression)]; !ok {
		problems = append(problems, fmt.Sprintf("tiff_compression %q not one of none, deflate", o.TIFFCompression))
	}
	if o.WebPQuality < 0 || o.WebPQuality > 100 {
		problems = append(problems, fmt.Sprintf("webp_quality %v not in 0..100", o.WebPQuality))
	}
	if o.AVIFQuality < 0 || o.AVIFQuality > 63 {
		problems = append(problems, fmt.Sprintf("avif_quality %d not in 0..63", o.AVIFQuality))
	}
	if o.AVIFSpeed < 0 || o.AVIFSpeed > 8 {
		problems = append(problems, fmt.Sprintf("avif_speed %d not in 0..8", o.AVIFSpeed))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidOptions, strings.Join(problems, "; "))
	}
	return nil
}

var pngLevels = map[string]png.CompressionLevel{
	"default": png.DefaultCompression,
	"none":    png.NoCompression,
	"speed":   png.BestSpeed,
	"best":    png.BestCompression,
}

var tiffCompressions = map[string]tiff.CompressionType{
	"none":    tiff.Uncompressed,
	"deflate": tiff.Deflate,
}
