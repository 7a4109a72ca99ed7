package codec

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	icowrite "github.com/Kodeworks/golang-image-ico"
	icoread "github.com/biessek/golang-ico"
	"github.com/chai2010/webp"
	"github.com/ftrvxmtrx/tga"
	pnm "github.com/jbuchbinder/gopnm"
	"github.com/lukegb/dds"
	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/xfmoulet/qoi"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	xwebp "golang.org/x/image/webp"

	"github.com/specialistvlad/imgconv/internal/imgformat"
)

type decodeFunc func(r io.Reader) (image.Image, error)

type encodeFunc func(w io.Writer, img image.Image, opts Options) error

type entry struct {
	decode decodeFunc
	encode encodeFunc
}

// codecs routes every format to its decoder and encoder. A nil func means the
// direction is unsupported; formats absent from the map have neither.
var codecs = map[imgformat.Format]entry{
	imgformat.PNG:  {decode: png.Decode, encode: encodePNG},
	imgformat.JPEG: {decode: jpeg.Decode, encode: encodeJPEG},
	imgformat.GIF:  {decode: gif.Decode, encode: encodeGIF},
	imgformat.WebP: {decode: xwebp.Decode, encode: encodeWebP},
	imgformat.PNM:  {decode: pnm.Decode, encode: encodePNM},
	imgformat.TIFF: {decode: tiff.Decode, encode: encodeTIFF},
	imgformat.TGA:  {decode: tga.Decode, encode: withoutOptions(tga.Encode)},
	imgformat.DDS:  {decode: dds.Decode},
	imgformat.BMP:  {decode: bmp.Decode, encode: withoutOptions(bmp.Encode)},
	imgformat.ICO:  {decode: icoread.Decode, encode: encodeICO},
	imgformat.HDR:  {decode: rgbe.Decode, encode: encodeHDR},
	imgformat.AVIF: {encode: encodeAVIF},
	imgformat.QOI:  {decode: qoi.Decode, encode: withoutOptions(qoi.Encode)},
}

// Supports reports whether f can be decoded and whether it can be encoded.
func Supports(f imgformat.Format) (decode, encode bool) {
	c := codecs[f]
	return c.decode != nil, c.encode != nil
}

func withoutOptions(fn func(io.Writer, image.Image) error) encodeFunc {
	return func(w io.Writer, img image.Image, _ Options) error {
		return fn(w, img)
	}
}

func encodePNG(w io.Writer, img image.Image, opts Options) error {
	enc := png.Encoder{CompressionLevel: pngLevels[strings.ToLower(opts.PNGCompression)]}
	return enc.Encode(w, img)
}

func encodeJPEG(w io.Writer, img image.Image, opts Options) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: opts.JPEGQuality})
}

func encodeGIF(w io.Writer, img image.Image, opts Options) error {
	return gif.Encode(w, img, &gif.Options{NumColors: opts.GIFColors})
}

func encodeWebP(w io.Writer, img image.Image, opts Options) error {
	return webp.Encode(w, img, &webp.Options{
		Lossless: opts.WebPLossless,
		Quality:  opts.WebPQuality,
	})
}

func encodePNM(w io.Writer, img image.Image, _ Options) error {
	return pnm.Encode(w, img, pnm.PPM)
}

func encodeTIFF(w io.Writer, img image.Image, opts Options) error {
	compression := tiffCompressions[strings.ToLower(opts.TIFFCompression)]
	return tiff.Encode(w, img, &tiff.Options{
		Compression: compression,
		Predictor:   compression == tiff.Deflate,
	})
}

// maxICOSide is the largest width or height an ICO directory entry can describe.
const maxICOSide = 256

func encodeICO(w io.Writer, img image.Image, _ Options) error {
	b := img.Bounds()
	if b.Dx() > maxICOSide || b.Dy() > maxICOSide {
		return fmt.Errorf("ico images are limited to %dx%d, got %dx%d", maxICOSide, maxICOSide, b.Dx(), b.Dy())
	}
	return icowrite.Encode(w, img)
}

// encodeHDR writes Radiance RGBE. Low dynamic range input is widened to
// float RGB first since rgbe only accepts hdr images.
func encodeHDR(w io.Writer, img image.Image, _ Options) error {
	if m, ok := img.(*hdr.RGB); ok {
		return rgbe.Encode(w, m)
	}
	b := img.Bounds()
	m := hdr.NewRGB(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			m.Set(x, y, img.At(x, y))
		}
	}
	return rgbe.Encode(w, m)
}
