package imgformat

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnknownFormat is returned when a format name is outside the supported set.
var ErrUnknownFormat = errors.New("unknown format")

// Format is one member of the closed set of supported image encodings.
type Format int

// Supported formats. The zero value is not a valid format.
const (
	PNG Format = iota + 1
	JPEG
	GIF
	WebP
	PNM
	TIFF
	TGA
	DDS
	BMP
	ICO
	HDR
	OpenEXR
	Farbfeld
	AVIF
	QOI
	PCX
)

// names holds the canonical lowercase name of every format. The canonical
// name doubles as the file extension written by the converter.
var names = map[Format]string{
	PNG:      "png",
	JPEG:     "jpeg",
	GIF:      "gif",
	WebP:     "webp",
	PNM:      "pnm",
	TIFF:     "tiff",
	TGA:      "tga",
	DDS:      "dds",
	BMP:      "bmp",
	ICO:      "ico",
	HDR:      "hdr",
	OpenEXR:  "openexr",
	Farbfeld: "farbfeld",
	AVIF:     "avif",
	QOI:      "qoi",
	PCX:      "pcx",
}

// aliases are accepted by Parse in addition to the canonical names.
var aliases = map[string]Format{
	"jpg": JPEG,
}

// extensions maps on-disk file extensions to formats. It is wider than the
// canonical names because real files use the conventional short forms.
var extensions = map[string]Format{
	".png":      PNG,
	".jpg":      JPEG,
	".jpeg":     JPEG,
	".jpe":      JPEG,
	".gif":      GIF,
	".webp":     WebP,
	".pnm":      PNM,
	".pbm":      PNM,
	".pgm":      PNM,
	".ppm":      PNM,
	".pam":      PNM,
	".tif":      TIFF,
	".tiff":     TIFF,
	".tga":      TGA,
	".dds":      DDS,
	".bmp":      BMP,
	".ico":      ICO,
	".hdr":      HDR,
	".exr":      OpenEXR,
	".openexr":  OpenEXR,
	".ff":       Farbfeld,
	".farbfeld": Farbfeld,
	".avif":     AVIF,
	".qoi":      QOI,
	".pcx":      PCX,
}

// All returns every supported format in declaration order.
func All() []Format {
	all := make([]Format, 0, len(names))
	for f := PNG; f <= PCX; f++ {
		all = append(all, f)
	}
	return all
}

// Parse maps a user-supplied format name to a Format. Matching ignores case
// and surrounding whitespace; "jpg" is accepted as an alias for "jpeg".
func Parse(name string) (Format, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if f, ok := aliases[key]; ok {
		return f, nil
	}
	for f, n := range names {
		if n == key {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// String returns the canonical lowercase name. It panics for values outside
// the supported set since those can only come from a programming error.
func (f Format) String() string {
	n, ok := names[f]
	if !ok {
		panic(fmt.Sprintf("imgformat: invalid format value %d", int(f)))
	}
	return n
}

// Extension returns the file extension, including the leading dot, used for
// files written in this format.
func (f Format) Extension() string {
	return "." + f.String()
}

// Valid reports whether f is a member of the supported set.
func (f Format) Valid() bool {
	_, ok := names[f]
	return ok
}

// FromExtension guesses a format from the extension of path.
func FromExtension(path string) (Format, bool) {
	f, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return f, ok
}

// Names returns the canonical names of all formats, in declaration order.
func Names() []string {
	all := All()
	out := make([]string, len(all))
	for i, f := range all {
		out[i] = f.String()
	}
	return out
}
