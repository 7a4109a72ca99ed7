// Package codec is the only place imgconv touches encoded image bytes. It
// opens a file and sniffs its format from the header, decodes it into an
// image.Image, and encodes an image.Image into any format that has an
// encoder.
//
// The codecs themselves come from the standard library, golang.org/x/image
// and a handful of single-format libraries; this package only routes each
// imgformat.Format to the right one. Formats without a decoder or encoder are
// still recognised by Open, they just fail at Decode or Save.
package codec
