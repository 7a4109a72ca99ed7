package imgformat

import (
	"bytes"
	"encoding/binary"
)

// HeaderSize is the number of leading bytes Sniff needs to recognise every
// signature it knows about.
const HeaderSize = 32

// signature is a magic-byte prefix. '?' in pattern matches any byte, the same
// convention image.RegisterFormat uses.
type signature struct {
	format  Format
	pattern string
}

// Checked in order; the short JPEG prefix goes last. Formats whose magic is
// too short to trust on its own (BMP, ICO, PNM, PCX) are checked by
// functions below that also validate the fields following it.
var signatures = []signature{
	{PNG, "\x89PNG\r\n\x1a\n"},
	{Farbfeld, "farbfeld"},
	{AVIF, "????ftypavif"},
	{AVIF, "????ftypavis"},
	{WebP, "RIFF????WEBP"},
	{HDR, "#?RADIANCE"},
	{HDR, "#?RGBE"},
	{GIF, "GIF87a"},
	{GIF, "GIF89a"},
	{TIFF, "II*\x00"},
	{TIFF, "MM\x00*"},
	{OpenEXR, "\x76\x2f\x31\x01"},
	{QOI, "qoif"},
	{DDS, "DDS "},
	{JPEG, "\xff\xd8\xff"},
}

// Sniff detects an image format from the leading bytes of a file. It never
// looks past the header and does not validate the rest of the content.
func Sniff(header []byte) (Format, bool) {
	for _, sig := range signatures {
		if match(sig.pattern, header) {
			return sig.format, true
		}
	}
	if isBMP(header) {
		return BMP, true
	}
	if isICO(header) {
		return ICO, true
	}
	if isPNM(header) {
		return PNM, true
	}
	if isPCX(header) {
		return PCX, true
	}
	return 0, false
}

func match(pattern string, b []byte) bool {
	if len(b) < len(pattern) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '?' && pattern[i] != b[i] {
			return false
		}
	}
	return true
}

// bmpInfoSizes are the known BITMAPINFOHEADER variants, keyed by size.
var bmpInfoSizes = map[uint32]bool{12: true, 16: true, 40: true, 52: true, 56: true, 64: true, 108: true, 124: true}

// isBMP matches "BM", zero reserved words and a known DIB header size.
func isBMP(b []byte) bool {
	if len(b) < 18 || b[0] != 'B' || b[1] != 'M' {
		return false
	}
	if binary.LittleEndian.Uint32(b[6:10]) != 0 {
		return false
	}
	return bmpInfoSizes[binary.LittleEndian.Uint32(b[14:18])]
}

// isICO matches the icon directory header with at least one entry whose
// reserved byte is zero and whose colour plane count is 0 or 1.
func isICO(b []byte) bool {
	if len(b) < 12 || !bytes.HasPrefix(b, []byte{0, 0, 1, 0}) {
		return false
	}
	if binary.LittleEndian.Uint16(b[4:6]) == 0 || b[9] != 0 {
		return false
	}
	return binary.LittleEndian.Uint16(b[10:12]) <= 1
}

// isPNM matches the netpbm family: 'P', a digit 1..7, whitespace, then the
// start of the header proper. That is a dimension or a comment, or for P7
// an upper-case keyword such as WIDTH.
func isPNM(b []byte) bool {
	if len(b) < 3 || b[0] != 'P' || b[1] < '1' || b[1] > '7' {
		return false
	}
	if !isSpace(b[2]) {
		return false
	}
	i := 3
	for i < len(b) && isSpace(b[i]) {
		i++
	}
	if i == len(b) {
		return false
	}
	c := b[i]
	switch {
	case c == '#', c >= '0' && c <= '9':
		return true
	case b[1] == '7':
		return c >= 'A' && c <= 'Z'
	}
	return false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// isPCX matches the ZSoft manufacturer byte, a known version, RLE encoding
// and a valid bits-per-plane value.
func isPCX(b []byte) bool {
	if len(b) < 4 || b[0] != 0x0a || b[2] != 0x01 {
		return false
	}
	switch b[3] {
	case 1, 2, 4, 8:
	default:
		return false
	}
	switch b[1] {
	case 0, 2, 3, 4, 5:
		return true
	}
	return false
}
