//go:build !avif

package codec

// encodeAVIF is nil without the avif build tag, which makes AVIF an
// unsupported encode target.
var encodeAVIF encodeFunc
