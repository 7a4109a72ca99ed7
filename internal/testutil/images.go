// Package testutil holds fixtures shared by the package tests: blank images
// written in a given encoding and a thread-safe buffer for captured logs.
package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// Blank returns a black, opaque RGBA image of the given size.
func Blank(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return img
}

// Gradient returns an image whose pixels differ, for round trips where a
// uniform image would hide a broken codec.
func Gradient(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 8), G: uint8(y * 8), B: 0x80, A: 0xff})
		}
	}
	return img
}

// WriteJPEG writes a blank size×size JPEG to dir/name and returns its path.
func WriteJPEG(t *testing.T, dir, name string, size int) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, Blank(size, size), nil))
	return WriteBytes(t, dir, name, buf.Bytes())
}

// WritePNG writes a blank size×size PNG to dir/name and returns its path.
func WritePNG(t *testing.T, dir, name string, size int) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, Blank(size, size)))
	return WriteBytes(t, dir, name, buf.Bytes())
}

// WriteGIF writes a blank size×size GIF to dir/name and returns its path.
func WriteGIF(t *testing.T, dir, name string, size int) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, gif.Encode(&buf, Blank(size, size), nil))
	return WriteBytes(t, dir, name, buf.Bytes())
}

// WriteBytes writes raw content to dir/name, creating parent directories.
func WriteBytes(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

// PNGConfig decodes only the header of the PNG at path.
func PNGConfig(t *testing.T, path string) image.Config {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	return cfg
}

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}
