package codec

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/imgconv/internal/imgformat"
	"github.com/specialistvlad/imgconv/internal/testutil"
)

func TestSaveAndOpen_RoundTrip(t *testing.T) {
	t.Parallel()

	formats := []imgformat.Format{
		imgformat.PNG,
		imgformat.JPEG,
		imgformat.GIF,
		imgformat.WebP,
		imgformat.PNM,
		imgformat.TIFF,
		imgformat.TGA,
		imgformat.BMP,
		imgformat.QOI,
		imgformat.HDR,
	}

	for _, format := range formats {
		t.Run(format.String(), func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			path := filepath.Join(t.TempDir(), "image"+format.Extension())

			// --- Act ---
			require.NoError(t, Save(testutil.Gradient(32, 24), path, format, DefaultOptions()))

			r, err := Open(path)
			require.NoError(t, err)
			defer r.Close()
			got, ok := r.Format()
			img, decodeErr := r.Decode()

			// --- Assert ---
			require.True(t, ok, "format of freshly written %s file should be detected", format)
			assert.Equal(t, format, got)
			require.NoError(t, decodeErr)
			assert.Equal(t, 32, img.Bounds().Dx())
			assert.Equal(t, 24, img.Bounds().Dy())
		})
	}
}

func TestSave_ICOIsSniffedAsICO(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "favicon.ico")
	require.NoError(t, Save(testutil.Blank(16, 16), path, imgformat.ICO, DefaultOptions()))

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()
	got, ok := r.Format()
	require.True(t, ok)
	assert.Equal(t, imgformat.ICO, got)
}

func TestSave_ICOTooLarge(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "big.ico")
	err := Save(testutil.Blank(300, 10), path, imgformat.ICO, DefaultOptions())
	require.ErrorIs(t, err, ErrEncode)
	assert.NoFileExists(t, path)
}

func TestSave_UnsupportedTargetLeavesNoFile(t *testing.T) {
	t.Parallel()

	for _, format := range []imgformat.Format{imgformat.DDS, imgformat.OpenEXR, imgformat.PCX, imgformat.Farbfeld} {
		path := filepath.Join(t.TempDir(), "out"+format.Extension())

		err := Save(testutil.Blank(8, 8), path, format, DefaultOptions())

		require.Error(t, err, format.String())
		assert.True(t, errors.Is(err, ErrEncode), "%s: %v", format, err)
		assert.True(t, errors.Is(err, ErrUnsupported), "%s: %v", format, err)
		assert.NoFileExists(t, path)
	}
}

func TestSave_UnwritablePath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing-dir", "out.png")
	err := Save(testutil.Blank(8, 8), path, imgformat.PNG, DefaultOptions())
	require.ErrorIs(t, err, ErrEncode)

	var codecErr *Error
	require.True(t, errors.As(err, &codecErr))
	assert.Equal(t, path, codecErr.Path)
}

func TestOpen_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "nope.png"))
	require.ErrorIs(t, err, ErrOpen)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestOpen_UndetectedFormat(t *testing.T) {
	t.Parallel()

	path := testutil.WriteBytes(t, t.TempDir(), "notes.txt", []byte("just some text"))

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	_, ok := r.Format()
	assert.False(t, ok)
	assert.Equal(t, path, r.Path())

	_, err = r.Decode()
	require.ErrorIs(t, err, ErrDecode)
	assert.ErrorIs(t, err, ErrUndetected)
}

func TestOpen_EmptyFile(t *testing.T) {
	t.Parallel()

	path := testutil.WriteBytes(t, t.TempDir(), "empty.png", nil)

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()
	_, ok := r.Format()
	assert.False(t, ok)
}

func TestOpen_TGAFallsBackToExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "sprite.tga")
	require.NoError(t, Save(testutil.Blank(4, 4), path, imgformat.TGA, DefaultOptions()))

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()
	got, ok := r.Format()
	require.True(t, ok)
	assert.Equal(t, imgformat.TGA, got)

	// The same bytes under another name are not trusted.
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	renamed := testutil.WriteBytes(t, dir, "sprite.bin", content)
	r2, err := Open(renamed)
	require.NoError(t, err)
	defer r2.Close()
	_, ok = r2.Format()
	assert.False(t, ok)
}

func TestDecode_CorruptContent(t *testing.T) {
	t.Parallel()

	path := testutil.WriteBytes(t, t.TempDir(), "broken.png", []byte("\x89PNG\r\n\x1a\n\x00\x00garbage"))

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	got, ok := r.Format()
	require.True(t, ok)
	assert.Equal(t, imgformat.PNG, got)

	_, err = r.Decode()
	require.ErrorIs(t, err, ErrDecode)
	assert.Contains(t, err.Error(), path)
}

func TestDecode_NoDecoderForFormat(t *testing.T) {
	t.Parallel()

	path := testutil.WriteBytes(t, t.TempDir(), "image.exr", []byte("\x76\x2f\x31\x01\x02\x00\x00\x00"))

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Decode()
	require.ErrorIs(t, err, ErrDecode)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestSupports(t *testing.T) {
	t.Parallel()

	decode, encode := Supports(imgformat.PNG)
	assert.True(t, decode)
	assert.True(t, encode)

	decode, encode = Supports(imgformat.DDS)
	assert.True(t, decode)
	assert.False(t, encode)

	decode, encode = Supports(imgformat.HDR)
	assert.True(t, decode)
	assert.True(t, encode)

	decode, encode = Supports(imgformat.PCX)
	assert.False(t, decode)
	assert.False(t, encode)
}
