package app

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/imgconv/internal/codec"
	"github.com/specialistvlad/imgconv/internal/config"
	"github.com/specialistvlad/imgconv/internal/ctxlog"
	"github.com/specialistvlad/imgconv/internal/testutil"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "info", cfg: Config{Path: "a.png"}},
		{name: "convert without target is deferred to the run", cfg: Config{Command: CommandConvert, Path: "a.png"}},
		{name: "missing path", cfg: Config{}, wantErr: "a path is required"},
		{name: "is without format", cfg: Config{Command: CommandIs, Path: "a.png"}, wantErr: "requires an expected format"},
		{name: "negative workers", cfg: Config{Path: "d", Workers: -1}, wantErr: "must not be negative"},
		{name: "bad level", cfg: Config{Path: "d", LogLevel: "loud"}, wantErr: "invalid log level"},
		{name: "bad format", cfg: Config{Path: "d", LogFormat: "xml"}, wantErr: "invalid log format"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewConfig(tc.cfg)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.cfg, *got); diff != "" {
				t.Errorf("NewConfig() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	str := func(s string) *string { return &s }
	num := func(n int) *int { return &n }

	testCases := []struct {
		name string
		cfg  Config
		file *config.File
		want settings
	}{
		{
			name: "defaults",
			cfg:  Config{},
			want: settings{logLevel: slog.LevelWarn, logFormat: "text", encode: codec.DefaultOptions()},
		},
		{
			name: "file fills gaps",
			cfg:  Config{},
			file: &config.File{
				LogLevel:     str("trace"),
				LogFormat:    str("json"),
				TargetFormat: str("webp"),
				Workers:      num(4),
				Encode:       config.Encode{JPEGQuality: num(90)},
			},
			want: settings{
				logLevel:     ctxlog.LevelTrace,
				logFormat:    "json",
				targetFormat: "webp",
				workers:      4,
				encode: func() codec.Options {
					o := codec.DefaultOptions()
					o.JPEGQuality = 90
					return o
				}(),
			},
		},
		{
			name: "flags win",
			cfg:  Config{LogLevel: "error", LogFormat: "text", TargetFormat: "png", Workers: 2},
			file: &config.File{
				LogLevel:     str("debug"),
				LogFormat:    str("json"),
				TargetFormat: str("webp"),
				Workers:      num(8),
			},
			want: settings{
				logLevel:     slog.LevelError,
				logFormat:    "text",
				targetFormat: "png",
				workers:      2,
				encode:       codec.DefaultOptions(),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := resolve(&tc.cfg, tc.file)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, *got, cmp.AllowUnexported(settings{})); diff != "" {
				t.Errorf("resolve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve_InvalidFileValues(t *testing.T) {
	t.Parallel()

	str := func(s string) *string { return &s }
	num := func(n int) *int { return &n }

	testCases := []struct {
		name string
		file *config.File
		want string
	}{
		{name: "log level", file: &config.File{LogLevel: str("verbose")}, want: "invalid log level"},
		{name: "log format", file: &config.File{LogFormat: str("yaml")}, want: "invalid log format"},
		{name: "workers", file: &config.File{Workers: num(-3)}, want: "must not be negative"},
		{name: "encode", file: &config.File{Encode: config.Encode{JPEGQuality: num(0)}}, want: "jpeg_quality"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := resolve(&Config{}, tc.file)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	for _, name := range LogLevels {
		level, err := ParseLogLevel(strings.ToUpper(name))
		require.NoError(t, err, name)
		assert.Equal(t, levels[name], level)
	}

	_, err := ParseLogLevel("verbose")
	require.ErrorIs(t, err, ErrInvalidLogLevel)
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("trace is printed as TRACE", func(t *testing.T) {
		t.Parallel()
		buf := &testutil.SafeBuffer{}
		logger := newLogger(ctxlog.LevelTrace, "text", buf)

		logger.Log(t.Context(), ctxlog.LevelTrace, "step")

		assert.Contains(t, buf.String(), "level=TRACE")
	})

	t.Run("json handler", func(t *testing.T) {
		t.Parallel()
		buf := &testutil.SafeBuffer{}
		logger := newLogger(slog.LevelInfo, "JSON", buf)

		logger.Info("hello")

		assert.Contains(t, buf.String(), `"msg":"hello"`)
	})

	t.Run("level filters", func(t *testing.T) {
		t.Parallel()
		buf := &testutil.SafeBuffer{}
		logger := newLogger(slog.LevelWarn, "text", buf)

		logger.Info("hidden")

		assert.Empty(t, buf.String())
	})
}
