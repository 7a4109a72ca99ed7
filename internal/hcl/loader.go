package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/specialistvlad/imgconv/internal/config"
	"github.com/specialistvlad/imgconv/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot mirrors the top level of a configuration file. Unknown attributes
// and blocks are rejected by gohcl.
type fileRoot struct {
	LogLevel     *string      `hcl:"log_level,optional"`
	LogFormat    *string      `hcl:"log_format,optional"`
	TargetFormat *string      `hcl:"target_format,optional"`
	Workers      *int         `hcl:"workers,optional"`
	Encode       *encodeBlock `hcl:"encode,block"`
}

type encodeBlock struct {
	JPEGQuality     *int     `hcl:"jpeg_quality,optional"`
	PNGCompression  *string  `hcl:"png_compression,optional"`
	GIFColors       *int     `hcl:"gif_colors,optional"`
	TIFFCompression *string  `hcl:"tiff_compression,optional"`
	WebPLossless    *bool    `hcl:"webp_lossless,optional"`
	WebPQuality     *float64 `hcl:"webp_quality,optional"`
	AVIFQuality     *int     `hcl:"avif_quality,optional"`
	AVIFSpeed       *int     `hcl:"avif_speed,optional"`
}

// Load parses and decodes the HCL file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.File, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, newEvalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	file := translate(&root)
	logger.Debug("HCL loading complete.", "path", path)
	return file, nil
}

// translate copies the decoded HCL structs into the format-agnostic model.
func translate(root *fileRoot) *config.File {
	file := &config.File{
		LogLevel:     root.LogLevel,
		LogFormat:    root.LogFormat,
		TargetFormat: root.TargetFormat,
		Workers:      root.Workers,
	}
	if enc := root.Encode; enc != nil {
		file.Encode = config.Encode{
			JPEGQuality:     enc.JPEGQuality,
			PNGCompression:  enc.PNGCompression,
			GIFColors:       enc.GIFColors,
			TIFFCompression: enc.TIFFCompression,
			WebPLossless:    enc.WebPLossless,
			WebPQuality:     enc.WebPQuality,
			AVIFQuality:     enc.AVIFQuality,
			AVIFSpeed:       enc.AVIFSpeed,
		}
	}
	return file
}
