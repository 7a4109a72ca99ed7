package config

// File is the unified representation of a configuration file.
type File struct {
	LogLevel     *string
	LogFormat    *string
	TargetFormat *string
	Workers      *int
	Encode       Encode
}

// Encode holds per-format encoder settings.
type Encode struct {
	JPEGQuality     *int
	PNGCompression  *string
	GIFColors       *int
	TIFFCompression *string
	WebPLossless    *bool
	WebPQuality     *float64
	AVIFQuality     *int
	AVIFSpeed       *int
}
