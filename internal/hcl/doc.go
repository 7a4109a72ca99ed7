// Package hcl implements config.Loader for HCL files.
//
// Attribute expressions are evaluated against a small context: a `format`
// object holding every supported format name (so `target_format =
// format.webp` is checked when the file is decoded) and the lower, upper,
// min and max functions from go-cty's standard library.
package hcl
