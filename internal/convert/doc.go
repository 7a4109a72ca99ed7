// Package convert re-encodes image files into a target format, either one
// file at a time or for every image found below a directory.
//
// Output files sit next to their inputs with the extension replaced by the
// target format's canonical name. Inputs are never modified or removed.
package convert
