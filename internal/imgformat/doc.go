// Package imgformat defines the closed set of image formats imgconv knows
// about. It maps user-supplied names to formats and back to their canonical
// lowercase names, and detects a file's format from its header bytes.
//
// Nothing in this package touches the filesystem or decodes pixel data.
package imgformat
