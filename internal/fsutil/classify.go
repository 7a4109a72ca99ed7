// Package fsutil provides file system utility functions: classifying a path
// and walking a directory tree without failing on unreadable entries.
package fsutil

import (
	"errors"
	"io/fs"
	"os"
)

// Kind is the classification of a filesystem path.
type Kind int

const (
	// None means the path exists but is neither a regular file nor a
	// directory, or could not be inspected (permission denied, socket, ...).
	None Kind = iota
	File
	Directory
)

func (k Kind) String() string {
	switch k {
	case File:
		return "file"
	case Directory:
		return "directory"
	default:
		return "none"
	}
}

// Exists reports whether anything exists at path. A permission error still
// counts as existing; only a definite not-exist result returns false.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

// Classify reports whether path is a regular file, a directory, or neither.
// Symlinks are followed.
func Classify(path string) Kind {
	info, err := os.Stat(path)
	if err != nil {
		return None
	}
	switch {
	case info.Mode().IsRegular():
		return File
	case info.IsDir():
		return Directory
	default:
		return None
	}
}
