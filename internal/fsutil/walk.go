package fsutil

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/specialistvlad/imgconv/internal/ctxlog"
)

// WalkFunc is called for every non-directory entry found by Walk. Returning
// an error stops the walk and is returned from Walk.
type WalkFunc func(path string, d fs.DirEntry) error

// Walk recursively visits every non-directory entry below root. Entries that
// cannot be read are logged and skipped rather than failing the walk. The
// walk stops early when ctx is cancelled.
func Walk(ctx context.Context, root string, fn WalkFunc) error {
	logger := ctxlog.FromContext(ctx)

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			logger.Debug("Skipping unreadable entry.", "path", path, "error", err)
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		return fn(path, d)
	})
}

// Collect walks root and returns the paths for which keep returns true,
// in walk order.
func Collect(ctx context.Context, root string, keep func(path string) bool) ([]string, error) {
	var files []string
	err := Walk(ctx, root, func(path string, _ fs.DirEntry) error {
		if keep(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
