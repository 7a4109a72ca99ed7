package convert

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/specialistvlad/imgconv/internal/codec"
	"github.com/specialistvlad/imgconv/internal/ctxlog"
	"github.com/specialistvlad/imgconv/internal/fsutil"
	"github.com/specialistvlad/imgconv/internal/imgformat"
)

// Result lists the files written by Dir, in the order their inputs were found.
type Result struct {
	Converted []string
}

// Dir converts every image found below root to target. Entries whose format
// cannot be detected are skipped. The first conversion error aborts the run
// and is returned as is; nothing is reported about the files that were
// already written.
//
// With workers <= 1 files are converted one after another in walk order.
// Larger values convert up to that many files concurrently.
func Dir(ctx context.Context, root string, target imgformat.Format, opts codec.Options, workers int) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Scanning directory for images.", "root", root)

	// Collect first: outputs written during the walk must not be picked up as inputs.
	inputs, err := fsutil.Collect(ctx, root, func(path string) bool {
		return isImage(ctx, path)
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("Directory scan complete.", "root", root, "images", len(inputs), "workers", workers)

	outputs := make([]string, len(inputs))
	if workers <= 1 {
		for i, in := range inputs {
			out, err := File(ctx, in, target, opts)
			if err != nil {
				return nil, err
			}
			outputs[i] = out
		}
		return &Result{Converted: outputs}, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := File(gctx, in, target, opts)
			if err != nil {
				logger.Debug("Conversion failed, cancelling remaining work.", "path", in, "error", err)
				return err
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Result{Converted: outputs}, nil
}

// isImage opens path and sniffs its header without decoding.
func isImage(ctx context.Context, path string) bool {
	r, err := codec.Open(path)
	if err != nil {
		ctxlog.FromContext(ctx).Debug("Skipping unreadable entry.", "path", path, "error", err)
		return false
	}
	defer r.Close()

	if _, ok := r.Format(); !ok {
		ctxlog.Trace(ctx, "Skipping entry with unknown format.", "path", path)
		return false
	}
	return true
}
