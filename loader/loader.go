// Package loader decodes many meetsetup.xml files concurrently.
package loader

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/Nydauron/moisty/meetsetup"
)

type Result struct {
	Path string
	Meet *meetsetup.Meet
	Err  error
}

// Load decodes every path with at most workers files in flight. Results keep
// the order of paths. Decode failures are stored in the result; the returned
// error is only set when ctx is done.
func Load(ctx context.Context, paths []string, opts meetsetup.Options, workers int, logger *slog.Logger) ([]Result, error) {
	results := make([]Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		i, path := i, path
		g.Go(func() error {
			meet, err := meetsetup.ReadMeetFile(path, opts)
			if err != nil {
				logger.Debug("decoding meet failed", "path", path, "error", err)
			}
			results[i] = Result{Path: path, Meet: meet, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Partition splits results into decoded meets and failures.
func Partition(results []Result) ([]Result, []Result) {
	return lo.FilterReject(results, func(r Result, _ int) bool {
		return r.Err == nil
	})
}

// ListDir returns the .xml files directly inside dir, sorted by name.
func ListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	paths := lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".xml") {
			return "", false
		}
		return filepath.Join(dir, e.Name()), true
	})
	slices.Sort(paths)
	return paths, nil
}
