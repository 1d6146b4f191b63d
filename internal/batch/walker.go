package batch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/zeebo/xxh3"
	"golang.org/x/sync/errgroup"
)

// Document is one file discovered and read by the batch walker.
type Document struct {
	// Path is the walk-root-relative path, using forward slashes. It is the
	// key the document is wrapped under in the aggregate output.
	Path string

	// Text is the raw file content.
	Text string

	// ContentHash is the xxh3 64-bit hash of Text, used to build the batch
	// cache key so repeated runs over an unchanged tree are recognisable.
	ContentHash uint64

	// Err records a per-file read failure. Documents with a non-nil Err
	// carry no Text and are excluded from summarization but reported.
	Err error
}

// WalkerConfig holds configuration for the batch document walker.
type WalkerConfig struct {
	// Root is the target directory to walk.
	Root string

	// Ignorer handles .headsonignore (and any chained) pattern matching.
	// May be nil.
	Ignorer Ignorer

	// Filter applies include/exclude glob filtering. May be nil, in which
	// case every file passes.
	Filter *PatternFilter

	// SkipLargeFiles is the file size threshold in bytes. Files exceeding
	// this size are skipped. A value of 0 disables large file skipping.
	SkipLargeFiles int64

	// Concurrency is the maximum number of parallel file-reading workers.
	// Defaults to runtime.NumCPU() if <= 0.
	Concurrency int
}

// Walker is the batch discovery engine: it traverses a directory tree,
// applies ignore and glob filtering, and reads file contents in parallel
// using bounded concurrency via errgroup.
type Walker struct {
	logger *slog.Logger
}

// NewWalker creates a new Walker instance.
func NewWalker() *Walker {
	return &Walker{
		logger: slog.Default().With("component", "walker"),
	}
}

// Walk discovers files in the directory tree rooted at cfg.Root, applying
// all configured filters, and reads file contents in parallel. The returned
// documents are sorted alphabetically by path so batch output order is
// deterministic.
//
// The walk proceeds in two phases:
//  1. Walking: filepath.WalkDir traverses the tree, applying ignore rules,
//     size limits, and pattern filters. Matching files are collected by path.
//  2. Content loading: errgroup workers read file contents in parallel with
//     bounded concurrency. Per-file errors are captured in Document.Err
//     rather than aborting the entire walk.
//
// Context cancellation stops both phases promptly.
func (w *Walker) Walk(ctx context.Context, cfg WalkerConfig) ([]Document, error) {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = runtime.NumCPU()
	}

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolving root path %s: %w", cfg.Root, err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", root)
	}

	paths, err := w.collectPaths(ctx, root, cfg)
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	docs := make([]Document, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)

	for i, rel := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("batch read cancelled: %w", err)
			}

			doc := Document{Path: rel}
			data, readErr := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
			if readErr != nil {
				w.logger.Debug("file read failed", "path", rel, "error", readErr)
				doc.Err = readErr
			} else {
				doc.Text = string(data)
				doc.ContentHash = xxh3.Hash(data)
			}
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	w.logger.Debug("batch walk complete", "root", root, "documents", len(docs))
	return docs, nil
}

// collectPaths runs the walking phase, returning root-relative slash paths
// of every file that passes the filters.
func (w *Walker) collectPaths(ctx context.Context, root string, cfg WalkerConfig) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if err != nil {
			w.logger.Debug("skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if cfg.Ignorer != nil && cfg.Ignorer.IsIgnored(rel, d.IsDir()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			// .git never holds documents worth summarizing.
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}

		if cfg.SkipLargeFiles > 0 {
			if info, statErr := d.Info(); statErr == nil && info.Size() > cfg.SkipLargeFiles {
				w.logger.Debug("skipping large file", "path", rel, "size", info.Size())
				return nil
			}
		}

		if cfg.Filter != nil && !cfg.Filter.Matches(rel) {
			return nil
		}

		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	return paths, nil
}
