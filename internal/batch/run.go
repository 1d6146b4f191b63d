package batch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zeebo/xxh3"

	"github.com/headsonhq/headson/internal/headson"
)

// RunOptions configures one batch summarization run.
type RunOptions struct {
	// Root is the directory to walk.
	Root string

	// Includes and Excludes are doublestar glob patterns applied to
	// root-relative paths.
	Includes []string
	Excludes []string

	// SkipLargeFiles is the per-file size cap in bytes (0 = no cap).
	SkipLargeFiles int64

	// Options are the already-resolved summarize options shared by every
	// document; the character budget is divided equally across them by the
	// driver's aggregation.
	Options headson.Options
}

// Result is the output of one batch run.
type Result struct {
	// Output is the aggregate document: every summarized file wrapped in a
	// synthetic object keyed by path.
	Output string

	// Documents holds the walked files in path order, including ones whose
	// read failed (Err set) and were left out of Output.
	Documents []Document

	// CacheKey is a stable hex digest over every document's path and
	// content hash. Two runs over an unchanged tree produce the same key.
	CacheKey string
}

// Run walks opts.Root, parses every matching document, and assembles the
// aggregate summary under an equally-divided budget. Files that fail to read
// are skipped with a warning; files that fail to parse abort the run, since
// a partially-aggregated document would silently misrepresent the tree.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	ignorer, err := NewHeadsonignoreMatcher(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("loading .headsonignore: %w", err)
	}

	walker := NewWalker()
	docs, err := walker.Walk(ctx, WalkerConfig{
		Root:           opts.Root,
		Ignorer:        ignorer,
		Filter:         NewPatternFilter(opts.Includes, opts.Excludes),
		SkipLargeFiles: opts.SkipLargeFiles,
	})
	if err != nil {
		return nil, err
	}

	files := make([]headson.FileInput, 0, len(docs))
	for _, d := range docs {
		if d.Err != nil {
			slog.Warn("skipping unreadable document", "path", d.Path, "error", d.Err)
			continue
		}
		files = append(files, headson.FileInput{Path: d.Path, Text: d.Text})
	}

	output, err := headson.SummarizeFilesOptions(files, opts.Options)
	if err != nil {
		return nil, err
	}

	return &Result{
		Output:    output,
		Documents: docs,
		CacheKey:  cacheKey(docs),
	}, nil
}

// cacheKey folds every document's path and content hash into one digest.
// Read errors contribute the path with a zero hash, so a file flickering
// between readable and not changes the key.
func cacheKey(docs []Document) string {
	h := xxh3.New()
	var buf [8]byte
	for _, d := range docs {
		_, _ = h.WriteString(d.Path)
		putUint64(buf[:], d.ContentHash)
		_, _ = h.Write(buf[:])
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

func putUint64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}
