package tokenreport

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// CountTexts counts tokens for each text in parallel and returns the per-text
// counts in input order plus their total. Workers are bounded to
// runtime.NumCPU() concurrent goroutines. Context cancellation is respected:
// if ctx is cancelled before all texts are processed, the outstanding
// goroutines are drained and the context error is returned.
//
// The supplied Tokenizer must be safe for concurrent use; all built-in
// implementations satisfy this requirement.
func CountTexts(ctx context.Context, tok Tokenizer, texts []string) ([]int, int, error) {
	counts := make([]int, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, text := range texts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("token counting cancelled: %w", err)
			}
			counts[i] = tok.Count(text)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	return counts, total, nil
}
