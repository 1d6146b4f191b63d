package batch

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// PatternFilter applies include and exclude glob filtering to file paths
// during the batch walk.
//
// Filtering rules:
//   - When no include patterns are set, all files pass the include step.
//   - A file must match at least one include pattern (when any are set) to
//     be kept.
//   - Exclude patterns take precedence over includes: if a file matches any
//     exclude pattern, it is removed regardless of include matches.
//   - Patterns use doublestar syntax (e.g., "**/*.json" matches deeply
//     nested files).
type PatternFilter struct {
	includes []string
	excludes []string
	logger   *slog.Logger
}

// NewPatternFilter creates a new PatternFilter from include and exclude
// pattern lists. Copies are made of both slices to prevent external mutation.
func NewPatternFilter(includes, excludes []string) *PatternFilter {
	inc := make([]string, len(includes))
	copy(inc, includes)

	exc := make([]string, len(excludes))
	copy(exc, excludes)

	logger := slog.Default().With("component", "pattern-filter")
	logger.Debug("pattern filter initialized",
		"includes", len(inc),
		"excludes", len(exc),
	)

	return &PatternFilter{includes: inc, excludes: exc, logger: logger}
}

// Matches reports whether the given path should be included in the batch.
// The path should be relative to the walk root, using forward slashes.
//
// Logic:
//  1. If the path matches any exclude pattern, return false (exclude wins).
//  2. If no include patterns are set, return true (pass-through).
//  3. If the path matches any include pattern, return true.
//  4. Otherwise, return false.
func (f *PatternFilter) Matches(path string) bool {
	normalizedPath := filepath.ToSlash(path)
	normalizedPath = strings.TrimPrefix(normalizedPath, "./")

	if normalizedPath == "" {
		return false
	}

	for _, pattern := range f.excludes {
		matched, err := doublestar.Match(pattern, normalizedPath)
		if err != nil {
			f.logger.Debug("invalid exclude pattern", "pattern", pattern, "error", err)
			continue
		}
		if matched {
			return false
		}
	}

	if len(f.includes) == 0 {
		return true
	}

	for _, pattern := range f.includes {
		matched, err := doublestar.Match(pattern, normalizedPath)
		if err != nil {
			f.logger.Debug("invalid include pattern", "pattern", pattern, "error", err)
			continue
		}
		if matched {
			return true
		}
	}

	return false
}
