package headson

import (
	"github.com/headsonhq/headson/internal/measure"
	"github.com/headsonhq/headson/internal/reduce"
	"github.com/headsonhq/headson/internal/style"
	"github.com/headsonhq/headson/internal/valuetree"
)

// FileInput is one named document fed to SummarizeFiles: Path is the key it
// is wrapped under in the synthetic aggregate object, Text is its raw
// source.
type FileInput struct {
	Path string
	Text string
}

// SummarizeFiles is the multi-input aggregation: it parses each input,
// reduces each under an equally-divided budget, and wraps the results in a
// synthetic Object keyed by input path, emitted as one top-level document.
// The synthetic wrapper is never itself reduced away -- only its values
// are. Every file shares r's InputFormat,
// Format, Variant and Skew; CharacterBudget (if set) is divided equally
// across files after reserving the wrapper's own delimiter/key overhead.
func SummarizeFiles(files []FileInput, r RawRequest) (string, error) {
	opts, err := ResolveLegacy(r)
	if err != nil {
		return "", err
	}
	return SummarizeFilesOptions(files, opts)
}

// SummarizeFilesOptions is SummarizeFiles' already-resolved-Options form.
func SummarizeFilesOptions(files []FileInput, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	if len(files) == 0 {
		return emitEmptyWrapper(opts), nil
	}

	members := make([]valuetree.Member, len(files))
	inputFmt := style.Format(style.JSON)
	perFile := dividedBudget(files, opts)

	for i, f := range files {
		root, detected, err := parseInput(f.Text, opts.InputFormat)
		if err != nil {
			return "", err
		}
		inputFmt = detected

		sty := style.Resolve(opts.Format, opts.Variant, detected)
		var value *valuetree.Node
		if opts.CharacterBudget == nil {
			value = root
		} else {
			value = reduce.Reduce(root, perFile, opts.Skew, sty)
		}
		members[i] = valuetree.Member{Key: f.Path, Value: value}
	}

	sty := style.Resolve(opts.Format, opts.Variant, inputFmt)
	wrapper := valuetree.NewObject(members)
	return emitWrapper(wrapper, sty)
}

// dividedBudget splits opts.CharacterBudget (if any) equally across len
// files, after reserving the synthetic wrapper's own fixed overhead (braces
// and every "path": key) so the sum of per-file shares plus the wrapper's
// own punctuation stays within budget. The minimum per-file share is 1, so
// even a vanishingly small budget still invokes the Reducer's own
// feasibility floor on every file rather than skipping some outright.
func dividedBudget(files []FileInput, opts Options) int {
	if opts.CharacterBudget == nil {
		return 0
	}
	sty := style.Resolve(opts.Format, opts.Variant, style.JSON)
	keyOverhead := 0
	for _, f := range files {
		keyOverhead += measure.Measure(valuetree.NewString(f.Path), sty, 1) + len(": ") + len(",\n")
	}
	overhead := measure.Overhead(valuetree.NewObject(nil), sty, 0) + keyOverhead
	available := *opts.CharacterBudget - overhead
	n := len(files)
	if available < n {
		available = n
	}
	perFile := available / n
	if perFile < 1 {
		perFile = 1
	}
	return perFile
}

func emitWrapper(wrapper *valuetree.Node, sty style.Style) (string, error) {
	return renderBudgeted(wrapper, nil, style.Balanced, sty)
}

func emitEmptyWrapper(opts Options) string {
	sty := style.Resolve(opts.Format, opts.Variant, style.JSON)
	out, _ := renderBudgeted(valuetree.NewObject(nil), nil, style.Balanced, sty)
	return out
}
