package headson

import (
	"log/slog"
	"unicode/utf8"

	"github.com/headsonhq/headson/internal/emit"
	"github.com/headsonhq/headson/internal/headsonerr"
	"github.com/headsonhq/headson/internal/reduce"
	"github.com/headsonhq/headson/internal/style"
	"github.com/headsonhq/headson/internal/valuetree"
)

// Summarize is the package's primary entry point: resolve a RawRequest's
// legacy and canonical parameters, parse Text into a Value Tree, reduce it
// to CharacterBudget under Skew, and emit it under the resolved
// Format/Variant. It is infallible once parsing succeeds -- the reducer and
// emitter are total functions on a well-formed tree.
func Summarize(r RawRequest) (string, error) {
	opts, err := ResolveLegacy(r)
	if err != nil {
		return "", err
	}
	return SummarizeText(r.Text, opts)
}

// SummarizeText runs one already-resolved Options against text, the shared
// core both Summarize (after alias resolution) and SummarizeFiles (per
// input, under a divided budget) call into.
func SummarizeText(text string, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	root, inputFmt, err := parseInput(text, opts.InputFormat)
	if err != nil {
		return "", err
	}

	sty := style.Resolve(opts.Format, opts.Variant, inputFmt)
	return renderBudgeted(root, opts.CharacterBudget, opts.Skew, sty)
}

// renderBudgeted reduces root to budget (nil means "no budget: emit the
// full tree, un-reduced") and renders it under sty, running the emitter's
// defensive hard-cap check afterwards.
func renderBudgeted(root *valuetree.Node, budget *int, skew style.Skew, sty style.Style) (string, error) {
	tree := root
	if budget != nil {
		tree = reduce.Reduce(root, *budget, skew, sty)
	}
	out := emit.Render(tree, sty, 0)
	return out, checkOverflow(out, budget, sty)
}

// checkOverflow is the emitter-side hard-cap safety net. internal/measure
// is defined in terms of the very same emit.Render, so a Reduce result
// cannot drift from what Render actually produces; the only way out is the
// feasibility floor, where even the smallest marker exceeds the budget and
// the reducer accepts the overflow. That accepted overflow is never turned
// into an error (partial output alongside an error is forbidden) -- it is
// logged so a caller instrumenting overflow can observe the rare case.
func checkOverflow(out string, budget *int, sty style.Style) error {
	if budget == nil {
		return nil
	}
	if n := utf8.RuneCountInString(out); n > *budget {
		slog.Debug("headson: reduced output still exceeds budget",
			"budget", *budget, "actual", n, "format", sty.Format, "variant", sty.Variant)
	}
	return nil
}

// parseInput parses text under declared, or -- when declared is empty --
// detects it by trying json first and falling back to yaml. Text input is
// never detected; it must be declared explicitly.
// The concrete style.Format it resolves to is returned
// alongside the tree so the caller can feed it to style.Resolve's Auto
// handling.
func parseInput(text string, declared InputFormat) (*valuetree.Node, style.Format, error) {
	switch declared {
	case InputJSON:
		root, err := parseJSON(text)
		return root, style.JSON, err
	case InputYAML:
		root, err := parseYAML(text)
		return root, style.YAML, err
	case InputText:
		return parseText(text), style.Text, nil
	case "":
		if root, err := parseJSON(text); err == nil {
			return root, style.JSON, nil
		}
		root, err := parseYAML(text)
		if err != nil {
			return nil, "", err
		}
		return root, style.YAML, nil
	default:
		return nil, "", headsonerr.InvalidOpt("invalid input_format " + string(declared) + " (allowed: json, yaml, text)")
	}
}
