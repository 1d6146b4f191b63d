package reduce

import (
	"github.com/headsonhq/headson/internal/measure"
	"github.com/headsonhq/headson/internal/style"
	"github.com/headsonhq/headson/internal/valuetree"
)

// quotingOverhead returns how many characters sty spends around a string's
// content alone (two quotes for json/pseudo/js, and for yaml as well since
// an empty string is never emitted bare; the trailing newline for text), by
// measuring an empty string under the same Style at depth 0: an empty
// payload isolates the format's fixed cost from the content itself.
func quotingOverhead(sty style.Style) int {
	return measure.Measure(valuetree.NewString(""), sty, 0)
}

// reduceString truncates an oversized string to fit budget. At least one
// character survives; a strict Style emits the raw truncated
// form with no ellipsis, while every other Style reserves one character for
// the single-rune ellipsis and places it according to skew -- appended for
// head (drop the tail), prepended for tail (drop the head), or embedded in
// the middle for balanced (drop the middle, keep both ends).
func reduceString(n *valuetree.Node, sty style.Style, budget int, skew style.Skew) *valuetree.Node {
	if measure.Measure(n, sty, 0) <= budget {
		return n.Clone()
	}

	runes := []rune(n.Lexical)
	overhead := quotingOverhead(sty)

	if sty.Variant == style.Strict {
		available := clampAtLeast(budget-overhead, 1)
		if available >= len(runes) {
			return n.Clone()
		}
		return valuetree.NewString(truncateRaw(runes, available, skew))
	}

	available := clampAtLeast(budget-overhead-1, 1)
	if available >= len(runes) {
		return n.Clone()
	}
	return valuetree.NewString(truncateWithEllipsis(runes, available, skew))
}

func clampAtLeast(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}

// truncateRaw keeps available characters with no marker: from the head for
// head/balanced skew (balanced has no ellipsis to split around, so it
// degrades to a head-kept prefix), from the tail for tail skew.
func truncateRaw(runes []rune, available int, skew style.Skew) string {
	if skew == style.Tail {
		return string(runes[len(runes)-available:])
	}
	return string(runes[:available])
}

// truncateWithEllipsis keeps available real characters plus one ellipsis,
// positioned per skew.
func truncateWithEllipsis(runes []rune, available int, skew style.Skew) string {
	switch skew {
	case style.Head:
		return string(runes[:available]) + style.Ellipsis
	case style.Tail:
		return style.Ellipsis + string(runes[len(runes)-available:])
	default: // Balanced: split available between both ends, head gets the odd one.
		headN := (available + 1) / 2
		tailN := available - headN
		return string(runes[:headN]) + style.Ellipsis + string(runes[len(runes)-tailN:])
	}
}
