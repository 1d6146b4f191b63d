// Package measure computes the rendered character cost of a Value Tree node
// under a given Style. Cost is computed by rendering the candidate through
// internal/emit and counting Unicode scalar values: a hand-rolled
// "cost without rendering" path risks silently drifting from what
// internal/emit actually produces, and a reducer that trusts a wrong cost is
// worse than a reducer that is merely slower than optimal.
package measure

import (
	"unicode/utf8"

	"github.com/headsonhq/headson/internal/emit"
	"github.com/headsonhq/headson/internal/style"
	"github.com/headsonhq/headson/internal/valuetree"
)

// Measure returns the number of Unicode scalar values (runes, not bytes)
// that rendering n under sty at the given depth would spend. This is the
// single source of truth for "cost" used by internal/reduce; emit.Render is
// the single source of truth for "output", and Measure is defined in terms
// of it so the two can never disagree.
func Measure(n *valuetree.Node, sty style.Style, depth int) int {
	return utf8.RuneCountInString(emit.Render(n, sty, depth))
}

// MeasureChildren returns the per-child cost of n's Items (Array) or
// Members (Object) rendered in isolation at depth+1, the weights the reducer
// divides a container's budget by. It does not include delimiter,
// indentation, or comma overhead shared across siblings -- internal/reduce
// accounts for that separately via Overhead.
func MeasureChildren(n *valuetree.Node, sty style.Style, depth int) []int {
	switch n.Kind {
	case valuetree.Array:
		costs := make([]int, len(n.Items))
		for i, c := range n.Items {
			costs[i] = Measure(c, sty, depth+1)
		}
		return costs
	case valuetree.Object:
		costs := make([]int, len(n.Members))
		for i, m := range n.Members {
			costs[i] = Measure(m.Value, sty, depth+1) + memberKeyCost(m.Key, sty)
		}
		return costs
	default:
		return nil
	}
}

// memberKeyCost is the cost of an object member's key and separator, which
// travels with the member regardless of how its value is reduced.
func memberKeyCost(key string, sty style.Style) int {
	switch sty.Format {
	case style.YAML:
		return utf8.RuneCountInString(key) + len(": ")
	default:
		return utf8.RuneCountInString(key) + len(`"": `)
	}
}

// Overhead returns the cost of an empty container of n's shape at the given
// depth ("[]" or "{}" for json-family and yaml formats, nothing for text),
// or Measure(n) when n is not a container. It does not include the line
// breaks and indentation a non-empty container adds around its children.
// internal/reduce uses it to bound how much budget is available for
// children at all.
func Overhead(n *valuetree.Node, sty style.Style, depth int) int {
	empty := emptyLike(n)
	return Measure(empty, sty, depth)
}

// emptyLike returns a zero-child clone of n's container shape, used only to
// measure delimiter overhead in isolation.
func emptyLike(n *valuetree.Node) *valuetree.Node {
	switch n.Kind {
	case valuetree.Array:
		return valuetree.NewArray(nil)
	case valuetree.Object:
		return valuetree.NewObject(nil)
	default:
		return n
	}
}
