package reduce

import (
	"github.com/headsonhq/headson/internal/measure"
	"github.com/headsonhq/headson/internal/style"
	"github.com/headsonhq/headson/internal/valuetree"
)

// minFloor is the smallest budget share worth handing to a kept child: at
// least enough room for a 1-character placeholder or the smallest marker.
const minFloor = 1

// Reduce produces a tree whose measured cost is <= budget whenever the
// feasibility floor allows it: a tree can always be collapsed to a
// one-child container holding a single Omitted marker, and that is
// accepted even if it still overflows budget -- Reduce never errors.
func Reduce(root *valuetree.Node, budget int, skew style.Skew, sty style.Style) *valuetree.Node {
	if root == nil {
		return nil
	}
	if measure.Measure(root, sty, 0) <= budget {
		return root.Clone()
	}
	return reduceNode(root, sty, budget, skew, 0)
}

// reduceNode reduces n to fit budget at the given depth, recursing into
// containers and truncating oversized strings. Null, Bool, Number, and
// Omitted nodes are atomic and returned unchanged.
func reduceNode(n *valuetree.Node, sty style.Style, budget int, skew style.Skew, depth int) *valuetree.Node {
	switch n.Kind {
	case valuetree.Array:
		return reduceArray(n, sty, budget, skew, depth)
	case valuetree.Object:
		return reduceObject(n, sty, budget, skew, depth)
	case valuetree.String:
		return reduceString(n, sty, budget, skew)
	default:
		return n.Clone()
	}
}

// reduceArray tries every keep count from len(n.Items) down to 0, largest
// first, and accepts the first that measures within budget (or keep=0 as
// the last resort). Trying largest keeps first means the first fit is also
// the largest fit, which keeps the scan deterministic in document order.
func reduceArray(n *valuetree.Node, sty style.Style, budget int, skew style.Skew, depth int) *valuetree.Node {
	total := len(n.Items)
	if total == 0 {
		return valuetree.NewArray(nil)
	}
	weights := measure.MeasureChildren(n, sty, depth)

	for keep := total; keep >= 0; keep-- {
		headKeep, tailKeep := keepSpan(total, keep, skew)
		candidate := buildArrayCandidate(n.Items, weights, headKeep, tailKeep, total, sty, budget, skew, depth)
		if keep == 0 || measure.Measure(candidate, sty, depth) <= budget {
			return candidate
		}
	}
	return valuetree.NewArray(nil) // unreachable: keep==0 always returns above
}

// arrayOmittedKind is "lines" for the text format, where each array item is
// one document line, and "items" everywhere else.
func arrayOmittedKind(sty style.Style) valuetree.OmittedKind {
	if sty.Format == style.Text {
		return valuetree.OmittedLines
	}
	return valuetree.OmittedItems
}

func buildArrayCandidate(items []*valuetree.Node, weights []int, headKeep, tailKeep, total int, sty style.Style, budget int, skew style.Skew, depth int) *valuetree.Node {
	kept := collectKeptIndices(headKeep, tailKeep, total)
	dropped := total - len(kept)
	kind := arrayOmittedKind(sty)

	overhead := measure.Overhead(valuetree.NewArray(nil), sty, depth)
	markerCost := 0
	if dropped > 0 {
		markerCost = measure.Measure(valuetree.NewOmitted(dropped, kind), sty, depth+1)
	}
	available := budget - overhead - markerCost
	keptWeights := make([]int, len(kept))
	for j, i := range kept {
		keptWeights[j] = weights[i]
	}
	shares := distributeBudget(keptWeights, available, minFloor)

	out := make([]*valuetree.Node, 0, len(kept)+1)
	markerInserted := dropped == 0
	for j, i := range kept {
		if !markerInserted && j == headKeep {
			out = append(out, valuetree.NewOmitted(dropped, kind))
			markerInserted = true
		}
		out = append(out, reduceNode(items[i], sty, shares[j], skew, depth+1))
	}
	if !markerInserted {
		out = append(out, valuetree.NewOmitted(dropped, kind))
	}
	return valuetree.NewArray(out)
}

// reduceObject mirrors reduceArray over (key, value) members; a dropped run
// collapses into a keyless Member whose Value is the Omitted marker.
func reduceObject(n *valuetree.Node, sty style.Style, budget int, skew style.Skew, depth int) *valuetree.Node {
	total := len(n.Members)
	if total == 0 {
		return valuetree.NewObject(nil)
	}
	weights := measure.MeasureChildren(n, sty, depth)

	for keep := total; keep >= 0; keep-- {
		headKeep, tailKeep := keepSpan(total, keep, skew)
		candidate := buildObjectCandidate(n.Members, weights, headKeep, tailKeep, total, sty, budget, skew, depth)
		if keep == 0 || measure.Measure(candidate, sty, depth) <= budget {
			return candidate
		}
	}
	return valuetree.NewObject(nil) // unreachable
}

func buildObjectCandidate(members []valuetree.Member, weights []int, headKeep, tailKeep, total int, sty style.Style, budget int, skew style.Skew, depth int) *valuetree.Node {
	kept := collectKeptIndices(headKeep, tailKeep, total)
	dropped := total - len(kept)

	overhead := measure.Overhead(valuetree.NewObject(nil), sty, depth)
	markerCost := 0
	if dropped > 0 {
		markerCost = measure.Measure(valuetree.NewOmitted(dropped, valuetree.OmittedProperties), sty, depth+1)
	}
	available := budget - overhead - markerCost
	keptWeights := make([]int, len(kept))
	for j, i := range kept {
		keptWeights[j] = weights[i]
	}
	shares := distributeBudget(keptWeights, available, minFloor)

	out := make([]valuetree.Member, 0, len(kept)+1)
	markerInserted := dropped == 0
	for j, i := range kept {
		if !markerInserted && j == headKeep {
			out = append(out, valuetree.Member{Value: valuetree.NewOmitted(dropped, valuetree.OmittedProperties)})
			markerInserted = true
		}
		m := members[i]
		out = append(out, valuetree.Member{
			Key:   m.Key,
			Value: reduceNode(m.Value, sty, shares[j], skew, depth+1),
		})
	}
	if !markerInserted {
		out = append(out, valuetree.Member{Value: valuetree.NewOmitted(dropped, valuetree.OmittedProperties)})
	}
	return valuetree.NewObject(out)
}

// collectKeptIndices returns the original indices kept by a head block of
// size headKeep followed by a tail block of size tailKeep, in document
// order.
func collectKeptIndices(headKeep, tailKeep, total int) []int {
	out := make([]int, 0, headKeep+tailKeep)
	for i := 0; i < headKeep; i++ {
		out = append(out, i)
	}
	for i := total - tailKeep; i < total; i++ {
		out = append(out, i)
	}
	return out
}
