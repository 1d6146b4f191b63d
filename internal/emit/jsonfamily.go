package emit

import (
	"strings"

	"github.com/headsonhq/headson/internal/style"
	"github.com/headsonhq/headson/internal/valuetree"
)

// entry is one rendered array-item or object-member line. comment entries
// (the js Omitted marker) never receive a trailing comma and are skipped
// when deciding which entry is "last" for comma purposes, matching real
// JavaScript comment semantics.
type entry struct {
	text    string
	comment bool
}

// joinEntries lays entries out one per line at depth+1, wrapped in open/
// close at depth, comma-separating every entry except trailing comments.
// An empty entries list always collapses to the empty-container literal;
// an empty container is never replaced by an omission marker.
func joinEntries(entries []entry, open, close string, depth int) string {
	if len(entries) == 0 {
		return open + close
	}

	lastValue := -1
	for i, e := range entries {
		if !e.comment {
			lastValue = i
		}
	}

	childInd := indent(depth + 1)
	closeInd := indent(depth)

	var b strings.Builder
	b.WriteString(open)
	b.WriteByte('\n')
	for i, e := range entries {
		b.WriteString(childInd)
		b.WriteString(e.text)
		if !e.comment && i != lastValue {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString(closeInd)
	b.WriteString(close)
	return b.String()
}

// omittedEntry converts an Omitted node into its entry for json-family
// rendering, or (false) if the node contributes nothing at this Style
// (json format always drops it; strict variants drop it everywhere).
func omittedEntry(n *valuetree.Node, sty style.Style) (entry, bool) {
	if sty.Format == style.JSON {
		return entry{}, false
	}
	text := markerText(n, sty)
	if text == "" {
		return entry{}, false
	}
	return entry{text: text, comment: sty.Format == style.JS}, true
}

// renderArrayJSONFamily renders an Array node for json/pseudo/js formats.
func renderArrayJSONFamily(n *valuetree.Node, sty style.Style, depth int) string {
	entries := make([]entry, 0, len(n.Items))
	for _, child := range n.Items {
		if child.Kind == valuetree.Omitted {
			if e, ok := omittedEntry(child, sty); ok {
				entries = append(entries, e)
			}
			continue
		}
		entries = append(entries, entry{text: renderJSONFamily(child, sty, depth+1)})
	}
	return joinEntries(entries, "[", "]", depth)
}

// renderObjectJSONFamily renders an Object node for json/pseudo/js formats.
func renderObjectJSONFamily(n *valuetree.Node, sty style.Style, depth int) string {
	entries := make([]entry, 0, len(n.Members))
	for _, m := range n.Members {
		if m.Value.Kind == valuetree.Omitted {
			if e, ok := omittedEntry(m.Value, sty); ok {
				entries = append(entries, e)
			}
			continue
		}
		text := quoteJSON(m.Key) + ": " + renderJSONFamily(m.Value, sty, depth+1)
		entries = append(entries, entry{text: text})
	}
	return joinEntries(entries, "{", "}", depth)
}

// renderJSONFamily dispatches a single node to its json/pseudo/js rendering
// at the given depth. It is the recursive entry point used by both the
// array and object renderers above and by the top-level Render dispatcher.
func renderJSONFamily(n *valuetree.Node, sty style.Style, depth int) string {
	switch n.Kind {
	case valuetree.Array:
		return renderArrayJSONFamily(n, sty, depth)
	case valuetree.Object:
		return renderObjectJSONFamily(n, sty, depth)
	case valuetree.Omitted:
		// A bare top-level Omitted (the whole document reduced to a single
		// marker) -- only reachable from Render's top-level case.
		if text := markerText(n, sty); text != "" {
			return text
		}
		return ""
	default:
		return scalarText(n)
	}
}
