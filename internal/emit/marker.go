package emit

import (
	"fmt"

	"github.com/headsonhq/headson/internal/style"
	"github.com/headsonhq/headson/internal/valuetree"
)

// ellipsisPhrase renders the bare-or-detailed ellipsis phrase used by
// pseudo, yaml, and text markers: "…" by default, "… (N more kind)" when
// detailed.
func ellipsisPhrase(n *valuetree.Node, detailed bool) string {
	if !detailed {
		return style.Ellipsis
	}
	return fmt.Sprintf("%s (%d more %s)", style.Ellipsis, n.OmittedCount, formatKind(n.OmittedK))
}

// jsComment renders the fixed js marker shape. The js comment always
// carries its count, independent of Variant (Detailed vs Default draw no
// distinction for this format).
func jsComment(n *valuetree.Node) string {
	return fmt.Sprintf("/* %d more %s */", n.OmittedCount, formatKind(n.OmittedK))
}

// markerText renders the visible form of an Omitted node n under sty, or
// "" if sty suppresses markers (Strict) or the format has no marker concept
// of its own at this position. Callers decide what an empty string means
// for their format (json: drop the node entirely; yaml: no comment line).
func markerText(n *valuetree.Node, sty style.Style) string {
	if !sty.ShowsMarkers() {
		return ""
	}
	switch sty.Format {
	case style.Pseudo:
		return ellipsisPhrase(n, sty.Detailed())
	case style.JS:
		return jsComment(n)
	case style.YAML:
		return "# " + ellipsisPhrase(n, sty.Detailed())
	case style.Text:
		return ellipsisPhrase(n, sty.Detailed())
	default:
		return ""
	}
}
