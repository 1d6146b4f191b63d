package emit

import (
	"github.com/headsonhq/headson/internal/style"
	"github.com/headsonhq/headson/internal/valuetree"
)

// Render renders a (typically already-reduced) Value Tree to a string under
// sty, starting at the given indentation depth. depth is normally 0 for a
// top-level call; internal/measure passes a non-zero depth when costing a
// child at its nesting level.
//
// internal/measure calls Render directly to cost a candidate tree, so every
// format's output here is exactly what a caller receives -- there is no
// second, cheaper rendering path to keep in sync.
func Render(n *valuetree.Node, sty style.Style, depth int) string {
	switch sty.Format {
	case style.YAML:
		return renderYAML(n, sty, depth)
	case style.Text:
		return renderText(n, sty)
	default: // JSON, Pseudo, JS
		return renderJSONFamily(n, sty, depth)
	}
}
