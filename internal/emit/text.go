package emit

import (
	"strings"

	"github.com/headsonhq/headson/internal/style"
	"github.com/headsonhq/headson/internal/valuetree"
)

// renderText renders n for the text format: a flat sequence of lines with no
// quoting, every line -- the last included -- terminated by a newline. A
// text document's top-level shape is always an Array of String lines
// (internal/headson's text parser never produces anything else); Omitted
// contributes a single bare-or-detailed ellipsis line in place of the
// dropped run, and strict suppresses it entirely (the line run simply
// shortens with no marker left behind).
func renderText(n *valuetree.Node, sty style.Style) string {
	if n.Kind != valuetree.Array {
		return textScalarLine(n) + "\n"
	}

	var b strings.Builder
	for _, item := range n.Items {
		if item.Kind == valuetree.Omitted {
			if text := markerText(item, sty); text != "" {
				b.WriteString(text)
				b.WriteByte('\n')
			}
			continue
		}
		b.WriteString(textScalarLine(item))
		b.WriteByte('\n')
	}
	return b.String()
}

// textScalarLine renders a single line's value with no surrounding quotes:
// a String node's Lexical verbatim, or the bare token for other scalar kinds
// (defensive -- a well-formed text document only ever holds String lines).
func textScalarLine(n *valuetree.Node) string {
	if n.Kind == valuetree.String {
		return n.Lexical
	}
	return scalarText(n)
}
