package headson

import (
	"strings"

	"github.com/headsonhq/headson/internal/valuetree"
)

// parseText parses text as a flat line sequence: an Array of String nodes,
// one per line. The array reduction rule then applies to lines the same way
// it applies to items, with "lines" markers.
func parseText(text string) *valuetree.Node {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" && strings.HasSuffix(text, "\n") {
		lines = lines[:len(lines)-1]
	}
	items := make([]*valuetree.Node, len(lines))
	for i, l := range lines {
		items[i] = valuetree.NewString(l)
	}
	return valuetree.NewArray(items)
}
