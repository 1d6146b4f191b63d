package emit

import (
	"strings"

	"github.com/headsonhq/headson/internal/style"
	"github.com/headsonhq/headson/internal/valuetree"
)

// yamlLines renders n as block-style YAML lines, each one already carrying
// its own leading indent (including the first line). depth is the
// indentation level n's own lines are written at -- not the level of n's
// parent. Scalars render as a single line; Array/Object render as multiple
// lines; a suppressed (strict) or empty Omitted contributes zero lines.
func yamlLines(n *valuetree.Node, sty style.Style, depth int) []string {
	switch n.Kind {
	case valuetree.Array:
		return yamlArrayLines(n, sty, depth)
	case valuetree.Object:
		return yamlObjectLines(n, sty, depth)
	case valuetree.Omitted:
		if text := markerText(n, sty); text != "" {
			return []string{indent(depth) + text}
		}
		return nil
	default:
		return []string{indent(depth) + yamlScalarText(n)}
	}
}

func yamlObjectLines(n *valuetree.Node, sty style.Style, depth int) []string {
	if len(n.Members) == 0 {
		return []string{indent(depth) + "{}"}
	}

	var lines []string
	for _, m := range n.Members {
		if m.Value.Kind == valuetree.Omitted {
			if text := markerText(m.Value, sty); text != "" {
				lines = append(lines, indent(depth)+text)
			}
			continue
		}
		if isYAMLScalar(m.Value) {
			lines = append(lines, indent(depth)+m.Key+": "+yamlScalarText(m.Value))
			continue
		}
		lines = append(lines, indent(depth)+m.Key+":")
		lines = append(lines, yamlLines(m.Value, sty, depth+1)...)
	}
	if len(lines) == 0 {
		// Every member was an omission marker suppressed by strict style.
		return []string{indent(depth) + "{}"}
	}
	return lines
}

func yamlArrayLines(n *valuetree.Node, sty style.Style, depth int) []string {
	if len(n.Items) == 0 {
		return []string{indent(depth) + "[]"}
	}

	var lines []string
	for _, item := range n.Items {
		if item.Kind == valuetree.Omitted {
			if text := markerText(item, sty); text != "" {
				lines = append(lines, indent(depth)+text)
			}
			continue
		}
		if isYAMLScalar(item) {
			lines = append(lines, indent(depth)+"- "+yamlScalarText(item))
			continue
		}
		sub := yamlLines(item, sty, depth+1)
		if len(sub) == 0 {
			continue
		}
		first := indent(depth) + "- " + strings.TrimPrefix(sub[0], indent(depth+1))
		lines = append(lines, first)
		lines = append(lines, sub[1:]...)
	}
	if len(lines) == 0 {
		return []string{indent(depth) + "[]"}
	}
	return lines
}

func isYAMLScalar(n *valuetree.Node) bool {
	switch n.Kind {
	case valuetree.Null, valuetree.Bool, valuetree.Number, valuetree.String:
		return true
	default:
		return false
	}
}

// renderYAML is the top-level YAML entry point. A scalar document is a bare
// value with no surrounding block structure; everything else renders as
// block-style lines joined with newlines.
func renderYAML(n *valuetree.Node, sty style.Style, depth int) string {
	if isYAMLScalar(n) {
		return indent(depth) + yamlScalarText(n)
	}
	return strings.Join(yamlLines(n, sty, depth), "\n")
}
