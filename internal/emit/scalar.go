// Package emit renders a reduced Value Tree to a string under a chosen
// style. It renders every delimiter, quote, and marker; internal/measure
// costs a node by calling Render and counting its runes, so the two
// components cannot disagree about the cost of a rendered node.
package emit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/headsonhq/headson/internal/valuetree"
)

// quoteJSON renders s as a JSON/JS string literal: double-quoted, with only
// '"', '\\', and C0 control characters escaped. Printable non-ASCII runes
// are left as literal characters so the Unicode-scalar-value budget
// accounting in internal/measure matches 1 rune kept = 1 character spent.
func quoteJSON(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// scalarText renders n (Null, Bool, Number, or String) for json/pseudo/js
// formats. Array/Object/Omitted are not scalars and are never passed here.
func scalarText(n *valuetree.Node) string {
	switch n.Kind {
	case valuetree.Null:
		return "null"
	case valuetree.Bool:
		if n.BoolValue {
			return "true"
		}
		return "false"
	case valuetree.Number:
		return n.Lexical
	case valuetree.String:
		return quoteJSON(n.Lexical)
	default:
		return ""
	}
}

// yamlBareSafe reports whether s can be emitted as a YAML plain (unquoted)
// scalar without being misread as a different type or breaking block
// structure. This is intentionally conservative: it is always safe to quote
// instead, never the other way around.
func yamlBareSafe(s string) bool {
	if s == "" {
		return false
	}
	switch strings.ToLower(s) {
	case "true", "false", "yes", "no", "null", "~":
		return false
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return false
	}
	if strings.TrimSpace(s) != s {
		return false
	}
	for _, r := range s {
		switch r {
		case ':', '#', '\n', '\t', '"', '\'', '[', ']', '{', '}', ',', '&', '*', '!', '|', '>', '%', '@', '`':
			return false
		}
	}
	switch s[0] {
	case '-', '?', ' ':
		return false
	}
	return true
}

// yamlScalarText renders n as a YAML scalar, preferring the shorter bare
// form and falling back to a double-quoted form. The measurer costs scalars
// through this same function, so the two always agree on which form wins.
func yamlScalarText(n *valuetree.Node) string {
	switch n.Kind {
	case valuetree.Null:
		return "null"
	case valuetree.Bool:
		if n.BoolValue {
			return "true"
		}
		return "false"
	case valuetree.Number:
		return n.Lexical
	case valuetree.String:
		if yamlBareSafe(n.Lexical) {
			return n.Lexical
		}
		return quoteJSON(n.Lexical)
	default:
		return ""
	}
}

// indent returns depth copies of the two-space indentation unit used by
// every multi-line style.
func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

// formatKind renders the human word used inside a detailed marker, e.g.
// "items", "properties", "chars", "lines".
func formatKind(k valuetree.OmittedKind) string {
	return string(k)
}
