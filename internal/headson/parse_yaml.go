package headson

import (
	"fmt"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/headsonhq/headson/internal/headsonerr"
	"github.com/headsonhq/headson/internal/valuetree"
)

// parseYAML parses text as a single YAML document into a Value Tree,
// preserving mapping key order and numeric lexical form via go-yaml's AST
// (ast.MappingNode.Values is already insertion-ordered, unlike a plain
// map[string]interface{} decode).
func parseYAML(text string) (*valuetree.Node, error) {
	file, err := parser.ParseBytes([]byte(text), 0)
	if err != nil {
		return nil, headsonerr.Parse("invalid yaml input", 0, 0, err)
	}
	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		return valuetree.NewNull(), nil
	}
	return convertYAMLNode(file.Docs[0].Body)
}

func convertYAMLNode(n ast.Node) (*valuetree.Node, error) {
	switch v := n.(type) {
	case *ast.MappingNode:
		members := make([]valuetree.Member, 0, len(v.Values))
		for _, mvn := range v.Values {
			m, err := yamlMappingMember(mvn)
			if err != nil {
				return nil, err
			}
			members = append(members, m)
		}
		return valuetree.NewObject(members), nil
	case *ast.MappingValueNode:
		m, err := yamlMappingMember(v)
		if err != nil {
			return nil, err
		}
		return valuetree.NewObject([]valuetree.Member{m}), nil
	case *ast.SequenceNode:
		items := make([]*valuetree.Node, 0, len(v.Values))
		for _, c := range v.Values {
			item, err := convertYAMLNode(c)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return valuetree.NewArray(items), nil
	case *ast.StringNode:
		return valuetree.NewString(v.Value), nil
	case *ast.LiteralNode:
		if v.Value != nil {
			return valuetree.NewString(v.Value.Value), nil
		}
		return valuetree.NewString(""), nil
	case *ast.IntegerNode:
		return valuetree.NewNumber(yamlLexical(n, fmt.Sprint(v.Value))), nil
	case *ast.FloatNode:
		return valuetree.NewNumber(yamlLexical(n, fmt.Sprint(v.Value))), nil
	case *ast.BoolNode:
		return valuetree.NewBool(v.Value), nil
	case *ast.NullNode:
		return valuetree.NewNull(), nil
	case nil:
		return valuetree.NewNull(), nil
	default:
		// Anchors, aliases, tags, and any other node shape we don't special
		// case: fall back to its literal source text as a string scalar
		// rather than failing the whole parse.
		return valuetree.NewString(n.String()), nil
	}
}

// yamlMappingMember converts a single key/value pair, keying on the
// scalar text of the key node (YAML mapping keys are not always plain
// strings, but every key this summarizer is expected to see is).
func yamlMappingMember(mvn *ast.MappingValueNode) (valuetree.Member, error) {
	key := yamlKeyString(mvn.Key)
	val, err := convertYAMLNode(mvn.Value)
	if err != nil {
		return valuetree.Member{}, err
	}
	return valuetree.Member{Key: key, Value: val}, nil
}

func yamlKeyString(n ast.Node) string {
	if s, ok := n.(*ast.StringNode); ok {
		return s.Value
	}
	if n == nil {
		return ""
	}
	return n.String()
}

// yamlLexical prefers the token's original source text (so "1.0" and "1"
// stay distinct) and falls back to a value formatted from the parsed Go
// value when no token is attached.
func yamlLexical(n ast.Node, fallback string) string {
	if tok := n.GetToken(); tok != nil && tok.Value != "" {
		return tok.Value
	}
	return fallback
}
