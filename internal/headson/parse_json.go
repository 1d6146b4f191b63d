package headson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/headsonhq/headson/internal/headsonerr"
	"github.com/headsonhq/headson/internal/valuetree"
)

// parseJSON parses text into a Value Tree using encoding/json's streaming
// Decoder.Token() API rather than Unmarshal into map[string]interface{}:
// Unmarshal's map target loses key order, which this summarizer needs to
// preserve: object key order in output must equal input order, less removed
// pairs. Decoder.UseNumber keeps
// each number's original lexical text instead of round-tripping through
// float64.
func parseJSON(text string) (*valuetree.Node, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	root, err := decodeJSONValue(dec)
	if err != nil {
		return nil, wrapJSONError(text, err)
	}
	if err := expectEOF(dec, text); err != nil {
		return nil, err
	}
	return root, nil
}

// expectEOF rejects input that continues past the top-level value, such as
// `{"a": 1}garbage` or two stacked documents. Silently dropping the
// remainder would be bad enough on its own; on the detect path it is worse,
// because a non-JSON document with a JSON-scalar prefix would be accepted as
// JSON instead of falling through to the YAML parser.
func expectEOF(dec *json.Decoder, text string) error {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return wrapJSONError(text, err)
	}
	line, col := lineColAtOffset(text, dec.InputOffset())
	return headsonerr.Parse(
		fmt.Sprintf("unexpected content after top-level value: %v", tok),
		line, col, nil)
}

func decodeJSONValue(dec *json.Decoder) (*valuetree.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeJSONToken(dec, tok)
}

func decodeJSONToken(dec *json.Decoder, tok json.Token) (*valuetree.Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		default:
			return nil, fmt.Errorf("unexpected json delimiter %q", t)
		}
	case nil:
		return valuetree.NewNull(), nil
	case bool:
		return valuetree.NewBool(t), nil
	case json.Number:
		return valuetree.NewNumber(string(t)), nil
	case string:
		return valuetree.NewString(t), nil
	default:
		return nil, fmt.Errorf("unexpected json token %v", tok)
	}
}

func decodeJSONObject(dec *json.Decoder) (*valuetree.Node, error) {
	var members []valuetree.Member
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}
		val, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		members = append(members, valuetree.Member{Key: key, Value: val})
	}
	if _, err := dec.Token(); err != nil { // consume closing '}'
		return nil, err
	}
	return valuetree.NewObject(members), nil
}

func decodeJSONArray(dec *json.Decoder) (*valuetree.Node, error) {
	var items []*valuetree.Node
	for dec.More() {
		item, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if _, err := dec.Token(); err != nil { // consume closing ']'
		return nil, err
	}
	return valuetree.NewArray(items), nil
}

// wrapJSONError attaches a line/column position to a *headsonerr.Error when
// the underlying failure is a *json.SyntaxError, which only reports a byte
// offset.
func wrapJSONError(text string, err error) error {
	line, col := 0, 0
	if se, ok := err.(*json.SyntaxError); ok {
		line, col = lineColAtOffset(text, se.Offset)
	}
	return headsonerr.Parse("invalid json input", line, col, err)
}

func lineColAtOffset(text string, offset int64) (line, col int) {
	line = 1
	col = 1
	for i, r := range text {
		if int64(i) >= offset {
			break
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
