package emit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headsonhq/headson/internal/style"
	"github.com/headsonhq/headson/internal/valuetree"
)

func strictStyle(f style.Format) style.Style { return style.Style{Format: f, Variant: style.Strict} }
func defaultStyle(f style.Format) style.Style { return style.Style{Format: f, Variant: style.Default} }
func detailedStyle(f style.Format) style.Style {
	return style.Style{Format: f, Variant: style.Detailed}
}

// ----------------------------------------------------------------------------
// json family
// ----------------------------------------------------------------------------

func TestRenderJSONScalar(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"hello"`, Render(valuetree.NewString("hello"), strictStyle(style.JSON), 0))
	assert.Equal(t, "42", Render(valuetree.NewNumber("42"), strictStyle(style.JSON), 0))
	assert.Equal(t, "true", Render(valuetree.NewBool(true), strictStyle(style.JSON), 0))
	assert.Equal(t, "null", Render(valuetree.NewNull(), strictStyle(style.JSON), 0))
}

func TestRenderJSONEmptyContainers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[]", Render(valuetree.NewArray(nil), strictStyle(style.JSON), 0))
	assert.Equal(t, "{}", Render(valuetree.NewObject(nil), strictStyle(style.JSON), 0))
}

func TestRenderJSONDropsOmittedNode(t *testing.T) {
	t.Parallel()

	arr := valuetree.NewArray([]*valuetree.Node{
		valuetree.NewNumber("1"),
		valuetree.NewOmitted(3, valuetree.OmittedItems),
		valuetree.NewNumber("2"),
	})
	out := Render(arr, strictStyle(style.JSON), 0)

	assert.NotContains(t, out, "…")
	var decoded []int
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, []int{1, 2}, decoded)
}

func TestRenderJSONValidParse(t *testing.T) {
	t.Parallel()

	obj := valuetree.NewObject([]valuetree.Member{
		{Key: "a", Value: valuetree.NewNumber("1")},
		{Key: "b", Value: valuetree.NewObject([]valuetree.Member{
			{Key: "c", Value: valuetree.NewNumber("2")},
		})},
	})
	out := Render(obj, strictStyle(style.JSON), 0)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, float64(1), decoded["a"])
}

func TestRenderPseudoOmittedMarker(t *testing.T) {
	t.Parallel()

	arr := valuetree.NewArray([]*valuetree.Node{
		valuetree.NewOmitted(5, valuetree.OmittedItems),
	})
	out := Render(arr, defaultStyle(style.Pseudo), 0)
	assert.Contains(t, out, "…")
	assert.NotContains(t, out, "5")
}

func TestRenderPseudoDetailedOmittedMarker(t *testing.T) {
	t.Parallel()

	arr := valuetree.NewArray([]*valuetree.Node{
		valuetree.NewOmitted(5, valuetree.OmittedItems),
	})
	out := Render(arr, detailedStyle(style.Pseudo), 0)
	assert.Contains(t, out, "…")
	assert.Contains(t, out, "5 more items")
}

func TestRenderJSOmittedIsBlockComment(t *testing.T) {
	t.Parallel()

	arr := valuetree.NewArray([]*valuetree.Node{
		valuetree.NewNumber("1"),
		valuetree.NewOmitted(7, valuetree.OmittedItems),
	})
	out := Render(arr, defaultStyle(style.JS), 0)
	assert.Contains(t, out, "/*")
	assert.Contains(t, out, "7 more items")
	assert.Contains(t, out, "*/")
	// The comment entry never gets a trailing comma.
	assert.NotContains(t, out, "*/,")
}

func TestRenderJSONFamilyNoCommaAfterLastEntry(t *testing.T) {
	t.Parallel()

	arr := valuetree.NewArray([]*valuetree.Node{valuetree.NewNumber("1"), valuetree.NewNumber("2")})
	out := Render(arr, defaultStyle(style.JSON), 0)
	assert.NotContains(t, out, "2,")
}

// ----------------------------------------------------------------------------
// yaml
// ----------------------------------------------------------------------------

func TestRenderYAMLStrictHasNoComments(t *testing.T) {
	t.Parallel()

	obj := valuetree.NewObject([]valuetree.Member{
		{Key: "items", Value: valuetree.NewArray([]*valuetree.Node{
			valuetree.NewNumber("1"),
			valuetree.NewOmitted(9, valuetree.OmittedItems),
		})},
	})
	out := Render(obj, strictStyle(style.YAML), 0)
	assert.NotContains(t, out, "#")
}

func TestRenderYAMLDefaultHasCommentMarker(t *testing.T) {
	t.Parallel()

	obj := valuetree.NewObject([]valuetree.Member{
		{Key: "items", Value: valuetree.NewArray([]*valuetree.Node{
			valuetree.NewOmitted(9, valuetree.OmittedItems),
		})},
	})
	out := Render(obj, defaultStyle(style.YAML), 0)
	assert.Contains(t, out, "#")
	assert.Contains(t, out, "…")
}

func TestRenderYAMLBareVsQuotedScalar(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", Render(valuetree.NewString("hello"), strictStyle(style.YAML), 0))
	// "true" as a string must be quoted or it would parse back as a bool.
	assert.Equal(t, `"true"`, Render(valuetree.NewString("true"), strictStyle(style.YAML), 0))
}

func TestRenderYAMLEmptyContainers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[]", Render(valuetree.NewArray(nil), strictStyle(style.YAML), 0))
	assert.Equal(t, "{}", Render(valuetree.NewObject(nil), strictStyle(style.YAML), 0))
}

// ----------------------------------------------------------------------------
// text
// ----------------------------------------------------------------------------

func TestRenderTextLines(t *testing.T) {
	t.Parallel()

	arr := valuetree.NewArray([]*valuetree.Node{
		valuetree.NewString("line0"),
		valuetree.NewString("line1"),
	})
	out := Render(arr, defaultStyle(style.Text), 0)
	assert.Equal(t, "line0\nline1\n", out)
}

func TestRenderTextEveryLineNewlineTerminated(t *testing.T) {
	t.Parallel()

	// The last line is newline-terminated too, including when it is the
	// omission marker (head skew leaves the marker at the end).
	arr := valuetree.NewArray([]*valuetree.Node{
		valuetree.NewString("line0"),
		valuetree.NewOmitted(10, valuetree.OmittedLines),
	})
	out := Render(arr, defaultStyle(style.Text), 0)
	assert.Equal(t, "line0\n…\n", out)

	scalar := Render(valuetree.NewString("only"), defaultStyle(style.Text), 0)
	assert.Equal(t, "only\n", scalar)
}

func TestRenderTextOmittedLine(t *testing.T) {
	t.Parallel()

	arr := valuetree.NewArray([]*valuetree.Node{
		valuetree.NewString("line0"),
		valuetree.NewOmitted(10, valuetree.OmittedLines),
		valuetree.NewString("line19"),
	})
	out := Render(arr, defaultStyle(style.Text), 0)
	assert.Contains(t, out, "…\n")

	strictOut := Render(arr, strictStyle(style.Text), 0)
	assert.NotContains(t, strictOut, "…")
	assert.NotContains(t, strictOut, "more lines")
}
