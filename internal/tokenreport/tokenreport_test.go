package tokenreport

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenizer(t *testing.T) {
	t.Parallel()

	t.Run("none is the estimator", func(t *testing.T) {
		t.Parallel()

		tok, err := NewTokenizer(NameNone)
		require.NoError(t, err)
		assert.Equal(t, NameNone, tok.Name())
		assert.Equal(t, 0, tok.Count(""))
		assert.Equal(t, 3, tok.Count("hello world!!"))
	})

	t.Run("unknown name errors", func(t *testing.T) {
		t.Parallel()

		_, err := NewTokenizer("gpt2")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownTokenizer)
	})
}

func TestReportFormat(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenizer(NameNone)
	require.NoError(t, err)

	r := NewReport(tok, 100)
	r.Add(tok, "a.json", `{"key": "value pair"}`, `{}`)
	r.Add(tok, "b.json", `[1, 2, 3]`, `[1]`)

	out := r.Format()
	assert.Contains(t, out, "Summary Report (none)")
	assert.Contains(t, out, "Documents:    2")
	assert.Contains(t, out, "Budget:       100")
	assert.Contains(t, out, "a.json: 21 -> 2 chars")
	assert.Contains(t, out, "tokens")
	assert.Equal(t, 5, r.TotalOutputChars())
}

func TestReportUnlimitedBudget(t *testing.T) {
	t.Parallel()

	r := NewReport(nil, 0)
	r.Add(nil, "-", "input", "output")

	out := r.Format()
	assert.Contains(t, out, "Budget:       unlimited")
	assert.NotContains(t, out, "tokens")
}

func TestFormatInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatInt(tt.in))
	}
}

func TestCountTexts(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenizer(NameNone)
	require.NoError(t, err)

	texts := []string{"aaaa", "bbbbbbbb", ""}
	counts, total, err := CountTexts(context.Background(), tok, texts)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, counts)
	assert.Equal(t, 3, total)
}

func TestCountTextsCancelled(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenizer(NameNone)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = CountTexts(ctx, tok, []string{"a", "b"})
	assert.Error(t, err)
}
