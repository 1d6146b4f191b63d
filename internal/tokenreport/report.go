package tokenreport

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Entry holds the measured sizes for a single summarized document.
type Entry struct {
	// Path names the document ("-" for stdin).
	Path string

	// InputChars and OutputChars are Unicode scalar counts, the same unit
	// the reducer budgets in.
	InputChars  int
	OutputChars int

	// InputTokens and OutputTokens are diagnostic BPE token counts.
	InputTokens  int
	OutputTokens int
}

// Report summarizes what a summarize (or batch) run did: how many characters
// went in and came out, how that compares to the requested budget, and what
// the result costs in model tokens.
type Report struct {
	// TokenizerName is the encoding used (e.g. "cl100k_base").
	TokenizerName string

	// Budget is the configured character budget (0 means none).
	Budget int

	// Entries holds per-document rows, in input order.
	Entries []Entry
}

// NewReport returns an empty Report for the given tokenizer and budget;
// rows are added with Add. tok may be nil, in which case the report names
// no tokenizer.
func NewReport(tok Tokenizer, budget int) *Report {
	r := &Report{Budget: budget}
	if tok != nil {
		r.TokenizerName = tok.Name()
	}
	return r
}

// Add appends one document's row, counting characters here and tokens via
// tok (nil-safe).
func (r *Report) Add(tok Tokenizer, path, input, output string) {
	e := Entry{
		Path:        path,
		InputChars:  utf8.RuneCountInString(input),
		OutputChars: utf8.RuneCountInString(output),
	}
	if tok != nil {
		e.InputTokens = tok.Count(input)
		e.OutputTokens = tok.Count(output)
	}
	r.Entries = append(r.Entries, e)
}

// TotalOutputChars sums the output character counts across all entries.
func (r *Report) TotalOutputChars() int {
	total := 0
	for _, e := range r.Entries {
		total += e.OutputChars
	}
	return total
}

// Format renders the report as a plain-text string suitable for printing
// to stderr. Uses unicode box-drawing chars for the separator line.
func (r *Report) Format() string {
	var sb strings.Builder

	name := r.TokenizerName
	if name == "" {
		name = "no tokenizer"
	}
	title := fmt.Sprintf("Summary Report (%s)", name)
	separator := strings.Repeat("─", len(title)+2)

	sb.WriteString(title + "\n")
	sb.WriteString(separator + "\n")
	fmt.Fprintf(&sb, "Documents:    %s\n", FormatInt(len(r.Entries)))

	totalOut := r.TotalOutputChars()
	fmt.Fprintf(&sb, "Output chars: %s\n", FormatInt(totalOut))

	if r.Budget > 0 {
		pct := int(float64(totalOut) / float64(r.Budget) * 100)
		fmt.Fprintf(&sb, "Budget:       %s (%d%% used)\n", FormatInt(r.Budget), pct)
	} else {
		sb.WriteString("Budget:       unlimited\n")
	}

	if len(r.Entries) > 0 {
		sb.WriteString("\nBy Document:\n")
		for _, e := range r.Entries {
			fmt.Fprintf(&sb, "  %s: %s -> %s chars", e.Path,
				FormatInt(e.InputChars), FormatInt(e.OutputChars))
			if r.TokenizerName != "" {
				fmt.Fprintf(&sb, "  (%s -> %s tokens)",
					FormatInt(e.InputTokens), FormatInt(e.OutputTokens))
			}
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// FormatInt renders n with comma thousands separators, e.g. 1234567 ->
// "1,234,567".
func FormatInt(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
