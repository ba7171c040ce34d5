package parser

import "strings"

// Normalize strips decorative markup from OCR-derived text: backtick fences,
// runs of whitespace (including newlines), and enclosing emphasis asterisks.
// Total over all strings and idempotent.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "```", "")

	// Collapse all whitespace runs to single spaces and trim the edges.
	text = strings.Join(strings.Fields(text), " ")

	// Strip enclosing emphasis pairs until stable so doubled emphasis like
	// **word** collapses in one call. Trim again in case the emphasis
	// wrapped padded text ("* word *").
	for strings.HasPrefix(text, "*") && strings.HasSuffix(text, "*") && len(text) > 2 {
		text = strings.TrimSpace(text[1 : len(text)-1])
	}

	return text
}
