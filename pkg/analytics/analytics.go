// Package analytics computes stopword-filtered term frequencies over stored
// question texts, for the `terms` report.
package analytics

import (
	"sort"
	"strings"
)

type Analytics struct{}

// commonWords are ignored during frequency analysis: function words plus the
// boilerplate vocabulary of exam questions themselves.
var commonWords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "all": {},
	"also": {}, "am": {}, "an": {}, "and": {}, "any": {}, "are": {},
	"as": {}, "at": {}, "be": {}, "because": {}, "been": {}, "before": {},
	"being": {}, "below": {}, "between": {}, "both": {}, "but": {}, "by": {},
	"can": {}, "cannot": {}, "could": {}, "did": {}, "do": {}, "does": {},
	"doing": {}, "down": {}, "during": {}, "each": {}, "few": {}, "for": {},
	"from": {}, "further": {}, "had": {}, "has": {}, "have": {}, "having": {},
	"he": {}, "her": {}, "here": {}, "hers": {}, "him": {}, "his": {},
	"how": {}, "i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {},
	"its": {}, "just": {}, "me": {}, "more": {}, "most": {}, "my": {},
	"no": {}, "nor": {}, "not": {}, "of": {}, "off": {}, "on": {},
	"once": {}, "one": {}, "only": {}, "or": {}, "other": {}, "our": {},
	"out": {}, "over": {}, "own": {}, "same": {}, "she": {}, "should": {},
	"so": {}, "some": {}, "such": {}, "than": {}, "that": {}, "the": {},
	"their": {}, "them": {}, "then": {}, "there": {}, "these": {},
	"they": {}, "this": {}, "those": {}, "through": {}, "to": {}, "too": {},
	"under": {}, "until": {}, "up": {}, "very": {}, "was": {}, "we": {},
	"were": {}, "what": {}, "when": {}, "where": {}, "which": {},
	"while": {}, "who": {}, "whom": {}, "why": {}, "will": {}, "with": {},
	"would": {}, "you": {}, "your": {},

	// Exam boilerplate
	"following": {}, "correct": {}, "option": {}, "options": {},
	"choose": {}, "answer": {}, "questions": {},
}

// IsStopword checks if a word is filtered out of frequency analysis.
func IsStopword(word string) bool {
	_, exists := commonWords[strings.ToLower(word)]
	return exists
}

// WordFrequency counts the non-stopword terms of one question text.
func (a *Analytics) WordFrequency(text string) map[string]int {
	words := strings.Fields(strings.ToLower(text))
	frequencies := make(map[string]int)

	for _, word := range words {
		// Strip punctuation; keep only lowercase letters and digits.
		word = strings.TrimFunc(word, func(r rune) bool {
			return ('a' > r || r > 'z') && ('0' > r || r > '9')
		})

		if _, exists := commonWords[word]; exists || word == "" {
			continue
		}

		frequencies[word]++
	}

	return frequencies
}

// Merge aggregates per-question frequency maps into one.
func Merge(intermediate []map[string]int) map[string]int {
	merged := make(map[string]int)
	for _, counts := range intermediate {
		for word, count := range counts {
			merged[word] += count
		}
	}
	return merged
}

// TermCount is one entry in a frequency ranking.
type TermCount struct {
	Term  string
	Count int
}

// TopTerms returns the n most frequent terms, largest first.
func TopTerms(frequencies map[string]int, n int) []TermCount {
	terms := make([]TermCount, 0, len(frequencies))
	for term, count := range frequencies {
		terms = append(terms, TermCount{term, count})
	}

	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return terms[i].Term < terms[j].Term
	})

	if len(terms) > n {
		terms = terms[:n]
	}
	return terms
}
