// Package topic assigns coarse question-type tags via ordered keyword
// matching. The rule tables are configuration (models.SubjectProfile), not
// hard-coded here.
package topic

import (
	"strings"

	"github.com/edtechlabs/qbank/models"
)

// Classify returns the tag of the first rule with any keyword appearing in
// text (case-insensitive substring match), or fallback when no rule matches.
// Rule order matters: a text matching several rules gets the earliest tag.
func Classify(rules []models.TypeRule, fallback, text string) string {
	lower := strings.ToLower(text)
	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				return rule.Tag
			}
		}
	}
	return fallback
}
