package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/edtechlabs/qbank/models"
)

// ValidationError reports every completeness failure of a question candidate
// at once, so the discard diagnostic names all missing pieces.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

// validate freezes an in-progress question into an immutable record. A record
// is complete when all four letters A-D are present as option keys, a correct
// answer is set and refers to a present letter, and the question text is
// non-empty.
func validate(q *inProgress) (models.Question, *ValidationError) {
	var problems []string

	var missing []string
	for _, letter := range models.Letters {
		if _, ok := q.options[letter]; !ok {
			missing = append(missing, string(letter))
		}
	}
	if len(missing) > 0 {
		present := make([]string, 0, len(q.options))
		for letter := range q.options {
			present = append(present, string(letter))
		}
		sort.Strings(present)
		problems = append(problems, fmt.Sprintf("missing options %s (have %s)",
			strings.Join(missing, ","), strings.Join(present, ",")))
	}

	switch {
	case q.correct == 0:
		problems = append(problems, "no correct answer marked")
	default:
		if _, ok := q.options[q.correct]; !ok {
			problems = append(problems, fmt.Sprintf("correct answer %c has no matching option", q.correct))
		}
	}

	if strings.TrimSpace(q.text) == "" {
		problems = append(problems, "empty question text")
	}

	if len(problems) > 0 {
		return models.Question{}, &ValidationError{Problems: problems}
	}

	options := make(map[string]string, len(q.options))
	for letter, text := range q.options {
		options[string(letter)] = text
	}

	return models.Question{
		Number:        q.number,
		Text:          q.text,
		Options:       options,
		CorrectAnswer: string(q.correct),
		Page:          q.page,
	}, nil
}
