// Package models defines the shared value types for question extraction.
package models

// Letters are the option slots every complete question must fill.
var Letters = []byte{'A', 'B', 'C', 'D'}

// Subject identifies one question bank and its destination table.
type Subject string

const (
	SubjectEnglish          Subject = "english"
	SubjectMathematics      Subject = "mathematics"
	SubjectGeneralKnowledge Subject = "general_knowledge"
)

// Subjects lists the known subjects in display order.
var Subjects = []Subject{SubjectEnglish, SubjectMathematics, SubjectGeneralKnowledge}

// Valid reports whether s names a known subject.
func (s Subject) Valid() bool {
	switch s {
	case SubjectEnglish, SubjectMathematics, SubjectGeneralKnowledge:
		return true
	}
	return false
}

// Display returns the human-readable subject name for reports.
func (s Subject) Display() string {
	switch s {
	case SubjectEnglish:
		return "English"
	case SubjectMathematics:
		return "Mathematics"
	case SubjectGeneralKnowledge:
		return "General Knowledge"
	}
	return string(s)
}

// Question is a finalized, validated question record. Options are keyed by
// letter; an empty string is only present when the profile's backfill policy
// filled a gap.
type Question struct {
	Number        string            `json:"question_number"`
	Text          string            `json:"question_text"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correct_answer"`
	Type          string            `json:"question_type"`
	Page          int               `json:"page"`
}

// Option returns the text for a letter, or "" when absent.
func (q Question) Option(letter byte) string {
	return q.Options[string(letter)]
}

// Diagnostic records why a question candidate was dropped, or that a
// recovery policy was applied to keep it. The assembler returns these to the
// caller instead of logging them itself.
type Diagnostic struct {
	Number   string   `json:"question_number"`
	Page     int      `json:"page"`
	Dropped  bool     `json:"dropped"`
	Problems []string `json:"problems"`
}
