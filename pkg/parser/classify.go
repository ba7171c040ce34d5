package parser

import (
	"regexp"
	"strings"
)

// TagKind enumerates the classifications a stripped input line can receive.
type TagKind int

const (
	// TagNone marks a line carrying no information (blank lines, banner
	// text, stray markers with nothing to attach to).
	TagNone TagKind = iota
	TagQuestionStart
	TagOption
	TagBulletOption
	TagCorrectMarker
	TagContinuation
)

// Tag is the classification of one line. Which fields are meaningful depends
// on Kind: Number and Text for TagQuestionStart, Letter/Text/Correct for
// TagOption, Text/Correct for TagBulletOption, Text for TagContinuation.
type Tag struct {
	Kind    TagKind
	Number  string
	Text    string
	Letter  byte
	Correct bool
}

// Context is the minimal assembler state the classifier needs: whether a
// question is currently open and how many distinct options it has recorded.
type Context struct {
	QuestionOpen bool
	OptionCount  int
}

// Line patterns, tried in order. The question pattern covers the emphasis
// variants seen in OCR output ("*12.*", "By*12.*", "Question 12:") plus the
// plain "12." form used by the general knowledge bank.
var (
	questionPattern = regexp.MustCompile(`^(\*?\d+\.\*|By\*\d+\.\*|Question\s+\d+:|\d+\.)\s*(.*)$`)
	optionPattern   = regexp.MustCompile(`^[\*\-\s]*([A-Z])\)\s*(.*?)\s*(✔️|✔|✅)?$`)
	bulletPattern   = regexp.MustCompile(`^[\*●]\s*(.*?)\s*(✔️|✔|✅)?$`)
	letterPrefix    = regexp.MustCompile(`^[A-Z]\)`)
	digitsPattern   = regexp.MustCompile(`\d+`)
)

// checkmarkOnly reports whether the line is a bare correctness glyph.
func checkmarkOnly(line string) bool {
	switch line {
	case "✔", "✔️", "✅":
		return true
	}
	return false
}

// Classify tags one trimmed line. First matching rule wins; lines that match
// nothing and cannot be continuation text classify as TagNone.
func Classify(line string, ctx Context) Tag {
	line = strings.TrimSpace(line)

	// Blank lines and boilerplate carry nothing. A bare checkmark refers to
	// the most recently recorded option, so it only means something once at
	// least one option exists.
	if line == "" || strings.Contains(line, "Here are the questions") {
		return Tag{Kind: TagNone}
	}
	if checkmarkOnly(line) {
		if ctx.QuestionOpen && ctx.OptionCount > 0 {
			return Tag{Kind: TagCorrectMarker}
		}
		return Tag{Kind: TagNone}
	}

	if m := questionPattern.FindStringSubmatch(line); m != nil {
		return Tag{
			Kind:   TagQuestionStart,
			Number: digitsPattern.FindString(m[1]),
			Text:   m[2],
		}
	}

	if m := optionPattern.FindStringSubmatch(line); m != nil {
		return Tag{
			Kind:    TagOption,
			Letter:  m[1][0],
			Text:    m[2],
			Correct: m[3] != "" || emphasized(m[2]),
		}
	}

	if m := bulletPattern.FindStringSubmatch(line); m != nil {
		// A fifth bullet has no slot to land in; the letter itself is
		// assigned positionally by the assembler.
		if ctx.OptionCount >= 4 {
			return Tag{Kind: TagNone}
		}
		return Tag{
			Kind:    TagBulletOption,
			Text:    m[1],
			Correct: m[2] != "",
		}
	}

	// Anything long enough that is not an option start reads as continuation
	// of the open question's text.
	if ctx.QuestionOpen && len(line) > 10 &&
		!letterPrefix.MatchString(line) &&
		!strings.Contains(strings.ToLower(line), "question") {
		return Tag{Kind: TagContinuation, Text: line}
	}

	return Tag{Kind: TagNone}
}

// emphasized reports whether an option's raw text is a single fully
// emphasized span ("*bite off*"), the inline notation some banks use instead
// of a checkmark.
func emphasized(text string) bool {
	text = strings.TrimSpace(text)
	return len(text) > 2 && strings.HasPrefix(text, "*") && strings.HasSuffix(text, "*")
}
