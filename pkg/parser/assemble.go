package parser

import (
	"fmt"

	"github.com/edtechlabs/qbank/models"
	"github.com/edtechlabs/qbank/pkg/topic"
)

// inProgress is the accumulator for the question currently being assembled.
// It is owned exclusively by the Assembler and frozen into a models.Question
// on finalize.
type inProgress struct {
	number  string
	text    string
	options map[byte]string
	order   []byte // encounter order, may repeat a letter
	correct byte   // 0 = unset
	pending bool   // a checkmark arrived before any option existed
	page    int
}

// Assembler folds classified line tags into validated question records. It is
// a two-state machine: idle (current == nil) and open (accumulating). All
// diagnostics are collected for the caller; the fold itself never logs and
// never fails.
type Assembler struct {
	profile     *models.SubjectProfile
	current     *inProgress
	questions   []models.Question
	diagnostics []models.Diagnostic
}

func NewAssembler(profile *models.SubjectProfile) *Assembler {
	return &Assembler{profile: profile}
}

// Context reports the assembler state the line classifier needs.
func (a *Assembler) Context() Context {
	if a.current == nil {
		return Context{}
	}
	return Context{QuestionOpen: true, OptionCount: len(a.current.options)}
}

// Feed processes one classified line. Tags arriving while no question is open
// are discarded, except TagQuestionStart which opens one.
func (a *Assembler) Feed(tag Tag, page int) {
	switch tag.Kind {
	case TagQuestionStart:
		a.Flush()
		a.current = &inProgress{
			number:  tag.Number,
			text:    Normalize(tag.Text),
			options: make(map[byte]string),
			page:    page,
		}

	case TagOption:
		if a.current == nil {
			return
		}
		a.recordOption(tag.Letter, tag.Text, tag.Correct)

	case TagBulletOption:
		if a.current == nil || len(a.current.options) >= 4 {
			return
		}
		// Bullet options carry no letter; assign positionally.
		letter := byte('A' + len(a.current.options))
		a.recordOption(letter, tag.Text, tag.Correct)

	case TagCorrectMarker:
		if a.current == nil {
			return
		}
		q := a.current
		switch {
		case q.correct != 0:
			// Already resolved, stray marker.
		case len(q.order) > 0:
			q.correct = q.order[len(q.order)-1]
		default:
			// Checkmark before any option; attach to whichever comes next.
			q.pending = true
		}

	case TagContinuation:
		// Only absorb continuation once real question text exists, so stray
		// fragments before the question body are not picked up.
		if a.current == nil || a.current.text == "" {
			return
		}
		a.current.text += " " + Normalize(tag.Text)
	}
}

func (a *Assembler) recordOption(letter byte, text string, marked bool) {
	q := a.current
	if q.pending {
		if !marked {
			if len(q.order) > 0 {
				q.correct = q.order[len(q.order)-1]
			} else {
				q.correct = letter
			}
		}
		q.pending = false
	}

	// Last write wins on a repeated letter; the encounter order keeps every
	// occurrence so "most recent option" stays accurate.
	q.options[letter] = Normalize(text)
	q.order = append(q.order, letter)

	if marked {
		q.correct = letter
	}
}

// Flush finalizes any open question: recovery policies are applied, the
// validator runs, and the record is either appended or dropped with a
// diagnostic. Safe to call when idle.
func (a *Assembler) Flush() {
	if a.current == nil {
		return
	}
	q := a.current
	a.current = nil

	policy := a.profile.Policy

	if policy.BackfillOptions && len(q.options) >= policy.MinOptions && len(q.options) > 0 {
		for _, letter := range models.Letters {
			if _, ok := q.options[letter]; !ok {
				q.options[letter] = ""
			}
		}
	}

	if policy.FallbackFirstCorrect && q.correct == 0 && len(q.order) > 0 {
		q.correct = q.order[0]
		a.diagnostics = append(a.diagnostics, models.Diagnostic{
			Number:   q.number,
			Page:     q.page,
			Problems: []string{fmt.Sprintf("no correct marker found, assuming first option %c", q.correct)},
		})
	}

	record, err := validate(q)
	if err != nil {
		a.diagnostics = append(a.diagnostics, models.Diagnostic{
			Number:   q.number,
			Page:     q.page,
			Dropped:  true,
			Problems: err.Problems,
		})
		return
	}

	record.Type = topic.Classify(a.profile.TypeRules, a.profile.DefaultType, record.Text)
	a.questions = append(a.questions, record)
}

// Questions returns the accepted records in encounter order.
func (a *Assembler) Questions() []models.Question { return a.questions }

// Diagnostics returns the discard and recovery notes collected so far.
func (a *Assembler) Diagnostics() []models.Diagnostic { return a.diagnostics }
