package parser

import "testing"

func TestClassifyQuestionStarts(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantNumber string
		wantText   string
	}{
		{"emphasized number", "*12.* What is 2+2?", "12", "What is 2+2?"},
		{"unemphasized lead", "2292.* Choose the option", "2292", "Choose the option"},
		{"By variant", "By*2293.* nearest in meaning", "2293", "nearest in meaning"},
		{"explicit label", "Question 1098: pick the odd one", "1098", "pick the odd one"},
		{"plain number", "7. Where is Mount Kilmanjaro located?", "7", "Where is Mount Kilmanjaro located?"},
		{"number only", "15.", "15", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := Classify(tt.line, Context{})
			if tag.Kind != TagQuestionStart {
				t.Fatalf("Classify(%q).Kind = %v, want TagQuestionStart", tt.line, tag.Kind)
			}
			if tag.Number != tt.wantNumber {
				t.Errorf("Number = %q, want %q", tag.Number, tt.wantNumber)
			}
			if tag.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", tag.Text, tt.wantText)
			}
		})
	}
}

func TestClassifyOptions(t *testing.T) {
	ctx := Context{QuestionOpen: true, OptionCount: 1}

	tests := []struct {
		name        string
		line        string
		wantLetter  byte
		wantText    string
		wantCorrect bool
	}{
		{"bare lettered", "A) 3", 'A', "3", false},
		{"inline checkmark", "B) 4 ✔", 'B', "4", true},
		{"emoji checkmark", "C) 5 ✅", 'C', "5", true},
		{"variant checkmark", "D) 6 ✔️", 'D', "6", true},
		{"dashed prefix", "- C) greenish", 'C', "greenish", false},
		{"starred prefix", "* D) a noun", 'D', "a noun", false},
		{"fully emphasized text", "B) *bite off*", 'B', "*bite off*", true},
		{"short emphasis not marked", "B) *x", 'B', "*x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := Classify(tt.line, ctx)
			if tag.Kind != TagOption {
				t.Fatalf("Classify(%q).Kind = %v, want TagOption", tt.line, tag.Kind)
			}
			if tag.Letter != tt.wantLetter {
				t.Errorf("Letter = %c, want %c", tag.Letter, tt.wantLetter)
			}
			if tag.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", tag.Text, tt.wantText)
			}
			if tag.Correct != tt.wantCorrect {
				t.Errorf("Correct = %v, want %v", tag.Correct, tt.wantCorrect)
			}
		})
	}
}

func TestClassifyBullets(t *testing.T) {
	open := Context{QuestionOpen: true, OptionCount: 2}

	tag := Classify("* similar", open)
	if tag.Kind != TagBulletOption || tag.Text != "similar" || tag.Correct {
		t.Errorf("star bullet = %+v, want BulletOption(similar)", tag)
	}

	tag = Classify("● Lagos", open)
	if tag.Kind != TagBulletOption || tag.Text != "Lagos" {
		t.Errorf("dot bullet = %+v, want BulletOption(Lagos)", tag)
	}

	tag = Classify("* similar ✔", open)
	if tag.Kind != TagBulletOption || !tag.Correct {
		t.Errorf("marked bullet = %+v, want Correct", tag)
	}

	// No slot left once four options exist.
	full := Context{QuestionOpen: true, OptionCount: 4}
	if tag := Classify("* one too many", full); tag.Kind != TagNone {
		t.Errorf("fifth bullet = %+v, want TagNone", tag)
	}
}

func TestClassifyCheckmarkLines(t *testing.T) {
	// A bare checkmark only means something once an option exists.
	if tag := Classify("✔", Context{QuestionOpen: true, OptionCount: 2}); tag.Kind != TagCorrectMarker {
		t.Errorf("checkmark with options = %+v, want TagCorrectMarker", tag)
	}
	if tag := Classify("✅", Context{QuestionOpen: true}); tag.Kind != TagNone {
		t.Errorf("checkmark without options = %+v, want TagNone", tag)
	}
	if tag := Classify("✔", Context{}); tag.Kind != TagNone {
		t.Errorf("checkmark while idle = %+v, want TagNone", tag)
	}
}

func TestClassifyContinuation(t *testing.T) {
	open := Context{QuestionOpen: true}

	tag := Classify("of the underlined expression below", open)
	if tag.Kind != TagContinuation {
		t.Fatalf("Kind = %v, want TagContinuation", tag.Kind)
	}

	tests := []struct {
		name string
		line string
		ctx  Context
	}{
		{"no open question", "of the underlined expression below", Context{}},
		{"too short", "and so on", open},
		{"looks like option", "A) not a continuation", open},
		{"mentions question", "end of question section here", open},
		{"empty line", "", open},
		{"banner line", "Here are the questions for today", open},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tag := Classify(tt.line, tt.ctx); tag.Kind == TagContinuation {
				t.Errorf("Classify(%q) = TagContinuation, want something else", tt.line)
			}
		})
	}
}
