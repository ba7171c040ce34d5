package analytics

import (
	"testing"
)

func TestWordFrequency(t *testing.T) {
	a := &Analytics{}

	freq := a.WordFrequency("The derivative of the function, the DERIVATIVE again!")
	if freq["derivative"] != 2 {
		t.Errorf("derivative count = %d, want 2", freq["derivative"])
	}
	if _, ok := freq["the"]; ok {
		t.Error("stopword 'the' was counted")
	}
	if _, ok := freq[""]; ok {
		t.Error("empty token was counted")
	}

	// Punctuation is stripped from token edges.
	freq = a.WordFrequency("triangle. triangle? (triangle)")
	if freq["triangle"] != 3 {
		t.Errorf("triangle count = %d, want 3", freq["triangle"])
	}
}

func TestWordFrequencySkipsExamBoilerplate(t *testing.T) {
	a := &Analytics{}
	freq := a.WordFrequency("Choose the correct option from the following")
	for _, word := range []string{"choose", "correct", "option", "following"} {
		if _, ok := freq[word]; ok {
			t.Errorf("boilerplate word %q was counted", word)
		}
	}
}

func TestIsStopword(t *testing.T) {
	if !IsStopword("The") {
		t.Error("IsStopword(The) = false")
	}
	if IsStopword("derivative") {
		t.Error("IsStopword(derivative) = true")
	}
}

func TestMergeAndTopTerms(t *testing.T) {
	merged := Merge([]map[string]int{
		{"angle": 2, "triangle": 1},
		{"angle": 1, "median": 3},
	})
	if merged["angle"] != 3 || merged["triangle"] != 1 || merged["median"] != 3 {
		t.Errorf("Merge() = %v", merged)
	}

	top := TopTerms(merged, 2)
	if len(top) != 2 {
		t.Fatalf("got %d terms, want 2", len(top))
	}
	// Equal counts break ties alphabetically: angle before median.
	if top[0].Term != "angle" || top[1].Term != "median" {
		t.Errorf("top = %+v, want angle then median", top)
	}

	if got := TopTerms(merged, 10); len(got) != 3 {
		t.Errorf("TopTerms with large n returned %d terms, want all 3", len(got))
	}
}
