package topic

import (
	"testing"

	"github.com/edtechlabs/qbank/models"
)

func TestClassifyFirstRuleWins(t *testing.T) {
	rules := []models.TypeRule{
		{Keywords: []string{"cup", "olympics", "football"}, Tag: "Sports"},
		{Keywords: []string{"history", "century", "founded"}, Tag: "History"},
	}

	// Matches both Sports and History; Sports is configured earlier.
	got := Classify(rules, "General Knowledge", "Which country won the first World Cup in football history?")
	if got != "Sports" {
		t.Errorf("Classify() = %q, want Sports", got)
	}
}

func TestClassify(t *testing.T) {
	profile, err := models.DefaultProfile(models.SubjectMathematics)
	if err != nil {
		t.Fatalf("DefaultProfile() failed: %v", err)
	}

	tests := []struct {
		name string
		text string
		want string
	}{
		{"trigonometry", "Find the angle of elevation of the tower", "Trigonometry"},
		{"calculus", "Evaluate the integral of f from 0 to 1", "Calculus"},
		{"statistics", "What is the median of the data set?", "Statistics"},
		{"case insensitive", "SOLVE the Quadratic", "Algebra"},
		{"fallback", "Add 45 and 19", "Arithmetic"},
		{"empty text falls back", "", "Arithmetic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(profile.TypeRules, profile.DefaultType, tt.text)
			if got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
