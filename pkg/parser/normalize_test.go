package parser

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "What is 2+2?",
			want:  "What is 2+2?",
		},
		{
			name:  "enclosing emphasis stripped",
			input: "*bite off*",
			want:  "bite off",
		},
		{
			name:  "doubled emphasis stripped",
			input: "**important**",
			want:  "important",
		},
		{
			name:  "inner emphasis kept",
			input: "the *right* answer",
			want:  "the *right* answer",
		},
		{
			name:  "bare asterisk pair kept",
			input: "**",
			want:  "**",
		},
		{
			name:  "backtick fences removed",
			input: "```code``` sample",
			want:  "code sample",
		},
		{
			name:  "whitespace runs collapsed",
			input: "  a\t b\n\nc  ",
			want:  "a b c",
		},
		{
			name:  "padded emphasis trims body",
			input: "* word *",
			want:  "word",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"*emphasized*",
		"**double**",
		"***triple***",
		" *padded* ",
		"* inner pad *",
		"```fenced```",
		"mixed  \t *stuff* ``` here",
		"*",
		"**",
		"✔",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
