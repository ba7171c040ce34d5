package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TypeRule maps a keyword set to a question-type tag. Rules are evaluated in
// order and the first rule with any matching keyword wins.
type TypeRule struct {
	Keywords []string `yaml:"keywords"`
	Tag      string   `yaml:"tag"`
}

// Policy holds the per-subject recovery knobs. Both default to off; the
// built-in Mathematics and General Knowledge profiles turn them on to match
// the looser formatting of those banks.
type Policy struct {
	// FallbackFirstCorrect marks the first recorded option correct when no
	// checkmark was detected. Applied loudly: every use produces a diagnostic.
	FallbackFirstCorrect bool `yaml:"fallback_first_correct"`
	// BackfillOptions pads missing letters with empty strings before
	// validation, provided at least MinOptions real options were recorded.
	BackfillOptions bool `yaml:"backfill_options"`
	MinOptions      int  `yaml:"min_options"`
}

// SubjectProfile configures extraction for one question bank: which table the
// questions land in, how pages are delimited, how question types are tagged,
// and which recovery policies apply.
type SubjectProfile struct {
	Subject     Subject    `yaml:"subject"`
	PageMarker  string     `yaml:"page_marker"`
	TypeRules   []TypeRule `yaml:"type_rules"`
	DefaultType string     `yaml:"default_type"`
	Policy      Policy     `yaml:"policy"`
}

// LoadProfile reads a subject profile from a YAML file.
func LoadProfile(path string) (*SubjectProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile SubjectProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	if !profile.Subject.Valid() {
		return nil, fmt.Errorf("profile has unknown subject %q", profile.Subject)
	}
	if profile.DefaultType == "" {
		return nil, fmt.Errorf("profile for %s has no default_type", profile.Subject)
	}

	return &profile, nil
}

// DefaultProfile returns the built-in profile for a subject. The rule tables
// mirror the per-subject keyword heuristics the banks were originally
// extracted with.
func DefaultProfile(subject Subject) (*SubjectProfile, error) {
	switch subject {
	case SubjectEnglish:
		return &SubjectProfile{
			Subject:    SubjectEnglish,
			PageMarker: `===== Page \d+ =====`,
			TypeRules: []TypeRule{
				{Keywords: []string{"grammatical name", "grammar"}, Tag: "grammar"},
				{Keywords: []string{"sound", "pronunciation"}, Tag: "pronunciation"},
				{Keywords: []string{"meaning", "nearest meaning"}, Tag: "vocabulary"},
				{Keywords: []string{"choose the option"}, Tag: "multiple_choice"},
				{Keywords: []string{"----------", "___"}, Tag: "fill_in_blank"},
			},
			DefaultType: "general",
		}, nil
	case SubjectMathematics:
		return &SubjectProfile{
			Subject: SubjectMathematics,
			TypeRules: []TypeRule{
				{Keywords: []string{"sin", "cos", "tan", "angle", "bearing", "elevation"}, Tag: "Trigonometry"},
				{Keywords: []string{"derivative", "integral", "limit", "differential"}, Tag: "Calculus"},
				{Keywords: []string{"mean", "median", "mode", "probability", "average", "standard deviation"}, Tag: "Statistics"},
				{Keywords: []string{"equation", "solve", "quadratic", "linear", "x =", "solve for"}, Tag: "Algebra"},
				{Keywords: []string{"area", "volume", "perimeter", "radius", "diameter", "circle", "rectangle", "triangle"}, Tag: "Geometry"},
			},
			DefaultType: "Arithmetic",
			Policy: Policy{
				FallbackFirstCorrect: true,
				BackfillOptions:      true,
				MinOptions:           2,
			},
		}, nil
	case SubjectGeneralKnowledge:
		return &SubjectProfile{
			Subject: SubjectGeneralKnowledge,
			TypeRules: []TypeRule{
				{Keywords: []string{"nigeria", "nigerian", "lagos", "abuja", "state", "capital", "warri", "ondo", "ekiti", "jigawa"}, Tag: "Nigerian Geography/Politics"},
				{Keywords: []string{"mountain", "ocean", "country", "continent", "capital", "river", "kilmanjaro", "everest", "tanzania"}, Tag: "World Geography"},
				{Keywords: []string{"cup", "olympics", "sport", "football", "soccer", "fifa", "goal", "score"}, Tag: "Sports"},
				{Keywords: []string{"founded", "inventor", "discovered", "history", "century", "tiktok", "spacex"}, Tag: "History/Technology"},
				{Keywords: []string{"colour", "color", "science", "chemical", "element", "primary colours", "water"}, Tag: "Science"},
				{Keywords: []string{"idiom", "saying", "expression", "phrase", "apple of", "feather in", "chip of"}, Tag: "Language/Idioms"},
				{Keywords: []string{"day", "celebrated", "holiday", "festival", "woman's day"}, Tag: "Culture/Events"},
				{Keywords: []string{"astronomer", "astrologer", "surveyor", "connoisseur", "horticulturist"}, Tag: "Professions"},
			},
			DefaultType: "General Knowledge",
			Policy: Policy{
				FallbackFirstCorrect: true,
				BackfillOptions:      true,
				MinOptions:           2,
			},
		}, nil
	}
	return nil, fmt.Errorf("unknown subject %q", subject)
}
