package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/edtechlabs/qbank/models"
	"github.com/edtechlabs/qbank/pkg/analytics"
	"github.com/edtechlabs/qbank/pkg/db"
	"github.com/urfave/cli/v2"
)

// StatsAction prints per-subject totals and question-type distributions.
func StatsAction(c *cli.Context) error {
	database, err := db.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("QUESTION BANK DATABASE SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Database: %s\n", database.Path())

	grandTotal := 0
	for _, subject := range models.Subjects {
		count, err := database.CountQuestions(subject)
		if err != nil {
			return err
		}
		grandTotal += count

		fmt.Printf("\n%s:\n", subject.Display())
		fmt.Printf("  Total Questions: %s\n", humanize.Comma(int64(count)))
		if count == 0 {
			continue
		}

		dist, err := database.TypeDistribution(subject)
		if err != nil {
			return err
		}
		fmt.Println("  Question Types:")
		for _, tc := range dist {
			percentage := float64(tc.Count) / float64(count) * 100
			fmt.Printf("    %-28s %6s (%.1f%%)\n", tc.Type, humanize.Comma(int64(tc.Count)), percentage)
		}
	}

	fmt.Printf("\nGRAND TOTAL: %s questions across all subjects\n", humanize.Comma(int64(grandTotal)))
	fmt.Println(strings.Repeat("=", 60))
	return nil
}

// SampleAction prints the first N questions of a subject by question number.
func SampleAction(c *cli.Context) error {
	subject := models.Subject(c.String("subject"))
	if !subject.Valid() {
		return fmt.Errorf("unknown subject %q", subject)
	}

	database, err := db.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	questions, err := database.SampleQuestions(subject, c.Int("limit"))
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		fmt.Printf("No %s questions stored. Run 'qbank extract' first.\n", subject.Display())
		return nil
	}

	fmt.Printf("=== Sample %s Questions ===\n", subject.Display())
	for _, q := range questions {
		PrintQuestion(q, true)
	}
	return nil
}

// TermsAction prints the most frequent non-stopword terms across a subject's
// question texts.
func TermsAction(c *cli.Context) error {
	subject := models.Subject(c.String("subject"))
	if !subject.Valid() {
		return fmt.Errorf("unknown subject %q", subject)
	}

	database, err := db.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	texts, err := database.QuestionTexts(subject)
	if err != nil {
		return err
	}
	if len(texts) == 0 {
		fmt.Printf("No %s questions stored. Run 'qbank extract' first.\n", subject.Display())
		return nil
	}

	a := &analytics.Analytics{}
	intermediate := make([]map[string]int, 0, len(texts))
	for _, text := range texts {
		intermediate = append(intermediate, a.WordFrequency(text))
	}
	merged := analytics.Merge(intermediate)

	top := c.Int("top")
	fmt.Printf("--- Top %d Terms (%s, %d questions) ---\n", top, subject.Display(), len(texts))
	for i, tc := range analytics.TopTerms(merged, top) {
		fmt.Printf("%d. %s: %d\n", i+1, tc.Term, tc.Count)
	}
	return nil
}

// PrintQuestion renders one stored question the way the sample and quiz
// reports show them.
func PrintQuestion(q db.StoredQuestion, showAnswer bool) {
	fmt.Printf("\nQuestion %s (%s):\n", q.Number, q.Type)
	fmt.Printf("Text: %s\n", q.Text)
	for _, letter := range []string{"A", "B", "C", "D"} {
		fmt.Printf("%s) %s\n", letter, q.Options[letter])
	}
	if showAnswer {
		fmt.Printf("Correct Answer: %s\n", q.CorrectAnswer)
	}
	fmt.Println(strings.Repeat("-", 50))
}
