package quiz

import (
	"fmt"
	"math/rand"

	"github.com/edtechlabs/qbank/internal/report"
	"github.com/edtechlabs/qbank/models"
	"github.com/edtechlabs/qbank/pkg/db"
	"github.com/urfave/cli/v2"
)

// QuizAction draws random questions from the store: either from one subject
// (optionally filtered by question type) or mixed across all subjects.
func QuizAction(c *cli.Context) error {
	database, err := db.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	count := c.Int("count")
	showAnswers := !c.Bool("hide-answers")

	if c.Bool("mixed") {
		return mixedQuiz(database, count, showAnswers)
	}

	subject := models.Subject(c.String("subject"))
	if !subject.Valid() {
		return fmt.Errorf("unknown subject %q (or use --mixed)", subject)
	}

	questions, err := database.RandomQuestions(subject, c.String("type"), count)
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		fmt.Printf("No matching %s questions stored.\n", subject.Display())
		return nil
	}

	fmt.Printf("=== %s Quiz (%d questions) ===\n", subject.Display(), len(questions))
	for _, q := range questions {
		report.PrintQuestion(q, showAnswers)
	}
	return nil
}

// mixedQuiz draws count questions from every subject and shuffles them
// together.
func mixedQuiz(database *db.DB, count int, showAnswers bool) error {
	var all []db.StoredQuestion
	for _, subject := range models.Subjects {
		questions, err := database.RandomQuestions(subject, "", count)
		if err != nil {
			return err
		}
		all = append(all, questions...)
	}
	if len(all) == 0 {
		fmt.Println("No questions stored. Run 'qbank extract' first.")
		return nil
	}

	rand.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})

	fmt.Printf("=== Mixed Quiz (%d questions) ===\n", len(all))
	for _, q := range all {
		report.PrintQuestion(q, showAnswers)
	}
	return nil
}
