package main

import (
	"fmt"
	"log"
	"os"

	"github.com/edtechlabs/qbank/internal/extract"
	"github.com/edtechlabs/qbank/internal/quiz"
	"github.com/edtechlabs/qbank/internal/report"
	"github.com/edtechlabs/qbank/pkg/help"
	"github.com/urfave/cli/v2"
)

func dbFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "db",
		Usage: "path to the question database (default: ./qbank.db)",
	}
}

func subjectFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "subject",
		Aliases: []string{"s"},
		Usage:   "subject bank: english, mathematics, or general_knowledge",
	}
}

func main() {
	app := &cli.App{
		Name:  "qbank",
		Usage: "extract multiple-choice question banks from OCR/PDF text into SQLite",
		Commands: []*cli.Command{
			{
				Name:   "extract",
				Usage:  "parse a bank file and replace the subject's stored questions",
				Action: extract.ExtractAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "bank file (plain text, or an HTML export)",
						Required: true,
					},
					subjectFlag(),
					&cli.StringFlag{
						Name:  "profile",
						Usage: "YAML subject profile overriding the built-in one",
					},
					dbFlag(),
					&cli.BoolFlag{
						Name:  "dry-run",
						Usage: "print extracted questions as JSON without saving",
					},
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "log errors only",
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "print per-subject totals and question-type distributions",
				Action: report.StatsAction,
				Flags:  []cli.Flag{dbFlag()},
			},
			{
				Name:   "sample",
				Usage:  "print the first questions of a subject for verification",
				Action: report.SampleAction,
				Flags: []cli.Flag{
					subjectFlag(),
					dbFlag(),
					&cli.IntFlag{Name: "limit", Value: 3, Usage: "number of questions to print"},
				},
			},
			{
				Name:   "quiz",
				Usage:  "draw random questions from the store",
				Action: quiz.QuizAction,
				Flags: []cli.Flag{
					subjectFlag(),
					dbFlag(),
					&cli.StringFlag{Name: "type", Usage: "restrict to one question type"},
					&cli.IntFlag{Name: "count", Value: 10, Usage: "questions to draw (per subject when --mixed)"},
					&cli.BoolFlag{Name: "mixed", Usage: "draw from all subjects and shuffle"},
					&cli.BoolFlag{Name: "hide-answers", Usage: "omit the correct answers"},
				},
			},
			{
				Name:  "guide",
				Usage: "print a quick-start reference for agents and scripts",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
			{
				Name:   "terms",
				Usage:  "print the most frequent terms across a subject's questions",
				Action: report.TermsAction,
				Flags: []cli.Flag{
					subjectFlag(),
					dbFlag(),
					&cli.IntFlag{Name: "top", Value: 25, Usage: "number of terms to print"},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
