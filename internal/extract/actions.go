package extract

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/edtechlabs/qbank/models"
	"github.com/edtechlabs/qbank/pkg/db"
	"github.com/edtechlabs/qbank/pkg/loader"
	"github.com/edtechlabs/qbank/pkg/parser"
	"github.com/urfave/cli/v2"
)

// ExtractAction loads a question bank, runs the extraction pipeline, and
// replaces the subject's rows in the database.
func ExtractAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	profile, err := resolveProfile(c)
	if err != nil {
		return err
	}

	inputPath := c.String("input")
	if inputPath == "" {
		return fmt.Errorf("no input file provided via --input flag")
	}

	bank, err := loader.Load(inputPath)
	if err != nil {
		return fmt.Errorf("failed to load bank: %w", err)
	}
	logger.Info("bank loaded", "source", bank.Source, "bytes", len(bank.Text), "language", bank.Language)
	if bank.Language != "" && bank.Language != "English" {
		logger.Warn("bank does not look like English text", "detected", bank.Language, "subject", profile.Subject)
	}

	p, err := parser.New(profile)
	if err != nil {
		return err
	}
	result := p.Parse(bank.Text)

	for _, d := range result.Diagnostics {
		if d.Dropped {
			logger.Warn("question discarded", "number", d.Number, "page", d.Page, "problems", d.Problems)
		} else {
			logger.Info("recovery policy applied", "number", d.Number, "page", d.Page, "problems", d.Problems)
		}
	}
	logger.Info("extraction finished",
		"subject", profile.Subject,
		"pages", result.Pages,
		"accepted", len(result.Questions),
		"discarded", discardCount(result.Diagnostics),
	)

	if c.Bool("dry-run") {
		return printDryRun(result)
	}

	database, err := db.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	saved, skipped, err := database.ReplaceSubject(profile.Subject, result.Questions, bank.Source)
	if err != nil {
		return fmt.Errorf("failed to save questions: %w", err)
	}
	if skipped > 0 {
		logger.Warn("questions rejected by store", "count", skipped)
	}
	if bank.Language != "" {
		if err := database.SetBankNotes(profile.Subject, "detected language: "+bank.Language); err != nil {
			logger.Warn("failed to record bank notes", "error", err)
		}
	}

	fmt.Printf("Saved %d %s questions to %s\n", saved, profile.Subject.Display(), database.Path())
	return nil
}

// resolveProfile picks the subject profile: an explicit --profile file wins,
// otherwise the built-in profile for --subject.
func resolveProfile(c *cli.Context) (*models.SubjectProfile, error) {
	subject := models.Subject(c.String("subject"))

	if path := c.String("profile"); path != "" {
		profile, err := models.LoadProfile(path)
		if err != nil {
			return nil, err
		}
		if c.IsSet("subject") && profile.Subject != subject {
			return nil, fmt.Errorf("profile is for %s but --subject says %s", profile.Subject, subject)
		}
		return profile, nil
	}

	if !subject.Valid() {
		return nil, fmt.Errorf("unknown subject %q (want english, mathematics, or general_knowledge)", subject)
	}
	return models.DefaultProfile(subject)
}

func discardCount(diags []models.Diagnostic) int {
	n := 0
	for _, d := range diags {
		if d.Dropped {
			n++
		}
	}
	return n
}

// printDryRun emits the extracted records as indented JSON instead of
// touching the database.
func printDryRun(result *parser.Result) error {
	out, err := json.MarshalIndent(result.Questions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal questions: %w", err)
	}
	fmt.Println(string(out))
	fmt.Printf("\n%d questions extracted (dry run, nothing saved)\n", len(result.Questions))
	return nil
}
