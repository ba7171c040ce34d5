package db

import (
	"database/sql"
	"fmt"

	"github.com/edtechlabs/qbank/models"
)

// StoredQuestion is a question row read back from the store.
type StoredQuestion struct {
	ID int64
	models.Question
}

// ReplaceSubject replaces a subject's rows with the given records in one
// transaction and updates the bookkeeping row. Rows the engine rejects (for
// example a correct answer outside A-D) are skipped, not fatal; the skipped
// count is returned alongside the saved count.
func (db *DB) ReplaceSubject(subject models.Subject, questions []models.Question, source string) (saved, skipped int, err error) {
	table, err := tableFor(subject)
	if err != nil {
		return 0, 0, err
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec("DELETE FROM " + table); err != nil {
		return 0, 0, fmt.Errorf("failed to clear %s: %w", table, err)
	}

	insert := fmt.Sprintf(`
		INSERT INTO %s
		(question_number, question_text, option_a, option_b, option_c, option_d,
		 correct_answer, question_type, source_page)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, table)

	for _, q := range questions {
		if _, insErr := tx.Exec(insert,
			q.Number, q.Text,
			q.Option('A'), q.Option('B'), q.Option('C'), q.Option('D'),
			q.CorrectAnswer, q.Type, q.Page,
		); insErr != nil {
			skipped++
			continue
		}
		saved++
	}

	if _, err = tx.Exec(`
		INSERT INTO database_metadata (table_name, total_questions, extraction_source, last_updated)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(table_name) DO UPDATE SET
			total_questions = excluded.total_questions,
			extraction_source = excluded.extraction_source,
			last_updated = CURRENT_TIMESTAMP
	`, table, saved, source); err != nil {
		return 0, 0, fmt.Errorf("failed to update metadata: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("failed to commit: %w", err)
	}
	return saved, skipped, nil
}

// SetBankNotes stores free-form notes (for example the detected input
// language) on a subject's bookkeeping row.
func (db *DB) SetBankNotes(subject models.Subject, notes string) error {
	table, err := tableFor(subject)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO database_metadata (table_name, notes)
		VALUES (?, ?)
		ON CONFLICT(table_name) DO UPDATE SET notes = excluded.notes
	`, table, notes)
	if err != nil {
		return fmt.Errorf("failed to set bank notes: %w", err)
	}
	return nil
}

// CountQuestions returns the number of stored questions for a subject.
func (db *DB) CountQuestions(subject models.Subject) (int, error) {
	table, err := tableFor(subject)
	if err != nil {
		return 0, err
	}
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return count, nil
}

// TypeCount is one question-type bucket in a distribution.
type TypeCount struct {
	Type  string
	Count int
}

// TypeDistribution returns the question-type buckets for a subject, largest
// first.
func (db *DB) TypeDistribution(subject models.Subject) ([]TypeCount, error) {
	table, err := tableFor(subject)
	if err != nil {
		return nil, err
	}
	rows, err := db.Query("SELECT question_type, COUNT(*) FROM " + table +
		" GROUP BY question_type ORDER BY COUNT(*) DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query type distribution: %w", err)
	}
	defer rows.Close()

	var dist []TypeCount
	for rows.Next() {
		var tc TypeCount
		if err := rows.Scan(&tc.Type, &tc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan type count: %w", err)
		}
		dist = append(dist, tc)
	}
	return dist, rows.Err()
}

// RandomQuestions draws up to limit random questions from a subject,
// optionally restricted to one question type.
func (db *DB) RandomQuestions(subject models.Subject, questionType string, limit int) ([]StoredQuestion, error) {
	table, err := tableFor(subject)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT id, question_number, question_text, option_a, option_b,
		       option_c, option_d, correct_answer, question_type, source_page
		FROM %s
	`, table)
	args := []any{}
	if questionType != "" {
		query += " WHERE question_type = ?"
		args = append(args, questionType)
	}
	query += " ORDER BY RANDOM() LIMIT ?"
	args = append(args, limit)

	return db.scanQuestions(query, args...)
}

// SampleQuestions returns the first limit questions ordered by their numeric
// question number, for eyeballing extraction output.
func (db *DB) SampleQuestions(subject models.Subject, limit int) ([]StoredQuestion, error) {
	table, err := tableFor(subject)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT id, question_number, question_text, option_a, option_b,
		       option_c, option_d, correct_answer, question_type, source_page
		FROM %s
		ORDER BY CAST(question_number AS INTEGER)
		LIMIT ?
	`, table)
	return db.scanQuestions(query, limit)
}

// QuestionTexts returns every stored question text for a subject, for
// term-frequency analysis.
func (db *DB) QuestionTexts(subject models.Subject) ([]string, error) {
	table, err := tableFor(subject)
	if err != nil {
		return nil, err
	}
	rows, err := db.Query("SELECT question_text FROM " + table)
	if err != nil {
		return nil, fmt.Errorf("failed to query question texts: %w", err)
	}
	defer rows.Close()

	var texts []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("failed to scan question text: %w", err)
		}
		texts = append(texts, text)
	}
	return texts, rows.Err()
}

func (db *DB) scanQuestions(query string, args ...any) ([]StoredQuestion, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var questions []StoredQuestion
	for rows.Next() {
		var (
			q          StoredQuestion
			a, b, c, d string
			qType      sql.NullString
		)
		if err := rows.Scan(&q.ID, &q.Number, &q.Text, &a, &b, &c, &d,
			&q.CorrectAnswer, &qType, &q.Page); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		q.Options = map[string]string{"A": a, "B": b, "C": c, "D": d}
		q.Type = qType.String
		questions = append(questions, q)
	}
	return questions, rows.Err()
}
