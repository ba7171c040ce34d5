// Package db is the unified question store: one SQLite database with a table
// per subject bank plus a metadata table tracking extraction runs.
package db

import (
	"database/sql"
	"fmt"

	"github.com/edtechlabs/qbank/models"
	_ "modernc.org/sqlite"
)

const DefaultDBName = "qbank.db"

type DB struct {
	*sql.DB
	path string
}

// openDB opens a SQLite database at the given path.
func openDB(dbPath string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return sqlDB, nil
}

// Open opens or creates the question database at path, defaulting to
// DefaultDBName in the working directory.
func Open(path string) (*DB, error) {
	if path == "" {
		path = DefaultDBName
	}

	sqlDB, err := openDB(path)
	if err != nil {
		return nil, err
	}

	db := &DB{
		DB:   sqlDB,
		path: path,
	}

	if err := db.ensureSchemaExists(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// ensureSchemaExists checks if the schema exists and initializes it if not.
func (db *DB) ensureSchemaExists() error {
	var tableName string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='english_questions'").Scan(&tableName)

	if err == sql.ErrNoRows {
		return db.InitSchema()
	}

	if err != nil {
		return fmt.Errorf("failed to check schema: %w", err)
	}

	return nil
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// InitSchema initializes the database schema.
func (db *DB) InitSchema() error {
	_, err := db.Exec(schema)
	return err
}

// tableFor maps a subject to its table name. All SQL in this package builds
// table names through this whitelist, never from user input.
func tableFor(subject models.Subject) (string, error) {
	switch subject {
	case models.SubjectEnglish:
		return "english_questions", nil
	case models.SubjectMathematics:
		return "mathematics_questions", nil
	case models.SubjectGeneralKnowledge:
		return "general_knowledge_questions", nil
	}
	return "", fmt.Errorf("unknown subject %q", subject)
}
