package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- English bank
CREATE TABLE IF NOT EXISTS english_questions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    question_number TEXT NOT NULL,
    question_text TEXT NOT NULL,
    option_a TEXT NOT NULL,
    option_b TEXT NOT NULL,
    option_c TEXT NOT NULL,
    option_d TEXT NOT NULL,
    correct_answer CHAR(1) NOT NULL CHECK (correct_answer IN ('A', 'B', 'C', 'D')),
    question_type TEXT,
    source_page INTEGER DEFAULT 0,
    difficulty_level TEXT DEFAULT 'medium',
    source TEXT DEFAULT 'english_bank_pdf',
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_english_type ON english_questions(question_type);

-- Mathematics bank
CREATE TABLE IF NOT EXISTS mathematics_questions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    question_number TEXT NOT NULL,
    question_text TEXT NOT NULL,
    option_a TEXT NOT NULL,
    option_b TEXT NOT NULL,
    option_c TEXT NOT NULL,
    option_d TEXT NOT NULL,
    correct_answer CHAR(1) NOT NULL CHECK (correct_answer IN ('A', 'B', 'C', 'D')),
    question_type TEXT,
    topic TEXT,
    source_page INTEGER DEFAULT 0,
    difficulty_level TEXT DEFAULT 'medium',
    source TEXT DEFAULT 'mathematics_bank_pdf',
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_mathematics_type ON mathematics_questions(question_type);

-- General knowledge bank
CREATE TABLE IF NOT EXISTS general_knowledge_questions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    question_number TEXT NOT NULL,
    question_text TEXT NOT NULL,
    option_a TEXT NOT NULL,
    option_b TEXT NOT NULL,
    option_c TEXT NOT NULL,
    option_d TEXT NOT NULL,
    correct_answer CHAR(1) NOT NULL CHECK (correct_answer IN ('A', 'B', 'C', 'D')),
    question_type TEXT,
    category TEXT,
    source_page INTEGER DEFAULT 0,
    difficulty_level TEXT DEFAULT 'medium',
    source TEXT DEFAULT 'general_knowledge_pdf',
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_general_knowledge_type ON general_knowledge_questions(question_type);

-- Extraction bookkeeping: one row per subject table, upserted on each run
CREATE TABLE IF NOT EXISTS database_metadata (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    table_name TEXT NOT NULL UNIQUE,
    total_questions INTEGER DEFAULT 0,
    last_updated TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    extraction_source TEXT,
    notes TEXT
);
`
