package help

const ColdstartYAML = `# qbank Quick Start

subjects:
  english: "English grammar, vocabulary and pronunciation banks"
  mathematics: "Arithmetic through calculus, topic-tagged"
  general_knowledge: "Geography, science, history, sports and more"

commands:
  basic_extract: |
    qbank extract --input english_bank.txt --subject english

  custom_profile: |
    qbank extract --input math_bank.txt --subject mathematics --profile profiles/mathematics.yaml

  preview_only: |
    qbank extract --input bank.txt --subject english --dry-run

  database_stats: |
    qbank stats

  sample_questions: |
    qbank sample --subject mathematics --limit 5

  practice_quiz: |
    qbank quiz --subject general_knowledge --count 10
    qbank quiz --mixed --count 15 --hide-answers

  frequent_terms: |
    qbank terms --subject english --top 25

profiles:
  - "YAML files override the built-in subject defaults"
  - "type_rules map keyword lists to question types, first match wins"
  - "policies control recovery: fallback_first_correct, backfill_options"

database:
  - "Single SQLite file (qbank.db by default, override with --db)"
  - "One table per subject plus database_metadata for bank provenance"
  - "extract replaces a subject's rows wholesale, other subjects untouched"

input_formats:
  - "Plain text banks from OCR or PDF conversion"
  - "HTML banks (.html/.htm) are reduced to readable text first"
  - "Page markers like '===== Page 3 =====' split banks into pages"

error_behavior:
  - "Incomplete questions are logged and skipped, never abort a run"
  - "--dry-run parses and prints without touching the database"
  - "Non-English banks trigger a warning but still extract"
`
