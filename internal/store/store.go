package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when the database file does not exist.
var ErrNotFound = errors.New("question bank not found")

// Schema is the DDL of a question bank. Banks are authored externally; the
// game only ever reads them.
const Schema = `
CREATE TABLE IF NOT EXISTS questions (
  position INTEGER PRIMARY KEY,
  text TEXT NOT NULL,
  options TEXT NOT NULL,
  correct_index INTEGER NOT NULL,
  category TEXT NOT NULL DEFAULT '',
  points INTEGER NOT NULL DEFAULT 0
);
`

// QuestionRow is one row of the questions table with options already decoded.
type QuestionRow struct {
	Position     int
	Text         string
	Options      []string
	CorrectIndex int
	Category     string
	Points       int
}

// Store is a read-only handle on a SQLite question bank.
type Store struct {
	db *sql.DB
}

// Open connects to the question bank at path. It refuses to create a new
// database file and puts the connection in query-only mode.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat database: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Pragmas are per connection.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Questions returns every question row ordered by position.
func (s *Store) Questions(ctx context.Context) ([]QuestionRow, error) {
	const query = `
SELECT position, text, options, correct_index, category, points
FROM questions
ORDER BY position ASC;
`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var out []QuestionRow
	for rows.Next() {
		var (
			row     QuestionRow
			options string
		)
		if err := rows.Scan(&row.Position, &row.Text, &options, &row.CorrectIndex, &row.Category, &row.Points); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		if err := json.Unmarshal([]byte(options), &row.Options); err != nil {
			return nil, fmt.Errorf("decode options of question %d: %w", row.Position, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return out, nil
}

// applyPragmas configures the connection for read-only access.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA query_only = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
