package question

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/trivia/internal/store"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const envelopeJSON = `{
  "version": "v1.2.0",
  "questions": [
    {"question": "2 + 2?", "options": ["3", "4", "5", "6"], "correct": 1, "category": "Math", "points": 5},
    {"question": "Sky colour?", "options": ["Green", "Blue", "Red", "Pink"], "correct": 1, "category": "Nature", "points": 10}
  ]
}`

func TestLoad_JSONEnvelope(t *testing.T) {
	path := writeFile(t, "q.json", envelopeJSON)

	qs, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, Question{
		Text:         "2 + 2?",
		Options:      []string{"3", "4", "5", "6"},
		CorrectIndex: 1,
		Category:     "Math",
		Points:       5,
	}, qs[0])
	assert.Equal(t, "Nature", qs[1].Category)
}

func TestLoad_JSONBareList(t *testing.T) {
	path := writeFile(t, "q.json", `[{"question": "x", "options": ["a","b","c","d"], "correct": 3, "points": 1}]`)

	qs, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, 3, qs[0].CorrectIndex)
	assert.Equal(t, "d", qs[0].CorrectOption())
}

func TestLoad_JSONSchemaViolation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"correct is a string", `[{"question": "x", "options": ["a"], "correct": "0"}]`},
		{"missing options", `[{"question": "x", "correct": 0}]`},
		{"options not strings", `[{"question": "x", "options": [1, 2], "correct": 0}]`},
		{"envelope without questions", `{"version": "v1.0.0"}`},
		{"scalar document", `"hello"`},
		{"malformed", `{not json`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "q.json", tt.content)
			_, err := Load(context.Background(), path)
			require.Error(t, err)
		})
	}
}

func TestLoad_OutOfRangeCorrectIsKept(t *testing.T) {
	path := writeFile(t, "q.json", `[{"question": "x", "options": ["a","b"], "correct": 7, "points": 1}]`)

	qs, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.False(t, qs[0].HasValidAnswer())
	assert.Equal(t, "", qs[0].CorrectOption())
}

func TestLoad_Version(t *testing.T) {
	tests := []struct {
		version string
		wantErr bool
	}{
		{"", false},
		{"v1", false},
		{"1.4.2", false},
		{"v1.0.0-beta", false},
		{"v2.0.0", true},
		{"banana", true},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			err := checkVersion(tt.version)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnsupportedVersion))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLoad_YAML(t *testing.T) {
	content := `
version: v1.0.0
questions:
  - question: Largest planet?
    options: [Mars, Jupiter, Venus, Earth]
    correct: 1
    category: Science
    points: 10
  - question: Fastest land animal?
    options: [Cheetah, Lion, Horse, Hare]
    correct: 0
    category: Nature
    points: 5
`
	path := writeFile(t, "q.yaml", content)

	qs, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "Largest planet?", qs[0].Text)
	assert.Equal(t, []string{"Mars", "Jupiter", "Venus", "Earth"}, qs[0].Options)
	assert.Equal(t, 5, qs[1].Points)
}

func TestLoad_YAMLBareList(t *testing.T) {
	path := writeFile(t, "q.yml", "- question: q\n  options: [a, b, c, d]\n  correct: 2\n  points: 3\n")

	qs, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, 2, qs[0].CorrectIndex)
}

func TestLoad_YAMLWrongVersion(t *testing.T) {
	path := writeFile(t, "q.yaml", "version: v3.0.0\nquestions:\n  - question: q\n    options: [a]\n    correct: 0\n")

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedVersion))
}

func TestLoad_SQLiteBank(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(store.Schema)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO questions (position, text, options, correct_index, category, points)
VALUES (1, 'Boiling point of water (C)?', '["90","100","110","120"]', 1, 'Science', 10)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	qs, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, Question{
		Text:         "Boiling point of water (C)?",
		Options:      []string{"90", "100", "110", "120"},
		CorrectIndex: 1,
		Category:     "Science",
		Points:       10,
	}, qs[0])
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
	t.Run("missing bank", func(t *testing.T) {
		_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.db"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, store.ErrNotFound))
	})
	t.Run("unknown extension", func(t *testing.T) {
		_, err := Load(context.Background(), writeFile(t, "q.txt", "hello"))
		assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	})
	t.Run("empty list", func(t *testing.T) {
		_, err := Load(context.Background(), writeFile(t, "q.json", "[]"))
		assert.True(t, errors.Is(err, ErrEmpty))
	})
	t.Run("empty yaml", func(t *testing.T) {
		_, err := Load(context.Background(), writeFile(t, "q.yaml", ""))
		assert.True(t, errors.Is(err, ErrEmpty))
	})
}

func TestLoadOrDefault(t *testing.T) {
	ctx := context.Background()

	t.Run("empty path uses defaults silently", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		qs, src := LoadOrDefault(ctx, "", logger)
		assert.Equal(t, SourceFallback, src)
		assert.Equal(t, Defaults(), qs)
		assert.Empty(t, buf.String())
	})

	t.Run("failure falls back and warns", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		qs, src := LoadOrDefault(ctx, filepath.Join(t.TempDir(), "missing.json"), logger)
		assert.Equal(t, SourceFallback, src)
		assert.GreaterOrEqual(t, len(qs), 2)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "using built-in questions")
	})

	t.Run("negative points warn", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		doc := `[{"question": "Q?", "options": ["a", "b"], "correct": 0, "points": -3}]`
		qs, src := LoadOrDefault(ctx, writeFile(t, "q.json", doc), logger)
		assert.Equal(t, SourceFile, src)
		require.Len(t, qs, 1)
		assert.Equal(t, -3, qs[0].Points)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "negative points")
	})

	t.Run("success", func(t *testing.T) {
		qs, src := LoadOrDefault(ctx, writeFile(t, "q.json", envelopeJSON), discardLogger())
		assert.Equal(t, SourceFile, src)
		assert.Len(t, qs, 2)
	})
}

func TestDefaults(t *testing.T) {
	qs := Defaults()
	require.GreaterOrEqual(t, len(qs), 2)
	for _, q := range qs {
		assert.Len(t, q.Options, 4, q.Text)
		assert.True(t, q.HasValidAnswer(), q.Text)
		assert.Positive(t, q.Points, q.Text)
	}

	// Callers get their own copy.
	qs[0].Options[0] = "mutated"
	assert.NotEqual(t, "mutated", Defaults()[0].Options[0])
}

func TestTotalPoints(t *testing.T) {
	assert.Equal(t, 0, TotalPoints(nil))
	assert.Equal(t, 15, TotalPoints([]Question{{Points: 5}, {Points: 10}}))
	assert.Equal(t, 5, TotalPoints([]Question{{Points: 5}, {Points: -3}}), "negative points count as zero")
}
