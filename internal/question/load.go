package question

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/trivia/internal/store"
)

// SupportedMajor is the question document major version this build reads.
const SupportedMajor = "v1"

var (
	// ErrEmpty is returned when a source decodes to zero questions.
	ErrEmpty = errors.New("question source contains no questions")
	// ErrUnsupportedFormat is returned for file extensions no decoder handles.
	ErrUnsupportedFormat = errors.New("unsupported question source format")
	// ErrUnsupportedVersion is returned when a document declares an incompatible version.
	ErrUnsupportedVersion = errors.New("unsupported question document version")
)

// Source names where a loaded question set came from.
type Source string

const (
	SourceFile     Source = "file"
	SourceFallback Source = "fallback"
)

// document is the envelope form of a question file.
type document struct {
	Version   string     `json:"version" yaml:"version"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Load reads questions from path. The decoder is chosen by file extension:
// .json (also the default for no extension), .yaml/.yml, and
// .db/.sqlite/.sqlite3 for SQLite question banks.
func Load(ctx context.Context, path string) ([]Question, error) {
	var (
		questions []Question
		err       error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", "":
		questions, err = loadFile(path, decodeJSON)
	case ".yaml", ".yml":
		questions, err = loadFile(path, decodeYAML)
	case ".db", ".sqlite", ".sqlite3":
		questions, err = loadBank(ctx, path)
	default:
		err = ErrUnsupportedFormat
	}
	if err != nil {
		return nil, fmt.Errorf("load questions from %s: %w", path, err)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("load questions from %s: %w", path, ErrEmpty)
	}
	return questions, nil
}

// LoadOrDefault loads questions from path and falls back to the built-in set on
// any failure. The failure is logged, never returned. An empty path selects the
// built-in set directly.
func LoadOrDefault(ctx context.Context, path string, logger *slog.Logger) ([]Question, Source) {
	if path == "" {
		return Defaults(), SourceFallback
	}

	questions, err := Load(ctx, path)
	if err != nil {
		logger.WarnContext(ctx, "question source unavailable, using built-in questions",
			"path", path, "error", err)
		return Defaults(), SourceFallback
	}

	for i, q := range questions {
		if !q.HasValidAnswer() {
			logger.WarnContext(ctx, "question has an out-of-range correct answer",
				"path", path, "index", i, "correct", q.CorrectIndex, "options", len(q.Options))
		}
		if q.Points < 0 {
			logger.WarnContext(ctx, "question has negative points and will score nothing",
				"path", path, "index", i, "points", q.Points)
		}
	}

	logger.DebugContext(ctx, "questions loaded", "path", path, "count", len(questions))
	return questions, SourceFile
}

func loadFile(path string, decode func([]byte) ([]Question, error)) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decode(data)
}

func decodeJSON(data []byte) ([]Question, error) {
	if err := validateDocument(data); err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var questions []Question
		if err := json.Unmarshal(trimmed, &questions); err != nil {
			return nil, fmt.Errorf("decode questions: %w", err)
		}
		return questions, nil
	}

	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}
	return doc.Questions, nil
}

func decodeYAML(data []byte) ([]Question, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	node := root.Content[0]
	switch node.Kind {
	case yaml.SequenceNode:
		var questions []Question
		if err := node.Decode(&questions); err != nil {
			return nil, fmt.Errorf("decode questions: %w", err)
		}
		return questions, nil
	case yaml.MappingNode:
		var doc document
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		if err := checkVersion(doc.Version); err != nil {
			return nil, err
		}
		return doc.Questions, nil
	default:
		return nil, fmt.Errorf("decode yaml: expected a list or a mapping at the top level")
	}
}

// checkVersion accepts an empty version or any valid semver with the supported major.
func checkVersion(v string) error {
	if v == "" {
		return nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	if semver.Major(v) != SupportedMajor {
		return fmt.Errorf("%w: %s (want %s.x)", ErrUnsupportedVersion, v, SupportedMajor)
	}
	return nil
}

func loadBank(ctx context.Context, path string) ([]Question, error) {
	st, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	rows, err := st.Questions(ctx)
	if err != nil {
		return nil, err
	}

	questions := make([]Question, 0, len(rows))
	for _, r := range rows {
		questions = append(questions, Question{
			Text:         r.Text,
			Options:      r.Options,
			CorrectIndex: r.CorrectIndex,
			Category:     r.Category,
			Points:       r.Points,
		})
	}
	return questions, nil
}
