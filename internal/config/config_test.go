package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, "trivia.yaml", "questions: bank.db\ntime_per_question: 15\n")

	c := Default()
	require.NoError(t, Load(path, &c))

	assert.Equal(t, "bank.db", c.Questions)
	assert.Equal(t, 15, c.TimePerQuestion)
	assert.Equal(t, "warn", c.LogLevel, "unset keys keep their defaults")
}

func TestLoad_ZeroDisablesTimer(t *testing.T) {
	path := writeFile(t, "trivia.yaml", "time_per_question: 0\nlog_level: debug\n")

	c := Default()
	require.NoError(t, Load(path, &c))

	assert.Equal(t, 0, c.TimePerQuestion)
	assert.Equal(t, "debug", c.LogLevel)
	assert.NoError(t, c.Validate())
}

func TestLoad_IgnoresEnvironment(t *testing.T) {
	t.Setenv("TIME_PER_QUESTION", "99")
	path := writeFile(t, "trivia.yaml", "questions: q.json\n")

	c := Default()
	require.NoError(t, Load(path, &c))
	assert.Equal(t, DefaultTimePerQuestion, c.TimePerQuestion)
}

func TestLoad_MissingFile(t *testing.T) {
	c := Default()
	err := Load(filepath.Join(t.TempDir(), "nope.yaml"), &c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestLoad_Malformed(t *testing.T) {
	path := writeFile(t, "trivia.yaml", "time_per_question: [1, 2\n")

	c := Default()
	assert.Error(t, Load(path, &c))
}

func TestValidate(t *testing.T) {
	c := Default()
	assert.NoError(t, c.Validate())

	c.TimePerQuestion = -1
	assert.True(t, errors.Is(c.Validate(), ErrInvalid))

	c = Default()
	c.LogLevel = "chatty"
	assert.True(t, errors.Is(c.Validate(), ErrInvalid))
}
