// Package config loads the optional trivia configuration file.
package config

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/abhisek/trivia/internal/logging"
)

// DefaultTimePerQuestion is the per-question budget offered at game start.
const DefaultTimePerQuestion = 30

// ErrInvalid is wrapped by Validate failures.
var ErrInvalid = errors.New("invalid config")

// Config holds the settings a config file may provide.
type Config struct {
	// Questions is the path of the question source. Empty means built-in questions.
	Questions string `mapstructure:"questions"`

	// TimePerQuestion is the default budget in seconds; 0 disables the timer.
	TimePerQuestion int `mapstructure:"time_per_question"`

	LogLevel string `mapstructure:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		TimePerQuestion: DefaultTimePerQuestion,
		LogLevel:        logging.DefaultLevel,
	}
}

// Load reads file into config, keeping the values already in config for keys
// the file does not set. config must be a pointer to a struct.
func Load(file string, config any) error {
	v := viper.New()
	m := make(map[string]any)

	if err := mapstructure.Decode(config, &m); err != nil {
		return fmt.Errorf("mapstructure: %w", err)
	}

	if err := v.MergeConfigMap(m); err != nil {
		return fmt.Errorf("merge config map: %w", err)
	}

	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config from file %s: %w", file, err)
	}
	if err := v.Unmarshal(config); err != nil {
		return fmt.Errorf("unmarshal config from file %s: %w", file, err)
	}

	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.TimePerQuestion < 0 {
		return fmt.Errorf("%w: time_per_question must not be negative, got %d", ErrInvalid, c.TimePerQuestion)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}
	return nil
}
