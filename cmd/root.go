package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/trivia/internal/config"
	"github.com/abhisek/trivia/internal/logging"
	"github.com/abhisek/trivia/internal/question"
)

var rootCmd = &cobra.Command{
	Use:   "trivia",
	Short: "Terminal trivia quiz",
	Long:  "Trivia is a single-player multiple-choice quiz with an optional countdown and speed bonus.",
	// Runtime failures are reported by the game itself.
	SilenceUsage: true,
	RunE:         runConsole,
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	addGameFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(versionCmd)
}

func addGameFlags(c *cobra.Command) {
	flags := c.PersistentFlags()
	flags.String("questions", "", "Question source: .json, .yaml or a SQLite bank (.db); built-in questions when empty")
	flags.Int("time", config.DefaultTimePerQuestion, "Default seconds per question offered at game start, 0 for no limit")
	flags.String("config", "", "Path to a YAML config file")
	flags.String("log-level", logging.DefaultLevel, "Log level: debug, info, warn or error")
}

// resolveConfig starts from the defaults, applies the --config file and then
// any flag set explicitly on the command line.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	flags := cmd.Flags()

	if path, _ := flags.GetString("config"); path != "" {
		if err := config.Load(path, &cfg); err != nil {
			return cfg, err
		}
	}

	if flags.Changed("questions") {
		cfg.Questions, _ = flags.GetString("questions")
	}
	if flags.Changed("time") {
		cfg.TimePerQuestion, _ = flags.GetInt("time")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// gameEnv holds what the game commands share.
type gameEnv struct {
	cfg       config.Config
	logger    *slog.Logger
	questions []question.Question
}

// setupGame resolves the config, builds the stderr logger and loads the
// questions, falling back to the built-in set when the source is unusable.
func setupGame(cmd *cobra.Command) (*gameEnv, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	questions, source := question.LoadOrDefault(cmd.Context(), cfg.Questions, logger)
	logger.Debug("question set ready", "source", string(source), "count", len(questions))

	return &gameEnv{cfg: cfg, logger: logger, questions: questions}, nil
}
