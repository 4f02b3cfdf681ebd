package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/trivia/internal/question"
)

var questionsCmd = &cobra.Command{
	Use:   "questions [PATH]",
	Short: "Check a question source and list its questions",
	Long: "Loads a question source without the built-in fallback and lists every question " +
		"with its correct answer marked. With no PATH the configured source is used, or the " +
		"built-in set when none is configured.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}

		path := cfg.Questions
		if len(args) == 1 {
			path = args[0]
		}

		questions := question.Defaults()
		if path != "" {
			if questions, err = question.Load(cmd.Context(), path); err != nil {
				return err
			}
		}

		printQuestions(cmd.OutOrStdout(), questions)
		return nil
	},
}

func printQuestions(w io.Writer, questions []question.Question) {
	for i, q := range questions {
		category := q.Category
		if category == "" {
			category = "uncategorized"
		}
		fmt.Fprintf(w, "%d. %s [%s, %d points]\n", i+1, q.Text, category, q.Points)
		for j, opt := range q.Options {
			mark := " "
			if j == q.CorrectIndex {
				mark = "*"
			}
			fmt.Fprintf(w, "   %s %d) %s\n", mark, j+1, opt)
		}
		if !q.HasValidAnswer() {
			fmt.Fprintf(w, "   warning: correct answer %d is not one of the options\n", q.CorrectIndex+1)
		}
	}
	fmt.Fprintf(w, "\n%d questions, %d points in total\n", len(questions), question.TotalPoints(questions))
}
