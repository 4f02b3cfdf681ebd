package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/trivia/internal/session"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the game rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		out := cmd.OutOrStdout()
		for _, line := range session.Rules(cfg.TimePerQuestion) {
			fmt.Fprintln(out, "- "+line)
		}
		return nil
	},
}
