package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/trivia/internal/app"
	"github.com/abhisek/trivia/internal/console"
	sessionscreen "github.com/abhisek/trivia/internal/screens/session"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in the full-screen interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setupGame(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		err = app.Run(ctx, sessionscreen.Options{
			Questions:   env.questions,
			DefaultTime: env.cfg.TimePerQuestion,
			Logger:      env.logger,
		})
		if err != nil {
			return fmt.Errorf("run interface: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), console.Farewell)
		return nil
	},
}
