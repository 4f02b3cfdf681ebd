package cmd

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/abhisek/trivia/internal/console"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the console (default)",
	RunE:  runConsole,
}

// runConsole plays the line-oriented game on stdin/stdout. SIGINT and SIGTERM
// end it with the usual farewell and a zero exit status.
func runConsole(cmd *cobra.Command, args []string) error {
	env, err := setupGame(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	runner := console.New(cmd.InOrStdin(), out, env.questions,
		console.WithDefaultTime(env.cfg.TimePerQuestion),
		console.WithLogger(env.logger),
		console.WithColor(isTerminal(out)),
	)
	return runner.Run(ctx)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
