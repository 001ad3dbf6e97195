package cmd

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/tiles/internal/tui"
)

func newPlayCmd() *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Long: `Plays a game in the terminal.

Type letters, Backspace to delete, Enter to submit. After the game:
r or Enter starts a new one, c copies the result, q quits. Esc quits any time.

With --plain, guesses are read one per line from stdin ("-" deletes a
letter) and the board is printed after each guess.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sink, closeSink, err := logSink(cfg.LogFile)
			if err != nil {
				return err
			}
			defer closeSink()
			// Logs must never draw over the board.
			setupLogging(cfg.LogLevel, sink)

			src, err := answerSource(cfg)
			if err != nil {
				return err
			}
			if plain {
				return tui.RunPlain(cmd.Context(), src, cmd.InOrStdin(), cmd.OutOrStdout())
			}
			_, err = tea.NewProgram(tui.New(src), tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "line-oriented mode without cursor control")
	return cmd
}

// logSink opens the terminal client's log destination; an empty path discards logs.
func logSink(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
