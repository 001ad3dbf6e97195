package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/tiles/internal/config"
	"github.com/robalobadob/wordle/apps/tiles/internal/game"
	"github.com/robalobadob/wordle/apps/tiles/internal/words"
)

var (
	cfgFile string
	cfg     = config.Default()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tiles",
	Short: "Guess the hidden five-letter word in six tries",
	Long: `tiles is a five-letter word guessing game.

Each guess colors its tiles: green for a letter in the right spot,
yellow for a letter that is in the word elsewhere, dark for a letter
that is not in the word. Play it in the browser with "tiles serve" or
right here in the terminal with "tiles play".`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// that are not about command-line usage.
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "tiles version %s\n" .Version}}`)
	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file (default $TILES_CONFIG)")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// setupLogging configures the global zerolog logger. Terminals get the
// human-readable console writer, everything else JSON lines.
func setupLogging(level string, w io.Writer) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		w = zerolog.ConsoleWriter{Out: f, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// answerSource builds the word source described by c.
func answerSource(c config.Config) (game.WordSource, error) {
	list, err := words.Load(c.AnswersFile)
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}
	if c.Daily {
		return words.Daily{List: list, Salt: c.DailySalt}, nil
	}
	return list, nil
}
