package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/tiles/internal/httpserver"
	"github.com/robalobadob/wordle/apps/tiles/internal/store"
)

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the game to browsers",
		Long: `Starts the HTTP server. Open the root URL in a browser and start typing.

Games are kept per browser session, in memory by default or in SQLite
when STORE_DSN (or storeDSN in the config file) names a database file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", `listen address (default ":$PORT")`)
	return cmd
}

func runServe(ctx context.Context, addr string) error {
	setupLogging(cfg.LogLevel, os.Stderr)
	if err := cfg.Validate(); err != nil {
		return err
	}

	src, err := answerSource(cfg)
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.StoreDSN)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Warn().Err(err).Msg("close store")
		}
	}()

	srv, err := httpserver.New(st, src, httpserver.Options{
		ClientOrigin:  cfg.ClientOrigin,
		SessionSecret: cfg.SessionSecret,
		CookieName:    cfg.CookieName,
		Secure:        cfg.Production(),
	})
	if err != nil {
		return err
	}

	if addr == "" {
		addr = ":" + cfg.Port
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("addr", addr).Str("store", cfg.StoreDSN).Bool("daily", cfg.Daily).Msg("starting tiles server")
	if err := srv.Start(ctx, addr); err != nil {
		log.Error().Err(err).Msg("server exited")
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
