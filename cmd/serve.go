package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/chesscoach/internal/lichess"
	"github.com/abhisek/chesscoach/internal/notify"
	"github.com/abhisek/chesscoach/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: "Serves the analyze, explain, Lichess proxy and send-details endpoints.\n" +
		"Explanations are disabled when no LLM provider is configured.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg := server.ConfigFromEnv()
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}
		if origin, _ := cmd.Flags().GetString("frontend-url"); origin != "" {
			cfg.FrontendURL = origin
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		repo := s.EventRepo()

		svc, pool, err := newAnalysisService(ctx, cmd, repo)
		if err != nil {
			return err
		}
		defer pool.Close()

		deps := server.Deps{
			Analyzer: svc,
			Games:    lichess.NewClientFromEnv(),
		}
		if c, err := newCoach(ctx, repo); err != nil {
			logger.Warn().Err(err).Msg("LLM provider not configured, /api/explain is disabled")
		} else {
			deps.Explainer = c
		}
		if tg := notify.FromEnv(); tg.Configured() {
			deps.Notifier = tg
		} else {
			logger.Warn().Msg("Telegram not configured, /send-details is disabled")
		}

		logger.Info().Str("addr", cfg.Addr).Msg("listening")
		return server.New(cfg, deps, logger).ListenAndServe(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides CHESSCOACH_ADDR, default :8000)")
	serveCmd.Flags().String("frontend-url", "", "Allowed CORS origin (overrides CHESSCOACH_FRONTEND_URL)")
	addEngineFlags(serveCmd)
}
