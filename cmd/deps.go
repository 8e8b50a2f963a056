package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/chesscoach/internal/analysis"
	"github.com/abhisek/chesscoach/internal/coach"
	"github.com/abhisek/chesscoach/internal/engine"
	"github.com/abhisek/chesscoach/internal/llm"
	"github.com/abhisek/chesscoach/internal/store"
)

// addEngineFlags registers the engine overrides shared by commands that
// analyze games.
func addEngineFlags(cmd *cobra.Command) {
	cmd.Flags().String("engine", "", "UCI engine binary (overrides CHESSCOACH_ENGINE_PATH)")
	cmd.Flags().Int("depth", 0, "Search depth per position (overrides CHESSCOACH_ENGINE_DEPTH)")
	cmd.Flags().Duration("movetime", 0, "Search time per position, replacing the depth limit (overrides CHESSCOACH_ENGINE_MOVETIME_MS)")
	cmd.Flags().Int("engines", 0, "Number of engine processes (overrides CHESSCOACH_ENGINE_POOL_SIZE)")
}

func engineConfig(cmd *cobra.Command) engine.Config {
	cfg := engine.ConfigFromEnv()
	if p, _ := cmd.Flags().GetString("engine"); p != "" {
		cfg.Path = p
	}
	if mt, _ := cmd.Flags().GetDuration("movetime"); mt > 0 {
		cfg.MoveTime = mt
		cfg.Depth = 0
	}
	if d, _ := cmd.Flags().GetInt("depth"); d > 0 {
		cfg.Depth = d
	}
	if n, _ := cmd.Flags().GetInt("engines"); n > 0 {
		cfg.PoolSize = n
	}
	return cfg
}

// newAnalysisService starts the engine pool and returns a service that
// records into events. The caller must close the pool.
func newAnalysisService(ctx context.Context, cmd *cobra.Command, events analysis.Recorder) (*analysis.Service, *engine.Pool, error) {
	cfg := engineConfig(cmd)
	pool, err := engine.NewPool(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("start engine %q: %w", cfg.Path, err)
	}
	analyzer := analysis.NewAnalyzer(pool,
		analysis.WithCandidates(cfg.MultiPV),
		analysis.WithLogger(logger),
	)
	return analysis.NewService(analyzer, events, logger), pool, nil
}

// newCoach builds the coach from the LLM environment. LLM calls are
// recorded in repo.
func newCoach(ctx context.Context, repo store.EventRepo) (*coach.Service, error) {
	provider, err := llm.NewProviderFromEnv(ctx, repo, logger)
	if err != nil {
		return nil, err
	}
	return coach.NewService(provider, coach.DefaultConfig(), repo, logger), nil
}
