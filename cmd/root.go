package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/chesscoach/internal/store"
)

// logger is configured from --log-level before any command runs.
var logger = zerolog.Nop()

var rootCmd = &cobra.Command{
	Use:   "chesscoach",
	Short: "Engine-backed chess move review with an AI coach",
	Long: "chesscoach replays your games through a UCI engine, labels every move you made\n" +
		"from Brilliant to Blunder, and asks an LLM coach to explain the mistakes.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		if level == "" {
			level = os.Getenv("CHESSCOACH_LOG_LEVEL")
		}
		l, err := newLogger(level)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReview(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CHESSCOACH_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default warn)")
	rootCmd.Flags().StringP("user", "u", "", "Only list analyses of this player")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds a console logger on stderr.
func newLogger(level string) (zerolog.Logger, error) {
	lvl := zerolog.WarnLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CHESSCOACH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the database selected by resolveDBPath.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
