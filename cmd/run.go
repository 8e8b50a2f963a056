package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/chesscoach/internal/app"
)

var reviewCmd = &cobra.Command{
	Use:   "review [analysis-id]",
	Short: "Browse stored analyses and ask the coach about moves",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := ""
		if len(args) == 1 {
			id = args[0]
		}
		return runReview(cmd, id)
	},
}

func init() {
	reviewCmd.Flags().StringP("user", "u", "", "Only list analyses of this player")
}

// runReview opens the store, builds the coach, and launches the TUI.
func runReview(cmd *cobra.Command, analysisID string) error {
	ctx := cmd.Context()
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	eventRepo := s.EventRepo()
	user, _ := cmd.Flags().GetString("user")
	opts := app.Options{
		EventRepo:  eventRepo,
		Username:   user,
		AnalysisID: analysisID,
	}

	c, err := newCoach(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "LLM provider not configured:", err)
		fmt.Fprintln(cmd.ErrOrStderr(), "Stored explanations are shown; new ones are unavailable.")
	} else {
		opts.Coach = c
	}

	return app.Run(opts)
}
