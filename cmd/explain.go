package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/chesscoach/internal/analysis"
)

var explainCmd = &cobra.Command{
	Use:   "explain <analysis-id>",
	Short: "Ask the coach about a stored analysis",
	Long: "Without flags the coach reviews the whole game. --ply explains one move and\n" +
		"--ask sends a question about that move instead.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		ply, _ := cmd.Flags().GetInt("ply")
		question, _ := cmd.Flags().GetString("ask")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		repo := s.EventRepo()

		header, moves, err := repo.GetAnalysis(ctx, args[0])
		if err != nil {
			return fmt.Errorf("load analysis: %w", err)
		}
		if header == nil {
			return fmt.Errorf("analysis %s not found", args[0])
		}
		records := analysis.FromMoveEvents(moves)

		c, err := newCoach(ctx, repo)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}
		c = c.ForAnalysis(header.AnalysisID)
		out := cmd.OutOrStdout()

		if ply == 0 {
			if question != "" {
				return fmt.Errorf("--ask needs --ply")
			}
			exp, err := c.ExplainGame(ctx, records)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, exp.String())
			return nil
		}

		rec, ok := findPly(records, ply)
		if !ok {
			return fmt.Errorf("analysis %s has no move by %s at ply %d", header.AnalysisID, header.Username, ply)
		}
		if question != "" {
			answer, err := c.Ask(ctx, rec, question)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, answer)
			return nil
		}
		exp, err := c.ExplainMove(ctx, rec)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d. %s  %s\n\n%s\n", rec.MoveNumber, rec.SAN, rec.Classification, exp.String())
		return nil
	},
}

func init() {
	explainCmd.Flags().Int("ply", 0, "Half-move number of the move to explain")
	explainCmd.Flags().String("ask", "", "Question about the move at --ply")
}

func findPly(records []analysis.MoveRecord, ply int) (analysis.MoveRecord, bool) {
	for _, rec := range records {
		if rec.Ply == ply {
			return rec, true
		}
	}
	return analysis.MoveRecord{}, false
}
