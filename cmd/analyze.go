package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/chesscoach/internal/analysis"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Classify every move a player made in a PGN game",
	Long: "Reads a PGN game from --pgn (or stdin), evaluates each move made by --user\n" +
		"with the UCI engine and stores the classified moves.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		user, _ := cmd.Flags().GetString("user")
		path, _ := cmd.Flags().GetString("pgn")
		asJSON, _ := cmd.Flags().GetBool("json")
		explain, _ := cmd.Flags().GetBool("explain")

		pgn, err := readPGN(cmd.InOrStdin(), path)
		if err != nil {
			return err
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

		res, err := svc.Analyze(ctx, analysis.Game{Identity: user, PGN: pgn, Source: "cli"})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
		printResult(out, res)

		if !explain {
			return nil
		}
		c, err := newCoach(ctx, repo)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}
		exp, err := c.ForAnalysis(res.ID).ExplainGame(ctx, res.Records)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, exp.String())
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringP("user", "u", "", "Player whose moves are classified (matched against the White/Black tags)")
	analyzeCmd.Flags().String("pgn", "", "PGN file to read; stdin when empty or \"-\"")
	analyzeCmd.Flags().Bool("json", false, "Print the result as JSON")
	analyzeCmd.Flags().Bool("explain", false, "Ask the coach for a game review afterwards")
	analyzeCmd.MarkFlagRequired("user")
	addEngineFlags(analyzeCmd)
}

func readPGN(stdin io.Reader, path string) (string, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read PGN: %w", err)
	}
	return string(data), nil
}

// printResult writes a move table followed by classification totals.
func printResult(w io.Writer, res *analysis.Result) {
	fmt.Fprintf(w, "%s vs %s", res.White, res.Black)
	if res.Date != "" {
		fmt.Fprintf(w, "  (%s)", res.Date)
	}
	fmt.Fprintf(w, "  %s playing %s\n", res.Player, res.Color)
	if res.ID != "" {
		fmt.Fprintf(w, "Analysis %s\n", res.ID)
	}
	fmt.Fprintln(w, strings.Repeat("─", 64))
	fmt.Fprintf(w, "%-12s  %-10s  %7s  %7s  %s\n", "Move", "Label", "Before", "After", "Best")
	fmt.Fprintln(w, strings.Repeat("─", 64))

	for _, rec := range res.Records {
		move := fmt.Sprintf("%d. %s", rec.MoveNumber, rec.SAN)
		if rec.Mover() == analysis.Black {
			move = fmt.Sprintf("%d... %s", rec.MoveNumber, rec.SAN)
		}
		best := ""
		if rec.BestMove != rec.Move {
			best = rec.BestMove
		}
		fmt.Fprintf(w, "%-12s  %-10s  %+7.2f  %+7.2f  %s\n",
			move, rec.Classification, rec.EvalBefore, rec.EvalAfter, best)
	}

	fmt.Fprintln(w, strings.Repeat("─", 64))
	counts := res.Counts()
	var parts []string
	for _, c := range analysis.AllClassifications() {
		if n := counts[c]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", c, n))
		}
	}
	fmt.Fprintln(w, strings.Join(parts, ", "))
}
