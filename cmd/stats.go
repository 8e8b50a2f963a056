package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/chesscoach/internal/analysis"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how often each move label was earned",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		counts, err := s.EventRepo().ClassificationCounts(cmd.Context(), user)
		if err != nil {
			return fmt.Errorf("count classifications: %w", err)
		}

		out := cmd.OutOrStdout()
		total := 0
		for _, n := range counts {
			total += n
		}
		if total == 0 {
			fmt.Fprintln(out, "No moves analyzed yet.")
			return nil
		}

		who := "all players"
		if user != "" {
			who = user
		}
		fmt.Fprintf(out, "Move quality for %s (%d moves)\n", who, total)
		fmt.Fprintln(out, strings.Repeat("─", 48))
		for _, c := range analysis.AllClassifications() {
			n := counts[string(c)]
			share := float64(n) / float64(total)
			fmt.Fprintf(out, "%-11s %5d  %5.1f%%  %s\n", c, n, share*100, strings.Repeat("█", int(share*24+0.5)))
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().StringP("user", "u", "", "Only moves of this player")
}
