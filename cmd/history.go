package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/chesscoach/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored analyses",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		list, err := s.EventRepo().QueryAnalyses(cmd.Context(), user, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query analyses: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(list) == 0 {
			fmt.Fprintln(out, "No analyses found.")
			return nil
		}

		fmt.Fprintf(out, "%-36s  %-16s  %-12s  %-28s  %5s  %s\n",
			"ID", "Analyzed", "Player", "Game", "Moves", "Source")
		fmt.Fprintln(out, strings.Repeat("─", 110))
		for _, a := range list {
			game := truncate(a.White+" vs "+a.Black, 28)
			fmt.Fprintf(out, "%-36s  %-16s  %-12s  %-28s  %5d  %s\n",
				a.AnalysisID,
				a.Timestamp.Local().Format("2006-01-02 15:04"),
				truncate(a.Username, 12),
				game,
				a.MoveCount,
				a.Source,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().StringP("user", "u", "", "Only analyses of this player")
	historyCmd.Flags().IntP("limit", "n", 20, "Number of analyses to show")
}
