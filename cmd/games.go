package cmd

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/abhisek/chesscoach/internal/analysis"
	"github.com/abhisek/chesscoach/internal/lichess"
)

var gamesCmd = &cobra.Command{
	Use:   "games <lichess-username>",
	Short: "List a player's recent Lichess games",
	Long: "Fetches the player's games from Lichess. With --pick you choose one game\n" +
		"interactively and it is analyzed for that player.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		username := args[0]
		max, _ := cmd.Flags().GetInt("max")
		perf, _ := cmd.Flags().GetString("perf")
		pick, _ := cmd.Flags().GetBool("pick")

		client := lichess.NewClientFromEnv()
		games, err := client.UserGames(ctx, username, lichess.GamesOptions{Max: max, PerfType: perf})
		if err != nil {
			return fmt.Errorf("fetch games: %w", err)
		}
		if len(games) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No games found for %s.\n", username)
			return nil
		}

		if !pick {
			for _, g := range games {
				fmt.Fprintln(cmd.OutOrStdout(), gameLine(g, username))
			}
			return nil
		}

		items := make([]string, len(games))
		for i, g := range games {
			items[i] = gameLine(g, username)
		}
		prompt := promptui.Select{
			Label: "Which game do you want to review?",
			Items: items,
			Size:  10,
		}
		idx, _, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}
			return err
		}
		chosen := games[idx]
		if chosen.PGN == "" {
			return fmt.Errorf("game %s has no PGN", chosen.ID)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		svc, pool, err := newAnalysisService(ctx, cmd, s.EventRepo())
		if err != nil {
			return err
		}
		defer pool.Close()

		res, err := svc.Analyze(ctx, analysis.Game{Identity: username, PGN: chosen.PGN, Source: "lichess:" + chosen.ID})
		if err != nil {
			return err
		}
		printResult(cmd.OutOrStdout(), res)
		return nil
	},
}

func init() {
	gamesCmd.Flags().IntP("max", "n", 20, "Number of games to fetch")
	gamesCmd.Flags().String("perf", "", "Only games of this speed (bullet, blitz, rapid, classical)")
	gamesCmd.Flags().Bool("pick", false, "Choose a game and analyze it")
	addEngineFlags(gamesCmd)
}

func gameLine(g lichess.Game, username string) string {
	opp := g.Opponent(username)
	rating := ""
	if opp.Rating > 0 {
		rating = fmt.Sprintf(" (%d)", opp.Rating)
	}
	return fmt.Sprintf("%s  %-9s  %-5s vs %s%s  %s",
		g.CreatedAt.Local().Format("2006-01-02"), g.Speed, g.Side(username), opp.Name, rating, g.Result(username))
}
