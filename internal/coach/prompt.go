package coach

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/chesscoach/internal/analysis"
)

const systemPrompt = `You are a Grandmaster Chess Teacher who explains to students why their moves are good or bad in simple language. You are given engine analysis: evaluations in pawns from White's point of view (positive favors White, values near +/-100 mean a forced mate), the move played, its classification and the engine's preferred moves in UCI notation. Be concrete and pedagogical. Refer to moves in standard algebraic notation where you can. Never invent evaluations that are not in the report.`

func writeCandidates(b *strings.Builder, label string, cands []analysis.Candidate) {
	if len(cands) == 0 {
		return
	}
	parts := make([]string, len(cands))
	for i, c := range cands {
		if c.Mate != nil {
			parts[i] = fmt.Sprintf("%s (mate %d)", c.Move, *c.Mate)
		} else {
			parts[i] = fmt.Sprintf("%s (%+.2f)", c.Move, c.Score)
		}
	}
	fmt.Fprintf(b, "%s (side to move's view): %s\n", label, strings.Join(parts, ", "))
}

func moveLine(rec analysis.MoveRecord) string {
	dots := "."
	if rec.Mover() == analysis.Black {
		dots = "..."
	}
	return fmt.Sprintf("%d%s %s (%s)", rec.MoveNumber, dots, rec.SAN, rec.Move)
}

func buildMoveMessage(rec analysis.MoveRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Player: %s\n", rec.Mover())
	fmt.Fprintf(&b, "Position before (FEN): %s\n", rec.FENBefore)
	fmt.Fprintf(&b, "Move played: %s\n", moveLine(rec))
	fmt.Fprintf(&b, "Evaluation before: %+.2f\n", rec.EvalBefore)
	fmt.Fprintf(&b, "Evaluation after: %+.2f\n", rec.EvalAfter)
	fmt.Fprintf(&b, "Classification: %s\n", rec.Classification)
	fmt.Fprintf(&b, "Engine best move: %s\n", rec.BestMove)
	writeCandidates(&b, "Engine candidates before the move", rec.CandidatesBefore)
	if rec.BestReply != "" {
		fmt.Fprintf(&b, "Opponent's best reply: %s\n", rec.BestReply)
	}
	writeCandidates(&b, "Engine candidates after the move", rec.CandidatesAfter)

	b.WriteString(`
Instructions:
Explain to the player why this move received its classification. If it was a mistake, blunder or missed win, show what the best move would have achieved. If it was good, explain the idea behind it so the player can repeat it.`)
	return b.String()
}

// selectMoves keeps the max worst-ranked records, restored to game order.
func selectMoves(records []analysis.MoveRecord, max int) []analysis.MoveRecord {
	if max <= 0 || len(records) <= max {
		return records
	}
	picked := append([]analysis.MoveRecord(nil), records...)
	sort.SliceStable(picked, func(i, j int) bool {
		return picked[i].Classification.Rank() < picked[j].Classification.Rank()
	})
	picked = picked[:max]
	sort.Slice(picked, func(i, j int) bool { return picked[i].Ply < picked[j].Ply })
	return picked
}

func buildGameMessage(records []analysis.MoveRecord, max int) string {
	var b strings.Builder

	if len(records) > 0 {
		fmt.Fprintf(&b, "Player: %s\n", records[0].Mover())
	}
	counts := make(map[analysis.Classification]int)
	for _, rec := range records {
		counts[rec.Classification]++
	}
	b.WriteString("Classification counts:")
	for _, c := range analysis.AllClassifications() {
		if n := counts[c]; n > 0 {
			fmt.Fprintf(&b, " %s=%d", c, n)
		}
	}
	b.WriteString("\n\nMoves:\n")
	for _, rec := range selectMoves(records, max) {
		fmt.Fprintf(&b, "- %s: %s, eval %+.2f -> %+.2f, engine preferred %s\n",
			moveLine(rec), rec.Classification, rec.EvalBefore, rec.EvalAfter, rec.BestMove)
	}

	b.WriteString(`
Instructions:
Review the player's game as their coach. Explain why the mistakes, blunders and missed wins were costly and what the better moves would have achieved. Acknowledge the strong moves briefly. Finish with the habits that would have prevented the worst moves.`)
	return b.String()
}

func buildReportMessage(report string) string {
	return "Here is the analysis report:\n" + report + `

Instructions:
Explain the reasoning behind this analysis as a teacher would to a student eager to improve. Explain why moves are considered mistakes, blunders, missed wins or good moves and describe their implications.`
}

func buildQuestionContext(rec analysis.MoveRecord) string {
	var b strings.Builder
	b.WriteString("We are reviewing this move together.\n")
	fmt.Fprintf(&b, "Position before (FEN): %s\n", rec.FENBefore)
	fmt.Fprintf(&b, "Move played: %s, classified as %s\n", moveLine(rec), rec.Classification)
	fmt.Fprintf(&b, "Evaluation: %+.2f -> %+.2f. Engine best move: %s\n", rec.EvalBefore, rec.EvalAfter, rec.BestMove)
	return b.String()
}
