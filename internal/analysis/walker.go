package analysis

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"
)

// DefaultCandidates is how many ranked moves are requested per position.
const DefaultCandidates = 3

// Analyzer replays games and classifies every move of one player.
// It is safe for concurrent use when its Evaluator is.
type Analyzer struct {
	evaluator  Evaluator
	candidates int
	log        zerolog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithCandidates sets how many ranked moves are requested per position.
func WithCandidates(k int) Option {
	return func(a *Analyzer) {
		if k > 0 {
			a.candidates = k
		}
	}
}

// WithLogger sets the logger used for per-move debug output.
func WithLogger(log zerolog.Logger) Option {
	return func(a *Analyzer) { a.log = log }
}

// NewAnalyzer creates an Analyzer backed by the given Evaluator.
func NewAnalyzer(e Evaluator, opts ...Option) *Analyzer {
	a := &Analyzer{
		evaluator:  e,
		candidates: DefaultCandidates,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze returns one MoveRecord per move made by identity in the PGN game,
// in game order.
func (a *Analyzer) Analyze(ctx context.Context, identity, pgn string) ([]MoveRecord, error) {
	res, err := a.Run(ctx, identity, pgn)
	if err != nil {
		return nil, err
	}
	return res.Records, nil
}

// Run is Analyze with the game's metadata attached to the records.
func (a *Analyzer) Run(ctx context.Context, identity, pgn string) (*Result, error) {
	game, err := ParseGame(pgn)
	if err != nil {
		return nil, err
	}

	white, black := tagValue(game, "White"), tagValue(game, "Black")
	color, err := ResolveColor(identity, white, black)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Player:  identity,
		Color:   color,
		White:   white,
		Black:   black,
		Event:   tagValue(game, "Event"),
		Date:    tagValue(game, "Date"),
		Outcome: string(game.Outcome()),
	}

	tracked := chessColor(color)
	positions := game.Positions()
	for i, move := range game.Moves() {
		before, after := positions[i], positions[i+1]
		if before.Turn() != tracked {
			continue
		}

		rec, err := a.analyzeMove(ctx, i+1, before, after, move, color)
		if err != nil {
			return nil, fmt.Errorf("analyze ply %d: %w", i+1, err)
		}
		a.log.Debug().
			Int("ply", rec.Ply).
			Str("move", rec.Move).
			Float64("before", rec.EvalBefore).
			Float64("after", rec.EvalAfter).
			Str("class", string(rec.Classification)).
			Msg("classified move")
		res.Records = append(res.Records, rec)
	}

	return res, nil
}

func (a *Analyzer) analyzeMove(ctx context.Context, ply int, before, after *chess.Position, move *chess.Move, mover Color) (MoveRecord, error) {
	fenBefore, fenAfter := before.String(), after.String()

	evalBefore, candidatesBefore, err := a.score(ctx, before)
	if err != nil {
		return MoveRecord{}, fmt.Errorf("evaluate position before move: %w", err)
	}
	if len(candidatesBefore) == 0 {
		return MoveRecord{}, fmt.Errorf("evaluator returned no candidates for %q", fenBefore)
	}

	evalAfter, candidatesAfter, err := a.score(ctx, after)
	if err != nil {
		return MoveRecord{}, fmt.Errorf("evaluate position after move: %w", err)
	}

	// Before the move the tracked player is to move; after it, the opponent.
	whiteBefore := whiteFrame(evalBefore.Pawns(), mover)
	whiteAfter := whiteFrame(evalAfter.Pawns(), mover.Other())

	played := chess.UCINotation{}.Encode(before, move)
	best := candidatesBefore[0]

	rec := MoveRecord{
		Ply:        ply,
		MoveNumber: fullMoveNumber(fenBefore),
		Move:       played,
		SAN:        chess.AlgebraicNotation{}.Encode(before, move),
		FENBefore:  fenBefore,
		FENAfter:   fenAfter,
		EvalBefore: whiteBefore,
		EvalAfter:  whiteAfter,
		Classification: Classify(ClassifyInput{
			EvalBefore: whiteBefore,
			EvalAfter:  whiteAfter,
			Mover:      mover,
			Played:     played,
			Best:       best,
		}),
		BestMove:         best.Move,
		CandidatesBefore: candidatesBefore,
		CandidatesAfter:  candidatesAfter,
	}
	if len(candidatesAfter) > 0 {
		rec.BestReply = candidatesAfter[0].Move
	}
	return rec, nil
}

// score evaluates a position and fetches its ranked candidates. Finished
// positions are scored locally since there is nothing for an engine to
// search.
func (a *Analyzer) score(ctx context.Context, pos *chess.Position) (Evaluation, []Candidate, error) {
	switch pos.Status() {
	case chess.Checkmate:
		return MateIn(0), nil, nil
	case chess.Stalemate:
		return Evaluation{}, nil, nil
	}

	fen := pos.String()
	eval, err := a.evaluator.Evaluate(ctx, fen)
	if err != nil {
		return Evaluation{}, nil, err
	}
	candidates, err := a.evaluator.TopCandidates(ctx, fen, a.candidates)
	if err != nil {
		return Evaluation{}, nil, err
	}
	return eval, candidates, nil
}

// ParseGame decodes the first game of a PGN text.
func ParseGame(pgn string) (*chess.Game, error) {
	if strings.TrimSpace(pgn) == "" {
		return nil, fmt.Errorf("%w: empty PGN", ErrInvalidInput)
	}
	opt, err := chess.PGN(strings.NewReader(pgn))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return chess.NewGame(opt), nil
}

// ResolveColor matches identity against the game's players, ignoring case.
func ResolveColor(identity, white, black string) (Color, error) {
	id := strings.TrimSpace(identity)
	switch {
	case id != "" && strings.EqualFold(id, strings.TrimSpace(white)):
		return White, nil
	case id != "" && strings.EqualFold(id, strings.TrimSpace(black)):
		return Black, nil
	}
	return White, fmt.Errorf("%w: %q is neither %q nor %q", ErrIdentityNotFound, identity, white, black)
}

func tagValue(game *chess.Game, key string) string {
	if tp := game.GetTagPair(key); tp != nil {
		return tp.Value
	}
	return ""
}

func chessColor(c Color) chess.Color {
	if c == Black {
		return chess.Black
	}
	return chess.White
}

// whiteFrame converts a side-to-move score into white's frame.
func whiteFrame(pawns float64, toMove Color) float64 {
	if toMove == Black {
		return -pawns
	}
	return pawns
}

func fullMoveNumber(fen string) int {
	fields := strings.Fields(fen)
	if len(fields) < 6 {
		return 0
	}
	n, err := strconv.Atoi(fields[5])
	if err != nil {
		return 0
	}
	return n
}
