package analysis

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/chesscoach/internal/store"
)

// Recorder is the subset of the event store the Service writes to.
type Recorder interface {
	AppendAnalysisWithMoves(ctx context.Context, data store.AnalysisEventData, moves []store.MoveEventData) error
}

// Service analyzes games and records the results.
type Service struct {
	analyzer *Analyzer
	events   Recorder
	log      zerolog.Logger
}

// NewService creates a Service. events may be nil, in which case nothing is
// recorded.
func NewService(analyzer *Analyzer, events Recorder, log zerolog.Logger) *Service {
	return &Service{analyzer: analyzer, events: events, log: log}
}

// Game is one game to analyze.
type Game struct {
	Identity string
	PGN      string
	Source   string
}

// Analyze runs one game through the analyzer and records the result under a
// fresh analysis ID.
func (s *Service) Analyze(ctx context.Context, g Game) (*Result, error) {
	res, err := s.analyzer.Run(ctx, g.Identity, g.PGN)
	if err != nil {
		return nil, err
	}
	res.ID = uuid.New().String()

	s.log.Info().
		Str("analysis_id", res.ID).
		Str("player", res.Player).
		Str("color", res.Color.String()).
		Int("moves", len(res.Records)).
		Msg("game analyzed")

	if s.events == nil {
		return res, nil
	}
	if err := s.record(ctx, res, g); err != nil {
		// The analysis itself is still valid; only its history is lost.
		s.log.Warn().Err(err).Str("analysis_id", res.ID).Msg("failed to record analysis")
	}
	return res, nil
}

// AnalyzeAll analyzes independent games in parallel, at most limit at a
// time. Results are returned in input order. The first failure cancels the
// remaining games.
func (s *Service) AnalyzeAll(ctx context.Context, games []Game, limit int) ([]*Result, error) {
	results := make([]*Result, len(games))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, game := range games {
		g.Go(func() error {
			res, err := s.Analyze(ctx, game)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) record(ctx context.Context, res *Result, g Game) error {
	return s.events.AppendAnalysisWithMoves(ctx, store.AnalysisEventData{
		AnalysisID: res.ID,
		Username:   res.Player,
		Color:      res.Color.String(),
		White:      res.White,
		Black:      res.Black,
		EventName:  res.Event,
		GameDate:   res.Date,
		Outcome:    res.Outcome,
		PGN:        g.PGN,
		MoveCount:  len(res.Records),
		Source:     g.Source,
	}, ToMoveEvents(res.Records))
}

// ToMoveEvents converts records to their stored form.
func ToMoveEvents(records []MoveRecord) []store.MoveEventData {
	out := make([]store.MoveEventData, len(records))
	for i, r := range records {
		out[i] = store.MoveEventData{
			Ply:              r.Ply,
			MoveNumber:       r.MoveNumber,
			UCIMove:          r.Move,
			SAN:              r.SAN,
			FENBefore:        r.FENBefore,
			FENAfter:         r.FENAfter,
			EvalBefore:       r.EvalBefore,
			EvalAfter:        r.EvalAfter,
			Classification:   string(r.Classification),
			BestMove:         r.BestMove,
			BestReply:        r.BestReply,
			CandidatesBefore: toStoreCandidates(r.CandidatesBefore),
			CandidatesAfter:  toStoreCandidates(r.CandidatesAfter),
		}
	}
	return out
}

// FromMoveEvents rebuilds records from their stored form.
func FromMoveEvents(moves []store.MoveRecord) []MoveRecord {
	out := make([]MoveRecord, len(moves))
	for i, m := range moves {
		out[i] = MoveRecord{
			Ply:              m.Ply,
			MoveNumber:       m.MoveNumber,
			Move:             m.UCIMove,
			SAN:              m.SAN,
			FENBefore:        m.FENBefore,
			FENAfter:         m.FENAfter,
			EvalBefore:       m.EvalBefore,
			EvalAfter:        m.EvalAfter,
			Classification:   Classification(m.Classification),
			BestMove:         m.BestMove,
			BestReply:        m.BestReply,
			CandidatesBefore: fromStoreCandidates(m.CandidatesBefore),
			CandidatesAfter:  fromStoreCandidates(m.CandidatesAfter),
		}
	}
	return out
}

func toStoreCandidates(cs []Candidate) []store.Candidate {
	out := make([]store.Candidate, len(cs))
	for i, c := range cs {
		out[i] = store.Candidate{Move: c.Move, Score: c.Score, Mate: c.Mate}
	}
	return out
}

func fromStoreCandidates(cs []store.Candidate) []Candidate {
	out := make([]Candidate, len(cs))
	for i, c := range cs {
		out[i] = Candidate{Move: c.Move, Score: c.Score, Mate: c.Mate}
	}
	return out
}
