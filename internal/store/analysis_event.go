package store

import (
	"context"
	"fmt"

	"github.com/abhisek/chesscoach/ent"
	"github.com/abhisek/chesscoach/ent/analysisevent"
	"github.com/abhisek/chesscoach/ent/moveevent"
	entschema "github.com/abhisek/chesscoach/ent/schema"
)

func (r *eventRepo) AppendAnalysis(ctx context.Context, data AnalysisEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	return createAnalysis(ctx, r.client.AnalysisEvent, seqNum, data)
}

func (r *eventRepo) AppendMoves(ctx context.Context, analysisID string, moves []MoveEventData) error {
	if len(moves) == 0 {
		return nil
	}
	first, err := r.seq.Reserve(ctx, len(moves))
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	return createMoves(ctx, r.client.MoveEvent, first, analysisID, moves)
}

func (r *eventRepo) AppendAnalysisWithMoves(ctx context.Context, data AnalysisEventData, moves []MoveEventData) error {
	// Sequence numbers come from a separate connection, so claim them before
	// the transaction takes the write lock.
	first, err := r.seq.Reserve(ctx, 1+len(moves))
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := createAnalysis(ctx, tx.AnalysisEvent, first, data); err != nil {
		return rollback(tx, err)
	}
	if err := createMoves(ctx, tx.MoveEvent, first+1, data.AnalysisID, moves); err != nil {
		return rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit analysis: %w", err)
	}
	return nil
}

func createAnalysis(ctx context.Context, c *ent.AnalysisEventClient, seqNum int64, data AnalysisEventData) error {
	builder := c.Create().
		SetSequence(seqNum).
		SetAnalysisID(data.AnalysisID).
		SetUsername(data.Username).
		SetColor(data.Color).
		SetWhite(data.White).
		SetBlack(data.Black).
		SetEventName(data.EventName).
		SetGameDate(data.GameDate).
		SetOutcome(data.Outcome).
		SetPgn(data.PGN).
		SetMoveCount(data.MoveCount)

	if data.Source != "" {
		builder = builder.SetSource(data.Source)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save analysis event: %w", err)
	}
	return nil
}

// createMoves numbers the moves consecutively from first.
func createMoves(ctx context.Context, c *ent.MoveEventClient, first int64, analysisID string, moves []MoveEventData) error {
	if len(moves) == 0 {
		return nil
	}

	builders := make([]*ent.MoveEventCreate, 0, len(moves))
	for i, m := range moves {
		builders = append(builders, c.Create().
			SetSequence(first+int64(i)).
			SetAnalysisID(analysisID).
			SetPly(m.Ply).
			SetMoveNumber(m.MoveNumber).
			SetUciMove(m.UCIMove).
			SetSan(m.SAN).
			SetFenBefore(m.FENBefore).
			SetFenAfter(m.FENAfter).
			SetEvalBefore(m.EvalBefore).
			SetEvalAfter(m.EvalAfter).
			SetClassification(m.Classification).
			SetBestMove(m.BestMove).
			SetBestReply(m.BestReply).
			SetPvBefore(toSummaries(m.CandidatesBefore)).
			SetPvAfter(toSummaries(m.CandidatesAfter)))
	}

	if _, err := c.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("save move events: %w", err)
	}
	return nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w: rollback: %v", err, rerr)
	}
	return err
}

func (r *eventRepo) QueryAnalyses(ctx context.Context, username string, opts QueryOpts) ([]AnalysisRecord, error) {
	q := r.client.AnalysisEvent.Query()

	if username != "" {
		q = q.Where(analysisevent.UsernameEqualFold(username))
	}
	if opts.After > 0 {
		q = q.Where(analysisevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(analysisevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(analysisevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(analysisevent.TimestampLTE(opts.To))
	}

	q = q.Order(ent.Desc(analysisevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}

	records := make([]AnalysisRecord, len(events))
	for i, e := range events {
		records[i] = toAnalysisRecord(e)
	}
	return records, nil
}

func (r *eventRepo) GetAnalysis(ctx context.Context, analysisID string) (*AnalysisRecord, []MoveRecord, error) {
	e, err := r.client.AnalysisEvent.Query().
		Where(analysisevent.AnalysisID(analysisID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("query analysis: %w", err)
	}

	moves, err := r.client.MoveEvent.Query().
		Where(moveevent.AnalysisID(analysisID)).
		Order(ent.Asc(moveevent.FieldPly)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("query moves: %w", err)
	}

	rec := toAnalysisRecord(e)
	out := make([]MoveRecord, len(moves))
	for i, m := range moves {
		out[i] = MoveRecord{
			ID:         m.ID,
			Sequence:   m.Sequence,
			Timestamp:  m.Timestamp,
			AnalysisID: m.AnalysisID,
			MoveEventData: MoveEventData{
				Ply:              m.Ply,
				MoveNumber:       m.MoveNumber,
				UCIMove:          m.UciMove,
				SAN:              m.San,
				FENBefore:        m.FenBefore,
				FENAfter:         m.FenAfter,
				EvalBefore:       m.EvalBefore,
				EvalAfter:        m.EvalAfter,
				Classification:   m.Classification,
				BestMove:         m.BestMove,
				BestReply:        m.BestReply,
				CandidatesBefore: fromSummaries(m.PvBefore),
				CandidatesAfter:  fromSummaries(m.PvAfter),
			},
		}
	}
	return &rec, out, nil
}

func (r *eventRepo) ClassificationCounts(ctx context.Context, username string) (map[string]int, error) {
	q := r.client.MoveEvent.Query()

	if username != "" {
		ids, err := r.client.AnalysisEvent.Query().
			Where(analysisevent.UsernameEqualFold(username)).
			Select(analysisevent.FieldAnalysisID).
			Strings(ctx)
		if err != nil {
			return nil, fmt.Errorf("query analysis ids: %w", err)
		}
		if len(ids) == 0 {
			return map[string]int{}, nil
		}
		q = q.Where(moveevent.AnalysisIDIn(ids...))
	}

	labels, err := q.Select(moveevent.FieldClassification).Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query classifications: %w", err)
	}

	counts := make(map[string]int)
	for _, l := range labels {
		counts[l]++
	}
	return counts, nil
}

func (r *eventRepo) Reset(ctx context.Context) error {
	if _, err := r.client.MoveEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete move events: %w", err)
	}
	if _, err := r.client.AnalysisEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete analysis events: %w", err)
	}
	if _, err := r.client.ExplanationEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete explanation events: %w", err)
	}
	if _, err := r.client.LLMRequestEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete LLM request events: %w", err)
	}
	return nil
}

func toAnalysisRecord(e *ent.AnalysisEvent) AnalysisRecord {
	return AnalysisRecord{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		AnalysisEventData: AnalysisEventData{
			AnalysisID: e.AnalysisID,
			Username:   e.Username,
			Color:      e.Color,
			White:      e.White,
			Black:      e.Black,
			EventName:  e.EventName,
			GameDate:   e.GameDate,
			Outcome:    e.Outcome,
			PGN:        e.Pgn,
			MoveCount:  e.MoveCount,
			Source:     e.Source,
		},
	}
}

func toSummaries(cs []Candidate) []entschema.CandidateSummary {
	out := make([]entschema.CandidateSummary, len(cs))
	for i, c := range cs {
		out[i] = entschema.CandidateSummary{Move: c.Move, Score: c.Score, Mate: c.Mate}
	}
	return out
}

func fromSummaries(ss []entschema.CandidateSummary) []Candidate {
	out := make([]Candidate, len(ss))
	for i, s := range ss {
		out[i] = Candidate{Move: s.Move, Score: s.Score, Mate: s.Mate}
	}
	return out
}
