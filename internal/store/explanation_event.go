package store

import (
	"context"
	"fmt"

	"github.com/abhisek/chesscoach/ent"
	"github.com/abhisek/chesscoach/ent/explanationevent"
)

func (r *eventRepo) AppendExplanation(ctx context.Context, data ExplanationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ExplanationEvent.Create().
		SetSequence(seqNum).
		SetAnalysisID(data.AnalysisID).
		SetPly(data.Ply).
		SetKind(data.Kind).
		SetQuestion(data.Question).
		SetSummary(data.Summary).
		SetBody(data.Body).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save explanation event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryExplanations(ctx context.Context, analysisID string) ([]ExplanationRecord, error) {
	events, err := r.client.ExplanationEvent.Query().
		Where(explanationevent.AnalysisID(analysisID)).
		Order(ent.Asc(explanationevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query explanations: %w", err)
	}

	out := make([]ExplanationRecord, len(events))
	for i, e := range events {
		out[i] = ExplanationRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			ExplanationEventData: ExplanationEventData{
				AnalysisID: e.AnalysisID,
				Ply:        e.Ply,
				Kind:       e.Kind,
				Question:   e.Question,
				Summary:    e.Summary,
				Body:       e.Body,
			},
		}
	}
	return out, nil
}
