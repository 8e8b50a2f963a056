package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MoveEvent records the classification of one move within an analysis.
type MoveEvent struct {
	ent.Schema
}

func (MoveEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// CandidateSummary is the serialized form of an engine candidate move.
type CandidateSummary struct {
	Move  string  `json:"move"`
	Score float64 `json:"score"`
	Mate  *int    `json:"mate,omitempty"`
}

func (MoveEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("analysis_id").NotEmpty(),
		field.Int("ply"),
		field.Int("move_number"),
		field.String("uci_move").NotEmpty(),
		field.String("san").Default(""),
		field.String("fen_before").NotEmpty(),
		field.String("fen_after").NotEmpty(),
		field.Float("eval_before").
			Comment("Pawns, white's frame"),
		field.Float("eval_after").
			Comment("Pawns, white's frame"),
		field.String("classification").NotEmpty(),
		field.String("best_move").Default(""),
		field.String("best_reply").Default(""),
		field.JSON("pv_before", []CandidateSummary{}).Optional(),
		field.JSON("pv_after", []CandidateSummary{}).Optional(),
	}
}

func (MoveEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("analysis_id", "ply"),
		index.Fields("classification"),
	}
}
