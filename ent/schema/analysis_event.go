package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalysisEvent records that one game was analyzed for one player.
type AnalysisEvent struct {
	ent.Schema
}

func (AnalysisEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnalysisEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("analysis_id").
			NotEmpty().
			Unique().
			Comment("UUID shared with the analysis' move events"),
		field.String("username").
			NotEmpty().
			Comment("Identity the game was analyzed for"),
		field.String("color").
			NotEmpty().
			Comment("white or black"),
		field.String("white").Default(""),
		field.String("black").Default(""),
		field.String("event_name").Default(""),
		field.String("game_date").Default(""),
		field.String("outcome").Default(""),
		field.Text("pgn").
			Comment("Game notation as submitted"),
		field.Int("move_count").
			Default(0).
			Comment("Number of classified moves"),
		field.String("source").
			Default("cli").
			Comment("cli, http, or lichess"),
	}
}

func (AnalysisEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username"),
	}
}
