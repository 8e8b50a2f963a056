package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExplanationEvent records coaching text produced for a move or a game.
type ExplanationEvent struct {
	ent.Schema
}

func (ExplanationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ExplanationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("analysis_id").
			Default("").
			Comment("Empty for ad-hoc explanations"),
		field.Int("ply").
			Default(0).
			Comment("0 for whole-game explanations"),
		field.String("kind").
			NotEmpty().
			Comment("move, game, or question"),
		field.String("question").Default(""),
		field.Text("summary"),
		field.Text("body").Default(""),
	}
}

func (ExplanationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("analysis_id", "ply"),
	}
}
