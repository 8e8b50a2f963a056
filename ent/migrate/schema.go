// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisEventsColumns holds the columns for the "analysis_events" table.
	AnalysisEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "analysis_id", Type: field.TypeString, Unique: true},
		{Name: "username", Type: field.TypeString},
		{Name: "color", Type: field.TypeString},
		{Name: "white", Type: field.TypeString, Default: ""},
		{Name: "black", Type: field.TypeString, Default: ""},
		{Name: "event_name", Type: field.TypeString, Default: ""},
		{Name: "game_date", Type: field.TypeString, Default: ""},
		{Name: "outcome", Type: field.TypeString, Default: ""},
		{Name: "pgn", Type: field.TypeString, Size: 2147483647},
		{Name: "move_count", Type: field.TypeInt, Default: 0},
		{Name: "source", Type: field.TypeString, Default: "cli"},
	}
	// AnalysisEventsTable holds the schema information for the "analysis_events" table.
	AnalysisEventsTable = &schema.Table{
		Name:       "analysis_events",
		Columns:    AnalysisEventsColumns,
		PrimaryKey: []*schema.Column{AnalysisEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analysisevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[1]},
			},
			{
				Name:    "analysisevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[2]},
			},
			{
				Name:    "analysisevent_username",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[4]},
			},
		},
	}
	// ExplanationEventsColumns holds the columns for the "explanation_events" table.
	ExplanationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "analysis_id", Type: field.TypeString, Default: ""},
		{Name: "ply", Type: field.TypeInt, Default: 0},
		{Name: "kind", Type: field.TypeString},
		{Name: "question", Type: field.TypeString, Default: ""},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// ExplanationEventsTable holds the schema information for the "explanation_events" table.
	ExplanationEventsTable = &schema.Table{
		Name:       "explanation_events",
		Columns:    ExplanationEventsColumns,
		PrimaryKey: []*schema.Column{ExplanationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "explanationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ExplanationEventsColumns[1]},
			},
			{
				Name:    "explanationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ExplanationEventsColumns[2]},
			},
			{
				Name:    "explanationevent_analysis_id_ply",
				Unique:  false,
				Columns: []*schema.Column{ExplanationEventsColumns[3], ExplanationEventsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// MoveEventsColumns holds the columns for the "move_events" table.
	MoveEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "analysis_id", Type: field.TypeString},
		{Name: "ply", Type: field.TypeInt},
		{Name: "move_number", Type: field.TypeInt},
		{Name: "uci_move", Type: field.TypeString},
		{Name: "san", Type: field.TypeString, Default: ""},
		{Name: "fen_before", Type: field.TypeString},
		{Name: "fen_after", Type: field.TypeString},
		{Name: "eval_before", Type: field.TypeFloat64},
		{Name: "eval_after", Type: field.TypeFloat64},
		{Name: "classification", Type: field.TypeString},
		{Name: "best_move", Type: field.TypeString, Default: ""},
		{Name: "best_reply", Type: field.TypeString, Default: ""},
		{Name: "pv_before", Type: field.TypeJSON, Nullable: true},
		{Name: "pv_after", Type: field.TypeJSON, Nullable: true},
	}
	// MoveEventsTable holds the schema information for the "move_events" table.
	MoveEventsTable = &schema.Table{
		Name:       "move_events",
		Columns:    MoveEventsColumns,
		PrimaryKey: []*schema.Column{MoveEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "moveevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MoveEventsColumns[1]},
			},
			{
				Name:    "moveevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MoveEventsColumns[2]},
			},
			{
				Name:    "moveevent_analysis_id_ply",
				Unique:  false,
				Columns: []*schema.Column{MoveEventsColumns[3], MoveEventsColumns[4]},
			},
			{
				Name:    "moveevent_classification",
				Unique:  false,
				Columns: []*schema.Column{MoveEventsColumns[12]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisEventsTable,
		ExplanationEventsTable,
		LlmRequestEventsTable,
		MoveEventsTable,
	}
)

func init() {
}
