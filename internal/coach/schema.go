package coach

import "github.com/abhisek/chesscoach/internal/llm"

func explanationDefinition(summary, why, plan string) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": summary,
			},
			"why": map[string]any{
				"type":        "string",
				"description": why,
			},
			"better_plan": map[string]any{
				"type":        "string",
				"description": plan,
			},
			"key_concepts": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 chess concepts the student should study, 1-4 words each",
			},
		},
		"required":             []any{"summary", "why", "better_plan", "key_concepts"},
		"additionalProperties": false,
	}
}

// MoveExplanationSchema is the structured output for a single move.
var MoveExplanationSchema = &llm.Schema{
	Name:        "move-explanation",
	Description: "A coach's explanation of one move and its classification",
	Definition: explanationDefinition(
		"One sentence verdict on the move (10-25 words)",
		"Why the engine judged the move this way: threats, material, king safety, piece activity (2-4 sentences)",
		"What the engine's best move achieves instead, or how to follow up if the move was good (1-3 sentences)",
	),
}

// GameExplanationSchema is the structured output for a whole game.
var GameExplanationSchema = &llm.Schema{
	Name:        "game-explanation",
	Description: "A coach's review of the player's moves across one game",
	Definition: explanationDefinition(
		"Two or three sentence overview of how the player performed",
		"The turning points of the game and why the worst moves were costly (3-6 sentences)",
		"The habits the player should build to avoid these mistakes (2-4 sentences)",
	),
}
