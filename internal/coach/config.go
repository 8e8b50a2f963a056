package coach

// Config holds explanation generation settings.
type Config struct {
	MoveMaxTokens   int
	GameMaxTokens   int
	AnswerMaxTokens int
	Temperature     float64

	// MaxGameMoves caps how many records are quoted in a game prompt. The
	// worst-classified moves are kept when a game is longer.
	MaxGameMoves int
}

// DefaultConfig returns sensible defaults for explanation generation.
func DefaultConfig() Config {
	return Config{
		MoveMaxTokens:   700,
		GameMaxTokens:   1500,
		AnswerMaxTokens: 600,
		Temperature:     0.4,
		MaxGameMoves:    40,
	}
}
