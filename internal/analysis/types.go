package analysis

import (
	"fmt"
	"math"
	"strings"
)

// Color identifies a side of the board.
type Color int

const (
	White Color = iota // first player
	Black              // second player
)

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	v, ok := ParseColor(string(b))
	if !ok {
		return fmt.Errorf("unknown color %q", b)
	}
	*c = v
	return nil
}

// ParseColor accepts "white"/"black" (or "w"/"b"), case-insensitively.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, true
	case "black", "b":
		return Black, true
	}
	return White, false
}

// Classification is the qualitative label given to a played move.
type Classification string

const (
	MissedWin  Classification = "Missed Win"
	Brilliant  Classification = "Brilliant"
	Excellent  Classification = "Excellent"
	Good       Classification = "Good"
	Neutral    Classification = "Neutral"
	Inaccuracy Classification = "Inaccuracy"
	Mistake    Classification = "Mistake"
	Blunder    Classification = "Blunder"
)

// AllClassifications lists every label, Missed Win first and then the
// threshold ladder from best to worst.
func AllClassifications() []Classification {
	return []Classification{MissedWin, Brilliant, Excellent, Good, Neutral, Inaccuracy, Mistake, Blunder}
}

// Rank orders the threshold ladder: Blunder is 0 and Brilliant is 6.
// Missed Win is not part of the ladder and ranks -1.
func (c Classification) Rank() int {
	switch c {
	case Blunder:
		return 0
	case Mistake:
		return 1
	case Inaccuracy:
		return 2
	case Neutral:
		return 3
	case Good:
		return 4
	case Excellent:
		return 5
	case Brilliant:
		return 6
	default:
		return -1
	}
}

// Valid reports whether c is one of the known labels.
func (c Classification) Valid() bool {
	return c == MissedWin || c.Rank() >= 0
}

const (
	// MateScorePawns is the magnitude a forced mate saturates to.
	MateScorePawns = 100.0

	// maxMateDistance caps how far the sentinel shrinks for long mates,
	// keeping every mate score within [90, 100] pawns.
	maxMateDistance = 100
)

// Evaluation is an engine score from the perspective of the side to move.
type Evaluation struct {
	// Score is the material/positional balance in pawns.
	Score float64 `json:"score"`

	// Mate is the forced-mate distance when one was found: positive means the
	// side to move mates in N, zero or negative means it is getting mated.
	Mate *int `json:"mate,omitempty"`
}

// MateIn builds an Evaluation for a forced mate of distance n.
func MateIn(n int) Evaluation {
	return Evaluation{Mate: &n}
}

// Pawns returns the score as a plain number. Mate scores map to a saturating
// sentinel: mate in N becomes +(100 - N/10) and mated in N becomes
// -(100 - |N|/10), with N capped at 100.
func (e Evaluation) Pawns() float64 {
	if e.Mate == nil {
		return e.Score
	}
	return mateSentinel(*e.Mate)
}

// Negate flips the evaluation to the other side's perspective.
func (e Evaluation) Negate() Evaluation {
	if e.Mate != nil {
		m := -*e.Mate
		return Evaluation{Mate: &m}
	}
	return Evaluation{Score: -e.Score}
}

func mateSentinel(n int) float64 {
	d := math.Min(math.Abs(float64(n)), maxMateDistance)
	v := MateScorePawns - d/10
	if n > 0 {
		return v
	}
	return -v
}

// Candidate is one of the engine's ranked moves for a position.
type Candidate struct {
	Move  string  `json:"move"`
	Score float64 `json:"score"`
	Mate  *int    `json:"mate,omitempty"`
}

// Evaluation returns the candidate's score as an Evaluation.
func (c Candidate) Evaluation() Evaluation {
	return Evaluation{Score: c.Score, Mate: c.Mate}
}

// MoveRecord is the analysis of one move made by the tracked player.
// EvalBefore and EvalAfter are expressed in white's frame (positive favors
// white); the candidate lists are kept in the engine's side-to-move frame.
type MoveRecord struct {
	Ply              int            `json:"ply"`
	MoveNumber       int            `json:"move_number"`
	Move             string         `json:"uci_move"`
	SAN              string         `json:"san"`
	FENBefore        string         `json:"fen_before"`
	FENAfter         string         `json:"fen_after"`
	EvalBefore       float64        `json:"evaluation_before"`
	EvalAfter        float64        `json:"evaluation_after"`
	Classification   Classification `json:"classification"`
	BestMove         string         `json:"best_move"`
	BestReply        string         `json:"best_reply,omitempty"`
	CandidatesBefore []Candidate    `json:"pv_before"`
	CandidatesAfter  []Candidate    `json:"pv_after"`
}

// Mover returns the side that made the move, read from FENBefore.
func (r MoveRecord) Mover() Color {
	if fields := strings.Fields(r.FENBefore); len(fields) > 1 && fields[1] == "b" {
		return Black
	}
	return White
}

// Result is the full output of analyzing one game for one player.
type Result struct {
	ID      string       `json:"id,omitempty"`
	Player  string       `json:"player"`
	Color   Color        `json:"color"`
	White   string       `json:"white"`
	Black   string       `json:"black"`
	Event   string       `json:"event,omitempty"`
	Date    string       `json:"date,omitempty"`
	Outcome string       `json:"outcome,omitempty"`
	Records []MoveRecord `json:"moves"`
}

// Counts tallies the classifications of the result's records.
func (r *Result) Counts() map[Classification]int {
	counts := make(map[Classification]int)
	for _, rec := range r.Records {
		counts[rec.Classification]++
	}
	return counts
}
