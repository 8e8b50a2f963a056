package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Candidate is a ranked engine move as persisted with a move event.
type Candidate struct {
	Move  string
	Score float64
	Mate  *int
}

// AnalysisEventData captures the header of one analyzed game.
type AnalysisEventData struct {
	AnalysisID string
	Username   string
	Color      string
	White      string
	Black      string
	EventName  string
	GameDate   string
	Outcome    string
	PGN        string
	MoveCount  int
	Source     string
}

// AnalysisRecord is a stored analysis header.
type AnalysisRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AnalysisEventData
}

// MoveEventData captures one classified move.
type MoveEventData struct {
	Ply              int
	MoveNumber       int
	UCIMove          string
	SAN              string
	FENBefore        string
	FENAfter         string
	EvalBefore       float64
	EvalAfter        float64
	Classification   string
	BestMove         string
	BestReply        string
	CandidatesBefore []Candidate
	CandidatesAfter  []Candidate
}

// MoveRecord is a stored move event.
type MoveRecord struct {
	ID         int
	Sequence   int64
	Timestamp  time.Time
	AnalysisID string
	MoveEventData
}

// ExplanationEventData captures coaching text for a move, a game, or a
// follow-up question.
type ExplanationEventData struct {
	AnalysisID string
	Ply        int
	Kind       string
	Question   string
	Summary    string
	Body       string
}

// ExplanationRecord is a stored explanation event.
type ExplanationRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	ExplanationEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM calls by purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM token usage by model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAnalysis records an analysis header.
	AppendAnalysis(ctx context.Context, data AnalysisEventData) error

	// AppendMoves records the classified moves of an analysis in order.
	AppendMoves(ctx context.Context, analysisID string, moves []MoveEventData) error

	// AppendAnalysisWithMoves records an analysis header and its moves in one
	// transaction. Either both are stored or neither is.
	AppendAnalysisWithMoves(ctx context.Context, data AnalysisEventData, moves []MoveEventData) error

	// QueryAnalyses lists analyses newest first. An empty username matches all.
	QueryAnalyses(ctx context.Context, username string, opts QueryOpts) ([]AnalysisRecord, error)

	// GetAnalysis returns an analysis and its moves, or nil if not found.
	GetAnalysis(ctx context.Context, analysisID string) (*AnalysisRecord, []MoveRecord, error)

	// ClassificationCounts tallies move labels. An empty username matches all.
	ClassificationCounts(ctx context.Context, username string) (map[string]int, error)

	// AppendExplanation records coaching text.
	AppendExplanation(ctx context.Context, data ExplanationEventData) error

	// QueryExplanations lists the explanations stored for an analysis, oldest first.
	QueryExplanations(ctx context.Context, analysisID string) ([]ExplanationRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents lists LLM events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one LLM event, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates LLM usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates LLM usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// Reset deletes every stored event.
	Reset(ctx context.Context) error
}
