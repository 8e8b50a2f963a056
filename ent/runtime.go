// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/chesscoach/ent/analysisevent"
	"github.com/abhisek/chesscoach/ent/explanationevent"
	"github.com/abhisek/chesscoach/ent/llmrequestevent"
	"github.com/abhisek/chesscoach/ent/moveevent"
	"github.com/abhisek/chesscoach/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysiseventMixin := schema.AnalysisEvent{}.Mixin()
	analysiseventMixinFields0 := analysiseventMixin[0].Fields()
	_ = analysiseventMixinFields0
	analysiseventFields := schema.AnalysisEvent{}.Fields()
	_ = analysiseventFields
	// analysiseventDescTimestamp is the schema descriptor for timestamp field.
	analysiseventDescTimestamp := analysiseventMixinFields0[1].Descriptor()
	// analysisevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	analysisevent.DefaultTimestamp = analysiseventDescTimestamp.Default.(func() time.Time)
	// analysiseventDescAnalysisID is the schema descriptor for analysis_id field.
	analysiseventDescAnalysisID := analysiseventFields[0].Descriptor()
	// analysisevent.AnalysisIDValidator is a validator for the "analysis_id" field. It is called by the builders before save.
	analysisevent.AnalysisIDValidator = analysiseventDescAnalysisID.Validators[0].(func(string) error)
	// analysiseventDescUsername is the schema descriptor for username field.
	analysiseventDescUsername := analysiseventFields[1].Descriptor()
	// analysisevent.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	analysisevent.UsernameValidator = analysiseventDescUsername.Validators[0].(func(string) error)
	// analysiseventDescColor is the schema descriptor for color field.
	analysiseventDescColor := analysiseventFields[2].Descriptor()
	// analysisevent.ColorValidator is a validator for the "color" field. It is called by the builders before save.
	analysisevent.ColorValidator = analysiseventDescColor.Validators[0].(func(string) error)
	// analysiseventDescWhite is the schema descriptor for white field.
	analysiseventDescWhite := analysiseventFields[3].Descriptor()
	// analysisevent.DefaultWhite holds the default value on creation for the white field.
	analysisevent.DefaultWhite = analysiseventDescWhite.Default.(string)
	// analysiseventDescBlack is the schema descriptor for black field.
	analysiseventDescBlack := analysiseventFields[4].Descriptor()
	// analysisevent.DefaultBlack holds the default value on creation for the black field.
	analysisevent.DefaultBlack = analysiseventDescBlack.Default.(string)
	// analysiseventDescEventName is the schema descriptor for event_name field.
	analysiseventDescEventName := analysiseventFields[5].Descriptor()
	// analysisevent.DefaultEventName holds the default value on creation for the event_name field.
	analysisevent.DefaultEventName = analysiseventDescEventName.Default.(string)
	// analysiseventDescGameDate is the schema descriptor for game_date field.
	analysiseventDescGameDate := analysiseventFields[6].Descriptor()
	// analysisevent.DefaultGameDate holds the default value on creation for the game_date field.
	analysisevent.DefaultGameDate = analysiseventDescGameDate.Default.(string)
	// analysiseventDescOutcome is the schema descriptor for outcome field.
	analysiseventDescOutcome := analysiseventFields[7].Descriptor()
	// analysisevent.DefaultOutcome holds the default value on creation for the outcome field.
	analysisevent.DefaultOutcome = analysiseventDescOutcome.Default.(string)
	// analysiseventDescMoveCount is the schema descriptor for move_count field.
	analysiseventDescMoveCount := analysiseventFields[9].Descriptor()
	// analysisevent.DefaultMoveCount holds the default value on creation for the move_count field.
	analysisevent.DefaultMoveCount = analysiseventDescMoveCount.Default.(int)
	// analysiseventDescSource is the schema descriptor for source field.
	analysiseventDescSource := analysiseventFields[10].Descriptor()
	// analysisevent.DefaultSource holds the default value on creation for the source field.
	analysisevent.DefaultSource = analysiseventDescSource.Default.(string)
	explanationeventMixin := schema.ExplanationEvent{}.Mixin()
	explanationeventMixinFields0 := explanationeventMixin[0].Fields()
	_ = explanationeventMixinFields0
	explanationeventFields := schema.ExplanationEvent{}.Fields()
	_ = explanationeventFields
	// explanationeventDescTimestamp is the schema descriptor for timestamp field.
	explanationeventDescTimestamp := explanationeventMixinFields0[1].Descriptor()
	// explanationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	explanationevent.DefaultTimestamp = explanationeventDescTimestamp.Default.(func() time.Time)
	// explanationeventDescAnalysisID is the schema descriptor for analysis_id field.
	explanationeventDescAnalysisID := explanationeventFields[0].Descriptor()
	// explanationevent.DefaultAnalysisID holds the default value on creation for the analysis_id field.
	explanationevent.DefaultAnalysisID = explanationeventDescAnalysisID.Default.(string)
	// explanationeventDescPly is the schema descriptor for ply field.
	explanationeventDescPly := explanationeventFields[1].Descriptor()
	// explanationevent.DefaultPly holds the default value on creation for the ply field.
	explanationevent.DefaultPly = explanationeventDescPly.Default.(int)
	// explanationeventDescKind is the schema descriptor for kind field.
	explanationeventDescKind := explanationeventFields[2].Descriptor()
	// explanationevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	explanationevent.KindValidator = explanationeventDescKind.Validators[0].(func(string) error)
	// explanationeventDescQuestion is the schema descriptor for question field.
	explanationeventDescQuestion := explanationeventFields[3].Descriptor()
	// explanationevent.DefaultQuestion holds the default value on creation for the question field.
	explanationevent.DefaultQuestion = explanationeventDescQuestion.Default.(string)
	// explanationeventDescBody is the schema descriptor for body field.
	explanationeventDescBody := explanationeventFields[5].Descriptor()
	// explanationevent.DefaultBody holds the default value on creation for the body field.
	explanationevent.DefaultBody = explanationeventDescBody.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	moveeventMixin := schema.MoveEvent{}.Mixin()
	moveeventMixinFields0 := moveeventMixin[0].Fields()
	_ = moveeventMixinFields0
	moveeventFields := schema.MoveEvent{}.Fields()
	_ = moveeventFields
	// moveeventDescTimestamp is the schema descriptor for timestamp field.
	moveeventDescTimestamp := moveeventMixinFields0[1].Descriptor()
	// moveevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	moveevent.DefaultTimestamp = moveeventDescTimestamp.Default.(func() time.Time)
	// moveeventDescAnalysisID is the schema descriptor for analysis_id field.
	moveeventDescAnalysisID := moveeventFields[0].Descriptor()
	// moveevent.AnalysisIDValidator is a validator for the "analysis_id" field. It is called by the builders before save.
	moveevent.AnalysisIDValidator = moveeventDescAnalysisID.Validators[0].(func(string) error)
	// moveeventDescUciMove is the schema descriptor for uci_move field.
	moveeventDescUciMove := moveeventFields[3].Descriptor()
	// moveevent.UciMoveValidator is a validator for the "uci_move" field. It is called by the builders before save.
	moveevent.UciMoveValidator = moveeventDescUciMove.Validators[0].(func(string) error)
	// moveeventDescSan is the schema descriptor for san field.
	moveeventDescSan := moveeventFields[4].Descriptor()
	// moveevent.DefaultSan holds the default value on creation for the san field.
	moveevent.DefaultSan = moveeventDescSan.Default.(string)
	// moveeventDescFenBefore is the schema descriptor for fen_before field.
	moveeventDescFenBefore := moveeventFields[5].Descriptor()
	// moveevent.FenBeforeValidator is a validator for the "fen_before" field. It is called by the builders before save.
	moveevent.FenBeforeValidator = moveeventDescFenBefore.Validators[0].(func(string) error)
	// moveeventDescFenAfter is the schema descriptor for fen_after field.
	moveeventDescFenAfter := moveeventFields[6].Descriptor()
	// moveevent.FenAfterValidator is a validator for the "fen_after" field. It is called by the builders before save.
	moveevent.FenAfterValidator = moveeventDescFenAfter.Validators[0].(func(string) error)
	// moveeventDescClassification is the schema descriptor for classification field.
	moveeventDescClassification := moveeventFields[9].Descriptor()
	// moveevent.ClassificationValidator is a validator for the "classification" field. It is called by the builders before save.
	moveevent.ClassificationValidator = moveeventDescClassification.Validators[0].(func(string) error)
	// moveeventDescBestMove is the schema descriptor for best_move field.
	moveeventDescBestMove := moveeventFields[10].Descriptor()
	// moveevent.DefaultBestMove holds the default value on creation for the best_move field.
	moveevent.DefaultBestMove = moveeventDescBestMove.Default.(string)
	// moveeventDescBestReply is the schema descriptor for best_reply field.
	moveeventDescBestReply := moveeventFields[11].Descriptor()
	// moveevent.DefaultBestReply holds the default value on creation for the best_reply field.
	moveevent.DefaultBestReply = moveeventDescBestReply.Default.(string)
}
