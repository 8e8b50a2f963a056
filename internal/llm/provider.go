package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// Provider generates coaching text from a language model.
type Provider interface {
	// Generate sends the conversation to the model. When req.Schema is set
	// the response Content is JSON that validates against it; otherwise
	// Content holds the model's plain text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier requests are sent to.
	ModelID() string
}

// Named is implemented by providers that can report their backend name.
type Named interface {
	Name() string
}

// ProviderName returns p's backend name, or its model ID when unknown.
func ProviderName(p Provider) string {
	if n, ok := p.(Named); ok {
		return n.Name()
	}
	return p.ModelID()
}

// Request is one call to the model.
type Request struct {
	// System sets the model's role, e.g. a chess coach persona.
	System string

	// Messages is the conversation so far, oldest first. A one-shot
	// explanation holds a single user message; follow-up questions carry
	// the earlier exchange.
	Messages []Message

	// Schema requests structured output. Nil means plain text.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default.
	Temperature float64
}

// Message is one turn of a conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Conversation accumulates the turns of a multi-turn exchange.
type Conversation []Message

// User returns the conversation with a user turn appended.
func (c Conversation) User(content string) Conversation {
	return append(c[:len(c):len(c)], Message{Role: RoleUser, Content: content})
}

// Assistant returns the conversation with an assistant turn appended.
func (c Conversation) Assistant(content string) Conversation {
	return append(c[:len(c):len(c)], Message{Role: RoleAssistant, Content: content})
}

// Schema describes the JSON object the model must return.
type Schema struct {
	// Name identifies the schema in provider requests and the validation
	// cache. Kebab-case, e.g. "move-explanation".
	Name string

	Description string

	// Definition is a JSON Schema document.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when a Schema was requested, plain text
	// otherwise.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Text returns the content as a string.
func (r *Response) Text() string {
	return string(r.Content)
}

// Decode unmarshals structured content into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Content, v); err != nil {
		return &ErrInvalidResponse{Content: r.Content, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// finish validates provider output and assembles the Response.
func finish(req Request, content json.RawMessage, usage Usage, model, stop string) (*Response, error) {
	if req.Schema != nil {
		// Truncated JSON can never validate.
		if stop == "max_tokens" {
			return nil, &ErrMaxTokensExceeded{Content: content}
		}
		if err := validateResponse(req.Schema, content); err != nil {
			return nil, err
		}
	}
	return &Response{Content: content, Usage: usage, Model: model, StopReason: stop}, nil
}
