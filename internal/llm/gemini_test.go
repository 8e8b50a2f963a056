package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(verdictSchema().Definition)
	if s.Type != genai.TypeObject || len(s.Properties) != 4 {
		t.Fatalf("unexpected schema %+v", s)
	}
	if s.Properties["severity"].Type != genai.TypeInteger {
		t.Errorf("severity type = %v", s.Properties["severity"].Type)
	}
	if len(s.Properties["label"].Enum) != 3 {
		t.Errorf("enum = %v", s.Properties["label"].Enum)
	}
	if s.Properties["ideas"].Items == nil || s.Properties["ideas"].Items.Type != genai.TypeString {
		t.Errorf("items = %+v", s.Properties["ideas"].Items)
	}
	if len(s.Required) != 2 {
		t.Errorf("required = %v", s.Required)
	}
}

func TestGeminiSchema_GoStringSlices(t *testing.T) {
	s := geminiSchema(map[string]any{
		"type":     "object",
		"required": []string{"why"},
		"properties": map[string]any{
			"why": map[string]any{"type": "string"},
		},
	})
	if len(s.Required) != 1 || s.Required[0] != "why" {
		t.Errorf("required = %v", s.Required)
	}
}

func TestGeminiConfigAndContents(t *testing.T) {
	req := Request{
		System:      "coach",
		Messages:    Conversation{}.User("q").Assistant("a"),
		Schema:      verdictSchema(),
		MaxTokens:   300,
		Temperature: 0.2,
	}
	conf := geminiConfig(req)
	if conf.MaxOutputTokens != 300 || conf.Temperature == nil || conf.ResponseMIMEType != "application/json" {
		t.Errorf("unexpected config %+v", conf)
	}
	if conf.SystemInstruction == nil || conf.SystemInstruction.Parts[0].Text != "coach" {
		t.Errorf("system instruction = %+v", conf.SystemInstruction)
	}

	contents := geminiContents(req.Messages)
	if len(contents) != 2 || contents[0].Role != "user" || contents[1].Role != "model" {
		t.Errorf("contents = %+v", contents)
	}
}

func TestGeminiModelMapping(t *testing.T) {
	if got := resolveModel("gemini-flash", geminiModels); got != "gemini-2.5-flash" {
		t.Errorf("got %q", got)
	}
}
