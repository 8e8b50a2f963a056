package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// verdictSchema is a small stand-in for the coach's structured outputs.
func verdictSchema() *Schema {
	return &Schema{
		Name:        "test-verdict",
		Description: "A verdict on one move",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"summary":  map[string]any{"type": "string", "minLength": 1},
				"severity": map[string]any{"type": "integer", "minimum": 0, "maximum": 3},
				"label":    map[string]any{"type": "string", "enum": []any{"Blunder", "Mistake", "Good"}},
				"ideas":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
			"required":             []any{"summary", "severity"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_Accepts(t *testing.T) {
	for _, raw := range []string{
		`{"summary":"Hangs the knight","severity":3,"label":"Blunder"}`,
		`{"summary":"Fine","severity":0}`,
		`{"summary":"Develops","severity":1,"ideas":["castle","connect rooks"]}`,
	} {
		if err := validateResponse(verdictSchema(), json.RawMessage(raw)); err != nil {
			t.Errorf("%s: %v", raw, err)
		}
	}
}

func TestValidateResponse_Rejects(t *testing.T) {
	for name, raw := range map[string]string{
		"not json":        `Nf3 is a fine move`,
		"missing field":   `{"summary":"x"}`,
		"wrong type":      `{"summary":"x","severity":"high"}`,
		"out of range":    `{"summary":"x","severity":9}`,
		"bad enum":        `{"summary":"x","severity":1,"label":"Great"}`,
		"extra property":  `{"summary":"x","severity":1,"eval":0.3}`,
		"empty summary":   `{"summary":"","severity":1}`,
		"truncated":       `{"summary":"x","sev`,
		"array not items": `{"summary":"x","severity":1,"ideas":[1]}`,
	} {
		err := validateResponse(verdictSchema(), json.RawMessage(raw))
		var invalid *ErrInvalidResponse
		if !errors.As(err, &invalid) {
			t.Errorf("%s: got %v, want ErrInvalidResponse", name, err)
			continue
		}
		if string(invalid.Content) != raw {
			t.Errorf("%s: content not preserved", name)
		}
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`plain text`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}

func TestValidateResponse_CachesCompiledSchema(t *testing.T) {
	s := verdictSchema()
	s.Name = "test-verdict-cache"
	if err := validateResponse(s, json.RawMessage(`{"summary":"x","severity":1}`)); err != nil {
		t.Fatal(err)
	}
	first, ok := compiledSchemas.Load(s.Name)
	if !ok {
		t.Fatal("schema not cached")
	}
	if err := validateResponse(s, json.RawMessage(`{"summary":"y","severity":2}`)); err != nil {
		t.Fatal(err)
	}
	second, _ := compiledSchemas.Load(s.Name)
	if first != second {
		t.Error("schema recompiled on second use")
	}
}
