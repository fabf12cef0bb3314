package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-object",
		Description: "A test object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":  map[string]any{"type": "string"},
				"age":   map[string]any{"type": "integer", "minimum": 0},
				"grade": map[string]any{"type": "string", "enum": []any{"A", "B", "C"}},
			},
			"required": []any{"name", "age"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"name":"Alice","age":10,"grade":"A"}`)
	err := validateResponse(testSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"name":"Bob","age":8}`)
	err := validateResponse(testSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"name":"Charlie"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"name":"Dave","age":"ten"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"name":"Eve","age":9,"grade":"D"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	err := validateResponse(nil, raw)
	if err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "test-nested",
		Description: "Nested test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"student": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{"type": "string"},
					},
					"required": []any{"name"},
				},
				"scores": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "integer"},
				},
			},
			"required": []any{"student", "scores"},
		},
	}

	valid := json.RawMessage(`{"student":{"name":"Alice"},"scores":[90,85,92]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"student":{"name":"Alice"},"scores":["not","ints"]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}

func TestValidateResponse_ProseWrappedJSON(t *testing.T) {
	raw := json.RawMessage(`Here is the object you asked for: {"name":"Alice","age":10} Let me know if you need changes!`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("prose around a valid payload must not fail validation: %v", err)
	}
}

func TestValidateResponse_FencedJSON(t *testing.T) {
	raw := json.RawMessage("```json\n{\"name\":\"Bob\",\"age\":8}\n```")
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("markdown fences around a valid payload must not fail validation: %v", err)
	}
}

func TestValidateResponse_ProseWrappedInvalidPayload(t *testing.T) {
	raw := json.RawMessage(`Sure: {"name":"Carol"} done.`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("extracted payload must still satisfy the schema")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		found bool
	}{
		{
			name:  "clean object",
			raw:   `{"title":"Plan"}`,
			want:  `{"title":"Plan"}`,
			found: true,
		},
		{
			name:  "markdown fences",
			raw:   "```json\n{\"title\":\"Plan\"}\n```",
			want:  `{"title":"Plan"}`,
			found: true,
		},
		{
			name:  "surrounding prose",
			raw:   `Here is your lesson plan: {"title":"Plan"} Hope it helps!`,
			want:  `{"title":"Plan"}`,
			found: true,
		},
		{
			name:  "braces inside strings",
			raw:   `{"title":"Sets {A} and {B}","note":"}"}`,
			want:  `{"title":"Sets {A} and {B}","note":"}"}`,
			found: true,
		},
		{
			name:  "escaped quotes",
			raw:   `{"title":"He said \"go\""}`,
			want:  `{"title":"He said \"go\""}`,
			found: true,
		},
		{
			name:  "nested objects",
			raw:   `{"a":{"b":{"c":1}}}`,
			want:  `{"a":{"b":{"c":1}}}`,
			found: true,
		},
		{
			name:  "no object",
			raw:   "Sorry, I cannot help with that.",
			found: false,
		},
		{
			name:  "unbalanced",
			raw:   `{"title":"Plan"`,
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractJSONObject([]byte(tt.raw))
			if found != tt.found {
				t.Fatalf("found = %v, want %v", found, tt.found)
			}
			if found && string(got) != tt.want {
				t.Fatalf("extracted %q, want %q", got, tt.want)
			}
		})
	}
}
