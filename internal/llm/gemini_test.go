package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"duration_minutes": map[string]any{
				"type":    "integer",
				"minimum": 15,
				"maximum": 90,
			},
			"grade": map[string]any{"type": "string", "enum": []any{"4", "5", "6"}},
			"objectives": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"title", "duration_minutes"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["title"].Type != "STRING" {
		t.Fatalf("expected STRING for title, got %s", schema.Properties["title"].Type)
	}
	duration := schema.Properties["duration_minutes"]
	if duration.Type != "INTEGER" {
		t.Fatalf("expected INTEGER for duration_minutes, got %s", duration.Type)
	}
	if duration.Minimum == nil || *duration.Minimum != 15 {
		t.Fatalf("expected minimum 15, got %v", duration.Minimum)
	}
	if duration.Maximum == nil || *duration.Maximum != 90 {
		t.Fatalf("expected maximum 90, got %v", duration.Maximum)
	}
	if len(schema.Properties["grade"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["grade"].Enum))
	}
	if schema.Properties["objectives"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for objectives, got %s", schema.Properties["objectives"].Type)
	}
	if schema.Properties["objectives"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for objectives items, got %s", schema.Properties["objectives"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
