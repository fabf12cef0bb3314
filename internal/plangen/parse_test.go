package plangen

import (
	"testing"
)

func TestParsePlan_CleanResponse(t *testing.T) {
	raw := `{
		"title": "Fractions Basics",
		"sessions": [
			{
				"title": "What is a fraction?",
				"objectives": ["Identify numerator and denominator"],
				"activities": [
					{"title": "Warm-up", "description": "Cut paper into halves.", "estimated_minutes": 10}
				],
				"worksheet": {
					"questions": [
						{"prompt": "Shade 1/2 of the circle.", "answer_key_hint": "Half shaded"}
					]
				}
			}
		]
	}`

	content, notes, err := parsePlan([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notes) != 0 {
		t.Fatalf("clean response should produce no notes, got %v", notes)
	}
	if content.Title != "Fractions Basics" {
		t.Fatalf("unexpected title: %q", content.Title)
	}
	if len(content.Sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(content.Sessions))
	}
	s := content.Sessions[0]
	if s.Worksheet == nil || len(s.Worksheet.Questions) != 1 {
		t.Fatalf("worksheet not carried through: %+v", s.Worksheet)
	}
	if s.Activities[0].EstimatedMinutes != 10 {
		t.Fatalf("unexpected activity minutes: %d", s.Activities[0].EstimatedMinutes)
	}
}

func TestParsePlan_ProseWrapped(t *testing.T) {
	raw := "Here you go:\n```json\n" +
		`{"title":"Plan","sessions":[{"title":"S1","objectives":["o"],"activities":[],"worksheet":{"questions":[]}}]}` +
		"\n```\nLet me know if you need changes."

	content, notes, err := parsePlan([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(content.Sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(content.Sessions))
	}
	if len(notes) == 0 {
		t.Fatal("expected extraction note for prose-wrapped payload")
	}
}

func TestParsePlan_NoJSON(t *testing.T) {
	_, _, err := parsePlan([]byte("I am unable to produce a plan."))
	if err == nil {
		t.Fatal("expected error for response without JSON")
	}
}

func TestNormalizeContent(t *testing.T) {
	t.Run("empty worksheet dropped", func(t *testing.T) {
		content := &StructuredContent{
			Sessions: []SessionContent{{
				Title:      "S1",
				Objectives: []string{"o"},
				Activities: []ActivityContent{},
				Worksheet:  &WorksheetContent{Questions: []QuestionContent{}},
			}},
		}
		notes := normalizeContent(content)
		if content.Sessions[0].Worksheet != nil {
			t.Fatal("expected empty worksheet normalized to nil")
		}
		if len(notes) == 0 {
			t.Fatal("expected a normalization note")
		}
	})

	t.Run("blank worksheet prompts dropped", func(t *testing.T) {
		content := &StructuredContent{
			Sessions: []SessionContent{{
				Title:      "S1",
				Objectives: []string{"o"},
				Worksheet: &WorksheetContent{Questions: []QuestionContent{
					{Prompt: "   "},
					{Prompt: "Real question?"},
				}},
			}},
		}
		normalizeContent(content)
		ws := content.Sessions[0].Worksheet
		if ws == nil || len(ws.Questions) != 1 || ws.Questions[0].Prompt != "Real question?" {
			t.Fatalf("unexpected worksheet after normalization: %+v", ws)
		}
	})

	t.Run("negative minutes clamped", func(t *testing.T) {
		content := &StructuredContent{
			Sessions: []SessionContent{{
				Title:      "S1",
				Objectives: []string{"o"},
				Activities: []ActivityContent{{Title: "A", EstimatedMinutes: -5}},
			}},
		}
		notes := normalizeContent(content)
		if content.Sessions[0].Activities[0].EstimatedMinutes != 0 {
			t.Fatalf("expected clamp to 0, got %d", content.Sessions[0].Activities[0].EstimatedMinutes)
		}
		if len(notes) == 0 {
			t.Fatal("expected a clamp note")
		}
	})

	t.Run("empty objectives dropped", func(t *testing.T) {
		content := &StructuredContent{
			Sessions: []SessionContent{{
				Title:      "S1",
				Objectives: []string{"  ", "Understand halves"},
			}},
		}
		normalizeContent(content)
		got := content.Sessions[0].Objectives
		if len(got) != 1 || got[0] != "Understand halves" {
			t.Fatalf("unexpected objectives: %v", got)
		}
	})

	t.Run("missing collections default to empty", func(t *testing.T) {
		content := &StructuredContent{
			Sessions: []SessionContent{{Title: "S1", Objectives: []string{"o"}}},
		}
		normalizeContent(content)
		if content.Sessions[0].Activities == nil {
			t.Fatal("expected activities defaulted to empty slice")
		}
	})
}

func TestNormalizeContent_NeverInventsContent(t *testing.T) {
	content := &StructuredContent{Sessions: []SessionContent{{}}}
	normalizeContent(content)
	s := content.Sessions[0]
	if s.Title != "" {
		t.Fatalf("normalization must not invent a title, got %q", s.Title)
	}
	if len(s.Objectives) != 0 {
		t.Fatalf("normalization must not invent objectives, got %v", s.Objectives)
	}
}
