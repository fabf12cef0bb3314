package plangen

import (
	"strings"
	"testing"
)

func twoSessionContent() *StructuredContent {
	return &StructuredContent{
		Title: "Fractions",
		Sessions: []SessionContent{
			{Title: "Halves", Objectives: []string{"Recognize halves"}},
			{Title: "Quarters", Objectives: []string{"Recognize quarters"}},
		},
	}
}

func TestEvaluate_Valid(t *testing.T) {
	v := evaluate(twoSessionContent(), 2, nil)
	if v.Kind != VerdictValid {
		t.Fatalf("expected valid, got %s (%v)", v.Kind, v.Issues)
	}
	if len(v.Issues) != 0 {
		t.Fatalf("valid verdict must carry no issues, got %v", v.Issues)
	}
}

func TestEvaluate_RecoverableFromParseNotes(t *testing.T) {
	v := evaluate(twoSessionContent(), 2, []string{"session 1: dropped empty worksheet"})
	if v.Kind != VerdictRecoverable {
		t.Fatalf("expected recoverable, got %s", v.Kind)
	}
	if len(v.Issues) != 1 {
		t.Fatalf("expected the parse note carried, got %v", v.Issues)
	}
}

func TestEvaluate_SessionCountMismatch(t *testing.T) {
	v := evaluate(twoSessionContent(), 3, nil)
	if v.Kind != VerdictUnrecoverable {
		t.Fatalf("expected unrecoverable, got %s", v.Kind)
	}
	if !strings.Contains(v.Detail(), "expected exactly 3 sessions, got 2") {
		t.Fatalf("discrepancy not named exactly: %q", v.Detail())
	}
}

func TestEvaluate_MissingTitle(t *testing.T) {
	content := twoSessionContent()
	content.Sessions[1].Title = ""

	v := evaluate(content, 2, nil)
	if v.Kind != VerdictUnrecoverable {
		t.Fatalf("expected unrecoverable, got %s", v.Kind)
	}
	if !strings.Contains(v.Detail(), "session 2 is missing a title") {
		t.Fatalf("discrepancy not named exactly: %q", v.Detail())
	}
}

func TestEvaluate_NoObjectives(t *testing.T) {
	content := twoSessionContent()
	content.Sessions[0].Objectives = nil

	v := evaluate(content, 2, nil)
	if v.Kind != VerdictUnrecoverable {
		t.Fatalf("expected unrecoverable, got %s", v.Kind)
	}
	if !strings.Contains(v.Detail(), "session 1 has no learning objectives") {
		t.Fatalf("discrepancy not named exactly: %q", v.Detail())
	}
}

func TestEvaluate_CollectsAllIssues(t *testing.T) {
	content := &StructuredContent{
		Sessions: []SessionContent{
			{Title: "", Objectives: nil},
		},
	}

	v := evaluate(content, 2, nil)
	if len(v.Issues) != 3 {
		t.Fatalf("expected 3 issues (count, title, objectives), got %v", v.Issues)
	}
}

func TestEvaluate_UnrecoverableBeatsRecoverable(t *testing.T) {
	content := twoSessionContent()
	content.Sessions[0].Title = ""

	v := evaluate(content, 2, []string{"session 2: dropped empty worksheet"})
	if v.Kind != VerdictUnrecoverable {
		t.Fatalf("expected unrecoverable to win, got %s", v.Kind)
	}
	// Only the unrecoverable discrepancies go into the repair prompt.
	for _, issue := range v.Issues {
		if strings.Contains(issue, "worksheet") {
			t.Fatalf("parse notes leaked into unrecoverable issues: %v", v.Issues)
		}
	}
}
