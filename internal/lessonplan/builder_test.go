package lessonplan

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/lessonforge/internal/intake"
	"github.com/abhisek/lessonforge/internal/plangen"
	"github.com/abhisek/lessonforge/internal/transcribe"
)

func fixedBuilder() *Builder {
	return &Builder{
		Now:   func() time.Time { return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC) },
		NewID: func() string { return "abcd1234" },
	}
}

func testRequest(sessions int) intake.GenerationRequest {
	return intake.GenerationRequest{
		Topic:                  "Fractions",
		Subject:                "Math",
		GradeLevel:             "5",
		SessionCount:           sessions,
		SessionDurationMinutes: 40,
		Transcript:             transcribe.Transcript{Text: "Fractions", Source: transcribe.SourceText},
	}
}

func testContent(sessions int) *plangen.StructuredContent {
	c := &plangen.StructuredContent{Title: "Fractions from the Ground Up"}
	for i := 0; i < sessions; i++ {
		c.Sessions = append(c.Sessions, plangen.SessionContent{
			Title:      fmt.Sprintf("Part %d", i+1),
			Objectives: []string{"Understand the idea"},
			Activities: []plangen.ActivityContent{
				{Title: "Warm-up", Description: "Quick recap.", EstimatedMinutes: 10},
			},
		})
	}
	return c
}

func TestBuild_AssignsContiguousIndices(t *testing.T) {
	plan, err := fixedBuilder().Build(testContent(3), testRequest(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.Sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(plan.Sessions))
	}
	for i, s := range plan.Sessions {
		if s.Index != i+1 {
			t.Fatalf("session %d has index %d", i, s.Index)
		}
	}
	if plan.ID != "abcd1234" {
		t.Fatalf("unexpected id %q", plan.ID)
	}
	if plan.Title != "Fractions from the Ground Up" {
		t.Fatalf("unexpected title %q", plan.Title)
	}
	if !plan.CreatedAt.Equal(time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)) {
		t.Fatalf("unexpected created at %v", plan.CreatedAt)
	}
	if plan.Request.Topic != "Fractions" {
		t.Fatalf("request not carried: %+v", plan.Request)
	}
}

func TestBuild_SessionCountMismatch(t *testing.T) {
	_, err := fixedBuilder().Build(testContent(2), testRequest(3))
	if err == nil {
		t.Fatal("expected error")
	}

	var inv *InternalInvariantError
	if !errors.As(err, &inv) {
		t.Fatalf("expected InternalInvariantError, got %T (%v)", err, err)
	}
	if inv.Stage != "build" {
		t.Fatalf("unexpected stage %q", inv.Stage)
	}
	if !strings.Contains(inv.Message, "expected 3 sessions, got 2") {
		t.Fatalf("message does not name the mismatch: %q", inv.Message)
	}
}

func TestBuild_NilContent(t *testing.T) {
	_, err := fixedBuilder().Build(nil, testRequest(2))
	var inv *InternalInvariantError
	if !errors.As(err, &inv) {
		t.Fatalf("expected InternalInvariantError, got %T (%v)", err, err)
	}
}

func TestBuild_NonPositiveRequestCount(t *testing.T) {
	_, err := fixedBuilder().Build(testContent(0), testRequest(0))
	var inv *InternalInvariantError
	if !errors.As(err, &inv) {
		t.Fatalf("expected InternalInvariantError, got %T (%v)", err, err)
	}
}

func TestBuild_CopiesContentVerbatim(t *testing.T) {
	content := testContent(1)
	content.Sessions[0].Worksheet = &plangen.WorksheetContent{
		Questions: []plangen.QuestionContent{
			{Prompt: "Shade one half.", AnswerKeyHint: "Any half counts"},
			{Prompt: "Shade one quarter."},
		},
	}

	plan, err := fixedBuilder().Build(content, testRequest(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := plan.Sessions[0]
	if s.Title != "Part 1" {
		t.Fatalf("unexpected title %q", s.Title)
	}
	if len(s.Activities) != 1 || s.Activities[0].EstimatedMinutes != 10 {
		t.Fatalf("activities not copied: %+v", s.Activities)
	}
	if s.Worksheet == nil || len(s.Worksheet.Questions) != 2 {
		t.Fatalf("worksheet not copied: %+v", s.Worksheet)
	}
	if s.Worksheet.Questions[0].AnswerKeyHint != "Any half counts" {
		t.Fatalf("hint not copied: %+v", s.Worksheet.Questions[0])
	}
	if s.Worksheet.Questions[1].AnswerKeyHint != "" {
		t.Fatalf("hint invented: %+v", s.Worksheet.Questions[1])
	}

	// The plan owns its subtree: mutating the source must not leak through.
	content.Sessions[0].Objectives[0] = "mutated"
	if plan.Sessions[0].Objectives[0] != "Understand the idea" {
		t.Fatal("plan aliases the source content")
	}
}

func TestBuild_EmptyWorksheetDropped(t *testing.T) {
	content := testContent(1)
	content.Sessions[0].Worksheet = &plangen.WorksheetContent{}

	plan, err := fixedBuilder().Build(content, testRequest(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Sessions[0].Worksheet != nil {
		t.Fatalf("expected empty worksheet dropped, got %+v", plan.Sessions[0].Worksheet)
	}
}

func TestBuild_TitleFallsBackToRequest(t *testing.T) {
	content := testContent(1)
	content.Title = ""

	plan, err := fixedBuilder().Build(content, testRequest(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Title != "Math, Grade 5: Fractions" {
		t.Fatalf("unexpected fallback title %q", plan.Title)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	b := fixedBuilder()
	first, err := b.Build(testContent(2), testRequest(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := b.Build(testContent(2), testRequest(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("builds differ:\n%+v\n%+v", first, second)
	}
}

func TestNewBuilder_Defaults(t *testing.T) {
	plan, err := NewBuilder().Build(testContent(1), testRequest(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.ID) != 8 {
		t.Fatalf("expected 8-character id, got %q", plan.ID)
	}
	if plan.CreatedAt.Location() != time.UTC {
		t.Fatalf("expected UTC timestamp, got %v", plan.CreatedAt.Location())
	}
	if time.Since(plan.CreatedAt) > time.Minute {
		t.Fatalf("created at too old: %v", plan.CreatedAt)
	}
}
