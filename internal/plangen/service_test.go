package plangen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/lessonforge/internal/intake"
	"github.com/abhisek/lessonforge/internal/llm"
	"github.com/abhisek/lessonforge/internal/transcribe"
)

const validTwoSessionPlan = `{
	"title": "Fractions in Two Sessions",
	"sessions": [
		{
			"title": "Understanding Halves",
			"objectives": ["Recognize one half of a shape"],
			"activities": [{"title": "Paper folding", "description": "Fold paper into halves.", "estimated_minutes": 20}],
			"worksheet": {"questions": [{"prompt": "Shade half of each shape.", "answer_key_hint": "Any half counts"}]}
		},
		{
			"title": "Understanding Quarters",
			"objectives": ["Recognize one quarter of a shape"],
			"activities": [{"title": "Pizza slices", "description": "Divide a pizza drawing into quarters.", "estimated_minutes": 20}],
			"worksheet": {"questions": []}
		}
	]
}`

// missing the second session's title
const twoSessionPlanNoTitle = `{
	"title": "Fractions in Two Sessions",
	"sessions": [
		{
			"title": "Understanding Halves",
			"objectives": ["Recognize one half of a shape"],
			"activities": [],
			"worksheet": {"questions": []}
		},
		{
			"title": "",
			"objectives": ["Recognize one quarter of a shape"],
			"activities": [],
			"worksheet": {"questions": []}
		}
	]
}`

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

// newTestService wires the mock through the retry decorator exactly as
// production does, with waits shrunk for tests.
func newTestService(mock *llm.MockProvider) *Service {
	retrying := llm.WithRetry(mock, llm.RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     4 * time.Millisecond,
		Multiplier:  2.0,
	})
	return NewService(retrying, DefaultConfig())
}

func TestGenerate_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validTwoSessionPlan)})
	svc := newTestService(mock)

	content, run, err := svc.Generate(context.Background(), testRequest(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(content.Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(content.Sessions))
	}
	if content.Sessions[0].Title != "Understanding Halves" {
		t.Fatalf("unexpected first session: %+v", content.Sessions[0])
	}
	// The second session's empty worksheet normalizes away.
	if content.Sessions[1].Worksheet != nil {
		t.Fatalf("expected empty worksheet dropped, got %+v", content.Sessions[1].Worksheet)
	}

	if run.State != StateSucceeded {
		t.Fatalf("expected succeeded, got %s", run.State)
	}
	if run.Attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", run.Attempts)
	}
	if run.RepairAttempted {
		t.Fatal("no repair expected for a valid response")
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
}

func TestGenerate_SendsContract(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validTwoSessionPlan)})
	svc := newTestService(mock)

	if _, _, err := svc.Generate(context.Background(), testRequest(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	call := mock.Calls[0]
	if call.Schema != PlanSchema {
		t.Fatal("expected the plan schema on the request")
	}
	if call.System != planSystemPrompt {
		t.Fatal("expected the planner system prompt")
	}
	if len(call.Messages) != 1 || !strings.Contains(call.Messages[0].Content, "Plan exactly 2 sessions") {
		t.Fatalf("unexpected contract message: %+v", call.Messages)
	}
}

func TestGenerate_TransientFailuresRetriedThenSucceeds(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Err: &llm.ErrRateLimit{}},
		llm.MockResponse{Content: json.RawMessage(validTwoSessionPlan)},
	)
	svc := newTestService(mock)

	content, run, err := svc.Generate(context.Background(), testRequest(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(content.Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(content.Sessions))
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected exactly 3 provider calls, got %d", mock.CallCount())
	}
	if run.Attempts != 3 {
		t.Fatalf("expected 3 attempts recorded, got %d", run.Attempts)
	}

	retries := 0
	for _, s := range run.History {
		if s == StateRetrying {
			retries++
		}
	}
	if retries != 2 {
		t.Fatalf("expected 2 retrying transitions, got %d (history %v)", retries, run.History)
	}
}

func TestGenerate_Exhausted(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	svc := newTestService(mock)

	_, run, err := svc.Generate(context.Background(), testRequest(2))
	if err == nil {
		t.Fatal("expected error")
	}
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got: %T (%v)", err, err)
	}
	if genErr.Kind != KindExhausted {
		t.Fatalf("expected exhausted, got %s", genErr.Kind)
	}
	if genErr.Attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", genErr.Attempts)
	}
	if genErr.Stage != "generation" {
		t.Fatalf("expected generation stage, got %q", genErr.Stage)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected exactly 3 provider calls, got %d", mock.CallCount())
	}
	if run.State != StateFailed {
		t.Fatalf("expected failed, got %s", run.State)
	}
}

func TestGenerate_RepairRoundTrip(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(twoSessionPlanNoTitle)},
		llm.MockResponse{Content: json.RawMessage(validTwoSessionPlan)},
	)
	svc := newTestService(mock)

	content, run, err := svc.Generate(context.Background(), testRequest(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(content.Sessions) != 2 || content.Sessions[1].Title != "Understanding Quarters" {
		t.Fatalf("repaired content not used: %+v", content.Sessions)
	}
	if !run.RepairAttempted {
		t.Fatal("expected a repair round-trip")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected exactly 2 provider calls, got %d", mock.CallCount())
	}
	if run.State != StateSucceeded {
		t.Fatalf("expected succeeded, got %s", run.State)
	}

	// The repair request names the exact discrepancy and carries the
	// previous response as an assistant turn.
	repairCall := mock.Calls[1]
	if len(repairCall.Messages) != 3 {
		t.Fatalf("expected 3-message repair conversation, got %d", len(repairCall.Messages))
	}
	if repairCall.Messages[1].Role != llm.RoleAssistant {
		t.Fatalf("expected assistant turn, got %s", repairCall.Messages[1].Role)
	}
	if !strings.Contains(repairCall.Messages[2].Content, "session 2 is missing a title") {
		t.Fatalf("repair message does not name the discrepancy:\n%s", repairCall.Messages[2].Content)
	}
}

func TestGenerate_RepairStillInvalid(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(twoSessionPlanNoTitle)},
		llm.MockResponse{Content: json.RawMessage(twoSessionPlanNoTitle)},
	)
	svc := newTestService(mock)

	_, run, err := svc.Generate(context.Background(), testRequest(2))
	if err == nil {
		t.Fatal("expected error")
	}
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got: %T (%v)", err, err)
	}
	if genErr.Kind != KindSchemaInvalid {
		t.Fatalf("expected schema_invalid, got %s", genErr.Kind)
	}
	if !strings.Contains(genErr.Detail, "session 2 is missing a title") {
		t.Fatalf("detail does not name the discrepancy: %q", genErr.Detail)
	}
	if len(genErr.Raw) == 0 {
		t.Fatal("expected the last raw response for diagnostics")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("repair must run exactly once, got %d calls", mock.CallCount())
	}
	if run.State != StateFailed {
		t.Fatalf("expected failed, got %s", run.State)
	}
}

func TestGenerate_SessionCountMismatchRepaired(t *testing.T) {
	onesession := `{"title":"P","sessions":[{"title":"Only","objectives":["o"],"activities":[],"worksheet":{"questions":[]}}]}`
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(onesession)},
		llm.MockResponse{Content: json.RawMessage(validTwoSessionPlan)},
	)
	svc := newTestService(mock)

	content, _, err := svc.Generate(context.Background(), testRequest(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(content.Sessions) != 2 {
		t.Fatalf("expected 2 sessions after repair, got %d", len(content.Sessions))
	}
	if !strings.Contains(mock.Calls[1].Messages[2].Content, "expected exactly 2 sessions, got 1") {
		t.Fatalf("count discrepancy not named:\n%s", mock.Calls[1].Messages[2].Content)
	}
}

func TestGenerate_ProseWrappedResponseRecovered(t *testing.T) {
	wrapped := "Here is the plan you asked for:\n```json\n" + validTwoSessionPlan + "\n```"
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(wrapped)})
	svc := newTestService(mock)

	content, run, err := svc.Generate(context.Background(), testRequest(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(content.Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(content.Sessions))
	}
	if run.RepairAttempted {
		t.Fatal("prose framing is recoverable, repair must not run")
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
}

func TestGenerate_UnparseableResponseRepaired(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("I cannot produce a plan right now.")},
		llm.MockResponse{Content: json.RawMessage(validTwoSessionPlan)},
	)
	svc := newTestService(mock)

	content, run, err := svc.Generate(context.Background(), testRequest(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(content.Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(content.Sessions))
	}
	if !run.RepairAttempted {
		t.Fatal("expected repair for unparseable response")
	}
}

func TestGenerate_CancellationPropagatesBare(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	svc := newTestService(mock)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, run, err := svc.Generate(ctx, testRequest(2))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		t.Fatal("cancellation must not be dressed up as a GenerationError")
	}
	if run.State != StateFailed {
		t.Fatalf("expected failed, got %s", run.State)
	}
	// The in-flight attempt completed; no retries followed.
	if mock.CallCount() != 1 {
		t.Fatalf("expected exactly 1 call, got %d", mock.CallCount())
	}
}
