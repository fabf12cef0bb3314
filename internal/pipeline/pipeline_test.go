package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/lessonforge/internal/export"
	"github.com/abhisek/lessonforge/internal/intake"
	"github.com/abhisek/lessonforge/internal/lessonplan"
	"github.com/abhisek/lessonforge/internal/llm"
	"github.com/abhisek/lessonforge/internal/plangen"
	"github.com/abhisek/lessonforge/internal/transcribe"
)

const fractionsPlan = `{
	"title": "Fractions for Grade 5",
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

type recordingSaver struct {
	plans []*lessonplan.LessonPlan
	err   error
}

func (r *recordingSaver) Save(_ context.Context, plan *lessonplan.LessonPlan) error {
	if r.err != nil {
		return r.err
	}
	r.plans = append(r.plans, plan)
	return nil
}

func newTestCoordinator(provider llm.Provider, stt llm.Transcriber, saver Saver) *Coordinator {
	retrying := llm.WithRetry(provider, llm.RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     4 * time.Millisecond,
		Multiplier:  2.0,
	})
	return New(
		transcribe.NewAdapter(stt),
		plangen.NewService(retrying, plangen.DefaultConfig()),
		lessonplan.NewBuilder(),
		intake.DefaultLimits(),
		saver,
	)
}

func fractionsMeta() intake.Metadata {
	return intake.Metadata{
		Topic:                  "Fractions",
		Subject:                "Math",
		GradeLevel:             "5",
		SessionCount:           2,
		SessionDurationMinutes: 40,
	}
}

func TestRun_EndToEnd(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fractionsPlan)})
	saver := &recordingSaver{}
	coord := newTestCoordinator(mock, nil, saver)

	plan, err := coord.Run(context.Background(), transcribe.TextInput("Fractions"), fractionsMeta())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.ID) != 8 {
		t.Fatalf("expected 8-character id, got %q", plan.ID)
	}
	if len(plan.Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(plan.Sessions))
	}
	for i, s := range plan.Sessions {
		if s.Index != i+1 {
			t.Fatalf("session %d has index %d", i, s.Index)
		}
	}
	if len(saver.plans) != 1 || saver.plans[0].ID != plan.ID {
		t.Fatalf("plan not handed to persistence: %+v", saver.plans)
	}

	for _, format := range []export.Format{export.FormatDocument, export.FormatPrintable} {
		artifact, err := coord.Export(plan, format)
		if err != nil {
			t.Fatalf("export %s: %v", format, err)
		}
		if len(artifact.Bytes) == 0 {
			t.Fatalf("export %s produced no bytes", format)
		}
	}

	printable, err := coord.Export(plan, export.FormatPrintable)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	page := string(printable.Bytes)
	if !strings.Contains(page, "Understanding Halves") || !strings.Contains(page, "Understanding Quarters") {
		t.Fatal("printable export missing session titles")
	}
}

func TestRun_TextInputSkipsTranscriptionBackend(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fractionsPlan)})
	stt := llm.NewMockTranscriber()
	coord := newTestCoordinator(mock, stt, nil)

	if _, err := coord.Run(context.Background(), transcribe.TextInput("Fractions"), fractionsMeta()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stt.CallCount() != 0 {
		t.Fatalf("text input must not reach the transcription backend, got %d calls", stt.CallCount())
	}
}

func TestRun_AudioInputTranscribed(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fractionsPlan)})
	conf := 0.92
	stt := llm.NewMockTranscriber(llm.MockTranscription{Text: "Fractions", Confidence: &conf})
	coord := newTestCoordinator(mock, stt, nil)

	plan, err := coord.Run(context.Background(), transcribe.AudioInput([]byte("riff"), "audio/wav"), fractionsMeta())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stt.CallCount() != 1 {
		t.Fatalf("expected 1 transcription call, got %d", stt.CallCount())
	}
	if plan.Request.Transcript.Source != transcribe.SourceAudio {
		t.Fatalf("unexpected transcript source %q", plan.Request.Transcript.Source)
	}
}

func TestRun_InvalidMetadataFailsBeforeGeneration(t *testing.T) {
	mock := llm.NewMockProvider()
	coord := newTestCoordinator(mock, nil, nil)

	meta := fractionsMeta()
	meta.SessionCount = 0

	_, err := coord.Run(context.Background(), transcribe.TextInput("Fractions"), meta)
	var verr *intake.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T (%v)", err, err)
	}
	if verr.Field != "sessionCount" {
		t.Fatalf("unexpected field %q", verr.Field)
	}
	if mock.CallCount() != 0 {
		t.Fatalf("invalid request must not reach the provider, got %d calls", mock.CallCount())
	}
}

func TestRun_TranscriptionFailurePropagatesUnchanged(t *testing.T) {
	mock := llm.NewMockProvider()
	stt := llm.NewMockTranscriber(llm.MockTranscription{Err: &llm.ErrProviderUnavailable{}})
	coord := newTestCoordinator(mock, stt, nil)

	_, err := coord.Run(context.Background(), transcribe.AudioInput([]byte("riff"), "audio/wav"), fractionsMeta())
	var ext *transcribe.ExternalServiceError
	if !errors.As(err, &ext) {
		t.Fatalf("expected ExternalServiceError, got %T (%v)", err, err)
	}
	if stt.CallCount() != 1 {
		t.Fatalf("transcription must not be retried, got %d calls", stt.CallCount())
	}
	if mock.CallCount() != 0 {
		t.Fatalf("generation must not run after a transcription failure, got %d calls", mock.CallCount())
	}
}

func TestRun_GenerationFailurePropagatesUnchanged(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	saver := &recordingSaver{}
	coord := newTestCoordinator(mock, nil, saver)

	_, err := coord.Run(context.Background(), transcribe.TextInput("Fractions"), fractionsMeta())
	var genErr *plangen.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %T (%v)", err, err)
	}
	if genErr.Kind != plangen.KindExhausted {
		t.Fatalf("expected exhausted, got %s", genErr.Kind)
	}
	if len(saver.plans) != 0 {
		t.Fatal("nothing must be persisted after a failed run")
	}
}

func TestRun_SaveFailurePropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fractionsPlan)})
	saver := &recordingSaver{err: errors.New("disk full")}
	coord := newTestCoordinator(mock, nil, saver)

	_, err := coord.Run(context.Background(), transcribe.TextInput("Fractions"), fractionsMeta())
	if err == nil || err.Error() != "disk full" {
		t.Fatalf("expected saver error unchanged, got %v", err)
	}
}

func TestRun_CancelledBetweenStages(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fractionsPlan)})
	coord := newTestCoordinator(mock, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := coord.Run(ctx, transcribe.TextInput("Fractions"), fractionsMeta())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Fatalf("generation must not start after cancellation, got %d calls", mock.CallCount())
	}
}

func TestExport_IndependentOfRun(t *testing.T) {
	coord := newTestCoordinator(llm.NewMockProvider(), nil, nil)

	plan := &lessonplan.LessonPlan{
		ID:        "feedbeef",
		Title:     "Stored Plan",
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Request: intake.GenerationRequest{
			Topic: "Algebra", Subject: "Math", GradeLevel: "8",
			SessionCount: 1, SessionDurationMinutes: 40,
		},
		Sessions: []lessonplan.Session{{Index: 1, Title: "Variables", Objectives: []string{"Use variables"}}},
	}

	first, err := coord.Export(plan, export.FormatDocument)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := coord.Export(plan, export.FormatDocument)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first.Bytes) != string(second.Bytes) {
		t.Fatal("repeated export must be byte-identical")
	}
}
