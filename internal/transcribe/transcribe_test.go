package transcribe

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/lessonforge/internal/llm"
)

func TestTranscribe_TextPassThrough(t *testing.T) {
	stt := llm.NewMockTranscriber()
	a := NewAdapter(stt)

	tr, err := a.Transcribe(context.Background(), TextInput("Photosynthesis"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Text != "Photosynthesis" {
		t.Fatalf("expected verbatim text, got %q", tr.Text)
	}
	if tr.Source != SourceText {
		t.Fatalf("expected text source, got %q", tr.Source)
	}
	if tr.Confidence != nil {
		t.Fatalf("expected nil confidence for text input, got %v", *tr.Confidence)
	}
	if stt.CallCount() != 0 {
		t.Fatalf("text input must not reach the backend, saw %d calls", stt.CallCount())
	}
}

func TestTranscribe_Audio(t *testing.T) {
	conf := 0.87
	stt := llm.NewMockTranscriber(llm.MockTranscription{
		Text:       "Plan three sessions on the water cycle.",
		Confidence: &conf,
	})
	a := NewAdapter(stt)

	tr, err := a.Transcribe(context.Background(), AudioInput([]byte("fake-audio"), "audio/webm"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Text != "Plan three sessions on the water cycle." {
		t.Fatalf("unexpected text: %q", tr.Text)
	}
	if tr.Source != SourceAudio {
		t.Fatalf("expected audio source, got %q", tr.Source)
	}
	if tr.Confidence == nil || *tr.Confidence != 0.87 {
		t.Fatalf("expected confidence 0.87, got %v", tr.Confidence)
	}
	if stt.CallCount() != 1 {
		t.Fatalf("expected exactly 1 backend call, got %d", stt.CallCount())
	}
	if stt.Calls[0].Mime != "audio/webm" {
		t.Fatalf("expected mime forwarded, got %q", stt.Calls[0].Mime)
	}
}

func TestTranscribe_AudioFailure(t *testing.T) {
	cause := &llm.ErrProviderUnavailable{}
	stt := llm.NewMockTranscriber(llm.MockTranscription{Err: cause})
	a := NewAdapter(stt)

	_, err := a.Transcribe(context.Background(), AudioInput([]byte("fake-audio"), "audio/wav"))
	if err == nil {
		t.Fatal("expected error")
	}
	var svc *ExternalServiceError
	if !errors.As(err, &svc) {
		t.Fatalf("expected ExternalServiceError, got: %T (%v)", err, err)
	}
	if svc.Stage != "transcription" {
		t.Fatalf("expected transcription stage, got %q", svc.Stage)
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatal("expected cause to remain reachable through Unwrap")
	}
	// One failed call, no retry.
	if stt.CallCount() != 1 {
		t.Fatalf("transcription must not be retried, saw %d calls", stt.CallCount())
	}
}

func TestTranscribe_NoBackendConfigured(t *testing.T) {
	a := NewAdapter(nil)

	_, err := a.Transcribe(context.Background(), AudioInput([]byte("fake-audio"), "audio/webm"))
	if err == nil {
		t.Fatal("expected error")
	}
	var svc *ExternalServiceError
	if !errors.As(err, &svc) {
		t.Fatalf("expected ExternalServiceError, got: %T (%v)", err, err)
	}

	// Text still works without a backend.
	tr, err := a.Transcribe(context.Background(), TextInput("Decimals"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Text != "Decimals" {
		t.Fatalf("unexpected text: %q", tr.Text)
	}
}

func TestTranscribe_UnknownKind(t *testing.T) {
	a := NewAdapter(llm.NewMockTranscriber())

	_, err := a.Transcribe(context.Background(), RawInput{Kind: "video"})
	if err == nil {
		t.Fatal("expected error")
	}
	var unknown *UnknownKindError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownKindError, got: %T (%v)", err, err)
	}
	if unknown.Kind != "video" {
		t.Fatalf("expected kind preserved, got %q", unknown.Kind)
	}
}
