package llm

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func newTestWhisperTranscriber(t *testing.T, handler http.HandlerFunc) *WhisperTranscriber {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"
	return &WhisperTranscriber{
		client: openai.NewClientWithConfig(config),
		model:  "whisper-large-v3",
	}
}

func TestWhisperTranscriber_HappyPath(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("expected multipart form: %v", err)
		}
		if got := r.FormValue("model"); got != "whisper-large-v3" {
			t.Errorf("model = %q, want %q", got, "whisper-large-v3")
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"task":     "transcribe",
			"language": "english",
			"duration": 4.2,
			"text":     "  Plan five sessions on fractions for grade five.  ",
			"segments": []map[string]any{
				{"id": 0, "text": "Plan five sessions", "avg_logprob": -0.2},
				{"id": 1, "text": "on fractions for grade five.", "avg_logprob": -0.4},
			},
		})
	}

	tr := newTestWhisperTranscriber(t, handler)
	result, err := tr.Transcribe(context.Background(), []byte("fake-audio"), "audio/webm;codecs=opus")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Text != "Plan five sessions on fractions for grade five." {
		t.Fatalf("unexpected text: %q", result.Text)
	}
	if result.Confidence == nil {
		t.Fatal("expected confidence from segments")
	}
	want := math.Exp(-0.3)
	if math.Abs(*result.Confidence-want) > 1e-9 {
		t.Fatalf("confidence = %v, want %v", *result.Confidence, want)
	}
}

func TestWhisperTranscriber_NoSegmentsNoConfidence(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"task": "transcribe",
			"text": "Two sessions on photosynthesis.",
		})
	}

	tr := newTestWhisperTranscriber(t, handler)
	result, err := tr.Transcribe(context.Background(), []byte("fake-audio"), "audio/wav")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Confidence != nil {
		t.Fatalf("expected nil confidence, got %v", *result.Confidence)
	}
}

func TestWhisperTranscriber_EmptyAudio(t *testing.T) {
	tr := &WhisperTranscriber{model: "whisper-large-v3"}
	_, err := tr.Transcribe(context.Background(), nil, "audio/webm")
	if err == nil {
		t.Fatal("expected error")
	}
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
}

func TestWhisperTranscriber_UnsupportedMime(t *testing.T) {
	tr := &WhisperTranscriber{model: "whisper-large-v3"}
	_, err := tr.Transcribe(context.Background(), []byte("fake-audio"), "video/quicktime")
	if err == nil {
		t.Fatal("expected error")
	}
	var unsupported *ErrUnsupportedAudio
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected ErrUnsupportedAudio, got: %T (%v)", err, err)
	}
	if unsupported.Mime != "video/quicktime" {
		t.Fatalf("expected original mime preserved, got %q", unsupported.Mime)
	}
}

func TestWhisperTranscriber_EmptyTranscript(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"task": "transcribe",
			"text": "   ",
		})
	}

	tr := newTestWhisperTranscriber(t, handler)
	_, err := tr.Transcribe(context.Background(), []byte("fake-audio"), "audio/mpeg")
	if err == nil {
		t.Fatal("expected error")
	}
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
}

func TestWhisperTranscriber_ServerError(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "server_error",
				"message": "Internal server error",
			},
		})
	}

	tr := newTestWhisperTranscriber(t, handler)
	_, err := tr.Transcribe(context.Background(), []byte("fake-audio"), "audio/webm")
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T (%v)", err, err)
	}
}

func TestNewTranscriber(t *testing.T) {
	t.Run("empty API key", func(t *testing.T) {
		_, err := NewTranscriber(TranscribeConfig{})
		if err == nil {
			t.Fatal("expected error for empty API key")
		}
	})

	t.Run("default model", func(t *testing.T) {
		tr, err := NewTranscriber(TranscribeConfig{APIKey: "gsk-test"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tr.ModelID() != "whisper-large-v3" {
			t.Errorf("model = %q, want %q", tr.ModelID(), "whisper-large-v3")
		}
	})
}

func TestAudioExtension(t *testing.T) {
	tests := []struct {
		mime string
		ext  string
		ok   bool
	}{
		{"audio/webm", "webm", true},
		{"audio/webm;codecs=opus", "webm", true},
		{"Audio/WAV", "wav", true},
		{"audio/mp4", "m4a", true},
		{"audio/flac", "flac", true},
		{"text/plain", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		ext, err := audioExtension(tt.mime)
		if tt.ok && err != nil {
			t.Errorf("audioExtension(%q) unexpected error: %v", tt.mime, err)
			continue
		}
		if !tt.ok && err == nil {
			t.Errorf("audioExtension(%q) expected error", tt.mime)
			continue
		}
		if ext != tt.ext {
			t.Errorf("audioExtension(%q) = %q, want %q", tt.mime, ext, tt.ext)
		}
	}
}

func TestMockTranscriber(t *testing.T) {
	conf := 0.92
	mock := NewMockTranscriber(
		MockTranscription{Text: "first", Confidence: &conf},
		MockTranscription{Text: "second"},
	)

	r1, err := mock.Transcribe(context.Background(), []byte("a"), "audio/webm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r1.Text != "first" || r1.Confidence == nil || *r1.Confidence != 0.92 {
		t.Fatalf("unexpected first result: %+v", r1)
	}

	r2, err := mock.Transcribe(context.Background(), []byte("b"), "audio/wav")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r2.Text != "second" {
		t.Fatalf("unexpected second result: %+v", r2)
	}

	// Queue exhausted.
	_, err = mock.Transcribe(context.Background(), []byte("c"), "audio/wav")
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T (%v)", err, err)
	}

	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
	if mock.Calls[1].Mime != "audio/wav" {
		t.Fatalf("expected recorded mime, got %q", mock.Calls[1].Mime)
	}
}
