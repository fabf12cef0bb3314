package llm

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Transcriber is the speech-to-text port. One call per audio payload; the
// operation is not idempotent-safe, so callers must not retry it.
type Transcriber interface {
	// Transcribe converts an audio payload into text. The mime type selects
	// the container format sent to the backend.
	Transcribe(ctx context.Context, audio []byte, mime string) (*TranscriptionResult, error)

	// ModelID returns the model identifier this transcriber is configured
	// to use.
	ModelID() string
}

// TranscriptionResult is the output of a speech-to-text call.
type TranscriptionResult struct {
	Text string

	// Confidence is derived from segment log-probabilities when the
	// backend reports them. Nil when unavailable.
	Confidence *float64
}

const defaultTranscribeBaseURL = "https://api.groq.com/openai/v1"

// audioExtensions maps accepted mime types to the file extension the
// multipart upload is labeled with.
var audioExtensions = map[string]string{
	"audio/webm":   "webm",
	"audio/wav":    "wav",
	"audio/x-wav":  "wav",
	"audio/wave":   "wav",
	"audio/mpeg":   "mp3",
	"audio/mp3":    "mp3",
	"audio/mp4":    "m4a",
	"audio/x-m4a":  "m4a",
	"audio/ogg":    "ogg",
	"audio/opus":   "opus",
	"audio/flac":   "flac",
	"audio/x-flac": "flac",
}

// WhisperTranscriber implements Transcriber against an OpenAI-compatible
// audio/transcriptions endpoint. Groq hosts whisper-large-v3 behind this
// surface; OpenAI's own whisper-1 works unchanged.
type WhisperTranscriber struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewTranscriber creates a Whisper transcriber from configuration.
func NewTranscriber(cfg TranscribeConfig) (*WhisperTranscriber, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("transcription API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = cfg.BaseURL
	if config.BaseURL == "" {
		config.BaseURL = defaultTranscribeBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "whisper-large-v3"
	}

	return &WhisperTranscriber{
		client:  openai.NewClientWithConfig(config),
		model:   model,
		timeout: cfg.Timeout,
	}, nil
}

func (t *WhisperTranscriber) Transcribe(ctx context.Context, audio []byte, mime string) (*TranscriptionResult, error) {
	if len(audio) == 0 {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("empty audio payload")}
	}

	ext, err := audioExtension(mime)
	if err != nil {
		return nil, err
	}

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		Reader:   bytes.NewReader(audio),
		FilePath: "recording." + ext,
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return nil, mapOpenAIError(err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("transcription returned no text")}
	}

	return &TranscriptionResult{
		Text:       text,
		Confidence: segmentConfidence(resp),
	}, nil
}

func (t *WhisperTranscriber) ModelID() string {
	return t.model
}

// audioExtension resolves the upload extension for a mime type. The mime
// parameter may carry attributes ("audio/webm;codecs=opus").
func audioExtension(mime string) (string, error) {
	base := strings.TrimSpace(strings.ToLower(mime))
	if i := strings.Index(base, ";"); i >= 0 {
		base = strings.TrimSpace(base[:i])
	}
	if ext, ok := audioExtensions[base]; ok {
		return ext, nil
	}
	return "", &ErrUnsupportedAudio{Mime: mime}
}

// segmentConfidence converts Whisper's per-segment average log-probability
// into a single 0..1 confidence. Nil when the backend reports no segments.
func segmentConfidence(resp openai.AudioResponse) *float64 {
	if len(resp.Segments) == 0 {
		return nil
	}
	var sum float64
	for _, seg := range resp.Segments {
		sum += seg.AvgLogprob
	}
	c := math.Exp(sum / float64(len(resp.Segments)))
	if c > 1 {
		c = 1
	}
	if c < 0 {
		c = 0
	}
	return &c
}
