// Package transcribe normalizes raw pipeline input into a transcript.
// Text input passes through untouched; audio input goes to the external
// speech-to-text backend exactly once. Transcription is never retried:
// the backend may have consumed partial audio, so a failed call is a
// hard failure for the invocation.
package transcribe

import (
	"context"
	"fmt"

	"github.com/abhisek/lessonforge/internal/llm"
)

// InputKind tags a RawInput variant.
type InputKind string

const (
	KindAudio InputKind = "audio"
	KindText  InputKind = "text"
)

// Source records which input variant produced a Transcript.
type Source string

const (
	SourceAudio Source = "audio"
	SourceText  Source = "text"
)

// RawInput is the payload for one pipeline invocation. Exactly one variant
// is populated according to Kind. It is transient and discarded once a
// Transcript exists.
type RawInput struct {
	Kind InputKind

	// Audio and Mime are set for KindAudio.
	Audio []byte
	Mime  string

	// Content is set for KindText.
	Content string
}

// TextInput builds a text-variant RawInput.
func TextInput(content string) RawInput {
	return RawInput{Kind: KindText, Content: content}
}

// AudioInput builds an audio-variant RawInput.
func AudioInput(audio []byte, mime string) RawInput {
	return RawInput{Kind: KindAudio, Audio: audio, Mime: mime}
}

// Transcript is the text form of a RawInput, immutable once produced.
type Transcript struct {
	Text   string `json:"text"`
	Source Source `json:"source"`

	// Confidence is reported by the speech-to-text backend when available.
	// Nil for text input and for backends that do not score segments.
	Confidence *float64 `json:"confidence,omitempty"`
}

// ExternalServiceError indicates the speech-to-text capability failed:
// missing credentials, network failure, timeout, or an unusable payload.
// The invocation cannot proceed; there is no fallback transcript.
type ExternalServiceError struct {
	Stage string
	Err   error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s: external service failed: %v", e.Stage, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

// UnknownKindError reports a RawInput whose Kind is not a declared variant.
type UnknownKindError struct {
	Kind InputKind
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown input kind %q", e.Kind)
}

// stage is the name this component reports in errors.
const stage = "transcription"

// Adapter converts RawInput into a Transcript.
type Adapter struct {
	stt llm.Transcriber
}

// NewAdapter creates an adapter over the given speech-to-text backend.
// The backend may be nil when the deployment is text-only; audio input
// then fails with ExternalServiceError instead of panicking.
func NewAdapter(stt llm.Transcriber) *Adapter {
	return &Adapter{stt: stt}
}

// Transcribe resolves a RawInput to a Transcript. The text variant returns
// immediately without touching the backend.
func (a *Adapter) Transcribe(ctx context.Context, in RawInput) (*Transcript, error) {
	switch in.Kind {
	case KindText:
		return &Transcript{Text: in.Content, Source: SourceText}, nil

	case KindAudio:
		if a.stt == nil {
			return nil, &ExternalServiceError{
				Stage: stage,
				Err:   fmt.Errorf("no speech-to-text backend configured"),
			}
		}
		result, err := a.stt.Transcribe(ctx, in.Audio, in.Mime)
		if err != nil {
			return nil, &ExternalServiceError{Stage: stage, Err: err}
		}
		return &Transcript{
			Text:       result.Text,
			Source:     SourceAudio,
			Confidence: result.Confidence,
		}, nil

	default:
		return nil, &UnknownKindError{Kind: in.Kind}
	}
}
