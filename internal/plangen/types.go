// Package plangen drives the language-generation backend to produce a
// structured multi-session lesson plan. It owns the generation contract,
// the parsing and normalization of model output, the validation verdict,
// and the single repair round-trip for unrecoverable output.
package plangen

import (
	"encoding/json"
	"fmt"
)

// StructuredContent is the validated intermediate representation of a
// generated plan, ready for model building. Field tags match the JSON
// contract declared to the backend.
type StructuredContent struct {
	// Title is the plan-level headline. Optional; presentation layers
	// derive one from the request when the model omits it.
	Title    string           `json:"title"`
	Sessions []SessionContent `json:"sessions"`
}

// SessionContent is one generated session.
type SessionContent struct {
	Title      string            `json:"title"`
	Objectives []string          `json:"objectives"`
	Activities []ActivityContent `json:"activities"`
	Worksheet  *WorksheetContent `json:"worksheet,omitempty"`
}

// ActivityContent is one activity inside a session.
type ActivityContent struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	EstimatedMinutes int    `json:"estimated_minutes"`
}

// WorksheetContent is the optional practice sheet for a session.
type WorksheetContent struct {
	Questions []QuestionContent `json:"questions"`
}

// QuestionContent is one worksheet question.
type QuestionContent struct {
	Prompt        string `json:"prompt"`
	AnswerKeyHint string `json:"answer_key_hint,omitempty"`
}

// ErrorKind classifies how generation failed.
type ErrorKind string

const (
	// KindExhausted means the retry budget ran out on transient failures.
	KindExhausted ErrorKind = "exhausted"

	// KindSchemaInvalid means the output stayed unrecoverable after the
	// single repair round-trip.
	KindSchemaInvalid ErrorKind = "schema_invalid"
)

// GenerationError is the terminal failure of one generation run. Raw holds
// the last observed model response for diagnostics.
type GenerationError struct {
	Kind     ErrorKind
	Stage    string
	Attempts int
	Detail   string
	Raw      json.RawMessage
	Err      error
}

func (e *GenerationError) Error() string {
	msg := fmt.Sprintf("%s: plan generation failed (%s) after %d attempt(s)", e.Stage, e.Kind, e.Attempts)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *GenerationError) Unwrap() error { return e.Err }
