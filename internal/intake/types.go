// Package intake turns caller-supplied metadata and a transcript into a
// validated generation request. Normalization is a pure function; the
// conversational elicitation used by the interactive front door lives in
// Conversation.
package intake

import (
	"fmt"

	"github.com/abhisek/lessonforge/internal/transcribe"
)

// Metadata is the caller-supplied shape of a lesson plan request before
// validation.
type Metadata struct {
	// Topic is what the plan should cover, e.g. "Fractions". When empty,
	// the transcript text stands in for it.
	Topic string

	// Subject is the curriculum subject, e.g. "Math".
	Subject string

	// GradeLevel is the target grade or class, e.g. "5".
	GradeLevel string

	// SessionCount is the number of sessions requested.
	SessionCount int

	// SessionDurationMinutes is the length of each session.
	SessionDurationMinutes int
}

// Limits bounds what a single request may ask for.
type Limits struct {
	// MaxSessions caps SessionCount. Zero means DefaultMaxSessions.
	MaxSessions int
}

// DefaultMaxSessions caps the session count when no limit is configured.
const DefaultMaxSessions = 10

// DefaultLimits returns the standard request bounds.
func DefaultLimits() Limits {
	return Limits{MaxSessions: DefaultMaxSessions}
}

// GenerationRequest is a fully validated request, the only input the
// generation stage accepts. Created per invocation and discarded once the
// plan is built.
type GenerationRequest struct {
	Topic                  string `json:"topic"`
	Subject                string `json:"subject"`
	GradeLevel             string `json:"grade_level"`
	SessionCount           int    `json:"session_count"`
	SessionDurationMinutes int    `json:"session_duration_minutes"`

	// Transcript is the normalized input that produced this request.
	Transcript transcribe.Transcript `json:"transcript"`
}

// ValidationError reports caller input that fails the request bounds.
// It is never retried; the caller must fix the input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
