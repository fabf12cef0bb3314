package intake

import (
	"fmt"
	"strings"

	"github.com/abhisek/lessonforge/internal/transcribe"
)

// Normalize merges a transcript with caller metadata into a validated
// GenerationRequest. It is pure: the same inputs always produce the same
// request or the same ValidationError, and no external call is ever made
// on the failure path.
func Normalize(tr transcribe.Transcript, meta Metadata, limits Limits) (GenerationRequest, error) {
	maxSessions := limits.MaxSessions
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}

	topic := strings.TrimSpace(meta.Topic)
	if topic == "" {
		// The spoken or typed request is the topic when none was supplied
		// separately.
		topic = strings.TrimSpace(tr.Text)
	}
	if topic == "" {
		return GenerationRequest{}, &ValidationError{
			Field:   "topic",
			Message: "must not be empty",
		}
	}

	subject := strings.TrimSpace(meta.Subject)
	if subject == "" {
		return GenerationRequest{}, &ValidationError{
			Field:   "subject",
			Message: "must not be empty",
		}
	}

	grade := strings.TrimSpace(meta.GradeLevel)
	if grade == "" {
		return GenerationRequest{}, &ValidationError{
			Field:   "gradeLevel",
			Message: "must not be empty",
		}
	}

	if meta.SessionCount < 1 {
		return GenerationRequest{}, &ValidationError{
			Field:   "sessionCount",
			Message: "must be at least 1",
		}
	}
	if meta.SessionCount > maxSessions {
		return GenerationRequest{}, &ValidationError{
			Field:   "sessionCount",
			Message: fmt.Sprintf("must not exceed %d", maxSessions),
		}
	}

	if meta.SessionDurationMinutes <= 0 {
		return GenerationRequest{}, &ValidationError{
			Field:   "sessionDurationMinutes",
			Message: "must be greater than 0",
		}
	}

	return GenerationRequest{
		Topic:                  topic,
		Subject:                subject,
		GradeLevel:             grade,
		SessionCount:           meta.SessionCount,
		SessionDurationMinutes: meta.SessionDurationMinutes,
		Transcript:             tr,
	}, nil
}
