// Package lessonplan defines the immutable lesson plan model and the
// builder that maps validated generation output into it.
package lessonplan

import (
	"fmt"
	"time"

	"github.com/abhisek/lessonforge/internal/intake"
)

// LessonPlan is the built, immutable plan. It owns its subtree exclusively;
// the builder deep-copies everything out of the generation output. The JSON
// form is canonical: persistence round-trips it for later export.
type LessonPlan struct {
	ID        string                   `json:"id"`
	Title     string                   `json:"title"`
	CreatedAt time.Time                `json:"created_at"`
	Request   intake.GenerationRequest `json:"request"`
	Sessions  []Session                `json:"sessions"`
}

// Session is one teaching session within a plan. Index is 1-based and
// contiguous across the plan.
type Session struct {
	Index      int        `json:"index"`
	Title      string     `json:"title"`
	Objectives []string   `json:"objectives"`
	Activities []Activity `json:"activities,omitempty"`
	Worksheet  *Worksheet `json:"worksheet,omitempty"`
}

// Activity is a timed classroom activity.
type Activity struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	EstimatedMinutes int    `json:"estimated_minutes"`
}

// Worksheet holds practice questions for a session.
type Worksheet struct {
	Questions []Question `json:"questions"`
}

// Question is a single worksheet question. AnswerKeyHint is optional.
type Question struct {
	Prompt        string `json:"prompt"`
	AnswerKeyHint string `json:"answer_key_hint,omitempty"`
}

// InternalInvariantError reports an inter-stage contract violation. It is a
// defect in this program, not a user or provider failure: validated content
// reaching the builder must already satisfy the generation contract.
type InternalInvariantError struct {
	Stage   string
	Message string
}

func (e *InternalInvariantError) Error() string {
	return fmt.Sprintf("%s: internal invariant violated: %s", e.Stage, e.Message)
}
